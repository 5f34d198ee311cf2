// Package layout creates and inspects the directory layout of image projects.
//
// A project directory holds one or more images below src/:
//
//	<dir>/
//	  package.json
//	  .devcontainer/
//	  src/<image>/build/services/
//	  tests/unit/
package layout

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/x-company/xbuild-mgr/internal/errors"
	"github.com/x-company/xbuild-mgr/internal/output"
	"github.com/x-company/xbuild-mgr/internal/updater"
)

// Options configures Create.
type Options struct {
	// Directory is the project directory.
	Directory string

	// ImageName is the image to create, possibly namespaced ("org/name").
	ImageName string

	// ProjectLayout also generates the package manifest and the dev container bundle.
	ProjectLayout bool
}

// Result describes a created layout.
type Result struct {
	// ImageRoot is the directory of the image project.
	ImageRoot string

	// Dirs lists the layout directories in creation order.
	Dirs []string

	// Report lists the generated project files.
	Report updater.Report
}

// Create builds the layout skeleton for an image. Existing directories and
// files are left as they are.
func Create(ctx context.Context, opts Options) (*Result, error) {
	if strings.TrimSpace(opts.Directory) == "" {
		return nil, oerrors.NewValidationError("no target directory given", "", "directory", "Pass --dir")
	}
	if strings.TrimSpace(opts.ImageName) == "" {
		return nil, oerrors.NewValidationError("no image name given", opts.Directory, "imageName", "Pass the image name as argument")
	}
	if err := updater.ValidateImageName(opts.ImageName); err != nil {
		return nil, err
	}

	output.Info(fmt.Sprintf("Create Layout for Image '%s'", opts.ImageName), "directory", opts.Directory)

	root := ImageRoot(opts.Directory, opts.ImageName)
	res := &Result{
		ImageRoot: root,
		Dirs: []string{
			filepath.Join(root, "build", "services"),
			filepath.Join(opts.Directory, "tests", "unit"),
		},
	}

	for _, dir := range res.Dirs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		output.Debug("creating directory", "path", dir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if !opts.ProjectLayout {
		return res, nil
	}

	req := updater.Request{Directory: opts.Directory, ImageName: opts.ImageName}
	var updaters []updater.Updater
	for _, kind := range []updater.Kind{updater.KindPackageManifest, updater.KindDevContainer} {
		u, err := updater.New(kind, req)
		if err != nil {
			return nil, err
		}
		updaters = append(updaters, u)
	}

	report, err := updater.RunAll(ctx, updaters...)
	res.Report = report
	if err != nil {
		return res, err
	}

	return res, nil
}
