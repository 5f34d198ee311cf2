package layout

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	oerrors "github.com/x-company/xbuild-mgr/internal/errors"
	"github.com/x-company/xbuild-mgr/internal/output"
	"github.com/x-company/xbuild-mgr/internal/updater"
)

// SourceDir is the directory below the base directory holding image projects.
const SourceDir = "src"

// buildDir marks a directory as an image root.
const buildDir = "build"

// ImageRoot returns the root directory of the named image below baseDir.
func ImageRoot(baseDir, imageName string) string {
	return filepath.Join(baseDir, SourceDir, filepath.FromSlash(imageName))
}

// ResolveImageRoot returns the directory of the image project below baseDir.
//
// With an explicit imageName the directory is created when missing and
// returned. Without one the images below <baseDir>/src are discovered: a
// directory src/<x> containing build/ is the image "x", any other src/<x>
// contributes its subdirectories as images "x/<y>". Exactly one image must
// be found.
func ResolveImageRoot(baseDir, imageName string) (string, error) {
	if strings.TrimSpace(baseDir) == "" {
		return "", oerrors.NewValidationError("no base directory given", "", "directory", "Pass --dir or run 'xinit layout create' first")
	}

	if imageName != "" {
		if err := updater.ValidateImageName(imageName); err != nil {
			return "", err
		}
		root := ImageRoot(baseDir, imageName)
		if err := os.MkdirAll(root, 0o755); err != nil {
			return "", fmt.Errorf("creating image directory %s: %w", root, err)
		}
		return root, nil
	}

	images, err := DiscoverImages(baseDir)
	if err != nil {
		return "", err
	}

	srcDir := filepath.Join(baseDir, SourceDir)
	switch len(images) {
	case 0:
		return "", oerrors.NewNotFoundError("no image found", srcDir, "Create one with 'xinit layout create <image>'")
	case 1:
		output.Debug("resolved image", "image", images[0])
		return ImageRoot(baseDir, images[0]), nil
	default:
		return "", oerrors.NewAmbiguousError(
			fmt.Sprintf("more than one image found: %s", strings.Join(images, ", ")),
			srcDir,
			"Specify the image with -i or --image",
		)
	}
}

// DiscoverImages lists the image names below <baseDir>/src in sorted order.
// A missing src directory yields no images.
func DiscoverImages(baseDir string) ([]string, error) {
	srcDir := filepath.Join(baseDir, SourceDir)

	top, err := subdirs(srcDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", srcDir, err)
	}

	var images []string
	for _, x := range top {
		if isDir(filepath.Join(srcDir, x, buildDir)) {
			images = append(images, x)
			continue
		}

		nested, err := subdirs(filepath.Join(srcDir, x))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", filepath.Join(srcDir, x), err)
		}
		for _, y := range nested {
			images = append(images, x+"/"+y)
		}
	}

	sort.Strings(images)
	return images, nil
}

func subdirs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ImageName returns the image name of an image root below baseDir.
func ImageName(baseDir, imageRoot string) string {
	rel, err := filepath.Rel(filepath.Join(baseDir, SourceDir), imageRoot)
	if err != nil {
		return filepath.Base(imageRoot)
	}
	return filepath.ToSlash(rel)
}

// Services lists the services of an image in sorted order.
func Services(imageRoot string) ([]string, error) {
	dir := filepath.Join(imageRoot, buildDir, "services")
	names, err := subdirs(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}
	sort.Strings(names)
	return names, nil
}
