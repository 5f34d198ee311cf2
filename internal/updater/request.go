package updater

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	oerrors "github.com/x-company/xbuild-mgr/internal/errors"
	"github.com/x-company/xbuild-mgr/internal/templates"
)

// Features selects the optional service files.
type Features struct {
	AddHealth   bool
	AddFinish   bool
	AddFix      bool
	AddInit     bool
	AddLog      bool
	AddShutdown bool
}

// Prioritized reports whether any selected file carries a priority prefix.
func (f Features) Prioritized() bool {
	return f.AddFix || f.AddInit || f.AddShutdown
}

// Request is the input of one updater run.
type Request struct {
	// Directory is the root the updater writes under. For services this is
	// the image root (the directory holding build/).
	Directory string

	// ImageName is the image name, possibly namespaced ("org/name").
	ImageName string

	// ServiceName names the service. Required for service generation.
	ServiceName string

	// Features selects the optional service files.
	Features Features

	// Priority orders attrs, init and shutdown scripts. See EncodePriority.
	Priority int

	// Modify marks a run that extends an existing service. It only changes log wording.
	Modify bool
}

// ShortImageName returns the last segment of a namespaced image name.
func (r Request) ShortImageName() string {
	name := strings.TrimRight(r.ImageName, "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		return name[i+1:]
	}
	return name
}

func (r Request) templateData() templates.Data {
	return templates.Data{
		ImageName:      r.ImageName,
		ShortImageName: r.ShortImageName(),
		ServiceName:    r.ServiceName,
	}
}

// validate checks the fields the given kind of updater requires.
func (r Request) validate(kind Kind) error {
	if strings.TrimSpace(r.Directory) == "" {
		return oerrors.NewValidationError("no target directory given", "", "directory", "")
	}

	switch kind {
	case KindPackageManifest, KindDevContainer:
		if strings.TrimSpace(r.ImageName) == "" {
			return oerrors.NewValidationError(
				"no image name given",
				r.Directory,
				"imageName",
				"Specify the image with --image",
			)
		}
		if err := ValidateImageName(r.ImageName); err != nil {
			return err
		}
	case KindService:
		if err := validateServiceName(r.ServiceName); err != nil {
			return err
		}
		if r.Features.Prioritized() {
			return ValidatePriority(r.Priority)
		}
	}

	return nil
}

func validateServiceName(name string) error {
	if strings.TrimSpace(name) == "" {
		return oerrors.NewValidationError(
			"no service name given, service could not be updated",
			"",
			"serviceName",
			"Pass the service name as argument",
		)
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid service name %q", name),
			"",
			"serviceName",
			"A service name must not contain path separators",
		)
	}
	return nil
}

// ValidateImageName checks that name is a relative slash separated path such
// as "mariadb" or "xcompany/mariadb". Image names become directories below
// the project's src directory, so they must not leave it.
func ValidateImageName(name string) error {
	invalid := func(reason string) error {
		return oerrors.NewValidationError(
			fmt.Sprintf("invalid image name %q: %s", name, reason),
			"",
			"imageName",
			"Use a name like 'mariadb' or 'xcompany/mariadb'",
		)
	}

	if strings.ContainsRune(name, '\\') {
		return invalid("backslashes are not allowed")
	}
	if path.IsAbs(name) || filepath.IsAbs(name) {
		return invalid("absolute paths are not allowed")
	}
	for _, segment := range strings.Split(name, "/") {
		switch segment {
		case "":
			return invalid("empty path segment")
		case ".", "..":
			return invalid("relative path segments are not allowed")
		}
	}
	return nil
}
