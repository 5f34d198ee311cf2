package cmdutil

import (
	"github.com/x-company/xbuild-mgr/internal/cmdtypes"
	"github.com/x-company/xbuild-mgr/internal/layout"
	"github.com/x-company/xbuild-mgr/internal/output"
)

// ImageTarget is the image a command works on.
type ImageTarget struct {
	// Name is the image name. Empty when the image was discovered.
	Name string

	// Root is the image project directory.
	Root string
}

// ResolveImage determines the image a command works on. The --image flag wins
// over the configured default; without either the image is discovered below
// the project directory.
func ResolveImage(cfg *cmdtypes.GlobalConfig, flagImage string) (*ImageTarget, error) {
	image := flagImage
	if image == "" && cfg.Image.Value != "" {
		image = cfg.Image.Value
		output.Debug("using default image", "image", image, "source", cfg.Image.Source)
	}

	root, err := layout.ResolveImageRoot(cfg.Directory.Value, image)
	if err != nil {
		return nil, err
	}

	if image == "" {
		image = layout.ImageName(cfg.Directory.Value, root)
	}

	return &ImageTarget{Name: image, Root: root}, nil
}
