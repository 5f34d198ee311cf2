package updater

import (
	"context"
	"path/filepath"

	"github.com/x-company/xbuild-mgr/internal/output"
	"github.com/x-company/xbuild-mgr/internal/templates"
)

// DevContainerDir is the directory holding the dev container bundle.
const DevContainerDir = ".devcontainer"

// DevContainerUpdater generates the dev container bundle under
// <Directory>/.devcontainer: the VS Code descriptor and the compose files for
// development and tests.
type DevContainerUpdater struct {
	req Request
}

// NewDevContainer validates req and returns a DevContainerUpdater.
func NewDevContainer(req Request) (*DevContainerUpdater, error) {
	if err := req.validate(KindDevContainer); err != nil {
		return nil, err
	}
	return &DevContainerUpdater{req: req}, nil
}

// Update implements Updater.
func (u *DevContainerUpdater) Update(ctx context.Context) (Report, error) {
	if err := u.req.validate(KindDevContainer); err != nil {
		return Report{}, err
	}

	logger := output.ScopedLogger(u.req.ShortImageName())
	logger.Info("Create Dev Container Files")

	dir := filepath.Join(u.req.Directory, DevContainerDir)
	data := u.req.templateData()

	var report Report
	for _, name := range templates.DevContainerTemplates() {
		content, err := templates.RenderDevContainer(name, data)
		if err != nil {
			return report, err
		}

		res, err := saveFile(ctx, logger, u.req.Directory, filepath.Join(dir, string(name)), "Dev Container", content, ConfigMode)
		if err != nil {
			return report, err
		}
		report.Files = append(report.Files, res)
	}

	return report, nil
}
