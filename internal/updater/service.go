package updater

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/x-company/xbuild-mgr/internal/output"
	"github.com/x-company/xbuild-mgr/internal/templates"
)

// serviceFile describes one lifecycle script of a service.
type serviceFile struct {
	template templates.ServiceTemplate

	// suffix is the file extension after the service name.
	suffix string

	// subdir is a directory below the service directory, or empty.
	subdir string

	// prioritized files carry the encoded priority as filename prefix.
	prioritized bool
}

// ServiceUpdater generates the lifecycle scripts of one service under
// <Directory>/build/services/<ServiceName>. Build and run scripts are always
// generated; the remaining scripts follow the request's Features.
//
// The same updater serves creating a service and extending an existing one:
// files that are already present are skipped.
type ServiceUpdater struct {
	req Request
}

// NewService validates req and returns a ServiceUpdater.
func NewService(req Request) (*ServiceUpdater, error) {
	if err := req.validate(KindService); err != nil {
		return nil, err
	}
	return &ServiceUpdater{req: req}, nil
}

// ServiceDir returns the directory holding the service's scripts.
func ServiceDir(imageRoot, serviceName string) string {
	return filepath.Join(imageRoot, "build", "services", serviceName)
}

// Dir returns the service directory this updater writes to.
func (u *ServiceUpdater) Dir() string {
	return ServiceDir(u.req.Directory, u.req.ServiceName)
}

// Update implements Updater.
func (u *ServiceUpdater) Update(ctx context.Context) (Report, error) {
	if err := u.req.validate(KindService); err != nil {
		return Report{}, err
	}

	logger := output.ScopedLogger(u.req.ServiceName)
	if u.req.Modify {
		logger.Info(fmt.Sprintf("Modify Service '%s'", u.req.ServiceName))
	} else {
		logger.Info(fmt.Sprintf("Create new Service '%s'", u.req.ServiceName))
	}

	dir := u.Dir()
	data := u.req.templateData()

	var report Report
	for _, f := range u.files() {
		content, err := templates.RenderService(f.template, data)
		if err != nil {
			return report, err
		}

		path := filepath.Join(dir, f.subdir, u.fileName(f))
		res, err := saveFile(ctx, logger, dir, path, f.template.Context(), content, ScriptMode)
		if err != nil {
			return report, err
		}
		report.Files = append(report.Files, res)
	}

	return report, nil
}

// files returns the scripts to generate in write order.
func (u *ServiceUpdater) files() []serviceFile {
	files := []serviceFile{
		{template: templates.ServiceBuild, suffix: "build"},
		{template: templates.ServiceRun, suffix: "run"},
	}

	feat := u.req.Features
	if feat.AddHealth {
		files = append(files, serviceFile{template: templates.ServiceHealth, suffix: "health"})
	}
	if feat.AddFinish {
		files = append(files, serviceFile{template: templates.ServiceFinish, suffix: "finish"})
	}
	if feat.AddFix {
		files = append(files, serviceFile{template: templates.ServiceAttrs, suffix: "attrs", prioritized: true})
	}
	if feat.AddInit {
		files = append(files, serviceFile{template: templates.ServiceInit, suffix: "init", prioritized: true})
	}
	if feat.AddLog {
		files = append(files, serviceFile{template: templates.ServiceLog, suffix: "run", subdir: "log"})
	}
	if feat.AddShutdown {
		files = append(files, serviceFile{template: templates.ServiceShutdown, suffix: "shutdown", prioritized: true})
	}

	return files
}

func (u *ServiceUpdater) fileName(f serviceFile) string {
	name := u.req.ServiceName + "." + f.suffix
	if f.prioritized {
		name = EncodePriority(u.req.Priority) + "-" + name
	}
	return name
}
