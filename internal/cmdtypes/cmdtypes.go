// Package cmdtypes provides shared types for the cmd package and its sub-packages.
// It is separate from internal/cmd to avoid import cycles between internal/cmd
// and its sub-packages (internal/cmd/service, internal/cmd/config, ...).
package cmdtypes

import (
	"github.com/x-company/xbuild-mgr/internal/config"
	oerrors "github.com/x-company/xbuild-mgr/internal/errors"
	"github.com/x-company/xbuild-mgr/internal/store"
)

// GlobalConfig holds CLI-wide configuration resolved during PersistentPreRunE.
// It is populated once at startup and passed explicitly into every sub-command
// constructor.
type GlobalConfig struct {
	// Config is the loaded configuration file merged with env overrides.
	Config *config.Config

	// Store holds values remembered between runs. Nil when it could not be opened.
	Store *store.Store

	// ConfigPath is the resolved --config path.
	ConfigPath string

	// Directory is the resolved project directory.
	Directory config.ResolvedValue

	// Image is the resolved default image. Empty means discovery.
	Image config.ResolvedValue

	// Verbose is the --verbose flag.
	Verbose bool
}

// Priority returns the configured default priority.
func (g *GlobalConfig) Priority() int {
	if g == nil || g.Config == nil || g.Config.Priority == 0 {
		return config.DefaultPriority
	}
	return g.Config.Priority
}

// Exit codes, aliased from internal/errors.
const (
	ExitSuccess          = oerrors.ExitSuccess
	ExitGeneralError     = oerrors.ExitGeneralError
	ExitValidationError  = oerrors.ExitValidationError
	ExitPermissionDenied = oerrors.ExitPermissionDenied
	ExitNotFound         = oerrors.ExitNotFound
)

// ExitError is a type alias to internal/errors.ExitError.
type ExitError = oerrors.ExitError
