package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/x-company/xbuild-mgr/internal/cmdtypes"
	"github.com/x-company/xbuild-mgr/internal/config"
	oerrors "github.com/x-company/xbuild-mgr/internal/errors"
	"github.com/x-company/xbuild-mgr/internal/output"
)

const configHeader = `# xinit configuration
#
# directory: /path/to/project   # project directory used without --dir
# image: org/name               # image used without --image
# log:
#   timestamps: true

`

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Create a new xinit configuration file",
		Long: `Create a new xinit configuration file with default values.

The configuration file is created at ~/.xinit/config.yaml by default.
Use --config flag to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runInit(c, cfg, force)
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config file")

	return c
}

func runInit(c *cobra.Command, cfg *cmdtypes.GlobalConfig, force bool) error {
	path, err := configPath(cfg)
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("getting config file path: %w", err), oerrors.ExitGeneralError)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("checking config file: %w", err), oerrors.ExitGeneralError)
	}

	if exists && !force {
		return oerrors.NewExitError(&oerrors.DetailError{
			Type:     "validation failed",
			Message:  "config file already exists",
			Location: path,
			Hint:     "Use --force to overwrite it.",
			Cause:    oerrors.ErrValidation,
		}, oerrors.ExitValidationError)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return oerrors.NewExitError(fmt.Errorf("creating config directory: %w", err), oerrors.ExitCodeFromError(err))
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	data = append([]byte(configHeader), data...)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return oerrors.NewExitError(fmt.Errorf("writing config file: %w", err), oerrors.ExitCodeFromError(err))
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file created: "+path))
	return nil
}
