package config

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/x-company/xbuild-mgr/internal/cmdtypes"
	"github.com/x-company/xbuild-mgr/internal/cmdutil"
	"github.com/x-company/xbuild-mgr/internal/config"
	oerrors "github.com/x-company/xbuild-mgr/internal/errors"
	"github.com/x-company/xbuild-mgr/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate the xinit configuration file",
		Long: `Validate the xinit configuration file against the internal schema.

The command validates the configuration file at ~/.xinit/config.yaml by default.
Use --config flag to specify a different location.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runVet(c, cfg)
		},
	}
}

func runVet(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	path, err := configPath(cfg)
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("getting config file path: %w", err), oerrors.ExitGeneralError)
	}

	exists, err := config.ConfigFileExists(path)
	if err != nil {
		return oerrors.NewExitError(fmt.Errorf("checking config file: %w", err), oerrors.ExitGeneralError)
	}
	if !exists {
		return oerrors.NewExitError(
			oerrors.NewNotFoundError("config file not found", path, "Create one with 'xinit config init'"),
			oerrors.ExitNotFound,
		)
	}

	validator, err := config.NewValidator()
	if err != nil {
		return fmt.Errorf("creating validator: %w", err)
	}

	if err := validator.ValidateFile(path); err != nil {
		var verrs config.ValidationErrors
		if errors.As(err, &verrs) {
			cmdutil.PrintValidationError("config validation failed: "+path, err)
			return &oerrors.ExitError{Code: oerrors.ExitValidationError, Err: err, Printed: true}
		}
		return fmt.Errorf("validating config: %w", err)
	}

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark("Config file is valid: "+path))
	return nil
}
