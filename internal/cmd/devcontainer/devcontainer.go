// Package devcontainer provides the `xinit devcontainer` command group.
package devcontainer

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/x-company/xbuild-mgr/internal/cmdtypes"
	"github.com/x-company/xbuild-mgr/internal/cmdutil"
	"github.com/x-company/xbuild-mgr/internal/updater"
)

// NewDevContainerCmd creates the devcontainer command group.
func NewDevContainerCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "devcontainer",
		Short: "Manage the VS Code dev container of a project",
	}

	c.AddCommand(NewDevContainerCreateCmd(cfg))

	return c
}

// NewDevContainerCreateCmd creates the devcontainer create command.
func NewDevContainerCreateCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var imageFlags cmdutil.ImageFlags

	c := &cobra.Command{
		Use:   "create",
		Short: "Create the dev container files",
		Long: `Create .devcontainer/ with the VS Code descriptor and the compose files
used for development and tests. Existing files are kept.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			target, err := cmdutil.ResolveImage(cfg, imageFlags.Image)
			if err != nil {
				return cmdutil.ExitErr(err)
			}

			u, err := updater.New(updater.KindDevContainer, updater.Request{
				Directory: cfg.Directory.Value,
				ImageName: target.Name,
			})
			if err != nil {
				return cmdutil.ExitErr(err)
			}

			report, err := u.Update(c.Context())
			cmdutil.PrintReport(c.OutOrStdout(), filepath.Join(cfg.Directory.Value, updater.DevContainerDir), report)
			return cmdutil.ExitErr(err)
		},
	}

	imageFlags.AddTo(c)

	return c
}
