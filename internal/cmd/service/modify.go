package service

import (
	"github.com/spf13/cobra"

	"github.com/x-company/xbuild-mgr/internal/cmdtypes"
	"github.com/x-company/xbuild-mgr/internal/cmdutil"
	"github.com/x-company/xbuild-mgr/internal/config"
)

// NewServiceModifyCmd creates the service modify command.
func NewServiceModifyCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var imageFlags cmdutil.ImageFlags
	var priorityFlags cmdutil.PriorityFlags
	var featureFlags cmdutil.FeatureFlags

	c := &cobra.Command{
		Use:   "modify <name>",
		Short: "Add optional scripts to a service",
		Long: `Add optional scripts to an existing service.

Attribute fix, init and shutdown scripts are prefixed with the priority so
they run in order across services.

Examples:
  # Add an init script running early
  xinit service modify mariadb --add-init -p 5

  # Add log and health scripts
  xinit service modify mariadb --add-log --add-health`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runService(c.Context(), c.OutOrStdout(), cfg, serviceOptions{
				name:     args[0],
				image:    imageFlags.Image,
				features: featureFlags.Features,
				priority: priority(c, cfg, &priorityFlags),
				modify:   true,
			})
		},
	}

	imageFlags.AddTo(c)
	priorityFlags.AddTo(c, config.DefaultPriority)
	featureFlags.AddTo(c)

	return c
}
