package service

import (
	"github.com/spf13/cobra"

	"github.com/x-company/xbuild-mgr/internal/cmdtypes"
	"github.com/x-company/xbuild-mgr/internal/cmdutil"
	"github.com/x-company/xbuild-mgr/internal/config"
)

// NewServiceCreateCmd creates the service create command.
func NewServiceCreateCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var imageFlags cmdutil.ImageFlags
	var priorityFlags cmdutil.PriorityFlags

	c := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new service",
		Long: `Create a new service with its build and run scripts.

Existing files are never overwritten. Use 'xinit service modify' to add
optional scripts afterwards.

Examples:
  # Create a service in the only image of the project
  xinit service create mariadb

  # Create a service in a specific image
  xinit service create mariadb -i xcompany/mariadb`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runService(c.Context(), c.OutOrStdout(), cfg, serviceOptions{
				name:     args[0],
				image:    imageFlags.Image,
				priority: priority(c, cfg, &priorityFlags),
			})
		},
	}

	imageFlags.AddTo(c)
	priorityFlags.AddTo(c, config.DefaultPriority)

	return c
}
