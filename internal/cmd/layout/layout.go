// Package layout provides the `xinit layout` command group.
package layout

import (
	"github.com/spf13/cobra"

	"github.com/x-company/xbuild-mgr/internal/cmdtypes"
)

// NewLayoutCmd creates the layout command group.
func NewLayoutCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "layout",
		Short: "Create and inspect project layouts",
		Long:  `Create the directory layout of an image project and list its images.`,
	}

	c.AddCommand(
		NewLayoutCreateCmd(cfg),
		NewLayoutListCmd(cfg),
	)

	return c
}
