// Package event provides the `xinit event` command group.
package event

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/x-company/xbuild-mgr/internal/cmdtypes"
	"github.com/x-company/xbuild-mgr/internal/cmdutil"
	oerrors "github.com/x-company/xbuild-mgr/internal/errors"
	"github.com/x-company/xbuild-mgr/internal/output"
)

// NewEventCmd creates the event command group.
func NewEventCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "event",
		Short: "Manage xinit events",
	}

	c.AddCommand(NewEventAddCmd(cfg))

	return c
}

// NewEventAddCmd creates the event add command.
//
// TODO: generate event scripts once the xinit hook directories are defined.
func NewEventAddCmd(_ *cmdtypes.GlobalConfig) *cobra.Command {
	var flags cmdutil.EventFlags

	c := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new event",
		Long: `Add a new event running at one or more xinit hooks.

Event scripts are not generated yet; the command only checks its input.`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			hooks := flags.Hooks()
			if len(hooks) == 0 {
				return cmdutil.ExitErr(oerrors.NewValidationError(
					"no hook selected for event "+args[0],
					"",
					"hooks",
					"Pass at least one of --init, --prev-init, --post-init, --shutdown, --prev-shutdown, --post-shutdown",
				))
			}

			output.Warn("events are not generated yet", "event", args[0], "hooks", strings.Join(hooks, ","))
			return nil
		},
	}

	flags.AddTo(c)

	return c
}
