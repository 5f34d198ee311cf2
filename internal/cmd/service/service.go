// Package service provides the `xinit service` command group.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/x-company/xbuild-mgr/internal/cmdtypes"
	"github.com/x-company/xbuild-mgr/internal/cmdutil"
	oerrors "github.com/x-company/xbuild-mgr/internal/errors"
	"github.com/x-company/xbuild-mgr/internal/updater"
)

// NewServiceCmd creates the service command group.
func NewServiceCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	c := &cobra.Command{
		Use:   "service",
		Short: "Create and modify services of an image",
		Long: `Create and modify the s6 services of an image.

Each service lives in <image>/build/services/<name> and consists of a build
and a run script plus optional scripts selected with --add-* flags.`,
	}

	c.AddCommand(
		NewServiceCreateCmd(cfg),
		NewServiceModifyCmd(cfg),
	)

	return c
}

// serviceOptions holds the inputs of one service run.
type serviceOptions struct {
	name     string
	image    string
	features updater.Features
	priority int
	modify   bool
}

func runService(ctx context.Context, w io.Writer, cfg *cmdtypes.GlobalConfig, opts serviceOptions) error {
	if err := updater.ValidatePriority(opts.priority); err != nil {
		return cmdutil.ExitErr(err)
	}

	target, err := cmdutil.ResolveImage(cfg, opts.image)
	if err != nil {
		return cmdutil.ExitErr(err)
	}

	u, err := updater.NewService(updater.Request{
		Directory:   target.Root,
		ImageName:   target.Name,
		ServiceName: opts.name,
		Features:    opts.features,
		Priority:    opts.priority,
		Modify:      opts.modify,
	})
	if err != nil {
		return cmdutil.ExitErr(err)
	}

	if opts.modify {
		if _, err := os.Stat(u.Dir()); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return cmdutil.ExitErr(oerrors.NewNotFoundError(
					fmt.Sprintf("service %q does not exist in image %s", opts.name, target.Name),
					u.Dir(),
					fmt.Sprintf("Create it with 'xinit service create %s'", opts.name),
				))
			}
			return cmdutil.ExitErr(fmt.Errorf("checking service %s: %w", opts.name, err))
		}
	}

	report, err := u.Update(ctx)
	cmdutil.PrintReport(w, u.Dir(), report)
	return cmdutil.ExitErr(err)
}

// priority returns the --priority value, or the configured default when the
// flag was not given.
func priority(c *cobra.Command, cfg *cmdtypes.GlobalConfig, flags *cmdutil.PriorityFlags) int {
	if c.Flags().Changed("priority") {
		return flags.Priority
	}
	return cfg.Priority()
}
