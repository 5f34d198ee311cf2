package layout

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/x-company/xbuild-mgr/internal/cmdtypes"
	"github.com/x-company/xbuild-mgr/internal/cmdutil"
	"github.com/x-company/xbuild-mgr/internal/layout"
	"github.com/x-company/xbuild-mgr/internal/output"
	"github.com/x-company/xbuild-mgr/internal/store"
)

// NewLayoutCreateCmd creates the layout create command.
func NewLayoutCreateCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	var noProject bool

	c := &cobra.Command{
		Use:   "create <image>",
		Short: "Create the layout for a new image",
		Long: `Create the directory layout for a new image in the project directory.

Creates:
  src/<image>/build/services/   service definitions
  tests/unit/                   unit tests
  package.json                  build, test and debug tasks
  .devcontainer/                VS Code dev container

The project directory and image are remembered, so later commands run
without --dir and --image.

Examples:
  # Create a layout in the current directory
  xinit layout create xcompany/mariadb

  # Create only the directories
  xinit layout create xcompany/mariadb --dir ./images --no-project`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runLayoutCreate(c, cfg, args[0], !noProject)
		},
	}

	c.Flags().BoolVar(&noProject, "no-project", false,
		"Create only the directories, without package.json and dev container files")

	return c
}

func runLayoutCreate(c *cobra.Command, cfg *cmdtypes.GlobalConfig, image string, project bool) error {
	dir, err := filepath.Abs(cfg.Directory.Value)
	if err != nil {
		return cmdutil.ExitErr(fmt.Errorf("resolving directory: %w", err))
	}

	var res *layout.Result
	err = output.RunWithSpinner(c.Context(), func() error {
		var createErr error
		res, createErr = layout.Create(c.Context(), layout.Options{
			Directory:     dir,
			ImageName:     image,
			ProjectLayout: project,
		})
		return createErr
	}, output.WithTitle(fmt.Sprintf("Creating layout for %s", image)))
	if res != nil {
		cmdutil.PrintReport(c.OutOrStdout(), dir, res.Report)
	}
	if err != nil {
		return cmdutil.ExitErr(err)
	}

	remember(cfg.Store, dir, image)

	fmt.Fprintln(c.OutOrStdout(), output.FormatCheckmark(
		fmt.Sprintf("Layout for image %s created in %s", image, dir)))
	return nil
}

// remember records the layout as the default for later commands.
func remember(s *store.Store, dir, image string) {
	if s == nil {
		output.Debug("no store available, layout not remembered")
		return
	}

	s.Set(store.KeyDirectory, dir)
	s.Set(store.KeyImage, image)
	if err := s.Save(); err != nil {
		output.Warn("could not remember layout", "store", s.Path(), "error", err)
		return
	}
	output.Debug("remembered layout", "store", s.Path(), "directory", dir, "image", image)
}
