package layout

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/x-company/xbuild-mgr/internal/cmdtypes"
	"github.com/x-company/xbuild-mgr/internal/cmdutil"
	"github.com/x-company/xbuild-mgr/internal/layout"
	"github.com/x-company/xbuild-mgr/internal/output"
)

// NewLayoutListCmd creates the layout list command.
func NewLayoutListCmd(cfg *cmdtypes.GlobalConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the images of the project",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runLayoutList(c, cfg)
		},
	}
}

func runLayoutList(c *cobra.Command, cfg *cmdtypes.GlobalConfig) error {
	dir := cfg.Directory.Value

	images, err := layout.DiscoverImages(dir)
	if err != nil {
		return cmdutil.ExitErr(err)
	}
	if len(images) == 0 {
		output.Info("no images found", "directory", dir)
		return nil
	}

	rows := make([]output.ImageRow, 0, len(images))
	for _, name := range images {
		root := layout.ImageRoot(dir, name)
		services, err := layout.Services(root)
		if err != nil {
			return cmdutil.ExitErr(err)
		}

		rel, err := filepath.Rel(dir, root)
		if err != nil {
			rel = root
		}
		rows = append(rows, output.ImageRow{Name: name, Root: filepath.ToSlash(rel), Services: len(services)})
	}

	fmt.Fprintln(c.OutOrStdout(), output.RenderImageTable(rows))
	return nil
}
