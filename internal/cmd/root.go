// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/x-company/xbuild-mgr/internal/cmd/config"
	"github.com/x-company/xbuild-mgr/internal/cmd/devcontainer"
	"github.com/x-company/xbuild-mgr/internal/cmd/event"
	"github.com/x-company/xbuild-mgr/internal/cmd/layout"
	"github.com/x-company/xbuild-mgr/internal/cmd/service"
	"github.com/x-company/xbuild-mgr/internal/cmdtypes"
	xconfig "github.com/x-company/xbuild-mgr/internal/config"
	"github.com/x-company/xbuild-mgr/internal/output"
	"github.com/x-company/xbuild-mgr/internal/store"
)

// rootFlags holds the persistent flags of the root command.
type rootFlags struct {
	config     string
	dir        string
	verbose    bool
	timestamps bool
}

// NewRootCmd creates the root command for the xinit CLI.
func NewRootCmd() *cobra.Command {
	var flags rootFlags
	cfg := &cmdtypes.GlobalConfig{}

	rootCmd := &cobra.Command{
		Use:   "xinit",
		Short: "Scaffold s6 based container images",
		Long: `xinit creates the layout of container image projects and generates the
service scripts, package manifest and dev container files they need.

Generated files are never overwritten, so every command can be re-run to fill
in what is missing.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return initializeGlobals(c, &flags, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.config, "config", "", "Path to config file (env: XINIT_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&flags.dir, "dir", "d", "", "Project directory (env: XINIT_DIRECTORY, default: last layout or current directory)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.timestamps, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(
		service.NewServiceCmd(cfg),
		layout.NewLayoutCmd(cfg),
		devcontainer.NewDevContainerCmd(cfg),
		event.NewEventCmd(cfg),
		config.NewConfigCmd(cfg),
		NewVersionCmd(cfg),
	)

	return rootCmd
}

// initializeGlobals sets up logging, loads configuration and the store and
// resolves the project directory into cfg.
func initializeGlobals(c *cobra.Command, flags *rootFlags, cfg *cmdtypes.GlobalConfig) error {
	// Early logging so load problems are visible; reconfigured below.
	output.SetupLogging(output.LogConfig{Verbose: flags.verbose})

	configPath, err := xconfig.ResolveConfigPath(flags.config)
	if err != nil {
		return err
	}

	loaded, err := xconfig.NewLoader().LoadWithDefaults(configPath.Value)
	if err != nil {
		// Commands like config vet and config init still work without a usable config.
		output.Warn("could not load config, using defaults", "config", configPath.Value, "error", err)
		loaded = xconfig.DefaultConfig()
	}

	s := openStore()

	var storedDir, storedImage string
	if s != nil {
		storedDir, _ = s.Get(store.KeyDirectory)
		storedImage, _ = s.Get(store.KeyImage)
	}

	directory, err := xconfig.ResolveDirectory(xconfig.ResolveOptions{
		FlagValue:   flags.dir,
		ConfigValue: loaded.Directory,
		StoreValue:  storedDir,
	})
	if err != nil {
		return err
	}

	// The remembered image only applies to the remembered directory.
	imageOpts := xconfig.ResolveOptions{ConfigValue: loaded.Image}
	if directory.Source == xconfig.SourceStore {
		imageOpts.StoreValue = storedImage
	}
	image := xconfig.ResolveImage(imageOpts)

	*cfg = cmdtypes.GlobalConfig{
		Config:     loaded,
		Store:      s,
		ConfigPath: configPath.Value,
		Directory:  directory,
		Image:      image,
		Verbose:    flags.verbose,
	}

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: flags.verbose}
	if c.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(flags.timestamps)
	} else if loaded.Log.Timestamps != nil {
		logCfg.Timestamps = loaded.Log.Timestamps
	}
	output.SetupLogging(logCfg)

	if flags.verbose {
		xconfig.LogResolvedValues(configPath, directory, image)
	}

	return nil
}

// openStore opens the persisted store. Failures only lose the remembered
// defaults, so they are logged and nil is returned.
func openStore() *store.Store {
	path, err := xconfig.GetStoreFile()
	if err != nil {
		output.Debug("no store path", "error", err)
		return nil
	}

	s, err := store.Open(path)
	if err != nil {
		output.Warn("could not open store", "store", path, "error", err)
		return nil
	}
	return s
}
