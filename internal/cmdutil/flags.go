// Package cmdutil provides shared command utilities for the xinit subcommands.
// It centralizes flag groups, image resolution, report printing and exit
// error mapping.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/x-company/xbuild-mgr/internal/updater"
)

// ImageFlags holds the image selector shared by service and devcontainer commands.
type ImageFlags struct {
	Image string
}

// AddTo registers the image flag on the given cobra command.
func (f *ImageFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Image, "image", "i", "",
		"Name of the image (default: discovered below <dir>/src)")
}

// PriorityFlags holds the priority of attrs, init and shutdown scripts.
type PriorityFlags struct {
	Priority int
}

// AddTo registers the priority flag with the given default.
func (f *PriorityFlags) AddTo(cmd *cobra.Command, def int) {
	cmd.Flags().IntVarP(&f.Priority, "priority", "p", def,
		"Priority of the generated scripts, a value between 1 and 98 (99 is reserved)")
}

// FeatureFlags selects the optional service scripts.
type FeatureFlags struct {
	updater.Features
}

// AddTo registers the --add-* flags on the given cobra command.
func (f *FeatureFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.AddFix, "add-fix", false,
		"Add an attribute fix script adjusting ownership and permissions")
	cmd.Flags().BoolVar(&f.AddInit, "add-init", false,
		"Add an init script executed when the container starts")
	cmd.Flags().BoolVar(&f.AddShutdown, "add-shutdown", false,
		"Add a script executed when the container shuts down")
	cmd.Flags().BoolVar(&f.AddLog, "add-log", false,
		"Add a log script for the service")
	cmd.Flags().BoolVar(&f.AddFinish, "add-finish", false,
		"Add a finish script executed when the service stops")
	cmd.Flags().BoolVar(&f.AddHealth, "add-health", false,
		"Add a health check script for the service")
}

// EventFlags holds the hooks an event runs at.
type EventFlags struct {
	Init         bool
	PrevInit     bool
	PostInit     bool
	Shutdown     bool
	PrevShutdown bool
	PostShutdown bool
}

// AddTo registers the event hook flags on the given cobra command.
func (f *EventFlags) AddTo(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.Init, "init", false, "Run the event when xinit is starting")
	cmd.Flags().BoolVar(&f.PrevInit, "prev-init", false, "Run the event before xinit starts")
	cmd.Flags().BoolVar(&f.PostInit, "post-init", false, "Run the event after xinit has started")
	cmd.Flags().BoolVar(&f.Shutdown, "shutdown", false, "Run the event when xinit is shutting down")
	cmd.Flags().BoolVar(&f.PrevShutdown, "prev-shutdown", false, "Run the event before xinit shuts down")
	cmd.Flags().BoolVar(&f.PostShutdown, "post-shutdown", false, "Run the event after xinit has stopped")
}

// Hooks returns the names of the selected hooks.
func (f *EventFlags) Hooks() []string {
	var hooks []string
	for _, h := range []struct {
		name string
		set  bool
	}{
		{"init", f.Init},
		{"prev-init", f.PrevInit},
		{"post-init", f.PostInit},
		{"shutdown", f.Shutdown},
		{"prev-shutdown", f.PrevShutdown},
		{"post-shutdown", f.PostShutdown},
	} {
		if h.set {
			hooks = append(hooks, h.name)
		}
	}
	return hooks
}
