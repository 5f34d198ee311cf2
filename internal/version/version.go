// Package version provides version information for the xinit CLI.
package version

import (
	"fmt"
	"runtime"
)

// ProductName is the name of the CLI. It also names the config home (~/.xinit).
const ProductName = "xinit"

// Build-time variables set via ldflags.
var (
	// Version is the CLI version.
	Version = "v0.1.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Info contains version information.
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Name:      ProductName,
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("%s:\n  Version:  %s\n  Build ID: %s/%s\n  Go:       %s",
		i.Name, i.Version, i.BuildDate, i.GitCommit, i.GoVersion)
}
