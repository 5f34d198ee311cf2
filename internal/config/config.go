// Package config provides configuration loading and management.
package config

// DefaultPriority is the service script priority when none is configured.
const DefaultPriority = 10

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// Config represents the xinit configuration.
// Loaded from ~/.xinit/config.yaml, validated against the embedded CUE schema.
type Config struct {
	// Directory is the project directory used when --dir is not given.
	// Env: XINIT_DIRECTORY
	Directory string `json:"directory,omitempty" yaml:"directory,omitempty"`

	// Image is the image used when --image is not given.
	// Env: XINIT_IMAGE
	Image string `json:"image,omitempty" yaml:"image,omitempty"`

	// Priority orders attrs, init and shutdown scripts.
	// Env: XINIT_PRIORITY, Default: 10
	Priority int `json:"priority,omitempty" yaml:"priority,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `xinit config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Priority: DefaultPriority,
	}
}

// WithDefaults returns a copy of c with unset fields defaulted.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Priority == 0 {
		out.Priority = DefaultPriority
	}
	return &out
}
