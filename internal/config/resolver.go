package config

import (
	"os"

	"github.com/x-company/xbuild-mgr/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceStore indicates value was remembered from a previous run.
	SourceStore ConfigSource = "store"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue is a configuration value together with its origin.
type ResolvedValue struct {
	// Key names the value.
	Key string
	// Value is the winning value.
	Value string
	// Source indicates where Value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveOptions contains the candidate values of one setting.
// The environment variable is read by the resolver.
type ResolveOptions struct {
	// FlagValue is the command-line flag value (empty if not set).
	FlagValue string
	// ConfigValue is the value from the config file (empty if not set).
	ConfigValue string
	// StoreValue is the remembered value (empty if not set).
	StoreValue string
	// DefaultValue is used when nothing else is set.
	DefaultValue string
}

// resolve picks the first non-empty value in the order flag > env > config >
// store > default.
func resolve(key, envVar string, opts ResolveOptions) ResolvedValue {
	result := ResolvedValue{
		Key:      key,
		Shadowed: make(map[ConfigSource]string),
	}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, opts.FlagValue},
		{SourceEnv, os.Getenv(envVar)},
		{SourceConfig, opts.ConfigValue},
		{SourceStore, opts.StoreValue},
		{SourceDefault, opts.DefaultValue},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}

	return result
}

// ResolveDirectory resolves the project directory using precedence:
// (1) --dir flag, (2) XINIT_DIRECTORY env, (3) config.directory,
// (4) the directory of the last created layout, (5) the working directory.
func ResolveDirectory(opts ResolveOptions) (ResolvedValue, error) {
	if opts.DefaultValue == "" {
		wd, err := os.Getwd()
		if err != nil {
			return ResolvedValue{}, err
		}
		opts.DefaultValue = wd
	}

	result := resolve("directory", EnvDirectory, opts)

	expanded, err := ExpandPath(result.Value)
	if err != nil {
		return result, err
	}
	result.Value = expanded

	return result, nil
}

// ResolveImage resolves the image name using precedence:
// (1) --image flag, (2) XINIT_IMAGE env, (3) config.image, (4) the remembered
// image. An empty result means the image is discovered from the layout.
func ResolveImage(opts ResolveOptions) ResolvedValue {
	return resolve("image", EnvImage, opts)
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) XINIT_CONFIG env, (3) ~/.xinit/config.yaml default.
func ResolveConfigPath(flagValue string) (ResolvedValue, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return ResolvedValue{}, err
	}

	result := resolve("config", EnvConfig, ResolveOptions{
		FlagValue:    flagValue,
		DefaultValue: paths.ConfigFile,
	})

	expanded, err := ExpandPath(result.Value)
	if err != nil {
		return result, err
	}
	result.Value = expanded

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values ...ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
