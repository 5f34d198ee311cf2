package config

import (
	"os"
	"path/filepath"
)

// Environment variables naming xinit files.
const (
	EnvConfig = "XINIT_CONFIG"
	EnvStore  = "XINIT_STORE"
)

// Paths contains standard filesystem paths for xinit.
type Paths struct {
	// ConfigFile is the path to the config file (~/.xinit/config.yaml).
	ConfigFile string

	// StoreFile is the path to the persisted store (~/.xinit/store.yaml).
	StoreFile string

	// HomeDir is the xinit home directory (~/.xinit).
	HomeDir string
}

// DefaultPaths returns the default paths for xinit.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	xinitHome := filepath.Join(homeDir, ".xinit")

	return &Paths{
		ConfigFile: filepath.Join(xinitHome, "config.yaml"),
		StoreFile:  filepath.Join(xinitHome, "store.yaml"),
		HomeDir:    xinitHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If XINIT_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return ExpandPath(envPath)
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// GetStoreFile returns the store file path.
// If XINIT_STORE is set, it takes precedence.
func GetStoreFile() (string, error) {
	if envPath := os.Getenv(EnvStore); envPath != "" {
		return ExpandPath(envPath)
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.StoreFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// Handle ~username (not supported, return as-is)
	return path, nil
}
