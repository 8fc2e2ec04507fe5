package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Paths contains standard filesystem paths for relkit.
type Paths struct {
	// ConfigFile is the path to the config file (~/.relkit/config.yaml).
	ConfigFile string

	// HomeDir is the relkit home directory (~/.relkit).
	HomeDir string
}

// DefaultPaths returns the default paths for relkit.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	relkitHome := filepath.Join(homeDir, ".relkit")

	return &Paths{
		ConfigFile: filepath.Join(relkitHome, "config.yaml"),
		HomeDir:    relkitHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If RELKIT_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("RELKIT_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
