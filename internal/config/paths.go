package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file, following
// the XDG Base Directory Specification on Linux
// (~/.config/scanpda/config.yml).
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "scanpda", "config.yml"), nil
}

// ProjectConfigPath returns the project-level YAML config path, relative to
// the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".scanpda", "config.yml")
}

// ProjectConfigJSONPath returns the project-level JSON config path, accepted
// as a fallback when no YAML config exists.
func ProjectConfigJSONPath() string {
	return filepath.Join(".scanpda", "config.json")
}

// ProjectConfigDir returns the project-level config directory.
func ProjectConfigDir() string {
	return ".scanpda"
}
