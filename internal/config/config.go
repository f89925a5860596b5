// Package config provides hierarchical configuration management for scanpda
// using koanf. Configuration is loaded with priority: environment variables
// > project config (.scanpda/config.yml) > user config
// (~/.config/scanpda/config.yml) > defaults. YAML is the primary format;
// a project-level config.json is accepted as a fallback.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration holds the scanpda CLI settings.
type Configuration struct {
	// AlphabetFile points to a YAML alphabet definition. Empty means the
	// built-in 12-lead ECG alphabet. Can be set via SCANPDA_ALPHABET_FILE.
	AlphabetFile string `koanf:"alphabet_file"`

	// MaxParallel bounds concurrent trace evaluations in batch runs.
	// Can be set via SCANPDA_MAX_PARALLEL.
	MaxParallel int `koanf:"max_parallel"`

	// Color controls colored output: auto | always | never.
	// Can be set via SCANPDA_COLOR.
	Color string `koanf:"color"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path
	// (default: .scanpda/config.yml).
	ProjectConfigPath string
	// SkipUserConfig ignores the user-level config file (used in tests).
	SkipUserConfig bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: environment variables > project config > user config > defaults.
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if !opts.SkipUserConfig {
		if err := loadUserConfig(k); err != nil {
			return nil, err
		}
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider("SCANPDA_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	cfg.AlphabetFile = expandHomePath(cfg.AlphabetFile)
	return &cfg, nil
}

// loadUserConfig loads the user-level YAML config when present.
func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil {
		return nil // no home directory; defaults apply
	}
	if !fileExists(path) {
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading user config %s: %w", path, err)
	}
	return nil
}

// loadProjectConfig loads the project-level config: YAML preferred, JSON
// accepted as fallback. A custom path (from --config) must exist.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	if customPath != "" {
		if !fileExists(customPath) {
			return fmt.Errorf("config file not found: %s", customPath)
		}
		return loadByExtension(k, customPath)
	}

	yamlPath := ProjectConfigPath()
	jsonPath := ProjectConfigJSONPath()
	switch {
	case fileExists(yamlPath):
		return loadByExtension(k, yamlPath)
	case fileExists(jsonPath):
		return loadByExtension(k, jsonPath)
	}
	return nil
}

// loadByExtension picks the parser from the file extension.
func loadByExtension(k *koanf.Koanf, path string) error {
	var parser koanf.Parser = yaml.Parser()
	if strings.HasSuffix(path, ".json") {
		parser = json.Parser()
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("loading config %s: %w", path, err)
	}
	return nil
}

// envTransform converts environment variable names to config keys.
// Example: SCANPDA_MAX_PARALLEL -> max_parallel.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "SCANPDA_"))
}

// expandHomePath expands ~ to the user's home directory.
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
