package config

import "fmt"

// Validate checks configuration values for correctness.
func Validate(cfg *Configuration) error {
	if cfg.MaxParallel < 1 || cfg.MaxParallel > 64 {
		return fmt.Errorf("max_parallel must be between 1 and 64, got %d", cfg.MaxParallel)
	}
	switch cfg.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always, or never, got %q", cfg.Color)
	}
	return nil
}
