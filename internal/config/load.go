package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the standard locations.
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the runtime cannot work with.
func (c *Config) Validate() error {
	if c.Input.Buttons < 0 {
		return fmt.Errorf("input.buttons must not be negative, got %d", c.Input.Buttons)
	}
	if c.Input.DoubleClickSpeed < 0 {
		return fmt.Errorf("input.double_click_speed must not be negative, got %v", c.Input.DoubleClickSpeed)
	}
	if c.UI.Opacity < 0 || c.UI.Opacity > 1 {
		return fmt.Errorf("ui.opacity must be within [0, 1], got %v", c.UI.Opacity)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "MidgardUI")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "MidgardUI")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "midgard-ui")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "midgard-ui")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
