// Package config handles host configuration loading and management.
package config

import (
	"time"

	"github.com/Faultbox/midgard-ui/internal/ui/input"
)

// Config holds all host settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Input   InputConfig   `yaml:"input"`
	UI      UIConfig      `yaml:"ui"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings for demo hosts.
type WindowConfig struct {
	Title    string `yaml:"title"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	FPSLimit int    `yaml:"fps_limit"`
}

// InputConfig holds input state machine settings.
type InputConfig struct {
	Buttons          int           `yaml:"buttons"`
	DoubleClickSpeed time.Duration `yaml:"double_click_speed"`
	MinDragLength    int           `yaml:"min_drag_length"`
}

// UIConfig holds skin and styling settings.
type UIConfig struct {
	SkinPath string `yaml:"skin_path"`
	// Opacity is the root opacity every widget inherits.
	Opacity float32 `yaml:"opacity"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	opts := input.DefaultOptions()
	return &Config{
		Window: WindowConfig{
			Title:    "midgard-ui",
			Width:    1280,
			Height:   720,
			FPSLimit: 60,
		},
		Input: InputConfig{
			Buttons:          opts.Buttons,
			DoubleClickSpeed: opts.DoubleClickSpeed,
			MinDragLength:    opts.MinDragLength,
		},
		UI: UIConfig{
			SkinPath: "",
			Opacity:  1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// InputOptions converts the input section to input.Options.
func (c *Config) InputOptions() input.Options {
	return input.Options{
		Buttons:          c.Input.Buttons,
		DoubleClickSpeed: c.Input.DoubleClickSpeed,
		MinDragLength:    c.Input.MinDragLength,
	}
}
