package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}

	if cfg.Input.Buttons != 5 {
		t.Errorf("expected 5 buttons, got %d", cfg.Input.Buttons)
	}
	if cfg.Input.DoubleClickSpeed != 250*time.Millisecond {
		t.Errorf("expected double click 250ms, got %v", cfg.Input.DoubleClickSpeed)
	}
	if cfg.Input.MinDragLength != 4 {
		t.Errorf("expected drag length 4, got %d", cfg.Input.MinDragLength)
	}

	if cfg.UI.Opacity != 1 {
		t.Errorf("expected opacity 1, got %f", cfg.UI.Opacity)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestInputOptions(t *testing.T) {
	cfg := Default()
	cfg.Input.Buttons = 3
	cfg.Input.DoubleClickSpeed = time.Second

	opts := cfg.InputOptions()
	if opts.Buttons != 3 {
		t.Errorf("expected 3 buttons, got %d", opts.Buttons)
	}
	if opts.DoubleClickSpeed != time.Second {
		t.Errorf("expected 1s, got %v", opts.DoubleClickSpeed)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  title: "skin lab"
  width: 1920
  height: 1080

input:
  buttons: 3
  double_click_speed: 400ms
  min_drag_length: 8

ui:
  skin_path: "skins/default.yaml"
  opacity: 0.75

logging:
  level: "debug"
  log_file: "ui.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Title != "skin lab" {
		t.Errorf("expected title 'skin lab', got %s", cfg.Window.Title)
	}
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920, got %d", cfg.Window.Width)
	}
	if cfg.Input.Buttons != 3 {
		t.Errorf("expected 3 buttons, got %d", cfg.Input.Buttons)
	}
	if cfg.Input.DoubleClickSpeed != 400*time.Millisecond {
		t.Errorf("expected 400ms, got %v", cfg.Input.DoubleClickSpeed)
	}
	if cfg.Input.MinDragLength != 8 {
		t.Errorf("expected drag length 8, got %d", cfg.Input.MinDragLength)
	}
	if cfg.UI.SkinPath != "skins/default.yaml" {
		t.Errorf("expected skin path, got %s", cfg.UI.SkinPath)
	}
	if cfg.UI.Opacity != 0.75 {
		t.Errorf("expected opacity 0.75, got %f", cfg.UI.Opacity)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}

	// Unset fields keep their defaults.
	if cfg.Window.FPSLimit != 60 {
		t.Errorf("expected default fps limit 60, got %d", cfg.Window.FPSLimit)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"negative buttons", func(c *Config) { c.Input.Buttons = -1 }, true},
		{"negative double click", func(c *Config) { c.Input.DoubleClickSpeed = -time.Second }, true},
		{"opacity above one", func(c *Config) { c.UI.Opacity = 1.5 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "skin flag",
			setup: func() { *flagSkin = "custom.yaml" },
			verify: func(cfg *Config) {
				if cfg.UI.SkinPath != "custom.yaml" {
					t.Errorf("expected skin custom.yaml, got %s", cfg.UI.SkinPath)
				}
			},
			teardown: func() { *flagSkin = "" },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Window.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Window.Width)
				}
				if cfg.Window.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "buttons flag",
			setup: func() { *flagButtons = 8 },
			verify: func(cfg *Config) {
				if cfg.Input.Buttons != 8 {
					t.Errorf("expected 8 buttons, got %d", cfg.Input.Buttons)
				}
			},
			teardown: func() { *flagButtons = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.UI.SkinPath = "skins/dark.yaml"
	cfg.Input.DoubleClickSpeed = 300 * time.Millisecond
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if loaded.UI.SkinPath != "skins/dark.yaml" {
		t.Errorf("expected skin path to survive, got %s", loaded.UI.SkinPath)
	}
	if loaded.Input.DoubleClickSpeed != 300*time.Millisecond {
		t.Errorf("expected 300ms, got %v", loaded.Input.DoubleClickSpeed)
	}
}
