package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Faultbox/wireframe/internal/engine/raster"
	"github.com/Faultbox/wireframe/internal/engine/scene"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Canvas.Width != 800 || cfg.Canvas.Height != 600 {
		t.Errorf("expected canvas 800x600, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Render.LineColor != "#000000" || cfg.Render.MarkerColor != "#FF0000" {
		t.Errorf("unexpected colours %s / %s", cfg.Render.LineColor, cfg.Render.MarkerColor)
	}
	if cfg.Render.MarkerSize != 4 {
		t.Errorf("expected marker size 4, got %d", cfg.Render.MarkerSize)
	}
	if cfg.Animation.Enabled {
		t.Error("expected animation to be disabled by default")
	}
	if cfg.Animation.RateUnit != "deg_per_ms" {
		t.Errorf("expected rate unit deg_per_ms, got %s", cfg.Animation.RateUnit)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
scene: scenes/cube.yaml

canvas:
  width: 1024
  height: 768

render:
  line_color: "#00FF00"
  supersample: 2
  format: webp

animation:
  enabled: true
  rate_unit: rev_per_sec
  fps: 24
  duration: 5s

viewer:
  vsync: false

logging:
  level: "debug"
  log_file: "wireframe.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Scene != "scenes/cube.yaml" {
		t.Errorf("expected scene scenes/cube.yaml, got %s", cfg.Scene)
	}
	if cfg.Canvas.Width != 1024 || cfg.Canvas.Height != 768 {
		t.Errorf("expected canvas 1024x768, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
	}
	// Unset keys keep their defaults.
	if cfg.Render.MarkerColor != "#FF0000" {
		t.Errorf("expected default marker colour, got %s", cfg.Render.MarkerColor)
	}
	if cfg.Animation.Duration != 5*time.Second {
		t.Errorf("expected duration 5s, got %v", cfg.Animation.Duration)
	}
	if cfg.Viewer.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Logging.LogFile != "wireframe.log" {
		t.Errorf("expected log file 'wireframe.log', got %s", cfg.Logging.LogFile)
	}

	if u, err := cfg.Animation.Unit(); err != nil || u != scene.RevolutionsPerSecond {
		t.Errorf("Unit() = %v, %v", u, err)
	}
	if f, err := cfg.Render.OutputFormat(); err != nil || f != raster.WebP {
		t.Errorf("OutputFormat() = %v, %v", f, err)
	}
	if got := cfg.Animation.Frames(); got != 120 {
		t.Errorf("Frames() = %d, want 120", got)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
canvas:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
	if _, err := LoadFile(configPath); err == nil {
		t.Error("expected LoadFile error, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Canvas.Width = 0 }},
		{"bad colour", func(c *Config) { c.Render.LineColor = "black" }},
		{"bad format", func(c *Config) { c.Render.Format = "gif" }},
		{"supersample too large", func(c *Config) { c.Render.Supersample = 16 }},
		{"bad rate unit", func(c *Config) { c.Animation.RateUnit = "rpm" }},
		{"zero fps", func(c *Config) { c.Animation.FPS = 0 }},
		{"negative duration", func(c *Config) { c.Animation.Duration = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestRenderOptions(t *testing.T) {
	opts, err := Default().Render.Options(320, 200)
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	want := raster.DefaultOptions(320, 200)
	if opts != want {
		t.Errorf("Options() = %+v, want %+v", opts, want)
	}
}

func TestFrameTime(t *testing.T) {
	a := AnimationConfig{FPS: 25, Duration: 0}
	if got := a.FrameTime(5); got != 200*time.Millisecond {
		t.Errorf("FrameTime(5) = %v, want 200ms", got)
	}
	if got := a.Frames(); got != 1 {
		t.Errorf("Frames() with zero duration = %d, want 1", got)
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

	configPath := filepath.Join(tmpDir, "wireframe.yaml")
	if err := os.WriteFile(configPath, []byte("canvas:\n  width: 640\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}
	if path := findConfigFile(); path == "" {
		t.Error("expected to find wireframe.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		verify func(t *testing.T, cfg *Config)
	}{
		{
			name: "debug flag",
			args: []string{"-debug"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
				if !cfg.Viewer.ShowStats {
					t.Error("expected show_stats to be enabled with debug flag")
				}
			},
		},
		{
			name: "width and height flags",
			args: []string{"-width", "1920", "-height", "1080"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Canvas.Width != 1920 || cfg.Canvas.Height != 1080 {
					t.Errorf("expected 1920x1080, got %dx%d", cfg.Canvas.Width, cfg.Canvas.Height)
				}
			},
		},
		{
			name: "scene and animate flags",
			args: []string{"-scene", "orbit.json", "-animate"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene != "orbit.json" {
					t.Errorf("expected scene orbit.json, got %s", cfg.Scene)
				}
				if !cfg.Animation.Enabled {
					t.Error("expected animation to be enabled")
				}
			},
		},
		{
			name: "zero size is ignored",
			args: []string{"-width", "0"},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Canvas.Width != 800 {
					t.Errorf("expected default width 800, got %d", cfg.Canvas.Width)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := flag.NewFlagSet(tt.name, flag.ContinueOnError)
			f := RegisterFlags(fs)
			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse: %v", err)
			}
			cfg := Default()
			f.apply(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadWithFlags(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "c.yaml")
	if err := os.WriteFile(configPath, []byte("canvas:\n  width: 640\n  height: 480\n"), 0644); err != nil {
		t.Fatal(err)
	}

	fs := flag.NewFlagSet("load", flag.ContinueOnError)
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"-config", configPath, "-height", "360"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWithFlags(f)
	if err != nil {
		t.Fatalf("LoadWithFlags: %v", err)
	}
	// file < flags
	if cfg.Canvas.Width != 640 || cfg.Canvas.Height != 360 {
		t.Errorf("canvas = %dx%d, want 640x360", cfg.Canvas.Width, cfg.Canvas.Height)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Canvas.Width = 1234
	cfg.Animation.Duration = 3 * time.Second
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if loaded.Canvas.Width != 1234 || loaded.Animation.Duration != 3*time.Second {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}
