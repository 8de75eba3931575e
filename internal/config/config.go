// Package config handles wireframe configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/Faultbox/wireframe/internal/engine/raster"
	"github.com/Faultbox/wireframe/internal/engine/scene"
)

// Config holds all settings.
type Config struct {
	Scene     string          `yaml:"scene"` // default scene file
	Canvas    CanvasConfig    `yaml:"canvas"`
	Render    RenderConfig    `yaml:"render"`
	Animation AnimationConfig `yaml:"animation"`
	Viewer    ViewerConfig    `yaml:"viewer"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// CanvasConfig holds the output size in pixels.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RenderConfig holds drawing settings.
type RenderConfig struct {
	LineColor   string `yaml:"line_color"`
	MarkerColor string `yaml:"marker_color"`
	Background  string `yaml:"background"`
	MarkerSize  int    `yaml:"marker_size"`
	Supersample int    `yaml:"supersample"`
	Format      string `yaml:"format"` // png, webp or tga
	Bounds      bool   `yaml:"bounds"` // overlay model bounding boxes
}

// AnimationConfig holds animation settings.
type AnimationConfig struct {
	Enabled  bool          `yaml:"enabled"`
	RateUnit string        `yaml:"rate_unit"` // deg_per_ms or rev_per_sec
	FPS      int           `yaml:"fps"`
	Duration time.Duration `yaml:"duration"`
	Workers  int           `yaml:"workers"` // 0 uses one per CPU
}

// ViewerConfig holds interactive viewer settings.
type ViewerConfig struct {
	Title         string `yaml:"title"`
	VSync         bool   `yaml:"vsync"`
	FPSLimit      int    `yaml:"fps_limit"`
	ShowStats     bool   `yaml:"show_stats"`
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Render: RenderConfig{
			LineColor:   "#000000",
			MarkerColor: "#FF0000",
			Background:  "#FFFFFF",
			MarkerSize:  4,
			Supersample: 1,
			Format:      "png",
		},
		Animation: AnimationConfig{
			Enabled:  false,
			RateUnit: "deg_per_ms",
			FPS:      30,
			Duration: 2 * time.Second,
		},
		Viewer: ViewerConfig{
			Title:         "Wireframe",
			VSync:         true,
			FPSLimit:      60,
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks every setting that has a restricted range or format.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := c.Render.Options(c.Canvas.Width, c.Canvas.Height); err != nil {
		return err
	}
	if _, err := c.Render.OutputFormat(); err != nil {
		return err
	}
	if _, err := c.Animation.Unit(); err != nil {
		return err
	}
	if c.Animation.FPS <= 0 {
		return fmt.Errorf("animation fps must be positive, got %d", c.Animation.FPS)
	}
	if c.Animation.Duration < 0 {
		return fmt.Errorf("animation duration must not be negative, got %v", c.Animation.Duration)
	}
	return nil
}

// Options converts the render settings into canvas options.
func (r RenderConfig) Options(width, height int) (raster.Options, error) {
	line, err := raster.ParseColor(r.LineColor)
	if err != nil {
		return raster.Options{}, fmt.Errorf("render.line_color: %w", err)
	}
	marker, err := raster.ParseColor(r.MarkerColor)
	if err != nil {
		return raster.Options{}, fmt.Errorf("render.marker_color: %w", err)
	}
	bg, err := raster.ParseColor(r.Background)
	if err != nil {
		return raster.Options{}, fmt.Errorf("render.background: %w", err)
	}
	if r.Supersample < 1 || r.Supersample > 8 {
		return raster.Options{}, fmt.Errorf("render.supersample must be between 1 and 8, got %d", r.Supersample)
	}
	if r.MarkerSize < 0 {
		return raster.Options{}, fmt.Errorf("render.marker_size must not be negative, got %d", r.MarkerSize)
	}
	return raster.Options{
		Width:       width,
		Height:      height,
		Supersample: r.Supersample,
		Line:        line,
		Marker:      marker,
		Background:  bg,
		MarkerSize:  r.MarkerSize,
	}, nil
}

// OutputFormat returns the configured image format.
func (r RenderConfig) OutputFormat() (raster.Format, error) {
	f, err := raster.ParseFormat(r.Format)
	if err != nil {
		return "", fmt.Errorf("render.format: %w", err)
	}
	return f, nil
}

// Unit returns the configured animation rate unit.
func (a AnimationConfig) Unit() (scene.RateUnit, error) {
	u, err := scene.ParseRateUnit(a.RateUnit)
	if err != nil {
		return 0, fmt.Errorf("animation.rate_unit: %w", err)
	}
	return u, nil
}

// Frames returns the number of frames in Duration at FPS, at least one.
func (a AnimationConfig) Frames() int {
	n := int(a.Duration.Seconds() * float64(a.FPS))
	if n < 1 {
		return 1
	}
	return n
}

// FrameTime returns the elapsed time of frame i.
func (a AnimationConfig) FrameTime(i int) time.Duration {
	return time.Duration(i) * time.Second / time.Duration(a.FPS)
}
