// Package main is the entry point for the interactive wireframe viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/wireframe/internal/config"
	"github.com/Faultbox/wireframe/internal/engine/window"
	"github.com/Faultbox/wireframe/internal/logger"
	"github.com/Faultbox/wireframe/internal/viewer"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if arg := config.Arg(0); arg != "" {
		cfg.Scene = arg
	}
	if cfg.Scene == "" {
		fmt.Fprintln(os.Stderr, "Usage: wireview [options] <scene>")
		os.Exit(1)
	}

	logger.Info("=== Wireframe viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	vcfg, err := viewerConfig(cfg)
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		os.Exit(1)
	}

	v, err := viewer.New(vcfg)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

func viewerConfig(cfg *config.Config) (viewer.Config, error) {
	opts, err := cfg.Render.Options(cfg.Canvas.Width, cfg.Canvas.Height)
	if err != nil {
		return viewer.Config{}, err
	}
	unit, err := cfg.Animation.Unit()
	if err != nil {
		return viewer.Config{}, err
	}
	format, err := cfg.Render.OutputFormat()
	if err != nil {
		return viewer.Config{}, err
	}

	return viewer.Config{
		ScenePath: cfg.Scene,
		Window: window.Config{
			Title:      cfg.Viewer.Title,
			Width:      cfg.Canvas.Width,
			Height:     cfg.Canvas.Height,
			VSync:      cfg.Viewer.VSync,
			Line:       opts.Line,
			Marker:     opts.Marker,
			Background: opts.Background,
			MarkerSize: opts.MarkerSize,
		},
		Animate:       cfg.Animation.Enabled,
		RateUnit:      unit,
		FPSLimit:      cfg.Viewer.FPSLimit,
		ShowStats:     cfg.Viewer.ShowStats,
		Bounds:        cfg.Render.Bounds,
		ScreenshotDir: cfg.Viewer.ScreenshotDir,
		Format:        format,
	}, nil
}
