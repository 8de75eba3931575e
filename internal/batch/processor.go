// Package batch renders animation frame sequences with a worker pool.
package batch

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/wireframe/internal/engine/debug"
	"github.com/Faultbox/wireframe/internal/engine/raster"
	"github.com/Faultbox/wireframe/internal/engine/renderer"
	"github.com/Faultbox/wireframe/internal/engine/scene"
	"github.com/Faultbox/wireframe/internal/logger"
)

// Config holds all shared resources for a batch run.
type Config struct {
	Scene    scene.Descriptor
	BaseDir  string // resolves relative mesh paths
	Canvas   raster.Options
	RateUnit scene.RateUnit
	FPS      int
	Frames   int
	Start    time.Duration // elapsed time of frame 0
	Workers  int           // 0 uses one per CPU
	Bounds   bool          // overlay model bounding boxes
	Capture  *debug.ScreenshotCapture

	// ProgressInterval is how often progress is logged. 0 disables it.
	ProgressInterval time.Duration
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Index    int
	Elapsed  time.Duration
	Path     string
	Segments int
	Err      error
}

// FrameTime returns the elapsed animation time of frame i.
func (c Config) FrameTime(i int) time.Duration {
	return c.Start + time.Duration(i)*time.Second/time.Duration(c.FPS)
}

func (c Config) validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Frames <= 0 {
		return fmt.Errorf("frame count must be positive, got %d", c.Frames)
	}
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("invalid canvas size %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Capture == nil {
		return fmt.Errorf("no frame capture configured")
	}
	return nil
}

// Run renders cfg.Frames frames. The scene is processed once up front so
// invalid descriptors fail before any worker starts; every worker then owns a
// private copy. Results are ordered by frame index. The returned error is
// non-nil if any frame failed.
func Run(cfg Config) ([]Result, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	base, err := scene.Process(cfg.Scene, scene.WithBaseDir(cfg.BaseDir))
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Frames {
		workers = cfg.Frames
	}

	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()
	logger.Info("rendering frames",
		zap.Int("frames", total),
		zap.Int("workers", workers),
		zap.Int("fps", cfg.FPS),
	)

	// Progress reporter
	done := make(chan struct{})
	if cfg.ProgressInterval > 0 {
		go func() {
			ticker := time.NewTicker(cfg.ProgressInterval)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						rate := float64(p) / time.Since(start).Seconds()
						logger.Info("progress",
							zap.Int64("done", p),
							zap.Int("total", total),
							zap.Float64("frames_per_sec", rate),
						)
					}
				}
			}
		}()
	}

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		r, err := renderer.New(renderer.Config{
			Width:    cfg.Canvas.Width,
			Height:   cfg.Canvas.Height,
			Animate:  true,
			RateUnit: cfg.RateUnit,
		}, base.Clone())
		if err != nil {
			close(frameChan)
			wg.Wait()
			close(done)
			return nil, err
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = renderFrame(cfg, r, idx)
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			logger.Warn("frame failed", zap.Int("frame", res.Index), zap.Error(res.Err))
		}
	}
	logger.Info("frames rendered",
		zap.Int("frames", total),
		zap.Int("failed", failed),
		zap.Duration("took", time.Since(start)),
	)
	if failed > 0 {
		return results, fmt.Errorf("%d of %d frames failed", failed, total)
	}
	return results, nil
}

func renderFrame(cfg Config, r *renderer.Renderer, idx int) Result {
	res := Result{Index: idx, Elapsed: cfg.FrameTime(idx)}

	if err := r.Tick(res.Elapsed, time.Second/time.Duration(cfg.FPS)); err != nil {
		res.Err = err
		return res
	}

	canvas := raster.NewCanvas(cfg.Canvas)
	if cfg.Bounds {
		sc := debug.WithBoundingBoxes(r.Scene(), debug.DefaultBBoxPadding)
		segs := renderer.Frame(sc, float64(cfg.Canvas.Width), float64(cfg.Canvas.Height))
		for _, s := range segs {
			canvas.DrawLine(s.P0.X, s.P0.Y, s.P1.X, s.P1.Y)
		}
		res.Segments = len(segs)
	} else {
		res.Segments = r.Draw(canvas)
	}

	res.Path, res.Err = cfg.Capture.CaptureFrame(canvas.Image(), idx)
	return res
}
