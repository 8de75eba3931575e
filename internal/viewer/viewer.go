// Package viewer implements the interactive wireframe loop: input, camera
// moves, animation timing and drawing to an SDL2 window.
package viewer

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/wireframe/internal/engine/camera"
	"github.com/Faultbox/wireframe/internal/engine/debug"
	"github.com/Faultbox/wireframe/internal/engine/input"
	"github.com/Faultbox/wireframe/internal/engine/raster"
	"github.com/Faultbox/wireframe/internal/engine/renderer"
	"github.com/Faultbox/wireframe/internal/engine/scene"
	"github.com/Faultbox/wireframe/internal/engine/window"
	"github.com/Faultbox/wireframe/internal/logger"
)

// Config holds viewer configuration.
type Config struct {
	ScenePath     string
	Window        window.Config
	Animate       bool
	RateUnit      scene.RateUnit
	Controls      camera.Controls
	FPSLimit      int // ignored with vsync
	ShowStats     bool
	Bounds        bool
	ScreenshotDir string
	Format        raster.Format
}

// Viewer is the interactive viewer instance.
type Viewer struct {
	config   Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	capture  *debug.ScreenshotCapture
	clock    clock
	log      *zap.Logger
}

// New loads the scene and opens the window.
func New(cfg Config) (*Viewer, error) {
	v := &Viewer{
		config: cfg,
		log:    logger.Named("viewer"),
	}

	v.log.Info("initializing viewer",
		zap.String("scene", cfg.ScenePath),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	// Load the scene before opening a window so bad input fails fast.
	sc, err := scene.Load(cfg.ScenePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}

	v.renderer, err = renderer.New(renderer.Config{
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Animate:  cfg.Animate,
		RateUnit: cfg.RateUnit,
		Controls: cfg.Controls,
	}, sc)
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.window, err = window.New(cfg.Window)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	v.input = input.New()
	v.capture = debug.NewScreenshotCapture(cfg.ScreenshotDir, "wireframe", cfg.Format)

	st := sc.Stats()
	v.log.Info("viewer initialized",
		zap.Int("models", st.Models),
		zap.Int("animated", st.Animated),
		zap.Int("segments", st.Segments),
	)
	return v, nil
}

// Run starts the main loop and returns when the window is closed.
func (v *Viewer) Run() error {
	v.running = true

	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting viewer loop")

	for v.running {
		frameStart := time.Now()
		elapsed, delta := v.clock.tick(frameStart, v.renderer.Animating())

		// 1. Process input
		if v.input.Update() {
			v.running = false
			break
		}
		for _, event := range v.input.Events() {
			v.handle(event)
		}
		if !v.running {
			break
		}

		// 2. Update model transforms
		if err := v.renderer.Tick(elapsed, delta); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 3. Draw and present
		drawn := v.draw()
		v.window.Present()

		// FPS counter
		frameCount++
		if since := time.Since(fpsTimer); since >= time.Second {
			fps := float64(frameCount) / since.Seconds()
			v.log.Debug("fps",
				zap.Float64("fps", fps),
				zap.Int("segments", drawn),
				zap.Duration("uptime", v.clock.uptime()),
			)
			if v.config.ShowStats {
				v.window.SetTitle(fmt.Sprintf("%s - %.0f fps - %d segments", v.config.Window.Title, fps, drawn))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}

		v.limitFrameRate(frameStart)
	}

	return nil
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) handle(event input.Event) {
	if event.Type == input.EventWindowResize {
		v.window.Resize(event.Width, event.Height)
		v.renderer.Resize(event.Width, event.Height)
		return
	}

	act, move := bind(event)
	switch act {
	case actionMove:
		if err := v.renderer.Move(move); err != nil {
			v.log.Warn("camera move rejected", zap.Stringer("move", move), zap.Error(err))
		}
	case actionToggleAnimation:
		v.renderer.SetAnimate(!v.renderer.Animating())
		v.log.Info("animation toggled", zap.Bool("on", v.renderer.Animating()))
	case actionToggleBounds:
		v.config.Bounds = !v.config.Bounds
	case actionReload:
		v.reload()
	case actionScreenshot:
		v.screenshot()
	case actionQuit:
		v.running = false
	}
}

// draw renders the current frame and returns the number of segments drawn.
func (v *Viewer) draw() int {
	if !v.config.Bounds {
		return v.renderer.Draw(v.window)
	}

	v.window.Clear()
	w, h := v.renderer.Size()
	sc := debug.WithBoundingBoxes(v.renderer.Scene(), debug.DefaultBBoxPadding)
	segs := renderer.Frame(sc, float64(w), float64(h))
	for _, s := range segs {
		v.window.DrawLine(s.P0.X, s.P0.Y, s.P1.X, s.P1.Y)
	}
	return len(segs)
}

// reload re-reads the scene file. The current scene stays on error.
func (v *Viewer) reload() {
	d, err := scene.LoadFile(v.config.ScenePath)
	if err == nil {
		err = v.renderer.UpdateScene(d, scene.WithBaseDir(filepath.Dir(v.config.ScenePath)))
	}
	if err != nil {
		v.log.Error("scene reload failed", zap.String("path", v.config.ScenePath), zap.Error(err))
		return
	}
	v.log.Info("scene reloaded", zap.String("path", v.config.ScenePath))
}

func (v *Viewer) screenshot() {
	pixels, w, h, err := v.window.ReadPixels()
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	path, err := v.capture.CaptureFromPixels(pixels, w, h)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path))
}

func (v *Viewer) limitFrameRate(frameStart time.Time) {
	if v.config.Window.VSync || v.config.FPSLimit <= 0 {
		return
	}
	budget := time.Second / time.Duration(v.config.FPSLimit)
	if spent := time.Since(frameStart); spent < budget {
		time.Sleep(budget - spent)
	}
}
