// Package window handles the SDL2 window and the 2D renderer the wireframe
// is drawn with.
package window

import (
	"fmt"
	"image/color"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/wireframe/internal/logger"
)

func init() {
	// SDL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool

	Line       color.NRGBA
	Marker     color.NRGBA
	Background color.NRGBA
	MarkerSize int
}

// Window wraps an SDL2 window and its accelerated 2D renderer. It implements
// renderer.Surface with the origin at the bottom-left corner.
type Window struct {
	config      Config
	sdlWindow   *sdl.Window
	sdlRenderer *sdl.Renderer
	width       int
	height      int
}

// New creates a new window.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config: cfg,
		width:  cfg.Width,
		height: cfg.Height,
	}

	logger.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	rendererFlags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		rendererFlags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.sdlRenderer, err = sdl.CreateRenderer(w.sdlWindow, -1, rendererFlags)
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	// Draw in window coordinates on HiDPI displays.
	if err := w.sdlRenderer.SetLogicalSize(int32(cfg.Width), int32(cfg.Height)); err != nil {
		logger.Warn("failed to set logical size", zap.Error(err))
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	logger.Info("closing window")

	if w.sdlRenderer != nil {
		w.sdlRenderer.Destroy()
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// Clear fills the window with the background colour.
func (w *Window) Clear() {
	c := w.config.Background
	w.sdlRenderer.SetDrawColor(c.R, c.G, c.B, c.A)
	w.sdlRenderer.Clear()
}

// DrawLine draws a line with square markers at both ends. y is flipped so
// that +y points up.
func (w *Window) DrawLine(x0, y0, x1, y1 float64) {
	ax, ay := float32(x0), float32(float64(w.height)-y0)
	bx, by := float32(x1), float32(float64(w.height)-y1)

	c := w.config.Line
	w.sdlRenderer.SetDrawColor(c.R, c.G, c.B, c.A)
	w.sdlRenderer.DrawLineF(ax, ay, bx, by)

	if w.config.MarkerSize <= 0 {
		return
	}
	m := w.config.Marker
	size := float32(w.config.MarkerSize)
	w.sdlRenderer.SetDrawColor(m.R, m.G, m.B, m.A)
	w.sdlRenderer.FillRectF(&sdl.FRect{X: ax - size/2, Y: ay - size/2, W: size, H: size})
	w.sdlRenderer.FillRectF(&sdl.FRect{X: bx - size/2, Y: by - size/2, W: size, H: size})
}

// Present shows the frame drawn since the last Clear.
func (w *Window) Present() {
	w.sdlRenderer.Present()
}

// Resize updates the drawing area after the window changed size.
func (w *Window) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	w.width, w.height = width, height
	if err := w.sdlRenderer.SetLogicalSize(int32(width), int32(height)); err != nil {
		logger.Warn("failed to set logical size", zap.Error(err))
	}
}

// ReadPixels returns the current frame as top-down RGBA bytes.
func (w *Window) ReadPixels() ([]byte, int, int, error) {
	width, height, err := w.sdlRenderer.GetOutputSize()
	if err != nil {
		return nil, 0, 0, fmt.Errorf("SDL_GetRendererOutputSize failed: %w", err)
	}
	pitch := int(width) * 4
	pixels := make([]byte, pitch*int(height))
	if len(pixels) == 0 {
		return nil, 0, 0, fmt.Errorf("empty renderer output")
	}
	if err := w.sdlRenderer.ReadPixels(nil, uint32(sdl.PIXELFORMAT_ABGR8888), unsafe.Pointer(&pixels[0]), pitch); err != nil {
		return nil, 0, 0, fmt.Errorf("SDL_RenderReadPixels failed: %w", err)
	}
	return pixels, int(width), int(height), nil
}

// GetSize returns the current drawing size.
func (w *Window) GetSize() (int, int) {
	return w.width, w.height
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}
