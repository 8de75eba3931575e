// Package renderer runs the per-frame wireframe pipeline: model animation
// transform, perspective view transform, 3D clipping, projection and
// viewport mapping. The results are 2D segments handed to a Surface.
package renderer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/wireframe/internal/engine/camera"
	"github.com/Faultbox/wireframe/internal/engine/clip"
	"github.com/Faultbox/wireframe/internal/engine/scene"
	"github.com/Faultbox/wireframe/internal/logger"
	"github.com/Faultbox/wireframe/pkg/math"
)

// Segment is a projected line in pixel coordinates. The origin is the
// bottom-left corner of the canvas and +y points up.
type Segment struct {
	P0, P1 math.Vec2
}

// Surface draws a line with a marker at each endpoint.
type Surface interface {
	DrawLine(x0, y0, x1, y1 float64)
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(x0, y0, x1, y1 float64)

// DrawLine calls f.
func (f SurfaceFunc) DrawLine(x0, y0, x1, y1 float64) { f(x0, y0, x1, y1) }

// Clearer is implemented by surfaces that must be cleared before a frame.
type Clearer interface {
	Clear()
}

// Stats counts how the lines of one frame were classified.
type Stats struct {
	Lines      int // line segments considered
	Accepted   int // fully inside, drawn unchanged
	Clipped    int // partially inside, drawn after clipping
	Rejected   int // fully outside
	Degenerate int // skipped, non-finite coordinates
}

// Drawn returns the number of segments emitted.
func (s Stats) Drawn() int { return s.Accepted + s.Clipped }

// Frame projects every model of sc onto a width x height canvas.
func Frame(sc *scene.Scene, width, height float64) []Segment {
	segs, _ := frame(sc, width, height)
	return segs
}

func frame(sc *scene.Scene, width, height float64) ([]Segment, Stats) {
	var st Stats

	nPer := sc.View.Matrix()
	zMin := sc.View.ZMin()
	project := math.Chain(math.Viewport(width, height), math.ProjectToPlane())

	segs := make([]Segment, 0, sc.Stats().Segments)
	for i := range sc.Models {
		m := &sc.Models[i]
		toCanonical := math.Chain(nPer, m.Matrix)

		canonical := make([]math.Vec4, len(m.Vertices))
		for j, v := range m.Vertices {
			canonical[j] = toCanonical.MulVec4(v)
		}

		for _, edge := range m.Edges {
			for k := 0; k+1 < len(edge); k++ {
				st.Lines++
				line, status := clip.Perspective(clip.Line{P0: canonical[edge[k]], P1: canonical[edge[k+1]]}, zMin)
				switch status {
				case clip.Accepted:
					st.Accepted++
				case clip.Clipped:
					st.Clipped++
				case clip.Rejected:
					st.Rejected++
					continue
				case clip.Degenerate:
					st.Degenerate++
					logger.Debug("skipping degenerate segment",
						zap.String("model", m.Label()),
						zap.Int("from", edge[k]),
						zap.Int("to", edge[k+1]))
					continue
				}

				p0 := project.MulVec4(line.P0).Dehomogenize()
				p1 := project.MulVec4(line.P1).Dehomogenize()
				segs = append(segs, Segment{
					P0: math.Vec2{X: p0.X, Y: p0.Y},
					P1: math.Vec2{X: p1.X, Y: p1.Y},
				})
			}
		}
	}
	return segs, st
}

// Config holds renderer configuration.
type Config struct {
	Width    int
	Height   int
	Animate  bool
	RateUnit scene.RateUnit
	Controls camera.Controls
}

// Renderer owns a scene and draws it frame by frame. It is not safe for
// concurrent use.
type Renderer struct {
	config Config
	scene  *scene.Scene

	elapsed time.Duration
	stats   Stats
}

// New creates a renderer for sc. The renderer takes ownership of sc.
func New(cfg Config, sc *scene.Scene) (*Renderer, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", cfg.Width, cfg.Height)
	}
	if sc == nil {
		return nil, fmt.Errorf("nil scene")
	}
	if cfg.Controls == (camera.Controls{}) {
		cfg.Controls = camera.DefaultControls()
	}
	return &Renderer{config: cfg, scene: sc}, nil
}

// Scene returns the current scene.
func (r *Renderer) Scene() *scene.Scene { return r.scene }

// Stats returns the classification counts of the last drawn frame.
func (r *Renderer) Stats() Stats { return r.stats }

// Animating reports whether Tick updates model transforms.
func (r *Renderer) Animating() bool { return r.config.Animate }

// SetAnimate turns animation on or off. Turning it off leaves models at
// their last pose.
func (r *Renderer) SetAnimate(on bool) { r.config.Animate = on }

// UpdateScene processes d and replaces the current scene. On error the
// current scene is kept. The current animation time carries over.
func (r *Renderer) UpdateScene(d scene.Descriptor, opts ...scene.Option) error {
	sc, err := scene.Process(d, opts...)
	if err != nil {
		return err
	}
	if r.config.Animate {
		if err := sc.UpdateTransforms(r.elapsed, 0, r.config.RateUnit); err != nil {
			return err
		}
	}
	r.scene = sc
	logger.Info("scene replaced", zap.Int("models", len(sc.Models)))
	return nil
}

// SetView replaces the camera after validating it.
func (r *Renderer) SetView(v scene.View) error {
	if err := v.Validate(); err != nil {
		return err
	}
	r.scene.View = v
	return nil
}

// Move applies a camera move to the scene view.
func (r *Renderer) Move(m camera.Move) error {
	v, err := r.config.Controls.Apply(r.scene.View, m)
	if err != nil {
		return err
	}
	return r.SetView(v)
}

// Resize changes the canvas size.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the canvas size.
func (r *Renderer) Size() (width, height int) {
	return r.config.Width, r.config.Height
}

// Tick advances animation to the given absolute elapsed time. delta is the
// time since the previous tick.
func (r *Renderer) Tick(elapsed, delta time.Duration) error {
	r.elapsed = elapsed
	if !r.config.Animate {
		return nil
	}
	return r.scene.UpdateTransforms(elapsed, delta, r.config.RateUnit)
}

// Segments computes the segments of the current frame without drawing them.
func (r *Renderer) Segments() []Segment {
	segs, st := frame(r.scene, float64(r.config.Width), float64(r.config.Height))
	r.stats = st
	return segs
}

// Draw renders the current frame onto s and returns the number of segments drawn.
func (r *Renderer) Draw(s Surface) int {
	if c, ok := s.(Clearer); ok {
		c.Clear()
	}
	segs := r.Segments()
	for _, seg := range segs {
		s.DrawLine(seg.P0.X, seg.P0.Y, seg.P1.X, seg.P1.Y)
	}
	logger.Debug("frame drawn",
		zap.Int("segments", len(segs)),
		zap.Int("clipped", r.stats.Clipped),
		zap.Int("rejected", r.stats.Rejected),
		zap.Int("degenerate", r.stats.Degenerate),
	)
	return len(segs)
}
