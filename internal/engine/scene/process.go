package scene

import (
	"fmt"
	gomath "math"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/wireframe/internal/logger"
	"github.com/Faultbox/wireframe/pkg/math"
)

type options struct {
	baseDir string
}

// Option configures Process.
type Option func(*options)

// WithBaseDir resolves relative mesh file paths against dir.
func WithBaseDir(dir string) Option {
	return func(o *options) { o.baseDir = dir }
}

// Process validates a descriptor and builds the scene it describes.
// The descriptor is not modified and the scene shares no memory with it,
// so processing the same descriptor twice yields equal, independent scenes.
func Process(d Descriptor, opts ...Option) (*Scene, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	view, err := viewFromDescriptor(d.View)
	if err != nil {
		return nil, fmt.Errorf("view: %w", err)
	}

	s := &Scene{View: view, Models: make([]Model, 0, len(d.Models))}
	for i, md := range d.Models {
		m, err := buildModel(md, o)
		if err != nil {
			return nil, fmt.Errorf("model %d (%s): %w", i, md.Type, err)
		}
		s.Models = append(s.Models, m)
	}

	logger.Debug("scene processed",
		zap.Int("models", len(s.Models)),
		zap.Int("segments", s.Stats().Segments))
	return s, nil
}

// Load reads a scene file and processes it, resolving mesh paths relative
// to the file's directory.
func Load(path string) (*Scene, error) {
	d, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Process(d, WithBaseDir(filepath.Dir(path)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func buildModel(md ModelDescriptor, o options) (Model, error) {
	shape, err := md.Shape(o.baseDir)
	if err != nil {
		return Model{}, err
	}
	geom, err := shape.Build()
	if err != nil {
		return Model{}, err
	}

	m := Model{
		Kind:     shape.Kind(),
		Name:     md.Name,
		Vertices: geom.Vertices,
		Edges:    geom.Edges,
		Matrix:   math.Identity(),
	}
	if len(md.Center) > 0 {
		if m.Center, err = vec3Param("center", md.Center); err != nil {
			return Model{}, err
		}
	}

	if md.Animation != nil {
		axis, err := ParseAxis(md.Animation.Axis)
		if err != nil {
			return Model{}, err
		}
		if gomath.IsNaN(md.Animation.RPS) || gomath.IsInf(md.Animation.RPS, 0) {
			return Model{}, fmt.Errorf("%w: animation rps must be finite", ErrInvalidParameter)
		}
		if len(md.Center) == 0 {
			logger.Warn("animated model has no center, rotating about the origin",
				zap.String("model", m.Label()))
		}
		m.Animation = &Animation{Axis: axis, RPS: md.Animation.RPS}
	}
	return m, nil
}

// Shape converts the descriptor into its typed variant, checking that the
// parameters the variant needs are present and well formed. Relative mesh
// paths are resolved against baseDir.
func (md ModelDescriptor) Shape(baseDir string) (Shape, error) {
	kind := Kind(md.Type)

	// An absent center is the origin.
	var center math.Vec3
	if kind != KindGeneric && len(md.Center) > 0 {
		c, err := vec3Param("center", md.Center)
		if err != nil {
			return nil, err
		}
		center = c
	}

	switch kind {
	case KindGeneric:
		verts := make([]math.Vec3, len(md.Vertices))
		for i, v := range md.Vertices {
			p, err := vec3Param(fmt.Sprintf("vertices[%d]", i), v)
			if err != nil {
				return nil, err
			}
			verts[i] = p
		}
		return Generic{Vertices: verts, Edges: md.Edges}, nil

	case KindCube:
		return Cube{Center: center, Width: md.Width, Height: md.Height, Depth: md.Depth}, nil

	case KindCone, KindCylinder:
		sides, err := countParam("sides", md.Sides)
		if err != nil {
			return nil, err
		}
		if kind == KindCone {
			return Cone{Center: center, Radius: md.Radius, Height: md.Height, Sides: sides}, nil
		}
		return Cylinder{Center: center, Radius: md.Radius, Height: md.Height, Sides: sides}, nil

	case KindSphere:
		slices, err := countParam("slices", md.Slices)
		if err != nil {
			return nil, err
		}
		stacks, err := countParam("stacks", md.Stacks)
		if err != nil {
			return nil, err
		}
		return Sphere{Center: center, Radius: md.Radius, Slices: slices, Stacks: stacks}, nil

	case KindMesh:
		if md.File == "" {
			return nil, fmt.Errorf("%w: mesh needs a file", ErrInvalidParameter)
		}
		path := md.File
		if baseDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		return Mesh{Path: path, Center: center}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, md.Type)
	}
}

func countParam(name string, v float64) (int, error) {
	if gomath.IsNaN(v) || gomath.IsInf(v, 0) || v != gomath.Trunc(v) {
		return 0, fmt.Errorf("%w: %s must be an integer, got %v", ErrInvalidParameter, name, v)
	}
	if v > gomath.MaxInt32 || v < gomath.MinInt32 {
		return 0, fmt.Errorf("%w: %s out of range: %v", ErrInvalidParameter, name, v)
	}
	return int(v), nil
}
