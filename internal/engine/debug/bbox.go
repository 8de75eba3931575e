// Package debug provides debug visualization and frame capture utilities.
package debug

import (
	gomath "math"

	"github.com/Faultbox/wireframe/internal/engine/scene"
	"github.com/Faultbox/wireframe/pkg/math"
)

// DefaultBBoxPadding is the default padding added on every side of a box.
const DefaultBBoxPadding = 0.1

// minExtent keeps flat models from producing a zero-size box.
const minExtent = 1e-3

// Bounds returns the axis-aligned bounds of the model's vertices after its
// current transform. ok is false for a model without vertices.
func Bounds(m *scene.Model) (lo, hi math.Vec3, ok bool) {
	if len(m.Vertices) == 0 {
		return math.Vec3{}, math.Vec3{}, false
	}
	lo = math.Vec3{X: gomath.Inf(1), Y: gomath.Inf(1), Z: gomath.Inf(1)}
	hi = math.Vec3{X: gomath.Inf(-1), Y: gomath.Inf(-1), Z: gomath.Inf(-1)}
	for _, v := range m.Vertices {
		p := m.Matrix.MulVec4(v).Dehomogenize()
		lo.X, hi.X = gomath.Min(lo.X, p.X), gomath.Max(hi.X, p.X)
		lo.Y, hi.Y = gomath.Min(lo.Y, p.Y), gomath.Max(hi.Y, p.Y)
		lo.Z, hi.Z = gomath.Min(lo.Z, p.Z), gomath.Max(hi.Z, p.Z)
	}
	return lo, hi, true
}

// BoundingBox returns a static cube model enclosing m, expanded by padding
// on all sides.
func BoundingBox(m *scene.Model, padding float64) (scene.Model, bool) {
	lo, hi, ok := Bounds(m)
	if !ok {
		return scene.Model{}, false
	}
	size := hi.Sub(lo)
	cube := scene.Cube{
		Center: lo.Add(size.Scale(0.5)),
		Width:  gomath.Max(size.X+2*padding, minExtent),
		Height: gomath.Max(size.Y+2*padding, minExtent),
		Depth:  gomath.Max(size.Z+2*padding, minExtent),
	}
	g, err := cube.Build()
	if err != nil {
		return scene.Model{}, false
	}
	return scene.Model{
		Kind:     scene.KindCube,
		Name:     m.Label() + "-bounds",
		Vertices: g.Vertices,
		Edges:    g.Edges,
		Center:   cube.Center,
		Matrix:   math.Identity(),
	}, true
}

// WithBoundingBoxes returns a copy of sc with a bounding box model appended
// for every model.
func WithBoundingBoxes(sc *scene.Scene, padding float64) *scene.Scene {
	out := sc.Clone()
	for i := range sc.Models {
		if box, ok := BoundingBox(&sc.Models[i], padding); ok {
			out.Models = append(out.Models, box)
		}
	}
	return out
}
