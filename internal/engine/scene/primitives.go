package scene

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/wireframe/pkg/math"
)

// Kind identifies a model variant.
type Kind string

// Model kinds.
const (
	KindGeneric  Kind = "generic"
	KindCube     Kind = "cube"
	KindCone     Kind = "cone"
	KindCylinder Kind = "cylinder"
	KindSphere   Kind = "sphere"
	KindMesh     Kind = "mesh"
)

// Geometry is an explicit vertex/edge list. Each edge is a polyline of
// vertex indices; a polyline is closed when its last index repeats the first.
type Geometry struct {
	Vertices []math.Vec4
	Edges    [][]int
}

// SegmentCount returns the number of line segments across all polylines.
func (g Geometry) SegmentCount() int {
	n := 0
	for _, e := range g.Edges {
		if len(e) > 1 {
			n += len(e) - 1
		}
	}
	return n
}

// Validate checks that every edge has at least two indices and every index
// refers to a vertex.
func (g Geometry) Validate() error {
	for i, e := range g.Edges {
		if len(e) < 2 {
			return fmt.Errorf("%w: edge %d has %d indices, need at least 2", ErrInvalidParameter, i, len(e))
		}
		for _, idx := range e {
			if idx < 0 || idx >= len(g.Vertices) {
				return fmt.Errorf("%w: edge %d references vertex %d of %d", ErrInvalidParameter, i, idx, len(g.Vertices))
			}
		}
	}
	return nil
}

// Shape is a typed, validated model variant that can expand into geometry.
type Shape interface {
	Kind() Kind
	Build() (Geometry, error)
}

// Generic is a model with explicit vertices and edges.
type Generic struct {
	Vertices []math.Vec3
	Edges    [][]int
}

// Kind implements Shape.
func (Generic) Kind() Kind { return KindGeneric }

// Build copies the vertices (as homogeneous points) and edges.
func (s Generic) Build() (Geometry, error) {
	g := Geometry{
		Vertices: make([]math.Vec4, len(s.Vertices)),
		Edges:    make([][]int, len(s.Edges)),
	}
	for i, v := range s.Vertices {
		g.Vertices[i] = v.Vec4(1)
	}
	for i, e := range s.Edges {
		g.Edges[i] = append([]int(nil), e...)
	}
	if err := g.Validate(); err != nil {
		return Geometry{}, err
	}
	return g, nil
}

// Cube is an axis-aligned box.
type Cube struct {
	Center               math.Vec3
	Width, Height, Depth float64
}

// Kind implements Shape.
func (Cube) Kind() Kind { return KindCube }

// Build returns 8 vertices: the back face (-z) counter-clockwise from
// bottom-left, then the front face (+z) in the same order. Edges are the two
// face loops plus four connectors.
func (s Cube) Build() (Geometry, error) {
	if err := positive("width", s.Width); err != nil {
		return Geometry{}, err
	}
	if err := positive("height", s.Height); err != nil {
		return Geometry{}, err
	}
	if err := positive("depth", s.Depth); err != nil {
		return Geometry{}, err
	}

	c := s.Center
	hw, hh, hd := s.Width/2, s.Height/2, s.Depth/2

	g := Geometry{
		Vertices: []math.Vec4{
			math.Point(c.X-hw, c.Y-hh, c.Z-hd),
			math.Point(c.X+hw, c.Y-hh, c.Z-hd),
			math.Point(c.X+hw, c.Y+hh, c.Z-hd),
			math.Point(c.X-hw, c.Y+hh, c.Z-hd),
			math.Point(c.X-hw, c.Y-hh, c.Z+hd),
			math.Point(c.X+hw, c.Y-hh, c.Z+hd),
			math.Point(c.X+hw, c.Y+hh, c.Z+hd),
			math.Point(c.X-hw, c.Y+hh, c.Z+hd),
		},
		Edges: [][]int{
			{0, 1, 2, 3, 0},
			{4, 5, 6, 7, 4},
			{0, 4},
			{1, 5},
			{2, 6},
			{3, 7},
		},
	}
	return g, nil
}

// Cone stands on a circular base with its apex above; Center is the midpoint
// of the axis.
type Cone struct {
	Center         math.Vec3
	Radius, Height float64
	Sides          int
}

// Kind implements Shape.
func (Cone) Kind() Kind { return KindCone }

// Build returns the apex (index 0) followed by Sides base vertices.
func (s Cone) Build() (Geometry, error) {
	if s.Sides < 3 {
		return Geometry{}, fmt.Errorf("%w: cone sides must be at least 3, got %d", ErrInvalidParameter, s.Sides)
	}
	if err := positive("radius", s.Radius); err != nil {
		return Geometry{}, err
	}
	if err := positive("height", s.Height); err != nil {
		return Geometry{}, err
	}

	c := s.Center
	half := s.Height / 2

	g := Geometry{
		Vertices: make([]math.Vec4, 0, s.Sides+1),
		Edges:    make([][]int, 0, s.Sides+1),
	}
	g.Vertices = append(g.Vertices, math.Point(c.X, c.Y+half, c.Z))
	g.Vertices = append(g.Vertices, ring(c, s.Radius, c.Y-half, s.Sides)...)

	base := make([]int, 0, s.Sides+1)
	for i := 1; i <= s.Sides; i++ {
		base = append(base, i)
	}
	base = append(base, 1)
	g.Edges = append(g.Edges, base)

	for i := 1; i <= s.Sides; i++ {
		g.Edges = append(g.Edges, []int{i, 0})
	}
	return g, nil
}

// Cylinder is an upright cylinder; Center is the midpoint of the axis.
type Cylinder struct {
	Center         math.Vec3
	Radius, Height float64
	Sides          int
}

// Kind implements Shape.
func (Cylinder) Kind() Kind { return KindCylinder }

// Build returns the bottom ring (indices 0..Sides-1) then the top ring.
func (s Cylinder) Build() (Geometry, error) {
	if s.Sides < 3 {
		return Geometry{}, fmt.Errorf("%w: cylinder sides must be at least 3, got %d", ErrInvalidParameter, s.Sides)
	}
	if err := positive("radius", s.Radius); err != nil {
		return Geometry{}, err
	}
	if err := positive("height", s.Height); err != nil {
		return Geometry{}, err
	}

	c := s.Center
	half := s.Height / 2
	n := s.Sides

	g := Geometry{
		Vertices: make([]math.Vec4, 0, 2*n),
		Edges:    make([][]int, 0, n+2),
	}
	g.Vertices = append(g.Vertices, ring(c, s.Radius, c.Y-half, n)...)
	g.Vertices = append(g.Vertices, ring(c, s.Radius, c.Y+half, n)...)

	bottom := make([]int, 0, n+1)
	top := make([]int, 0, n+1)
	for i := 0; i < n; i++ {
		bottom = append(bottom, i)
		top = append(top, n+i)
	}
	bottom = append(bottom, 0)
	top = append(top, n)
	g.Edges = append(g.Edges, bottom, top)

	for i := 0; i < n; i++ {
		g.Edges = append(g.Edges, []int{i, n + i})
	}
	return g, nil
}

// Sphere is a UV sphere with poles on the y axis.
type Sphere struct {
	Center         math.Vec3
	Radius         float64
	Slices, Stacks int
}

// Kind implements Shape.
func (Sphere) Kind() Kind { return KindSphere }

// Build returns the top pole (index 0), Stacks-1 latitude rings of Slices
// vertices from top to bottom, then the bottom pole. Edges are one meridian
// polyline per slice running pole to pole, plus one closed polyline per ring,
// for Slices*(2*Stacks-1) segments in total.
func (s Sphere) Build() (Geometry, error) {
	if s.Slices < 3 {
		return Geometry{}, fmt.Errorf("%w: sphere slices must be at least 3, got %d", ErrInvalidParameter, s.Slices)
	}
	if s.Stacks < 2 {
		return Geometry{}, fmt.Errorf("%w: sphere stacks must be at least 2, got %d", ErrInvalidParameter, s.Stacks)
	}
	if err := positive("radius", s.Radius); err != nil {
		return Geometry{}, err
	}

	c := s.Center
	rings := s.Stacks - 1
	bottomPole := 1 + rings*s.Slices
	index := func(ring, slice int) int { return 1 + ring*s.Slices + slice }

	g := Geometry{
		Vertices: make([]math.Vec4, 0, bottomPole+1),
		Edges:    make([][]int, 0, s.Slices+rings),
	}
	g.Vertices = append(g.Vertices, math.Point(c.X, c.Y+s.Radius, c.Z))
	for k := 1; k <= rings; k++ {
		phi := float64(k) * gomath.Pi / float64(s.Stacks)
		y := c.Y + s.Radius*gomath.Cos(phi)
		g.Vertices = append(g.Vertices, ring(c, s.Radius*gomath.Sin(phi), y, s.Slices)...)
	}
	g.Vertices = append(g.Vertices, math.Point(c.X, c.Y-s.Radius, c.Z))

	for j := 0; j < s.Slices; j++ {
		meridian := make([]int, 0, rings+2)
		meridian = append(meridian, 0)
		for k := 0; k < rings; k++ {
			meridian = append(meridian, index(k, j))
		}
		meridian = append(meridian, bottomPole)
		g.Edges = append(g.Edges, meridian)
	}
	for k := 0; k < rings; k++ {
		loop := make([]int, 0, s.Slices+1)
		for j := 0; j < s.Slices; j++ {
			loop = append(loop, index(k, j))
		}
		loop = append(loop, index(k, 0))
		g.Edges = append(g.Edges, loop)
	}
	return g, nil
}

// ring returns n points evenly spaced on a horizontal circle around center
// at height y, starting on the +x axis.
func ring(center math.Vec3, radius, y float64, n int) []math.Vec4 {
	pts := make([]math.Vec4, n)
	for i := 0; i < n; i++ {
		theta := float64(i) * 2 * gomath.Pi / float64(n)
		pts[i] = math.Point(
			center.X+radius*gomath.Cos(theta),
			y,
			center.Z+radius*gomath.Sin(theta),
		)
	}
	return pts
}

func positive(name string, v float64) error {
	if !(v > 0) || gomath.IsInf(v, 0) {
		return fmt.Errorf("%w: %s must be a positive number, got %v", ErrInvalidParameter, name, v)
	}
	return nil
}
