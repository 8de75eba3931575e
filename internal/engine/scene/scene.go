// Package scene turns a declarative scene description into validated,
// render-ready models and tracks their per-frame animation transforms.
package scene

import (
	"github.com/Faultbox/wireframe/pkg/math"
)

// Model is a processed, render-ready model. Vertices are homogeneous world
// coordinates with w = 1; Matrix is the current animation transform and is
// the identity for static models.
type Model struct {
	Kind      Kind
	Name      string
	Vertices  []math.Vec4
	Edges     [][]int
	Center    math.Vec3
	Animation *Animation
	Matrix    math.Mat4
}

// Label returns the model name, or its kind when unnamed.
func (m *Model) Label() string {
	if m.Name != "" {
		return m.Name
	}
	return string(m.Kind)
}

// SegmentCount returns the number of line segments the model draws.
func (m *Model) SegmentCount() int {
	return Geometry{Vertices: m.Vertices, Edges: m.Edges}.SegmentCount()
}

// Scene is a view plus the models it shows.
type Scene struct {
	View   View
	Models []Model
}

// Stats summarizes scene contents.
type Stats struct {
	Models   int
	Animated int
	Vertices int
	Segments int
}

// Stats returns model, vertex and segment totals.
func (s *Scene) Stats() Stats {
	st := Stats{Models: len(s.Models)}
	for i := range s.Models {
		m := &s.Models[i]
		if m.Animation != nil {
			st.Animated++
		}
		st.Vertices += len(m.Vertices)
		st.Segments += m.SegmentCount()
	}
	return st
}

// Clone returns a deep copy that shares no slices with s.
func (s *Scene) Clone() *Scene {
	c := &Scene{View: s.View, Models: make([]Model, len(s.Models))}
	for i, m := range s.Models {
		m.Vertices = append([]math.Vec4(nil), m.Vertices...)
		edges := make([][]int, len(m.Edges))
		for j, e := range m.Edges {
			edges[j] = append([]int(nil), e...)
		}
		m.Edges = edges
		if m.Animation != nil {
			a := *m.Animation
			m.Animation = &a
		}
		c.Models[i] = m
	}
	return c
}

// ResetTransforms sets every model matrix back to the identity.
func (s *Scene) ResetTransforms() {
	for i := range s.Models {
		s.Models[i].Matrix = math.Identity()
	}
}
