package scene

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/Faultbox/wireframe/internal/logger"
	"github.com/Faultbox/wireframe/pkg/math"
)

// Mesh is a wireframe imported from a glTF 2.0 file (.gltf or .glb).
// Every mesh primitive in the document is read; node transforms are ignored.
// Vertices are offset by Center.
type Mesh struct {
	Path   string
	Center math.Vec3
}

// Kind implements Shape.
func (Mesh) Kind() Kind { return KindMesh }

// Build opens the document and converts its primitives to polylines.
func (s Mesh) Build() (Geometry, error) {
	doc, err := gltf.Open(s.Path)
	if err != nil {
		return Geometry{}, fmt.Errorf("gltf open %q: %w", s.Path, err)
	}
	g, err := geometryFromDocument(doc, s.Center)
	if err != nil {
		return Geometry{}, fmt.Errorf("gltf %q: %w", s.Path, err)
	}
	return g, nil
}

func geometryFromDocument(doc *gltf.Document, offset math.Vec3) (Geometry, error) {
	var g Geometry
	for mi, m := range doc.Meshes {
		for pi, prim := range m.Primitives {
			if err := appendPrimitive(&g, doc, prim, offset); err != nil {
				return Geometry{}, fmt.Errorf("mesh %d primitive %d: %w", mi, pi, err)
			}
		}
	}
	if len(g.Edges) == 0 {
		return Geometry{}, fmt.Errorf("%w: no line or triangle primitives", ErrInvalidParameter)
	}
	if err := g.Validate(); err != nil {
		return Geometry{}, err
	}
	return g, nil
}

func appendPrimitive(g *Geometry, doc *gltf.Document, prim *gltf.Primitive, offset math.Vec3) error {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return fmt.Errorf("%w: no POSITION attribute", ErrInvalidParameter)
	}
	if posIdx >= len(doc.Accessors) {
		return fmt.Errorf("%w: POSITION accessor %d out of range", ErrInvalidParameter, posIdx)
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}

	var indices []int
	if prim.Indices != nil {
		if *prim.Indices >= len(doc.Accessors) {
			return fmt.Errorf("%w: index accessor %d out of range", ErrInvalidParameter, *prim.Indices)
		}
		raw, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return fmt.Errorf("indices: %w", err)
		}
		indices = make([]int, len(raw))
		for i, idx := range raw {
			indices[i] = int(idx)
		}
	} else {
		indices = make([]int, len(positions))
		for i := range indices {
			indices[i] = i
		}
	}

	base := len(g.Vertices)
	for _, p := range positions {
		g.Vertices = append(g.Vertices, math.Point(
			float64(p[0])+offset.X,
			float64(p[1])+offset.Y,
			float64(p[2])+offset.Z,
		))
	}
	for i := range indices {
		indices[i] += base
	}

	switch prim.Mode {
	case gltf.PrimitiveTriangles:
		g.Edges = append(g.Edges, triangleEdges(indices)...)
	case gltf.PrimitiveLines:
		for i := 0; i+1 < len(indices); i += 2 {
			g.Edges = append(g.Edges, []int{indices[i], indices[i+1]})
		}
	case gltf.PrimitiveLineStrip:
		if len(indices) > 1 {
			g.Edges = append(g.Edges, indices)
		}
	case gltf.PrimitiveLineLoop:
		if len(indices) > 1 {
			g.Edges = append(g.Edges, append(indices, indices[0]))
		}
	default:
		logger.Warn("gltf: skipping unsupported primitive mode", zap.Int("mode", int(prim.Mode)))
	}
	return nil
}

// triangleEdges returns each distinct undirected triangle edge once.
func triangleEdges(indices []int) [][]int {
	type key struct{ a, b int }
	seen := make(map[key]bool)
	var edges [][]int
	add := func(a, b int) {
		if a == b {
			return
		}
		k := key{a, b}
		if a > b {
			k = key{b, a}
		}
		if seen[k] {
			return
		}
		seen[k] = true
		edges = append(edges, []int{a, b})
	}
	for i := 0; i+2 < len(indices); i += 3 {
		a, b, c := indices[i], indices[i+1], indices[i+2]
		add(a, b)
		add(b, c)
		add(c, a)
	}
	return edges
}
