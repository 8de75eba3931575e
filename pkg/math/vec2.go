// Package math provides the vector and matrix types used by the wireframe pipeline.
package math

// Vec2 is a pixel-space point.
type Vec2 struct {
	X, Y float64
}
