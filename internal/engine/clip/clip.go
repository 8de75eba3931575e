// Package clip implements Cohen-Sutherland style line clipping against the
// canonical perspective view volume
//
//	z <= x <= -z, z <= y <= -z, -1 <= z <= zMin
package clip

import (
	gomath "math"
	"strings"

	"github.com/Faultbox/wireframe/pkg/math"
)

// Outcode has one bit set per view-volume plane a point lies outside of.
type Outcode uint8

// Plane bits. At most one of each opposing pair is set.
const (
	Near   Outcode = 1
	Far    Outcode = 2
	Top    Outcode = 4
	Bottom Outcode = 8
	Right  Outcode = 16
	Left   Outcode = 32
)

const (
	// Epsilon is the tolerance applied to every plane test.
	Epsilon = 1e-6

	// MaxDepth bounds the number of clipping passes for one line. Each pass
	// moves one endpoint onto a plane, so six suffice in exact arithmetic.
	MaxDepth = 12

	// parallelEpsilon is the smallest plane-direction denominator accepted
	// when intersecting a segment with a plane.
	parallelEpsilon = 1e-12
)

var planeNames = []struct {
	bit  Outcode
	name string
}{
	{Left, "LEFT"},
	{Right, "RIGHT"},
	{Bottom, "BOTTOM"},
	{Top, "TOP"},
	{Far, "FAR"},
	{Near, "NEAR"},
}

// String lists the set planes, e.g. "LEFT|NEAR". Zero is "INSIDE".
func (o Outcode) String() string {
	if o == 0 {
		return "INSIDE"
	}
	var parts []string
	for _, p := range planeNames {
		if o&p.bit != 0 {
			parts = append(parts, p.name)
		}
	}
	return strings.Join(parts, "|")
}

// OutcodePerspective classifies p against the canonical perspective volume
// whose near plane is z = zMin.
func OutcodePerspective(p math.Vec4, zMin float64) Outcode {
	var o Outcode
	if p.X < p.Z-Epsilon {
		o |= Left
	} else if p.X > -p.Z+Epsilon {
		o |= Right
	}
	if p.Y < p.Z-Epsilon {
		o |= Bottom
	} else if p.Y > -p.Z+Epsilon {
		o |= Top
	}
	if p.Z < -1-Epsilon {
		o |= Far
	} else if p.Z > zMin+Epsilon {
		o |= Near
	}
	return o
}

// Line is a segment in canonical view volume coordinates.
type Line struct {
	P0, P1 math.Vec4
}

// Status is the outcome of clipping one line.
type Status int

const (
	// Accepted lines were entirely inside and are returned unchanged.
	Accepted Status = iota
	// Clipped lines had at least one endpoint moved onto a plane.
	Clipped
	// Rejected lines lie entirely outside the volume.
	Rejected
	// Degenerate lines have non-finite coordinates. They are not drawn.
	Degenerate
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Accepted:
		return "accepted"
	case Clipped:
		return "clipped"
	case Rejected:
		return "rejected"
	case Degenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

// Visible reports whether a line with this status should be drawn.
func (s Status) Visible() bool {
	return s == Accepted || s == Clipped
}

// Perspective clips l against the canonical perspective volume. When one
// endpoint is outside it is replaced by the intersection with the first plane
// it violates, in LEFT, RIGHT, BOTTOM, TOP, FAR, NEAR order, and the result is
// classified again. Endpoint 0 is replaced before endpoint 1. Returned
// endpoints have w = 1.
//
// A line that cannot be cut stably, because it is parallel to the plane or
// does not settle within MaxDepth passes, is clipped parametrically against
// all six planes at once instead.
func Perspective(l Line, zMin float64) (Line, Status) {
	orig := l
	clipped := false
	for depth := 0; depth < MaxDepth; depth++ {
		out0 := OutcodePerspective(l.P0, zMin)
		out1 := OutcodePerspective(l.P1, zMin)

		switch {
		case out0|out1 == 0:
			if clipped {
				return l, Clipped
			}
			return l, Accepted
		case out0&out1 != 0:
			return Line{}, Rejected
		}

		var ok bool
		if out0 != 0 {
			l.P0, ok = intersect(l.P0, l.P1, out0, zMin)
		} else {
			l.P1, ok = intersect(l.P1, l.P0, out1, zMin)
		}
		if !ok {
			return parametric(orig, zMin)
		}
		clipped = true
	}
	return parametric(orig, zMin)
}

// parametric clips l Liang-Barsky style: each plane is a half-space
// f(p) >= 0 and the parameter interval where all six hold is kept.
func parametric(l Line, zMin float64) (Line, Status) {
	for _, v := range []float64{l.P0.X, l.P0.Y, l.P0.Z, l.P1.X, l.P1.Y, l.P1.Z} {
		if gomath.IsNaN(v) || gomath.IsInf(v, 0) {
			return Line{}, Degenerate
		}
	}

	planes := [6]func(p math.Vec4) float64{
		func(p math.Vec4) float64 { return p.X - p.Z },  // left
		func(p math.Vec4) float64 { return -p.X - p.Z }, // right
		func(p math.Vec4) float64 { return p.Y - p.Z },  // bottom
		func(p math.Vec4) float64 { return -p.Y - p.Z }, // top
		func(p math.Vec4) float64 { return p.Z + 1 },    // far
		func(p math.Vec4) float64 { return zMin - p.Z }, // near
	}

	t0, t1 := 0.0, 1.0
	for _, f := range planes {
		f0, f1 := f(l.P0), f(l.P1)
		switch {
		case f0 < 0 && f1 < 0:
			return Line{}, Rejected
		case f0 < 0:
			t0 = gomath.Max(t0, f0/(f0-f1))
		case f1 < 0:
			t1 = gomath.Min(t1, f0/(f0-f1))
		}
	}
	if t0 >= t1 {
		return Line{}, Rejected
	}

	d := l.P1.Sub(l.P0)
	at := func(t float64) math.Vec4 {
		return math.Vec4{X: l.P0.X + t*d.X, Y: l.P0.Y + t*d.Y, Z: l.P0.Z + t*d.Z, W: 1}
	}
	return Line{P0: at(t0), P1: at(t1)}, Clipped
}

// intersect returns the point where the segment from in to out crosses the
// first plane set in code.
func intersect(out, in math.Vec4, code Outcode, zMin float64) (math.Vec4, bool) {
	dx := out.X - in.X
	dy := out.Y - in.Y
	dz := out.Z - in.Z

	var num, den float64
	switch {
	case code&Left != 0:
		num, den = in.Z-in.X, dx-dz
	case code&Right != 0:
		num, den = in.X+in.Z, -dx-dz
	case code&Bottom != 0:
		num, den = in.Z-in.Y, dy-dz
	case code&Top != 0:
		num, den = in.Y+in.Z, -dy-dz
	case code&Far != 0:
		num, den = -in.Z-1, dz
	case code&Near != 0:
		num, den = in.Z-zMin, -dz
	default:
		return out, true
	}
	if gomath.Abs(den) < parallelEpsilon {
		return math.Vec4{}, false
	}

	t := gomath.Max(0, gomath.Min(1, num/den))
	return math.Vec4{
		X: in.X + t*dx,
		Y: in.Y + t*dy,
		Z: in.Z + t*dz,
		W: 1,
	}, true
}
