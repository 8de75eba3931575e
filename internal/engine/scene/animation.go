package scene

import (
	"fmt"
	gomath "math"
	"strings"
	"time"

	"github.com/Faultbox/wireframe/pkg/math"
)

// Axis is a world rotation axis.
type Axis int

// Rotation axes.
const (
	AxisX Axis = iota + 1
	AxisY
	AxisZ
)

// ParseAxis parses "x", "y" or "z" (case-insensitive).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	case "z":
		return AxisZ, nil
	default:
		return 0, fmt.Errorf("%w: animation axis %q (want x, y or z)", ErrInvalidParameter, s)
	}
}

// String returns the axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Rotate returns the rotation about this axis by theta radians.
func (a Axis) Rotate(theta float64) (math.Mat4, error) {
	switch a {
	case AxisX:
		return math.RotateX(theta), nil
	case AxisY:
		return math.RotateY(theta), nil
	case AxisZ:
		return math.RotateZ(theta), nil
	default:
		return math.Identity(), fmt.Errorf("%w: animation axis %s", ErrInvalidParameter, a)
	}
}

// RateUnit selects how an animation rate and elapsed time combine into an angle.
type RateUnit int

const (
	// DegreesPerMillisecond: angle = rps * elapsed_ms * pi/180.
	DegreesPerMillisecond RateUnit = iota
	// RevolutionsPerSecond: angle = rps * elapsed_s * 2pi.
	RevolutionsPerSecond
)

// ParseRateUnit parses "deg_per_ms" or "rev_per_sec". Empty selects DegreesPerMillisecond.
func ParseRateUnit(s string) (RateUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "deg_per_ms":
		return DegreesPerMillisecond, nil
	case "rev_per_sec":
		return RevolutionsPerSecond, nil
	default:
		return 0, fmt.Errorf("%w: rate unit %q (want deg_per_ms or rev_per_sec)", ErrInvalidParameter, s)
	}
}

// String returns the config name of the unit.
func (u RateUnit) String() string {
	switch u {
	case DegreesPerMillisecond:
		return "deg_per_ms"
	case RevolutionsPerSecond:
		return "rev_per_sec"
	default:
		return fmt.Sprintf("RateUnit(%d)", int(u))
	}
}

// Angle returns the rotation angle in radians after elapsed time at the given rate.
func (u RateUnit) Angle(rate float64, elapsed time.Duration) float64 {
	if u == RevolutionsPerSecond {
		return rate * elapsed.Seconds() * 2 * gomath.Pi
	}
	ms := float64(elapsed) / float64(time.Millisecond)
	return rate * ms * gomath.Pi / 180
}

// Animation rotates a model about its center at a constant rate.
type Animation struct {
	Axis Axis
	RPS  float64
}

// Matrix returns the animation transform at the given absolute elapsed time:
// translate the center to the origin, rotate, translate back.
func (a Animation) Matrix(center math.Vec3, elapsed time.Duration, unit RateUnit) (math.Mat4, error) {
	rotate, err := a.Axis.Rotate(unit.Angle(a.RPS, elapsed))
	if err != nil {
		return math.Identity(), err
	}
	toCenter := math.TranslateVec(center)
	toOrigin, _ := toCenter.Inverse()
	return math.Chain(toCenter, rotate, toOrigin), nil
}

// UpdateTransforms recomputes the cached animation matrix of every animated
// model. Rotation depends only on the absolute elapsed time, so delta is not
// used for the angle; it is accepted so callers can pass their frame timing through.
func (s *Scene) UpdateTransforms(elapsed, delta time.Duration, unit RateUnit) error {
	for i := range s.Models {
		m := &s.Models[i]
		if m.Animation == nil {
			continue
		}
		mat, err := m.Animation.Matrix(m.Center, elapsed, unit)
		if err != nil {
			return fmt.Errorf("model %d (%s): %w", i, m.Kind, err)
		}
		m.Matrix = mat
	}
	return nil
}
