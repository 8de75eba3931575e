// Package camera moves a scene view: orbiting the target around the eye,
// trucking sideways and dollying along the view direction.
package camera

import (
	"errors"
	"fmt"

	"github.com/Faultbox/wireframe/internal/engine/scene"
	"github.com/Faultbox/wireframe/pkg/math"
)

// OrbitStep is the default orbit angle per move (15 degrees).
var OrbitStep = math.Radians(15)

// ErrUnknownMove is returned by Apply for an unrecognized Move.
var ErrUnknownMove = errors.New("unknown camera move")

// Move is a discrete camera action.
type Move int

// Camera moves.
const (
	MoveNone Move = iota
	MoveOrbitLeft
	MoveOrbitRight
	MoveTruckLeft
	MoveTruckRight
	MoveDollyForward
	MoveDollyBackward
)

// String returns the move name.
func (m Move) String() string {
	switch m {
	case MoveNone:
		return "none"
	case MoveOrbitLeft:
		return "orbit-left"
	case MoveOrbitRight:
		return "orbit-right"
	case MoveTruckLeft:
		return "truck-left"
	case MoveTruckRight:
		return "truck-right"
	case MoveDollyForward:
		return "dolly-forward"
	case MoveDollyBackward:
		return "dolly-backward"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}

// Controls holds the step sizes of each move.
type Controls struct {
	OrbitAngle float64 // radians per orbit step
	TruckStep  float64 // world units per truck step
	DollyStep  float64 // world units per dolly step
}

// DefaultControls returns 15 degree orbits and unit truck and dolly steps.
func DefaultControls() Controls {
	return Controls{
		OrbitAngle: OrbitStep,
		TruckStep:  1,
		DollyStep:  1,
	}
}

// Apply returns v moved by m. The input view is never modified.
func (c Controls) Apply(v scene.View, m Move) (scene.View, error) {
	switch m {
	case MoveNone:
		return v, nil
	case MoveOrbitLeft:
		return c.orbit(v, c.OrbitAngle), nil
	case MoveOrbitRight:
		return c.orbit(v, -c.OrbitAngle), nil
	case MoveTruckLeft:
		return c.truck(v, -c.TruckStep), nil
	case MoveTruckRight:
		return c.truck(v, c.TruckStep), nil
	case MoveDollyForward:
		return c.dolly(v, -c.DollyStep), nil
	case MoveDollyBackward:
		return c.dolly(v, c.DollyStep), nil
	default:
		return v, fmt.Errorf("%w: %d", ErrUnknownMove, int(m))
	}
}

// orbit rotates the target about the eye around the view's v axis:
// move the eye to the origin, align (u, v, n) with (x, y, z), rotate about y,
// then undo the alignment and the translation.
func (Controls) orbit(v scene.View, theta float64) scene.View {
	u, vv, n := v.Basis()
	toOrigin := math.TranslateVec(v.PRP.Negate())
	align := math.ViewRotation(u, vv, n)

	m := math.Chain(
		math.TranslateVec(v.PRP),
		align.Transpose(),
		math.RotateY(theta),
		align,
		toOrigin,
	)
	v.SRP = m.MulVec4(v.SRP.Vec4(1)).Dehomogenize().XYZ()
	return v
}

// truck slides eye and target along u.
func (Controls) truck(v scene.View, dist float64) scene.View {
	u, _, _ := v.Basis()
	d := u.Scale(dist)
	v.PRP = v.PRP.Add(d)
	v.SRP = v.SRP.Add(d)
	return v
}

// dolly slides eye and target along n, which points from the target to the eye.
func (Controls) dolly(v scene.View, dist float64) scene.View {
	_, _, n := v.Basis()
	d := n.Scale(dist)
	v.PRP = v.PRP.Add(d)
	v.SRP = v.SRP.Add(d)
	return v
}

var defaults = DefaultControls()

// Apply moves v with the default controls.
func Apply(v scene.View, m Move) (scene.View, error) {
	return defaults.Apply(v, m)
}

// OrbitLeft rotates the target 15 degrees about the eye, counter-clockwise
// seen from above the v axis.
func OrbitLeft(v scene.View) scene.View { return defaults.orbit(v, OrbitStep) }

// OrbitRight rotates the target 15 degrees about the eye, clockwise.
func OrbitRight(v scene.View) scene.View { return defaults.orbit(v, -OrbitStep) }

// TruckLeft moves eye and target one unit along -u.
func TruckLeft(v scene.View) scene.View { return defaults.truck(v, -1) }

// TruckRight moves eye and target one unit along +u.
func TruckRight(v scene.View) scene.View { return defaults.truck(v, 1) }

// DollyForward moves eye and target one unit towards the target.
func DollyForward(v scene.View) scene.View { return defaults.dolly(v, -1) }

// DollyBackward moves eye and target one unit away from the target.
func DollyBackward(v scene.View) scene.View { return defaults.dolly(v, 1) }
