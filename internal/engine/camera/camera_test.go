package camera

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/Faultbox/wireframe/internal/engine/scene"
	"github.com/Faultbox/wireframe/pkg/math"
)

func testView() scene.View {
	return scene.View{
		PRP:  math.Vec3{X: 0, Y: 0, Z: 10},
		SRP:  math.Vec3{X: 0, Y: 0, Z: 0},
		VUP:  math.Vec3{X: 0, Y: 1, Z: 0},
		Clip: math.Clip{Left: -1, Right: 1, Bottom: -1, Top: 1, Near: 1, Far: 100},
	}
}

func approxVec3(a, b math.Vec3) bool {
	const eps = 1e-9
	return gomath.Abs(a.X-b.X) < eps && gomath.Abs(a.Y-b.Y) < eps && gomath.Abs(a.Z-b.Z) < eps
}

func TestOrbit(t *testing.T) {
	v := testView()

	left := OrbitLeft(v)
	s, c := gomath.Sin(OrbitStep), gomath.Cos(OrbitStep)
	want := math.Vec3{X: -10 * s, Y: 0, Z: 10 - 10*c}
	if !approxVec3(left.SRP, want) {
		t.Errorf("OrbitLeft SRP = %v, want %v", left.SRP, want)
	}
	if left.PRP != v.PRP {
		t.Errorf("OrbitLeft moved the eye to %v", left.PRP)
	}
	if d := left.PRP.Distance(left.SRP); gomath.Abs(d-10) > 1e-9 {
		t.Errorf("orbit changed eye-target distance to %v", d)
	}

	if back := OrbitRight(left); !approxVec3(back.SRP, v.SRP) {
		t.Errorf("OrbitRight(OrbitLeft(v)).SRP = %v, want %v", back.SRP, v.SRP)
	}

	// 24 steps of 15 degrees is a full turn.
	full := v
	for i := 0; i < 24; i++ {
		full = OrbitLeft(full)
	}
	if !approxVec3(full.SRP, v.SRP) {
		t.Errorf("full orbit SRP = %v, want %v", full.SRP, v.SRP)
	}
}

func TestTruckAndDolly(t *testing.T) {
	tests := []struct {
		name     string
		move     func(scene.View) scene.View
		prp, srp math.Vec3
	}{
		{"truck left", TruckLeft, math.Vec3{X: -1, Z: 10}, math.Vec3{X: -1}},
		{"truck right", TruckRight, math.Vec3{X: 1, Z: 10}, math.Vec3{X: 1}},
		{"dolly forward", DollyForward, math.Vec3{Z: 9}, math.Vec3{Z: -1}},
		{"dolly backward", DollyBackward, math.Vec3{Z: 11}, math.Vec3{Z: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := testView()
			got := tt.move(v)
			if !approxVec3(got.PRP, tt.prp) || !approxVec3(got.SRP, tt.srp) {
				t.Errorf("got prp=%v srp=%v, want prp=%v srp=%v", got.PRP, got.SRP, tt.prp, tt.srp)
			}
			if got.VUP != v.VUP || got.Clip != v.Clip {
				t.Error("move changed vup or clip")
			}
			if v != testView() {
				t.Error("input view was modified")
			}
		})
	}
}

func TestApply(t *testing.T) {
	v := testView()

	got, err := Apply(v, MoveDollyForward)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got != DollyForward(v) {
		t.Errorf("Apply(MoveDollyForward) = %+v, want %+v", got, DollyForward(v))
	}

	if got, err := Apply(v, MoveNone); err != nil || got != v {
		t.Errorf("Apply(MoveNone) = %+v, %v", got, err)
	}

	if _, err := Apply(v, Move(99)); !errors.Is(err, ErrUnknownMove) {
		t.Errorf("Apply(99) error = %v, want ErrUnknownMove", err)
	}
}

func TestControlsStepSizes(t *testing.T) {
	c := Controls{OrbitAngle: math.Radians(90), TruckStep: 2.5, DollyStep: 4}
	v := testView()

	got, _ := c.Apply(v, MoveOrbitRight)
	if !approxVec3(got.SRP, math.Vec3{X: 10, Z: 10}) {
		t.Errorf("90 degree orbit right SRP = %v, want (10, 0, 10)", got.SRP)
	}

	got, _ = c.Apply(v, MoveTruckRight)
	if !approxVec3(got.PRP, math.Vec3{X: 2.5, Z: 10}) {
		t.Errorf("truck right PRP = %v", got.PRP)
	}

	got, _ = c.Apply(v, MoveDollyForward)
	if !approxVec3(got.SRP, math.Vec3{Z: -4}) {
		t.Errorf("dolly forward SRP = %v", got.SRP)
	}
}

func TestMovesKeepViewValid(t *testing.T) {
	v := testView()
	for m := MoveOrbitLeft; m <= MoveDollyBackward; m++ {
		got, err := Apply(v, m)
		if err != nil {
			t.Fatalf("Apply(%s): %v", m, err)
		}
		if err := got.Validate(); err != nil {
			t.Errorf("%s produced invalid view: %v", m, err)
		}
	}
}
