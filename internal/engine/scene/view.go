package scene

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/wireframe/pkg/math"
)

// View is the camera of a scene.
type View struct {
	PRP  math.Vec3 // projection reference point (eye)
	SRP  math.Vec3 // scene reference point (look-at target)
	VUP  math.Vec3 // view-up direction, need not be orthogonal to the view direction
	Clip math.Clip
}

// Validate checks that the view defines a usable perspective projection.
// A valid view has -1 < ZMin < 0, so the near plane lies in front of the far plane.
func (v View) Validate() error {
	dir := v.PRP.Sub(v.SRP)
	if _, ok := dir.TryNormalize(); !ok {
		return fmt.Errorf("%w: prp and srp coincide at %v", ErrDegenerateGeometry, v.PRP)
	}
	if _, ok := v.VUP.Cross(dir).TryNormalize(); !ok {
		return fmt.Errorf("%w: vup %v is parallel to the view direction", ErrDegenerateGeometry, v.VUP)
	}

	c := v.Clip
	for _, f := range c.Array() {
		if gomath.IsNaN(f) || gomath.IsInf(f, 0) {
			return fmt.Errorf("%w: clip contains non-finite value %v", ErrDegenerateGeometry, c.Array())
		}
	}
	if c.Near <= 0 {
		return fmt.Errorf("%w: near must be positive, got %v", ErrDegenerateGeometry, c.Near)
	}
	if c.Far <= c.Near {
		return fmt.Errorf("%w: far (%v) must be greater than near (%v)", ErrDegenerateGeometry, c.Far, c.Near)
	}
	if c.Left >= c.Right {
		return fmt.Errorf("%w: left (%v) must be less than right (%v)", ErrDegenerateGeometry, c.Left, c.Right)
	}
	if c.Bottom >= c.Top {
		return fmt.Errorf("%w: bottom (%v) must be less than top (%v)", ErrDegenerateGeometry, c.Bottom, c.Top)
	}
	return nil
}

// Basis returns the view reference axes u, v, n.
func (v View) Basis() (u, vv, n math.Vec3) {
	return math.ViewBasis(v.PRP, v.SRP, v.VUP)
}

// Matrix returns the world-to-canonical-volume transform.
func (v View) Matrix() math.Mat4 {
	return math.PerspectiveView(v.PRP, v.SRP, v.VUP, v.Clip)
}

// ZMin returns the near plane z in the canonical volume.
func (v View) ZMin() float64 {
	return v.Clip.ZMin()
}

func viewFromDescriptor(d ViewDescriptor) (View, error) {
	prp, err := vec3Param("view.prp", d.PRP)
	if err != nil {
		return View{}, err
	}
	srp, err := vec3Param("view.srp", d.SRP)
	if err != nil {
		return View{}, err
	}
	vup, err := vec3Param("view.vup", d.VUP)
	if err != nil {
		return View{}, err
	}
	if len(d.Clip) != 6 {
		return View{}, fmt.Errorf("%w: view.clip needs 6 values, got %d", ErrInvalidParameter, len(d.Clip))
	}
	var clip [6]float64
	copy(clip[:], d.Clip)

	v := View{PRP: prp, SRP: srp, VUP: vup, Clip: math.ClipFromArray(clip)}
	if err := v.Validate(); err != nil {
		return View{}, err
	}
	return v, nil
}

// Descriptor converts the view back into its declarative form.
func (v View) Descriptor() ViewDescriptor {
	prp, srp, vup, clip := v.PRP.Array(), v.SRP.Array(), v.VUP.Array(), v.Clip.Array()
	return ViewDescriptor{
		PRP:  prp[:],
		SRP:  srp[:],
		VUP:  vup[:],
		Clip: clip[:],
	}
}

func vec3Param(name string, a []float64) (math.Vec3, error) {
	if len(a) != 3 {
		return math.Vec3{}, fmt.Errorf("%w: %s needs 3 values, got %d", ErrInvalidParameter, name, len(a))
	}
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}, nil
}
