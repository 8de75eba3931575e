package math

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 12}.Normalize()
	if l := n.Length(); math.Abs(l-1) > 1e-12 {
		t.Errorf("Vec3.Normalize().Length() = %v, want 1", l)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	n, ok := Vec3{}.TryNormalize()
	if ok {
		t.Error("TryNormalize of zero vector should report false")
	}
	if n != (Vec3{}) {
		t.Errorf("TryNormalize of zero vector = %v, want zero", n)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize of zero vector = %v, want zero (not NaN)", got)
	}
}

func TestVec3Immutable(t *testing.T) {
	a := Vec3{1, 2, 3}
	_ = a.Add(Vec3{1, 1, 1})
	_ = a.Scale(10)
	if a != (Vec3{1, 2, 3}) {
		t.Errorf("operations must not modify the receiver, got %v", a)
	}
}

func TestVec4Dehomogenize(t *testing.T) {
	got := Vec4{2, 4, 6, 2}.Dehomogenize()
	if got != (Vec4{1, 2, 3, 1}) {
		t.Errorf("Dehomogenize() = %v, want (1, 2, 3, 1)", got)
	}

	zero := Vec4{1, 2, 3, 0}
	if got := zero.Dehomogenize(); got != zero {
		t.Errorf("Dehomogenize() with w=0 = %v, want unchanged", got)
	}
}

func TestVec4Ops(t *testing.T) {
	a := Vec4{1, 2, 3, 1}
	b := Vec4{4, 5, 6, 1}
	if got := b.Sub(a); got != (Vec4{3, 3, 3, 0}) {
		t.Errorf("Vec4.Sub() = %v", got)
	}
	if got := a.Dot(b); got != 33 {
		t.Errorf("Vec4.Dot() = %v, want 33", got)
	}
	if got := a.XYZ(); got != (Vec3{1, 2, 3}) {
		t.Errorf("Vec4.XYZ() = %v", got)
	}
}
