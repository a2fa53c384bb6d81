package pano

import (
	"math"
	"testing"
)

// TestVec3Cross tests the cross product against the standard basis.
func TestVec3Cross(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)
	z := V3(0, 0, 1)

	if got := x.Cross(y); got != z {
		t.Errorf("x cross y = %+v, want %+v", got, z)
	}
	if got := y.Cross(z); got != x {
		t.Errorf("y cross z = %+v, want %+v", got, x)
	}
	if got := y.Cross(x); got != z.Neg() {
		t.Errorf("y cross x = %+v, want %+v", got, z.Neg())
	}
}

// TestVec3Normalize tests unit length and the zero-vector guard.
func TestVec3Normalize(t *testing.T) {
	v := V3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("normalized length = %v, want 1", v.Length())
	}
	if math.Abs(v.X-0.6) > 1e-12 || math.Abs(v.Y-0.8) > 1e-12 {
		t.Errorf("normalized = %+v, want (0.6, 0.8, 0)", v)
	}

	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize of zero vector = %+v, want zero", got)
	}
}

// TestVec3Arithmetic tests the component-wise operations.
func TestVec3Arithmetic(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 5, 6)

	if got := a.Add(b); got != V3(5, 7, 9) {
		t.Errorf("Add = %+v", got)
	}
	if got := b.Sub(a); got != V3(3, 3, 3) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Mul(2); got != V3(2, 4, 6) {
		t.Errorf("Mul = %+v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
	if got := a.LengthSq(); got != 14 {
		t.Errorf("LengthSq = %v, want 14", got)
	}
}
