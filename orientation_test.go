package pano

import (
	"math"
	"testing"
)

// TestLongitudeWrap tests that stored longitudes wrap into [0,360).
func TestLongitudeWrap(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{359.9, 359.9},
		{360, 0},
		{400, 40},
		{-10, 350},
		{-370, 350},
		{720, 0},
	}

	for _, tt := range tests {
		var o Orientation
		o.SetLongitude(tt.in)
		if got := o.Longitude(); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SetLongitude(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestLatitudeClamp tests that latitudes clamp to the pole bounds.
func TestLatitudeClamp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{85, 85},
		{86, 85},
		{500, 85},
		{-85, -85},
		{-90, -85},
	}

	for _, tt := range tests {
		var o Orientation
		o.SetLatitude(tt.in)
		if got := o.Latitude(); got != tt.want {
			t.Errorf("SetLatitude(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestAdvanceWraps tests that idle rotation crossing 360 resets to 0.
func TestAdvanceWraps(t *testing.T) {
	var o Orientation
	o.SetLongitude(359.95)

	o.Advance()
	if got := o.Longitude(); got != 0 {
		t.Errorf("Longitude after advance from 359.95 = %v, want 0", got)
	}

	o.Advance()
	if got := o.Longitude(); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("Longitude after second advance = %v, want 0.1", got)
	}
}

// TestDirection tests the spherical-to-cartesian conversion at known
// angles.
func TestDirection(t *testing.T) {
	var o Orientation

	// Longitude 0, latitude 0: along +X.
	d := o.Direction()
	if math.Abs(d.X-sphereRadius) > 1e-9 || math.Abs(d.Y) > 1e-9 || math.Abs(d.Z) > 1e-6 {
		t.Errorf("Direction at (0,0) = %+v, want (+R,0,0)", d)
	}

	// Longitude 90: along +Z.
	o.SetLongitude(90)
	d = o.Direction()
	if math.Abs(d.Z-sphereRadius) > 1e-9 || math.Abs(d.X) > 1e-6 || math.Abs(d.Y) > 1e-9 {
		t.Errorf("Direction at (90,0) = %+v, want (0,0,+R)", d)
	}

	// Latitude 85 points mostly up.
	o.SetLongitude(0)
	o.SetLatitude(85)
	d = o.Direction()
	if d.Y <= 0 {
		t.Errorf("Direction at latitude 85 has Y = %v, want positive", d.Y)
	}

	// The target always sits on the sphere.
	if r := d.Length(); math.Abs(r-sphereRadius) > 1e-6 {
		t.Errorf("Direction length = %v, want %v", r, sphereRadius)
	}
}
