package pano

import "math"

const (
	// autoAdvanceDeg is the longitude increment applied on each drawn
	// frame while no drag is active.
	autoAdvanceDeg = 0.1

	// maxLatitudeDeg bounds latitude away from the poles. Looking
	// straight up or down collapses the camera basis.
	maxLatitudeDeg = 85.0

	// sphereRadius is the radius of the look-at sphere. The camera sits
	// at the origin; only the direction of the target matters, the
	// radius just keeps the target comfortably outside the cube.
	sphereRadius = 500.0
)

// Orientation holds the current look direction as a longitude/latitude
// pair in degrees. Longitude stays in [0,360), latitude in
// [-maxLatitudeDeg, maxLatitudeDeg].
//
// Orientation is a plain value; the owning Viewer serializes access.
type Orientation struct {
	longitude float64
	latitude  float64
}

// Longitude returns the current longitude in degrees, in [0,360).
func (o *Orientation) Longitude() float64 { return o.longitude }

// Latitude returns the current latitude in degrees.
func (o *Orientation) Latitude() float64 { return o.latitude }

// SetLongitude stores a longitude, wrapping it into [0,360).
func (o *Orientation) SetLongitude(deg float64) {
	o.longitude = wrapLongitude(deg)
}

// SetLatitude stores a latitude, clamping it to the pole bounds.
func (o *Orientation) SetLatitude(deg float64) {
	o.latitude = clampLatitude(deg)
}

// Advance applies one frame of idle rotation. Crossing 360 resets to 0
// rather than wrapping the overshoot, so the progression is stable for
// any increment.
func (o *Orientation) Advance() {
	o.longitude += autoAdvanceDeg
	if o.longitude >= 360 {
		o.longitude = 0
	}
}

// Direction converts the spherical angles to a camera look-at target on
// a sphere of radius sphereRadius centered at the origin.
func (o *Orientation) Direction() Vec3 {
	phi := (90 - o.latitude) * math.Pi / 180
	theta := o.longitude * math.Pi / 180
	return Vec3{
		X: sphereRadius * math.Sin(phi) * math.Cos(theta),
		Y: sphereRadius * math.Cos(phi),
		Z: sphereRadius * math.Sin(phi) * math.Sin(theta),
	}
}

// wrapLongitude maps any real longitude into [0,360).
func wrapLongitude(deg float64) float64 {
	m := math.Mod(deg, 360)
	if m < 0 {
		m += 360
	}
	return m
}

// clampLatitude bounds latitude to [-maxLatitudeDeg, maxLatitudeDeg].
func clampLatitude(deg float64) float64 {
	if deg > maxLatitudeDeg {
		return maxLatitudeDeg
	}
	if deg < -maxLatitudeDeg {
		return -maxLatitudeDeg
	}
	return deg
}
