package pano

import "math"

// ZoomDirection selects which way a wheel step moves the field of view.
type ZoomDirection int

const (
	// ZoomIn narrows the field of view (scroll toward the scene).
	ZoomIn ZoomDirection = iota

	// ZoomOut widens the field of view (scroll away from the scene).
	ZoomOut
)

// String returns the direction name.
func (d ZoomDirection) String() string {
	if d == ZoomIn {
		return "in"
	}
	return "out"
}

// zoomer maps the public zoom model onto a bounded field of view.
// Percentage zoom is inverted: 0% is fully zoomed out (fov = max),
// 100% fully zoomed in (fov = min).
type zoomer struct {
	min  float64
	max  float64
	step float64
	fov  float64
}

func newZoomer(minFov, maxFov, step float64) zoomer {
	return zoomer{min: minFov, max: maxFov, step: step, fov: maxFov}
}

// fromPercent computes the field of view for a zoom percentage without
// mutating state. The percentage is clamped to [0,100] first.
func (z *zoomer) fromPercent(percent float64) float64 {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return math.Round(z.min + (100-percent)/100*(z.max-z.min))
}

// set applies a zoom percentage and returns the resulting field of view.
func (z *zoomer) set(percent float64) float64 {
	z.fov = z.fromPercent(percent)
	return z.fov
}

// stepBy moves the field of view one wheel increment in the given
// direction, clamped at the bounds. Reports whether the value changed;
// a step at a bound is a no-op, not an error.
func (z *zoomer) stepBy(dir ZoomDirection) bool {
	next := z.fov
	switch dir {
	case ZoomIn:
		next -= z.step
		if next < z.min {
			next = z.min
		}
	case ZoomOut:
		next += z.step
		if next > z.max {
			next = z.max
		}
	}
	if next == z.fov {
		return false
	}
	z.fov = next
	return true
}
