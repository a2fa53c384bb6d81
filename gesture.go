package pano

// dragSensitivity converts screen pixels of drag motion into degrees.
const dragSensitivity = 0.1

// dragRef is the reference captured when a drag begins: the screen
// position of the press and the orientation at that instant. All
// subsequent move deltas are relative to it.
type dragRef struct {
	originX   float64
	originY   float64
	originLon float64
	originLat float64
}

// gestureTracker is the per-viewer pointer/touch state machine. It has
// two states, idle and dragging; a second simultaneous touch raises the
// hold flag (pausing idle rotation) without capturing a reference, so
// it never steers the camera.
//
// The zero value is an idle tracker.
type gestureTracker struct {
	held bool
	ref  *dragRef
}

// start enters the dragging state, capturing the press position and the
// current orientation as the drag reference. Ignored if a drag is
// already active (single-pointer model).
func (g *gestureTracker) start(x, y float64, o *Orientation) {
	if g.held {
		return
	}
	g.held = true
	g.ref = &dragRef{
		originX:   x,
		originY:   y,
		originLon: o.Longitude(),
		originLat: o.Latitude(),
	}
}

// startHold raises the hold flag without a drag reference. Used for
// multi-touch starts: idle rotation pauses but moves are ignored.
func (g *gestureTracker) startHold() {
	if g.held {
		return
	}
	g.held = true
}

// move updates the orientation from the current pointer position.
// Horizontal motion is inverted (drag right looks left) to match
// natural panning. Reports whether the orientation changed; moves
// without an active reference are ignored.
func (g *gestureTracker) move(x, y float64, o *Orientation) bool {
	if !g.held || g.ref == nil {
		return false
	}
	o.SetLongitude((g.ref.originX-x)*dragSensitivity + g.ref.originLon)
	o.SetLatitude((y-g.ref.originY)*dragSensitivity + g.ref.originLat)
	return true
}

// end returns the tracker to idle and clears the reference, resuming
// idle rotation.
func (g *gestureTracker) end() {
	g.held = false
	g.ref = nil
}

// holding reports whether the user currently holds the view (drag or
// multi-touch). While held, idle rotation is paused.
func (g *gestureTracker) holding() bool { return g.held }
