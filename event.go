package pano

import "fmt"

// Event is a host input event routed to a viewer via Dispatch.
// The concrete types mirror what a host environment delivers: pointer
// and touch gestures, wheel ticks, and container resizes.
type Event interface {
	isEvent()
}

// PointerDownEvent begins a mouse drag at the given screen position.
type PointerDownEvent struct {
	X, Y float64
}

// PointerMoveEvent continues a mouse drag.
type PointerMoveEvent struct {
	X, Y float64
}

// PointerUpEvent ends a mouse drag.
type PointerUpEvent struct{}

// TouchPoint is one finger's screen position.
type TouchPoint struct {
	X, Y float64
}

// TouchStartEvent begins a touch gesture. A single point starts a drag;
// multiple simultaneous points pause idle rotation without steering.
type TouchStartEvent struct {
	Points []TouchPoint
}

// TouchMoveEvent continues a touch drag. Only the first point is
// tracked (single-pointer model).
type TouchMoveEvent struct {
	Points []TouchPoint
}

// TouchEndEvent ends a touch gesture.
type TouchEndEvent struct{}

// WheelEvent is one wheel tick. Negative DeltaY scrolls toward the
// scene (zoom in), positive away (zoom out).
type WheelEvent struct {
	DeltaY float64
}

// ResizeEvent notifies the viewer that its container changed size.
// The viewer re-reads the container dimensions and refreshes its
// projection immediately, outside the frame-rate gate.
type ResizeEvent struct{}

func (PointerDownEvent) isEvent() {}
func (PointerMoveEvent) isEvent() {}
func (PointerUpEvent) isEvent()   {}
func (TouchStartEvent) isEvent()  {}
func (TouchMoveEvent) isEvent()   {}
func (TouchEndEvent) isEvent()    {}
func (WheelEvent) isEvent()       {}
func (ResizeEvent) isEvent()      {}

// Dispatch routes an event to the viewer bound to the container.
// Dispatching against a container with no live viewer returns
// ErrNoViewer: a stale handler is a host bug and is surfaced loudly
// rather than silently dropped.
func Dispatch(c Container, ev Event) error {
	v, ok := registry.lookup(c)
	if !ok {
		return fmt.Errorf("%w (event %T)", ErrNoViewer, ev)
	}
	return v.handle(ev)
}
