package pano

import "sync"

// Container is the host page region a viewer mounts on. The viewer
// borrows the container: it reads the size, binds itself in the session
// registry, and detaches on Destroy without owning the region itself.
//
// Containers are used as registry keys, so implementations must be
// comparable; in practice that means passing a pointer.
type Container interface {
	// Size returns the current region dimensions in pixels.
	Size() (width, height int)
}

// WheelCapable is an optional interface for containers that can report
// whether wheel input reaches them. Containers that do not implement it
// are treated as wheel-less; construction with MouseWheelRequired then
// fails with ErrWheelUnavailable.
type WheelCapable interface {
	SupportsWheel() bool
}

// Region is a basic in-memory Container for hosts without their own
// windowing abstraction. It supports wheel input by default.
//
// Region is safe for concurrent use; hosts may resize it from an event
// thread while the viewer reads it from the animation loop.
type Region struct {
	mu     sync.Mutex
	width  int
	height int
	wheel  bool
}

// NewRegion creates a region with the given pixel dimensions.
func NewRegion(width, height int) *Region {
	return &Region{width: width, height: height, wheel: true}
}

// Size returns the current region dimensions.
func (r *Region) Size() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

// SetSize updates the region dimensions. Deliver a ResizeEvent through
// Dispatch afterwards so the viewer refreshes its projection.
func (r *Region) SetSize(width, height int) {
	r.mu.Lock()
	r.width = width
	r.height = height
	r.mu.Unlock()
}

// SupportsWheel reports whether wheel events reach this region.
func (r *Region) SupportsWheel() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.wheel
}

// SetWheelSupport toggles wheel support. Useful for hosts embedding the
// region where the surrounding page captures scroll input.
func (r *Region) SetWheelSupport(enabled bool) {
	r.mu.Lock()
	r.wheel = enabled
	r.mu.Unlock()
}

// Interface compliance checks.
var (
	_ Container    = (*Region)(nil)
	_ WheelCapable = (*Region)(nil)
)
