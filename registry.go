package pano

import "sync"

// sessionRegistry is the process-wide container-to-viewer mapping.
// It enforces the single-viewer-per-container invariant: bind fails if
// the container is occupied, and Destroy releases the entry before any
// other teardown step so a reentrant construction never observes a
// stale occupied state.
type sessionRegistry struct {
	mu      sync.Mutex
	viewers map[Container]*Viewer
}

// registry is the global session registry used by New and Dispatch.
var registry = &sessionRegistry{viewers: make(map[Container]*Viewer)}

// bind associates a viewer with a container. Returns
// ContainerOccupiedError if the container already hosts one.
func (r *sessionRegistry) bind(c Container, v *Viewer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.viewers[c]; ok {
		return &ContainerOccupiedError{Container: c}
	}
	r.viewers[c] = v
	return nil
}

// release removes the container's entry. Releasing an unbound container
// is a no-op.
func (r *sessionRegistry) release(c Container) {
	r.mu.Lock()
	delete(r.viewers, c)
	r.mu.Unlock()
}

// lookup returns the viewer bound to the container, if any.
func (r *sessionRegistry) lookup(c Container) (*Viewer, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.viewers[c]
	return v, ok
}

// ViewerFor returns the live viewer bound to a container, if any.
// Hosts use it to route auxiliary state alongside Dispatch.
func ViewerFor(c Container) (*Viewer, bool) {
	return registry.lookup(c)
}
