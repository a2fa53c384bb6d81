package backend

import (
	"github.com/gogpu/pano"
)

// SoftwareBackend is the CPU-based rendering backend. It wraps the
// built-in pano.SoftwareRenderer and is always available.
type SoftwareBackend struct {
	initialized bool
}

// init registers the software backend on package import.
func init() {
	Register(BackendSoftware, func() RenderBackend {
		return &SoftwareBackend{}
	})
}

// NewSoftwareBackend creates a new software rendering backend.
func NewSoftwareBackend() *SoftwareBackend {
	return &SoftwareBackend{}
}

// Name returns the backend identifier.
func (b *SoftwareBackend) Name() string {
	return BackendSoftware
}

// Init initializes the backend.
func (b *SoftwareBackend) Init() error {
	b.initialized = true
	return nil
}

// Close releases all backend resources.
func (b *SoftwareBackend) Close() {
	b.initialized = false
}

// NewRenderer creates a software cubemap renderer.
func (b *SoftwareBackend) NewRenderer(width, height int) pano.Renderer {
	return pano.NewSoftwareRenderer(width, height)
}
