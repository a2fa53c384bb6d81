package backend

import (
	"errors"

	"github.com/gogpu/pano"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when no usable backend is
	// registered. Hosts should present this as an environment
	// capability problem, not a programming error.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when operations are called before Init.
	ErrNotInitialized = errors.New("backend: not initialized")
)

// Backend name constants.
const (
	// BackendSoftware is the name of the CPU-based software backend.
	BackendSoftware = "software"
	// BackendGPU is the name of the Pure Go GPU backend (gogpu/wgpu).
	BackendGPU = "gpu"
)

// RenderBackend is the interface for rendering backends.
// It abstracts the rendering implementation, allowing pano to support
// multiple backends (software, GPU via wgpu, etc.).
//
// Backends must be registered via Register() and are selected via
// Get() or Default().
type RenderBackend interface {
	// Name returns the backend identifier (e.g., "software", "gpu").
	Name() string

	// Init initializes the backend.
	// This should be called before any rendering operations.
	Init() error

	// Close releases all backend resources.
	// The backend should not be used after Close is called.
	Close()

	// NewRenderer creates a cubemap renderer sized for the given
	// output dimensions, suitable for pano.WithRenderer.
	NewRenderer(width, height int) pano.Renderer
}
