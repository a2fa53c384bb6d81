package pano

import (
	"errors"
	"fmt"
)

// Construction and runtime errors fall into three classes:
//
//   - argument errors: the caller passed an invalid configuration
//     (ConfigError, RequiredParameterError, RequiredSideTextureError,
//     ErrNoContainer, ContainerZeroSizeError, ContainerOccupiedError);
//   - capability errors: the environment cannot host a viewer
//     (RendererInitError, ErrWheelUnavailable, and the backend
//     package's availability errors);
//   - integration errors: a host bug detected at runtime
//     (ErrNoViewer, ErrViewerDestroyed). These are raised, never
//     swallowed, so stale handlers surface during development.
var (
	// ErrNoContainer is returned when no container is supplied.
	ErrNoContainer = errors.New("pano: container is required")

	// ErrViewerDestroyed is returned by any operation on a viewer
	// after Destroy.
	ErrViewerDestroyed = errors.New("pano: viewer already destroyed")

	// ErrWheelUnavailable is returned when the configuration requires
	// wheel zoom but the container reports no wheel support.
	ErrWheelUnavailable = errors.New("pano: mouse wheel support unavailable")

	// ErrNoViewer is returned by Dispatch when no viewer is bound to
	// the container. Receiving it means an event handler outlived its
	// viewer; fix the host wiring rather than ignoring the error.
	ErrNoViewer = errors.New("pano: no viewer bound to container")
)

// ConfigError reports an invalid configuration field value.
type ConfigError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("pano: invalid config: %s %s", e.Field, e.Reason)
}

// RequiredParameterError reports a missing required configuration
// parameter: without explicit side textures, both PanoramaCode and
// ImgPathMask must be set.
type RequiredParameterError struct {
	Name string
}

// Error implements the error interface.
func (e *RequiredParameterError) Error() string {
	return fmt.Sprintf("pano: required parameter %q is missing", e.Name)
}

// RequiredSideTextureError reports an explicit side-texture map that is
// missing one of the six canonical faces.
type RequiredSideTextureError struct {
	Side Side
}

// Error implements the error interface.
func (e *RequiredSideTextureError) Error() string {
	return fmt.Sprintf("pano: side texture %q is missing", e.Side)
}

// ContainerZeroSizeError reports a container without positive
// dimensions. A zero-size container cannot establish an aspect ratio.
type ContainerZeroSizeError struct {
	Width  int
	Height int
}

// Error implements the error interface.
func (e *ContainerZeroSizeError) Error() string {
	return fmt.Sprintf("pano: container has zero size (%dx%d)", e.Width, e.Height)
}

// ContainerOccupiedError reports a construction attempt on a container
// that already hosts a live viewer. At most one viewer may be bound to
// a container at a time.
type ContainerOccupiedError struct {
	Container Container
}

// Error implements the error interface.
func (e *ContainerOccupiedError) Error() string {
	return "pano: container already hosts a viewer"
}

// RendererInitError reports a renderer that could not be initialized.
// It wraps the underlying cause so hosts can distinguish capability
// failures from argument errors.
type RendererInitError struct {
	Backend string
	Err     error
}

// Error implements the error interface.
func (e *RendererInitError) Error() string {
	return fmt.Sprintf("pano: renderer %q failed to initialize: %v", e.Backend, e.Err)
}

// Unwrap returns the underlying cause.
func (e *RendererInitError) Unwrap() error { return e.Err }

// FaceLoadError reports a face texture that failed to load. The face
// keeps its placeholder; the error is delivered to the optional face
// callback and logged, never raised through the construction path.
type FaceLoadError struct {
	Side Side
	URL  string
	Err  error
}

// Error implements the error interface.
func (e *FaceLoadError) Error() string {
	return fmt.Sprintf("pano: face %q failed to load from %q: %v", e.Side, e.URL, e.Err)
}

// Unwrap returns the underlying cause.
func (e *FaceLoadError) Unwrap() error { return e.Err }
