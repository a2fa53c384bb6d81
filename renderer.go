package pano

import "github.com/gogpu/pano/render"

// Camera describes one frame's view: a look-at target on the
// orientation sphere, the vertical field of view in degrees, and the
// output aspect ratio.
type Camera struct {
	Target Vec3
	FovDeg float64
	Aspect float64
}

// Renderer is the rendering capability a viewer drives: given a camera
// and the currently bound face textures, produce a frame into a target.
//
// The viewer exclusively owns its renderer and closes it on Destroy.
// Implementations are not required to be safe for concurrent use; the
// viewer serializes all calls.
type Renderer interface {
	// Resize adjusts internal buffers for a new output size.
	Resize(width, height int) error

	// SetProjection updates the projection parameters. Called on zoom
	// changes and container resizes, independent of the frame loop.
	SetProjection(fovDeg, aspect float64)

	// SetFaceTexture binds a texture to one cube face. Called with the
	// placeholder at construction and again when each real image
	// arrives; the renderer must tolerate swaps between frames.
	SetFaceTexture(side Side, pix *Pixmap)

	// Render produces one frame into the target.
	Render(cam Camera, target render.RenderTarget) error

	// Close releases renderer resources. The renderer must not be used
	// after Close.
	Close() error
}
