//go:build !nogpu

package gpu

import (
	"sync"

	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/pano"
	"github.com/gogpu/pano/render"
)

// Renderer is the GPU-backed cubemap renderer. It owns the sampling
// pipeline and mirrors face/projection state into a software renderer.
//
// Note: full GPU dispatch requires buffer binding which needs HAL API
// extensions. The pipeline objects are created and verified, and frames
// are produced by the CPU mirror of the shader algorithm; the mirror is
// the reference implementation cubemap.wgsl must match.
type Renderer struct {
	mu sync.Mutex

	device hal.Device
	queue  hal.Queue

	sampler *cubemapSampler
	mirror  *pano.SoftwareRenderer

	width  int
	height int
}

// newRenderer creates a GPU renderer for the given output size.
// When pipeline creation fails (no compute support), the renderer stays
// entirely on the CPU mirror path.
func newRenderer(device hal.Device, queue hal.Queue, width, height int) *Renderer {
	r := &Renderer{
		device: device,
		queue:  queue,
		mirror: pano.NewSoftwareRenderer(width, height),
		width:  width,
		height: height,
	}

	if device != nil {
		sampler, err := newCubemapSampler(device)
		if err != nil {
			pano.Logger().Warn("gpu: sampler pipeline unavailable, using CPU mirror", "error", err)
		} else {
			r.sampler = sampler
		}
	}
	return r
}

// Name returns the backend identifier.
func (r *Renderer) Name() string { return "gpu" }

// Resize adjusts internal buffers for a new output size.
func (r *Renderer) Resize(width, height int) error {
	r.mu.Lock()
	r.width = width
	r.height = height
	r.mu.Unlock()
	return r.mirror.Resize(width, height)
}

// SetProjection updates the projection parameters.
func (r *Renderer) SetProjection(fovDeg, aspect float64) {
	r.mirror.SetProjection(fovDeg, aspect)
}

// SetFaceTexture binds a texture to one cube face.
func (r *Renderer) SetFaceTexture(side pano.Side, pix *pano.Pixmap) {
	r.mirror.SetFaceTexture(side, pix)
}

// Render produces one frame into the target.
func (r *Renderer) Render(cam pano.Camera, target render.RenderTarget) error {
	return r.mirror.Render(cam, target)
}

// PipelineReady reports whether the GPU sampling pipeline was created.
func (r *Renderer) PipelineReady() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sampler != nil
}

// Close releases the pipeline and mirror. The device is owned by the
// backend, not the renderer, and stays open.
func (r *Renderer) Close() error {
	r.mu.Lock()
	if r.sampler != nil {
		r.sampler.Destroy()
		r.sampler = nil
	}
	r.mu.Unlock()
	return r.mirror.Close()
}

// Interface compliance check.
var _ pano.Renderer = (*Renderer)(nil)
