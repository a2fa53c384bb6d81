package pano

import (
	"errors"
	"image/color"
	"math"
	"sync"

	"github.com/gogpu/pano/render"
)

// SoftwareRenderer is the built-in pure Go cubemap renderer. For every
// output pixel it casts a view ray from the camera basis, picks the
// cube face the ray exits through, and samples that face's texture.
//
// It is the default renderer when none is injected and the reference
// implementation GPU backends mirror.
type SoftwareRenderer struct {
	mu     sync.Mutex
	width  int
	height int
	faces  [sideCount]*Pixmap
	closed bool
}

// errRendererClosed is returned by operations on a closed renderer.
var errRendererClosed = errors.New("pano: renderer is closed")

// NewSoftwareRenderer creates a software renderer for the given output
// size.
func NewSoftwareRenderer(width, height int) *SoftwareRenderer {
	return &SoftwareRenderer{width: width, height: height}
}

// Name returns the backend identifier.
func (r *SoftwareRenderer) Name() string { return "software" }

// Resize adjusts the renderer for a new output size.
func (r *SoftwareRenderer) Resize(width, height int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return errRendererClosed
	}
	r.width = width
	r.height = height
	return nil
}

// SetProjection is a no-op: the software path reads the field of view
// and aspect from the camera on every frame, so there is no cached
// projection matrix to refresh.
func (r *SoftwareRenderer) SetProjection(fovDeg, aspect float64) {}

// SetFaceTexture binds a texture to one cube face.
func (r *SoftwareRenderer) SetFaceTexture(side Side, pix *Pixmap) {
	if side < 0 || side >= sideCount {
		return
	}
	r.mu.Lock()
	r.faces[side] = pix
	r.mu.Unlock()
}

// Render produces one frame into the target.
func (r *SoftwareRenderer) Render(cam Camera, target render.RenderTarget) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return errRendererClosed
	}

	pix := target.Pixels()
	if pix == nil {
		return errors.New("pano: render target has no CPU pixel access")
	}
	w, h := target.Width(), target.Height()
	stride := target.Stride()

	forward := cam.Target.Normalize()
	right := V3(0, 1, 0).Cross(forward).Normalize()
	if right.LengthSq() == 0 {
		// Looking straight along the pole axis; latitude clamping keeps
		// this out of normal operation.
		right = V3(1, 0, 0)
	}
	up := forward.Cross(right)

	halfH := math.Tan(cam.FovDeg * math.Pi / 360)
	halfW := halfH * cam.Aspect

	for y := 0; y < h; y++ {
		sy := (1 - 2*(float64(y)+0.5)/float64(h)) * halfH
		row := pix[y*stride:]
		for x := 0; x < w; x++ {
			sx := (2*(float64(x)+0.5)/float64(w) - 1) * halfW
			dir := forward.Add(right.Mul(sx)).Add(up.Mul(sy))
			c := r.sample(dir)
			i := x * 4
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
	return nil
}

// sample maps a view ray to a cube face and texel. Face selection
// follows the standard cubemap convention: the dominant axis picks the
// face, the remaining two components index into it.
func (r *SoftwareRenderer) sample(d Vec3) color.RGBA {
	ax, ay, az := math.Abs(d.X), math.Abs(d.Y), math.Abs(d.Z)

	var side Side
	var u, v float64
	switch {
	case ax >= ay && ax >= az:
		if d.X > 0 {
			side, u, v = SideRight, -d.Z/ax, -d.Y/ax
		} else {
			side, u, v = SideLeft, d.Z/ax, -d.Y/ax
		}
	case ay >= az:
		if d.Y > 0 {
			side, u, v = SideTop, d.X/ay, d.Z/ay
		} else {
			side, u, v = SideBottom, d.X/ay, -d.Z/ay
		}
	default:
		if d.Z > 0 {
			side, u, v = SideBack, d.X/az, -d.Y/az
		} else {
			side, u, v = SideFront, -d.X/az, -d.Y/az
		}
	}

	face := r.faces[side]
	if face == nil {
		return color.RGBA{A: 0xFF}
	}
	px := texel(u, face.Width())
	py := texel(v, face.Height())
	return face.At(px, py)
}

// texel converts a face coordinate in [-1,1] to a pixel index in
// [0,size).
func texel(c float64, size int) int {
	i := int((c + 1) / 2 * float64(size))
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}

// Close releases the renderer. Further operations fail with a closed
// error.
func (r *SoftwareRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	for i := range r.faces {
		r.faces[i] = nil
	}
	return nil
}

// Interface compliance check.
var _ Renderer = (*SoftwareRenderer)(nil)
