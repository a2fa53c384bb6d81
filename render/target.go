// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package render

import (
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// RenderTarget defines where rendering output goes.
//
// A RenderTarget is an abstraction over different frame destinations:
//   - PixmapTarget: CPU-backed *image.RGBA for software rendering
//   - TextureTarget: GPU texture for on-device rendering
//
// Targets may support CPU access (Pixels), GPU access (TextureView), or
// both. The renderer implementation chooses the appropriate access
// method.
type RenderTarget interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// TextureView returns the GPU texture view for this target.
	// Returns nil for CPU-only targets.
	TextureView() TextureView

	// Pixels returns direct access to pixel data.
	// Returns nil for GPU-only targets.
	// For RGBA format, each pixel is 4 bytes: R, G, B, A.
	Pixels() []byte

	// Stride returns the number of bytes per row.
	// For RGBA, this is typically Width * 4, but may include padding.
	Stride() int
}

// PixmapTarget is a CPU-backed render target using *image.RGBA.
//
// This target supports software rendering and provides direct pixel
// access. It is the default target for the built-in cubemap renderer.
//
// Example:
//
//	target := render.NewPixmapTarget(800, 600)
//	renderer.Render(cam, target)
//	img := target.Image()
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a new CPU-backed render target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewPixmapTargetFromImage wraps an existing *image.RGBA as a render target.
// The image is used directly without copying.
func NewPixmapTargetFromImage(img *image.RGBA) *PixmapTarget {
	return &PixmapTarget{img: img}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// TextureView returns nil as this is a CPU-only target.
func (t *PixmapTarget) TextureView() TextureView {
	return nil
}

// Pixels returns direct access to the pixel data.
func (t *PixmapTarget) Pixels() []byte {
	return t.img.Pix
}

// Stride returns the number of bytes per row.
func (t *PixmapTarget) Stride() int {
	return t.img.Stride
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.img
}

// Clear fills the entire target with the given color.
func (t *PixmapTarget) Clear(c color.Color) {
	r, g, b, a := c.RGBA()
	// Convert from 16-bit to 8-bit (mask ensures value fits in uint8)
	//nolint:gosec // G115: mask ensures no overflow
	rgba := color.RGBA{
		R: uint8((r >> 8) & 0xFF),
		G: uint8((g >> 8) & 0xFF),
		B: uint8((b >> 8) & 0xFF),
		A: uint8((a >> 8) & 0xFF),
	}

	bounds := t.img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			t.img.SetRGBA(x, y, rgba)
		}
	}
}

// Resize replaces the backing image with one of the given dimensions.
// The contents are not preserved.
func (t *PixmapTarget) Resize(width, height int) {
	t.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Ensure PixmapTarget implements RenderTarget.
var _ RenderTarget = (*PixmapTarget)(nil)

// TextureTarget is a GPU texture-backed render target.
//
// Backends that render on device wrap their output texture in a
// TextureTarget; the host composites it without a CPU round trip.
type TextureTarget struct {
	width   int
	height  int
	format  gputypes.TextureFormat
	view    TextureView
	texture Texture
}

// NewTextureTarget creates a render target backed by a GPU texture.
func NewTextureTarget(texture Texture) *TextureTarget {
	return &TextureTarget{
		width:   int(texture.Width()),
		height:  int(texture.Height()),
		format:  texture.Format(),
		view:    texture.CreateView(),
		texture: texture,
	}
}

// Width returns the target width in pixels.
func (t *TextureTarget) Width() int { return t.width }

// Height returns the target height in pixels.
func (t *TextureTarget) Height() int { return t.height }

// Format returns the texture pixel format.
func (t *TextureTarget) Format() gputypes.TextureFormat { return t.format }

// TextureView returns the GPU texture view for this target.
func (t *TextureTarget) TextureView() TextureView { return t.view }

// Pixels returns nil as this is a GPU-only target.
func (t *TextureTarget) Pixels() []byte { return nil }

// Stride returns 0 as this target has no CPU pixel layout.
func (t *TextureTarget) Stride() int { return 0 }

// Texture returns the underlying GPU texture.
func (t *TextureTarget) Texture() Texture { return t.texture }

// Release destroys the view and texture held by the target.
func (t *TextureTarget) Release() {
	if t.view != nil {
		t.view.Destroy()
		t.view = nil
	}
	if t.texture != nil {
		t.texture.Destroy()
		t.texture = nil
	}
}

// Ensure TextureTarget implements RenderTarget.
var _ RenderTarget = (*TextureTarget)(nil)
