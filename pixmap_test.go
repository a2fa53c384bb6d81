package pano

import (
	"image"
	"image/color"
	"testing"
)

// TestPixmapFillAt tests flat fills and pixel access bounds.
func TestPixmapFillAt(t *testing.T) {
	p := NewPixmap(4, 3)
	red := color.RGBA{R: 0xFF, A: 0xFF}
	p.Fill(red)

	if got := p.At(0, 0); got != red {
		t.Errorf("At(0,0) = %+v, want %+v", got, red)
	}
	if got := p.At(3, 2); got != red {
		t.Errorf("At(3,2) = %+v, want %+v", got, red)
	}
	if got := p.At(4, 0); got != (color.RGBA{}) {
		t.Errorf("out-of-bounds At = %+v, want zero", got)
	}

	blue := color.RGBA{B: 0xFF, A: 0xFF}
	p.SetPixel(1, 1, blue)
	if got := p.At(1, 1); got != blue {
		t.Errorf("At(1,1) = %+v, want %+v", got, blue)
	}
	p.SetPixel(-1, 0, blue) // ignored
	p.SetPixel(0, 3, blue)  // ignored
}

// TestFromImageNative tests conversion without scaling.
func TestFromImageNative(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	c := color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}
	img.SetRGBA(3, 2, c)

	p := FromImage(img)
	if p.Width() != 8 || p.Height() != 6 {
		t.Fatalf("size = %dx%d, want 8x6", p.Width(), p.Height())
	}
	if got := p.At(3, 2); got != c {
		t.Errorf("At(3,2) = %+v, want %+v", got, c)
	}
}

// TestFromImageOffsetBounds tests that non-origin image bounds are
// handled.
func TestFromImageOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 20, 18, 26))
	c := color.RGBA{G: 0xAA, A: 0xFF}
	img.SetRGBA(10, 20, c)

	p := FromImage(img)
	if p.Width() != 8 || p.Height() != 6 {
		t.Fatalf("size = %dx%d, want 8x6", p.Width(), p.Height())
	}
	if got := p.At(0, 0); got != c {
		t.Errorf("At(0,0) = %+v, want %+v", got, c)
	}
}

// TestFromImageDownscale tests that oversized images shrink to the face
// texture cap preserving aspect ratio.
func TestFromImageDownscale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2048, 1024))
	p := FromImage(img)

	if p.Width() != maxFaceTextureSize {
		t.Errorf("width = %d, want %d", p.Width(), maxFaceTextureSize)
	}
	if p.Height() != maxFaceTextureSize/2 {
		t.Errorf("height = %d, want %d", p.Height(), maxFaceTextureSize/2)
	}
}

// TestPixmapImageRoundTrip tests ToImage preserves pixel data.
func TestPixmapImageRoundTrip(t *testing.T) {
	p := NewPixmap(2, 2)
	p.SetPixel(0, 0, color.RGBA{R: 1, A: 0xFF})
	p.SetPixel(1, 1, color.RGBA{B: 2, A: 0xFF})

	img := p.ToImage()
	back := FromImage(img)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if p.At(x, y) != back.At(x, y) {
				t.Errorf("pixel (%d,%d) changed in round trip", x, y)
			}
		}
	}
}
