package pano

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Side identifies one of the six cube faces, in canonical order.
type Side int

// Canonical face order. SideRight/SideLeft are ±X, SideTop/SideBottom
// ±Y, SideBack/SideFront ±Z.
const (
	SideRight Side = iota
	SideLeft
	SideTop
	SideBottom
	SideBack
	SideFront

	sideCount = 6
)

// canonicalSideNames lists the side names in canonical order. These are
// the keys of Config.SideTextures and the default #SIDE# substitutions.
var canonicalSideNames = [sideCount]string{
	"right", "left", "top", "bottom", "back", "front",
}

// String returns the canonical side name.
func (s Side) String() string {
	if s < 0 || s >= sideCount {
		return "unknown"
	}
	return canonicalSideNames[s]
}

// Template placeholders recognized in Config.ImgPathMask.
const (
	codePlaceholder = "#PANORAMA_CODE#"
	sidePlaceholder = "#SIDE#"
)

// TextureStatus tracks the loading state of one face slot.
type TextureStatus int

const (
	// TexturePending means the face still shows the placeholder while
	// its image loads.
	TexturePending TextureStatus = iota

	// TextureReady means the real image is bound to the face.
	TextureReady

	// TextureFailed means the load failed and the placeholder remains
	// permanently.
	TextureFailed
)

// faceSlot is the per-face texture state owned by a viewer.
type faceSlot struct {
	status TextureStatus
	url    string
	pix    *Pixmap
}

// resolveSources produces the six face URLs from a validated config:
// either direct lookups in the explicit map, or template substitution
// of the panorama code and per-side name into the path mask.
func resolveSources(cfg Config) [sideCount]string {
	var urls [sideCount]string
	if cfg.SideTextures != nil {
		for side := SideRight; side < sideCount; side++ {
			urls[side] = cfg.SideTextures[side.String()]
		}
		return urls
	}
	for side := SideRight; side < sideCount; side++ {
		name := canonicalSideNames[side]
		if cfg.SideNames != nil {
			name = cfg.SideNames[side]
		}
		url := strings.ReplaceAll(cfg.ImgPathMask, codePlaceholder, cfg.PanoramaCode)
		urls[side] = strings.ReplaceAll(url, sidePlaceholder, name)
	}
	return urls
}

// placeholderSize is the edge length of the generated placeholder face.
const placeholderSize = 256

// placeholderFill is the neutral flat color shown before a face loads.
var placeholderFill = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF}

// newPlaceholder builds the neutral placeholder texture for a face:
// a flat-filled square with the side name lettered in the center so a
// misconfigured source is recognizable at a glance.
func newPlaceholder(label string) *Pixmap {
	p := NewPixmap(placeholderSize, placeholderSize)
	p.Fill(placeholderFill)

	img := p.ToImage()
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}),
		Face: face,
	}
	w := d.MeasureString(label)
	d.Dot = fixed.Point26_6{
		X: fixed.I(placeholderSize/2) - w/2,
		Y: fixed.I(placeholderSize/2 + face.Height/2),
	}
	d.DrawString(label)

	copy(p.data, img.Pix)
	return p
}
