package pano

import (
	"testing"
)

// TestSideString tests the canonical side names and order.
func TestSideString(t *testing.T) {
	want := []string{"right", "left", "top", "bottom", "back", "front"}
	for side := SideRight; side < sideCount; side++ {
		if got := side.String(); got != want[side] {
			t.Errorf("Side(%d).String() = %q, want %q", side, got, want[side])
		}
	}
	if got := Side(99).String(); got != "unknown" {
		t.Errorf("Side(99).String() = %q, want unknown", got)
	}
}

// TestResolveSourcesExplicit tests the explicit side-texture map.
func TestResolveSourcesExplicit(t *testing.T) {
	cfg := Config{SideTextures: validSideTextures()}
	urls := resolveSources(cfg)

	if urls[SideRight] != "r.png" {
		t.Errorf("right = %q, want r.png", urls[SideRight])
	}
	if urls[SideFront] != "f.png" {
		t.Errorf("front = %q, want f.png", urls[SideFront])
	}
}

// TestResolveSourcesTemplate tests code and side substitution in the
// path mask.
func TestResolveSourcesTemplate(t *testing.T) {
	cfg := Config{
		PanoramaCode: "lobby",
		ImgPathMask:  "assets/#PANORAMA_CODE#/#SIDE#.jpg",
	}
	urls := resolveSources(cfg)

	if urls[SideRight] != "assets/lobby/right.jpg" {
		t.Errorf("right = %q", urls[SideRight])
	}
	if urls[SideBottom] != "assets/lobby/bottom.jpg" {
		t.Errorf("bottom = %q", urls[SideBottom])
	}
}

// TestResolveSourcesSideNames tests the per-side name override.
func TestResolveSourcesSideNames(t *testing.T) {
	cfg := Config{
		PanoramaCode: "c1",
		ImgPathMask:  "#PANORAMA_CODE#_#SIDE#.png",
		SideNames:    []string{"r", "l", "u", "d", "b", "f"},
	}
	urls := resolveSources(cfg)

	want := [sideCount]string{"c1_r.png", "c1_l.png", "c1_u.png", "c1_d.png", "c1_b.png", "c1_f.png"}
	if urls != want {
		t.Errorf("urls = %v, want %v", urls, want)
	}
}

// TestPlaceholder tests that the placeholder is a labeled flat fill of
// the expected size.
func TestPlaceholder(t *testing.T) {
	p := newPlaceholder("front")
	if p.Width() != placeholderSize || p.Height() != placeholderSize {
		t.Fatalf("placeholder size = %dx%d, want %dx%d",
			p.Width(), p.Height(), placeholderSize, placeholderSize)
	}

	// Corners carry the flat fill; the label only touches the center.
	if got := p.At(0, 0); got != placeholderFill {
		t.Errorf("corner pixel = %+v, want %+v", got, placeholderFill)
	}
	if got := p.At(placeholderSize-1, placeholderSize-1); got != placeholderFill {
		t.Errorf("corner pixel = %+v, want %+v", got, placeholderFill)
	}

	// The label must have changed something near the center row.
	changed := false
	cy := placeholderSize / 2
	for y := cy - 10; y < cy+10 && !changed; y++ {
		for x := 0; x < placeholderSize; x++ {
			if p.At(x, y) != placeholderFill {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Error("placeholder has no visible label")
	}
}
