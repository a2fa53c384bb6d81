package backend

import (
	"image/color"
	"testing"

	"github.com/gogpu/pano"
	"github.com/gogpu/pano/render"
)

// TestSoftwareBackendLifecycle tests init, renderer creation, and
// close.
func TestSoftwareBackendLifecycle(t *testing.T) {
	b := NewSoftwareBackend()
	if b.Name() != BackendSoftware {
		t.Errorf("Name() = %q, want %q", b.Name(), BackendSoftware)
	}
	if err := b.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	defer b.Close()

	r := b.NewRenderer(16, 16)
	if r == nil {
		t.Fatal("NewRenderer() = nil")
	}
	defer r.Close()

	face := pano.NewPixmap(2, 2)
	face.Fill(color.RGBA{R: 0xFF, A: 0xFF})
	for side := pano.SideRight; side <= pano.SideFront; side++ {
		r.SetFaceTexture(side, face)
	}

	target := render.NewPixmapTarget(16, 16)
	cam := pano.Camera{Target: pano.V3(1, 0, 0), FovDeg: 75, Aspect: 1}
	if err := r.Render(cam, target); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got := target.Image().RGBAAt(8, 8); got != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Errorf("center pixel = %+v, want red", got)
	}
}
