// Package pano provides an embeddable interactive cube-panorama viewer.
//
// # Overview
//
// pano renders a navigable 360° panorama from six square images forming
// the interior faces of a cube. A host application mounts a viewer on a
// container region, routes its pointer/touch/wheel/resize events into the
// package, and receives rendered frames through a render target.
//
// # Quick Start
//
//	import "github.com/gogpu/pano"
//
//	region := pano.NewRegion(800, 600)
//	v, err := pano.New(region, pano.Config{
//	    SideTextures: map[string]string{
//	        "right": "r.png", "left": "l.png", "top": "t.png",
//	        "bottom": "b.png", "back": "bk.png", "front": "f.png",
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer v.Destroy()
//
//	v.StartAnimating()
//
// # Event Routing
//
// The host delivers input events with Dispatch, keyed by container:
//
//	pano.Dispatch(region, pano.PointerDownEvent{X: 120, Y: 80})
//	pano.Dispatch(region, pano.PointerMoveEvent{X: 140, Y: 80})
//	pano.Dispatch(region, pano.PointerUpEvent{})
//
// Dispatching against a container with no live viewer returns ErrNoViewer;
// a stale handler is a host integration bug and is surfaced, not swallowed.
//
// # Renderers
//
// A pure software cubemap sampler is built in and always available.
// GPU-backed renderers register through the backend package and are
// injected with WithRenderer.
//
// # Coordinate Model
//
// The look direction is a longitude/latitude pair: longitude wraps in
// [0,360), latitude is clamped to [-85,85] to avoid pole artifacts.
// Field of view is in degrees; smaller means more zoomed in.
package pano

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
