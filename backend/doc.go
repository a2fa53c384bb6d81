// Package backend provides a pluggable rendering backend abstraction
// for the pano viewer.
//
// The backend package allows pano to support multiple rendering
// implementations. The software backend is always available; the GPU
// backend (backend/gpu) registers itself when its build tag and a
// usable adapter are present.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime.
// The software backend is automatically registered on import:
//
//	import _ "github.com/gogpu/pano/backend"
//
// # Backend Selection
//
// Use Default() to get the best available backend, or Get() to request
// a specific backend by name:
//
//	// Get the default (best available) backend
//	b := backend.Default()
//
//	// Or request a specific backend
//	b := backend.Get("software")
//
// # Usage with a Viewer
//
// Backends produce renderers that implement pano.Renderer, injected at
// construction:
//
//	b, err := backend.InitDefault()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer b.Close()
//
//	v, err := pano.New(region, cfg,
//	    pano.WithRenderer(b.NewRenderer(800, 600)))
package backend
