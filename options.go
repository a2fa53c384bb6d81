package pano

// Option configures a Viewer during creation.
// Use functional options to inject collaborators.
//
// Example:
//
//	// Default software rendering and scheme-based loading
//	v, err := pano.New(region, cfg)
//
//	// Custom renderer (dependency injection)
//	v, err := pano.New(region, cfg, pano.WithRenderer(gpuRenderer))
type Option func(*viewerOptions)

// viewerOptions holds optional configuration for Viewer creation.
type viewerOptions struct {
	renderer     Renderer
	loader       ImageLoader
	faceCallback func(Side, error)
}

// WithRenderer sets a custom renderer for the Viewer.
// Use this for dependency injection of GPU or custom renderers,
// typically obtained from the backend package:
//
//	b, err := backend.InitDefault()
//	if err != nil { ... }
//	v, err := pano.New(region, cfg, pano.WithRenderer(b.NewRenderer(800, 600)))
func WithRenderer(r Renderer) Option {
	return func(o *viewerOptions) {
		o.renderer = r
	}
}

// WithLoader sets a custom image loader for face textures.
func WithLoader(l ImageLoader) Option {
	return func(o *viewerOptions) {
		o.loader = l
	}
}

// WithFaceCallback registers a callback invoked once per face when its
// texture load completes. On failure err is a *FaceLoadError and the
// face keeps its placeholder. The callback runs on the loader
// goroutine; keep it short and do not call viewer methods from it.
func WithFaceCallback(fn func(side Side, err error)) Option {
	return func(o *viewerOptions) {
		o.faceCallback = fn
	}
}
