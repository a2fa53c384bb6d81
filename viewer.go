package pano

import (
	"context"
	"fmt"
	"image"
	"sync"
	"sync/atomic"

	"github.com/gogpu/pano/render"
)

// startLongitudeDeg is the initial look direction: longitude 90 faces
// the front cube face.
const startLongitudeDeg = 90.0

// Viewer is one mounted, live panorama session bound to one container.
//
// A viewer owns its renderer, its render target, and its six texture
// slots; the container is borrowed. All state transitions are
// serialized internally, so hosts may call methods and Dispatch events
// from any goroutine.
//
// Lifecycle: New validates and constructs, StartAnimating begins the
// paced loop, Destroy detaches and releases everything. Every method
// on a destroyed viewer returns ErrViewerDestroyed.
type Viewer struct {
	mu sync.Mutex

	container Container
	cfg       Config

	renderer Renderer
	target   *render.PixmapTarget
	loader   ImageLoader

	orientation Orientation
	gesture     gestureTracker
	zoom        zoomer
	slots       [sideCount]faceSlot
	aspect      float64

	wheelEnabled bool
	faceCallback func(Side, error)

	pacer framePacer

	destroyed atomic.Bool
	animating atomic.Bool
	stop      chan struct{}

	loadCtx    context.Context
	loadCancel context.CancelFunc
}

// New constructs a viewer on a container. The validation sequence is
// deterministic and short-circuiting; each failure is terminal for this
// construction attempt and allocates nothing:
//
//  1. configuration consistency (ConfigError)
//  2. texture source completeness (RequiredParameterError,
//     RequiredSideTextureError)
//  3. container presence (ErrNoContainer)
//  4. positive container size (ContainerZeroSizeError)
//  5. wheel capability when required (ErrWheelUnavailable)
//  6. container not already hosting a viewer (ContainerOccupiedError)
//  7. renderer initialization (RendererInitError)
//
// On success the viewer is Ready: one frame has been drawn
// synchronously with the placeholder textures, and all six face loads
// are in flight. Construction reports through the returned error
// alone; callers wanting asynchronous completion can wrap New in their
// own goroutine.
func New(container Container, cfg Config, opts ...Option) (*Viewer, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if container == nil {
		return nil, ErrNoContainer
	}
	width, height := container.Size()
	if width <= 0 || height <= 0 {
		return nil, &ContainerZeroSizeError{Width: width, Height: height}
	}

	var o viewerOptions
	for _, opt := range opts {
		opt(&o)
	}

	wheelEnabled := false
	if wc, ok := container.(WheelCapable); ok {
		wheelEnabled = wc.SupportsWheel()
	}
	if cfg.MouseWheelRequired && !wheelEnabled {
		return nil, ErrWheelUnavailable
	}

	v := &Viewer{
		container:    container,
		cfg:          cfg,
		renderer:     o.renderer,
		loader:       o.loader,
		wheelEnabled: wheelEnabled,
		faceCallback: o.faceCallback,
		zoom:         newZoomer(cfg.MinFov, cfg.MaxFov, cfg.FovMouseStep),
		pacer:        newFramePacer(cfg.FPSLimit),
		stop:         make(chan struct{}),
		aspect:       float64(width) / float64(height),
	}
	v.orientation.SetLongitude(startLongitudeDeg)
	// Seed the field of view from the start zoom before any renderer
	// state exists.
	v.zoom.set(cfg.StartZoom)
	if v.loader == nil {
		v.loader = DefaultLoader()
	}

	if err := registry.bind(container, v); err != nil {
		return nil, err
	}

	if v.renderer == nil {
		v.renderer = NewSoftwareRenderer(width, height)
	}
	v.target = render.NewPixmapTarget(width, height)
	if err := v.renderer.Resize(width, height); err != nil {
		registry.release(container)
		return nil, &RendererInitError{Backend: rendererName(v.renderer), Err: err}
	}
	v.renderer.SetProjection(v.zoom.fov, v.aspect)

	v.loadCtx, v.loadCancel = context.WithCancel(context.Background())
	v.initTextures(resolveSources(cfg))

	if err := v.Draw(); err != nil {
		v.Destroy()
		return nil, &RendererInitError{Backend: rendererName(v.renderer), Err: err}
	}

	Logger().Info("pano: viewer ready",
		"width", width, "height", height, "fov", v.zoom.fov)
	return v, nil
}

// rendererName extracts a backend name for error reporting when the
// renderer exposes one.
func rendererName(r Renderer) string {
	if n, ok := r.(interface{ Name() string }); ok {
		return n.Name()
	}
	return "custom"
}

// initTextures binds a placeholder to every face and starts all six
// loads concurrently. Faces swap to their real image independently, in
// whatever order the loads complete.
func (v *Viewer) initTextures(urls [sideCount]string) {
	for side := SideRight; side < sideCount; side++ {
		ph := newPlaceholder(side.String())
		v.slots[side] = faceSlot{status: TexturePending, url: urls[side], pix: ph}
		v.renderer.SetFaceTexture(side, ph)
	}
	for side := SideRight; side < sideCount; side++ {
		go v.loadFace(side, urls[side])
	}
}

// loadFace resolves one face image and swaps it in. A load that
// completes after Destroy is dropped without touching torn-down state.
// Failures keep the placeholder permanently: they are logged and
// reported through the face callback, never raised as session errors.
func (v *Viewer) loadFace(side Side, url string) {
	img, err := v.loader.Load(v.loadCtx, url)
	if v.destroyed.Load() {
		return
	}
	if err != nil {
		v.mu.Lock()
		v.slots[side].status = TextureFailed
		cb := v.faceCallback
		v.mu.Unlock()
		Logger().Warn("pano: face texture load failed",
			"side", side.String(), "url", url, "error", err)
		if cb != nil {
			cb(side, &FaceLoadError{Side: side, URL: url, Err: err})
		}
		return
	}

	pix := FromImage(img)
	v.mu.Lock()
	if v.destroyed.Load() {
		v.mu.Unlock()
		return
	}
	v.slots[side].status = TextureReady
	v.slots[side].pix = pix
	v.renderer.SetFaceTexture(side, pix)
	cb := v.faceCallback
	v.mu.Unlock()

	Logger().Debug("pano: face texture ready", "side", side.String())
	if cb != nil {
		cb(side, nil)
	}
}

// Draw renders one frame with the current orientation, zoom, and
// whatever face textures are bound right now.
func (v *Viewer) Draw() error {
	if v.destroyed.Load() {
		return ErrViewerDestroyed
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.destroyed.Load() {
		return ErrViewerDestroyed
	}
	cam := Camera{
		Target: v.orientation.Direction(),
		FovDeg: v.zoom.fov,
		Aspect: v.aspect,
	}
	return v.renderer.Render(cam, v.target)
}

// advanceIdle applies one frame of idle rotation unless the user holds
// the view. Called by the animation loop before each paced draw.
func (v *Viewer) advanceIdle() {
	v.mu.Lock()
	if !v.gesture.holding() {
		v.orientation.Advance()
	}
	v.mu.Unlock()
}

// handle applies one routed input event. Called by Dispatch with the
// viewer already resolved.
func (v *Viewer) handle(ev Event) error {
	if v.destroyed.Load() {
		return ErrViewerDestroyed
	}
	v.mu.Lock()
	defer v.mu.Unlock()

	switch e := ev.(type) {
	case PointerDownEvent:
		v.gesture.start(e.X, e.Y, &v.orientation)
	case PointerMoveEvent:
		v.gesture.move(e.X, e.Y, &v.orientation)
	case PointerUpEvent:
		v.gesture.end()
	case TouchStartEvent:
		switch {
		case len(e.Points) == 1:
			v.gesture.start(e.Points[0].X, e.Points[0].Y, &v.orientation)
		case len(e.Points) > 1:
			// Multi-touch pauses idle rotation but never steers.
			v.gesture.startHold()
		}
	case TouchMoveEvent:
		if len(e.Points) > 0 {
			v.gesture.move(e.Points[0].X, e.Points[0].Y, &v.orientation)
		}
	case TouchEndEvent:
		v.gesture.end()
	case WheelEvent:
		if !v.wheelEnabled {
			return nil
		}
		dir := ZoomOut
		if e.DeltaY < 0 {
			dir = ZoomIn
		}
		if v.zoom.stepBy(dir) {
			v.renderer.SetProjection(v.zoom.fov, v.aspect)
		}
	case ResizeEvent:
		return v.resizeLocked()
	default:
		return fmt.Errorf("pano: unhandled event type %T", ev)
	}
	return nil
}

// resizeLocked re-reads the container dimensions and refreshes the
// aspect ratio, projection, and render surface. Runs synchronously,
// outside the frame-rate gate. Caller holds v.mu.
func (v *Viewer) resizeLocked() error {
	width, height := v.container.Size()
	if width <= 0 || height <= 0 {
		return &ContainerZeroSizeError{Width: width, Height: height}
	}
	v.aspect = float64(width) / float64(height)
	v.target.Resize(width, height)
	if err := v.renderer.Resize(width, height); err != nil {
		return err
	}
	v.renderer.SetProjection(v.zoom.fov, v.aspect)
	return nil
}

// Zoom applies a zoom percentage in [0,100] (0 fully zoomed out, 100
// fully zoomed in) and returns the resulting field of view in degrees.
// With justCalculate the value is computed without changing any state.
func (v *Viewer) Zoom(percent float64, justCalculate bool) (float64, error) {
	if v.destroyed.Load() {
		return 0, ErrViewerDestroyed
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if justCalculate {
		return v.zoom.fromPercent(percent), nil
	}
	fov := v.zoom.set(percent)
	v.renderer.SetProjection(fov, v.aspect)
	return fov, nil
}

// StepZoom moves the field of view one wheel increment. Stepping
// against a bound is a no-op, not an error.
func (v *Viewer) StepZoom(dir ZoomDirection) error {
	if v.destroyed.Load() {
		return ErrViewerDestroyed
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.zoom.stepBy(dir) {
		v.renderer.SetProjection(v.zoom.fov, v.aspect)
	}
	return nil
}

// Fov returns the current field of view in degrees.
func (v *Viewer) Fov() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.zoom.fov
}

// Longitude returns the current look longitude in degrees, in [0,360).
func (v *Viewer) Longitude() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.orientation.Longitude()
}

// Latitude returns the current look latitude in degrees.
func (v *Viewer) Latitude() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.orientation.Latitude()
}

// Holding reports whether a drag or touch currently holds the view.
func (v *Viewer) Holding() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.gesture.holding()
}

// FaceStatus returns the loading state of one face texture.
func (v *Viewer) FaceStatus(side Side) TextureStatus {
	v.mu.Lock()
	defer v.mu.Unlock()
	if side < 0 || side >= sideCount {
		return TextureFailed
	}
	return v.slots[side].status
}

// Snapshot returns a copy of the most recently rendered frame.
func (v *Viewer) Snapshot() *image.RGBA {
	v.mu.Lock()
	defer v.mu.Unlock()
	src := v.target.Image()
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

// Container returns the container this viewer is mounted on.
func (v *Viewer) Container() Container { return v.container }

// Destroy tears the viewer down: the container's registry entry is
// cleared first (synchronously, so a reentrant construction never sees
// a stale occupied state), the animation loop is stopped, in-flight
// face loads are cancelled, and the renderer is closed. Destroy is
// idempotent; every other method on a destroyed viewer returns
// ErrViewerDestroyed.
func (v *Viewer) Destroy() {
	if !v.destroyed.CompareAndSwap(false, true) {
		return
	}
	registry.release(v.container)
	close(v.stop)
	if v.loadCancel != nil {
		v.loadCancel()
	}

	v.mu.Lock()
	r := v.renderer
	for i := range v.slots {
		v.slots[i] = faceSlot{}
	}
	v.mu.Unlock()

	if r != nil {
		if err := r.Close(); err != nil {
			Logger().Warn("pano: renderer close failed", "error", err)
		}
	}
	Logger().Info("pano: viewer destroyed")
}
