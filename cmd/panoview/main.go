// Command panoview renders frames from a cube panorama to PNG files.
//
// It mounts a viewer on an in-memory region, lets the animation loop
// run for the requested duration, and saves the first and last frames.
// Useful for checking face sources and viewing parameters without a
// windowing host.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/pano"
	"github.com/gogpu/pano/backend"

	// Register the GPU backend when available.
	_ "github.com/gogpu/pano/backend/gpu"
)

func main() {
	var (
		configPath  = flag.String("config", "", "YAML viewer config file")
		code        = flag.String("code", "", "panorama code for the path template")
		mask        = flag.String("mask", "", "path template with #PANORAMA_CODE# and #SIDE# placeholders")
		width       = flag.Int("width", 800, "output width")
		height      = flag.Int("height", 600, "output height")
		duration    = flag.Duration("duration", 2*time.Second, "how long to animate")
		zoom        = flag.Float64("zoom", 0, "zoom percentage in [0,100]")
		output      = flag.String("output", "pano", "output file prefix")
		backendName = flag.String("backend", "", "rendering backend (default: best available)")
		verbose     = flag.Bool("v", false, "enable logging")
	)
	flag.Parse()

	if *verbose {
		pano.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := loadConfig(*configPath, *code, *mask, *zoom)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	region := pano.NewRegion(*width, *height)
	opts, closeBackend, err := rendererOptions(*backendName, *width, *height)
	if err != nil {
		log.Fatalf("backend: %v", err)
	}
	defer closeBackend()

	v, err := pano.New(region, cfg, opts...)
	if err != nil {
		log.Fatalf("viewer: %v", err)
	}
	defer v.Destroy()

	first := fmt.Sprintf("%s-first.png", *output)
	if err := savePNG(v, first); err != nil {
		log.Fatalf("save: %v", err)
	}

	if err := v.StartAnimating(); err != nil {
		log.Fatalf("animate: %v", err)
	}
	time.Sleep(*duration)

	last := fmt.Sprintf("%s-last.png", *output)
	if err := savePNG(v, last); err != nil {
		log.Fatalf("save: %v", err)
	}

	log.Printf("Saved %s and %s (%dx%d, fov %.0f, longitude %.1f)",
		first, last, *width, *height, v.Fov(), v.Longitude())
}

// loadConfig builds the viewer config from a YAML file or from the
// code/mask flags.
func loadConfig(path, code, mask string, zoom float64) (pano.Config, error) {
	if path != "" {
		return pano.LoadConfig(path)
	}
	if code == "" || mask == "" {
		return pano.Config{}, fmt.Errorf("either -config or both -code and -mask are required")
	}
	return pano.Config{
		PanoramaCode: code,
		ImgPathMask:  mask,
		StartZoom:    zoom,
	}, nil
}

// rendererOptions resolves the backend selection into viewer options
// and a cleanup function. An empty name tries the best available
// backend and falls back to the built-in software renderer.
func rendererOptions(name string, width, height int) ([]pano.Option, func(), error) {
	nop := func() {}

	var b backend.RenderBackend
	if name != "" {
		b = backend.Get(name)
		if b == nil {
			return nil, nop, fmt.Errorf("unknown backend %q (available: %v)", name, backend.Available())
		}
		if err := b.Init(); err != nil {
			return nil, nop, err
		}
	} else {
		var err error
		b, err = backend.InitDefault()
		if err != nil {
			log.Printf("no backend available, using built-in software renderer: %v", err)
			return nil, nop, nil
		}
	}

	return []pano.Option{pano.WithRenderer(b.NewRenderer(width, height))}, b.Close, nil
}

// savePNG writes the viewer's current frame to a PNG file.
func savePNG(v *pano.Viewer, path string) error {
	img := v.Snapshot()
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, img)
}
