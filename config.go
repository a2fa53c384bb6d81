package pano

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default configuration values. Zero-valued fields in Config are
// replaced by these during construction.
const (
	// DefaultMinFov is the narrowest field of view (fully zoomed in).
	DefaultMinFov = 10.0

	// DefaultMaxFov is the widest field of view (fully zoomed out).
	DefaultMaxFov = 75.0

	// DefaultFovMouseStep is the field-of-view change per wheel tick.
	DefaultFovMouseStep = 2.0

	// DefaultFPSLimit caps the animation loop's draw rate.
	DefaultFPSLimit = 30.0
)

// Config describes a viewer. It is immutable after construction.
//
// The texture source must be specified one of two ways: an explicit
// SideTextures map naming all six faces, or a PanoramaCode plus an
// ImgPathMask template. The template form substitutes the code for
// `#PANORAMA_CODE#` and each side name for `#SIDE#`:
//
//	Config{
//	    PanoramaCode: "lobby",
//	    ImgPathMask:  "assets/#PANORAMA_CODE#/#SIDE#.png",
//	}
//
// The zoom surface is a start percentage (StartZoom in [0,100], 0 is
// fully zoomed out). There is no absolute start-fov field; compute the
// percentage from the bounds if you need a specific initial fov.
type Config struct {
	// PanoramaCode is the token substituted into ImgPathMask.
	PanoramaCode string `yaml:"panorama_code"`

	// ImgPathMask is the URL template containing #PANORAMA_CODE# and
	// #SIDE# placeholders.
	ImgPathMask string `yaml:"img_path_mask"`

	// SideNames overrides the per-side name substituted into the
	// template, in canonical order [right,left,top,bottom,back,front].
	// Leave nil for the canonical names themselves.
	SideNames []string `yaml:"side_names"`

	// SideTextures maps canonical side names directly to URLs,
	// bypassing the template. All six faces must be present.
	SideTextures map[string]string `yaml:"side_textures"`

	// StartZoom is the initial zoom percentage in [0,100].
	StartZoom float64 `yaml:"start_zoom"`

	// MinFov and MaxFov bound the field of view in degrees.
	MinFov float64 `yaml:"min_fov"`
	MaxFov float64 `yaml:"max_fov"`

	// FovMouseStep is the field-of-view change per wheel tick.
	FovMouseStep float64 `yaml:"fov_mouse_step"`

	// MouseWheelRequired fails construction when the container does
	// not support wheel input. By default the viewer silently proceeds
	// without wheel zoom.
	MouseWheelRequired bool `yaml:"mouse_wheel_required"`

	// FPSLimit caps the animation loop's draw rate in frames/second.
	FPSLimit float64 `yaml:"fps_limit"`
}

// withDefaults returns a copy with zero-valued tunables replaced by the
// package defaults.
func (c Config) withDefaults() Config {
	if c.MinFov == 0 {
		c.MinFov = DefaultMinFov
	}
	if c.MaxFov == 0 {
		c.MaxFov = DefaultMaxFov
	}
	if c.FovMouseStep == 0 {
		c.FovMouseStep = DefaultFovMouseStep
	}
	if c.FPSLimit == 0 {
		c.FPSLimit = DefaultFPSLimit
	}
	return c
}

// Validate checks the configuration for consistency. It is called by
// New after defaults are applied; validation failures short-circuit
// construction before any resource is allocated.
func (c Config) Validate() error {
	if c.MinFov <= 0 {
		return &ConfigError{Field: "MinFov", Reason: "must be positive"}
	}
	if c.MaxFov <= c.MinFov {
		return &ConfigError{Field: "MaxFov", Reason: "must be greater than MinFov"}
	}
	if c.FovMouseStep <= 0 {
		return &ConfigError{Field: "FovMouseStep", Reason: "must be positive"}
	}
	if c.FPSLimit <= 0 {
		return &ConfigError{Field: "FPSLimit", Reason: "must be positive"}
	}
	if c.StartZoom < 0 || c.StartZoom > 100 {
		return &ConfigError{Field: "StartZoom", Reason: "must be in [0,100]"}
	}
	if c.SideNames != nil && len(c.SideNames) != sideCount {
		return &ConfigError{Field: "SideNames", Reason: "must list exactly six names"}
	}

	if c.SideTextures != nil {
		for side := SideRight; side < sideCount; side++ {
			if c.SideTextures[side.String()] == "" {
				return &RequiredSideTextureError{Side: side}
			}
		}
		return nil
	}
	if c.PanoramaCode == "" {
		return &RequiredParameterError{Name: "PanoramaCode"}
	}
	if c.ImgPathMask == "" {
		return &RequiredParameterError{Name: "ImgPathMask"}
	}
	return nil
}

// LoadConfig reads a YAML configuration file. Missing fields keep their
// zero values and are defaulted during construction.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Config{}, fmt.Errorf("pano: read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("pano: parse config: %w", err)
	}
	return cfg, nil
}
