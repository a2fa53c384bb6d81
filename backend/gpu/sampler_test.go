//go:build !nogpu

package gpu

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"
)

// TestConfigToBytes tests the uniform buffer layout byte for byte
// against the WGSL Config struct.
func TestConfigToBytes(t *testing.T) {
	cfg := GPUSampleConfig{
		Width:      800,
		Height:     600,
		FaceSize:   1024,
		Forward:    [4]float32{0, 0, -1, 0},
		Right:      [4]float32{1, 0, 0, 0},
		Up:         [4]float32{0, 1, 0, 0},
		HalfExtent: [4]float32{0.75, 0.5, 0, 0},
	}

	buf := configToBytes(cfg)
	if len(buf) != gpuSampleConfigSize {
		t.Fatalf("len = %d, want %d", len(buf), gpuSampleConfigSize)
	}

	u32 := func(off int) uint32 {
		return binary.LittleEndian.Uint32(buf[off:])
	}
	f32 := func(off int) float32 {
		return math.Float32frombits(u32(off))
	}

	if u32(0) != 800 || u32(4) != 600 || u32(8) != 1024 {
		t.Errorf("header = (%d, %d, %d), want (800, 600, 1024)", u32(0), u32(4), u32(8))
	}
	if u32(12) != 0 {
		t.Errorf("padding = %d, want 0", u32(12))
	}
	if f32(16+8) != -1 {
		t.Errorf("forward.z = %v, want -1", f32(16+8))
	}
	if f32(32) != 1 {
		t.Errorf("right.x = %v, want 1", f32(32))
	}
	if f32(48+4) != 1 {
		t.Errorf("up.y = %v, want 1", f32(48+4))
	}
	if f32(64) != 0.75 || f32(64+4) != 0.5 {
		t.Errorf("half extent = (%v, %v), want (0.75, 0.5)", f32(64), f32(64+4))
	}
}

// TestBindGroupLayouts tests that the pipeline's binding layout
// matches the shader: uniform config sized to the serialized struct,
// read-only face storage, writable output storage, all compute-visible.
func TestBindGroupLayouts(t *testing.T) {
	input := inputLayoutEntries()
	if len(input) != 2 {
		t.Fatalf("input entries = %d, want 2", len(input))
	}
	cfg := input[0]
	if cfg.Buffer == nil || cfg.Buffer.Type != gputypes.BufferBindingTypeUniform {
		t.Error("binding 0 is not a uniform buffer")
	}
	if cfg.Buffer.MinBindingSize != gpuSampleConfigSize {
		t.Errorf("config MinBindingSize = %d, want %d",
			cfg.Buffer.MinBindingSize, gpuSampleConfigSize)
	}
	faces := input[1]
	if faces.Buffer == nil || faces.Buffer.Type != gputypes.BufferBindingTypeReadOnlyStorage {
		t.Error("binding 1 is not read-only storage")
	}

	output := outputLayoutEntries()
	if len(output) != 1 {
		t.Fatalf("output entries = %d, want 1", len(output))
	}
	if output[0].Buffer == nil || output[0].Buffer.Type != gputypes.BufferBindingTypeStorage {
		t.Error("output binding is not writable storage")
	}

	for _, e := range append(input, output...) {
		if e.Visibility != gputypes.ShaderStageCompute {
			t.Errorf("binding %d visibility = %v, want compute", e.Binding, e.Visibility)
		}
	}
}

// TestWriteHelpers tests the little-endian write primitives.
func TestWriteHelpers(t *testing.T) {
	buf := make([]byte, 8)
	writeUint32(buf, 0, 0x04030201)
	want := []byte{0x01, 0x02, 0x03, 0x04}
	for i, b := range want {
		if buf[i] != b {
			t.Errorf("buf[%d] = %#x, want %#x", i, buf[i], b)
		}
	}

	writeFloat32(buf, 4, 1.5)
	got := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:]))
	if got != 1.5 {
		t.Errorf("float round trip = %v, want 1.5", got)
	}
}

// TestShaderEmbedded tests that the WGSL source is present with its
// entry point.
func TestShaderEmbedded(t *testing.T) {
	if cubemapShaderWGSL == "" {
		t.Fatal("embedded shader is empty")
	}
	if !strings.Contains(cubemapShaderWGSL, "cs_sample") {
		t.Error("shader missing cs_sample entry point")
	}
	if !strings.Contains(cubemapShaderWGSL, "struct Config") {
		t.Error("shader missing Config struct")
	}
}
