//go:build !nogpu

package gpu

import (
	_ "embed"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/cubemap.wgsl
var cubemapShaderWGSL string

// GPUSampleConfig is the GPU-compatible layout of the per-frame
// sampling parameters. Must match the Config struct in cubemap.wgsl.
type GPUSampleConfig struct {
	Width      uint32     // Output width in pixels
	Height     uint32     // Output height in pixels
	FaceSize   uint32     // Face texture edge length in texels
	Pad0       uint32     // Padding for alignment
	Forward    [4]float32 // Camera forward basis vector
	Right      [4]float32 // Camera right basis vector
	Up         [4]float32 // Camera up basis vector
	HalfExtent [4]float32 // x: tan(fov/2)*aspect, y: tan(fov/2)
}

// gpuSampleConfigSize is the byte size of GPUSampleConfig on the GPU.
const gpuSampleConfigSize = 80

// cubemapSampler holds the GPU pipeline for view-ray cubemap sampling.
// It compiles the WGSL shader through naga and creates the compute
// pipeline; the renderer dispatches it per frame.
type cubemapSampler struct {
	device hal.Device

	shaderModule     hal.ShaderModule
	inputBindLayout  hal.BindGroupLayout
	outputBindLayout hal.BindGroupLayout
	pipelineLayout   hal.PipelineLayout
	samplePipeline   hal.ComputePipeline

	// Compiled SPIR-V (cached for verification)
	spirvCode []uint32
}

// newCubemapSampler compiles the sampling shader and builds the compute
// pipeline. Returns an error if compute shaders are unsupported; the
// renderer then stays on the CPU mirror path.
func newCubemapSampler(device hal.Device) (*cubemapSampler, error) {
	if device == nil {
		return nil, fmt.Errorf("gpu: device is required")
	}

	s := &cubemapSampler{device: device}

	spirvBytes, err := naga.Compile(cubemapShaderWGSL)
	if err != nil {
		return nil, fmt.Errorf("gpu: failed to compile cubemap shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	s.spirvCode = make([]uint32, len(spirvBytes)/4)
	for i := range s.spirvCode {
		s.spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	shaderModule, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "cubemap_sampler",
		Source: hal.ShaderSource{
			SPIRV: s.spirvCode,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: failed to create shader module: %w", err)
	}
	s.shaderModule = shaderModule

	if err := s.createLayouts(); err != nil {
		s.Destroy()
		return nil, err
	}
	if err := s.createPipeline(); err != nil {
		s.Destroy()
		return nil, err
	}

	return s, nil
}

// inputLayoutEntries describes group 0 of the sampling pipeline: the
// uniform config and the read-only packed face texels.
func inputLayoutEntries() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: gputypes.ShaderStageCompute,
			Buffer: &gputypes.BufferBindingLayout{
				Type:           gputypes.BufferBindingTypeUniform,
				MinBindingSize: gpuSampleConfigSize,
			},
		},
		{
			Binding:    1,
			Visibility: gputypes.ShaderStageCompute,
			Buffer: &gputypes.BufferBindingLayout{
				Type: gputypes.BufferBindingTypeReadOnlyStorage,
			},
		},
	}
}

// outputLayoutEntries describes group 1: the writable pixel buffer.
func outputLayoutEntries() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: gputypes.ShaderStageCompute,
			Buffer: &gputypes.BufferBindingLayout{
				Type: gputypes.BufferBindingTypeStorage,
			},
		},
	}
}

// createLayouts creates the bind group layouts for the pipeline.
func (s *cubemapSampler) createLayouts() error {
	inputLayout, err := s.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   "cubemap_input_layout",
		Entries: inputLayoutEntries(),
	})
	if err != nil {
		return fmt.Errorf("gpu: failed to create input bind group layout: %w", err)
	}
	s.inputBindLayout = inputLayout

	outputLayout, err := s.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   "cubemap_output_layout",
		Entries: outputLayoutEntries(),
	})
	if err != nil {
		return fmt.Errorf("gpu: failed to create output bind group layout: %w", err)
	}
	s.outputBindLayout = outputLayout

	layout, err := s.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "cubemap_pipeline_layout",
		BindGroupLayouts: []hal.BindGroupLayout{s.inputBindLayout, s.outputBindLayout},
	})
	if err != nil {
		return fmt.Errorf("gpu: failed to create pipeline layout: %w", err)
	}
	s.pipelineLayout = layout

	return nil
}

// createPipeline creates the sampling compute pipeline.
func (s *cubemapSampler) createPipeline() error {
	pipeline, err := s.device.CreateComputePipeline(&hal.ComputePipelineDescriptor{
		Label:  "cubemap_sample_pipeline",
		Layout: s.pipelineLayout,
		Compute: hal.ComputeState{
			Module:     s.shaderModule,
			EntryPoint: "cs_sample",
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: failed to create sample pipeline: %w", err)
	}
	s.samplePipeline = pipeline
	return nil
}

// SPIRVCode returns the compiled SPIR-V code (for debugging/verification).
func (s *cubemapSampler) SPIRVCode() []uint32 {
	return s.spirvCode
}

// Destroy releases all GPU resources in reverse creation order.
func (s *cubemapSampler) Destroy() {
	if s.device == nil {
		return
	}
	if s.samplePipeline != nil {
		s.device.DestroyComputePipeline(s.samplePipeline)
		s.samplePipeline = nil
	}
	if s.pipelineLayout != nil {
		s.device.DestroyPipelineLayout(s.pipelineLayout)
		s.pipelineLayout = nil
	}
	if s.inputBindLayout != nil {
		s.device.DestroyBindGroupLayout(s.inputBindLayout)
		s.inputBindLayout = nil
	}
	if s.outputBindLayout != nil {
		s.device.DestroyBindGroupLayout(s.outputBindLayout)
		s.outputBindLayout = nil
	}
	if s.shaderModule != nil {
		s.device.DestroyShaderModule(s.shaderModule)
		s.shaderModule = nil
	}
}

// Byte serialization helpers (for GPU buffer upload).

func writeUint32(buf []byte, offset int, val uint32) {
	buf[offset] = byte(val)
	buf[offset+1] = byte(val >> 8)
	buf[offset+2] = byte(val >> 16)
	buf[offset+3] = byte(val >> 24)
}

func writeFloat32(buf []byte, offset int, val float32) {
	writeUint32(buf, offset, math.Float32bits(val))
}

func writeVec4(buf []byte, offset int, v [4]float32) {
	for i, f := range v {
		writeFloat32(buf, offset+i*4, f)
	}
}

// configToBytes serializes a GPUSampleConfig to the GPU buffer layout.
func configToBytes(c GPUSampleConfig) []byte {
	buf := make([]byte, gpuSampleConfigSize)
	writeUint32(buf, 0, c.Width)
	writeUint32(buf, 4, c.Height)
	writeUint32(buf, 8, c.FaceSize)
	writeUint32(buf, 12, c.Pad0)
	writeVec4(buf, 16, c.Forward)
	writeVec4(buf, 32, c.Right)
	writeVec4(buf, 48, c.Up)
	writeVec4(buf, 64, c.HalfExtent)
	return buf
}
