//go:build !nogpu

package gpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	// Import Vulkan backend so it registers via init().
	_ "github.com/gogpu/wgpu/hal/vulkan"

	"github.com/gogpu/pano"
	"github.com/gogpu/pano/backend"
)

// GPUBackend renders panorama frames with gogpu/wgpu. Device creation
// is standalone: the backend opens its own Vulkan instance and adapter.
// Hosts that already own a device should instead construct renderers
// around a shared render.DeviceHandle.
type GPUBackend struct {
	mu sync.Mutex

	instance hal.Instance
	device   hal.Device
	queue    hal.Queue

	adapterName string
	initialized bool
}

// init registers the GPU backend on package import.
func init() {
	backend.Register(backend.BackendGPU, func() backend.RenderBackend {
		return &GPUBackend{}
	})
}

// NewGPUBackend creates a new GPU rendering backend.
func NewGPUBackend() *GPUBackend {
	return &GPUBackend{}
}

// Name returns the backend identifier.
func (b *GPUBackend) Name() string {
	return backend.BackendGPU
}

// Init opens a standalone Vulkan device. It fails when no backend or
// adapter is present; callers should treat that as an environment
// capability limit and fall back to the software backend.
func (b *GPUBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.initialized {
		return nil
	}

	gpuBackend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return fmt.Errorf("gpu: vulkan backend not available: %w", backend.ErrBackendNotAvailable)
	}
	instance, err := gpuBackend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return fmt.Errorf("gpu: create instance: %w", err)
	}
	b.instance = instance

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		b.instance = nil
		return fmt.Errorf("gpu: no adapters found: %w", backend.ErrBackendNotAvailable)
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		b.instance = nil
		return fmt.Errorf("gpu: open device: %w", err)
	}
	b.device = openDev.Device
	b.queue = openDev.Queue
	b.adapterName = selected.Info.Name
	b.initialized = true

	pano.Logger().Info("gpu: backend initialized", "adapter", b.adapterName)
	return nil
}

// Close releases the device and instance.
func (b *GPUBackend) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.device != nil {
		b.device.Destroy()
		b.device = nil
	}
	if b.instance != nil {
		b.instance.Destroy()
		b.instance = nil
	}
	b.queue = nil
	b.initialized = false
}

// NewRenderer creates a cubemap renderer on this backend's device.
// Must be called after Init.
func (b *GPUBackend) NewRenderer(width, height int) pano.Renderer {
	b.mu.Lock()
	device, queue := b.device, b.queue
	b.mu.Unlock()
	return newRenderer(device, queue, width, height)
}

// Interface compliance check.
var _ backend.RenderBackend = (*GPUBackend)(nil)
