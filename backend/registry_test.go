package backend

import (
	"testing"

	"github.com/gogpu/pano"
)

// stubBackend is a minimal RenderBackend for registry tests.
type stubBackend struct {
	name string
}

func (b *stubBackend) Name() string { return b.name }
func (b *stubBackend) Init() error  { return nil }
func (b *stubBackend) Close()       {}
func (b *stubBackend) NewRenderer(width, height int) pano.Renderer {
	return pano.NewSoftwareRenderer(width, height)
}

// TestRegisterGet tests registration and retrieval round trip.
func TestRegisterGet(t *testing.T) {
	Register("stub", func() RenderBackend {
		return &stubBackend{name: "stub"}
	})
	defer Unregister("stub")

	if !IsRegistered("stub") {
		t.Fatal("IsRegistered(stub) = false after Register")
	}
	b := Get("stub")
	if b == nil {
		t.Fatal("Get(stub) = nil")
	}
	if b.Name() != "stub" {
		t.Errorf("Name() = %q, want stub", b.Name())
	}
}

// TestGetUnknown tests that unknown names return nil.
func TestGetUnknown(t *testing.T) {
	if b := Get("no-such-backend"); b != nil {
		t.Errorf("Get(unknown) = %v, want nil", b)
	}
}

// TestUnregister tests removal.
func TestUnregister(t *testing.T) {
	Register("temp", func() RenderBackend {
		return &stubBackend{name: "temp"}
	})
	Unregister("temp")

	if IsRegistered("temp") {
		t.Error("IsRegistered(temp) = true after Unregister")
	}
}

// TestAvailableIncludesSoftware tests that the built-in software
// backend self-registers on import.
func TestAvailableIncludesSoftware(t *testing.T) {
	if !IsRegistered(BackendSoftware) {
		t.Fatal("software backend not registered")
	}
	found := false
	for _, name := range Available() {
		if name == BackendSoftware {
			found = true
		}
	}
	if !found {
		t.Errorf("Available() = %v, missing %q", Available(), BackendSoftware)
	}
}

// TestDefaultPriority tests that default selection prefers the GPU
// backend when present and falls back to software otherwise.
func TestDefaultPriority(t *testing.T) {
	// With only the software backend registered (the usual test
	// environment), Default returns it.
	if IsRegistered(BackendGPU) {
		t.Skip("gpu backend registered; priority covered by integration")
	}
	b := Default()
	if b == nil {
		t.Fatal("Default() = nil with software registered")
	}
	if b.Name() != BackendSoftware {
		t.Errorf("Default().Name() = %q, want %q", b.Name(), BackendSoftware)
	}
}

// TestInitDefault tests the one-call initialization helper.
func TestInitDefault(t *testing.T) {
	b, err := InitDefault()
	if err != nil {
		t.Fatalf("InitDefault() error: %v", err)
	}
	defer b.Close()

	if b.Name() == "" {
		t.Error("initialized backend has no name")
	}
}

// TestMustDefault tests the panicking variant succeeds when a backend
// exists.
func TestMustDefault(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustDefault panicked: %v", r)
		}
	}()
	if b := MustDefault(); b == nil {
		t.Error("MustDefault() = nil")
	}
}
