package pano

import (
	"testing"
	"time"
)

// TestFramePacer tests the frame gate against synthetic timestamps.
func TestFramePacer(t *testing.T) {
	p := newFramePacer(10) // 100ms interval
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	if !p.shouldDraw(t0) {
		t.Fatal("first tick gated")
	}
	if p.shouldDraw(t0.Add(50 * time.Millisecond)) {
		t.Error("early tick drew")
	}
	if !p.shouldDraw(t0.Add(100 * time.Millisecond)) {
		t.Error("due tick gated")
	}
	// The last-drawn mark moved to t0+100ms, not t0+150ms.
	if p.shouldDraw(t0.Add(199 * time.Millisecond)) {
		t.Error("tick 99ms after last draw drew")
	}
	if !p.shouldDraw(t0.Add(200 * time.Millisecond)) {
		t.Error("due tick gated after skip")
	}
}

// waitForRenders polls until the renderer reaches n frames or the
// deadline passes.
func waitForRenders(t *testing.T, r *countingRenderer, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if r.renderCount() >= n {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("renders = %d after deadline, want >= %d", r.renderCount(), n)
}

// TestAnimationLoop tests that the loop draws paced frames, advances
// the idle rotation, and stops producing frames once destroyed.
func TestAnimationLoop(t *testing.T) {
	r := newCountingRenderer()
	v, _ := newTestViewer(t, WithRenderer(r))

	if err := v.StartAnimating(); err != nil {
		t.Fatalf("StartAnimating() error: %v", err)
	}
	// Starting again while running is a quiet no-op.
	if err := v.StartAnimating(); err != nil {
		t.Fatalf("second StartAnimating() error: %v", err)
	}

	waitForRenders(t, r, 3)
	if got := v.Longitude(); got <= startLongitudeDeg {
		t.Errorf("Longitude = %v after animating, want > %v", got, startLongitudeDeg)
	}

	v.Destroy()
	count := r.renderCount()
	time.Sleep(100 * time.Millisecond)
	if got := r.renderCount(); got != count {
		t.Errorf("renders grew from %d to %d after Destroy", count, got)
	}
}

// TestAnimationLoopHoldPausesRotation tests that a drag suspends idle
// rotation without stopping the draw loop.
func TestAnimationLoopHoldPausesRotation(t *testing.T) {
	r := newCountingRenderer()
	v, region := newTestViewer(t, WithRenderer(r))

	if err := Dispatch(region, PointerDownEvent{X: 10, Y: 10}); err != nil {
		t.Fatalf("Dispatch down: %v", err)
	}
	if err := v.StartAnimating(); err != nil {
		t.Fatalf("StartAnimating() error: %v", err)
	}

	waitForRenders(t, r, 3)
	if got := v.Longitude(); got != startLongitudeDeg {
		t.Errorf("Longitude = %v while held, want %v", got, startLongitudeDeg)
	}
}
