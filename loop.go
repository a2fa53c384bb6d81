package pano

import "time"

// tickInterval is the cadence of the animation loop's tick source,
// approximating a 60 Hz display refresh. The framePacer gates actual
// draws below this rate.
const tickInterval = time.Second / 60

// framePacer rate-limits draws against a tick source: a draw happens
// only when at least one frame interval has elapsed since the last one.
// Ticks arriving early are skipped without rescheduling penalty.
type framePacer struct {
	interval time.Duration
	last     time.Time
}

func newFramePacer(fpsLimit float64) framePacer {
	return framePacer{interval: time.Duration(float64(time.Second) / fpsLimit)}
}

// shouldDraw reports whether a frame is due at now, and if so records
// now as the last drawn timestamp.
func (p *framePacer) shouldDraw(now time.Time) bool {
	if !p.last.IsZero() && now.Sub(p.last) < p.interval {
		return false
	}
	p.last = now
	return true
}

// StartAnimating begins the paced animation loop on its own goroutine.
// The loop draws at most Config.FPSLimit frames per second and
// terminates when the viewer is destroyed; there is no separate stop
// operation. Calling it again while the loop runs is a no-op.
func (v *Viewer) StartAnimating() error {
	if v.destroyed.Load() {
		return ErrViewerDestroyed
	}
	if !v.animating.CompareAndSwap(false, true) {
		return nil
	}
	go v.animate()
	return nil
}

// animate is the loop body. Termination is explicit: the stop channel
// closes synchronously in Destroy, and the destroyed flag is checked at
// the top of every tick in case a tick was already in flight.
func (v *Viewer) animate() {
	defer v.animating.Store(false)

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-v.stop:
			return
		case now := <-ticker.C:
			if v.destroyed.Load() {
				return
			}
			if v.pacer.shouldDraw(now) {
				v.advanceIdle()
				if err := v.Draw(); err != nil {
					Logger().Warn("pano: draw failed", "error", err)
				}
			}
		}
	}
}
