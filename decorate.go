package scratchfx

import (
	"math"
	"time"
)

// Motion and lifetime are layered onto a Renderable by decoration: a closed
// set of wrappers each exclusively owns one inner Renderable and is
// registered in the Scene in its place. The wrapped target is never
// registered directly once wrapped.

// driftEpsilon guards the parabolic drift denominator. Until the target has
// fallen at least this far the drift term is skipped; on the very first
// render the displacement is exactly zero and the formula would divide by it.
const driftEpsilon = 1e-9

// FallLinear moves its target straight down at a constant rate: each render
// advances top by tickDelay/distancePerTick before delegating the draw.
// A larger distancePerTick therefore means a slower fall.
type FallLinear struct {
	target          Renderable
	tickDelay       float64 // ms per tick
	distancePerTick float64
}

// NewFallLinear wraps target in a constant-speed vertical fall.
func NewFallLinear(target Renderable, tickDelay, distancePerTick float64) *FallLinear {
	return &FallLinear{target: target, tickDelay: tickDelay, distancePerTick: distancePerTick}
}

// Render advances the target downward, then draws it.
func (f *FallLinear) Render(c Canvas) {
	f.target.Move(
		func(top float64) float64 { return top + f.tickDelay/f.distancePerTick },
		func(left, _ float64) float64 { return left },
	)
	f.target.Render(c)
}

// Position returns the target's position.
func (f *FallLinear) Position() (float64, float64) { return f.target.Position() }

// Move forwards to the target and returns the wrapper for chaining.
func (f *FallLinear) Move(topFn func(float64) float64, leftFn func(float64, float64) float64) Renderable {
	f.target.Move(topFn, leftFn)
	return f
}

// FallParabolic moves its target down at a constant rate while drifting it
// sideways by constant*2/(top-initialTop), where initialTop is the target's
// top at wrap time. The drift decays as the fall proceeds, bending the path
// outward near the origin and straightening it below.
type FallParabolic struct {
	target          Renderable
	tickDelay       float64
	distancePerTick float64
	constant        float64
	initialTop      float64
}

// NewFallParabolic wraps target in a falling motion with decaying horizontal
// drift. The sign of constant selects the drift direction.
func NewFallParabolic(target Renderable, tickDelay, distancePerTick, constant float64) *FallParabolic {
	top, _ := target.Position()
	return &FallParabolic{
		target:          target,
		tickDelay:       tickDelay,
		distancePerTick: distancePerTick,
		constant:        constant,
		initialTop:      top,
	}
}

// Render advances the target down and sideways, then draws it.
func (f *FallParabolic) Render(c Canvas) {
	f.target.Move(
		func(top float64) float64 { return top + f.tickDelay/f.distancePerTick },
		func(left, top float64) float64 {
			fallen := top - f.initialTop
			if math.Abs(fallen) < driftEpsilon {
				return left
			}
			return left + f.constant*2/fallen
		},
	)
	f.target.Render(c)
}

// Position returns the target's position.
func (f *FallParabolic) Position() (float64, float64) { return f.target.Position() }

// Move forwards to the target and returns the wrapper for chaining.
func (f *FallParabolic) Move(topFn func(float64) float64, leftFn func(float64, float64) float64) Renderable {
	f.target.Move(topFn, leftFn)
	return f
}

// TimeLimited renders its target for a bounded duration, then removes both
// the target and itself from the owning Scene exactly once and never renders
// again. The clock starts on the first render, not at construction, so delay
// measures visible lifetime rather than scheduling latency.
type TimeLimited struct {
	// Now is the clock used to measure elapsed time. Overridable in tests.
	Now func() time.Time

	target  Renderable
	scene   *Scene
	delay   time.Duration
	started bool
	start   time.Time
	expired bool
}

// NewTimeLimited wraps target with a lifetime of delay, deregistering from
// scene when it expires.
func NewTimeLimited(scene *Scene, target Renderable, delay time.Duration) *TimeLimited {
	return &TimeLimited{Now: time.Now, target: target, scene: scene, delay: delay}
}

// Render delegates to the target while the lifetime lasts; on expiry it
// deregisters the wrapper and the target and draws nothing. Scene removal is
// idempotent, so an expiry racing a manual removal is harmless.
func (t *TimeLimited) Render(c Canvas) {
	if t.expired {
		return
	}
	if !t.started {
		t.started = true
		t.start = t.Now()
	}
	if t.Now().Sub(t.start) >= t.delay {
		t.expired = true
		t.scene.RemoveObject(t.target)
		t.scene.RemoveObject(t)
		return
	}
	t.target.Render(c)
}

// Position returns the target's position.
func (t *TimeLimited) Position() (float64, float64) { return t.target.Position() }

// Move forwards to the target and returns the wrapper for chaining.
func (t *TimeLimited) Move(topFn func(float64) float64, leftFn func(float64, float64) float64) Renderable {
	t.target.Move(topFn, leftFn)
	return t
}
