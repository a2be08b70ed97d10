package scratchfx

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FadeOut wraps a Renderable and tweens a float64 field (typically a grain's
// Alpha) toward zero over a fixed duration, easing out. The tween is driven
// by wall-clock time measured between renders, so it stays correct whatever
// cadence the Ticker settles on.
type FadeOut struct {
	// Now is the clock used to measure inter-render time. Overridable in
	// tests.
	Now func() time.Time

	target Renderable
	field  *float64
	tween  *gween.Tween
	last   time.Time
	primed bool
}

// NewFadeOut wraps target, animating *field from its current value to zero
// over duration seconds.
func NewFadeOut(target Renderable, field *float64, duration float32) *FadeOut {
	return &FadeOut{
		Now:    time.Now,
		target: target,
		field:  field,
		tween:  gween.New(float32(*field), 0, duration, ease.OutQuad),
	}
}

// Render advances the fade by the time elapsed since the previous render,
// writes the tweened value to the field, then draws the target. The first
// render establishes the time base and leaves the field at its start value.
func (f *FadeOut) Render(c Canvas) {
	now := f.Now()
	if f.primed {
		dt := float32(now.Sub(f.last).Seconds())
		v, _ := f.tween.Update(dt)
		*f.field = float64(v)
	} else {
		f.primed = true
	}
	f.last = now
	f.target.Render(c)
}

// Position returns the target's position.
func (f *FadeOut) Position() (float64, float64) { return f.target.Position() }

// Move forwards to the target and returns the wrapper for chaining.
func (f *FadeOut) Move(topFn func(float64) float64, leftFn func(float64, float64) float64) Renderable {
	f.target.Move(topFn, leftFn)
	return f
}
