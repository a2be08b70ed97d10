package scratchfx

import (
	"fmt"
	"os"
)

// Renderable is anything with a position that can draw itself onto a Canvas.
// Decorators wrap a Renderable to add motion over time or a bounded lifetime;
// the Scene renders whatever it holds once per tick.
type Renderable interface {
	// Render draws the object's current state.
	Render(c Canvas)
	// Position returns the current (top, left) position.
	Position() (top, left float64)
	// Move applies topFn to the vertical position and leftFn to the
	// horizontal one. Both functions receive the pre-update top, so leftFn
	// can derive horizontal drift from vertical displacement (parabolic
	// motion needs this). Returns the receiver for chaining.
	Move(topFn func(top float64) float64, leftFn func(left, top float64) float64) Renderable
}

// Base provides position storage and the default Renderable behavior. Its
// Render is a safe default: it warns on stderr instead of panicking, so a
// subtype missing its Render does not take down the frame loop.
type Base struct {
	Top, Left float64
}

// Render logs a warning. Concrete types are expected to shadow this.
func (b *Base) Render(Canvas) {
	fmt.Fprintf(os.Stderr, "[scratchfx] warning: Render not implemented for object at (%.1f, %.1f)\n",
		b.Top, b.Left)
}

// Position returns the current (top, left) position.
func (b *Base) Position() (float64, float64) {
	return b.Top, b.Left
}

// Move applies the position-update functions. Both receive the pre-update
// top.
func (b *Base) Move(topFn func(top float64) float64, leftFn func(left, top float64) float64) Renderable {
	top := b.Top
	b.Top = topFn(top)
	b.Left = leftFn(b.Left, top)
	return b
}

// Grain is a single sand particle: a small filled circle. Alpha is a separate
// multiplier so a FadeOut decorator can tween it without touching the base
// color.
type Grain struct {
	Base
	Radius float64
	Color  Color
	Alpha  float64
}

// NewGrain creates a grain at (top, left) with the given radius and color.
func NewGrain(top, left, radius float64, c Color) *Grain {
	return &Grain{
		Base:   Base{Top: top, Left: left},
		Radius: radius,
		Color:  c,
		Alpha:  1,
	}
}

// Render draws the grain as a filled circle.
func (g *Grain) Render(c Canvas) {
	c.FillCircle(g.Left, g.Top, g.Radius, g.Color.WithAlpha(g.Alpha))
}
