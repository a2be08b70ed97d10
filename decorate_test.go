package scratchfx

import (
	"testing"
	"time"
)

func TestFallLinearVerticalRate(t *testing.T) {
	c := &fakeCanvas{}

	g := NewGrain(0, 10, 1, ColorWhite)
	f := NewFallLinear(g, 16, 16)
	f.Render(c)
	top, left := g.Position()
	assertNear(t, "top after one render (16/16)", top, 1.0)
	assertNear(t, "left unchanged", left, 10)

	g2 := NewGrain(0, 10, 1, ColorWhite)
	f2 := NewFallLinear(g2, 16, 8)
	f2.Render(c)
	top2, _ := g2.Position()
	assertNear(t, "top after one render (16/8)", top2, 2.0)
}

func TestFallLinearDelegatesRender(t *testing.T) {
	c := &fakeCanvas{}
	g := NewGrain(5, 5, 2, ColorWhite)
	NewFallLinear(g, 16, 16).Render(c)

	if len(c.fills) != 1 {
		t.Fatalf("fills = %d, want 1 (delegated draw)", len(c.fills))
	}
	// Drawn at the advanced position.
	assertNear(t, "drawn y", c.fills[0].y, 6)
	assertNear(t, "drawn x", c.fills[0].x, 5)
}

func TestFallParabolicFirstRenderHasNoDrift(t *testing.T) {
	c := &fakeCanvas{}
	g := NewGrain(100, 50, 1, ColorWhite)
	f := NewFallParabolic(g, 16, 16, 40)

	// First render: vertical displacement is zero, the drift denominator
	// would be zero; the drift term must be skipped, not go infinite.
	f.Render(c)
	top, left := g.Position()
	assertNear(t, "top", top, 101)
	assertNear(t, "left (no drift yet)", left, 50)
}

func TestFallParabolicDriftDecays(t *testing.T) {
	c := &fakeCanvas{}
	g := NewGrain(0, 0, 1, ColorWhite)
	f := NewFallParabolic(g, 16, 16, 40) // advances 1 per render

	f.Render(c) // top 0 -> 1, no drift
	f.Render(c) // top 1 -> 2, drift 40*2/1 = 80
	_, left := g.Position()
	assertNear(t, "left after second render", left, 80)

	f.Render(c) // top 2 -> 3, drift 40*2/2 = 40
	_, left = g.Position()
	assertNear(t, "left after third render", left, 120)

	f.Render(c) // drift 40*2/3
	_, left = g.Position()
	assertNear(t, "left after fourth render", left, 120+80.0/3)
}

func TestFallParabolicNegativeConstantDriftsLeft(t *testing.T) {
	c := &fakeCanvas{}
	g := NewGrain(0, 0, 1, ColorWhite)
	f := NewFallParabolic(g, 16, 16, -40)

	f.Render(c)
	f.Render(c)
	_, left := g.Position()
	assertNear(t, "left after second render", left, -80)
}

func TestTimeLimitedLifetime(t *testing.T) {
	clock := newFakeClock()
	s := NewScene(&fakeCanvas{})
	target := &recordObject{name: "target"}
	tl := NewTimeLimited(s, target, 100*time.Millisecond)
	tl.Now = clock.Now
	s.AddObject(tl)

	// Clock starts on first render, not at construction.
	clock.Advance(time.Hour)
	s.Render()
	if target.renders != 1 {
		t.Fatalf("renders = %d, want 1", target.renders)
	}

	clock.Advance(99 * time.Millisecond)
	s.Render()
	if target.renders != 2 {
		t.Fatalf("renders = %d before expiry, want 2", target.renders)
	}

	clock.Advance(1 * time.Millisecond) // elapsed == delay: expired
	s.Render()
	if target.renders != 2 {
		t.Errorf("renders = %d at expiry, want 2 (never rendered again)", target.renders)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after expiry, want 0 (wrapper deregistered)", s.Len())
	}

	// Nothing left to render, no double removal, no panic.
	s.Render()
	if target.renders != 2 {
		t.Errorf("renders = %d after expiry, want 2", target.renders)
	}
}

func TestTimeLimitedExpiryAfterManualRemoval(t *testing.T) {
	clock := newFakeClock()
	s := NewScene(&fakeCanvas{})
	target := &recordObject{}
	tl := NewTimeLimited(s, target, 10*time.Millisecond)
	tl.Now = clock.Now
	s.AddObject(tl)
	s.Render()

	// Manual removal first; the expiry path must stay a no-op.
	s.RemoveObject(tl)
	clock.Advance(20 * time.Millisecond)
	tl.Render(&fakeCanvas{})
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0", s.Len())
	}
}

func TestDecoratorsDelegateMoveAndPosition(t *testing.T) {
	g := NewGrain(1, 2, 1, ColorWhite)
	var r Renderable = NewTimeLimited(nil, NewFallLinear(g, 16, 16), time.Hour)

	top, left := r.Position()
	assertNear(t, "top through decorators", top, 1)
	assertNear(t, "left through decorators", left, 2)

	r.Move(
		func(top float64) float64 { return top + 5 },
		func(left, top float64) float64 { return left + top },
	)
	top, left = g.Position()
	assertNear(t, "moved top", top, 6)
	// leftFn sees the pre-update top.
	assertNear(t, "moved left", left, 3)
}

func TestBaseRenderIsSafeDefault(t *testing.T) {
	// The base render warns instead of panicking so a missing subtype
	// render cannot take down the frame loop.
	b := &Base{Top: 1, Left: 2}
	b.Render(&fakeCanvas{})
}
