package scratchfx

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Throttle gates an operation to at most once per interval. A non-positive
// interval always allows.
type Throttle struct {
	// Now is the clock. Overridable in tests.
	Now func() time.Time

	interval time.Duration
	last     time.Time
}

// NewThrottle creates a Throttle with the given minimum interval.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{Now: time.Now, interval: interval}
}

// Allow reports whether the operation may run now, and if so records the
// time. The first call always allows.
func (t *Throttle) Allow() bool {
	now := t.Now()
	if !t.last.IsZero() && now.Sub(t.last) < t.interval {
		return false
	}
	t.last = now
	return true
}

// Pointer feeds mouse and touch movement into a Card. It polls the input
// state once per game-loop update, converts screen coordinates to card-local
// offsets, and scratches while a pointer is down inside the card's bounds.
type Pointer struct {
	card     *Card
	bounds   Rect // card area in screen coordinates
	touchBuf []ebiten.TouchID
}

// NewPointer creates a Pointer scratching card within bounds.
func NewPointer(card *Card, bounds Rect) *Pointer {
	return &Pointer{card: card, bounds: bounds}
}

// SetBounds moves the card's screen-space area (e.g. after a layout change).
func (p *Pointer) SetBounds(bounds Rect) {
	p.bounds = bounds
}

// Update polls the mouse and all active touches. Call once per ebiten
// Update.
func (p *Pointer) Update() {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.feed(float64(x), float64(y))
	}
	p.touchBuf = ebiten.AppendTouchIDs(p.touchBuf[:0])
	for _, id := range p.touchBuf {
		x, y := ebiten.TouchPosition(id)
		p.feed(float64(x), float64(y))
	}
}

func (p *Pointer) feed(x, y float64) {
	if !p.bounds.Contains(x, y) {
		return
	}
	p.card.ScratchAt(x-p.bounds.X, y-p.bounds.Y)
}
