package scratchfx

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// CardConfig controls the scratch interaction.
type CardConfig struct {
	// BrushRadius is the radius in pixels of the circular erase brush.
	BrushRadius float64
	// CompleteThreshold is the coverage percentage (0-100) at which
	// OnComplete fires.
	CompleteThreshold float64
	// DustDelta is the minimum coverage growth, in percentage points since
	// the last dust event, required to fire OnDust again.
	DustDelta float64
	// SampleStride makes the coverage scan look at every Nth pixel. Pixel
	// readback is the expensive part of scratching; 32 keeps it cheap
	// without visibly lagging the percentage.
	SampleStride int
	// RecomputeEvery throttles coverage recomputation: erases always apply,
	// but the readback+scan runs at most once per interval.
	RecomputeEvery time.Duration
}

// DefaultCardConfig returns the scratch parameters the original effect ships
// with.
func DefaultCardConfig() CardConfig {
	return CardConfig{
		BrushRadius:       18,
		CompleteThreshold: 50,
		DustDelta:         1.5,
		SampleStride:      32,
		RecomputeEvery:    50 * time.Millisecond,
	}
}

// Card owns the cover layer of the scratch effect. Pointer movement erases
// circular spots from the cover; the cleared fraction is recomputed from the
// pixel buffer (throttled) and reported through callbacks.
//
// All callbacks are optional and are invoked synchronously from ScratchAt.
type Card struct {
	// OnProgress fires with the current coverage percentage after every
	// recompute.
	OnProgress func(percent float64)
	// OnComplete fires exactly once, when coverage first reaches the
	// configured threshold.
	OnComplete func()
	// OnDust fires when coverage has grown by at least DustDelta since the
	// last dust event, with the growth and the scratch position. Hook a
	// SandBurst here.
	OnDust func(delta, x, y float64)

	canvas   Canvas
	cfg      CardConfig
	throttle *Throttle
	percent  float64
	lastDust float64
	complete bool
}

// NewCard creates a Card scratching the given canvas.
func NewCard(canvas Canvas, cfg CardConfig) *Card {
	if cfg.SampleStride < 1 {
		cfg.SampleStride = 1
	}
	return &Card{
		canvas:   canvas,
		cfg:      cfg,
		throttle: NewThrottle(cfg.RecomputeEvery),
	}
}

// CoverColor floods the cover with a flat color and resets scratch progress.
func (c *Card) CoverColor(col Color) {
	c.canvas.Fill(col)
	c.reset()
}

// CoverImage draws img over the whole cover and resets scratch progress.
func (c *Card) CoverImage(img *ebiten.Image) {
	c.canvas.Clear()
	c.canvas.DrawImage(img, 0, 0)
	c.reset()
}

func (c *Card) reset() {
	c.percent = 0
	c.lastDust = 0
	c.complete = false
}

// Percent returns the coverage percentage from the most recent recompute.
func (c *Card) Percent() float64 {
	return c.percent
}

// Done reports whether the completion threshold has been reached.
func (c *Card) Done() bool {
	return c.complete
}

// ScratchAt erases a brush-sized spot at (x, y) in cover-local coordinates
// and, at most once per RecomputeEvery, recomputes coverage and fires the
// callbacks.
func (c *Card) ScratchAt(x, y float64) {
	c.canvas.EraseCircle(x, y, c.cfg.BrushRadius)
	if !c.throttle.Allow() {
		return
	}
	c.recompute(x, y)
}

func (c *Card) recompute(x, y float64) {
	pix := c.canvas.Pixels()
	if pix == nil {
		return
	}
	c.percent = coveragePercent(pix, c.cfg.SampleStride)

	if c.OnProgress != nil {
		c.OnProgress(c.percent)
	}
	if c.OnDust != nil && c.percent-c.lastDust >= c.cfg.DustDelta {
		delta := c.percent - c.lastDust
		c.lastDust = c.percent
		c.OnDust(delta, x, y)
	}
	if !c.complete && c.percent >= c.cfg.CompleteThreshold {
		c.complete = true
		if c.OnComplete != nil {
			c.OnComplete()
		}
	}
}

// coveragePercent returns the percentage of sampled pixels that are fully
// transparent. pix is an RGBA buffer, stride the pixel sampling step.
func coveragePercent(pix []byte, stride int) float64 {
	if len(pix) < 4 {
		return 0
	}
	sampled, cleared := 0, 0
	for i := 3; i < len(pix); i += 4 * stride {
		sampled++
		if pix[i] == 0 {
			cleared++
		}
	}
	return float64(cleared) / float64(sampled) * 100
}
