package scratchfx

import (
	"time"
)

// BurstConfig controls how a SandBurst spawns its grains. The zero value is
// not useful; start from DefaultBurstConfig or load one with
// LoadBurstConfig.
type BurstConfig struct {
	// PartsCount is the total number of grains across all streams. The
	// per-stream count is round(PartsCount/StreamsCount), so the actual
	// total can differ from PartsCount by up to StreamsCount.
	PartsCount int
	// StreamsCount is the number of parallel grain streams.
	StreamsCount int
	// PartsDelay is the stagger unit: within a stream, the k-th grain's
	// base delay is k*PartsDelay plus a random jitter in [0, PartsDelay),
	// the whole sum scaled by 10 into milliseconds.
	PartsDelay float64
	// TickDelay is the frame interval in milliseconds the fall decorators
	// assume. It should match the Ticker delay driving the scene.
	TickDelay float64
	// DistancePerTick divides TickDelay to give the vertical speed; higher
	// values fall slower.
	DistancePerTick Range
	// Lifetime is the range of grain lifetimes in milliseconds.
	Lifetime Range
	// Radius is the range of grain radii in pixels. Radii are clamped to
	// at least half a pixel.
	Radius Range
	// Spread is the maximum offset of a grain's spawn point from the burst
	// origin on each axis.
	Spread Vec2
	// ParabolicConstant is the range of drift strengths for sideways
	// streams. Zero min and max makes every stream fall straight.
	ParabolicConstant Range
	// FadeSeconds, when positive, fades each grain's alpha to zero over
	// this many seconds.
	FadeSeconds float64
	// Palette is the set of colors grains pick from at random.
	// DefaultPalette is used when empty.
	Palette []Color
}

// DefaultBurstConfig returns the burst parameters the original effect ships
// with.
func DefaultBurstConfig() BurstConfig {
	return BurstConfig{
		PartsCount:        60,
		StreamsCount:      5,
		PartsDelay:        3,
		TickDelay:         16,
		DistancePerTick:   Range{Min: 8, Max: 24},
		Lifetime:          Range{Min: 700, Max: 1500},
		Radius:            Range{Min: 1, Max: 2.5},
		Spread:            Vec2{X: 10, Y: 4},
		ParabolicConstant: Range{Min: 20, Max: 70},
		FadeSeconds:       0.4,
	}
}

// SandBurst spawns a shower of short-lived decorated grains with staggered,
// randomized timing. It is a one-shot spawner: it registers in the Scene like
// any Renderable, schedules everything on its first render, and immediately
// removes itself. The grains it scheduled outlive it.
type SandBurst struct {
	Base
	scene   *Scene
	sched   Scheduler
	cfg     BurstConfig
	spawned bool
}

// NewSandBurst creates a burst centered at (x, y) feeding grains into scene
// via sched. Add it to the scene to trigger it on the next render pass.
func NewSandBurst(scene *Scene, sched Scheduler, x, y float64, cfg BurstConfig) *SandBurst {
	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultPalette
	}
	if cfg.StreamsCount < 1 {
		cfg.StreamsCount = 1
	}
	return &SandBurst{
		Base:  Base{Top: y, Left: x},
		scene: scene,
		sched: sched,
		cfg:   cfg,
	}
}

// Render schedules every stream's grains and deregisters the burst. Once
// spawned, further renders are no-ops; the self-removal makes them unlikely
// to begin with.
func (b *SandBurst) Render(Canvas) {
	if b.spawned {
		return
	}
	b.spawned = true

	perStream := int(Round(Div(Const(b.cfg.PartsCount), Const(b.cfg.StreamsCount))).Eval())
	for stream := 0; stream < b.cfg.StreamsCount; stream++ {
		b.spawnStream(stream, perStream)
	}
	b.scene.RemoveObject(b)
}

// spawnStream schedules count grains with staggered delays. The k-th grain's
// delay is (k*PartsDelay + jitter)*10 ms, jitter drawn per grain in
// [0, PartsDelay). The *10 converts the legacy delay unit to milliseconds.
func (b *SandBurst) spawnStream(stream, count int) {
	for k := 0; k < count; k++ {
		delay := Mul(
			Sum(
				Const(float64(k)*b.cfg.PartsDelay),
				Between(Const(0), Const(b.cfg.PartsDelay)),
			),
			Const(10),
		)
		d := time.Duration(delay.Eval() * float64(time.Millisecond))
		b.sched.After(d, func() {
			b.spawnGrain(stream)
		})
	}
}

// spawnGrain builds one decorated grain and adds it to the scene: a circle at
// a randomized offset from the origin, randomized radius and palette color,
// wrapped in a fall (stream 0 falls straight, the others drift alternately
// left and right), optionally a fade, and finally a randomized lifetime.
func (b *SandBurst) spawnGrain(stream int) {
	cfg := &b.cfg

	top := Between(Const(b.Top-cfg.Spread.Y), Const(2*cfg.Spread.Y)).Eval()
	left := Between(Const(b.Left-cfg.Spread.X), Const(2*cfg.Spread.X)).Eval()
	radius := AtLeast(Const(0.5), Const(cfg.Radius.Random())).Eval()
	color := cfg.Palette[int(Floor(Between(Const(0), Const(float64(len(cfg.Palette))))).Eval())]

	grain := NewGrain(top, left, radius, color)

	var body Renderable = grain
	if cfg.FadeSeconds > 0 {
		body = NewFadeOut(body, &grain.Alpha, float32(cfg.FadeSeconds))
	}

	speed := cfg.DistancePerTick.Random()
	var falling Renderable
	constant := cfg.ParabolicConstant.Random()
	if stream == 0 || constant == 0 {
		falling = NewFallLinear(body, cfg.TickDelay, speed)
	} else {
		if stream%2 == 0 {
			constant = -constant
		}
		falling = NewFallParabolic(body, cfg.TickDelay, speed, constant)
	}

	life := time.Duration(cfg.Lifetime.Random() * float64(time.Millisecond))
	b.scene.AddObject(NewTimeLimited(b.scene, falling, life))
}
