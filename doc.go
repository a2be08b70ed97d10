// Package scratchfx renders an interactive scratch-card effect for
// [Ebitengine]: a cover layer is progressively erased by pointer or touch
// movement, revealing the image beneath, and erased regions spill a falling
// "sand" particle animation.
//
// # Architecture
//
// The package is built around a small real-time animation core:
//
//   - [Scene] holds the live set of renderable objects for one [Surface] and
//     redraws them every tick.
//   - [Ticker] drives the frame loop: each tick is gated by both the next
//     paint opportunity and a minimum elapsed delay, via a [Scheduler].
//   - Motion and lifetime are added by decorators ([FallLinear],
//     [FallParabolic], [TimeLimited], [FadeOut]) that wrap an inner
//     [Renderable] and stand in for it in the Scene.
//   - [SandBurst] is a one-shot spawner that schedules many short-lived
//     decorated [Grain] particles with staggered, randomized delays.
//   - [Value] nodes ([Between], [Sum], [Mul], ...) compose randomized timing
//     and motion parameters declaratively; random draws are fixed at first
//     evaluation.
//
// The scratch interaction itself lives in [Card] (erase brush, coverage
// percentage, completion and dust callbacks) and [Pointer] (mouse/touch
// polling).
//
// # Quick start
//
//	cover := scratchfx.NewImageSurface(coverImg)
//	card := scratchfx.NewCard(cover, scratchfx.DefaultCardConfig())
//
//	effects := scratchfx.NewImageSurface(effectImg)
//	scene := scratchfx.NewScene(effects)
//
//	sched := scratchfx.NewLoopScheduler()
//	card.OnDust = func(delta, x, y float64) {
//		scene.AddObject(scratchfx.NewSandBurst(scene, sched, x, y,
//			scratchfx.DefaultBurstConfig()))
//	}
//
//	ticker := scratchfx.NewTicker(sched, 16*time.Millisecond, func() {
//		scene.Render()
//	})
//	ticker.Run()
//
// Pump the scheduler and the pointer from your game's Update, and composite
// the card and effect images in Draw. See examples/scratchcard for a complete
// program.
//
// # Concurrency
//
// Everything is single-threaded and cooperative: all mutation happens between
// scheduled callbacks on the game-loop goroutine. No type in this package is
// safe for concurrent use.
//
// [Ebitengine]: https://ebitengine.org
package scratchfx
