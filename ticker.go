package scratchfx

import (
	"time"
)

// Scheduler is the pair of scheduling primitives the animation core consumes:
// "next paint" scheduling and "after delay" scheduling. Both are one-shot,
// fire-and-forget callbacks. The core never reimplements timing itself.
type Scheduler interface {
	// RequestFrame schedules fn to run once at the next paint opportunity.
	RequestFrame(fn func())
	// After schedules fn to run once after at least d has elapsed.
	After(d time.Duration, fn func())
}

// timer is a pending After callback.
type timer struct {
	due time.Time
	fn  func()
}

// LoopScheduler is a Scheduler pumped by the host game loop: call Update once
// per ebiten Update. Frame callbacks queued before an Update run during that
// Update; callbacks queued while Update is running wait for the next one,
// matching requestAnimationFrame semantics. Timers fire on the first Update
// at or past their due time, so timer resolution is the game's tick interval.
//
// Because everything runs inside Update, the whole animation stays on the
// game-loop goroutine: no locking, no parallelism.
type LoopScheduler struct {
	// Now is the clock used for timers. Overridable in tests.
	Now func() time.Time

	frame  []func()
	timers []timer
	runBuf []func() // reused per Update
}

// NewLoopScheduler creates a LoopScheduler using the wall clock.
func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{Now: time.Now}
}

// RequestFrame schedules fn for the next Update.
func (l *LoopScheduler) RequestFrame(fn func()) {
	l.frame = append(l.frame, fn)
}

// After schedules fn to run on the first Update at or past now+d.
func (l *LoopScheduler) After(d time.Duration, fn func()) {
	l.timers = append(l.timers, timer{due: l.Now().Add(d), fn: fn})
}

// Pending returns the number of queued frame callbacks and timers.
func (l *LoopScheduler) Pending() int {
	return len(l.frame) + len(l.timers)
}

// Update runs all frame callbacks queued before this call, then all timers
// that have come due. Callbacks scheduled during Update run on a later
// Update.
func (l *LoopScheduler) Update() {
	// Swap out the frame queue so callbacks queued by the callbacks
	// themselves land in the next frame.
	l.runBuf = append(l.runBuf[:0], l.frame...)
	l.frame = l.frame[:0]
	for _, fn := range l.runBuf {
		fn()
	}

	now := l.Now()
	i := 0
	for i < len(l.timers) {
		t := l.timers[i]
		if t.due.After(now) {
			i++
			continue
		}
		// Swap-remove before firing: the callback may schedule new timers.
		l.timers[i] = l.timers[len(l.timers)-1]
		l.timers = l.timers[:len(l.timers)-1]
		t.fn()
	}
}

// Ticker drives a fixed-cadence callback loop. Each cycle schedules the tick
// on the next paint opportunity and the following cycle after the configured
// delay, so the actual cadence is max(paint interval, delay). Missed frames
// are skipped, never queued: there is no backpressure or catch-up.
type Ticker struct {
	sched   Scheduler
	delay   time.Duration
	tick    func()
	running bool
}

// NewTicker creates a Ticker invoking tick at most once per delay.
func NewTicker(sched Scheduler, delay time.Duration, tick func()) *Ticker {
	return &Ticker{sched: sched, delay: delay, tick: tick}
}

// Run starts the loop. Calling Run on a running ticker is a no-op.
func (t *Ticker) Run() {
	if t.running {
		return
	}
	t.running = true
	t.cycle()
}

// Stop halts the loop. Callbacks already handed to the scheduler may still
// fire, but they do nothing and schedule nothing further.
func (t *Ticker) Stop() {
	t.running = false
}

// Running reports whether the ticker is active.
func (t *Ticker) Running() bool {
	return t.running
}

func (t *Ticker) cycle() {
	if !t.running {
		return
	}
	t.sched.RequestFrame(func() {
		if t.running {
			t.tick()
		}
	})
	t.sched.After(t.delay, t.cycle)
}
