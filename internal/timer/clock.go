package timer

import "time"

// Clock is the countdown primitive for a single phase. It holds the
// remaining duration and whether wall-clock time is currently
// elapsing. Remaining time is clamped at zero and never goes negative.
//
// Arithmetic is done on time.Duration, so sub-second residue from
// uneven ticks accumulates instead of being dropped and long sessions
// do not drift.
type Clock struct {
	remaining time.Duration
	running   bool
}

// NewClock returns a running clock with d remaining.
func NewClock(d time.Duration) *Clock {
	return &Clock{remaining: d, running: true}
}

// Tick advances the clock by elapsed wall-clock time. It reports true
// exactly once, on the tick that crosses from above zero to zero.
// Paused and already-expired clocks ignore ticks.
func (c *Clock) Tick(elapsed time.Duration) (expired bool) {
	if !c.running || c.remaining <= 0 {
		return false
	}
	c.remaining -= elapsed
	if c.remaining <= 0 {
		c.remaining = 0
		return true
	}
	return false
}

// Adjust adds delta to the remaining time, clamped at zero. A subtract
// that crosses zero counts as completion and reports expiry, the same
// signal Tick gives on natural countdown.
func (c *Clock) Adjust(delta time.Duration) (expired bool) {
	was := c.remaining
	c.remaining += delta
	if c.remaining <= 0 {
		c.remaining = 0
		return was > 0
	}
	return false
}

// Pause stops time from elapsing. No-op if already paused.
func (c *Clock) Pause() { c.running = false }

// Resume lets time elapse again. No-op if already running.
func (c *Clock) Resume() { c.running = true }

// Running reports whether ticks currently advance the clock.
func (c *Clock) Running() bool { return c.running }

// Remaining returns the time left, never negative.
func (c *Clock) Remaining() time.Duration { return c.remaining }

// RemainingSeconds returns the time left rounded up to whole seconds,
// the unit the display shows.
func (c *Clock) RemainingSeconds() int {
	return int((c.remaining + time.Second - 1) / time.Second)
}
