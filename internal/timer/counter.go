package timer

// Counter tracks which work session of the configured set is in
// progress and therefore whether the next break is short or long.
// Only AdvanceAfterWork mutates it; everything else is a query.
type Counter struct {
	current   int // 1-based index within the configured set
	total     int
	completed int // work sessions finished since start, never wraps
}

// NewCounter returns a counter positioned on the first work session.
func NewCounter(total int) *Counter {
	return &Counter{current: 1, total: total}
}

// Current returns the 1-based index of the work session in progress.
func (c *Counter) Current() int { return c.current }

// Total returns the configured number of sessions per cycle.
func (c *Counter) Total() int { return c.total }

// Completed returns how many work sessions have finished since start.
func (c *Counter) Completed() int { return c.completed }

// NextBreakKind returns the break that follows the session currently
// in progress: a long break after the last session of the set, a
// short break otherwise. Call it before AdvanceAfterWork wraps the
// index.
func (c *Counter) NextBreakKind() Phase {
	if c.current%c.total == 0 {
		return PhaseLongBreak
	}
	return PhaseShortBreak
}

// AdvanceAfterWork records a completed work session. Past the end of
// the set the index wraps to 1, so the short/long cadence repeats
// indefinitely instead of running off the end.
func (c *Counter) AdvanceAfterWork() {
	c.completed++
	c.current++
	if c.current > c.total {
		c.current = 1
	}
}
