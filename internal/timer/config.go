package timer

import (
	"fmt"
	"time"
)

// Config holds the four values collected by the setup screen. All
// duration fields are whole minutes. A Config is validated once before
// the first session starts and is read-only afterwards.
type Config struct {
	WorkMinutes       int
	ShortBreakMinutes int
	LongBreakMinutes  int
	TotalSessions     int
}

// DefaultConfig returns the classic 25/5/15 cadence with 4 sessions
// per cycle.
func DefaultConfig() Config {
	return Config{
		WorkMinutes:       25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		TotalSessions:     4,
	}
}

// Validate checks that every field is positive.
func (c Config) Validate() error {
	if c.WorkMinutes <= 0 {
		return fmt.Errorf("work minutes must be positive, got %d", c.WorkMinutes)
	}
	if c.ShortBreakMinutes <= 0 {
		return fmt.Errorf("short break minutes must be positive, got %d", c.ShortBreakMinutes)
	}
	if c.LongBreakMinutes <= 0 {
		return fmt.Errorf("long break minutes must be positive, got %d", c.LongBreakMinutes)
	}
	if c.TotalSessions <= 0 {
		return fmt.Errorf("total sessions must be positive, got %d", c.TotalSessions)
	}
	return nil
}

// PhaseDuration returns the configured duration for a phase.
func (c Config) PhaseDuration(p Phase) time.Duration {
	switch p {
	case PhaseShortBreak:
		return time.Duration(c.ShortBreakMinutes) * time.Minute
	case PhaseLongBreak:
		return time.Duration(c.LongBreakMinutes) * time.Minute
	default:
		return time.Duration(c.WorkMinutes) * time.Minute
	}
}
