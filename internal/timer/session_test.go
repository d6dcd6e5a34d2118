package timer

import (
	"testing"
	"time"
)

func testConfig() Config {
	return Config{
		WorkMinutes:       25,
		ShortBreakMinutes: 5,
		LongBreakMinutes:  15,
		TotalSessions:     4,
	}
}

func hasNotify(effects []Effect, msg string) bool {
	for _, e := range effects {
		if e.Kind == EffectNotify && e.Message == msg {
			return true
		}
	}
	return false
}

func countKind(effects []Effect, kind EffectKind) int {
	n := 0
	for _, e := range effects {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestSessionInitialState(t *testing.T) {
	s := NewSession(testConfig())
	snap := s.Snapshot()

	if snap.Phase != PhaseWork {
		t.Errorf("Phase = %v, want PhaseWork", snap.Phase)
	}
	if snap.State != StateRunning {
		t.Errorf("State = %v, want StateRunning", snap.State)
	}
	if snap.RemainingSeconds != 25*60 {
		t.Errorf("RemainingSeconds = %d, want %d", snap.RemainingSeconds, 25*60)
	}
	if snap.CurrentSession != 1 || snap.TotalSessions != 4 {
		t.Errorf("session = %d/%d, want 1/4", snap.CurrentSession, snap.TotalSessions)
	}
}

// TestSessionFullCycle walks the scenario: work expires into the break
// prompt, Enter starts the short break, the break expires back into a
// fresh work session.
func TestSessionFullCycle(t *testing.T) {
	s := NewSession(testConfig())

	effects := s.Tick(1500 * time.Second)
	if !hasNotify(effects, "Work session finished! Time for a short break.") {
		t.Errorf("work expiry effects = %v, want short-break notification", effects)
	}
	if countKind(effects, EffectChime) != 1 {
		t.Errorf("work expiry chimes = %d, want 1", countKind(effects, EffectChime))
	}

	snap := s.Snapshot()
	if snap.State != StateAwaitingBreak {
		t.Fatalf("State = %v after work expiry, want StateAwaitingBreak", snap.State)
	}
	if snap.NextBreak != PhaseShortBreak {
		t.Errorf("NextBreak = %v, want PhaseShortBreak", snap.NextBreak)
	}
	if snap.CurrentSession != 2 {
		t.Errorf("CurrentSession = %d after first work session, want 2", snap.CurrentSession)
	}

	if effects := s.ConfirmBreak(); len(effects) != 0 {
		t.Errorf("ConfirmBreak effects = %v, want none", effects)
	}
	snap = s.Snapshot()
	if snap.Phase != PhaseShortBreak || snap.State != StateRunning {
		t.Fatalf("after confirm: phase %v state %v, want short break running", snap.Phase, snap.State)
	}
	if snap.RemainingSeconds != 5*60 {
		t.Errorf("break RemainingSeconds = %d, want %d", snap.RemainingSeconds, 5*60)
	}

	effects = s.Tick(300 * time.Second)
	if !hasNotify(effects, "Short break finished! Back to work.") {
		t.Errorf("break expiry effects = %v, want back-to-work notification", effects)
	}

	snap = s.Snapshot()
	if snap.Phase != PhaseWork || snap.State != StateRunning {
		t.Fatalf("after break: phase %v state %v, want work running", snap.Phase, snap.State)
	}
	if snap.RemainingSeconds != 25*60 {
		t.Errorf("RemainingSeconds = %d, want fresh %d", snap.RemainingSeconds, 25*60)
	}
	// Break completion must not advance the counter again.
	if snap.CurrentSession != 2 {
		t.Errorf("CurrentSession = %d after break, want 2", snap.CurrentSession)
	}
}

func TestSessionWorkExpiryIdempotent(t *testing.T) {
	s := NewSession(testConfig())

	if effects := s.Tick(1500 * time.Second); len(effects) == 0 {
		t.Fatal("expected effects on expiry")
	}
	// Extra ticks while at the break prompt change nothing.
	for i := 0; i < 5; i++ {
		if effects := s.Tick(time.Hour); len(effects) != 0 {
			t.Fatalf("tick %d at break prompt produced effects %v", i, effects)
		}
	}
	if snap := s.Snapshot(); snap.CurrentSession != 2 {
		t.Errorf("CurrentSession = %d, want 2 (advanced exactly once)", snap.CurrentSession)
	}
}

func TestSessionLongBreakAfterLastSession(t *testing.T) {
	s := NewSession(testConfig())

	// Complete sessions 1-3, skipping each prompted break.
	for i := 0; i < 3; i++ {
		effects := s.Tick(1500 * time.Second)
		if !hasNotify(effects, "Work session finished! Time for a short break.") {
			t.Fatalf("session %d: effects = %v, want short-break notification", i+1, effects)
		}
		s.Skip() // skip the break, straight back to work
	}

	// Session 4 earns the long break.
	effects := s.Tick(1500 * time.Second)
	if !hasNotify(effects, "Work session finished! Time for a long break.") {
		t.Fatalf("session 4: effects = %v, want long-break notification", effects)
	}
	snap := s.Snapshot()
	if snap.NextBreak != PhaseLongBreak {
		t.Errorf("NextBreak = %v, want PhaseLongBreak", snap.NextBreak)
	}
	if snap.CurrentSession != 1 {
		t.Errorf("CurrentSession = %d after session 4, want 1 (wrapped)", snap.CurrentSession)
	}

	s.ConfirmBreak()
	if snap := s.Snapshot(); snap.RemainingSeconds != 15*60 {
		t.Errorf("long break RemainingSeconds = %d, want %d", snap.RemainingSeconds, 15*60)
	}
}

func TestSessionPauseFreezesTime(t *testing.T) {
	s := NewSession(testConfig())

	s.Tick(100 * time.Second)
	s.TogglePause()
	if snap := s.Snapshot(); snap.State != StatePaused {
		t.Fatalf("State = %v after pause, want StatePaused", snap.State)
	}

	for i := 0; i < 10; i++ {
		if effects := s.Tick(time.Hour); len(effects) != 0 {
			t.Fatalf("paused tick produced effects %v", effects)
		}
	}

	s.TogglePause()
	snap := s.Snapshot()
	if snap.State != StateRunning {
		t.Fatalf("State = %v after resume, want StateRunning", snap.State)
	}
	if snap.RemainingSeconds != 1400 {
		t.Errorf("RemainingSeconds = %d, want 1400 (paused time must not elapse)", snap.RemainingSeconds)
	}
}

func TestSessionAdjust(t *testing.T) {
	t.Run("adds a minute", func(t *testing.T) {
		s := NewSession(testConfig())
		s.Adjust(time.Minute)
		if snap := s.Snapshot(); snap.RemainingSeconds != 26*60 {
			t.Errorf("RemainingSeconds = %d, want %d", snap.RemainingSeconds, 26*60)
		}
	})

	t.Run("subtract across zero completes like expiry", func(t *testing.T) {
		s := NewSession(testConfig())
		s.Tick(1470 * time.Second) // 30s left
		effects := s.Adjust(-time.Minute)
		if countKind(effects, EffectNotify) != 1 {
			t.Fatalf("notifications = %d, want exactly 1 (no double signal)", countKind(effects, EffectNotify))
		}
		if snap := s.Snapshot(); snap.State != StateAwaitingBreak {
			t.Errorf("State = %v, want StateAwaitingBreak", snap.State)
		}
	})

	t.Run("no-op while paused", func(t *testing.T) {
		s := NewSession(testConfig())
		s.TogglePause()
		if effects := s.Adjust(time.Minute); len(effects) != 0 {
			t.Errorf("paused Adjust produced effects %v", effects)
		}
		if snap := s.Snapshot(); snap.RemainingSeconds != 25*60 {
			t.Errorf("RemainingSeconds = %d, want unchanged %d", snap.RemainingSeconds, 25*60)
		}
	})
}

func TestSessionSkip(t *testing.T) {
	t.Run("work skip announces like expiry", func(t *testing.T) {
		s := NewSession(testConfig())
		effects := s.Skip()
		if countKind(effects, EffectNotify) != 1 || countKind(effects, EffectChime) != 1 {
			t.Errorf("effects = %v, want one notification and one chime", effects)
		}
		if snap := s.Snapshot(); snap.State != StateAwaitingBreak {
			t.Errorf("State = %v, want StateAwaitingBreak", snap.State)
		}
	})

	t.Run("prompt skip bypasses the break silently", func(t *testing.T) {
		s := NewSession(testConfig())
		s.Skip()
		effects := s.Skip()
		if len(effects) != 0 {
			t.Errorf("effects = %v, want none when bypassing the break", effects)
		}
		snap := s.Snapshot()
		if snap.Phase != PhaseWork || snap.State != StateRunning {
			t.Errorf("phase %v state %v, want fresh work running", snap.Phase, snap.State)
		}
		if snap.RemainingSeconds != 25*60 {
			t.Errorf("RemainingSeconds = %d, want full %d", snap.RemainingSeconds, 25*60)
		}
	})

	t.Run("break skip returns to work silently", func(t *testing.T) {
		s := NewSession(testConfig())
		s.Skip()
		s.ConfirmBreak()
		effects := s.Skip()
		if len(effects) != 0 {
			t.Errorf("effects = %v, want none when skipping a break", effects)
		}
		if snap := s.Snapshot(); snap.Phase != PhaseWork {
			t.Errorf("Phase = %v, want PhaseWork", snap.Phase)
		}
	})
}

func TestSessionQuitFromEveryState(t *testing.T) {
	arrange := map[string]func(*Session){
		"work running":  func(s *Session) {},
		"work paused":   func(s *Session) { s.TogglePause() },
		"break prompt":  func(s *Session) { s.Skip() },
		"break running": func(s *Session) { s.Skip(); s.ConfirmBreak() },
	}

	for name, setup := range arrange {
		t.Run(name, func(t *testing.T) {
			s := NewSession(testConfig())
			setup(s)
			s.Quit()
			if !s.Done() {
				t.Fatal("Done() = false after Quit")
			}
			// The terminal state absorbs every further event silently.
			if effects := s.Tick(time.Hour); len(effects) != 0 {
				t.Errorf("Tick after Quit produced %v", effects)
			}
			if effects := s.Skip(); len(effects) != 0 {
				t.Errorf("Skip after Quit produced %v", effects)
			}
			if effects := s.ConfirmBreak(); len(effects) != 0 {
				t.Errorf("ConfirmBreak after Quit produced %v", effects)
			}
			if snap := s.Snapshot(); snap.State != StateDone {
				t.Errorf("State = %v, want StateDone", snap.State)
			}
		})
	}
}
