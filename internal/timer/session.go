// Package timer contains the domain logic for the Pomodoro timer: the
// Config collected at setup, the Clock countdown primitive, the
// session Counter, and the Session state machine that ties them
// together.
//
// The Session is pure: events go in, a list of requested Effects comes
// out, and the event loop dispatches those to the notification and
// sound collaborators afterwards. Nothing in this package touches the
// terminal, the speaker, or the notification daemon.
package timer

import "time"

// Phase identifies one timed interval kind.
type Phase int

const (
	PhaseWork Phase = iota
	PhaseShortBreak
	PhaseLongBreak
)

func (p Phase) String() string {
	switch p {
	case PhaseShortBreak:
		return "short break"
	case PhaseLongBreak:
		return "long break"
	default:
		return "work"
	}
}

// IsBreak reports whether p is one of the break phases.
func (p Phase) IsBreak() bool { return p != PhaseWork }

// State enumerates the session states the renderer distinguishes.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateAwaitingBreak // work finished, waiting for the user to start the break
	StateDone
)

func (s State) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StateAwaitingBreak:
		return "awaiting break"
	case StateDone:
		return "done"
	default:
		return "running"
	}
}

// EffectKind identifies a side effect a transition requests.
type EffectKind int

const (
	// EffectNotify asks for a desktop notification carrying Message.
	EffectNotify EffectKind = iota
	// EffectChime asks for the completion chime.
	EffectChime
)

// Effect is a side effect requested by a transition. The state machine
// never performs effects itself; the event loop dispatches them to the
// collaborators after the update, fire-and-forget.
type Effect struct {
	Kind    EffectKind
	Message string
}

func notifyAndChime(msg string) []Effect {
	return []Effect{{Kind: EffectNotify, Message: msg}, {Kind: EffectChime}}
}

// Session is the Pomodoro state machine. It owns the Clock and the
// Counter; no other component mutates them. Every event method is a
// total function: inputs that make no sense in the current state are
// no-ops, never errors.
type Session struct {
	cfg     Config
	phase   Phase
	clock   *Clock
	counter *Counter

	awaiting  bool  // between a finished work session and its break
	nextBreak Phase // valid while awaiting
	done      bool
}

// NewSession starts a session in the first work phase with a running
// clock. cfg must already be validated.
func NewSession(cfg Config) *Session {
	return &Session{
		cfg:     cfg,
		phase:   PhaseWork,
		clock:   NewClock(cfg.PhaseDuration(PhaseWork)),
		counter: NewCounter(cfg.TotalSessions),
	}
}

// Tick feeds elapsed wall-clock time into the active clock. During the
// break prompt there is no active clock and ticks fall through.
func (s *Session) Tick(elapsed time.Duration) []Effect {
	if s.done || s.awaiting {
		return nil
	}
	if s.clock.Tick(elapsed) {
		return s.finishPhase()
	}
	return nil
}

// TogglePause flips the active clock between Running and Paused.
func (s *Session) TogglePause() []Effect {
	if s.done || s.awaiting {
		return nil
	}
	if s.clock.Running() {
		s.clock.Pause()
	} else {
		s.clock.Resume()
	}
	return nil
}

// Adjust adds delta to the active clock while it is running. A
// subtract that crosses zero completes the phase exactly like natural
// expiry, with the same single notification.
func (s *Session) Adjust(delta time.Duration) []Effect {
	if s.done || s.awaiting || !s.clock.Running() {
		return nil
	}
	if s.clock.Adjust(delta) {
		return s.finishPhase()
	}
	return nil
}

// Skip forces the transition the active clock would make on expiry.
// Skipping out of a work session announces it like natural expiry;
// skipping the break prompt or a running break is silent.
func (s *Session) Skip() []Effect {
	switch {
	case s.done:
		return nil
	case s.awaiting:
		s.startWork() // bypass the break entirely
		return nil
	case s.phase == PhaseWork:
		return s.finishPhase()
	default:
		s.startWork()
		return nil
	}
}

// ConfirmBreak starts the prompted break with its configured duration.
// No-op outside the break prompt.
func (s *Session) ConfirmBreak() []Effect {
	if s.done || !s.awaiting {
		return nil
	}
	s.phase = s.nextBreak
	s.awaiting = false
	s.clock = NewClock(s.cfg.PhaseDuration(s.phase))
	return nil
}

// Quit moves to the terminal state. Reachable from every state; all
// events are no-ops afterwards.
func (s *Session) Quit() { s.done = true }

// Done reports whether the session reached the terminal state.
func (s *Session) Done() bool { return s.done }

// finishPhase handles expiry of the active clock, natural or forced.
// A finished work session advances the counter and parks the session
// at the break prompt; a finished break starts the next work session.
func (s *Session) finishPhase() []Effect {
	if s.phase == PhaseWork {
		s.nextBreak = s.counter.NextBreakKind()
		s.counter.AdvanceAfterWork()
		s.awaiting = true
		s.clock = nil
		if s.nextBreak == PhaseLongBreak {
			return notifyAndChime("Work session finished! Time for a long break.")
		}
		return notifyAndChime("Work session finished! Time for a short break.")
	}
	msg := "Short break finished! Back to work."
	if s.phase == PhaseLongBreak {
		msg = "Long break finished! Back to work."
	}
	s.startWork()
	return notifyAndChime(msg)
}

// startWork begins a fresh work phase with the configured duration.
func (s *Session) startWork() {
	s.phase = PhaseWork
	s.awaiting = false
	s.clock = NewClock(s.cfg.PhaseDuration(PhaseWork))
}

// Snapshot is the read-only view handed to the renderer after every
// dispatch. The renderer owns all formatting and color decisions.
type Snapshot struct {
	Phase            Phase
	State            State
	RemainingSeconds int
	NextBreak        Phase // valid when State == StateAwaitingBreak
	CurrentSession   int
	TotalSessions    int
	CompletedWork    int
}

// Snapshot returns a consistent view of the session for rendering.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Phase:          s.phase,
		CurrentSession: s.counter.Current(),
		TotalSessions:  s.counter.Total(),
		CompletedWork:  s.counter.Completed(),
	}
	switch {
	case s.done:
		snap.State = StateDone
	case s.awaiting:
		snap.State = StateAwaitingBreak
		snap.NextBreak = s.nextBreak
	case s.clock.Running():
		snap.State = StateRunning
		snap.RemainingSeconds = s.clock.RemainingSeconds()
	default:
		snap.State = StatePaused
		snap.RemainingSeconds = s.clock.RemainingSeconds()
	}
	return snap
}
