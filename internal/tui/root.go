// Package tui implements the terminal front end: a Bubble Tea model
// that polls for keyboard events and periodic ticks, feeds both into
// the timer session, and re-renders after every dispatch. All
// countdown and transition logic lives in internal/timer; this package
// only translates messages and draws snapshots.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RohitRai1141/pomodoro/internal/timer"
)

// Notifier is the desktop-notification collaborator. Implementations
// are best-effort: the loop never observes delivery failures.
type Notifier interface {
	Send(title, body string)
}

// Chimer is the audio collaborator, same fire-and-forget contract.
type Chimer interface {
	Chime()
}

// ViewMode represents the current screen.
type ViewMode int

const (
	ViewModeSetup ViewMode = iota
	ViewModeTimer
	ViewModeBreakPrompt
)

// tickInterval bounds how long the loop waits between polls. Every
// tick carries wall-clock time, so the countdown stays accurate even
// if individual ticks arrive late.
const tickInterval = 250 * time.Millisecond

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// notifyTitle is the summary line on every desktop notification.
const notifyTitle = "Pomodoro"

// Model is the root Bubble Tea model.
type Model struct {
	width  int
	height int

	viewMode ViewMode
	keys     KeyMap

	// Setup form
	inputs   []textinput.Model
	focusIdx int
	defaults timer.Config

	// Active session, nil until setup completes
	session  *timer.Session
	lastTick time.Time

	notifier Notifier
	chimer   Chimer

	debug DebugPanel
}

// NewModel creates the root model on the setup screen. defaults seeds
// the form placeholders and must be valid.
func NewModel(defaults timer.Config, notifier Notifier, chimer Chimer, debug bool) Model {
	return Model{
		viewMode: ViewModeSetup,
		keys:     DefaultKeyMap(),
		inputs:   newSetupInputs(defaults),
		defaults: defaults,
		notifier: notifier,
		chimer:   chimer,
		debug:    NewDebugPanel(debug),
	}
}

// Init starts the cursor blink and the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd())
}

// Update dispatches every message into the session and schedules the
// requested side effects.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		now := time.Time(msg)
		var effects []timer.Effect
		if m.session != nil && !m.lastTick.IsZero() {
			effects = m.session.Tick(now.Sub(m.lastTick))
		}
		m.lastTick = now
		m.syncViewMode()
		cmds := append(m.effectCmds(effects), tickCmd())
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes a key press to the active screen. Unrecognized keys
// are no-ops.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if m.session != nil {
			m.session.Quit()
		}
		m.debug.AddEvent("quit", "")
		return m, tea.Quit
	}

	switch m.viewMode {
	case ViewModeSetup:
		return m.updateSetup(msg)
	case ViewModeBreakPrompt:
		return m.updateBreakPrompt(msg)
	default:
		return m.updateTimer(msg)
	}
}

// updateTimer handles keys on the countdown screen.
func (m Model) updateTimer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var effects []timer.Effect
	switch {
	case key.Matches(msg, m.keys.Pause):
		effects = m.session.TogglePause()
		m.debug.AddEvent("pause", m.session.Snapshot().State.String())
	case key.Matches(msg, m.keys.Skip):
		effects = m.session.Skip()
		m.debug.AddEvent("skip", "")
	case key.Matches(msg, m.keys.Extend):
		effects = m.session.Adjust(time.Minute)
	case key.Matches(msg, m.keys.Reduce):
		effects = m.session.Adjust(-time.Minute)
	}
	m.syncViewMode()
	return m, tea.Batch(m.effectCmds(effects)...)
}

// updateBreakPrompt handles keys on the break prompt.
func (m Model) updateBreakPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var effects []timer.Effect
	switch {
	case key.Matches(msg, m.keys.StartBreak):
		effects = m.session.ConfirmBreak()
		m.debug.AddEvent("break confirmed", "")
	case key.Matches(msg, m.keys.Skip):
		effects = m.session.Skip()
		m.debug.AddEvent("break skipped", "")
	}
	m.syncViewMode()
	return m, tea.Batch(m.effectCmds(effects)...)
}

// syncViewMode derives the screen from the session state.
func (m *Model) syncViewMode() {
	if m.session == nil {
		m.viewMode = ViewModeSetup
		return
	}
	if m.session.Snapshot().State == timer.StateAwaitingBreak {
		m.viewMode = ViewModeBreakPrompt
	} else {
		m.viewMode = ViewModeTimer
	}
}

// effectCmds turns requested effects into fire-and-forget commands.
// The session never performs side effects itself.
func (m *Model) effectCmds(effects []timer.Effect) []tea.Cmd {
	var cmds []tea.Cmd
	for _, e := range effects {
		switch e.Kind {
		case timer.EffectNotify:
			msg := e.Message
			m.debug.AddEvent("notify", msg)
			cmds = append(cmds, func() tea.Msg {
				m.notifier.Send(notifyTitle, msg)
				return nil
			})
		case timer.EffectChime:
			cmds = append(cmds, func() tea.Msg {
				m.chimer.Chime()
				return nil
			})
		}
	}
	return cmds
}

// View renders the active screen.
func (m Model) View() string {
	var screen string
	switch m.viewMode {
	case ViewModeSetup:
		screen = m.setupView()
	case ViewModeBreakPrompt:
		screen = m.breakPromptView()
	default:
		screen = m.timerView()
	}

	if m.debug.Enabled() {
		screen = lipgloss.JoinVertical(lipgloss.Left, screen, m.debug.Render(m.width))
	}
	return screen
}

// timerView renders the phase title, the block-digit countdown, the
// run status and the help footer, centered in the terminal.
func (m Model) timerView() string {
	snap := m.session.Snapshot()
	accent := PhaseColor(snap.Phase)

	var title string
	switch snap.Phase {
	case timer.PhaseShortBreak:
		title = "SHORT BREAK"
	case timer.PhaseLongBreak:
		title = "LONG BREAK"
	default:
		title = fmt.Sprintf("WORK SESSION %d/%d", snap.CurrentSession, snap.TotalSessions)
	}

	status := "RUNNING"
	if snap.State == timer.StatePaused {
		status = "PAUSED"
	}

	parts := []string{
		TitleStyle.Foreground(accent).Render(title),
		"",
		lipgloss.NewStyle().Foreground(accent).Render(BigTime(snap.RemainingSeconds)),
		"",
		StatusStyle.Render(status),
	}
	if snap.CompletedWork > 0 {
		parts = append(parts, StatusStyle.Render(fmt.Sprintf("%d completed", snap.CompletedWork)))
	}
	parts = append(parts, "",
		HelpStyle.Render(helpLine(m.keys.Pause, m.keys.Skip, m.keys.Extend, m.keys.Reduce, m.keys.Quit)))

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return m.center(content)
}

// breakPromptView renders the prompt between a finished work session
// and its break.
func (m Model) breakPromptView() string {
	snap := m.session.Snapshot()

	message := "Time for a Short Break!"
	if snap.NextBreak == timer.PhaseLongBreak {
		message = "Time for a Long Break!"
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		TitleStyle.Foreground(ColorCyan).Render("WORK SESSION COMPLETE!"),
		"",
		TitleStyle.Foreground(PhaseColor(snap.NextBreak)).Render(message),
		"",
		MessageStyle.Render("Ready to start your break?"),
		"",
		HelpStyle.Render(helpLine(m.keys.StartBreak, m.keys.Skip, m.keys.Quit)),
	)
	return m.center(content)
}

// center places content in the middle of the terminal once its size is
// known.
func (m Model) center(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
