package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/RohitRai1141/pomodoro/internal/timer"
)

// Setup form field order.
const (
	fieldWork = iota
	fieldShortBreak
	fieldLongBreak
	fieldSessions
	fieldCount
)

var setupLabels = [fieldCount]string{
	"Work Duration (minutes):",
	"Short Break (minutes):",
	"Long Break (minutes):",
	"Total Sessions:",
}

// newSetupInputs builds the four numeric fields with the defaults as
// placeholders. Fields only accept up to three digits, so the core
// never sees a non-numeric or absurd value.
func newSetupInputs(defaults timer.Config) []textinput.Model {
	placeholders := [fieldCount]int{
		defaults.WorkMinutes,
		defaults.ShortBreakMinutes,
		defaults.LongBreakMinutes,
		defaults.TotalSessions,
	}

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = strconv.Itoa(placeholders[i])
		ti.CharLimit = 3
		ti.Width = 34
		ti.Validate = digitsOnly
		inputs[i] = ti
	}
	inputs[fieldWork].Focus()
	return inputs
}

func digitsOnly(s string) error {
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("digits only")
		}
	}
	return nil
}

// updateSetup handles keys on the setup screen.
func (m Model) updateSetup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Start):
		cfg := m.setupConfig()
		m.session = timer.NewSession(cfg)
		m.lastTick = time.Now()
		m.viewMode = ViewModeTimer
		m.debug.AddEvent("start", fmt.Sprintf("%+v", cfg))
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		m.focusField((m.focusIdx + 1) % len(m.inputs))
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		m.focusField((m.focusIdx + len(m.inputs) - 1) % len(m.inputs))
		return m, nil
	}

	// Digits and backspace go to the focused field.
	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	return m, cmd
}

// focusField moves focus to field i.
func (m *Model) focusField(i int) {
	m.inputs[m.focusIdx].Blur()
	m.focusIdx = i
	m.inputs[m.focusIdx].Focus()
}

// setupConfig reads the form into a Config. Empty, unparseable or
// non-positive entries fall back to the defaults, so the result is
// always valid.
func (m Model) setupConfig() timer.Config {
	return timer.Config{
		WorkMinutes:       fieldValue(m.inputs[fieldWork], m.defaults.WorkMinutes),
		ShortBreakMinutes: fieldValue(m.inputs[fieldShortBreak], m.defaults.ShortBreakMinutes),
		LongBreakMinutes:  fieldValue(m.inputs[fieldLongBreak], m.defaults.LongBreakMinutes),
		TotalSessions:     fieldValue(m.inputs[fieldSessions], m.defaults.TotalSessions),
	}
}

func fieldValue(ti textinput.Model, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(ti.Value()))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// setupView renders the labeled form.
func (m Model) setupView() string {
	parts := []string{
		TitleStyle.Foreground(ColorCyan).Render("POMODORO SETUP"),
		"",
	}
	for i, ti := range m.inputs {
		style := FieldStyle
		if i == m.focusIdx {
			style = FieldFocusedStyle
		}
		parts = append(parts,
			LabelStyle.Render(setupLabels[i]),
			style.Render(ti.View()),
		)
	}
	parts = append(parts, "",
		HelpStyle.Render(helpLine(m.keys.NextField, m.keys.Start, m.keys.Quit)))

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return m.center(content)
}
