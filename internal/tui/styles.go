package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/RohitRai1141/pomodoro/internal/timer"
)

// One Dark Pro color palette
var (
	ColorGreen  = lipgloss.Color("#98C379")
	ColorYellow = lipgloss.Color("#E5C07B")
	ColorCyan   = lipgloss.Color("#56B6C2")

	ColorFgPrimary = lipgloss.Color("#ABB2BF")
	ColorFgMuted   = lipgloss.Color("#636B78")

	ColorBorder = lipgloss.Color("#3F4451")
)

// Component styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted)

	MessageStyle = lipgloss.NewStyle().
			Foreground(ColorFgPrimary)

	// Setup form styles
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorFgMuted)

	FieldStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2).
			Width(40)

	FieldFocusedStyle = FieldStyle.
				BorderForeground(ColorCyan)
)

// PhaseColor returns the accent color for a phase: cyan for work,
// yellow for short breaks, green for long breaks.
func PhaseColor(p timer.Phase) lipgloss.Color {
	switch p {
	case timer.PhaseShortBreak:
		return ColorYellow
	case timer.PhaseLongBreak:
		return ColorGreen
	default:
		return ColorCyan
	}
}
