package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const debugBuffer = 50

// DebugPanel records recent state machine events for the --debug
// overlay rendered under the active screen.
type DebugPanel struct {
	enabled bool
	lines   []string
}

// NewDebugPanel creates a debug panel.
func NewDebugPanel(enabled bool) DebugPanel {
	return DebugPanel{enabled: enabled}
}

// Enabled reports whether the panel renders.
func (d DebugPanel) Enabled() bool { return d.enabled }

// AddEvent records a timestamped event line.
func (d *DebugPanel) AddEvent(event, details string) {
	if !d.enabled {
		return
	}
	line := time.Now().Format("15:04:05.000") + " [" + event + "]"
	if details != "" {
		line += " " + details
	}
	d.lines = append(d.lines, line)
	if len(d.lines) > debugBuffer {
		d.lines = d.lines[len(d.lines)-debugBuffer:]
	}
}

// Render draws the last few event lines in a bordered panel.
func (d DebugPanel) Render(width int) string {
	if !d.enabled {
		return ""
	}

	const shown = 6
	start := 0
	if len(d.lines) > shown {
		start = len(d.lines) - shown
	}
	content := strings.Join(d.lines[start:], "\n")

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorYellow).
		Foreground(ColorFgMuted).
		Padding(0, 1)
	if width > 4 {
		style = style.Width(width - 2)
	}
	return style.Render(content)
}
