package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for all three screens. The setup
// form additionally feeds digit and backspace events straight into the
// focused text input.
type KeyMap struct {
	// Timer screen
	Pause  key.Binding
	Skip   key.Binding
	Extend key.Binding
	Reduce key.Binding

	// Break prompt
	StartBreak key.Binding

	// Setup screen
	NextField key.Binding
	PrevField key.Binding
	Start     key.Binding

	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/resume"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip"),
		),
		Extend: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "+1m"),
		),
		Reduce: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "-1m"),
		),
		StartBreak: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start break"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// helpLine renders a footer like "[space] pause/resume  •  [s] skip"
// from the given bindings.
func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += "  •  "
		}
		out += "[" + b.Help().Key + "] " + b.Help().Desc
	}
	return out
}
