package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/chrissnell/moonify/internal/timeline"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	StepBack     key.Binding
	StepForward  key.Binding
	ShiftBack    key.Binding
	ShiftForward key.Binding
	JumpBack     key.Binding
	JumpForward  key.Binding
	Today        key.Binding
	Tomorrow     key.Binding
	PanLeft      key.Binding
	PanRight     key.Binding
	Center       key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		StepBack: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "-5m"),
		),
		StepForward: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "+5m"),
		),
		ShiftBack: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("⇧←", "-30m"),
		),
		ShiftForward: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("⇧→", "+30m"),
		),
		JumpBack: key.NewBinding(
			key.WithKeys("[", "pgup"),
			key.WithHelp("[", "-3h"),
		),
		JumpForward: key.NewBinding(
			key.WithKeys("]", "pgdown"),
			key.WithHelp("]", "+3h"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Tomorrow: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "tomorrow"),
		),
		PanLeft: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h/l", "pan"),
		),
		PanRight: key.NewBinding(
			key.WithKeys("l"),
		),
		Center: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "center"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// TimelineKeys hands the window the key strings it owns, so a key is
// resolved against the window's state when it arrives.
func (k KeyMap) TimelineKeys() timeline.Keys {
	return timeline.Keys{
		Back:         k.StepBack.Keys(),
		Forward:      k.StepForward.Keys(),
		ShiftBack:    k.ShiftBack.Keys(),
		ShiftForward: k.ShiftForward.Keys(),
		JumpBack:     k.JumpBack.Keys(),
		JumpForward:  k.JumpForward.Keys(),
		Today:        k.Today.Keys(),
		Tomorrow:     k.Tomorrow.Keys(),
	}
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StepBack, k.StepForward, k.ShiftBack, k.ShiftForward, k.JumpBack, k.JumpForward, k.Today, k.Tomorrow, k.PanLeft, k.Center, k.Quit}
}
