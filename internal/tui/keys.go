package tui

import (
	"github.com/MKhiriev/go-crew-pass/internal/passcode"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	backspace key.Binding
	paste     key.Binding
	logout    key.Binding
	refresh   key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up")),
	down:      key.NewBinding(key.WithKeys("down")),
	left:      key.NewBinding(key.WithKeys("left")),
	right:     key.NewBinding(key.WithKeys("right")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	backspace: key.NewBinding(key.WithKeys("backspace")),
	paste:     key.NewBinding(key.WithKeys("ctrl+v")),
	logout:    key.NewBinding(key.WithKeys("l")),
	refresh:   key.NewBinding(key.WithKeys("r")),
}

// keypadKey maps a terminal key to a keypad key: digits as typed, backspace
// to ←, enter to ✓.
func keypadKey(msg tea.KeyMsg) (passcode.Key, bool) {
	switch {
	case key.Matches(msg, keys.backspace):
		return passcode.KeyBackspace, true
	case key.Matches(msg, keys.enter):
		return passcode.KeySubmit, true
	}

	s := msg.String()
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		return passcode.DigitKey(s[0]), true
	}
	return "", false
}
