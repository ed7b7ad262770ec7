// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-crew-pass/internal/config"
	"github.com/MKhiriev/go-crew-pass/internal/passcode"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// highlightExpired and shakeTick are timer messages. page keeps a timer armed
// on one screen from touching another.
type (
	highlightExpired struct {
		page string
		gen  uint64
	}

	shakeTick struct {
		page string
		gen  uint64
	}
)

// keypad drives the timers and feedback of a passcode screen.
type keypad struct {
	page     string
	timing   config.ClientKeypad
	vibrator passcode.Vibrator
}

func newKeypad(page string, timing config.ClientKeypad, vibrator passcode.Vibrator) keypad {
	if vibrator == nil {
		vibrator = passcode.NopVibrator{}
	}
	return keypad{page: page, timing: timing, vibrator: vibrator}
}

// follow schedules what a key press asks for: the highlight clear and any
// feedback.
func (k keypad) follow(pad *passcode.Pad, res passcode.Result) tea.Cmd {
	var cmds []tea.Cmd
	if res.HighlightGen != 0 {
		page, gen := k.page, res.HighlightGen
		cmds = append(cmds, tea.Tick(k.timing.HighlightDelay, func(time.Time) tea.Msg {
			return highlightExpired{page: page, gen: gen}
		}))
	}
	cmds = append(cmds, k.play(pad, res.Feedback))
	return tea.Batch(cmds...)
}

// play vibrates and starts the shake.
func (k keypad) play(pad *passcode.Pad, fb passcode.Feedback) tea.Cmd {
	if fb.Pulse != passcode.PulseNone {
		k.vibrator.Vibrate(fb.Pulse)
	}
	if !fb.Shake {
		return nil
	}
	return k.shakeTick(pad.StartShake())
}

func (k keypad) shakeTick(gen uint64) tea.Cmd {
	page := k.page
	return tea.Tick(k.timing.ShakeStep, func(time.Time) tea.Msg {
		return shakeTick{page: page, gen: gen}
	})
}

// handleTimer consumes timer messages addressed to this keypad.
func (k keypad) handleTimer(pad *passcode.Pad, msg tea.Msg) (tea.Cmd, bool) {
	switch m := msg.(type) {
	case highlightExpired:
		if m.page != k.page {
			return nil, true
		}
		pad.ExpireHighlight(m.gen)
		return nil, true
	case shakeTick:
		if m.page != k.page {
			return nil, true
		}
		if pad.AdvanceShake(m.gen) {
			return k.shakeTick(m.gen), true
		}
		return nil, true
	}
	return nil, false
}

// renderKeypad draws the entered-digit dots above the key grid, shifted by
// the shake offset.
func renderKeypad(pad *passcode.Pad) string {
	var dots strings.Builder
	for i := 0; i < passcode.CodeLength; i++ {
		if i > 0 {
			dots.WriteString(" ")
		}
		if i < pad.Len() {
			dots.WriteString(dotFilledStyle.Render("●"))
		} else {
			dots.WriteString(dotEmptyStyle.Render("○"))
		}
	}

	active, highlighted := pad.Highlighted()
	rows := make([]string, 0, len(passcode.Layout))
	for _, row := range passcode.Layout {
		cells := make([]string, 0, len(row))
		for _, k := range row {
			style := keyStyle
			if highlighted && k == active {
				style = activeKeyStyle
			}
			cells = append(cells, style.Render(string(k)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	grid := lipgloss.JoinVertical(lipgloss.Center, append([]string{"  " + dots.String(), ""}, rows...)...)
	return lipgloss.NewStyle().MarginLeft(keypadIndent + pad.ShakeOffset()).Render(grid)
}
