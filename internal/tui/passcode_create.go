package tui

import (
	"strings"

	"github.com/MKhiriev/go-crew-pass/internal/config"
	"github.com/MKhiriev/go-crew-pass/internal/crypto"
	"github.com/MKhiriev/go-crew-pass/internal/logger"
	"github.com/MKhiriev/go-crew-pass/internal/passcode"
	"github.com/MKhiriev/go-crew-pass/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// CreatePasscodeModel lets a new user pick a passcode. The code is hashed
// before it is handed to the confirm page.
type CreatePasscodeModel struct {
	hasher crypto.PasscodeHasher
	keypad keypad
	logger *logger.Logger

	gate         *passcode.CreateGate
	registration models.Registration
	hashing      bool
}

func NewCreatePasscodeModel(hasher crypto.PasscodeHasher, timing config.ClientKeypad, vibrator passcode.Vibrator, logger *logger.Logger) *CreatePasscodeModel {
	return &CreatePasscodeModel{
		hasher: hasher,
		keypad: newKeypad(pageCreatePasscode, timing, vibrator),
		logger: logger,
		gate:   passcode.NewCreateGate(),
	}
}

func (m *CreatePasscodeModel) Init() tea.Cmd {
	return nil
}

func (m *CreatePasscodeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := m.keypad.handleTimer(&m.gate.Pad, msg); handled {
		return m, cmd
	}

	switch msg := msg.(type) {
	case createStart:
		m.registration = msg.registration
		m.gate = passcode.NewCreateGate()
		m.hashing = false
		return m, nil

	case passcodeHashed:
		m.hashing = false
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "*CreatePasscodeModel.Update").Msg("failed to hash passcode")
			m.gate = passcode.NewCreateGate()
			return m, nil
		}
		return m, navigate(pageConfirmPasscode, confirmStart{registration: m.registration, reference: msg.reference})

	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) {
			return m, navigate(pageMenu, nil)
		}
		if m.hashing {
			return m, nil
		}
		k, ok := keypadKey(msg)
		if !ok {
			return m, nil
		}

		res := m.gate.Press(k)
		cmd := m.keypad.follow(&m.gate.Pad, res)
		if res.Submission == nil {
			return m, cmd
		}

		m.hashing = true
		hasher, code := m.hasher, res.Submission.Code
		return m, tea.Batch(cmd, func() tea.Msg {
			ref, err := hasher.Hash(code)
			return passcodeHashed{reference: ref, err: err}
		})
	}

	return m, nil
}

func (m *CreatePasscodeModel) View() string {
	var b strings.Builder
	b.WriteString("Choose a 4-digit passcode\n\n")
	b.WriteString(renderKeypad(&m.gate.Pad))
	b.WriteString("\n")
	if msg := m.gate.Message(); msg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(msg))
		b.WriteString("\n")
	}
	return renderPage("REGISTER: CREATE PASSCODE", strings.TrimRight(b.String(), "\n"), "0-9: digit │ backspace: ← │ enter: ✓ │ esc: cancel")
}
