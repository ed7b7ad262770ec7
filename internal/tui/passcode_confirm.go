// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-crew-pass/internal/app"
	"github.com/MKhiriev/go-crew-pass/internal/config"
	"github.com/MKhiriev/go-crew-pass/internal/logger"
	"github.com/MKhiriev/go-crew-pass/internal/passcode"
	"github.com/MKhiriev/go-crew-pass/internal/service"
	"github.com/MKhiriev/go-crew-pass/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ConfirmPasscodeModel asks for the passcode again and registers the
// account when both entries match.
type ConfirmPasscodeModel struct {
	ctx    context.Context
	auth   service.AuthService
	keypad keypad
	logger *logger.Logger

	gate         *passcode.ConfirmGate
	registration models.Registration
	spinner      spinner.Model
}

func NewConfirmPasscodeModel(ctx context.Context, auth service.AuthService, timing config.ClientKeypad, vibrator passcode.Vibrator, logger *logger.Logger) *ConfirmPasscodeModel {
	return &ConfirmPasscodeModel{
		ctx:     ctx,
		auth:    auth,
		keypad:  newKeypad(pageConfirmPasscode, timing, vibrator),
		logger:  logger,
		gate:    passcode.NewConfirmGate(nil),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *ConfirmPasscodeModel) Init() tea.Cmd {
	return nil
}

func (m *ConfirmPasscodeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := m.keypad.handleTimer(&m.gate.Pad, msg); handled {
		return m, cmd
	}

	switch msg := msg.(type) {
	case confirmStart:
		m.registration = msg.registration
		m.gate.Reset(msg.reference)
		return m, nil

	case registerResult:
		return m, m.handleRegister(msg)

	case spinner.TickMsg:
		if !m.gate.Pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, keys.esc) && !m.gate.Pending() {
			return m, navigate(pageMenu, nil)
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
		return m, tea.Batch(cmd, m.spinner.Tick, m.register(*res.Submission))
	}

	return m, nil
}

func (m *ConfirmPasscodeModel) register(sub passcode.Submission) tea.Cmd {
	ctx, log := requestScope(m.ctx, m.logger)
	auth := m.auth
	reg := m.registration.WithPasscode(sub.Code)
	return func() tea.Msg {
		return registerResult{seq: sub.Seq, err: auth.Register(ctx, reg), log: log}
	}
}

func (m *ConfirmPasscodeModel) handleRegister(res registerResult) tea.Cmd {
	log := res.log
	if log == nil {
		log = m.logger
	}

	if res.err == nil {
		if !m.gate.Succeed(res.seq) {
			log.Warn().Str("func", "*ConfirmPasscodeModel.handleRegister").Uint64("seq", res.seq).Msg("discarding stale register response")
			return nil
		}
		log.Info().Str("func", "*ConfirmPasscodeModel.handleRegister").Msg("registration completed")
		return navigate(pageMenu, MenuNotice{Text: app.MsgRegistrationSucceeded})
	}

	msg := service.Message(res.err)
	if msg == "" {
		msg = humanizeError(res.err)
	}
	if !m.gate.Fail(res.seq, msg) {
		log.Warn().Str("func", "*ConfirmPasscodeModel.handleRegister").Uint64("seq", res.seq).Msg("discarding stale register response")
	}
	return nil
}

func (m *ConfirmPasscodeModel) View() string {
	var b strings.Builder
	b.WriteString("Enter the passcode again\n\n")
	b.WriteString(renderKeypad(&m.gate.Pad))
	b.WriteString("\n")
	if m.gate.Pending() {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Registering...\n")
	}
	if msg := m.gate.Message(); msg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(msg))
		b.WriteString("\n")
	}
	return renderPage("REGISTER: CONFIRM PASSCODE", strings.TrimRight(b.String(), "\n"), "0-9: digit │ backspace: ← │ enter: ✓ │ esc: cancel")
}
