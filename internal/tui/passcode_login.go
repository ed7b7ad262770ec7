// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-crew-pass/internal/config"
	"github.com/MKhiriev/go-crew-pass/internal/logger"
	"github.com/MKhiriev/go-crew-pass/internal/passcode"
	"github.com/MKhiriev/go-crew-pass/internal/service"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginPasscodeModel is the passcode login screen. The code is sent as soon
// as the fourth digit is entered.
type LoginPasscodeModel struct {
	ctx      context.Context
	auth     service.AuthService
	sessions service.SessionService
	keypad   keypad
	logger   *logger.Logger

	gate    *passcode.LoginGate
	aadhaar string
	spinner spinner.Model
}

func NewLoginPasscodeModel(ctx context.Context, auth service.AuthService, sessions service.SessionService, timing config.ClientKeypad, vibrator passcode.Vibrator, logger *logger.Logger) *LoginPasscodeModel {
	return &LoginPasscodeModel{
		ctx:      ctx,
		auth:     auth,
		sessions: sessions,
		keypad:   newKeypad(pageLoginPasscode, timing, vibrator),
		logger:   logger,
		gate:     passcode.NewLoginGate(),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *LoginPasscodeModel) Init() tea.Cmd {
	return nil
}

func (m *LoginPasscodeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, handled := m.keypad.handleTimer(&m.gate.Pad, msg); handled {
		return m, cmd
	}

	switch msg := msg.(type) {
	case loginStart:
		m.aadhaar = msg.aadhaar
		m.gate.Reset()
		return m, nil

	case loginResult:
		return m, m.handleLogin(msg)

	case sessionSaved:
		if msg.err != nil {
			// the session object still reaches the home page
			m.logger.Err(msg.err).Str("func", "*LoginPasscodeModel.Update").Msg("failed to persist session")
		}
		page, err := HomePage(msg.session.Role)
		if err != nil {
			return m, nil
		}
		return m, navigate(page, msg.session)

	case spinner.TickMsg:
		if !m.gate.Pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.gate.Accepted() {
			return m, nil
		}
		if key.Matches(msg, keys.esc) {
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
		return m, tea.Batch(cmd, m.spinner.Tick, m.login(*res.Submission))
	}

	return m, nil
}

func (m *LoginPasscodeModel) login(sub passcode.Submission) tea.Cmd {
	ctx, log := requestScope(m.ctx, m.logger)
	auth, aadhaar := m.auth, m.aadhaar
	return func() tea.Msg {
		session, err := auth.Login(ctx, aadhaar, sub.Code)
		return loginResult{seq: sub.Seq, session: session, err: err, log: log}
	}
}

func (m *LoginPasscodeModel) handleLogin(res loginResult) tea.Cmd {
	parent := res.log
	if parent == nil {
		parent = m.logger
	}
	log := parent.With().Str("func", "*LoginPasscodeModel.handleLogin").Uint64("seq", res.seq).Logger()

	if res.err != nil {
		fb, ok := m.gate.Reject(res.seq, loginFailureMessage(res.err))
		if !ok {
			log.Warn().Msg("discarding stale login response")
			return nil
		}
		log.Info().Err(res.err).Msg("login rejected")
		return m.keypad.play(&m.gate.Pad, fb)
	}

	if !m.gate.Accept(res.seq) {
		log.Warn().Msg("discarding stale login response")
		return nil
	}

	ctx, sessions, session := parent.WithContext(m.ctx), m.sessions, res.session
	return func() tea.Msg {
		return sessionSaved{session: session, err: sessions.Save(ctx, session)}
	}
}

func (m *LoginPasscodeModel) View() string {
	var b strings.Builder
	b.WriteString("Aadhaar: ")
	b.WriteString(maskAadhaar(m.aadhaar))
	b.WriteString("\n\nEnter your 4-digit passcode\n\n")
	b.WriteString(renderKeypad(&m.gate.Pad))
	b.WriteString("\n")
	if m.gate.Pending() || m.gate.Accepted() {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Verifying...\n")
	}
	if msg := m.gate.Message(); msg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(msg))
		b.WriteString("\n")
	}
	return renderPage("LOGIN: PASSCODE", strings.TrimRight(b.String(), "\n"), "0-9: digit │ backspace: ← │ esc: back")
}

// maskAadhaar hides all but the last four digits.
func maskAadhaar(aadhaar string) string {
	if len(aadhaar) <= 4 {
		return aadhaar
	}
	return strings.Repeat("•", len(aadhaar)-4) + aadhaar[len(aadhaar)-4:]
}
