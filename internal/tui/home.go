package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-crew-pass/internal/app"
	"github.com/MKhiriev/go-crew-pass/internal/logger"
	"github.com/MKhiriev/go-crew-pass/internal/service"
	"github.com/MKhiriev/go-crew-pass/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// HomeModel greets a logged-in user of one role and shows the profile held
// by the backend.
type HomeModel struct {
	ctx      context.Context
	role     models.Role
	profiles service.ProfileService
	sessions service.SessionService
	logger   *logger.Logger

	session models.Session
	user    *models.User
	loading bool
	loadGen uint64
	spinner spinner.Model
	errMsg  string
}

func NewHomeModel(ctx context.Context, role models.Role, profiles service.ProfileService, sessions service.SessionService, logger *logger.Logger) *HomeModel {
	return &HomeModel{
		ctx:      ctx,
		role:     role,
		profiles: profiles,
		sessions: sessions,
		logger:   logger,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *HomeModel) Init() tea.Cmd {
	return nil
}

func (m *HomeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case models.Session:
		m.session = msg
		m.user = nil
		m.errMsg = ""
		return m, m.load()

	case userDataLoaded:
		if msg.gen != m.loadGen || msg.token != m.session.Token {
			m.logger.Debug().Str("func", "*HomeModel.Update").Uint64("gen", msg.gen).Msg("discarding stale user data")
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			if errors.Is(msg.err, service.ErrSessionExpired) {
				return m, m.logout(app.MsgSessionExpired)
			}
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		user := msg.user
		m.user = &user
		return m, nil

	case loggedOut:
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "*HomeModel.Update").Msg("failed to clear session")
		}
		m.session = models.Session{}
		m.user = nil
		m.loading = false
		m.loadGen++
		var payload any
		if msg.notice != "" {
			payload = MenuNotice{Text: msg.notice}
		}
		return m, navigate(pageMenu, payload)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.logout):
			return m, m.logout("")
		case key.Matches(msg, keys.refresh):
			if !m.loading {
				return m, m.load()
			}
		}
	}

	return m, nil
}

func (m *HomeModel) load() tea.Cmd {
	m.loading = true
	m.loadGen++
	ctx, profiles, session, gen := m.ctx, m.profiles, m.session, m.loadGen
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		user, err := profiles.UserData(ctx, session)
		return userDataLoaded{gen: gen, token: session.Token, user: user, err: err}
	})
}

func (m *HomeModel) logout(notice string) tea.Cmd {
	ctx, sessions := m.ctx, m.sessions
	return func() tea.Msg {
		return loggedOut{err: sessions.Logout(ctx), notice: notice}
	}
}

func (m *HomeModel) View() string {
	var b strings.Builder
	b.WriteString("Welcome, ")
	b.WriteString(valueOrDash(m.session.DisplayName))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" Loading profile...\n")
	case m.user != nil:
		b.WriteString("Field      │ Value\n")
		b.WriteString("───────────┼────────────────────────────\n")
		b.WriteString("Name       │ " + valueOrDash(m.user.FullName()) + "\n")
		b.WriteString("Aadhaar    │ " + valueOrDash(maskAadhaar(m.user.Aadhaar)) + "\n")
		b.WriteString("Phone      │ " + valueOrDash(m.user.Phone) + "\n")
		b.WriteString("Role       │ " + valueOrDash(m.user.Role) + "\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(strings.ToUpper(m.role.String())+" HOME", strings.TrimRight(b.String(), "\n"), "r: refresh │ l: logout")
}
