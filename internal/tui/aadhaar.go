package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-crew-pass/internal/app"
	"github.com/MKhiriev/go-crew-pass/internal/service"
	"github.com/MKhiriev/go-crew-pass/internal/validators"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const aadhaarLength = 12

// AadhaarModel asks for the Aadhaar number. In login mode the number must
// belong to an account; in register mode it must not.
type AadhaarModel struct {
	ctx  context.Context
	auth service.AuthService

	// paste reads the system clipboard.
	paste func() (string, error)

	input    textinput.Model
	spinner  spinner.Model
	register bool
	checking bool
	errMsg   string
}

func NewAadhaarModel(ctx context.Context, auth service.AuthService) *AadhaarModel {
	input := textinput.New()
	input.Placeholder = "12-digit Aadhaar number"
	input.CharLimit = aadhaarLength
	input.Width = 24
	input.Focus()

	return &AadhaarModel{
		ctx:     ctx,
		auth:    auth,
		paste:   clipboard.ReadAll,
		input:   input,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
	}
}

func (m *AadhaarModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *AadhaarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case aadhaarStart:
		m.register = msg.register
		m.checking = false
		m.errMsg = ""
		m.input.SetValue("")
		m.input.Focus()
		return m, nil

	case pasted:
		if msg.err != nil {
			m.errMsg = "Clipboard is not available"
			return m, nil
		}
		digits := digitsOnly(msg.text)
		if len(digits) > aadhaarLength {
			digits = digits[:aadhaarLength]
		}
		m.input.SetValue(digits)
		m.input.CursorEnd()
		m.errMsg = ""
		return m, nil

	case checkAadhaarResult:
		return m, m.handleCheck(msg)

	case spinner.TickMsg:
		if !m.checking {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.checking {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			return m, navigate(pageMenu, nil)
		case key.Matches(msg, keys.paste):
			paste := m.paste
			return m, func() tea.Msg {
				text, err := paste()
				return pasted{text: text, err: err}
			}
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
		if msg.Type == tea.KeyRunes && digitsOnly(string(msg.Runes)) != string(msg.Runes) {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *AadhaarModel) submit() tea.Cmd {
	aadhaar := strings.TrimSpace(m.input.Value())
	if err := validators.Aadhaar(aadhaar); err != nil {
		m.errMsg = app.MsgInvalidAadhaar
		return nil
	}

	m.errMsg = ""
	m.checking = true

	ctx, auth, register := m.ctx, m.auth, m.register
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		found, err := auth.CheckAadhaar(ctx, aadhaar)
		return checkAadhaarResult{aadhaar: aadhaar, register: register, found: found, err: err}
	})
}

func (m *AadhaarModel) handleCheck(res checkAadhaarResult) tea.Cmd {
	if !m.checking || res.register != m.register {
		return nil
	}
	m.checking = false

	switch {
	case res.err != nil:
		m.errMsg = humanizeError(res.err)
	case res.register && res.found:
		m.errMsg = app.MsgAadhaarAlreadyRegistered
	case res.register:
		return navigate(pageProfile, profileStart{aadhaar: res.aadhaar})
	case !res.found:
		m.errMsg = app.MsgAadhaarNotRegistered
	default:
		return navigate(pageLoginPasscode, loginStart{aadhaar: res.aadhaar})
	}
	return nil
}

func (m *AadhaarModel) View() string {
	var b strings.Builder
	b.WriteString("Aadhaar │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.checking {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" Checking...\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	title := "LOGIN"
	if m.register {
		title = "REGISTER"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), "enter: continue │ ctrl+v: paste │ esc: back")
}
