package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-crew-pass/internal/validators"
	"github.com/MKhiriev/go-crew-pass/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldFirstName = iota
	fieldLastName
	fieldPhone
	fieldRole
	fieldCount
)

// ProfileModel collects the registration profile: name, phone and role.
type ProfileModel struct {
	ctx       context.Context
	validator validators.Validator

	aadhaar string
	inputs  []textinput.Model
	roleIdx int
	focus   int
	errMsg  string
}

func NewProfileModel(ctx context.Context, validator validators.Validator) *ProfileModel {
	fields := make([]textinput.Model, fieldRole)

	fields[fieldFirstName] = textinput.New()
	fields[fieldFirstName].Placeholder = "first name"
	fields[fieldFirstName].CharLimit = 64
	fields[fieldFirstName].Width = 32

	fields[fieldLastName] = textinput.New()
	fields[fieldLastName].Placeholder = "last name"
	fields[fieldLastName].CharLimit = 64
	fields[fieldLastName].Width = 32

	fields[fieldPhone] = textinput.New()
	fields[fieldPhone].Placeholder = "10-digit mobile"
	fields[fieldPhone].CharLimit = 10
	fields[fieldPhone].Width = 32

	m := &ProfileModel{
		ctx:       ctx,
		validator: validator,
		inputs:    fields,
	}
	m.reset("")
	return m
}

func (m *ProfileModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if start, ok := msg.(profileStart); ok {
		m.reset(start.aadhaar)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			return m, navigate(pageMenu, nil)
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down):
			m.setFocus(m.focus + 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up):
			m.setFocus(m.focus - 1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.focus < fieldRole {
				m.setFocus(m.focus + 1)
				return m, nil
			}
			return m, m.submit()
		}

		if m.focus == fieldRole {
			switch {
			case key.Matches(keyMsg, keys.left):
				m.roleIdx = (m.roleIdx - 1 + len(models.Roles)) % len(models.Roles)
			case key.Matches(keyMsg, keys.right):
				m.roleIdx = (m.roleIdx + 1) % len(models.Roles)
			}
			return m, nil
		}

		if m.focus == fieldPhone && keyMsg.Type == tea.KeyRunes && digitsOnly(string(keyMsg.Runes)) != string(keyMsg.Runes) {
			return m, nil
		}
	}

	if m.focus >= len(m.inputs) {
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ProfileModel) registration() models.Registration {
	return models.Registration{
		Aadhaar:   m.aadhaar,
		FirstName: strings.TrimSpace(m.inputs[fieldFirstName].Value()),
		LastName:  strings.TrimSpace(m.inputs[fieldLastName].Value()),
		Phone:     strings.TrimSpace(m.inputs[fieldPhone].Value()),
		Role:      models.Roles[m.roleIdx].String(),
	}
}

func (m *ProfileModel) submit() tea.Cmd {
	reg := m.registration()
	if err := m.validator.Validate(m.ctx, reg, "Aadhaar", "FirstName", "LastName", "Phone", "Role"); err != nil {
		m.errMsg = humanizeError(err)
		return nil
	}

	m.errMsg = ""
	return navigate(pageCreatePasscode, createStart{registration: reg})
}

func (m *ProfileModel) reset(aadhaar string) {
	m.aadhaar = aadhaar
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.roleIdx = 0
	m.errMsg = ""
	m.setFocus(fieldFirstName)
}

func (m *ProfileModel) setFocus(i int) {
	m.focus = (i + fieldCount) % fieldCount
	for j := range m.inputs {
		if j == m.focus {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

func (m *ProfileModel) View() string {
	var b strings.Builder
	b.WriteString("Field       │ Value\n")
	b.WriteString("────────────┼────────────────────────────────────\n")

	labels := []string{"First name", "Last name", "Phone"}
	for i, label := range labels {
		b.WriteString(padRight(label, 11))
		b.WriteString(" │ [")
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	b.WriteString(padRight("Role", 11))
	b.WriteString(" │ ")
	for i, role := range models.Roles {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == m.roleIdx {
			b.WriteString("(•) ")
		} else {
			b.WriteString("( ) ")
		}
		b.WriteString(role.String())
	}
	if m.focus == fieldRole {
		b.WriteString("  ◂ ▸")
	}
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(renderError(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("REGISTER: PROFILE", strings.TrimRight(b.String(), "\n"), "tab: next field │ ←/→: role │ enter: continue │ esc: cancel")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
