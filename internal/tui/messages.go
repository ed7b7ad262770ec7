package tui

import (
	"github.com/MKhiriev/go-crew-pass/internal/crypto"
	"github.com/MKhiriev/go-crew-pass/internal/logger"
	"github.com/MKhiriev/go-crew-pass/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the active page. Payload, when set, is delivered to the
// new page as a message after its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

// Page names.
const (
	pageMenu            = "menu"
	pageAadhaar         = "aadhaar"
	pageProfile         = "profile"
	pageCreatePasscode  = "create-passcode"
	pageConfirmPasscode = "confirm-passcode"
	pageLoginPasscode   = "login-passcode"
	pageWorkerHome      = "worker-home"
	pageContractorHome  = "contractor-home"
	pageAdminHome       = "admin-home"
)

// Page payloads.
type (
	// MenuNotice is a one-line status shown on the menu.
	MenuNotice struct {
		Text string
	}

	aadhaarStart struct {
		register bool
	}

	loginStart struct {
		aadhaar string
	}

	profileStart struct {
		aadhaar string
	}

	createStart struct {
		registration models.Registration
	}

	confirmStart struct {
		registration models.Registration
		reference    crypto.ReferenceCode
	}
)

// Results of async commands.
type (
	checkAadhaarResult struct {
		aadhaar  string
		register bool
		found    bool
		err      error
	}

	loginResult struct {
		seq     uint64
		session models.Session
		err     error
		log     *logger.Logger
	}

	sessionSaved struct {
		session models.Session
		err     error
	}

	passcodeHashed struct {
		reference crypto.ReferenceCode
		err       error
	}

	registerResult struct {
		seq uint64
		err error
		log *logger.Logger
	}

	userDataLoaded struct {
		gen   uint64
		token string
		user  models.User
		err   error
	}

	loggedOut struct {
		err    error
		notice string
	}

	pasted struct {
		text string
		err  error
	}
)

// HomePage returns the page that greets role.
func HomePage(role models.Role) (string, error) {
	switch role {
	case models.RoleWorker:
		return pageWorkerHome, nil
	case models.RoleContractor:
		return pageContractorHome, nil
	case models.RoleAdmin:
		return pageAdminHome, nil
	default:
		return "", models.ErrUnknownRole
	}
}

func navigate(page string, payload any) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
