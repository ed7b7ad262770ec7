package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-crew-pass/internal/config"
	"github.com/MKhiriev/go-crew-pass/internal/crypto"
	"github.com/MKhiriev/go-crew-pass/internal/logger"
	"github.com/MKhiriev/go-crew-pass/internal/passcode"
	"github.com/MKhiriev/go-crew-pass/internal/service"
	"github.com/MKhiriev/go-crew-pass/internal/validators"
	"github.com/MKhiriev/go-crew-pass/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
	timing   config.ClientKeypad
	hasher   crypto.PasscodeHasher
	vibrator passcode.Vibrator

	logger *logger.Logger
}

func New(services *service.ClientServices, timing config.ClientKeypad, hasher crypto.PasscodeHasher, vibrator passcode.Vibrator, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("services are required")
	}
	return &TUI{
		services: services,
		timing:   timing,
		hasher:   hasher,
		vibrator: vibrator,
		logger:   logger,
	}, nil
}

// Pages builds every page of the application.
func (t *TUI) Pages(ctx context.Context) map[string]tea.Model {
	s := t.services
	return map[string]tea.Model{
		pageMenu:            NewMenuModel(),
		pageAadhaar:         NewAadhaarModel(ctx, s.AuthService),
		pageProfile:         NewProfileModel(ctx, validators.NewInputValidator()),
		pageCreatePasscode:  NewCreatePasscodeModel(t.hasher, t.timing, t.vibrator, t.logger),
		pageConfirmPasscode: NewConfirmPasscodeModel(ctx, s.AuthService, t.timing, t.vibrator, t.logger),
		pageLoginPasscode:   NewLoginPasscodeModel(ctx, s.AuthService, s.SessionService, t.timing, t.vibrator, t.logger),
		pageWorkerHome:      NewHomeModel(ctx, models.RoleWorker, s.ProfileService, s.SessionService, t.logger),
		pageContractorHome:  NewHomeModel(ctx, models.RoleContractor, s.ProfileService, s.SessionService, t.logger),
		pageAdminHome:       NewHomeModel(ctx, models.RoleAdmin, s.ProfileService, s.SessionService, t.logger),
	}
}

// StartPage picks the first page: the role home for a restored session,
// the menu otherwise.
func StartPage(session *models.Session) NavigateTo {
	if session == nil {
		return NavigateTo{Page: pageMenu}
	}
	page, err := HomePage(session.Role)
	if err != nil {
		return NavigateTo{Page: pageMenu}
	}
	return NavigateTo{Page: page, Payload: *session}
}

// MenuPage starts at the menu, showing notice when it is not empty.
func MenuPage(notice string) NavigateTo {
	if notice == "" {
		return NavigateTo{Page: pageMenu}
	}
	return NavigateTo{Page: pageMenu, Payload: MenuNotice{Text: notice}}
}

// Run blocks until the user quits.
func (t *TUI) Run(ctx context.Context, start NavigateTo) error {
	root := NewRootModel(t.Pages(ctx), start, t.services.AppInfoService.BuildInfo())
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
