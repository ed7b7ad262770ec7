package client

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-crew-pass/internal/app"
	"github.com/MKhiriev/go-crew-pass/internal/logger"
	"github.com/MKhiriev/go-crew-pass/internal/service"
	"github.com/MKhiriev/go-crew-pass/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
)

type App struct {
	services *service.ClientServices
	ui       UI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("services are required")
	}
	if ui == nil {
		return nil, errors.New("ui is required")
	}
	return &App{services: services, ui: ui, logger: logger}, nil
}

// Run restores the stored session and runs the UI. Quitting with ctrl+c is
// a normal exit.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()
	ctx = a.logger.WithContext(ctx)

	start := a.startPage(ctx)
	a.logger.Info().Str("func", "*App.Run").Str("page", start.Page).Msg("starting ui")

	err := a.ui.Run(ctx, start)
	switch {
	case err == nil, errors.Is(err, tui.ErrUserQuit):
		a.logger.Info().Str("func", "*App.Run").Msg("client stopped")
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
		a.logger.Info().Str("func", "*App.Run").Msg("client interrupted")
		return nil
	default:
		return fmt.Errorf("run ui: %w", err)
	}
}

// startPage opens the role home of a restored session. Restore failures are
// not fatal: the user simply logs in again.
func (a *App) startPage(ctx context.Context) tui.NavigateTo {
	session, err := a.services.SessionService.Restore(ctx)
	switch {
	case err == nil:
		return tui.StartPage(&session)
	case errors.Is(err, service.ErrSessionExpired):
		return tui.MenuPage(app.MsgSessionExpired)
	case errors.Is(err, service.ErrSessionNotFound):
		return tui.StartPage(nil)
	default:
		a.logger.Err(err).Str("func", "*App.startPage").Msg("failed to restore session")
		return tui.StartPage(nil)
	}
}
