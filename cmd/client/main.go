package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-crew-pass/internal/adapter"
	"github.com/MKhiriev/go-crew-pass/internal/client"
	"github.com/MKhiriev/go-crew-pass/internal/config"
	"github.com/MKhiriev/go-crew-pass/internal/crypto"
	"github.com/MKhiriev/go-crew-pass/internal/logger"
	"github.com/MKhiriev/go-crew-pass/internal/passcode"
	"github.com/MKhiriev/go-crew-pass/internal/service"
	"github.com/MKhiriev/go-crew-pass/internal/store"
	"github.com/MKhiriev/go-crew-pass/internal/tui"
	"github.com/MKhiriev/go-crew-pass/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "crew-pass: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	// stdout belongs to the TUI, so this is the last chance to use the terminal
	log, err := logger.NewClientLogger("crew-pass-client", cfg.App.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "crew-pass: logging disabled: %v\n", err)
	}
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("commit", buildInfo.BuildCommit()).
		Str("backend", cfg.Adapter.HTTPAddress).
		Msg("starting client")

	ctx := context.Background()

	backend, err := adapter.NewHTTPBackendAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create backend adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("close local storage")
		}
	}()

	services := service.NewClientServices(storages, backend, buildInfo, log)

	ui, err := tui.New(services, cfg.Keypad, crypto.NewPasscodeHasher(bcrypt.DefaultCost), passcode.NewBellVibrator(os.Stderr), log)
	if err != nil {
		return fmt.Errorf("error creating ui: %w", err)
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		return fmt.Errorf("init client app error: %w", err)
	}

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		return err
	}
	return nil
}
