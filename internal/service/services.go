package service

import (
	"github.com/MKhiriev/go-crew-pass/internal/adapter"
	"github.com/MKhiriev/go-crew-pass/internal/logger"
	"github.com/MKhiriev/go-crew-pass/internal/store"
	"github.com/MKhiriev/go-crew-pass/internal/validators"
	"github.com/MKhiriev/go-crew-pass/models"
)

// ClientServices groups the services handed to the TUI.
type ClientServices struct {
	AuthService    AuthService
	SessionService SessionService
	ProfileService ProfileService
	AppInfoService AppInfoService
}

func NewClientServices(storages *store.ClientStorages, backend adapter.BackendAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewAuthService(backend, validators.NewInputValidator(), logger),
		SessionService: NewSessionService(storages.SessionRepository, logger),
		ProfileService: NewProfileService(backend, storages.SessionRepository, logger),
		AppInfoService: NewAppInfoService(buildInfo),
	}
}
