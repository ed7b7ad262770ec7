package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-crew-pass/internal/adapter"
	"github.com/MKhiriev/go-crew-pass/internal/logger"
	"github.com/MKhiriev/go-crew-pass/internal/utils"
	"github.com/MKhiriev/go-crew-pass/internal/validators"
	"github.com/MKhiriev/go-crew-pass/models"
)

type authService struct {
	adapter   adapter.BackendAdapter
	validator validators.Validator

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] talking to backend.
func NewAuthService(backend adapter.BackendAdapter, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		adapter:   backend,
		validator: validator,
		logger:    logger,
	}
}

func (a *authService) CheckAadhaar(ctx context.Context, aadhaar string) (bool, error) {
	if err := validators.Aadhaar(aadhaar); err != nil {
		return false, err
	}

	found, err := a.adapter.CheckAadhaar(ctx, aadhaar)
	if err != nil {
		a.logger.Err(err).Str("func", "*authService.CheckAadhaar").Msg("aadhaar lookup failed")
		return false, mapAdapterError(err, ErrAadhaarNotFound)
	}

	return found, nil
}

func (a *authService) Login(ctx context.Context, aadhaar, passcode string) (models.Session, error) {
	if err := validators.Aadhaar(aadhaar); err != nil {
		return models.Session{}, err
	}
	if err := validators.Passcode(passcode); err != nil {
		return models.Session{}, err
	}

	resp, err := a.adapter.VerifyPasscode(ctx, models.VerifyPasscodeRequest{Aadhaar: aadhaar, Passcode: passcode})
	if err != nil {
		a.logger.Err(err).Str("func", "*authService.Login").Msg("verify passcode failed")
		return models.Session{}, mapAdapterError(err, ErrLoginRejected)
	}

	if resp.Status != models.StatusOK || resp.Token == "" {
		a.logger.Info().Str("func", "*authService.Login").Str("status", resp.Status).Msg("login rejected by backend")
		return models.Session{}, &MessageError{Err: ErrLoginRejected, Message: resp.Message}
	}

	role, err := models.ParseRole(resp.Role)
	if err != nil {
		a.logger.Warn().Str("func", "*authService.Login").Str("role", resp.Role).Msg("backend returned unsupported role")
		return models.Session{}, fmt.Errorf("%w: %q", err, resp.Role)
	}

	session := models.Session{
		Aadhaar:     aadhaar,
		Token:       resp.Token,
		Role:        role,
		DisplayName: models.JoinName(resp.FirstName, resp.LastName),
	}
	if exp, expErr := utils.TokenExpiry(resp.Token); expErr == nil {
		session.ExpiresAt = exp
	}

	return session, nil
}

func (a *authService) Register(ctx context.Context, reg models.Registration) error {
	if err := a.validator.Validate(ctx, reg); err != nil {
		return err
	}
	if err := validators.Passcode(reg.Passcode); err != nil {
		return err
	}

	resp, err := a.adapter.Register(ctx, reg)
	if err != nil {
		a.logger.Err(err).Str("func", "*authService.Register").Msg("register failed")
		return mapAdapterError(err, ErrRegisterOnServer)
	}

	if resp.Status != models.StatusOK {
		return &MessageError{Err: ErrRegisterOnServer, Message: resp.Message}
	}

	return nil
}
