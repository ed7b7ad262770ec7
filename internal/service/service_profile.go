package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-crew-pass/internal/adapter"
	"github.com/MKhiriev/go-crew-pass/internal/logger"
	"github.com/MKhiriev/go-crew-pass/internal/store"
	"github.com/MKhiriev/go-crew-pass/models"
)

type profileService struct {
	adapter adapter.BackendAdapter
	repo    store.SessionRepository

	logger *logger.Logger
}

// NewProfileService constructs a [ProfileService].
func NewProfileService(backend adapter.BackendAdapter, repo store.SessionRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		adapter: backend,
		repo:    repo,
		logger:  logger,
	}
}

func (p *profileService) UserData(ctx context.Context, session models.Session) (models.User, error) {
	if session.Token == "" {
		return models.User{}, ErrSessionNotFound
	}

	resp, err := p.adapter.UserData(ctx, session.Token)
	if err != nil {
		p.logger.Err(err).Str("func", "*profileService.UserData").Msg("userdata request failed")
		return models.User{}, mapAdapterError(err, ErrUserDataUnavailable)
	}
	if resp.Status != models.StatusOK {
		return models.User{}, &MessageError{Err: ErrUserDataUnavailable, Message: resp.Message}
	}

	// a logout or another login may have happened while the request was out
	stored, err := p.repo.GetItem(ctx, store.KeyAuthToken)
	if err != nil || stored != session.Token {
		p.logger.Debug().Err(err).Str("func", "*profileService.UserData").Msg("session changed, user data not stored")
		return resp.Data, nil
	}

	payload, err := json.Marshal(resp.Data)
	if err != nil {
		return models.User{}, fmt.Errorf("encode user data: %w", err)
	}
	if err = p.repo.SetItems(ctx, map[string]string{store.KeyUserData: string(payload)}); err != nil {
		// the profile is still shown; it just is not cached
		p.logger.Err(err).Str("func", "*profileService.UserData").Msg("failed to store user data")
	}

	return resp.Data, nil
}
