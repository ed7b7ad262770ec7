// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-crew-pass/internal/logger"
	"github.com/MKhiriev/go-crew-pass/internal/store"
	"github.com/MKhiriev/go-crew-pass/internal/utils"
	"github.com/MKhiriev/go-crew-pass/models"
)

type sessionService struct {
	repo store.SessionRepository
	now  func() time.Time

	logger *logger.Logger
}

// NewSessionService constructs a [SessionService] over repo.
func NewSessionService(repo store.SessionRepository, logger *logger.Logger) SessionService {
	return &sessionService{
		repo:   repo,
		now:    time.Now,
		logger: logger,
	}
}

func (s *sessionService) Save(ctx context.Context, session models.Session) error {
	if !session.Valid() {
		return fmt.Errorf("%w: token or role missing", ErrSessionNotFound)
	}

	items := map[string]string{
		store.KeyAuthToken: session.Token,
		store.KeyRole:      session.Role.String(),
		store.KeyAadhaar:   session.Aadhaar,
	}
	items[store.DisplayNameKey(session.Role)] = session.DisplayName

	if err := s.repo.SetItems(ctx, items); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.logger.Info().Str("func", "*sessionService.Save").Str("role", session.Role.String()).Msg("session saved")
	return nil
}

func (s *sessionService) Restore(ctx context.Context) (models.Session, error) {
	token, err := s.item(ctx, store.KeyAuthToken)
	if err != nil {
		return models.Session{}, err
	}
	rawRole, err := s.item(ctx, store.KeyRole)
	if err != nil {
		return models.Session{}, err
	}

	role, err := models.ParseRole(rawRole)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionNotFound, err)
	}

	session := models.Session{Token: token, Role: role}
	if session.Aadhaar, err = s.item(ctx, store.KeyAadhaar); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return models.Session{}, err
	}
	if session.DisplayName, err = s.item(ctx, store.DisplayNameKey(role)); err != nil && !errors.Is(err, ErrSessionNotFound) {
		return models.Session{}, err
	}

	if exp, expErr := utils.TokenExpiry(token); expErr == nil {
		session.ExpiresAt = exp
	}

	if session.Expired(s.now()) {
		s.logger.Info().Str("func", "*sessionService.Restore").Msg("stored session expired")
		if err = s.Logout(ctx); err != nil {
			s.logger.Err(err).Str("func", "*sessionService.Restore").Msg("failed to remove expired session")
		}
		return models.Session{}, ErrSessionExpired
	}

	return session, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.repo.RemoveItems(ctx, store.SessionKeys()...); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// item reads key, mapping a missing key to ErrSessionNotFound.
func (s *sessionService) item(ctx context.Context, key string) (string, error) {
	value, err := s.repo.GetItem(ctx, key)
	switch {
	case errors.Is(err, store.ErrKeyNotFound):
		return "", ErrSessionNotFound
	case err != nil:
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return value, nil
}
