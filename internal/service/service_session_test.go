// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-crew-pass/internal/logger"
	"github.com/MKhiriev/go-crew-pass/internal/mock"
	"github.com/MKhiriev/go-crew-pass/internal/store"
	"github.com/MKhiriev/go-crew-pass/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestSessionSvc(t *testing.T) (*sessionService, *mock.MockSessionRepository) {
	t.Helper()
	repo := mock.NewMockSessionRepository(gomock.NewController(t))
	return NewSessionService(repo, logger.Nop()).(*sessionService), repo
}

func sessionKeysArgs() []any {
	keys := store.SessionKeys()
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}
	return args
}

func expectStored(repo *mock.MockSessionRepository, items map[string]string) {
	repo.EXPECT().GetItem(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key string) (string, error) {
			v, ok := items[key]
			if !ok {
				return "", store.ErrKeyNotFound
			}
			return v, nil
		},
	).AnyTimes()
}

func TestSessionService_Save(t *testing.T) {
	svc, repo := newTestSessionSvc(t)
	ctx := context.Background()

	repo.EXPECT().SetItems(ctx, map[string]string{
		store.KeyAuthToken:  "t1",
		store.KeyRole:       "Worker",
		store.KeyAadhaar:    testAadhaar,
		store.KeyWorkerName: "A B",
	}).Return(nil)

	err := svc.Save(ctx, models.Session{Aadhaar: testAadhaar, Token: "t1", Role: models.RoleWorker, DisplayName: "A B"})
	require.NoError(t, err)
}

func TestSessionService_Save_Invalid(t *testing.T) {
	svc, _ := newTestSessionSvc(t)

	err := svc.Save(context.Background(), models.Session{Token: "t1"})
	assert.Error(t, err)
}

func TestSessionService_Save_StorageError(t *testing.T) {
	svc, repo := newTestSessionSvc(t)

	repo.EXPECT().SetItems(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	err := svc.Save(context.Background(), models.Session{Token: "t1", Role: models.RoleAdmin})
	assert.Error(t, err)
}

func TestSessionService_Restore(t *testing.T) {
	svc, repo := newTestSessionSvc(t)
	expectStored(repo, map[string]string{
		store.KeyAuthToken:      "t1",
		store.KeyRole:           "Contractor",
		store.KeyAadhaar:        testAadhaar,
		store.KeyContractorName: "C D",
	})

	session, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Session{Aadhaar: testAadhaar, Token: "t1", Role: models.RoleContractor, DisplayName: "C D"}, session)
}

func TestSessionService_Restore_NothingStored(t *testing.T) {
	svc, repo := newTestSessionSvc(t)
	expectStored(repo, map[string]string{})

	_, err := svc.Restore(context.Background())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_Restore_UnknownRole(t *testing.T) {
	svc, repo := newTestSessionSvc(t)
	expectStored(repo, map[string]string{store.KeyAuthToken: "t1", store.KeyRole: "Supervisor"})

	_, err := svc.Restore(context.Background())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, err, models.ErrUnknownRole)
}

func TestSessionService_Restore_ExpiredIsRemoved(t *testing.T) {
	svc, repo := newTestSessionSvc(t)
	token := jwtWithExpiry(t, time.Now().Add(-time.Minute))
	expectStored(repo, map[string]string{store.KeyAuthToken: token, store.KeyRole: "Admin"})

	repo.EXPECT().RemoveItems(gomock.Any(), sessionKeysArgs()...).Return(nil)

	_, err := svc.Restore(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
}

func TestSessionService_Restore_StorageError(t *testing.T) {
	svc, repo := newTestSessionSvc(t)
	repo.EXPECT().GetItem(gomock.Any(), store.KeyAuthToken).Return("", errors.New("database is locked"))

	_, err := svc.Restore(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionService_Logout(t *testing.T) {
	svc, repo := newTestSessionSvc(t)

	repo.EXPECT().RemoveItems(gomock.Any(), sessionKeysArgs()...).Return(nil)

	require.NoError(t, svc.Logout(context.Background()))
}
