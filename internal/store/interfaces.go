// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the client session in a local SQLite key-value
// table.
package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/session_repository_mock.go -package=mock

// SessionRepository is a string key-value store for session data.
type SessionRepository interface {
	// SetItems writes all items in one transaction, replacing existing
	// values. Either every item is stored or none is.
	SetItems(ctx context.Context, items map[string]string) error
	// GetItem returns the value under key or [ErrKeyNotFound].
	GetItem(ctx context.Context, key string) (string, error)
	// RemoveItems deletes keys. Missing keys are not an error.
	RemoveItems(ctx context.Context, keys ...string) error
}
