// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business operations behind the crew-pass
// screens: Aadhaar lookup, passcode login, registration, the persisted
// session and the profile shown on the home screens.
//
// Services sit between the TUI and the [adapter.BackendAdapter] /
// [store.SessionRepository] pair. They validate input, translate transport
// errors into the sentinels of errors.go and never touch the terminal.
package service

import (
	"context"

	"github.com/MKhiriev/go-crew-pass/models"
)

// AuthService covers the unauthenticated calls.
type AuthService interface {
	// CheckAadhaar reports whether an account exists for aadhaar.
	// Returns [validators.ErrInvalidAadhaar] before any call when the number
	// is malformed.
	CheckAadhaar(ctx context.Context, aadhaar string) (bool, error)

	// Login verifies the passcode and builds the session from the response.
	// The session is not persisted; see [SessionService.Save].
	//
	// A rejection is reported as [ErrLoginRejected] wrapped in
	// [*MessageError]; a role outside Worker/Contractor/Admin as
	// [models.ErrUnknownRole].
	Login(ctx context.Context, aadhaar, passcode string) (models.Session, error)

	// Register creates the account described by reg. reg must carry the
	// confirmed passcode.
	Register(ctx context.Context, reg models.Registration) error
}

// SessionService persists the login session between runs.
type SessionService interface {
	// Save stores token, role, Aadhaar and the role display name.
	Save(ctx context.Context, session models.Session) error

	// Restore loads the stored session. Returns [ErrSessionNotFound] when
	// nothing usable is stored and [ErrSessionExpired] when the token is past
	// its expiry; an expired session is removed.
	Restore(ctx context.Context) (models.Session, error)

	// Logout removes every session key.
	Logout(ctx context.Context) error
}

// ProfileService loads the profile shown on the home screens.
type ProfileService interface {
	// UserData fetches the profile bound to session and stores it under
	// the userData key, unless session is no longer the stored one. An
	// unauthorized response is reported as [ErrSessionExpired].
	UserData(ctx context.Context, session models.Session) (models.User, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	BuildInfo() models.AppBuildInfo
}
