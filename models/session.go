// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is the identity context created by a successful passcode login.
// It is handed to screens that need the caller's identity instead of being
// looked up from ambient storage, and is destroyed on logout.
type Session struct {
	Aadhaar     string
	Token       string
	Role        Role
	DisplayName string

	// ExpiresAt is read from the token "exp" claim when the token is a JWT.
	// Zero means the backend did not publish an expiry.
	ExpiresAt time.Time
}

// Expired reports whether the session token is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}

// Valid reports whether s carries enough data to reach a home screen.
func (s Session) Valid() bool {
	return s.Token != "" && s.Role.Valid()
}
