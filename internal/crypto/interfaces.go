// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto keeps secrets that must survive between screens out of
// plain memory. The only secret the client holds is the passcode chosen on
// the create screen, which the confirm screen needs to compare against.
package crypto

// PasscodeHasher turns a passcode into a one-way reference and checks
// candidates against it.
type PasscodeHasher interface {
	// Hash returns a reference for code that can be held until
	// confirmation. Returns an error if hashing fails.
	Hash(code string) (ReferenceCode, error)
}

// ReferenceCode is a hashed passcode that can only be compared, never read
// back.
type ReferenceCode interface {
	// Matches reports whether candidate equals the hashed passcode.
	Matches(candidate string) bool
}
