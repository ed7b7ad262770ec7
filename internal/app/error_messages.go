// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// crew-pass screens and services.
//
// All Msg* constants are human-readable message strings shown inline on a
// screen. Keeping them in one place keeps the wording consistent between the
// passcode gates, the service layer and the TUI.
package app

const (
	// MsgLoginFailed is shown when the backend rejects a passcode without
	// giving a reason.
	MsgLoginFailed = "Login failed. Please try again."

	// MsgIncompletePasscode is shown when ✓ is pressed before all digits are
	// entered.
	MsgIncompletePasscode = "Please enter all 4 digits"

	// MsgPasscodeMismatch is shown when the confirmation differs from the
	// passcode chosen on the create screen.
	MsgPasscodeMismatch = "Passcodes do not match"

	// MsgUnsupportedRole is shown when the backend accepts a login for a role
	// the client cannot route.
	MsgUnsupportedRole = "Unsupported account role"

	MsgRegistrationFailed = "Registration failed. Please try again."

	MsgRegistrationSucceeded = "Registration successful. Please log in."

	MsgInvalidAadhaar = "Enter a valid 12-digit Aadhaar number"

	MsgAadhaarNotRegistered = "This Aadhaar number is not registered"

	MsgAadhaarAlreadyRegistered = "This Aadhaar number is already registered"

	// MsgServerUnavailable is shown when the backend cannot be reached or
	// times out.
	MsgServerUnavailable = "Server is unavailable. Check your connection and try again."

	MsgSessionExpired = "Your session has expired. Please log in again."

	MsgProfileUnavailable = "Could not load your profile"
)
