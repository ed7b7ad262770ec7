// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the client screens.
//
// Validation rules are expressed as go-playground/validator struct tags on
// the models. Two custom tags are registered:
//   - aadhaar:  exactly 12 ASCII digits;
//   - passcode: exactly 4 ASCII digits.
//
// Validation failures are translated into the sentinel errors declared in
// errors.go so that callers can use [errors.Is].
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided struct and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
