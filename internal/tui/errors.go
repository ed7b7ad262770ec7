// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-crew-pass/internal/app"
	"github.com/MKhiriev/go-crew-pass/internal/service"
	"github.com/MKhiriev/go-crew-pass/internal/validators"
	"github.com/MKhiriev/go-crew-pass/models"
)

// humanizeError turns a service error into the inline message of a screen.
// A message sent by the backend always wins.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if msg := service.Message(err); msg != "" {
		return msg
	}

	switch {
	case errors.Is(err, validators.ErrInvalidAadhaar):
		return app.MsgInvalidAadhaar
	case errors.Is(err, service.ErrAadhaarAlreadyRegistered):
		return app.MsgAadhaarAlreadyRegistered
	case errors.Is(err, service.ErrAadhaarNotFound):
		return app.MsgAadhaarNotRegistered
	case errors.Is(err, service.ErrSessionExpired):
		return app.MsgSessionExpired
	case errors.Is(err, models.ErrUnknownRole):
		return app.MsgUnsupportedRole
	case errors.Is(err, service.ErrRegisterOnServer):
		return app.MsgRegistrationFailed
	case errors.Is(err, service.ErrUserDataUnavailable):
		return app.MsgProfileUnavailable
	case errors.Is(err, service.ErrBackendUnavailable), errors.Is(err, context.DeadlineExceeded):
		return app.MsgServerUnavailable
	}

	return err.Error()
}

// loginFailureMessage picks the rejection message of the login screen. An
// empty result lets the gate fall back to its generic text.
func loginFailureMessage(err error) string {
	if errors.Is(err, models.ErrUnknownRole) {
		return app.MsgUnsupportedRole
	}
	return service.Message(err)
}
