// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-crew-pass/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. Responses from the backend become kind (or a more specific
// sentinel) with the server message attached; anything that never reached
// the backend becomes [ErrBackendUnavailable].
func mapAdapterError(err error, kind error) error {
	if err == nil {
		return nil
	}

	var serverErr *adapter.ServerError
	if !errors.As(err, &serverErr) {
		return fmt.Errorf("%w: %w", ErrBackendUnavailable, err)
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized) && errors.Is(kind, ErrUserDataUnavailable):
		kind = ErrSessionExpired
	case errors.Is(err, adapter.ErrConflict) && errors.Is(kind, ErrRegisterOnServer):
		kind = ErrAadhaarAlreadyRegistered
	case errors.Is(err, adapter.ErrNotFound) && errors.Is(kind, ErrLoginRejected):
		kind = ErrAadhaarNotFound
	}

	return &MessageError{Err: kind, Message: serverErr.Message}
}
