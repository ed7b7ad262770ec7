// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the crew
// backend.
//
// The primary abstraction is [BackendAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPBackendAdapter]) built on resty.
//
// Non-2xx responses are mapped to [*ServerError] values wrapping the
// sentinels in errors.go, so callers can use [errors.Is] for the status class
// and [errors.As] to read the message sent by the backend.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-crew-pass/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines transport-agnostic communication with the backend.
type BackendAdapter interface {
	// VerifyPasscode sends the Aadhaar number and passcode to
	// POST /verify-passcode and returns the decoded response as is; the
	// caller decides what its "status" means.
	VerifyPasscode(ctx context.Context, req models.VerifyPasscodeRequest) (models.VerifyPasscodeResponse, error)

	// Register sends the full registration record, passcode included, to
	// POST /register.
	Register(ctx context.Context, reg models.Registration) (models.RegisterResponse, error)

	// CheckAadhaar asks POST /check-aadhar whether an account exists.
	// A 404 is reported as (false, nil), not as an error.
	CheckAadhaar(ctx context.Context, aadhaar string) (bool, error)

	// UserData fetches the profile bound to token from POST /userdata.
	UserData(ctx context.Context, token string) (models.UserDataResponse, error)
}
