// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by [TokenExpiry] when the token has no "exp" claim.
var ErrNoExpiry = errors.New("token has no expiry")

// TokenExpiry reads the "exp" claim of a JWT without verifying its
// signature. The client never holds the signing key; the expiry is only used
// to decide whether a stored session is worth restoring.
//
// Returns an error if tokenString is not a JWT or carries no expiry.
func TokenExpiry(tokenString string) (time.Time, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return time.Time{}, errors.New("empty token")
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("parse token: %w", err)
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("read exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}
