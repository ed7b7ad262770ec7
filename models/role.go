// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// ErrUnknownRole is returned by [ParseRole] when the backend sends a role
// outside of the closed Worker/Contractor/Admin set.
var ErrUnknownRole = errors.New("unknown role")

// Role is the closed set of account roles known to the client. The zero value
// is [RoleUnknown] so that an unparsed role never routes anywhere by accident.
type Role int

const (
	RoleUnknown Role = iota
	RoleWorker
	RoleContractor
	RoleAdmin
)

// Roles lists every role a user may register with, in display order.
var Roles = []Role{RoleWorker, RoleContractor, RoleAdmin}

// ParseRole converts the wire representation ("Worker", "Contractor",
// "Admin") into a [Role]. Matching ignores case and surrounding spaces.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "worker":
		return RoleWorker, nil
	case "contractor":
		return RoleContractor, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return RoleUnknown, ErrUnknownRole
	}
}

// String returns the wire representation of r.
func (r Role) String() string {
	switch r {
	case RoleWorker:
		return "Worker"
	case RoleContractor:
		return "Contractor"
	case RoleAdmin:
		return "Admin"
	default:
		return "Unknown"
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleWorker || r == RoleContractor || r == RoleAdmin
}
