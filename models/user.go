package models

import "strings"

// User is the profile record owned by the backend. Field names follow the
// backend JSON contract, including its "aadhar" spelling.
type User struct {
	// Aadhaar is the 12-digit national identity number used as login key.
	Aadhaar string `json:"aadhar"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	// Phone is the 10-digit mobile number given at registration.
	Phone string `json:"phone,omitempty"`

	// Role is kept in wire form; use [ParseRole] before routing on it.
	Role string `json:"role"`
}

// FullName joins first and last name the way the home screens greet the
// user ("A B"). Missing parts are skipped.
func (u User) FullName() string {
	return JoinName(u.FirstName, u.LastName)
}

// JoinName builds a display name from first and last name.
func JoinName(firstName, lastName string) string {
	return strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
}
