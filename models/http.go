package models

import "encoding/json"

// StatusOK is the success indicator the backend puts in the "status" field.
const StatusOK = "OK"

// VerifyPasscodeRequest is the body of POST /verify-passcode.
type VerifyPasscodeRequest struct {
	Aadhaar  string `json:"aadhar"`
	Passcode string `json:"passcode"`
}

// VerifyPasscodeResponse is returned by POST /verify-passcode.
type VerifyPasscodeResponse struct {
	Status    string `json:"status"`
	Token     string `json:"token"`
	Role      string `json:"role"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Message   string `json:"message,omitempty"`
}

// AadhaarRequest is the body of POST /check-aadhar.
type AadhaarRequest struct {
	Aadhaar string `json:"aadhar"`
}

// RegisterResponse is returned by POST /register.
type RegisterResponse struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// UserDataRequest is the body of POST /userdata.
type UserDataRequest struct {
	Token string `json:"token"`
}

// UserDataResponse is returned by POST /userdata.
type UserDataResponse struct {
	Status  string `json:"status"`
	Data    User   `json:"data"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse is the body the backend sends with non-2xx statuses.
type ErrorResponse struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message"`
}
