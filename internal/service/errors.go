package service

import "errors"

var (
	ErrAadhaarNotFound          = errors.New("aadhaar is not registered")
	ErrAadhaarAlreadyRegistered = errors.New("aadhaar is already registered")

	ErrLoginRejected    = errors.New("login rejected")
	ErrRegisterOnServer = errors.New("error registering on server")

	ErrBackendUnavailable = errors.New("backend unavailable")

	ErrSessionNotFound     = errors.New("session not found")
	ErrSessionExpired      = errors.New("session expired")
	ErrUserDataUnavailable = errors.New("user data unavailable")
)

// MessageError attaches the message the backend sent to a service error.
type MessageError struct {
	Err     error
	Message string
}

func (e *MessageError) Error() string {
	if e.Message == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Message
}

func (e *MessageError) Unwrap() error {
	return e.Err
}

// Message returns the backend message carried by err, or "".
func Message(err error) string {
	var msgErr *MessageError
	if errors.As(err, &msgErr) {
		return msgErr.Message
	}
	return ""
}
