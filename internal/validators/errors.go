package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidAadhaar   = errors.New("aadhaar must be 12 digits")
	ErrInvalidPasscode  = errors.New("passcode must be 4 digits")
	ErrInvalidFirstName = errors.New("first name is required")
	ErrInvalidLastName  = errors.New("last name is required")
	ErrInvalidPhone     = errors.New("phone must be 10 digits")
	ErrInvalidRole      = errors.New("role must be Worker, Contractor or Admin")
)
