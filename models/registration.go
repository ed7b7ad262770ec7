package models

// Registration is the pending sign-up record that travels from the Aadhaar
// screen through the profile form to the passcode screens. The confirmed
// passcode is merged into it right before the register call.
type Registration struct {
	Aadhaar   string `json:"aadhar" validate:"required,aadhaar"`
	FirstName string `json:"firstName" validate:"required,max=64"`
	LastName  string `json:"lastName" validate:"required,max=64"`
	Phone     string `json:"phone" validate:"required,numeric,len=10"`
	Role      string `json:"role" validate:"required,oneof=Worker Contractor Admin"`
	Passcode  string `json:"passcode" validate:"omitempty,passcode"`
}

// WithPasscode returns a copy of r carrying the confirmed passcode.
func (r Registration) WithPasscode(code string) Registration {
	r.Passcode = code
	return r
}
