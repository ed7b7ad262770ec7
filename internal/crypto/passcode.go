package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrEmptyPasscode is returned when hashing an empty passcode.
var ErrEmptyPasscode = errors.New("empty passcode")

type bcryptHasher struct {
	cost int
}

// NewPasscodeHasher returns a bcrypt-backed [PasscodeHasher]. A cost outside
// bcrypt's accepted range falls back to bcrypt.DefaultCost.
func NewPasscodeHasher(cost int) PasscodeHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash implements [PasscodeHasher].
func (h *bcryptHasher) Hash(code string) (ReferenceCode, error) {
	if code == "" {
		return nil, ErrEmptyPasscode
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), h.cost)
	if err != nil {
		return nil, fmt.Errorf("hash passcode: %w", err)
	}
	return bcryptReference(hash), nil
}

type bcryptReference []byte

// Matches implements [ReferenceCode].
func (r bcryptReference) Matches(candidate string) bool {
	return bcrypt.CompareHashAndPassword(r, []byte(candidate)) == nil
}
