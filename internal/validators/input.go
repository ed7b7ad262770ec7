package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"
)

const (
	tagAadhaar  = "aadhaar"
	tagPasscode = "passcode"
)

var (
	aadhaarPattern  = regexp.MustCompile(`^[0-9]{12}$`)
	passcodePattern = regexp.MustCompile(`^[0-9]{4}$`)
)

// fieldErrors maps struct field names to the sentinel reported for them.
var fieldErrors = map[string]error{
	"Aadhaar":   ErrInvalidAadhaar,
	"Passcode":  ErrInvalidPasscode,
	"FirstName": ErrInvalidFirstName,
	"LastName":  ErrInvalidLastName,
	"Phone":     ErrInvalidPhone,
	"Role":      ErrInvalidRole,
}

var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// get returns a process-wide validator with the custom tags registered.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		_ = validatorInst.RegisterValidation(tagAadhaar, func(fl validator.FieldLevel) bool {
			return aadhaarPattern.MatchString(fl.Field().String())
		})
		_ = validatorInst.RegisterValidation(tagPasscode, func(fl validator.FieldLevel) bool {
			return passcodePattern.MatchString(fl.Field().String())
		})
	})
	return validatorInst
}

type inputValidator struct{}

// NewInputValidator returns a [Validator] backed by go-playground/validator.
func NewInputValidator() Validator {
	return inputValidator{}
}

// Validate implements [Validator]. When fields are given only those struct
// fields are checked. The first failing field is reported as its sentinel.
func (inputValidator) Validate(ctx context.Context, v any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = get().StructPartialCtx(ctx, v, fields...)
	} else {
		err = get().StructCtx(ctx, v)
	}
	return translate(err)
}

// Aadhaar validates a single Aadhaar number.
func Aadhaar(s string) error {
	if err := get().Var(s, "required,"+tagAadhaar); err != nil {
		return ErrInvalidAadhaar
	}
	return nil
}

// Passcode validates a single passcode.
func Passcode(s string) error {
	if err := get().Var(s, "required,"+tagPasscode); err != nil {
		return ErrInvalidPasscode
	}
	return nil
}

func translate(err error) error {
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("%w: %v", ErrUnsupportedType, err)
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		if sentinel, ok := fieldErrors[fieldErrs[0].StructField()]; ok {
			return sentinel
		}
		return fmt.Errorf("invalid %s: %s", fieldErrs[0].Field(), fieldErrs[0].Tag())
	}

	return err
}
