// Package validator adapts go-playground validation to echo's Validator hook.
package validator

import (
	domainerrors "shop/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// requestValidator wraps a shared validator instance for request structs.
type requestValidator struct {
	validate *validator.Validate
}

// New creates the echo.Validator used by every handler's Bind/Validate pair.
func New() *requestValidator {
	return &requestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and converts failures to the shared error type
// so the central error handler renders them as 400 responses.
func (v *requestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
