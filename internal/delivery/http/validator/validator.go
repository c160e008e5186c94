// Package validator adapts go-playground/validator to Echo's Validator
// interface.
package validator

import (
	domainerrors "devfriend/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a validate instance so Echo can run struct tags on bound
// request bodies.
type Validator struct {
	validate *validator.Validate
}

// New is the constructor for Validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as the standard
// validation error so the error middleware renders them uniformly.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
