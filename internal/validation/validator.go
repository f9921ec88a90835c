// Package validation holds request payloads, their normalization rules and
// the validator Echo uses to check them.
package validation

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iliyamo/studio-booking/internal/model"
)

// Validator adapts go-playground/validator to echo.Validator.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator with the booking rules registered:
//   department – value is one of model.Departments
//   notblank   – string is not empty after trimming
func New() *Validator {
	v := validator.New()
	_ = v.RegisterValidation("department", func(fl validator.FieldLevel) bool {
		return model.IsDepartment(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &Validator{v: v}
}

// Validate implements echo.Validator.
func (cv *Validator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}
