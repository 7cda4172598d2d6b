// Package validator adapts go-playground/validator to echo's Validator
// interface and renders failures as field-level validation errors.
package validator

import (
	"strings"

	domainerrors "ayurfresh/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// echoValidator wraps a per-instance validate so struct caches are not
// shared across applications in tests.
type echoValidator struct {
	validate *playground.Validate
}

// New creates an echo.Validator backed by go-playground/validator.
func New() *echoValidator {
	return &echoValidator{validate: playground.New()}
}

// Validate implements echo.Validator. Tag failures come back as a
// FieldErrors so the error middleware renders them as a 422 field map.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs playground.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[snakeCase(fieldErr.Field())] = describe(fieldErr)
	}

	return domainerrors.NewFieldErrors(fields)
}

// describe turns a tag failure into a short, user-facing message.
func describe(fieldErr playground.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		return "Must be at least " + fieldErr.Param() + " characters"
	case "max":
		return "Must be at most " + fieldErr.Param() + " characters"
	case "len":
		return "Must be exactly " + fieldErr.Param() + " characters"
	case "gt":
		return "Must be greater than " + fieldErr.Param()
	case "gte":
		return "Must be at least " + fieldErr.Param()
	case "numeric":
		return "Must contain only digits"
	case "oneof":
		return "Must be one of: " + fieldErr.Param()
	default:
		return "Invalid value"
	}
}

// snakeCase converts an exported struct field name to its JSON form, e.g.
// "PhoneNumber" to "phone_number".
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}

	return b.String()
}
