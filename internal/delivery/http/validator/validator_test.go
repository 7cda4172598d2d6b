package validator

import (
	"testing"

	domainerrors "ayurfresh/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Name        string `validate:"required,min=2"`
	Email       string `validate:"required,email"`
	PhoneNumber string `validate:"omitempty,len=10,numeric"`
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	err := v.Validate(sampleInput{Name: "Asha", Email: "asha@example.com"})

	assert.NoError(t, err)
}

func TestValidate_RendersSnakeCaseFieldMap(t *testing.T) {
	v := New()

	err := v.Validate(sampleInput{Name: "A", PhoneNumber: "12ab"})

	require.Error(t, err)
	var fieldErrs *domainerrors.FieldErrors
	require.True(t, errors.As(err, &fieldErrs))

	assert.Equal(t, "Must be at least 2 characters", fieldErrs.Fields["name"])
	assert.Equal(t, "This field is required", fieldErrs.Fields["email"])
	assert.Equal(t, "Must be exactly 10 characters", fieldErrs.Fields["phone_number"])
}

func TestValidate_NonStructInput(t *testing.T) {
	v := New()

	err := v.Validate("not a struct")

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
