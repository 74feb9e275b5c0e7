package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name  string `json:"name" validate:"required,min=2"`
	Phone string `json:"phone" validate:"required"`
	Extra string `json:"-" validate:"max=3"`
}

func TestFromBindError(t *testing.T) {
	v := validator.New()
	err := v.Struct(&sampleForm{Name: "A", Extra: "toolong"})
	require.Error(t, err)

	fields := FromBindError(err, &sampleForm{})
	assert.Equal(t, "Must be at least 2.", fields["name"])
	assert.Equal(t, "This field is required.", fields["phone"])
	// json:"-" falls back to the lowercased struct field name.
	assert.Equal(t, "Must be at most 3.", fields["extra"])
}

func TestFromBindErrorNonValidation(t *testing.T) {
	fields := FromBindError(errors.New("unexpected EOF"), &sampleForm{})
	assert.Equal(t, FieldErrors{"_": "Invalid request body."}, fields)
}
