package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"influencer-crm-service/apperrors"
)

type sample struct {
	Name   string  `json:"name" validate:"required,max=5"`
	Email  string  `json:"email" validate:"omitempty,email"`
	Status string  `json:"status" validate:"omitempty,oneof=A B"`
	Rate   float64 `json:"rate" validate:"gte=0"`
}

func TestStructUsesJSONNames(t *testing.T) {
	v := New()

	err := v.Struct(sample{Email: "nope", Status: "C", Rate: -1})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "email must be a valid email")
	assert.Contains(t, err.Error(), "status must be one of [A B]")
	assert.Contains(t, err.Error(), "rate must be greater than or equal to 0")

	assert.NoError(t, v.Struct(sample{Name: "ok"}))
}
