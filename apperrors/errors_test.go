package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{NotFound("campaign %d not found", 7), http.StatusNotFound},
		{BadRequest("bad"), http.StatusBadRequest},
		{InvalidTransition(nil, "nope"), http.StatusBadRequest},
		{Conflict("tracking number already exists"), http.StatusBadRequest},
		{Unauthenticated("login required"), http.StatusUnauthorized},
		{Forbidden("no"), http.StatusForbidden},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, StatusOf(tc.err), tc.err.Error())
	}
}

func TestSentinelMatching(t *testing.T) {
	err := fmt.Errorf("load: %w", NotFound("influencer %d not found", 3))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrForbidden))
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestWrappedCause(t *testing.T) {
	cause := errors.New("root")
	err := InvalidTransition(cause, "cannot move from %s to %s", "A", "B")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "cannot move from A to B: root", err.Error())
}
