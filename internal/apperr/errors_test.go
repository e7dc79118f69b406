package apperr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"salon-booking-api/internal/apperr"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(apperr.NotFound("service")))
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(apperr.Conflict("master is busy")))
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(apperr.Validation("bad input")))
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(errors.New("plain error")))
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("db is down")
	wrapped := apperr.Internal(cause)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(wrapped))
}

func TestForbiddenDefaultMessage(t *testing.T) {
	err := apperr.Forbidden("")
	assert.Equal(t, "access forbidden", err.Error())
}
