package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapMessageKeepsIdentity(t *testing.T) {
	err := ErrForbidden.WrapMessage("device belongs to another user")

	assert.ErrorIs(t, err, ErrForbidden)

	var appErr AppError
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
	assert.Equal(t, "Access denied", appErr.Message())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("duplicate key value violates unique constraint")
	err := NewDatabaseExecuteError(cause, "failed to create device")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "Database execution failed", err.Message())
	assert.Contains(t, err.Error(), "failed to create device")
}
