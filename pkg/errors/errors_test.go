package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrors(t *testing.T) {
	validation := NewValidationError("bad proxy")
	unavailable := NewUnavailableError("session request failed")
	internal := NewInternalError("boom")

	assert.Equal(t, "bad proxy", validation.Error())
	assert.Equal(t, "session request failed", unavailable.Error())
	assert.Equal(t, "boom", internal.Error())

	assert.True(t, IsValidationError(validation))
	assert.True(t, IsValidationError(fmt.Errorf("wrapped: %w", validation)))
	assert.False(t, IsValidationError(unavailable))
	assert.False(t, IsValidationError(internal))
	assert.False(t, IsValidationError(nil))
}
