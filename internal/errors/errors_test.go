package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Creation(t *testing.T) {
	message := "validation failed"
	details := []ValidationDetail{
		{Field: "email", Message: "Please enter a valid email address"},
		{Field: "size", Message: "Please select a size"},
	}

	err := NewValidationError(message, details...)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
	assert.Len(t, err.Details, 2)
}

func TestValidationError_IsValidationError(t *testing.T) {
	err := NewValidationError("validation failed")

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.NotNil(t, ve)

	ve, ok = IsValidationError(errors.New("some other error"))
	assert.False(t, ok)
	assert.Nil(t, ve)
}

func TestNetworkError_WrapsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewNetworkError("Network connection failed. Please check your internet connection.", cause)

	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, cause, errors.Unwrap(err))

	ne, ok := IsNetworkError(err)
	assert.True(t, ok)
	assert.Equal(t, cause, ne.Cause)
}

func TestNetworkError_NoCause(t *testing.T) {
	err := NewNetworkError("No internet connection", nil)
	assert.Equal(t, "No internet connection", err.Error())
}

func TestConflictError_KeepsServerMessage(t *testing.T) {
	err := NewConflictError("Jersey number already taken for this batch.")

	ce, ok := IsConflictError(err)
	assert.True(t, ok)
	assert.Equal(t, "Jersey number already taken for this batch.", ce.Message)
	assert.Equal(t, "Jersey number already taken for this batch.", err.Error())
}

func TestServerError_CarriesStatus(t *testing.T) {
	err := NewServerError(503, "service unavailable")

	se, ok := IsServerError(err)
	assert.True(t, ok)
	assert.Equal(t, 503, se.Status)
}

func TestKindChecks_RejectOtherKinds(t *testing.T) {
	conflict := NewConflictError("duplicate")

	_, ok := IsRateLimitError(conflict)
	assert.False(t, ok)
	_, ok = IsServerError(conflict)
	assert.False(t, ok)
	_, ok = IsBadRequestError(conflict)
	assert.False(t, ok)
	_, ok = IsNotFoundError(conflict)
	assert.False(t, ok)
	_, ok = IsUnknownRequestError(conflict)
	assert.False(t, ok)
	_, ok = IsNetworkError(conflict)
	assert.False(t, ok)
}

func TestUnknownRequestError_Creation(t *testing.T) {
	err := NewUnknownRequestError(418, "I'm a teapot")

	ue, ok := IsUnknownRequestError(err)
	assert.True(t, ok)
	assert.Equal(t, 418, ue.Status)
	assert.Equal(t, "I'm a teapot", err.Error())
}
