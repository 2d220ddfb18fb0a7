package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "facility"}
		assert.Equal(t, "facility not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "facility"}
		err2 := &NotFoundError{Entity: "facility"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "facility"}
		err2 := &NotFoundError{Entity: "organization"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrFacilityNotFound, ErrFacilityNotFound))
		assert.False(t, errors.Is(ErrFacilityNotFound, ErrOrganizationNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrOrganizationNotFound))
		assert.False(t, IsNotFound(ErrInvalidCredentials))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user", Context: "with this email"}
		assert.Equal(t, "user already exists with this email", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user"}
		assert.Equal(t, "user already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "organizationName", Message: "is required"}
		assert.Equal(t, "validation error: organizationName - is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid payload"}
		assert.Equal(t, "validation error: invalid payload", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("project", "is required")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrFacilityNotFound))
	})
}

func TestMalformedInputError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &MalformedInputError{Field: "subscribedSpeed", Message: "expected download/upload"}
		assert.Equal(t, "malformed input: subscribedSpeed - expected download/upload", err.Error())
	})

	t.Run("IsMalformedInput helper", func(t *testing.T) {
		err := NewMalformedInputError("subscribedSpeed", "missing separator")
		assert.True(t, IsMalformedInput(err))
		assert.False(t, IsMalformedInput(NewValidationError("project", "is required")))
	})
}

func TestAuthenticationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		assert.Equal(t, "invalid email or password", ErrInvalidCredentials.Error())
	})

	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidToken))
		assert.False(t, IsAuthentication(ErrUserNotFound))
	})
}
