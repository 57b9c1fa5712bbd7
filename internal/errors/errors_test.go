package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "join request"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrTeamNotFound, ErrTeamNotFound))
		assert.False(t, errors.Is(ErrTeamNotFound, ErrJoinRequestNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to resolve: %w", ErrLeaveRequestNotFound)
		assert.True(t, errors.Is(wrapped, ErrLeaveRequestNotFound))
		assert.True(t, IsNotFound(wrapped))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamNotFound))
		assert.False(t, IsNotFound(ErrJoinRequestPending))
		assert.False(t, IsNotFound(nil))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "pending join request", Context: "for this team"}
		assert.Equal(t, "pending join request already exists for this team", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "team"}
		assert.Equal(t, "team already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "pending join request", Context: "for this team"}
		assert.True(t, errors.Is(err1, ErrJoinRequestPending))
		assert.False(t, errors.Is(err1, ErrLeaveRequestPending))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrJoinRequestPending))
		assert.True(t, IsAlreadyExists(ErrInvitationPending))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "reason", Message: "too short"}
		assert.Equal(t, "validation error: reason - too short", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrReasonTooShort))
		assert.True(t, IsValidation(fmt.Errorf("submit: %w", ErrInvalidStatus)))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(NewAuthenticationError("expired")))
		assert.False(t, IsAuthentication(ErrNotTeamCreator))
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrNotTeamCreator))
		assert.True(t, IsAuthorization(fmt.Errorf("resolve: %w", ErrNotInvitee)))
		assert.False(t, IsAuthorization(ErrAuthenticationRequired))
	})

	t.Run("Messages", func(t *testing.T) {
		assert.Equal(t, "only the team creator can perform this action", ErrNotTeamCreator.Error())
		assert.Equal(t, "authentication required", ErrAuthenticationRequired.Error())
	})
}

func TestConfigurationError(t *testing.T) {
	assert.True(t, IsConfiguration(ErrStorageNotConfigured))
	assert.True(t, IsConfiguration(NewConfigurationError("missing bucket")))
	assert.False(t, IsConfiguration(ErrTeamNotFound))
	assert.Equal(t, "object storage is not configured", ErrStorageNotConfigured.Error())
}
