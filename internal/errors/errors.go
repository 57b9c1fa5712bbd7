package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "for this team"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrTeamNotFound         = &NotFoundError{Entity: "team"}
	ErrJoinRequestNotFound  = &NotFoundError{Entity: "join request"}
	ErrLeaveRequestNotFound = &NotFoundError{Entity: "leave request"}
	ErrInvitationNotFound   = &NotFoundError{Entity: "invitation"}
	ErrMembershipNotFound   = &NotFoundError{Entity: "team membership"}
	ErrProjectNotFound      = &NotFoundError{Entity: "project"}
	ErrTaskNotFound         = &NotFoundError{Entity: "task"}
	ErrCommentNotFound      = &NotFoundError{Entity: "comment"}
	ErrTimeLogNotFound      = &NotFoundError{Entity: "time log"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
	ErrAttachmentNotFound   = &NotFoundError{Entity: "attachment"}
)

// Already Exists Errors
var (
	ErrUserExists          = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrJoinRequestPending  = &AlreadyExistsError{Entity: "pending join request", Context: "for this team"}
	ErrLeaveRequestPending = &AlreadyExistsError{Entity: "pending leave request", Context: "for this team"}
	ErrInvitationPending   = &AlreadyExistsError{Entity: "pending invitation", Context: "for this user and workspace"}
	ErrAlreadyTeamMember   = &AlreadyExistsError{Entity: "team membership", Context: "for this user"}
	ErrProjectMemberExists = &AlreadyExistsError{Entity: "project membership", Context: "for this user"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = NewValidationError("status", "must be one of: accepted, declined")
	ErrReasonTooShort          = NewValidationError("reason", "must be at least 5 characters")
	ErrNotTeamMember           = NewValidationError("team", "user is not a member of this team")
	ErrLeaderCannotLeave       = NewValidationError("team", "the team creator cannot leave their own team")
	ErrInvalidParentTask       = NewValidationError("parent_id", "parent task must be a top-level task of the same project")
	ErrEmptyFile               = NewValidationError("file", "file size cannot be zero")
	ErrFileTooLarge            = NewValidationError("file", "file exceeds the maximum upload size")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication and Authorization Errors
var (
	ErrAuthenticationRequired = &AuthenticationError{Message: "authentication required"}
	ErrInvalidCredentials     = &AuthenticationError{Message: "invalid email or password"}
	ErrTokenRevoked           = &AuthenticationError{Message: "token has been revoked"}

	ErrNotTeamCreator    = &AuthorizationError{Message: "only the team creator can perform this action"}
	ErrNotInvitee        = &AuthorizationError{Message: "only the invited user can respond to this invitation"}
	ErrNotProjectMember  = &AuthorizationError{Message: "user is not a member of this project"}
	ErrNotProjectOwner   = &AuthorizationError{Message: "only the project owner can perform this action"}
	ErrNotTeamVisible    = &AuthorizationError{Message: "user is not a member of this team"}
	ErrNotResourceAuthor = &AuthorizationError{Message: "only the author can perform this action"}
	ErrNotificationOwner = &AuthorizationError{Message: "notification belongs to another user"}
)

// Configuration Errors
var (
	ErrStorageNotConfigured = &ConfigurationError{Message: "object storage is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
