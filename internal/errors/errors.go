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

// PartialWriteError reports a create/update whose base row was written but
// whose category-association replacement failed for one or more categories.
// The base write is NOT rolled back; callers must read the per-category
// outcomes on the WriteResult instead of assuming full success.
type PartialWriteError struct {
	Categories []string
}

func (e *PartialWriteError) Error() string {
	return fmt.Sprintf("organization saved but association writes failed for: %v", e.Categories)
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
)

// Authentication Errors
var (
	// ErrIncorrectPassword is the admin gate's mismatch outcome. It is a
	// user-visible state, not a fault: no attempt tracking, no lockout.
	ErrIncorrectPassword = &AuthenticationError{Message: "incorrect password"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
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

// IsPartialWrite checks if an error is a PartialWriteError
func IsPartialWrite(err error) bool {
	var partialErr *PartialWriteError
	return errors.As(err, &partialErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
