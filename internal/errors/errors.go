package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
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

// ValidationError reports invalid input as a field -> message-list map.
// It is a normal, recoverable outcome of request processing, never a fault.
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
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

// PersistenceError wraps a constraint violation surfaced by the repository at
// write time despite prior validation. The underlying message is reported, not
// masked.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Err.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrCompanyNotFound  = &NotFoundError{Entity: "company"}
	ErrEmployeeNotFound = &NotFoundError{Entity: "employee"}
	ErrUserNotFound     = &NotFoundError{Entity: "user"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "The credentials provided are not found"}
	ErrInvalidToken       = &AuthenticationError{Message: "Unauthenticated."}
)

// Authorization Errors
var (
	ErrNotAdmin = &AuthorizationError{Message: "This action is unauthorized."}
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

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsPersistence checks if an error is a PersistenceError
func IsPersistence(err error) bool {
	var persistenceErr *PersistenceError
	return errors.As(err, &persistenceErr)
}

// NewValidationError creates a new ValidationError from a field error map
func NewValidationError(fields map[string][]string) error {
	return &ValidationError{Fields: fields}
}

// NewPersistenceError wraps a repository write error
func NewPersistenceError(err error) error {
	return &PersistenceError{Err: err}
}
