// Package shared contains common domain types, errors and events
// that are used across all domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")

	// Validation errors
	ErrValidation      = errors.New("validation error")
	ErrInvalidID       = errors.New("invalid ID")
	ErrInvalidInput    = errors.New("invalid input")
	ErrEmptyValue      = errors.New("value cannot be empty")
	ErrNegativeValue   = errors.New("value cannot be negative")
	ErrValueOutOfRange = errors.New("value out of range")
	ErrInvalidFormat   = errors.New("invalid format")

	// State errors
	ErrInvalidState    = errors.New("invalid state")
	ErrStateTransition = errors.New("invalid state transition")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "student", "course", "notification"
	Op      string // Operation that failed, e.g., "Register", "Apply"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Student domain errors
var (
	ErrStudentNotFound  = NewDomainError("student", "Find", ErrNotFound, "student not found")
	ErrEmailTaken       = NewDomainError("student", "Register", ErrAlreadyExists, "email already taken")
	ErrInvalidFirstName = NewDomainError("student", "Validate", ErrValidation, "incorrect first name")
	ErrInvalidLastName  = NewDomainError("student", "Validate", ErrValidation, "incorrect last name")
	ErrInvalidEmail     = NewDomainError("student", "Validate", ErrValidation, "incorrect email")
)

// Course domain errors
var (
	ErrUnknownCourse     = NewDomainError("course", "Find", ErrNotFound, "unknown course")
	ErrInvalidCredits    = NewDomainError("course", "Validate", ErrValueOutOfRange, "required credits must be positive")
	ErrIncompleteCatalog = NewDomainError("course", "BuildCatalog", ErrInvalidInput, "catalog must define every course exactly once")
	ErrNegativeScore     = NewDomainError("course", "Validate", ErrNegativeValue, "submission scores cannot be negative")
)

// Notification domain errors
var (
	ErrNotificationExists    = NewDomainError("notification", "Queue", ErrAlreadyExists, "notification already queued or delivered")
	ErrNotificationDelivered = NewDomainError("notification", "Deliver", ErrStateTransition, "notification already delivered")
)

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateEmail checks if the error is a duplicate email registration error.
func IsDuplicateEmail(err error) bool {
	return errors.Is(err, ErrEmailTaken)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrEmptyValue) ||
		errors.Is(err, ErrNegativeValue) ||
		errors.Is(err, ErrValueOutOfRange) ||
		errors.Is(err, ErrInvalidFormat)
}
