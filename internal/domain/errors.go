package domain

import (
	"fmt"
)

// ErrWebsiteNotFound is returned when no website row matches the requested ID
type ErrWebsiteNotFound struct {
	ID string
}

func (e *ErrWebsiteNotFound) Error() string {
	return fmt.Sprintf("website not found with ID: %s", e.ID)
}

// ErrVideoNotFound is returned when no video row matches the requested ID
type ErrVideoNotFound struct {
	ID string
}

func (e *ErrVideoNotFound) Error() string {
	return fmt.Sprintf("video not found with ID: %s", e.ID)
}

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}

// ErrCompositionFailed wraps a failure reported by the composition service
type ErrCompositionFailed struct {
	StatusCode int
	Details    string
}

func (e *ErrCompositionFailed) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("video composition failed (status %d): %s", e.StatusCode, e.Details)
	}
	return fmt.Sprintf("video composition failed (status %d)", e.StatusCode)
}
