// Package common provides shared utilities and types used across the application.
package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Server errors.
	ErrServerUnreachable = errors.New("server unreachable")
	ErrRequestTimeout    = errors.New("request timed out")

	// Shipment errors.
	ErrShipmentNotFound = errors.New("shipment not found")
	ErrStatusNotAllowed = errors.New("status change not allowed")
	ErrMutationInFlight = errors.New("another change for this shipment is still running")
	ErrNothingToSave    = errors.New("nothing to save")
	ErrNoRowsSelected   = errors.New("no rows selected")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}
