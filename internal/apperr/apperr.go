// Package apperr defines the error taxonomy shared by every lifecycle
// service. Handlers map these to HTTP status codes; services return them
// wrapped with context via fmt.Errorf and %w.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized means the caller has no resolved session or company.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound covers both a missing entity and an entity the caller is
	// not a participant of. The two are deliberately indistinguishable so
	// existence is never leaked to outsiders.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyProcessed is returned on double-actions: approving an
	// already-approved timesheet, invoicing an invoiced one, and so on.
	ErrAlreadyProcessed = errors.New("already processed")

	// ErrExternalService indicates the payment provider (or another
	// collaborator) was unreachable or answered with an error.
	ErrExternalService = errors.New("external service failure")

	errInvalidTransition = errors.New("invalid transition")
	errValidation        = errors.New("validation failed")
)

// ErrInvalidTransition matches any InvalidTransitionError via errors.Is.
var ErrInvalidTransition = errInvalidTransition

// ErrValidation matches any ValidationError via errors.Is.
var ErrValidation = errValidation

// InvalidTransitionError reports a status move the transition table denies.
type InvalidTransitionError struct {
	Entity string
	From   string
	To     string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s cannot move from %s to %s", e.Entity, e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == errInvalidTransition
}

// NewInvalidTransition builds an InvalidTransitionError for the given entity.
func NewInvalidTransition(entity, from, to string) error {
	return &InvalidTransitionError{Entity: entity, From: from, To: to}
}

// ValidationError reports malformed input on a single field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == errValidation
}

// NewValidation builds a ValidationError.
func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
