package order

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the order lifecycle policy. Callers classify typed
// failures with errors.Is and read details with errors.As.
var (
	ErrValidationFailed  = errors.New("order validation failed")
	ErrInvalidTransition = errors.New("status transition is not allowed")
	ErrForbiddenField    = errors.New("field may not be changed by this role")
	ErrTerminalState     = errors.New("order is in a terminal state")
	ErrDeleteState       = errors.New("only cancelled orders can be deleted")
)

// Violation names a single broken field constraint.
type Violation struct {
	Field      string
	Constraint string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Constraint)
}

// ValidationError carries the full list of field constraint violations found
// in a candidate order. It is never created with an empty list.
type ValidationError struct {
	Violations []Violation
}

// NewValidationError wraps a non-empty violation list.
func NewValidationError(violations []Violation) *ValidationError {
	return &ValidationError{Violations: violations}
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.String()
	}
	return fmt.Sprintf("%s: %s", ErrValidationFailed, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// InvalidTransitionError indicates a status change the transition policy
// rejects. Allowed holds the role-appropriate transition table so the
// boundary layer can surface actionable guidance.
type InvalidTransitionError struct {
	From      Status
	Requested Status
	Allowed   map[Status][]Status
}

// NewInvalidTransitionError creates an InvalidTransitionError carrying the
// transition table as seen by the caller's role.
func NewInvalidTransitionError(from, requested Status, role Role) *InvalidTransitionError {
	return &InvalidTransitionError{
		From:      from,
		Requested: requested,
		Allowed:   AllowedTransitionsFor(role),
	}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.Requested)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// ForbiddenFieldError indicates that the caller's role may not change the
// named field through this path.
type ForbiddenFieldError struct {
	Field string
	Role  Role
}

// NewForbiddenFieldError creates a ForbiddenFieldError for the given field
// and role.
func NewForbiddenFieldError(field string, role Role) *ForbiddenFieldError {
	return &ForbiddenFieldError{Field: field, Role: role}
}

func (e *ForbiddenFieldError) Error() string {
	return fmt.Sprintf("%s: %q is not writable by role %s", ErrForbiddenField, e.Field, e.Role)
}

func (e *ForbiddenFieldError) Unwrap() error {
	return ErrForbiddenField
}

// TerminalStateError indicates an attempted mutation of a delivered or
// cancelled order. No field of such an order may be changed.
type TerminalStateError struct {
	Status Status
}

// NewTerminalStateError creates a TerminalStateError for the given status.
func NewTerminalStateError(status Status) *TerminalStateError {
	return &TerminalStateError{Status: status}
}

func (e *TerminalStateError) Error() string {
	return fmt.Sprintf("%s: cannot update a %s order", ErrTerminalState, e.Status)
}

func (e *TerminalStateError) Unwrap() error {
	return ErrTerminalState
}

// DeleteStateError indicates a soft delete attempted on an order that is not
// cancelled, without the override flag.
type DeleteStateError struct {
	Status Status
}

// NewDeleteStateError creates a DeleteStateError for the given status.
func NewDeleteStateError(status Status) *DeleteStateError {
	return &DeleteStateError{Status: status}
}

func (e *DeleteStateError) Error() string {
	return fmt.Sprintf("%s: order is %s", ErrDeleteState, e.Status)
}

func (e *DeleteStateError) Unwrap() error {
	return ErrDeleteState
}
