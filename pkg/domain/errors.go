package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyAlternatives is returned when a combination is requested over no alternatives.
var ErrEmptyAlternatives = errors.New("no alternatives to combine")

// ErrInvalidDefinition is returned when a definition violates a precondition of the engine.
var ErrInvalidDefinition = errors.New("invalid definition")

// ErrDuplicateAction is returned when two actions share the same identity.
var ErrDuplicateAction = errors.New("duplicate action")

// ErrNoEntryPoints is returned when a definition declares no entry action.
var ErrNoEntryPoints = errors.New("no entry points")

// ErrUnknownType is returned when a declaration references a type that cannot be resolved.
var ErrUnknownType = errors.New("unknown type")

// ValidationError represents a single problem found in a definition.
type ValidationError struct {
	Action string // Action method or identity, empty for definition-level problems
	Reason string
	Err    error // Sentinel classifying the problem
}

func (e *ValidationError) Error() string {
	if e.Action == "" {
		return e.Reason
	}
	return fmt.Sprintf("action %q: %s", e.Action, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// AggregateError represents multiple validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// ValidationErrors returns all validation errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
