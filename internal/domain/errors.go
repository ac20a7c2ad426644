package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

type ValidationErrorKind string

const (
	MissingTotals        ValidationErrorKind = "MissingTotals"
	NegativeTotal        ValidationErrorKind = "NegativeTotal"
	ConfidenceOutOfRange ValidationErrorKind = "ConfidenceOutOfRange"
	MalformedBreakdown   ValidationErrorKind = "MalformedBreakdown"
	InvalidPeriod        ValidationErrorKind = "InvalidPeriod"
)

// ValidationError means the record itself is bad. It is reported to the
// caller, never recovered from.
type ValidationError struct {
	Kind    ValidationErrorKind
	Field   string
	Message string
}

func NewValidationError(kind ValidationErrorKind, field string, format string, args ...any) *ValidationError {
	return &ValidationError{
		Kind:    kind,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid sroi record (%s): %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("invalid sroi record (%s) on %s: %s", e.Kind, e.Field, e.Message)
}

// Is matches on kind only, so errors.Is(err, ErrMissingTotals) works
// regardless of which field was missing.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrMissingTotals        = &ValidationError{Kind: MissingTotals}
	ErrNegativeTotal        = &ValidationError{Kind: NegativeTotal}
	ErrConfidenceOutOfRange = &ValidationError{Kind: ConfidenceOutOfRange}
	ErrMalformedBreakdown   = &ValidationError{Kind: MalformedBreakdown}
	ErrInvalidPeriod        = &ValidationError{Kind: InvalidPeriod}
)

var ErrRecordNotFound = errors.New("sroi calculation not found")

// FetchError wraps anything that went wrong loading the record. No retry
// happens anywhere.
type FetchError struct {
	ID  uuid.UUID
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch sroi calculation %s: %v", e.ID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
