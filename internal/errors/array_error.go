// Package errors provides standardized error types for extension-array
// operations. This package defines ArrayError for consistent error handling
// across all public APIs, with an error-kind taxonomy so callers can tell
// "unsupported operation" apart from "bad input".
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an ArrayError.
type Kind int

const (
	// KindType indicates an unsupported input or operation type.
	KindType Kind = iota
	// KindIndex indicates a malformed or out-of-bounds indexer.
	KindIndex
	// KindValue indicates a value that cannot be stored or applied.
	KindValue
	// KindLength indicates an indexer/value length mismatch.
	KindLength
	// KindNotImplemented indicates a declared but unimplemented operation.
	KindNotImplemented
)

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindIndex:
		return "index"
	case KindValue:
		return "value"
	case KindLength:
		return "length"
	case KindNotImplemented:
		return "not implemented"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// ArrayError represents standardized errors across all array operations
type ArrayError struct {
	Op      string // Operation name (e.g., "Get", "Set", "Take")
	Kind    Kind   // Error classification
	Message string // Human-readable error description
	Cause   error  // Underlying error cause
}

// Error implements the error interface
func (e *ArrayError) Error() string {
	if e.Kind == KindNotImplemented {
		return fmt.Sprintf("%s is not implemented", e.Op)
	}
	return fmt.Sprintf("%s: %s error: %s", e.Op, e.Kind, e.Message)
}

// Unwrap returns the underlying cause for error wrapping support
func (e *ArrayError) Unwrap() error {
	return e.Cause
}

// Is implements error equality checking for errors.Is()
func (e *ArrayError) Is(target error) bool {
	if ae, ok := target.(*ArrayError); ok {
		return e.Op == ae.Op && e.Kind == ae.Kind && e.Message == ae.Message
	}
	return false
}

// Common error constructors for consistent error creation

// NewTypeError creates an error for unsupported input or operation types
func NewTypeError(op, message string) *ArrayError {
	return &ArrayError{
		Op:      op,
		Kind:    KindType,
		Message: message,
	}
}

// NewIndexError creates an error for malformed indexers
func NewIndexError(op, message string) *ArrayError {
	return &ArrayError{
		Op:      op,
		Kind:    KindIndex,
		Message: message,
	}
}

// NewOutOfBoundsError creates an error for indexes past the end of the array
func NewOutOfBoundsError(op string, index, length int) *ArrayError {
	return &ArrayError{
		Op:      op,
		Kind:    KindIndex,
		Message: fmt.Sprintf("index %d out of bounds for array of length %d", index, length),
	}
}

// NewValueError creates an error for values that cannot be stored
func NewValueError(op, message string) *ArrayError {
	return &ArrayError{
		Op:      op,
		Kind:    KindValue,
		Message: message,
	}
}

// NewLengthMismatchError creates an error for indexer/value length mismatches
func NewLengthMismatchError(op string, expected, actual int) *ArrayError {
	return &ArrayError{
		Op:      op,
		Kind:    KindLength,
		Message: fmt.Sprintf("expected length %d, got %d", expected, actual),
	}
}

// NewNotImplementedError creates an error for declared but unimplemented operations
func NewNotImplementedError(op string) *ArrayError {
	return &ArrayError{
		Op:   op,
		Kind: KindNotImplemented,
	}
}

// KindOf reports the Kind of err and whether err is an ArrayError.
func KindOf(err error) (Kind, bool) {
	var ae *ArrayError
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return 0, false
}

// IsNotImplemented reports whether err signals an unimplemented operation,
// as opposed to bad input.
func IsNotImplemented(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotImplemented
}

// Predefined error variables for common cases
var (
	// ErrInvalidIndexer indicates an indexer of an unsupported shape
	ErrInvalidIndexer = &ArrayError{
		Op:      "indexing",
		Kind:    KindIndex,
		Message: "only integers, slices and integer or boolean arrays are valid indices",
	}

	// ErrNonEmptyTake indicates a gather from an empty array
	ErrNonEmptyTake = &ArrayError{
		Op:      "Take",
		Kind:    KindIndex,
		Message: "cannot do a non-empty take from an empty array",
	}

	// ErrScalarIndexerValue indicates a non-scalar value with a scalar indexer
	ErrScalarIndexerValue = &ArrayError{
		Op:      "Set",
		Kind:    KindValue,
		Message: "must pass a scalar value with a scalar indexer",
	}
)
