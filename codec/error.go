package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is matched by every error caused by a caller mistake:
	// nil values, unknown formats, unusable option values.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrSchemaMismatch is matched by every error caused by a payload that does
	// not fit the target type, including malformed payloads.
	ErrSchemaMismatch = errors.New("schema mismatch")
	// ErrMalformedPayload is the cause of schema mismatches raised for
	// truncated, oversized or otherwise structurally broken payloads.
	ErrMalformedPayload = errors.New("malformed payload")
)

// InvalidArgumentError represents a caller error detected before any
// encoding or decoding takes place.
type InvalidArgumentError struct {
	text string
}

// NewInvalidArgumentError creates a new InvalidArgumentError.
func NewInvalidArgumentError(text string) error {
	return InvalidArgumentError{text: text}
}

// Error returns a string representation of the invalid argument error.
func (e InvalidArgumentError) Error() string {
	return "invalid argument: " + e.text
}

// Is makes InvalidArgumentError match ErrInvalidArgument.
func (e InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument //nolint:errorlint
}

// SchemaMismatchError represents a payload that cannot be decoded into the
// target type.
type SchemaMismatchError struct {
	// Expected describes what the decoder was looking for.
	Expected string
	// Found describes what the payload actually contained.
	Found string

	parent error
}

// NewSchemaMismatchError creates a new SchemaMismatchError.
func NewSchemaMismatchError(expected, found string, parent error) error {
	return SchemaMismatchError{
		Expected: expected,
		Found:    found,
		parent:   parent,
	}
}

// Error returns a string representation of the schema mismatch error.
func (e SchemaMismatchError) Error() string {
	text := fmt.Sprintf("schema mismatch: expected %s, found %s", e.Expected, e.Found)
	if e.parent == nil {
		return text
	}

	return text + ": " + e.parent.Error()
}

// Unwrap returns the underlying error that caused the mismatch.
func (e SchemaMismatchError) Unwrap() error {
	return e.parent
}

// Is makes SchemaMismatchError match ErrSchemaMismatch.
func (e SchemaMismatchError) Is(target error) bool {
	return target == ErrSchemaMismatch //nolint:errorlint
}

// MarshalError represents an error when encoding a value fails.
type MarshalError struct {
	parent error
}

// NewMarshalError wraps parent into a MarshalError, nil stays nil.
func NewMarshalError(parent error) error {
	if parent == nil {
		return nil
	}

	return MarshalError{parent: parent}
}

// Unwrap returns the underlying error that caused the marshalling failure.
func (e MarshalError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the marshalling error.
func (e MarshalError) Error() string {
	return fmt.Sprintf("failed to marshal: %s", e.parent)
}
