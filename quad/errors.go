package quad

import (
	"errors"
	"fmt"
)

// ErrInvalidQuad is returned when a quad cannot be built from a structured
// record or from serialized text.
var ErrInvalidQuad = errors.New("quad: invalid quad")

// InvalidQuadError describes why a record or text could not be converted
// into a Quad.
type InvalidQuadError struct {
	reason string
	err    error
}

// Error returns the error string.
func (e *InvalidQuadError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("quad: invalid quad: %s: %v", e.reason, e.err)
	}
	return fmt.Sprintf("quad: invalid quad: %s", e.reason)
}

// Is reports whether the target error matches ErrInvalidQuad.
// This allows errors.Is(invalidErr, quad.ErrInvalidQuad) to return true.
func (e *InvalidQuadError) Is(err error) bool {
	return err == ErrInvalidQuad
}

// Unwrap returns the underlying cause, if any.
func (e *InvalidQuadError) Unwrap() error {
	return e.err
}

// Reason returns the human-readable reason the conversion was rejected.
func (e *InvalidQuadError) Reason() string {
	return e.reason
}

// NewInvalidQuadError returns a new InvalidQuadError with the given reason.
func NewInvalidQuadError(reason string) *InvalidQuadError {
	return &InvalidQuadError{reason: reason}
}

// IsInvalidQuad returns true if the error is an InvalidQuadError.
func IsInvalidQuad(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidQuadError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidQuad)
}
