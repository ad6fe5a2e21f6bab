package gremlin

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is returned when a chain-combining operation
// (Intersect, Union, Follow, FollowR) receives the wrong chain variant.
var ErrInvalidParameter = errors.New("gremlin: invalid parameter")

// InvalidParameterError reports a chain-combining call that received an
// expression of the wrong variant.
type InvalidParameterError struct {
	op    string
	value Expr
}

// Error returns the error string.
func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("gremlin: invalid parameter in %s query: %T", e.op, e.value)
}

// Is reports whether the target error matches ErrInvalidParameter.
// This allows errors.Is(paramErr, gremlin.ErrInvalidParameter) to return true.
func (e *InvalidParameterError) Is(err error) bool {
	return err == ErrInvalidParameter
}

// Op returns the rejected operation name.
func (e *InvalidParameterError) Op() string {
	return e.op
}

// Value returns the rejected expression.
func (e *InvalidParameterError) Value() Expr {
	return e.value
}

// IsInvalidParameter returns true if the error is an InvalidParameterError.
func IsInvalidParameter(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidParameterError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidParameter)
}
