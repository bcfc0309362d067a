package shapeview

import (
	"errors"
	"fmt"
)

// Errors reported for contract violations. Geometry and effect parameters
// are checked when a shape, shadow or effect is constructed or handed to a
// compositor; invalid values are never clamped.
var (
	ErrInvalidShape  = errors.New("shapeview: invalid shape")
	ErrInvalidShadow = errors.New("shapeview: invalid shadow")
	ErrInvalidEffect = errors.New("shapeview: invalid effect")
)

// ParamError describes a single rejected parameter. It wraps one of the
// sentinel errors above so callers can test with errors.Is.
type ParamError struct {
	Op     string  // constructor or setter that rejected the value
	Param  string  // parameter name
	Value  float64 // offending value
	Reason string  // constraint that was violated

	kind error
}

// Error implements the error interface.
func (e *ParamError) Error() string {
	return fmt.Sprintf("%v: %s: %s = %g: %s", e.kind, e.Op, e.Param, e.Value, e.Reason)
}

// Unwrap returns the sentinel error kind.
func (e *ParamError) Unwrap() error {
	return e.kind
}

func shapeError(op, param string, value float64, reason string) error {
	return &ParamError{Op: op, Param: param, Value: value, Reason: reason, kind: ErrInvalidShape}
}

func shadowError(op, param string, value float64, reason string) error {
	return &ParamError{Op: op, Param: param, Value: value, Reason: reason, kind: ErrInvalidShadow}
}

func effectError(op, param string, value float64, reason string) error {
	return &ParamError{Op: op, Param: param, Value: value, Reason: reason, kind: ErrInvalidEffect}
}
