package shapeview

import "math"

// Shape describes a parametric outline. It captures only immutable
// parameters; the outline itself is generated on demand for the bounds
// known at layout time, so a shape can be evaluated on every layout pass.
type Shape interface {
	// Outline generates the closed outline for the given bounds.
	// Implementations must not retain bounds between calls.
	Outline(bounds Rect) *Outline

	// Validate reports a contract violation in the shape parameters.
	Validate() error
}

// DrawFunc builds an outline for the given bounds.
type DrawFunc func(o *Outline, bounds Rect)

// Custom is a shape whose outline is built by a caller-supplied function.
type Custom struct {
	Draw DrawFunc
}

// NewCustom returns a shape drawn by fn.
func NewCustom(fn DrawFunc) (Shape, error) {
	s := Custom{Draw: fn}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate implements Shape.
func (s Custom) Validate() error {
	if s.Draw == nil {
		return shapeError("Custom", "draw", 0, "function is nil")
	}
	return nil
}

// Outline implements Shape.
func (s Custom) Outline(bounds Rect) *Outline {
	o := NewOutline()
	s.Draw(o, bounds)
	return o
}

// rectShape is the outline used when a view has no shape configured.
type rectShape struct{}

func (rectShape) Validate() error { return nil }

func (rectShape) Outline(bounds Rect) *Outline {
	o := NewOutline()
	o.Rect(bounds)
	return o
}

// place moves an outline generated in the local frame (0, 0, W, H) to the
// origin of bounds.
func place(o *Outline, bounds Rect) *Outline {
	if bounds.Min == (Point{}) {
		return o
	}
	return o.Translate(bounds.Min)
}

func checkNonNegative(op, param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return shapeError(op, param, v, "must be finite")
	}
	if v < 0 {
		return shapeError(op, param, v, "must not be negative")
	}
	return nil
}

func checkPositive(op, param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return shapeError(op, param, v, "must be finite")
	}
	if v <= 0 {
		return shapeError(op, param, v, "must be positive")
	}
	return nil
}

func checkFinite(op, param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return shapeError(op, param, v, "must be finite")
	}
	return nil
}
