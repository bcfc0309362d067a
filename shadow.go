package shapeview

import "math"

// Shadow describes a blurred drop shadow cast by a layer's content.
//
// The zero value is "no shadow". A shadow whose radius is not positive, or
// whose color or opacity is fully transparent, is not visible: the
// compositor hides the corresponding layer instead of painting it with
// invisible parameters.
type Shadow struct {
	Radius  float64 // blur radius in points
	Color   RGBA
	Opacity float64 // in [0, 1], multiplied into Color.A when painting
	Offset  Point
}

// Visible reports whether the shadow paints anything.
func (s Shadow) Visible() bool {
	return s.Radius > 0 && s.Color.A > 0 && s.Opacity > 0
}

// Validate reports a contract violation in the shadow parameters.
// A non-positive radius is legal and means no shadow.
func (s Shadow) Validate(op string) error {
	switch {
	case math.IsNaN(s.Radius) || math.IsInf(s.Radius, 0):
		return shadowError(op, "radius", s.Radius, "must be finite")
	case math.IsNaN(s.Opacity) || s.Opacity < 0 || s.Opacity > 1:
		return shadowError(op, "opacity", s.Opacity, "must be within [0, 1]")
	case math.IsNaN(s.Offset.X) || math.IsInf(s.Offset.X, 0):
		return shadowError(op, "offset.x", s.Offset.X, "must be finite")
	case math.IsNaN(s.Offset.Y) || math.IsInf(s.Offset.Y, 0):
		return shadowError(op, "offset.y", s.Offset.Y, "must be finite")
	}
	return nil
}

// Paint returns the shadow color with the opacity applied.
func (s Shadow) Paint() RGBA {
	return s.Color.WithAlpha(s.Color.A * s.Opacity)
}
