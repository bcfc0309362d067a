package shapeview

import "math"

// Corner is a rectangle with four equal circular corners.
type Corner struct {
	Radius float64
}

// NewCorner returns a rounded rectangle shape. A radius larger than half
// the shorter side is accepted; the arcs then overlap.
func NewCorner(radius float64) (Shape, error) {
	s := Corner{Radius: radius}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate implements Shape.
func (s Corner) Validate() error {
	return checkNonNegative("Corner", "radius", s.Radius)
}

// Outline implements Shape.
func (s Corner) Outline(bounds Rect) *Outline {
	w, h := bounds.Width(), bounds.Height()
	warnOversizedRadius("Corner", s.Radius, w, h)

	o := NewOutline()
	roundedRing(o, w, h, s.Radius, 0)
	return place(o, bounds)
}

// HollowCorner is a rounded rectangular ring of the given stroke width.
// Only the band between the outer and inner rounded rectangles is
// inside the outline under the even-odd rule.
type HollowCorner struct {
	Radius      float64
	StrokeWidth float64
}

// NewHollowCorner returns a rounded ring shape. The stroke width must be
// positive and must not exceed the radius.
func NewHollowCorner(radius, strokeWidth float64) (Shape, error) {
	s := HollowCorner{Radius: radius, StrokeWidth: strokeWidth}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate implements Shape.
func (s HollowCorner) Validate() error {
	if err := checkNonNegative("HollowCorner", "radius", s.Radius); err != nil {
		return err
	}
	if err := checkPositive("HollowCorner", "strokeWidth", s.StrokeWidth); err != nil {
		return err
	}
	if s.StrokeWidth > s.Radius {
		return shapeError("HollowCorner", "strokeWidth", s.StrokeWidth, "must not exceed radius")
	}
	return nil
}

// Outline implements Shape. The inner ring runs clockwise and the outer
// ring counter-clockwise.
func (s HollowCorner) Outline(bounds Rect) *Outline {
	w, h := bounds.Width(), bounds.Height()
	warnOversizedRadius("HollowCorner", s.Radius, w, h)

	inner := NewOutline()
	roundedRing(inner, w, h, s.Radius, s.StrokeWidth)

	outer := NewOutline()
	roundedRing(outer, w, h, s.Radius, 0)

	o := NewOutline()
	o.SetRule(EvenOdd)
	o.Append(inner)
	o.Append(outer.Reversed())
	return place(o, bounds)
}

// roundedRing adds a closed clockwise rounded rectangle inset by inset from
// the (0, 0, w, h) frame. The arc centers stay at distance r from the frame
// edges, so the ring's corner radius is r-inset.
func roundedRing(o *Outline, w, h, r, inset float64) {
	rr := r - inset
	o.MoveTo(r, inset)
	o.ArcTo(w-r, r, rr, -math.Pi/2, 0, true)
	o.ArcTo(w-r, h-r, rr, 0, math.Pi/2, true)
	o.ArcTo(r, h-r, rr, math.Pi/2, math.Pi, true)
	o.ArcTo(r, r, rr, -math.Pi, -math.Pi/2, true)
	o.Close()
}

func warnOversizedRadius(op string, radius, w, h float64) {
	if w > 0 && h > 0 && radius > math.Min(w, h)/2 {
		Logger().Warn("shapeview: corner radius exceeds half the shorter side",
			"shape", op, "radius", radius, "width", w, "height", h)
	}
}
