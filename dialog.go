package shapeview

import "math"

// ArrowEdge selects the edge of a dialog that carries the arrow.
type ArrowEdge uint8

const (
	ArrowTop ArrowEdge = iota
	ArrowBottom
	ArrowLeft
	ArrowRight
)

// String returns the edge name.
func (e ArrowEdge) String() string {
	switch e {
	case ArrowTop:
		return "Top"
	case ArrowBottom:
		return "Bottom"
	case ArrowLeft:
		return "Left"
	case ArrowRight:
		return "Right"
	default:
		return unknownStr
	}
}

// DialogArrow describes the triangular notch of a dialog bubble.
//
// Width is the notch base measured along the edge and Height is how far the
// apex protrudes out of the body. Center is the position of the apex along
// the edge: an x coordinate for top and bottom arrows, a y coordinate for
// left and right arrows.
type DialogArrow struct {
	Edge   ArrowEdge
	Center float64
	Width  float64
	Height float64
}

// Dialog is a speech bubble: a rounded body with a triangular arrow. The
// body is the bounds minus the arrow height on the arrow edge.
type Dialog struct {
	Radius float64
	Arrow  DialogArrow
}

// NewDialog returns a speech bubble shape.
func NewDialog(radius float64, arrow DialogArrow) (Shape, error) {
	s := Dialog{Radius: radius, Arrow: arrow}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate implements Shape.
func (s Dialog) Validate() error {
	if err := checkNonNegative("Dialog", "radius", s.Radius); err != nil {
		return err
	}
	if s.Arrow.Edge > ArrowRight {
		return shapeError("Dialog", "edge", float64(s.Arrow.Edge), "unknown arrow edge")
	}
	if err := checkFinite("Dialog", "center", s.Arrow.Center); err != nil {
		return err
	}
	if err := checkNonNegative("Dialog", "arrowWidth", s.Arrow.Width); err != nil {
		return err
	}
	return checkNonNegative("Dialog", "arrowHeight", s.Arrow.Height)
}

// Outline implements Shape. Points are emitted clockwise starting on the
// top edge.
func (s Dialog) Outline(bounds Rect) *Outline {
	w, h := bounds.Width(), bounds.Height()
	r := s.Radius
	c := s.Arrow.Center
	aw, ah := s.Arrow.Width/2, s.Arrow.Height

	o := NewOutline()
	switch s.Arrow.Edge {
	case ArrowTop:
		o.MoveTo(r, ah)
		o.LineTo(c-aw, ah)
		o.LineTo(c, 0)
		o.LineTo(c+aw, ah)
		o.ArcTo(w-r, ah+r, r, -math.Pi/2, 0, true)
		o.ArcTo(w-r, h-r, r, 0, math.Pi/2, true)
		o.ArcTo(r, h-r, r, math.Pi/2, math.Pi, true)
		o.ArcTo(r, ah+r, r, math.Pi, 3*math.Pi/2, true)
	case ArrowRight:
		o.MoveTo(r, 0)
		o.ArcTo(w-ah-r, r, r, -math.Pi/2, 0, true)
		o.LineTo(w-ah, c-aw)
		o.LineTo(w, c)
		o.LineTo(w-ah, c+aw)
		o.ArcTo(w-ah-r, h-r, r, 0, math.Pi/2, true)
		o.ArcTo(r, h-r, r, math.Pi/2, math.Pi, true)
		o.ArcTo(r, r, r, math.Pi, 3*math.Pi/2, true)
	case ArrowBottom:
		o.MoveTo(r, 0)
		o.ArcTo(w-r, r, r, -math.Pi/2, 0, true)
		o.ArcTo(w-r, h-ah-r, r, 0, math.Pi/2, true)
		o.LineTo(c+aw, h-ah)
		o.LineTo(c, h)
		o.LineTo(c-aw, h-ah)
		o.ArcTo(r, h-ah-r, r, math.Pi/2, math.Pi, true)
		o.ArcTo(r, r, r, math.Pi, 3*math.Pi/2, true)
	case ArrowLeft:
		o.MoveTo(ah+r, 0)
		o.ArcTo(w-r, r, r, -math.Pi/2, 0, true)
		o.ArcTo(w-r, h-r, r, 0, math.Pi/2, true)
		o.ArcTo(ah+r, h-r, r, math.Pi/2, math.Pi, true)
		o.LineTo(ah, c+aw)
		o.LineTo(0, c)
		o.LineTo(ah, c-aw)
		o.ArcTo(ah+r, r, r, math.Pi, 3*math.Pi/2, true)
	}
	o.Close()
	return place(o, bounds)
}

// CuteCorner selects the bottom corner that carries a cute dialog's tail.
type CuteCorner uint8

const (
	LeftBottom CuteCorner = iota
	RightBottom
)

// String returns the corner name.
func (c CuteCorner) String() string {
	switch c {
	case LeftBottom:
		return "LeftBottom"
	case RightBottom:
		return "RightBottom"
	default:
		return unknownStr
	}
}

// CuteArrow describes the curved tail of a cute dialog. The tip sits at the
// bottom corner of the bounds; Width and Height size the tail's base.
type CuteArrow struct {
	Corner CuteCorner
	Width  float64
	Height float64
}

// CuteDialog is a speech bubble whose tail curves into a bottom corner.
type CuteDialog struct {
	Radius float64
	Arrow  CuteArrow
}

// NewCuteDialog returns a speech bubble with a curved tail.
func NewCuteDialog(radius float64, arrow CuteArrow) (Shape, error) {
	s := CuteDialog{Radius: radius, Arrow: arrow}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate implements Shape.
func (s CuteDialog) Validate() error {
	if err := checkNonNegative("CuteDialog", "radius", s.Radius); err != nil {
		return err
	}
	if s.Arrow.Corner > RightBottom {
		return shapeError("CuteDialog", "corner", float64(s.Arrow.Corner), "unknown corner")
	}
	if err := checkNonNegative("CuteDialog", "arrowWidth", s.Arrow.Width); err != nil {
		return err
	}
	return checkNonNegative("CuteDialog", "arrowHeight", s.Arrow.Height)
}

// Outline implements Shape.
func (s CuteDialog) Outline(bounds Rect) *Outline {
	w, h := bounds.Width(), bounds.Height()
	r := s.Radius
	aw, ah := s.Arrow.Width, s.Arrow.Height

	o := NewOutline()
	switch s.Arrow.Corner {
	case LeftBottom:
		o.MoveTo(r, 0)
		o.ArcTo(w-r, r, r, -math.Pi/2, 0, true)
		o.ArcTo(w-r, h-r-ah, r, 0, math.Pi/2, true)
		o.LineTo(aw, h-ah)
		o.CubicTo(aw/2, h-ah, 0, h-ah/2, 0, h)
		o.ArcTo(r, r, r, -math.Pi, -math.Pi/2, true)
	case RightBottom:
		o.MoveTo(r, 0)
		o.ArcTo(w-r, r, r, -math.Pi/2, 0, true)
		o.LineTo(w, h)
		o.CubicTo(w, h-ah/2, w-aw/2, h-ah, w-aw, h-ah)
		o.ArcTo(r, h-ah-r, r, math.Pi/2, math.Pi, true)
		o.ArcTo(r, r, r, -math.Pi, -math.Pi/2, true)
	}
	o.Close()
	return place(o, bounds)
}
