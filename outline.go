package shapeview

import "math"

// FillRule selects how overlapping subpaths of an outline are filled.
type FillRule uint8

const (
	// NonZero fills every point with a non-zero winding number.
	NonZero FillRule = iota

	// EvenOdd fills every point crossed an odd number of times by a ray.
	// Outlines made of several closed rings (holes, inverted masks) use it.
	EvenOdd
)

// String returns the fill rule name.
func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "NonZero"
	case EvenOdd:
		return "EvenOdd"
	default:
		return unknownStr
	}
}

const unknownStr = "Unknown"

// Element represents a single command of an outline.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isElement() {}

// LineTo draws a straight segment to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isElement() {}

// ArcTo draws a circular arc around Center from angle Start to angle End
// (radians, 0 pointing right). Clockwise arcs run toward increasing angles,
// which is clockwise on screen because Y grows downward.
type ArcTo struct {
	Center    Point
	Radius    float64
	Start     float64
	End       float64
	Clockwise bool
}

func (ArcTo) isElement() {}

// Sweep returns the signed angle swept by the arc. It is positive for
// clockwise arcs and negative otherwise.
func (a ArcTo) Sweep() float64 {
	const twoPi = 2 * math.Pi
	d := a.End - a.Start
	if math.Abs(d) >= twoPi {
		if a.Clockwise {
			return twoPi
		}
		return -twoPi
	}
	if a.Clockwise {
		if d < 0 {
			d += twoPi
		}
		return d
	}
	if d > 0 {
		d -= twoPi
	}
	return d
}

// StartPoint returns the point where the arc begins.
func (a ArcTo) StartPoint() Point {
	return Polar(a.Center, a.Radius, a.Start)
}

// EndPoint returns the point where the arc ends.
func (a ArcTo) EndPoint() Point {
	return Polar(a.Center, a.Radius, a.Start+a.Sweep())
}

// reversed returns the arc traversed in the opposite direction.
func (a ArcTo) reversed() ArcTo {
	return ArcTo{Center: a.Center, Radius: a.Radius, Start: a.Start + a.Sweep(), End: a.Start, Clockwise: !a.Clockwise}
}

// CubicTo draws a cubic Bezier curve to Point.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isElement() {}

// Close closes the current subpath with a straight segment to its start.
type Close struct{}

func (Close) isElement() {}

// endPoint returns where a drawing element leaves the pen.
func endPoint(e Element) Point {
	switch e := e.(type) {
	case MoveTo:
		return e.Point
	case LineTo:
		return e.Point
	case CubicTo:
		return e.Point
	case ArcTo:
		return e.EndPoint()
	}
	return Point{}
}

// Outline is an ordered sequence of path commands describing one or more
// subpaths. Every subpath starts with a MoveTo; ArcTo inserts the connecting
// segment to the arc's start point itself, so each element has an explicit
// start point.
type Outline struct {
	elements  []Element
	rule      FillRule
	start     Point
	current   Point
	hasPoint  bool
	needsMove bool
}

// NewOutline creates a new empty outline using the non-zero fill rule.
func NewOutline() *Outline {
	return &Outline{
		elements: make([]Element, 0, 16),
	}
}

// Rule returns the fill rule of the outline.
func (o *Outline) Rule() FillRule {
	return o.rule
}

// SetRule sets the fill rule of the outline.
func (o *Outline) SetRule(rule FillRule) {
	o.rule = rule
}

// MoveTo starts a new subpath at (x, y).
func (o *Outline) MoveTo(x, y float64) {
	pt := Pt(x, y)
	o.elements = append(o.elements, MoveTo{Point: pt})
	o.start = pt
	o.current = pt
	o.hasPoint = true
	o.needsMove = false
}

// LineTo draws a line to (x, y). Without a current point it behaves like
// MoveTo.
func (o *Outline) LineTo(x, y float64) {
	if !o.beginSegment() {
		o.MoveTo(x, y)
		return
	}
	o.push(LineTo{Point: Pt(x, y)})
}

// ArcTo draws an arc of radius r around (cx, cy) from angle start to angle
// end. If the outline has a current point that differs from the arc's start,
// a straight segment joins them first; otherwise the arc starts a subpath.
func (o *Outline) ArcTo(cx, cy, r, start, end float64, clockwise bool) {
	arc := ArcTo{Center: Pt(cx, cy), Radius: r, Start: start, End: end, Clockwise: clockwise}
	sp := arc.StartPoint()
	if !o.beginSegment() {
		o.MoveTo(sp.X, sp.Y)
	} else if !o.current.Near(sp, pointEpsilon) {
		o.push(LineTo{Point: sp})
	}
	o.push(arc)
}

// CubicTo draws a cubic Bezier curve to (x, y) with control points
// (c1x, c1y) and (c2x, c2y).
func (o *Outline) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !o.beginSegment() {
		o.MoveTo(c1x, c1y)
	}
	o.push(CubicTo{Control1: Pt(c1x, c1y), Control2: Pt(c2x, c2y), Point: Pt(x, y)})
}

// Close closes the current subpath. Closing an already closed or empty
// subpath is a no-op.
func (o *Outline) Close() {
	if !o.hasPoint || o.needsMove {
		return
	}
	o.elements = append(o.elements, Close{})
	o.current = o.start
	o.needsMove = true
}

// Rect adds a closed rectangle subpath traversed clockwise.
func (o *Outline) Rect(r Rect) {
	o.MoveTo(r.Min.X, r.Min.Y)
	o.LineTo(r.Max.X, r.Min.Y)
	o.LineTo(r.Max.X, r.Max.Y)
	o.LineTo(r.Min.X, r.Max.Y)
	o.Close()
}

// Append adds all subpaths of other to the outline. The fill rule of o is
// kept.
func (o *Outline) Append(other *Outline) {
	if other == nil {
		return
	}
	for _, e := range other.elements {
		switch e := e.(type) {
		case MoveTo:
			o.MoveTo(e.Point.X, e.Point.Y)
		case Close:
			o.Close()
		default:
			if o.beginSegment() {
				o.push(e)
			}
		}
	}
}

// EnsureClosed closes the last subpath if it is still open.
func (o *Outline) EnsureClosed() {
	o.Close()
}

// Elements returns the outline commands.
func (o *Outline) Elements() []Element {
	return o.elements
}

// Len returns the number of commands.
func (o *Outline) Len() int {
	return len(o.elements)
}

// IsEmpty reports whether the outline has no commands.
func (o *Outline) IsEmpty() bool {
	return len(o.elements) == 0
}

// IsClosed reports whether every subpath of the outline is closed.
func (o *Outline) IsClosed() bool {
	if o.IsEmpty() {
		return false
	}
	for _, sp := range o.subpaths() {
		if !sp.closed {
			return false
		}
	}
	return true
}

// CurrentPoint returns the current pen position.
func (o *Outline) CurrentPoint() Point {
	return o.current
}

// HasCurrentPoint reports whether the outline has a current point.
func (o *Outline) HasCurrentPoint() bool {
	return o.hasPoint
}

// Clone creates a deep copy of the outline.
func (o *Outline) Clone() *Outline {
	result := *o
	result.elements = make([]Element, len(o.elements))
	copy(result.elements, o.elements)
	return &result
}

// Reversed returns a new outline with every subpath traversed in the
// opposite direction. Closed subpaths stay closed and keep their start point.
func (o *Outline) Reversed() *Outline {
	result := NewOutline()
	result.rule = o.rule

	for _, sp := range o.subpaths() {
		points := sp.points()
		last := points[len(points)-1]

		if sp.closed {
			result.MoveTo(sp.start.X, sp.start.Y)
			if !last.Near(sp.start, pointEpsilon) {
				result.push(LineTo{Point: last})
			}
		} else {
			result.MoveTo(last.X, last.Y)
		}

		for i := len(sp.elems) - 1; i >= 0; i-- {
			prev := points[i]
			switch e := sp.elems[i].(type) {
			case LineTo:
				result.push(LineTo{Point: prev})
			case CubicTo:
				result.push(CubicTo{Control1: e.Control2, Control2: e.Control1, Point: prev})
			case ArcTo:
				result.push(e.reversed())
			}
		}

		if sp.closed {
			result.Close()
		}
	}

	return result
}

// pointEpsilon is the distance below which two points are treated as equal
// when deciding whether a connecting segment is needed.
const pointEpsilon = 1e-9

// beginSegment prepares the outline for a drawing command and reports
// whether a current point exists.
func (o *Outline) beginSegment() bool {
	if !o.hasPoint {
		return false
	}
	if o.needsMove {
		o.MoveTo(o.current.X, o.current.Y)
	}
	return true
}

// push appends a drawing element and advances the current point.
func (o *Outline) push(e Element) {
	o.elements = append(o.elements, e)
	o.current = endPoint(e)
}

// subpath is one MoveTo-delimited run of drawing elements.
type subpath struct {
	start  Point
	elems  []Element
	closed bool
}

// points returns the start point followed by the end point of every element.
func (sp subpath) points() []Point {
	pts := make([]Point, 0, len(sp.elems)+1)
	pts = append(pts, sp.start)
	for _, e := range sp.elems {
		pts = append(pts, endPoint(e))
	}
	return pts
}

// subpaths splits the outline into its subpaths.
func (o *Outline) subpaths() []subpath {
	var result []subpath
	var cur *subpath

	for _, e := range o.elements {
		switch e := e.(type) {
		case MoveTo:
			if cur != nil {
				result = append(result, *cur)
			}
			cur = &subpath{start: e.Point}
		case Close:
			if cur != nil {
				cur.closed = true
				result = append(result, *cur)
				cur = nil
			}
		default:
			if cur != nil {
				cur.elems = append(cur.elems, e)
			}
		}
	}
	if cur != nil {
		result = append(result, *cur)
	}
	return result
}

// Translate returns a copy of the outline moved by d.
func (o *Outline) Translate(d Point) *Outline {
	result := NewOutline()
	result.rule = o.rule

	for _, e := range o.elements {
		switch e := e.(type) {
		case MoveTo:
			p := e.Point.Add(d)
			result.MoveTo(p.X, p.Y)
		case Close:
			result.Close()
		default:
			if result.beginSegment() {
				result.push(translateElement(e, d))
			}
		}
	}
	return result
}

func translateElement(e Element, d Point) Element {
	switch e := e.(type) {
	case LineTo:
		return LineTo{Point: e.Point.Add(d)}
	case CubicTo:
		return CubicTo{Control1: e.Control1.Add(d), Control2: e.Control2.Add(d), Point: e.Point.Add(d)}
	case ArcTo:
		e.Center = e.Center.Add(d)
		return e
	}
	return e
}
