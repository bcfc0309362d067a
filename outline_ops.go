package shapeview

import "math"

// Outline queries: area, winding number, containment testing, bounding box
// computation and flattening.

// DefaultTolerance is the flattening tolerance used when none is given.
const DefaultTolerance = 0.1

// Area returns the signed area enclosed by the outline. It is positive for
// subpaths traversed clockwise on screen and negative otherwise. Open
// subpaths are treated as implicitly closed, the way they are filled.
// Lines, arcs and cubic curves contribute exactly (Green's theorem).
func (o *Outline) Area() float64 {
	var area float64

	for _, sp := range o.subpaths() {
		current := sp.start
		for _, e := range sp.elems {
			switch e := e.(type) {
			case LineTo:
				area += lineArea(current, e.Point)
			case CubicTo:
				area += cubicArea(current, e.Control1, e.Control2, e.Point)
			case ArcTo:
				area += arcArea(e)
			}
			current = endPoint(e)
		}
		area += lineArea(current, sp.start)
	}

	return area
}

// lineArea computes the contribution of a line segment to the signed area.
func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

// cubicArea computes the contribution of a cubic Bezier to the signed area.
func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
		3*p2.X*(-p0.Y-p1.Y+2*p3.Y) +
		p3.X*(-p0.Y-3*p1.Y-6*p2.Y)) / 20.0
}

// arcArea computes the contribution of a circular arc to the signed area:
// 1/2 * integral of (x dy - y dx) over the arc.
func arcArea(a ArcTo) float64 {
	t0 := a.Start
	t1 := a.Start + a.Sweep()
	r := a.Radius
	c := a.Center
	return 0.5 * (r*r*(t1-t0) +
		r*(c.X*(math.Sin(t1)-math.Sin(t0))-c.Y*(math.Cos(t1)-math.Cos(t0))))
}

// Winding returns the winding number of a point relative to the outline.
// Uses ray casting with a horizontal ray to the right over the flattened
// outline.
func (o *Outline) Winding(pt Point) int {
	var winding int
	for _, poly := range o.Subpaths(DefaultTolerance) {
		n := len(poly)
		for i := 0; i < n; i++ {
			winding += lineWinding(poly[i], poly[(i+1)%n], pt)
		}
	}
	return winding
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}

// Contains tests if a point is inside the outline under its fill rule.
func (o *Outline) Contains(pt Point) bool {
	w := o.Winding(pt)
	if o.rule == EvenOdd {
		return w%2 != 0
	}
	return w != 0
}

// BoundingBox returns the tight axis-aligned bounding box of the outline.
// Uses arc and curve extrema for accuracy.
func (o *Outline) BoundingBox() Rect {
	if len(o.elements) == 0 {
		return Rect{}
	}

	bbox := Rect{
		Min: Point{X: math.MaxFloat64, Y: math.MaxFloat64},
		Max: Point{X: -math.MaxFloat64, Y: -math.MaxFloat64},
	}

	var current Point
	for _, e := range o.elements {
		switch e := e.(type) {
		case MoveTo:
			bbox = expandBBox(bbox, e.Point)
		case LineTo:
			bbox = expandBBox(bbox, e.Point)
		case CubicTo:
			bbox = bbox.Union(CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}.BoundingBox())
		case ArcTo:
			bbox = bbox.Union(arcBBox(e))
		case Close:
			continue
		}
		current = endPoint(e)
	}

	return bbox
}

// expandBBox expands the bounding box to include the point.
func expandBBox(bbox Rect, pt Point) Rect {
	return Rect{
		Min: Point{X: math.Min(bbox.Min.X, pt.X), Y: math.Min(bbox.Min.Y, pt.Y)},
		Max: Point{X: math.Max(bbox.Max.X, pt.X), Y: math.Max(bbox.Max.Y, pt.Y)},
	}
}

// arcBBox returns the bounding box of an arc: its end points plus every
// axis extreme the sweep passes through.
func arcBBox(a ArcTo) Rect {
	sp, ep := a.StartPoint(), a.EndPoint()
	bbox := NewRect(sp, ep)

	lo := math.Min(a.Start, a.Start+a.Sweep())
	hi := math.Max(a.Start, a.Start+a.Sweep())
	const quarter = math.Pi / 2
	for k := math.Ceil(lo / quarter); k*quarter <= hi; k++ {
		bbox = expandBBox(bbox, Polar(a.Center, a.Radius, k*quarter))
	}
	return bbox
}

// Subpaths flattens the outline into one polyline per subpath. Each
// polyline starts at the subpath's start point and is implicitly closed.
// tolerance is the maximum distance from the curve; values <= 0 select
// DefaultTolerance.
func (o *Outline) Subpaths(tolerance float64) [][]Point {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	tolSq := tolerance * tolerance

	var polys [][]Point
	for _, sp := range o.subpaths() {
		poly := make([]Point, 0, len(sp.elems)*4+1)
		poly = append(poly, sp.start)
		current := sp.start
		emit := func(pt Point) { poly = append(poly, pt) }

		for _, e := range sp.elems {
			switch e := e.(type) {
			case LineTo:
				emit(e.Point)
			case CubicTo:
				flattenCubic(CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}, tolSq, emit)
			case ArcTo:
				for _, c := range arcCubics(e.Center, e.Radius, e.Start, e.Sweep()) {
					flattenCubic(c, tolSq, emit)
				}
			}
			current = endPoint(e)
		}
		polys = append(polys, poly)
	}
	return polys
}

// flattenCubic recursively subdivides the cubic until it is flat enough.
func flattenCubic(c CubicBez, toleranceSq float64, fn func(pt Point)) {
	if c.flatness() <= toleranceSq*16 {
		fn(c.P3)
		return
	}

	c1, c2 := c.Subdivide()
	flattenCubic(c1, toleranceSq, fn)
	flattenCubic(c2, toleranceSq, fn)
}

// Cubics returns a copy of the outline with every arc replaced by cubic
// Bezier segments, for consumers that have no native arc primitive.
func (o *Outline) Cubics() *Outline {
	result := NewOutline()
	result.rule = o.rule

	for _, e := range o.elements {
		switch e := e.(type) {
		case MoveTo:
			result.MoveTo(e.Point.X, e.Point.Y)
		case Close:
			result.Close()
		case ArcTo:
			for _, c := range arcCubics(e.Center, e.Radius, e.Start, e.Sweep()) {
				result.push(CubicTo{Control1: c.P1, Control2: c.P2, Point: c.P3})
			}
		default:
			result.push(e)
		}
	}
	return result
}

// Points returns the on-curve points of the outline in order: every MoveTo
// point followed by the end point of each drawing command. Close adds none.
func (o *Outline) Points() []Point {
	pts := make([]Point, 0, len(o.elements))
	for _, e := range o.elements {
		if _, ok := e.(Close); ok {
			continue
		}
		pts = append(pts, endPoint(e))
	}
	return pts
}

// Flatten returns a copy of the outline made of straight segments only,
// with curves approximated within tolerance. Subpaths keep their closed
// state and the fill rule is preserved.
func (o *Outline) Flatten(tolerance float64) *Outline {
	result := NewOutline()
	result.rule = o.rule

	subpaths := o.subpaths()
	for i, poly := range o.Subpaths(tolerance) {
		result.MoveTo(poly[0].X, poly[0].Y)
		for _, pt := range poly[1:] {
			result.LineTo(pt.X, pt.Y)
		}
		if subpaths[i].closed {
			result.Close()
		}
	}
	return result
}
