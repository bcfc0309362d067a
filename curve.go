package shapeview

import (
	"math"
	"sort"
)

// CubicBez represents a cubic Bezier curve.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	return Point{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Lerp(c.P1, 0.5)
	p12 := c.P1.Lerp(c.P2, 0.5)
	p23 := c.P2.Lerp(c.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Reversed returns the same curve traversed from P3 to P0.
func (c CubicBez) Reversed() CubicBez {
	return CubicBez{P0: c.P3, P1: c.P2, P2: c.P1, P3: c.P0}
}

// Extrema returns parameter values in (0, 1) where either coordinate
// reaches a local extremum.
func (c CubicBez) Extrema() []float64 {
	result := make([]float64, 0, 4)

	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	result = append(result, unitQuadraticRoots(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	result = append(result, unitQuadraticRoots(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)

	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		p := c.Eval(t)
		bbox = bbox.Union(Rect{Min: p, Max: p})
	}
	return bbox
}

// flatness returns the squared deviation metric of the control points from
// the chord, scaled by 16.
func (c CubicBez) flatness() float64 {
	ux := 3.0*c.P1.X - 2.0*c.P0.X - c.P3.X
	uy := 3.0*c.P1.Y - 2.0*c.P0.Y - c.P3.Y
	vx := 3.0*c.P2.X - c.P0.X - 2.0*c.P3.X
	vy := 3.0*c.P2.Y - c.P0.Y - 2.0*c.P3.Y

	return math.Max(ux*ux+uy*uy, vx*vx+vy*vy)
}

// unitQuadraticRoots solves a*t^2 + b*t + c = 0 and returns the roots that
// fall strictly inside (0, 1).
func unitQuadraticRoots(a, b, c float64) []float64 {
	const eps = 1e-12
	var roots []float64
	keep := func(t float64) {
		if t > 0 && t < 1 {
			roots = append(roots, t)
		}
	}

	if math.Abs(a) < eps {
		if math.Abs(b) >= eps {
			keep(-c / b)
		}
		return roots
	}

	disc := b*b - 4*a*c
	if disc < 0 {
		return roots
	}
	sq := math.Sqrt(disc)
	keep((-b + sq) / (2 * a))
	if sq > 0 {
		keep((-b - sq) / (2 * a))
	}
	return roots
}

// arcCubics approximates a circular arc with cubic Bezier segments of at
// most 90 degrees each. sweep is signed: positive sweeps run toward
// increasing angles.
func arcCubics(center Point, radius, start, sweep float64) []CubicBez {
	if sweep == 0 || radius == 0 {
		return nil
	}

	const maxAngle = math.Pi / 2
	n := int(math.Ceil(math.Abs(sweep)/maxAngle - 1e-9))
	if n < 1 {
		n = 1
	}
	step := sweep / float64(n)

	// Control point distance for an arc of angle step:
	// k = 4/3 * tan(step/4)
	k := 4.0 / 3.0 * math.Tan(step/4)

	curves := make([]CubicBez, 0, n)
	for i := 0; i < n; i++ {
		a1 := start + float64(i)*step
		a2 := a1 + step
		cos1, sin1 := math.Cos(a1), math.Sin(a1)
		cos2, sin2 := math.Cos(a2), math.Sin(a2)

		p0 := Pt(center.X+radius*cos1, center.Y+radius*sin1)
		p3 := Pt(center.X+radius*cos2, center.Y+radius*sin2)
		curves = append(curves, CubicBez{
			P0: p0,
			P1: Pt(p0.X-k*radius*sin1, p0.Y+k*radius*cos1),
			P2: Pt(p3.X+k*radius*sin2, p3.Y-k*radius*cos2),
			P3: p3,
		})
	}
	return curves
}
