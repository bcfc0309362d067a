package shapeview

import "math"

// Affine is a 2D affine map in row-major form:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the map that leaves every point in place.
func Identity() Affine {
	return Affine{A: 1, E: 1}
}

// Translation returns the map moving every point by d.
func Translation(d Point) Affine {
	return Affine{A: 1, C: d.X, E: 1, F: d.Y}
}

// Scaling returns the map scaling about the origin.
func Scaling(sx, sy float64) Affine {
	return Affine{A: sx, E: sy}
}

// Rotation returns the map rotating about the origin by angle radians.
// Positive angles turn clockwise on screen.
func Rotation(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{A: cos, B: -sin, D: sin, E: cos}
}

// Then returns the map that applies m first and next second.
func (m Affine) Then(next Affine) Affine {
	return Affine{
		A: next.A*m.A + next.B*m.D,
		B: next.A*m.B + next.B*m.E,
		C: next.A*m.C + next.B*m.F + next.C,
		D: next.D*m.A + next.E*m.D,
		E: next.D*m.B + next.E*m.E,
		F: next.D*m.C + next.E*m.F + next.F,
	}
}

// Apply maps a point.
func (m Affine) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// Inverse returns the inverse map. ok is false for singular maps.
func (m Affine) Inverse() (inv Affine, ok bool) {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) < 1e-12 {
		return Affine{}, false
	}
	invDet := 1 / det
	return Affine{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}, true
}

// IsIdentity reports whether m leaves every point in place.
func (m Affine) IsIdentity() bool {
	return m == Identity()
}

// IsTranslation reports whether m only moves points.
func (m Affine) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// Transform returns a copy of the outline mapped by m. Translations keep
// arcs as arcs; any other map converts them to cubic curves, which affine
// maps carry exactly.
func (o *Outline) Transform(m Affine) *Outline {
	if m.IsTranslation() {
		return o.Translate(Pt(m.C, m.F))
	}

	src := o.Cubics()
	result := NewOutline()
	result.rule = o.rule
	for _, e := range src.elements {
		switch e := e.(type) {
		case MoveTo:
			p := m.Apply(e.Point)
			result.MoveTo(p.X, p.Y)
		case LineTo:
			p := m.Apply(e.Point)
			result.LineTo(p.X, p.Y)
		case CubicTo:
			c1, c2, p := m.Apply(e.Control1), m.Apply(e.Control2), m.Apply(e.Point)
			result.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
		case Close:
			result.Close()
		}
	}
	return result
}
