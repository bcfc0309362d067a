package shapeview

import "math"

// Star is a regular star polygon inscribed in the bounds. Outer vertices sit
// on a circle of radius bounds.Width()/2 around the bounds center; inner
// vertices sit at Extrusion from the center, halfway between neighbors.
type Star struct {
	Vertices  int
	Extrusion float64
}

// DefaultStarExtrusion is the inner radius used by the demo scenes.
const DefaultStarExtrusion = 10

// NewStar returns a star shape with the given number of outer vertices.
func NewStar(vertices int, extrusion float64) (Shape, error) {
	s := Star{Vertices: vertices, Extrusion: extrusion}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate implements Shape.
func (s Star) Validate() error {
	if s.Vertices < 3 {
		return shapeError("Star", "vertices", float64(s.Vertices), "must be at least 3")
	}
	return checkNonNegative("Star", "extrusion", s.Extrusion)
}

// Outline implements Shape. The first outer vertex points straight up and
// the outline alternates outer and inner vertices, 2*Vertices points in all.
func (s Star) Outline(bounds Rect) *Outline {
	c := bounds.Local().Center()
	outer := bounds.Width() / 2
	step := 2 * math.Pi / float64(s.Vertices)

	o := NewOutline()
	p := Polar(c, outer, -math.Pi/2)
	o.MoveTo(p.X, p.Y)
	for i := 0; i < s.Vertices; i++ {
		angle := -math.Pi/2 + float64(i)*step
		in := Polar(c, s.Extrusion, angle+step/2)
		o.LineTo(in.X, in.Y)
		if i < s.Vertices-1 {
			out := Polar(c, outer, angle+step)
			o.LineTo(out.X, out.Y)
		}
	}
	o.Close()
	return place(o, bounds)
}
