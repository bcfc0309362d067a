package shapeview

import "math"

// Stripe fills the bounds with parallel bands of the given width separated
// by gaps of the same width. Angle is the band direction in radians within
// [0, π]: 0 and π give horizontal bands, π/2 vertical bands.
type Stripe struct {
	Width float64
	Angle float64
}

// Defaults used when a scene leaves stripe parameters unset.
const (
	DefaultStripeWidth = 5
	DefaultStripeAngle = math.Pi / 4
)

// angleSnap is the distance within which an angle is treated as exactly
// horizontal or vertical. tan and its reciprocal blow up near these.
const angleSnap = 1e-9

// NewStripe returns a striped shape.
func NewStripe(width, angle float64) (Shape, error) {
	s := Stripe{Width: width, Angle: angle}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate implements Shape.
func (s Stripe) Validate() error {
	if err := checkPositive("Stripe", "width", s.Width); err != nil {
		return err
	}
	if err := checkFinite("Stripe", "angle", s.Angle); err != nil {
		return err
	}
	if s.Angle < 0 || s.Angle > math.Pi {
		return shapeError("Stripe", "angle", s.Angle, "must be within [0, π]")
	}
	return nil
}

// Outline implements Shape. Each band is one closed subpath clipped to the
// bounds, so the last band may be narrower than Width.
func (s Stripe) Outline(bounds Rect) *Outline {
	local := bounds.Local()
	o := NewOutline()
	o.SetRule(EvenOdd)

	for _, band := range s.bands(local.Width(), local.Height()) {
		poly := clipPolygon(band, local)
		if len(poly) < 3 || math.Abs(polygonArea(poly)) < 1e-12 {
			continue
		}
		o.MoveTo(poly[0].X, poly[0].Y)
		for _, p := range poly[1:] {
			o.LineTo(p.X, p.Y)
		}
		o.Close()
	}
	return place(o, bounds)
}

// bands returns the unclipped band quadrilaterals covering (0, 0, w, h),
// each wound clockwise.
func (s Stripe) bands(w, h float64) [][]Point {
	width := s.Width
	a := s.Angle
	var bands [][]Point

	switch {
	case a <= angleSnap || a >= math.Pi-angleSnap:
		for y := 0.0; y < h; y += 2 * width {
			bands = append(bands, []Point{{0, y}, {w, y}, {w, y + width}, {0, y + width}})
		}

	case math.Abs(a-math.Pi/2) <= angleSnap:
		for x := 0.0; x < w; x += 2 * width {
			bands = append(bands, []Point{{x, 0}, {x + width, 0}, {x + width, h}, {x, h}})
		}

	case a < math.Pi/2:
		// Bands run from the top edge down to the left edge.
		uw := width / math.Sin(a)
		uh := width / math.Cos(a)
		extent := w + h/math.Tan(a)
		for cw, ch := 0.0, 0.0; cw < extent; cw, ch = cw+2*uw, ch+2*uh {
			bands = append(bands, []Point{{cw, 0}, {cw + uw, 0}, {0, ch + uh}, {0, ch}})
		}

	default:
		// Mirror image: bands run from the bottom edge up to the left edge.
		uw := width / math.Sin(a)
		uh := width / math.Cos(a)
		extent := w - h/math.Tan(a)
		for cw, ch := 0.0, h; cw < extent; cw, ch = cw+2*uw, ch+2*uh {
			bands = append(bands, []Point{{cw, h}, {0, ch}, {0, ch + uh}, {cw + uw, h}})
		}
	}
	return bands
}

// clipPolygon clips a convex polygon to r (Sutherland-Hodgman).
func clipPolygon(poly []Point, r Rect) []Point {
	edges := []struct {
		inside func(p Point) bool
		cross  func(a, b Point) Point
	}{
		{
			func(p Point) bool { return p.X >= r.Min.X },
			func(a, b Point) Point { return a.Lerp(b, (r.Min.X-a.X)/(b.X-a.X)) },
		},
		{
			func(p Point) bool { return p.X <= r.Max.X },
			func(a, b Point) Point { return a.Lerp(b, (r.Max.X-a.X)/(b.X-a.X)) },
		},
		{
			func(p Point) bool { return p.Y >= r.Min.Y },
			func(a, b Point) Point { return a.Lerp(b, (r.Min.Y-a.Y)/(b.Y-a.Y)) },
		},
		{
			func(p Point) bool { return p.Y <= r.Max.Y },
			func(a, b Point) Point { return a.Lerp(b, (r.Max.Y-a.Y)/(b.Y-a.Y)) },
		},
	}

	out := poly
	for _, e := range edges {
		if len(out) == 0 {
			break
		}
		in := out
		out = make([]Point, 0, len(in)+2)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur):
				if !e.inside(prev) {
					out = append(out, e.cross(prev, cur))
				}
				out = append(out, cur)
			case e.inside(prev):
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return dedupe(out)
}

// dedupe drops consecutive duplicate vertices, including a duplicate of the
// first vertex at the end.
func dedupe(poly []Point) []Point {
	out := poly[:0:0]
	for _, p := range poly {
		if len(out) > 0 && out[len(out)-1].Near(p, pointEpsilon) {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[len(out)-1].Near(out[0], pointEpsilon) {
		out = out[:len(out)-1]
	}
	return out
}

// polygonArea returns the signed shoelace area; positive for clockwise
// winding in y-down coordinates.
func polygonArea(poly []Point) float64 {
	var sum float64
	prev := poly[len(poly)-1]
	for _, p := range poly {
		sum += prev.X*p.Y - p.X*prev.Y
		prev = p
	}
	return sum / 2
}
