package shapeview

import (
	"math"
	"testing"
)

const epsilon = 1e-10

func pointsEqual(p1, p2 Point, eps float64) bool {
	return math.Abs(p1.X-p2.X) < eps && math.Abs(p1.Y-p2.Y) < eps
}

// -------------------------------------------------------------------
// Rect Tests
// -------------------------------------------------------------------

func TestRect_NewRect(t *testing.T) {
	tests := []struct {
		name      string
		p1, p2    Point
		expectMin Point
		expectMax Point
	}{
		{
			name: "normal order",
			p1:   Pt(0, 0), p2: Pt(10, 10),
			expectMin: Pt(0, 0), expectMax: Pt(10, 10),
		},
		{
			name: "reversed order",
			p1:   Pt(10, 10), p2: Pt(0, 0),
			expectMin: Pt(0, 0), expectMax: Pt(10, 10),
		},
		{
			name: "mixed",
			p1:   Pt(5, 0), p2: Pt(0, 5),
			expectMin: Pt(0, 0), expectMax: Pt(5, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRect(tt.p1, tt.p2)
			if !pointsEqual(r.Min, tt.expectMin, epsilon) {
				t.Errorf("Min = %v, want %v", r.Min, tt.expectMin)
			}
			if !pointsEqual(r.Max, tt.expectMax, epsilon) {
				t.Errorf("Max = %v, want %v", r.Max, tt.expectMax)
			}
		})
	}
}

func TestRect_Union(t *testing.T) {
	r1 := NewRect(Pt(0, 0), Pt(5, 5))
	r2 := NewRect(Pt(3, 3), Pt(10, 10))
	u := r1.Union(r2)

	if !pointsEqual(u.Min, Pt(0, 0), epsilon) {
		t.Errorf("Union Min = %v, want (0, 0)", u.Min)
	}
	if !pointsEqual(u.Max, Pt(10, 10), epsilon) {
		t.Errorf("Union Max = %v, want (10, 10)", u.Max)
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(Pt(0, 0), Pt(10, 10))

	tests := []struct {
		name   string
		p      Point
		expect bool
	}{
		{"inside", Pt(5, 5), true},
		{"corner", Pt(0, 0), true},
		{"edge", Pt(5, 0), true},
		{"outside", Pt(15, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := r.Contains(tt.p)
			if result != tt.expect {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, result, tt.expect)
			}
		})
	}
}

func TestRect_LocalAndOutset(t *testing.T) {
	r := RectXYWH(20, 30, 100, 50)

	local := r.Local()
	if local.Min != (Point{}) || local.Width() != 100 || local.Height() != 50 {
		t.Errorf("Local() = %v, want 100x50 at origin", local)
	}

	out := r.Outset(5)
	if out.Width() != 110 || out.Height() != 60 || !pointsEqual(out.Min, Pt(15, 25), epsilon) {
		t.Errorf("Outset(5) = %v", out)
	}
	if !RectXYWH(0, 0, 10, 0).IsEmpty() {
		t.Error("zero-height rect must be empty")
	}
}

// -------------------------------------------------------------------
// CubicBez Tests
// -------------------------------------------------------------------

func TestCubicBez_Eval(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 10), P2: Pt(10, 10), P3: Pt(10, 0)}

	tests := []struct {
		name   string
		t      float64
		expect Point
	}{
		{"t=0", 0, Pt(0, 0)},
		{"t=1", 1, Pt(10, 0)},
		{"t=0.5", 0.5, Pt(5, 7.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Eval(tt.t)
			if !pointsEqual(result, tt.expect, epsilon) {
				t.Errorf("Eval(%v) = %v, want %v", tt.t, result, tt.expect)
			}
		})
	}
}

func TestCubicBez_Subdivide(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 10), P2: Pt(10, 10), P3: Pt(10, 0)}
	c1, c2 := c.Subdivide()

	if !pointsEqual(c1.P3, c2.P0, epsilon) {
		t.Errorf("Subdivision junction: c1.P3=%v != c2.P0=%v", c1.P3, c2.P0)
	}

	for i := 0; i <= 10; i++ {
		tt := float64(i) / 10.0
		original := c.Eval(tt)

		var subdivided Point
		if tt <= 0.5 {
			subdivided = c1.Eval(tt * 2)
		} else {
			subdivided = c2.Eval((tt - 0.5) * 2)
		}

		if !pointsEqual(original, subdivided, 1e-9) {
			t.Errorf("Mismatch at t=%v: original=%v, subdivided=%v", tt, original, subdivided)
		}
	}
}

func TestCubicBez_Extrema(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 1), P2: Pt(1, 1), P3: Pt(1, 0)}
	extrema := c.Extrema()

	if len(extrema) != 1 || math.Abs(extrema[0]-0.5) > 1e-9 {
		t.Errorf("Extrema() = %v, want [0.5]", extrema)
	}
}

func TestCubicBez_BoundingBox(t *testing.T) {
	c := CubicBez{P0: Pt(0, 0), P1: Pt(0, 10), P2: Pt(10, 10), P3: Pt(10, 0)}
	bbox := c.BoundingBox()

	if math.Abs(bbox.Max.Y-7.5) > 1e-9 {
		t.Errorf("BoundingBox max Y = %v, want 7.5", bbox.Max.Y)
	}
	for i := 0; i <= 100; i++ {
		tt := float64(i) / 100.0
		p := c.Eval(tt)
		if !bbox.Outset(1e-9).Contains(p) {
			t.Errorf("BoundingBox should contain point at t=%v: %v", tt, p)
		}
	}
}

func TestArcCubics(t *testing.T) {
	tests := []struct {
		name     string
		sweep    float64
		segments int
	}{
		{"quarter", math.Pi / 2, 1},
		{"half clockwise", math.Pi, 2},
		{"full counter-clockwise", -2 * math.Pi, 4},
		{"small", 0.1, 1},
	}

	center := Pt(50, 40)
	const radius = 30.0

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			curves := arcCubics(center, radius, 0.3, tt.sweep)
			if len(curves) != tt.segments {
				t.Fatalf("got %d segments, want %d", len(curves), tt.segments)
			}
			if !pointsEqual(curves[0].P0, Polar(center, radius, 0.3), 1e-9) {
				t.Errorf("start = %v", curves[0].P0)
			}
			if end := curves[len(curves)-1].P3; !pointsEqual(end, Polar(center, radius, 0.3+tt.sweep), 1e-9) {
				t.Errorf("end = %v", end)
			}
			for _, c := range curves {
				for i := 0; i <= 8; i++ {
					d := c.Eval(float64(i) / 8).Distance(center)
					if math.Abs(d-radius) > radius*3e-4 {
						t.Errorf("point off circle: distance %v, want %v", d, radius)
					}
				}
			}
		})
	}

	if arcCubics(center, radius, 0, 0) != nil {
		t.Error("zero sweep must produce no curves")
	}
}
