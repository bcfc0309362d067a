package shapeview

import (
	"math"
	"testing"
)

func TestAffine_Apply(t *testing.T) {
	tests := []struct {
		name   string
		m      Affine
		in     Point
		expect Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translation", Translation(Pt(10, -5)), Pt(1, 1), Pt(11, -4)},
		{"scaling", Scaling(2, 3), Pt(1, 1), Pt(2, 3)},
		{"quarter turn", Rotation(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"scale then translate", Scaling(2, 2).Then(Translation(Pt(1, 1))), Pt(1, 1), Pt(3, 3)},
		{"translate then scale", Translation(Pt(1, 1)).Then(Scaling(2, 2)), Pt(1, 1), Pt(4, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Apply(tt.in); !pointsEqual(got, tt.expect, epsilon) {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.expect)
			}
		})
	}
}

func TestAffine_Inverse(t *testing.T) {
	m := Rotation(0.7).Then(Scaling(2, 0.5)).Then(Translation(Pt(3, -8)))
	inv, ok := m.Inverse()
	if !ok {
		t.Fatal("map should be invertible")
	}
	p := Pt(12, 5)
	if got := inv.Apply(m.Apply(p)); !pointsEqual(got, p, 1e-9) {
		t.Errorf("round trip = %v, want %v", got, p)
	}

	if _, ok := Scaling(0, 1).Inverse(); ok {
		t.Error("singular map must not invert")
	}
}

func TestOutline_Transform(t *testing.T) {
	corner, err := NewCorner(10)
	if err != nil {
		t.Fatal(err)
	}
	o := corner.Outline(RectXYWH(0, 0, 100, 60))
	area := o.Area()

	moved := o.Transform(Translation(Pt(5, 7)))
	if math.Abs(moved.Area()-area) > tolerance {
		t.Errorf("translated area = %v, want %v", moved.Area(), area)
	}
	if bb := moved.BoundingBox(); !pointsEqual(bb.Min, Pt(5, 7), 1e-9) {
		t.Errorf("translated bbox min = %v", bb.Min)
	}

	// Non-translations go through cubics, so compare against the cubic
	// approximation of the arcs.
	cubicArea := o.Cubics().Area()
	scaled := o.Transform(Scaling(2, 2))
	if math.Abs(scaled.Area()-4*cubicArea) > 1e-6 {
		t.Errorf("scaled area = %v, want %v", scaled.Area(), 4*cubicArea)
	}
	for _, e := range scaled.Elements() {
		if _, isArc := e.(ArcTo); isArc {
			t.Fatal("scaled outline must not keep arcs")
		}
	}

	rotated := o.Transform(Rotation(math.Pi / 3))
	if math.Abs(rotated.Area()-cubicArea) > 1e-6 {
		t.Errorf("rotated area = %v, want %v", rotated.Area(), cubicArea)
	}
	if rotated.Rule() != o.Rule() || !rotated.IsClosed() {
		t.Error("transform must keep the fill rule and closed subpaths")
	}
}
