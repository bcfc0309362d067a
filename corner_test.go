package shapeview

import (
	"errors"
	"math"
	"testing"
)

func TestCornerOutline(t *testing.T) {
	bounds := RectXYWH(0, 0, 100, 50)
	o := Corner{Radius: 10}.Outline(bounds)

	if !o.IsClosed() {
		t.Fatal("corner outline must be closed")
	}
	if got := o.BoundingBox(); !got.Min.Near(bounds.Min, tolerance) || !got.Max.Near(bounds.Max, tolerance) {
		t.Errorf("BoundingBox() = %v, want %v", got, bounds)
	}
	want := 100*50 - (4-math.Pi)*100
	if got := o.Area(); math.Abs(got-want) > tolerance {
		t.Errorf("Area() = %v, want %v", got, want)
	}
	if o.Contains(Pt(1, 1)) {
		t.Error("rounded-off corner point should be outside")
	}
	if !o.Contains(Pt(50, 25)) {
		t.Error("center should be inside")
	}
}

func TestCornerZeroRadiusIsRect(t *testing.T) {
	o := Corner{}.Outline(RectXYWH(0, 0, 30, 20))
	if got := o.Area(); math.Abs(got-600) > tolerance {
		t.Errorf("Area() = %v, want 600", got)
	}
}

func TestCornerOffsetBounds(t *testing.T) {
	o := Corner{Radius: 4}.Outline(RectXYWH(10, 20, 30, 40))
	got := o.BoundingBox()
	if !got.Min.Near(Pt(10, 20), tolerance) || !got.Max.Near(Pt(40, 60), tolerance) {
		t.Errorf("BoundingBox() = %v", got)
	}
}

func TestHollowCornerRing(t *testing.T) {
	const w, h, r, s = 100.0, 60.0, 12.0, 3.0
	o := HollowCorner{Radius: r, StrokeWidth: s}.Outline(RectXYWH(0, 0, w, h))

	if o.Rule() != EvenOdd {
		t.Errorf("Rule() = %v, want EvenOdd", o.Rule())
	}
	if got := len(o.subpaths()); got != 2 {
		t.Fatalf("got %d subpaths, want inner and outer ring", got)
	}
	if !o.IsClosed() {
		t.Error("both rings must be closed")
	}

	outer := w*h - (4-math.Pi)*r*r
	inner := (w-2*s)*(h-2*s) - (4-math.Pi)*(r-s)*(r-s)
	if got := math.Abs(o.Area()); math.Abs(got-(outer-inner)) > tolerance {
		t.Errorf("|Area()| = %v, want ring area %v", got, outer-inner)
	}

	if o.Contains(Pt(w/2, h/2)) {
		t.Error("ring interior should be empty")
	}
	if !o.Contains(Pt(s/2, h/2)) {
		t.Error("point on the band should be inside")
	}
}

func TestCornerValidation(t *testing.T) {
	tests := []struct {
		name  string
		build func() (Shape, error)
	}{
		{"negative radius", func() (Shape, error) { return NewCorner(-1) }},
		{"NaN radius", func() (Shape, error) { return NewCorner(math.NaN()) }},
		{"zero stroke", func() (Shape, error) { return NewHollowCorner(10, 0) }},
		{"stroke beyond radius", func() (Shape, error) { return NewHollowCorner(10, 11) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.build()
			if !errors.Is(err, ErrInvalidShape) {
				t.Fatalf("error = %v, want ErrInvalidShape", err)
			}
			if s != nil {
				t.Errorf("shape = %v, want nil", s)
			}
			var pe *ParamError
			if !errors.As(err, &pe) || pe.Param == "" {
				t.Errorf("error %v is not a ParamError with a parameter name", err)
			}
		})
	}

	if _, err := NewHollowCorner(10, 10); err != nil {
		t.Errorf("stroke equal to radius should be accepted: %v", err)
	}
}
