package shapeview

import (
	"errors"
	"math"
	"testing"
)

// notch returns the points before and after the apex in outline order.
func notch(t *testing.T, o *Outline, apex Point) (before, after Point) {
	t.Helper()
	pts := o.Points()
	for i, p := range pts {
		if p.Near(apex, tolerance) {
			if i == 0 || i == len(pts)-1 {
				t.Fatalf("apex %v at outline boundary", apex)
			}
			return pts[i-1], pts[i+1]
		}
	}
	t.Fatalf("apex %v not found in %v", apex, pts)
	return Point{}, Point{}
}

func TestDialogArrowNotch(t *testing.T) {
	const w, h = 200.0, 100.0
	bounds := RectXYWH(0, 0, w, h)

	tests := []struct {
		name          string
		arrow         DialogArrow
		apex          Point
		before, after Point
	}{
		{
			name:   "right",
			arrow:  DialogArrow{Edge: ArrowRight, Center: 50, Width: 40, Height: 20},
			apex:   Pt(200, 50),
			before: Pt(180, 30),
			after:  Pt(180, 70),
		},
		{
			name:   "left",
			arrow:  DialogArrow{Edge: ArrowLeft, Center: 50, Width: 40, Height: 20},
			apex:   Pt(0, 50),
			before: Pt(20, 70),
			after:  Pt(20, 30),
		},
		{
			name:   "top",
			arrow:  DialogArrow{Edge: ArrowTop, Center: 100, Width: 30, Height: 15},
			apex:   Pt(100, 0),
			before: Pt(85, 15),
			after:  Pt(115, 15),
		},
		{
			name:   "bottom",
			arrow:  DialogArrow{Edge: ArrowBottom, Center: 100, Width: 30, Height: 15},
			apex:   Pt(100, 100),
			before: Pt(115, 85),
			after:  Pt(85, 85),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Dialog{Radius: 10, Arrow: tt.arrow}.Outline(bounds)
			if !o.IsClosed() {
				t.Fatal("dialog outline must be closed")
			}
			before, after := notch(t, o, tt.apex)
			if !before.Near(tt.before, tolerance) || !after.Near(tt.after, tolerance) {
				t.Errorf("notch = %v, apex, %v; want %v, apex, %v", before, after, tt.before, tt.after)
			}
			if o.Area() <= 0 {
				t.Errorf("Area() = %v, want clockwise (positive)", o.Area())
			}
			got := o.BoundingBox()
			if !got.Min.Near(bounds.Min, tolerance) || !got.Max.Near(bounds.Max, tolerance) {
				t.Errorf("BoundingBox() = %v, want %v", got, bounds)
			}
		})
	}
}

func TestDialogArea(t *testing.T) {
	// Body 180x100 with radius 10 plus a 40x20 triangle.
	o := Dialog{Radius: 10, Arrow: DialogArrow{Edge: ArrowRight, Center: 50, Width: 40, Height: 20}}.
		Outline(RectXYWH(0, 0, 200, 100))
	want := 180*100 - (4-math.Pi)*100 + 0.5*40*20
	if got := o.Area(); math.Abs(got-want) > tolerance {
		t.Errorf("Area() = %v, want %v", got, want)
	}
}

func TestCuteDialog(t *testing.T) {
	const w, h = 160.0, 90.0
	tests := []struct {
		name   string
		corner CuteCorner
		tip    Point
	}{
		{"left bottom", LeftBottom, Pt(0, h)},
		{"right bottom", RightBottom, Pt(w, h)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := CuteDialog{Radius: 12, Arrow: CuteArrow{Corner: tt.corner, Width: 20, Height: 15}}.
				Outline(RectXYWH(0, 0, w, h))
			if !o.IsClosed() {
				t.Fatal("cute dialog outline must be closed")
			}
			found := false
			for _, p := range o.Points() {
				if p.Near(tt.tip, tolerance) {
					found = true
				}
			}
			if !found {
				t.Errorf("tail tip %v not among outline points", tt.tip)
			}
			if o.Area() <= 0 {
				t.Errorf("Area() = %v, want positive", o.Area())
			}
			if !o.Contains(Pt(w/2, h/3)) {
				t.Error("body center should be inside")
			}
		})
	}
}

func TestDialogValidation(t *testing.T) {
	if _, err := NewDialog(5, DialogArrow{Edge: ArrowEdge(9)}); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("unknown edge error = %v", err)
	}
	if _, err := NewDialog(5, DialogArrow{Width: -1}); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("negative width error = %v", err)
	}
	if _, err := NewCuteDialog(-2, CuteArrow{}); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("negative radius error = %v", err)
	}
	if _, err := NewCuteDialog(5, CuteArrow{Corner: RightBottom, Width: 10, Height: 10}); err != nil {
		t.Errorf("valid cute dialog rejected: %v", err)
	}
}

func TestEnumStrings(t *testing.T) {
	if ArrowLeft.String() != "Left" || ArrowEdge(42).String() != unknownStr {
		t.Error("ArrowEdge.String mismatch")
	}
	if RightBottom.String() != "RightBottom" {
		t.Error("CuteCorner.String mismatch")
	}
}
