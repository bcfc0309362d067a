package shapeview

import (
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGBA
		wantErr bool
	}{
		{in: "#fff", want: RGB(1, 1, 1)},
		{in: "000", want: RGB(0, 0, 0)},
		{in: "#ff000080", want: RGBA2(1, 0, 0, 128.0/255)},
		{in: "00FF00", want: RGB(0, 1, 0)},
		{in: "#f008", want: RGBA2(1, 0, 0, 136.0/255)},
		{in: "#12345", wantErr: true},
		{in: "#gg0000", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !colorNear(got, tt.want) {
				t.Errorf("ParseHex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexFallsBackToBlack(t *testing.T) {
	if got := Hex("nope"); got != Black {
		t.Errorf("Hex(invalid) = %+v, want black", got)
	}
}

func TestRGBA_Color(t *testing.T) {
	r, g, b, a := RGBA2(1, 0, 0, 0.5).Color().RGBA()
	if a == 0 || r == 0 || g != 0 || b != 0 {
		t.Errorf("Color().RGBA() = %d %d %d %d", r, g, b, a)
	}
	back := FromColor(RGB(0, 1, 0).Color())
	if !colorNear(back, RGB(0, 1, 0)) {
		t.Errorf("FromColor(Color()) = %+v, want green", back)
	}
}

func TestRGBA_IsTransparent(t *testing.T) {
	if !Transparent.IsTransparent() {
		t.Error("Transparent.IsTransparent() = false")
	}
	if Black.WithAlpha(0.01).IsTransparent() {
		t.Error("nearly transparent black reported as transparent")
	}
}

func colorNear(a, b RGBA) bool {
	const eps = 1e-3
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}
