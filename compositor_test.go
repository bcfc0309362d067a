package shapeview

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var outlineCmp = cmp.AllowUnexported(Outline{})

func newTestCompositor(t *testing.T, opts ...Option) *Compositor {
	t.Helper()
	c, err := NewCompositor(opts...)
	if err != nil {
		t.Fatalf("NewCompositor() error = %v", err)
	}
	c.SetBounds(RectXYWH(0, 0, 200, 100))
	return c
}

func TestRefreshStackingOrder(t *testing.T) {
	c := newTestCompositor(t)
	layers := c.Refresh()
	want := []LayerKind{LayerOuterShadow, LayerBackground, LayerEffect, LayerInnerShadow}
	if len(layers) != len(want) {
		t.Fatalf("Refresh() returned %d layers, want %d", len(layers), len(want))
	}
	for i, l := range layers {
		if l.Kind != want[i] {
			t.Errorf("layer %d = %v, want %v", i, l.Kind, want[i])
		}
	}
}

func TestRefreshIdempotent(t *testing.T) {
	star, err := NewStar(5, 20)
	if err != nil {
		t.Fatal(err)
	}
	c := newTestCompositor(t,
		WithShape(star),
		WithBackground(White),
		WithOuterShadow(Shadow{Radius: 5, Color: Black, Opacity: 0.5, Offset: Pt(2, 3)}),
		WithInnerShadow(Shadow{Radius: 3, Color: Green, Opacity: 1}),
		WithEffect(Effect{Style: EffectDark, Alpha: 0.7}),
	)

	first := c.Refresh()
	second := c.Refresh()
	if diff := cmp.Diff(first, second, outlineCmp); diff != "" {
		t.Errorf("Refresh() not idempotent (-first +second):\n%s", diff)
	}
}

func TestRefreshNoSpecs(t *testing.T) {
	c := newTestCompositor(t)
	layers := c.Refresh()

	if !layers[LayerOuterShadow].Hidden || !layers[LayerInnerShadow].Hidden {
		t.Error("shadow layers should be hidden without shadow specs")
	}
	if layers[LayerBackground].Hidden {
		t.Error("background layer should be present")
	}
	if eff := layers[LayerEffect]; eff.Hidden || eff.Alpha != 0 {
		t.Errorf("effect layer = hidden %v alpha %v, want present with alpha 0", eff.Hidden, eff.Alpha)
	}

	visible := c.VisibleLayers()
	if len(visible) != 2 || visible[0].Kind != LayerBackground || visible[1].Kind != LayerEffect {
		t.Errorf("VisibleLayers() = %v", kinds(visible))
	}
}

func TestShadowSuppression(t *testing.T) {
	visible := Shadow{Radius: 4, Color: Black, Opacity: 1}
	tests := []struct {
		name        string
		outer       Shadow
		inner       Shadow
		outerHidden bool
		innerHidden bool
	}{
		{"both visible", visible, visible, false, false},
		{"outer transparent", Shadow{Radius: 4, Color: Transparent, Opacity: 1}, visible, true, false},
		{"inner zero radius", visible, Shadow{Radius: 0, Color: Black, Opacity: 1}, false, true},
		{"outer negative radius", Shadow{Radius: -2, Color: Black, Opacity: 1}, visible, true, false},
		{"inner zero opacity", visible, Shadow{Radius: 4, Color: Black}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCompositor(t, WithOuterShadow(tt.outer), WithInnerShadow(tt.inner))
			layers := c.Refresh()
			if got := layers[LayerOuterShadow].Hidden; got != tt.outerHidden {
				t.Errorf("outer Hidden = %v, want %v", got, tt.outerHidden)
			}
			if got := layers[LayerInnerShadow].Hidden; got != tt.innerHidden {
				t.Errorf("inner Hidden = %v, want %v", got, tt.innerHidden)
			}
		})
	}
}

func TestShadowMasks(t *testing.T) {
	corner, err := NewCorner(10)
	if err != nil {
		t.Fatal(err)
	}
	shadow := Shadow{Radius: 4, Color: Black, Opacity: 1}
	c := newTestCompositor(t, WithShape(corner), WithOuterShadow(shadow), WithInnerShadow(shadow))
	layers := c.Refresh()

	inside, outside := Pt(100, 50), Pt(-20, -20)

	outer := layers[LayerOuterShadow]
	if !outer.Content.Contains(inside) || outer.Content.Contains(outside) {
		t.Error("outer shadow content should be the outline")
	}
	if outer.Mask.Contains(inside) || !outer.Mask.Contains(outside) {
		t.Error("outer shadow mask should cover everything except the outline")
	}

	inner := layers[LayerInnerShadow]
	if inner.Content.Contains(inside) || !inner.Content.Contains(outside) {
		t.Error("inner shadow content should be the inverted outline")
	}
	if !inner.Mask.Contains(inside) || inner.Mask.Contains(outside) {
		t.Error("inner shadow mask should be the outline")
	}
	if !inner.ClipToFrame {
		t.Error("inner shadow must clip to its frame")
	}

	bg := layers[LayerBackground]
	if bg.Content != c.Outline() || bg.Mask != c.Outline() {
		t.Error("background should use the outline for content and mask")
	}
}

func TestRectFallback(t *testing.T) {
	c := newTestCompositor(t)
	c.Refresh()
	if got := c.Outline().Area(); math.Abs(got-200*100) > tolerance {
		t.Errorf("fallback Area() = %v, want %v", got, 200*100)
	}
}

func TestEffectLayer(t *testing.T) {
	c := newTestCompositor(t, WithEffect(Effect{Style: EffectLight, Alpha: 0.4}))
	eff := c.Refresh()[LayerEffect]
	if eff.Alpha != 0.4 {
		t.Errorf("effect Alpha = %v, want 0.4", eff.Alpha)
	}
	if eff.Effect.Style != EffectLight || eff.Frame != c.Bounds() {
		t.Errorf("effect layer = %+v", eff)
	}

	if err := c.SetEffect(Effect{Alpha: 0.9}); err != nil {
		t.Fatal(err)
	}
	if got := c.Refresh()[LayerEffect].Alpha; got != 0 {
		t.Errorf("Alpha without a style = %v, want 0", got)
	}
}

func TestZeroBounds(t *testing.T) {
	star, _ := NewStar(5, 0)
	c, err := NewCompositor(WithShape(star), WithOuterShadow(Shadow{Radius: 1, Color: Black, Opacity: 1}))
	if err != nil {
		t.Fatal(err)
	}
	layers := c.Refresh()
	if len(layers) != 4 {
		t.Fatalf("Refresh() returned %d layers", len(layers))
	}
}

func TestCompositorContractErrors(t *testing.T) {
	c := newTestCompositor(t)

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"opacity above 1", c.SetOuterShadow(Shadow{Radius: 1, Opacity: 1.5}), ErrInvalidShadow},
		{"NaN opacity", c.SetInnerShadow(Shadow{Radius: 1, Opacity: math.NaN()}), ErrInvalidShadow},
		{"infinite offset", c.SetOuterShadow(Shadow{Offset: Pt(math.Inf(1), 0)}), ErrInvalidShadow},
		{"negative alpha", c.SetEffect(Effect{Style: EffectDark, Alpha: -0.1}), ErrInvalidEffect},
		{"unknown style", c.SetEffect(Effect{Style: EffectStyle(99)}), ErrInvalidEffect},
		{"invalid shape", c.SetShape(Star{Vertices: 2}), ErrInvalidShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("error = %v, want %v", tt.err, tt.want)
			}
		})
	}

	if _, err := NewCompositor(WithEffect(Effect{Alpha: 2})); !errors.Is(err, ErrInvalidEffect) {
		t.Errorf("NewCompositor() error = %v, want ErrInvalidEffect", err)
	}
}

func TestScreenRectCoversScrolledDisplay(t *testing.T) {
	display := RectXYWH(0, 0, 320, 480)
	content := RectXYWH(0, 0, 100, 50)
	screen := ScreenRect(display, Pt(0, -1000), content)

	for _, p := range []Point{Pt(0, 1000), Pt(320, 1480), Pt(100, 50), Pt(-100, -100)} {
		if !screen.Contains(p) {
			t.Errorf("ScreenRect() = %v does not contain %v", screen, p)
		}
	}
}

func TestInvertedOutline(t *testing.T) {
	o := NewOutline()
	o.Rect(RectXYWH(10, 10, 10, 10))
	inv := InvertedOutline(o, RectXYWH(0, 0, 100, 100))

	if inv.Rule() != EvenOdd {
		t.Errorf("Rule() = %v, want EvenOdd", inv.Rule())
	}
	if inv.Contains(Pt(15, 15)) || !inv.Contains(Pt(50, 50)) || inv.Contains(Pt(150, 150)) {
		t.Error("inverted outline should cover the screen minus the outline")
	}
	if got := inv.Area(); math.Abs(got-(10000+100)) > tolerance {
		t.Errorf("signed Area() = %v, want both rings clockwise", got)
	}
}

func TestLayerKindString(t *testing.T) {
	if LayerInnerShadow.String() != "InnerShadow" || LayerKind(9).String() != unknownStr {
		t.Error("LayerKind.String mismatch")
	}
}

func kinds(layers []Layer) []LayerKind {
	out := make([]LayerKind, len(layers))
	for i, l := range layers {
		out[i] = l.Kind
	}
	return out
}

func TestSetOriginMovesScreen(t *testing.T) {
	c := newTestCompositor(t, WithDisplay(RectXYWH(0, 0, 320, 480)))
	far := Pt(10, 1200)

	mask := c.Refresh()[LayerOuterShadow].Mask
	if mask.Contains(far) {
		t.Fatalf("mask should not reach %v before scrolling", far)
	}

	c.SetOrigin(Pt(0, -1000))
	mask = c.Refresh()[LayerOuterShadow].Mask
	if !mask.Contains(far) {
		t.Errorf("mask should reach %v after scrolling", far)
	}
}
