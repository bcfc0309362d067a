package scene

import (
	"fmt"
	"math"

	"github.com/gogpu/shapeview"
)

// Build creates one view per scene entry, each painting into a surface
// obtained from newSurface, and lays them out at their frames.
func (s *Scene) Build(newSurface func() shapeview.Surface) ([]*shapeview.View, error) {
	display := shapeview.RectXYWH(0, 0, s.Canvas.Width, s.Canvas.Height)

	views := make([]*shapeview.View, 0, len(s.Views))
	for i, sv := range s.Views {
		opts, err := sv.Options()
		if err != nil {
			return nil, fmt.Errorf("scene: view %s: %w", sv.label(i), err)
		}
		frame := sv.Frame.Rect()
		opts = append(opts, shapeview.WithDisplay(display), shapeview.WithOrigin(frame.Min))

		v, err := shapeview.NewView(newSurface(), opts...)
		if err != nil {
			return nil, fmt.Errorf("scene: view %s: %w", sv.label(i), err)
		}
		v.SetFrame(frame)
		views = append(views, v)
	}
	return views, nil
}

// ClearColor returns the canvas clear color, white when unset.
func (s *Scene) ClearColor() (shapeview.RGBA, error) {
	if s.Canvas.Clear == "" {
		return shapeview.White, nil
	}
	return shapeview.ParseHex(s.Canvas.Clear)
}

func (v View) label(i int) string {
	if v.Name != "" {
		return fmt.Sprintf("%q", v.Name)
	}
	return fmt.Sprintf("#%d", i)
}

// Rect converts the box to a shapeview rectangle.
func (b Box) Rect() shapeview.Rect {
	return shapeview.RectXYWH(b.X, b.Y, b.Width, b.Height)
}

// Options converts the entry into view options.
func (v View) Options() ([]shapeview.Option, error) {
	var opts []shapeview.Option

	if v.Shape != nil {
		shape, err := v.Shape.Build()
		if err != nil {
			return nil, err
		}
		opts = append(opts, shapeview.WithShape(shape))
	}
	if v.Background != "" {
		c, err := shapeview.ParseHex(v.Background)
		if err != nil {
			return nil, err
		}
		opts = append(opts, shapeview.WithBackground(c))
	}
	if v.OuterShadow != nil {
		sh, err := v.OuterShadow.Build()
		if err != nil {
			return nil, err
		}
		opts = append(opts, shapeview.WithOuterShadow(sh))
	}
	if v.InnerShadow != nil {
		sh, err := v.InnerShadow.Build()
		if err != nil {
			return nil, err
		}
		opts = append(opts, shapeview.WithInnerShadow(sh))
	}
	if v.Effect != nil {
		e, err := v.Effect.Build()
		if err != nil {
			return nil, err
		}
		opts = append(opts, shapeview.WithEffect(e))
	}
	return opts, nil
}

// Build converts the entry into a shapeview shape. Zero star extrusion and
// zero stripe width select the library defaults; a missing stripe angle
// selects 45 degrees.
func (s *Shape) Build() (shapeview.Shape, error) {
	switch s.Type {
	case "rect":
		return nil, nil
	case "corner":
		return shapeview.NewCorner(s.Radius)
	case "hollow_corner":
		return shapeview.NewHollowCorner(s.Radius, s.StrokeWidth)
	case "dialog":
		if s.Arrow == nil {
			return nil, fmt.Errorf("%w: dialog without arrow", ErrInvalidScene)
		}
		edge, err := parseEdge(s.Arrow.Edge)
		if err != nil {
			return nil, err
		}
		return shapeview.NewDialog(s.Radius, shapeview.DialogArrow{
			Edge:   edge,
			Center: s.Arrow.Center,
			Width:  s.Arrow.Width,
			Height: s.Arrow.Height,
		})
	case "cute_dialog":
		if s.Arrow == nil {
			return nil, fmt.Errorf("%w: cute_dialog without arrow", ErrInvalidScene)
		}
		corner, err := parseCorner(s.Arrow.Corner)
		if err != nil {
			return nil, err
		}
		return shapeview.NewCuteDialog(s.Radius, shapeview.CuteArrow{
			Corner: corner,
			Width:  s.Arrow.Width,
			Height: s.Arrow.Height,
		})
	case "star":
		extrusion := s.Extrusion
		if extrusion == 0 {
			extrusion = shapeview.DefaultStarExtrusion
		}
		return shapeview.NewStar(s.Vertices, extrusion)
	case "stripe":
		width := s.Width
		if width == 0 {
			width = shapeview.DefaultStripeWidth
		}
		angle := shapeview.DefaultStripeAngle
		if s.Angle != nil {
			angle = *s.Angle * math.Pi / 180
		}
		return shapeview.NewStripe(width, angle)
	default:
		return nil, fmt.Errorf("%w: unknown shape type %q", ErrInvalidScene, s.Type)
	}
}

func parseEdge(name string) (shapeview.ArrowEdge, error) {
	switch name {
	case "top":
		return shapeview.ArrowTop, nil
	case "bottom":
		return shapeview.ArrowBottom, nil
	case "left":
		return shapeview.ArrowLeft, nil
	case "right":
		return shapeview.ArrowRight, nil
	}
	return 0, fmt.Errorf("%w: unknown arrow edge %q", ErrInvalidScene, name)
}

func parseCorner(name string) (shapeview.CuteCorner, error) {
	switch name {
	case "left_bottom":
		return shapeview.LeftBottom, nil
	case "right_bottom":
		return shapeview.RightBottom, nil
	}
	return 0, fmt.Errorf("%w: unknown tail corner %q", ErrInvalidScene, name)
}

// Build converts the entry into a shapeview shadow.
func (s *Shadow) Build() (shapeview.Shadow, error) {
	c, err := shapeview.ParseHex(s.Color)
	if err != nil {
		return shapeview.Shadow{}, err
	}
	opacity := 1.0
	if s.Opacity != nil {
		opacity = *s.Opacity
	}
	return shapeview.Shadow{
		Radius:  s.Radius,
		Color:   c,
		Opacity: opacity,
		Offset:  shapeview.Pt(s.Offset.X, s.Offset.Y),
	}, nil
}

// Build converts the entry into a shapeview effect.
func (e *Effect) Build() (shapeview.Effect, error) {
	style, ok := shapeview.ParseEffectStyle(e.Style)
	if !ok {
		return shapeview.Effect{}, fmt.Errorf("%w: unknown effect style %q", ErrInvalidScene, e.Style)
	}
	alpha := 1.0
	if e.Alpha != nil {
		alpha = *e.Alpha
	}
	return shapeview.Effect{Style: style, Alpha: alpha}, nil
}
