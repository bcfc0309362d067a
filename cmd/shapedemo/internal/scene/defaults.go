package scene

func ptr[T any](v T) *T { return &v }

// Defaults returns the built-in showcase scene: a translucent message
// bubble with a green glow over a dark blur, a column of stars, a striped
// tile, a hollow ring and a small chat tail bubble.
func Defaults() *Scene {
	return &Scene{
		Canvas: Canvas{Width: 375, Height: 667, Scale: 2, Clear: "#34495e"},
		Views: []View{
			{
				Name:  "message",
				Frame: Box{X: 30, Y: 60, Width: 315, Height: 80},
				Shape: &Shape{
					Type:   "dialog",
					Radius: 30,
					Arrow:  &Arrow{Edge: "bottom", Center: 100, Width: 20, Height: 20},
				},
				Background:  "#ffffff80",
				OuterShadow: &Shadow{Radius: 20, Color: "#00ff00"},
				InnerShadow: &Shadow{Radius: 20, Color: "#00ff00"},
				Effect:      &Effect{Style: "dark", Alpha: ptr(0.7)},
			},
			{
				Name:        "star-5",
				Frame:       Box{X: 40, Y: 200, Width: 80, Height: 80},
				Shape:       &Shape{Type: "star", Vertices: 5, Extrusion: 16},
				Background:  "#ffff00",
				OuterShadow: &Shadow{Radius: 8, Color: "#ffffff"},
			},
			{
				Name:        "star-6",
				Frame:       Box{X: 40, Y: 310, Width: 80, Height: 80},
				Shape:       &Shape{Type: "star", Vertices: 6, Extrusion: 20},
				Background:  "#ffcc00",
				OuterShadow: &Shadow{Radius: 8, Color: "#ffffff"},
			},
			{
				Name:        "star-8",
				Frame:       Box{X: 40, Y: 420, Width: 80, Height: 80},
				Shape:       &Shape{Type: "star", Vertices: 8, Extrusion: 24},
				Background:  "#ff9900",
				OuterShadow: &Shadow{Radius: 8, Color: "#ffffff"},
			},
			{
				Name:       "stripes",
				Frame:      Box{X: 160, Y: 200, Width: 180, Height: 120},
				Shape:      &Shape{Type: "stripe", Width: 6, Angle: ptr(45.0)},
				Background: "#ecf0f1",
				Effect:     &Effect{Style: "light", Alpha: ptr(0.5)},
			},
			{
				Name:        "ring",
				Frame:       Box{X: 160, Y: 350, Width: 180, Height: 120},
				Shape:       &Shape{Type: "hollow_corner", Radius: 24, StrokeWidth: 8},
				Background:  "#ffffff",
				OuterShadow: &Shadow{Radius: 5, Color: "#aaaaaa", Offset: Vec{X: 2, Y: 2}},
			},
			{
				Name:  "reply",
				Frame: Box{X: 160, Y: 510, Width: 180, Height: 60},
				Shape: &Shape{
					Type:   "cute_dialog",
					Radius: 16,
					Arrow:  &Arrow{Corner: "right_bottom", Width: 12, Height: 10},
				},
				Background:  "#4a90e2",
				InnerShadow: &Shadow{Radius: 8, Color: "#ffffff", Opacity: ptr(0.6)},
			},
		},
	}
}
