package shapeview

// Option configures a Compositor or View during creation.
//
// Example:
//
//	star, _ := shapeview.NewStar(5, 12)
//	c, err := shapeview.NewCompositor(
//		shapeview.WithShape(star),
//		shapeview.WithBackground(shapeview.White),
//		shapeview.WithOuterShadow(shapeview.Shadow{Radius: 8, Color: shapeview.Black, Opacity: 0.5}),
//	)
type Option func(*options)

// options holds the optional configuration shared by Compositor and View.
type options struct {
	shape       Shape
	display     Rect
	origin      Point
	background  RGBA
	outerShadow Shadow
	innerShadow Shadow
	effect      Effect
}

// defaultOptions returns a transparent rectangle with no shadows or effect.
func defaultOptions() options {
	return options{
		background: Transparent,
	}
}

// WithShape sets the shape. Without one the outline is the bounds
// rectangle.
func WithShape(s Shape) Option {
	return func(o *options) {
		o.shape = s
	}
}

// WithDisplay sets the visible display area used to size the screen
// rectangle. Without one the view bounds stand in for it.
func WithDisplay(display Rect) Option {
	return func(o *options) {
		o.display = display
	}
}

// WithOrigin sets the position of the view's origin in display
// coordinates, such as a scroll offset.
func WithOrigin(origin Point) Option {
	return func(o *options) {
		o.origin = origin
	}
}

// WithBackground sets the fill color painted by the background layer.
func WithBackground(c RGBA) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithOuterShadow sets the drop shadow cast outside the shape.
func WithOuterShadow(s Shadow) Option {
	return func(o *options) {
		o.outerShadow = s
	}
}

// WithInnerShadow sets the inset shadow cast inside the shape.
func WithInnerShadow(s Shadow) Option {
	return func(o *options) {
		o.innerShadow = s
	}
}

// WithEffect sets the translucency effect.
func WithEffect(e Effect) Option {
	return func(o *options) {
		o.effect = e
	}
}
