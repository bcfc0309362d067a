package shapeview

// Compositor turns a shape and its shadow, background and effect settings
// into the four render layers of a view.
//
// Every Refresh regenerates the outline for the current bounds and replaces
// all layers; there is no partial update. Refresh is deterministic: with
// unchanged inputs it returns equal descriptors.
//
// Outlines referenced by the returned layers are shared between layers and
// must be treated as read-only. A Compositor is not safe for concurrent use.
type Compositor struct {
	opts   options
	bounds Rect

	outline *Outline
	layers  [layerCount]Layer
}

// NewCompositor creates a compositor. It fails if any option carries an
// invalid shape, shadow or effect.
func NewCompositor(opts ...Option) (*Compositor, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Compositor{}
	if err := c.SetShape(o.shape); err != nil {
		return nil, err
	}
	if err := c.SetOuterShadow(o.outerShadow); err != nil {
		return nil, err
	}
	if err := c.SetInnerShadow(o.innerShadow); err != nil {
		return nil, err
	}
	if err := c.SetEffect(o.effect); err != nil {
		return nil, err
	}
	c.SetDisplay(o.display, o.origin)
	c.SetBackground(o.background)
	return c, nil
}

// SetShape sets the shape. A nil shape selects the bounds rectangle.
func (c *Compositor) SetShape(s Shape) error {
	if s != nil {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	c.opts.shape = s
	return nil
}

// Shape returns the configured shape, or nil.
func (c *Compositor) Shape() Shape {
	return c.opts.shape
}

// SetBounds sets the view bounds the outline is generated for.
func (c *Compositor) SetBounds(bounds Rect) {
	c.bounds = bounds
}

// Bounds returns the current bounds.
func (c *Compositor) Bounds() Rect {
	return c.bounds
}

// SetDisplay sets the visible display area and the view origin within it.
func (c *Compositor) SetDisplay(display Rect, origin Point) {
	c.opts.display = display
	c.opts.origin = origin
}

// SetOrigin moves the view origin within the display, as scrolling does.
func (c *Compositor) SetOrigin(origin Point) {
	c.opts.origin = origin
}

// SetBackground sets the fill color of the background layer.
func (c *Compositor) SetBackground(color RGBA) {
	c.opts.background = color
}

// SetOuterShadow sets the drop shadow. A shadow that is not Visible hides
// the outer shadow layer.
func (c *Compositor) SetOuterShadow(s Shadow) error {
	if err := s.Validate("SetOuterShadow"); err != nil {
		return err
	}
	c.opts.outerShadow = s
	return nil
}

// SetInnerShadow sets the inset shadow. A shadow that is not Visible hides
// the inner shadow layer.
func (c *Compositor) SetInnerShadow(s Shadow) error {
	if err := s.Validate("SetInnerShadow"); err != nil {
		return err
	}
	c.opts.innerShadow = s
	return nil
}

// SetEffect sets the translucency effect.
func (c *Compositor) SetEffect(e Effect) error {
	if err := e.Validate("SetEffect"); err != nil {
		return err
	}
	c.opts.effect = e
	return nil
}

// Refresh recomputes all layers from the current inputs and returns them in
// stacking order: outer shadow, background, effect, inner shadow. The
// returned slice always has four entries; invisible layers are marked
// Hidden.
func (c *Compositor) Refresh() []Layer {
	bounds := c.bounds
	shape := c.opts.shape
	if shape == nil {
		shape = rectShape{}
	}

	outline := shape.Outline(bounds)
	outline.EnsureClosed()
	if outline.IsEmpty() {
		Logger().Warn("shapeview: shape produced an empty outline", "bounds", bounds)
	}

	content := bounds
	if !outline.IsEmpty() {
		content = content.Union(outline.BoundingBox())
	}
	display := c.opts.display
	if display.IsEmpty() {
		display = bounds
	}
	inverted := InvertedOutline(outline, ScreenRect(display, c.opts.origin, content))

	frame := NewOutline()
	frame.Rect(bounds)

	outer, inner, effect := c.opts.outerShadow, c.opts.innerShadow, c.opts.effect
	effectAlpha := 0.0
	if effect.Style != EffectNone {
		effectAlpha = effect.Alpha
	}

	c.outline = outline
	c.layers = [layerCount]Layer{
		LayerOuterShadow: {
			Kind:    LayerOuterShadow,
			Hidden:  !outer.Visible(),
			Frame:   bounds,
			Content: outline,
			Mask:    inverted,
			Fill:    outer.Color,
			Shadow:  outer,
			Alpha:   1,
		},
		LayerBackground: {
			Kind:    LayerBackground,
			Frame:   bounds,
			Content: outline,
			Mask:    outline,
			Fill:    c.opts.background,
			Alpha:   1,
		},
		LayerEffect: {
			Kind:    LayerEffect,
			Frame:   bounds,
			Content: frame,
			Mask:    outline,
			Fill:    effect.Style.Tint(),
			Effect:  effect,
			Alpha:   effectAlpha,
		},
		LayerInnerShadow: {
			Kind:        LayerInnerShadow,
			Hidden:      !inner.Visible(),
			Frame:       bounds,
			ClipToFrame: true,
			Content:     inverted,
			Mask:        outline,
			Fill:        inner.Color,
			Shadow:      inner,
			Alpha:       1,
		},
	}

	Logger().Debug("shapeview: layers refreshed",
		"bounds", bounds,
		"elements", outline.Len(),
		"outerShadow", outer.Visible(),
		"innerShadow", inner.Visible(),
		"effect", effect.Style.String(),
	)

	return c.Layers()
}

// Layers returns a copy of the layers computed by the last Refresh. Before
// the first Refresh all entries are zero.
func (c *Compositor) Layers() []Layer {
	layers := make([]Layer, len(c.layers))
	copy(layers, c.layers[:])
	return layers
}

// VisibleLayers returns the layers of the last Refresh that are not hidden,
// in stacking order.
func (c *Compositor) VisibleLayers() []Layer {
	if c.outline == nil {
		return nil
	}
	layers := make([]Layer, 0, len(c.layers))
	for _, l := range c.layers {
		if !l.Hidden {
			layers = append(layers, l)
		}
	}
	return layers
}

// Outline returns the outline generated by the last Refresh, or nil.
func (c *Compositor) Outline() *Outline {
	return c.outline
}
