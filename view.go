package shapeview

// Surface is the host rendering surface a View hands its layers to. The host
// owns rasterization and screen compositing.
type Surface interface {
	// Apply replaces everything the surface shows for the view.
	Apply(s Snapshot)
}

// Snapshot is the complete render state of a view after a recompute.
type Snapshot struct {
	// Frame is the view rectangle in the parent's coordinates.
	Frame Rect

	// Bounds is Frame moved to the origin; layer geometry is in this space.
	Bounds Rect

	// Layers holds the four render layers in stacking order.
	Layers []Layer

	// ContentMask clips child content to the shape.
	ContentMask *Outline
}

// View is the state machine tying a Compositor to a Surface. Every change
// of frame or parameters goes through one transition that recomputes all
// layers and applies them to the surface. Before the view has a non-empty
// frame nothing is applied.
//
// A View is not safe for concurrent use.
type View struct {
	surface Surface
	comp    *Compositor
	frame   Rect

	snapshot Snapshot
}

// NewView creates a view painting into surface. The view starts with an
// empty frame; call SetFrame once layout is known.
func NewView(surface Surface, opts ...Option) (*View, error) {
	comp, err := NewCompositor(opts...)
	if err != nil {
		return nil, err
	}
	v := &View{surface: surface, comp: comp}
	v.onBoundsOrParamsChanged()
	return v, nil
}

// SetFrame sets the view rectangle in the parent's coordinates.
func (v *View) SetFrame(frame Rect) {
	v.frame = frame
	v.comp.SetBounds(frame.Local())
	v.onBoundsOrParamsChanged()
}

// Frame returns the view rectangle.
func (v *View) Frame() Rect {
	return v.frame
}

// SetDisplay sets the visible display area and the view's origin in it.
func (v *View) SetDisplay(display Rect, origin Point) {
	v.comp.SetDisplay(display, origin)
	v.onBoundsOrParamsChanged()
}

// SetShape replaces the shape. On error the view is unchanged.
func (v *View) SetShape(s Shape) error {
	if err := v.comp.SetShape(s); err != nil {
		return err
	}
	v.onBoundsOrParamsChanged()
	return nil
}

// SetBackground sets the color painted inside the shape.
func (v *View) SetBackground(c RGBA) {
	v.comp.SetBackground(c)
	v.onBoundsOrParamsChanged()
}

// SetOuterShadow sets the drop shadow. On error the view is unchanged.
func (v *View) SetOuterShadow(s Shadow) error {
	if err := v.comp.SetOuterShadow(s); err != nil {
		return err
	}
	v.onBoundsOrParamsChanged()
	return nil
}

// SetInnerShadow sets the inset shadow. On error the view is unchanged.
func (v *View) SetInnerShadow(s Shadow) error {
	if err := v.comp.SetInnerShadow(s); err != nil {
		return err
	}
	v.onBoundsOrParamsChanged()
	return nil
}

// SetEffect sets the translucency effect. On error the view is unchanged.
func (v *View) SetEffect(e Effect) error {
	if err := v.comp.SetEffect(e); err != nil {
		return err
	}
	v.onBoundsOrParamsChanged()
	return nil
}

// Snapshot returns the state computed by the last transition.
func (v *View) Snapshot() Snapshot {
	return v.snapshot
}

// onBoundsOrParamsChanged is the single transition of the view: recompute
// every layer from the current inputs, then apply the result.
func (v *View) onBoundsOrParamsChanged() {
	layers := v.comp.Refresh()
	v.snapshot = Snapshot{
		Frame:       v.frame,
		Bounds:      v.comp.Bounds(),
		Layers:      layers,
		ContentMask: v.comp.Outline(),
	}

	if v.frame.IsEmpty() || v.surface == nil {
		Logger().Debug("shapeview: apply skipped", "frame", v.frame)
		return
	}
	v.surface.Apply(v.snapshot)
}
