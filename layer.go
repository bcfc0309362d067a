package shapeview

// LayerKind identifies one of the four render layers of a view.
type LayerKind uint8

// Layer kinds in stacking order, bottom to top.
const (
	LayerOuterShadow LayerKind = iota
	LayerBackground
	LayerEffect
	LayerInnerShadow

	layerCount
)

// String returns the layer name.
func (k LayerKind) String() string {
	switch k {
	case LayerOuterShadow:
		return "OuterShadow"
	case LayerBackground:
		return "Background"
	case LayerEffect:
		return "Effect"
	case LayerInnerShadow:
		return "InnerShadow"
	default:
		return unknownStr
	}
}

// Layer is a drawable descriptor produced by the compositor. Surfaces paint
// Content with Fill (casting Shadow from it when set), then keep only the
// part covered by Mask. Coordinates are in the view's bounds space.
//
// Layers are derived values: every refresh replaces all of them.
type Layer struct {
	Kind LayerKind

	// Hidden layers must be skipped by surfaces.
	Hidden bool

	// Frame is the layer rectangle. With ClipToFrame set nothing is
	// painted outside it, shadows included.
	Frame       Rect
	ClipToFrame bool

	Content *Outline
	Mask    *Outline
	Fill    RGBA

	Shadow Shadow
	Effect Effect

	// Alpha is the layer opacity.
	Alpha float64
}
