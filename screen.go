package shapeview

import "math"

// ScreenRect returns a rectangle that covers both the visible display area
// and the content, whatever the scroll offset. display is the visible area
// in display coordinates, origin the position of the content's origin on
// the display, and content the view bounds.
//
// The result is padded by the largest of the two extents so that blurred
// shadows never reach its edge.
func ScreenRect(display Rect, origin Point, content Rect) Rect {
	visible := display.Translate(Point{X: -origin.X, Y: -origin.Y})
	r := visible.Union(content)
	pad := math.Max(
		math.Max(display.Width(), display.Height()),
		math.Max(content.Width(), content.Height()),
	)
	return r.Outset(math.Max(pad, 1))
}

// InvertedOutline combines screen with outline under the even-odd rule.
// The result covers everything inside screen except the interior of
// outline: the complement of the shape, bounded by the screen.
//
// It serves as the outer shadow's mask (keep only what lies outside the
// silhouette) and as the inner shadow's content (cast a shadow into the
// shape from its surroundings).
func InvertedOutline(outline *Outline, screen Rect) *Outline {
	o := NewOutline()
	o.SetRule(EvenOdd)
	o.Rect(screen)
	o.Append(outline)
	o.EnsureClosed()
	return o
}
