// Package shapeview builds vector-outlined views with layered shadows.
//
// # Overview
//
// A view is described by a Shape (rounded rectangle, hollow ring, dialog
// bubble, cute dialog, star, stripe pattern or a custom drawing function)
// plus optional outer shadow, inner shadow, background color and
// translucency effect. The Compositor turns these into four render layers
// that a host surface paints in a fixed order.
//
// # Quick Start
//
//	import "github.com/gogpu/shapeview"
//
//	dialog, _ := shapeview.NewDialog(8, shapeview.DialogArrow{
//		Edge: shapeview.ArrowRight, Center: 50, Width: 40, Height: 20,
//	})
//	v, _ := shapeview.NewView(surface,
//		shapeview.WithShape(dialog),
//		shapeview.WithBackground(shapeview.White),
//		shapeview.WithOuterShadow(shapeview.Shadow{
//			Radius: 6, Color: shapeview.Black, Opacity: 0.4,
//		}),
//	)
//	v.SetFrame(shapeview.RectXYWH(20, 20, 200, 100))
//
// # Layers
//
// Bottom to top:
//   - OuterShadow: the outline casts a shadow; the mask is the outline's
//     complement, so the shadow survives only outside the silhouette.
//   - Background: the outline filled with the background color.
//   - Effect: a blurred, tinted backdrop clipped to the outline.
//   - InnerShadow: the complement casts a shadow into the outline and is
//     clipped to it.
//
// The complement is built by InvertedOutline: an oversized screen rectangle
// combined with the outline under the even-odd fill rule.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, clockwise arcs increase the angle
//
// # Rendering
//
// The package only produces descriptors. Package render contains a CPU
// reference surface that rasterizes them to an image.
package shapeview

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
