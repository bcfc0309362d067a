// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render is a CPU reference host for shapeview layers.
//
// A Canvas hosts any number of ViewSurfaces, one per shapeview.View. Each
// surface keeps only the latest snapshot its view applied (retained mode);
// Canvas.Render paints the backdrop and then every view's visible layers in
// stacking order.
//
// # Usage
//
//	canvas, _ := render.NewCanvas(320, 480, 2)
//	view, _ := shapeview.NewView(canvas.NewSurface(), shapeview.WithShape(shape))
//	view.SetFrame(shapeview.RectXYWH(20, 20, 200, 80))
//	img := canvas.Render()
//
// # Paint Model
//
// Each layer's content outline and mask outline are rasterized to coverage
// masks. A layer paints its shadow (the content coverage moved by the
// shadow offset and blurred) and then its fill (content coverage), both
// multiplied by the mask coverage. The effect layer first replaces the
// masked area with a blurred copy of what lies beneath it.
package render
