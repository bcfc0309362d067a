// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"math"

	"github.com/gogpu/shapeview"
	"github.com/gogpu/shapeview/internal/filter"
	"github.com/gogpu/shapeview/internal/raster"
)

// Render paints the backdrop and every surface's latest snapshot.
func (c *Canvas) Render() *image.RGBA {
	c.mu.Lock()
	bg, backdrop := c.clear, c.backdrop
	surfaces := make([]*ViewSurface, len(c.surfaces))
	copy(surfaces, c.surfaces)
	c.mu.Unlock()

	w, h := c.PixelSize()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if backdrop != nil {
		copy(dst.Pix, backdrop.Pix)
	} else {
		fillMask(dst, nil, bg, 1)
	}

	p := &painter{
		dst:   dst,
		scale: c.scale,
		rast:  raster.NewRasterizer(),
	}
	views := 0
	for _, s := range surfaces {
		snap, ok := s.Snapshot()
		if !ok {
			continue
		}
		p.paintView(snap)
		views++
	}

	shapeview.Logger().Debug("render: canvas rendered", "views", views, "width", w, "height", h)
	return dst
}

// painter paints snapshots onto one destination image.
type painter struct {
	dst   *image.RGBA
	scale float64
	rast  *raster.Rasterizer

	toDevice shapeview.Affine
	masks    map[*shapeview.Outline]*raster.Mask
}

func (p *painter) paintView(snap shapeview.Snapshot) {
	p.toDevice = shapeview.Translation(snap.Frame.Min).Then(shapeview.Scaling(p.scale, p.scale))
	p.masks = make(map[*shapeview.Outline]*raster.Mask)

	for _, l := range snap.Layers {
		if l.Hidden || l.Alpha <= 0 {
			continue
		}
		p.paintLayer(l)
	}
}

// paintLayer paints one layer: optional backdrop blur, shadow, then fill,
// all limited to the mask coverage.
func (p *painter) paintLayer(l shapeview.Layer) {
	content := p.coverage(l.Content)
	mask := p.coverage(l.Mask)
	if l.ClipToFrame {
		mask = mask.Clone()
		x0, y0, x1, y1 := p.deviceRect(l.Frame)
		mask.ClipRect(x0, y0, x1, y1)
	}

	if l.Kind == shapeview.LayerEffect && l.Effect.Style != shapeview.EffectNone {
		p.blurBehind(content, mask, l)
	}

	if l.Shadow.Visible() {
		shadow := filter.DropShadow(content,
			l.Shadow.Offset.X*p.scale, l.Shadow.Offset.Y*p.scale,
			filter.SigmaForRadius(l.Shadow.Radius*p.scale))
		shadow.Mul(mask)
		fillMask(p.dst, shadow, l.Shadow.Paint(), l.Alpha)
	}

	fill := content.Clone()
	fill.Mul(mask)
	fillMask(p.dst, fill, l.Fill, l.Alpha)
}

// blurBehind replaces the covered area with a blurred copy of the pixels
// painted so far.
func (p *painter) blurBehind(content, mask *raster.Mask, l shapeview.Layer) {
	sigma := filter.SigmaForRadius(l.Effect.Style.BlurRadius() * p.scale)
	blurred := filter.BlurImage(p.dst, sigma)

	cov := content.Clone()
	cov.Mul(mask)
	cov.Scale(float32(l.Alpha))

	data := cov.Data()
	for i, a := range data {
		if a == 0 {
			continue
		}
		off := i * 4
		for ch := 0; ch < 4; ch++ {
			v := float32(blurred.Pix[off+ch])*a + float32(p.dst.Pix[off+ch])*(1-a)
			p.dst.Pix[off+ch] = uint8(v + 0.5)
		}
	}
}

// coverage rasterizes an outline given in view bounds space. Results are
// cached per outline for the current view, since layers share outlines.
func (p *painter) coverage(o *shapeview.Outline) *raster.Mask {
	if m, ok := p.masks[o]; ok {
		return m
	}

	b := p.dst.Bounds()
	m := raster.NewMask(b.Dx(), b.Dy())
	if o != nil && !o.IsEmpty() {
		rule := raster.FillRuleNonZero
		if o.Rule() == shapeview.EvenOdd {
			rule = raster.FillRuleEvenOdd
		}
		p.rast.Fill(m, p.devicePolys(o), rule)
	}
	p.masks[o] = m
	return m
}

// devicePolys flattens an outline and maps it to device pixels.
func (p *painter) devicePolys(o *shapeview.Outline) [][]raster.Point {
	subpaths := o.Subpaths(shapeview.DefaultTolerance / p.scale)
	polys := make([][]raster.Point, len(subpaths))
	for i, sp := range subpaths {
		poly := make([]raster.Point, len(sp))
		for j, pt := range sp {
			d := p.toDevice.Apply(pt)
			poly[j] = raster.Point{X: d.X, Y: d.Y}
		}
		polys[i] = poly
	}
	return polys
}

// deviceRect maps a rectangle in view bounds space to device pixels.
func (p *painter) deviceRect(r shapeview.Rect) (x0, y0, x1, y1 int) {
	lo, hi := p.toDevice.Apply(r.Min), p.toDevice.Apply(r.Max)
	return int(math.Floor(lo.X)), int(math.Floor(lo.Y)), int(math.Ceil(hi.X)), int(math.Ceil(hi.Y))
}

// fillMask composites color over dst with per-pixel coverage cov scaled by
// alpha. A nil cov means full coverage.
func fillMask(dst *image.RGBA, cov *raster.Mask, color shapeview.RGBA, alpha float64) {
	base := float32(color.A * alpha)
	if base <= 0 {
		return
	}
	r := float32(color.R * 255)
	g := float32(color.G * 255)
	b := float32(color.B * 255)

	n := len(dst.Pix) / 4
	for i := 0; i < n; i++ {
		a := base
		if cov != nil {
			a *= cov.Data()[i]
			if a == 0 {
				continue
			}
		}
		if a > 1 {
			a = 1
		}
		off := i * 4
		px := dst.Pix[off : off+4 : off+4]
		px[0] = uint8(r*a + float32(px[0])*(1-a) + 0.5)
		px[1] = uint8(g*a + float32(px[1])*(1-a) + 0.5)
		px[2] = uint8(b*a + float32(px[2])*(1-a) + 0.5)
		px[3] = uint8(255*a + float32(px[3])*(1-a) + 0.5)
	}
}
