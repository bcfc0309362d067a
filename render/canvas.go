// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"math"
	"sync"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/shapeview"
)

// ErrInvalidCanvas is returned for non-positive canvas sizes or scales.
var ErrInvalidCanvas = errors.New("render: invalid canvas")

// Canvas is a device-pixel RGBA canvas hosting view surfaces.
// Coordinates given to views are in points; the scale maps points to
// device pixels.
type Canvas struct {
	width  float64
	height float64
	scale  float64

	mu       sync.Mutex
	clear    shapeview.RGBA
	backdrop *image.RGBA
	surfaces []*ViewSurface
}

// NewCanvas creates a canvas of width x height points rendered at scale
// device pixels per point.
func NewCanvas(width, height, scale float64) (*Canvas, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return nil, fmt.Errorf("%w: size %gx%g", ErrInvalidCanvas, width, height)
	}
	if !(scale > 0) || math.IsInf(scale, 0) {
		return nil, fmt.Errorf("%w: scale %g", ErrInvalidCanvas, scale)
	}
	return &Canvas{
		width:  width,
		height: height,
		scale:  scale,
		clear:  shapeview.White,
	}, nil
}

// Size returns the canvas size in points.
func (c *Canvas) Size() (width, height float64) {
	return c.width, c.height
}

// Scale returns the number of device pixels per point.
func (c *Canvas) Scale() float64 {
	return c.scale
}

// PixelSize returns the canvas size in device pixels.
func (c *Canvas) PixelSize() (width, height int) {
	return int(math.Ceil(c.width * c.scale)), int(math.Ceil(c.height * c.scale))
}

// SetClearColor sets the color painted where there is no backdrop.
func (c *Canvas) SetClearColor(color shapeview.RGBA) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clear = color
}

// SetBackdrop sets an image painted behind all views. The image is scaled
// to fill the canvas, preserving its aspect ratio and cropping the excess
// evenly on both sides. A nil image removes the backdrop.
func (c *Canvas) SetBackdrop(img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if img == nil || img.Bounds().Empty() {
		c.backdrop = nil
		return
	}

	w, h := c.PixelSize()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, aspectFill(img.Bounds(), w, h), xdraw.Src, nil)
	c.backdrop = dst

	shapeview.Logger().Debug("render: backdrop set",
		"source", img.Bounds().Size(), "canvas", dst.Bounds().Size())
}

// aspectFill returns the centered part of src that has the aspect ratio of
// a w x h target.
func aspectFill(src image.Rectangle, w, h int) image.Rectangle {
	sw, sh := float64(src.Dx()), float64(src.Dy())
	s := math.Max(float64(w)/sw, float64(h)/sh)
	cw, ch := float64(w)/s, float64(h)/s

	x0 := src.Min.X + int(math.Round((sw-cw)/2))
	y0 := src.Min.Y + int(math.Round((sh-ch)/2))
	return image.Rect(x0, y0, x0+int(math.Round(cw)), y0+int(math.Round(ch)))
}

// NewSurface adds a surface to the canvas. Surfaces are painted in the
// order they were created.
func (c *Canvas) NewSurface() *ViewSurface {
	s := &ViewSurface{}
	c.mu.Lock()
	c.surfaces = append(c.surfaces, s)
	c.mu.Unlock()
	return s
}

// Surfaces returns the surfaces hosted by the canvas.
func (c *Canvas) Surfaces() []*ViewSurface {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*ViewSurface, len(c.surfaces))
	copy(out, c.surfaces)
	return out
}

// ViewSurface is a shapeview.Surface that retains the latest snapshot.
type ViewSurface struct {
	mu       sync.Mutex
	snapshot shapeview.Snapshot
	applied  bool
}

// Apply implements shapeview.Surface.
func (s *ViewSurface) Apply(snap shapeview.Snapshot) {
	s.mu.Lock()
	s.snapshot = snap
	s.applied = true
	s.mu.Unlock()
}

// Snapshot returns the latest snapshot and whether one was applied.
func (s *ViewSurface) Snapshot() (shapeview.Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot, s.applied
}
