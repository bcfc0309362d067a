// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"bytes"
	"fmt"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/shapeview"
)

// PDFOptions controls WritePDF output.
type PDFOptions struct {
	// Outlines draws every view's outline as a vector path over the
	// rendered image.
	Outlines bool

	// OutlineColor and OutlineWidth (in points) style the outline paths.
	OutlineColor shapeview.RGBA
	OutlineWidth float64
}

// DefaultPDFOptions draws dark gray hairline outlines.
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		Outlines:     true,
		OutlineColor: shapeview.DarkGray,
		OutlineWidth: 0.5,
	}
}

// WritePDF writes a one-page PDF the size of the canvas. The page holds the
// rendered canvas as an image and, optionally, each view's outline as a
// vector path.
func WritePDF(w io.Writer, c *Canvas, opts PDFOptions) error {
	width, height := c.Size()

	var buf bytes.Buffer
	if err := png.Encode(&buf, c.Render()); err != nil {
		return fmt.Errorf("render: encode preview: %w", err)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader("canvas", imgOpts, &buf)
	pdf.ImageOptions("canvas", 0, 0, width, height, false, imgOpts, 0, "")

	if opts.Outlines {
		col := opts.OutlineColor.Color()
		r, g, b, _ := col.RGBA()
		pdf.SetDrawColor(int(r>>8), int(g>>8), int(b>>8))
		pdf.SetLineWidth(opts.OutlineWidth)

		for _, s := range c.Surfaces() {
			snap, ok := s.Snapshot()
			if !ok || snap.ContentMask == nil {
				continue
			}
			drawOutline(pdf, snap.ContentMask.Translate(snap.Frame.Min))
		}
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render: build pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render: write pdf: %w", err)
	}
	return nil
}

// drawOutline strokes an outline as a PDF path. PDF has no circular arc
// operator, so arcs are converted to cubic curves first.
func drawOutline(pdf *gofpdf.Fpdf, o *shapeview.Outline) {
	started := false
	for _, e := range o.Cubics().Elements() {
		switch e := e.(type) {
		case shapeview.MoveTo:
			pdf.MoveTo(e.Point.X, e.Point.Y)
			started = true
		case shapeview.LineTo:
			pdf.LineTo(e.Point.X, e.Point.Y)
		case shapeview.CubicTo:
			pdf.CurveBezierCubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case shapeview.Close:
			pdf.ClosePath()
		}
	}
	if started {
		pdf.DrawPath("D")
	}
}
