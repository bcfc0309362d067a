// Package raster converts polygons to anti-aliased coverage masks.
//
// Coverage is computed on SupersampleScale sub-scanlines per pixel row;
// along each sub-scanline span ends contribute their exact fractional
// overlap with the pixels they cross.
package raster

import "math"

// FillRule specifies how to determine which areas are inside a path.
type FillRule int

const (
	// FillRuleNonZero uses the non-zero winding rule.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd uses the even-odd rule.
	FillRuleEvenOdd
)

// Supersampling constants.
const (
	SupersampleShift = 2
	SupersampleScale = 1 << SupersampleShift
)

// Rasterizer performs scanline rasterization into masks. A Rasterizer reuses
// its buffers between calls and is not safe for concurrent use.
type Rasterizer struct {
	aet *ActiveEdgeTable
	acc []float32
}

// NewRasterizer creates a rasterizer.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{aet: NewActiveEdgeTable()}
}

// Fill adds the coverage of the given polygons to mask. Each polygon is
// implicitly closed; together they form one region under rule. Coverage
// accumulates with the existing mask contents, clamped to 1.
func (r *Rasterizer) Fill(mask *Mask, polys [][]Point, rule FillRule) {
	edges := buildEdges(polys)
	if len(edges) == 0 || mask.width == 0 || mask.height == 0 {
		return
	}

	yMin, yMax := math.MaxFloat64, -math.MaxFloat64
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}
	y0 := clampInt(int(math.Floor(yMin)), 0, mask.height)
	y1 := clampInt(int(math.Ceil(yMax)), 0, mask.height)

	if cap(r.acc) < mask.width {
		r.acc = make([]float32, mask.width)
	}
	acc := r.acc[:mask.width]

	const weight = 1.0 / SupersampleScale
	for y := y0; y < y1; y++ {
		for i := range acc {
			acc[i] = 0
		}
		for s := 0; s < SupersampleScale; s++ {
			scanY := float64(y) + (float64(s)+0.5)*weight
			r.scanline(acc, edges, scanY, rule, weight)
		}

		row := mask.data[y*mask.width : (y+1)*mask.width]
		for x, v := range acc {
			if v != 0 {
				row[x] = clamp01(row[x] + v)
			}
		}
	}
}

// scanline accumulates the spans covered at height y.
func (r *Rasterizer) scanline(acc []float32, edges []Edge, y float64, rule FillRule, weight float64) {
	r.aet.Clear()
	for _, edge := range edges {
		if edge.y0 <= y && y < edge.y1 {
			r.aet.AddAtY(edge, y)
		}
	}
	if len(r.aet.Edges()) == 0 {
		return
	}
	r.aet.Sort()

	active := r.aet.Edges()
	if rule == FillRuleNonZero {
		winding := 0
		var x1 float64
		for _, e := range active {
			if winding == 0 {
				x1 = e.x
			}
			winding += e.dir
			if winding == 0 {
				addSpan(acc, x1, e.x, weight)
			}
		}
		return
	}

	for i := 0; i+1 < len(active); i += 2 {
		addSpan(acc, active[i].x, active[i+1].x, weight)
	}
}

// addSpan adds weight times the exact overlap of [x1, x2) with each pixel.
func addSpan(acc []float32, x1, x2, weight float64) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	width := float64(len(acc))
	x1 = math.Max(x1, 0)
	x2 = math.Min(x2, width)
	if x1 >= x2 {
		return
	}

	first := int(x1)
	last := int(math.Ceil(x2)) - 1
	if first == last {
		acc[first] += float32((x2 - x1) * weight)
		return
	}
	acc[first] += float32((float64(first+1) - x1) * weight)
	for x := first + 1; x < last; x++ {
		acc[x] += float32(weight)
	}
	acc[last] += float32((x2 - float64(last)) * weight)
}

// buildEdges converts closed polygons to edges, skipping horizontal ones.
func buildEdges(polys [][]Point) []Edge {
	var edges []Edge
	for _, poly := range polys {
		n := len(poly)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			p0, p1 := poly[i], poly[(i+1)%n]
			if math.Abs(p1.Y-p0.Y) < 1e-9 {
				continue
			}
			edges = append(edges, NewEdge(p0, p1))
		}
	}
	return edges
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
