package raster

import "sort"

// Point is a position in device pixels.
type Point struct {
	X, Y float64
}

// Edge is a non-horizontal line segment ready for scan conversion.
type Edge struct {
	x0, y0 float64 // top end
	x1, y1 float64 // bottom end
	dx     float64 // dx/dy slope
	dir    int     // +1 downward, -1 upward in the source outline
}

// NewEdge creates an edge from p0 to p1.
func NewEdge(p0, p1 Point) Edge {
	// Direction is taken before the swap for the non-zero rule.
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}

	dy := p1.Y - p0.Y
	var dx float64
	if dy != 0 {
		dx = (p1.X - p0.X) / dy
	}

	return Edge{x0: p0.X, y0: p0.Y, x1: p1.X, y1: p1.Y, dx: dx, dir: dir}
}

// XAtY returns the x coordinate of the edge at y.
func (e *Edge) XAtY(y float64) float64 {
	return e.x0 + (y-e.y0)*e.dx
}

// ActiveEdge is an edge crossing the current scanline.
type ActiveEdge struct {
	x   float64
	dir int
}

// ActiveEdgeTable holds the edges crossing one scanline, sorted by x.
type ActiveEdgeTable struct {
	edges []ActiveEdge
}

// NewActiveEdgeTable creates an empty table.
func NewActiveEdgeTable() *ActiveEdgeTable {
	return &ActiveEdgeTable{edges: make([]ActiveEdge, 0, 32)}
}

// Clear removes all edges.
func (aet *ActiveEdgeTable) Clear() {
	aet.edges = aet.edges[:0]
}

// AddAtY adds edge with its crossing computed at y.
func (aet *ActiveEdgeTable) AddAtY(edge Edge, y float64) {
	aet.edges = append(aet.edges, ActiveEdge{x: edge.XAtY(y), dir: edge.dir})
}

// Sort orders the edges by crossing position.
func (aet *ActiveEdgeTable) Sort() {
	sort.Slice(aet.edges, func(i, j int) bool {
		return aet.edges[i].x < aet.edges[j].x
	})
}

// Edges returns the active edges.
func (aet *ActiveEdgeTable) Edges() []ActiveEdge {
	return aet.edges
}
