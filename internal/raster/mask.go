package raster

// Mask is a coverage buffer with one value in [0, 1] per pixel.
type Mask struct {
	width  int
	height int
	data   []float32
}

// NewMask creates a mask of the given size with zero coverage.
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Mask{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.height }

// Data returns the row-major coverage values.
func (m *Mask) Data() []float32 { return m.data }

// At returns the coverage at (x, y); outside the mask it is zero.
func (m *Mask) At(x, y int) float32 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the coverage at (x, y), clamped to [0, 1].
func (m *Mask) Set(x, y int, v float32) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = clamp01(v)
}

// Fill sets every pixel to v.
func (m *Mask) Fill(v float32) {
	v = clamp01(v)
	for i := range m.data {
		m.data[i] = v
	}
}

// Clone returns a copy of the mask.
func (m *Mask) Clone() *Mask {
	c := NewMask(m.width, m.height)
	copy(c.data, m.data)
	return c
}

// Mul multiplies the mask by other pixel by pixel. Masks of different size
// are combined over their common area; the rest of m becomes zero.
func (m *Mask) Mul(other *Mask) {
	for y := 0; y < m.height; y++ {
		row := m.data[y*m.width : (y+1)*m.width]
		for x := range row {
			row[x] *= other.At(x, y)
		}
	}
}

// Scale multiplies every pixel by s.
func (m *Mask) Scale(s float32) {
	for i, v := range m.data {
		m.data[i] = clamp01(v * s)
	}
}

// Invert replaces every coverage value v with 1-v.
func (m *Mask) Invert() {
	for i, v := range m.data {
		m.data[i] = 1 - v
	}
}

// ClipRect zeroes every pixel outside [x0, x1) x [y0, y1).
func (m *Mask) ClipRect(x0, y0, x1, y1 int) {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if x < x0 || x >= x1 || y < y0 || y >= y1 {
				m.data[y*m.width+x] = 0
			}
		}
	}
}

// Sum returns the total coverage, the covered area in pixels.
func (m *Mask) Sum() float64 {
	var s float64
	for _, v := range m.data {
		s += float64(v)
	}
	return s
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
