package filter

import (
	"math"

	"github.com/gogpu/shapeview/internal/raster"
)

// DropShadow computes the coverage of a shadow cast by content: the
// content is moved by (dx, dy) pixels and blurred with sigma. Pixels that
// move in from beyond the edge repeat the nearest edge pixel.
func DropShadow(content *raster.Mask, dx, dy, sigma float64) *raster.Mask {
	return BlurMask(Shift(content, dx, dy), sigma)
}

// Shift returns src translated by (dx, dy) pixels with bilinear sampling.
func Shift(src *raster.Mask, dx, dy float64) *raster.Mask {
	if dx == 0 && dy == 0 {
		return src.Clone()
	}

	width, height := src.Width(), src.Height()
	dst := raster.NewMask(width, height)
	if width == 0 || height == 0 {
		return dst
	}

	ix, fx := math.Floor(dx), dx-math.Floor(dx)
	iy, fy := math.Floor(dy), dy-math.Floor(dy)

	sample := func(x, y int) float32 {
		return src.At(clampInt(x, 0, width-1), clampInt(y, 0, height-1))
	}

	for y := 0; y < height; y++ {
		sy := y - int(iy)
		for x := 0; x < width; x++ {
			sx := x - int(ix)
			// dst(x) = src(x - dx), interpolated between the two source
			// pixels the fractional offset falls between.
			a := sample(sx, sy)*float32(1-fx) + sample(sx-1, sy)*float32(fx)
			b := sample(sx, sy-1)*float32(1-fx) + sample(sx-1, sy-1)*float32(fx)
			dst.Set(x, y, a*float32(1-fy)+b*float32(fy))
		}
	}
	return dst
}
