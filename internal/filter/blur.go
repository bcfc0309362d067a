package filter

import (
	"image"
	"sync"

	"github.com/gogpu/shapeview/internal/raster"
)

// BlurMask returns src blurred with a Gaussian of the given sigma. Pixels
// beyond the mask edge repeat the nearest edge pixel, so a region that
// covers the whole border stays covered after blurring.
func BlurMask(src *raster.Mask, sigma float64) *raster.Mask {
	dst := src.Clone()
	if sigma <= 0 || src.Width() == 0 || src.Height() == 0 {
		return dst
	}

	width, height := src.Width(), src.Height()
	kernel := CachedGaussianKernel(sigma)

	temp := getTempBuffer(width, height, 1)
	defer putTempBuffer(temp)

	convolve(src.Data(), temp, width, height, 1, kernel, true)
	convolve(temp, dst.Data(), width, height, 1, kernel, false)
	return dst
}

// BlurImage returns img blurred with a Gaussian of the given sigma.
func BlurImage(img *image.RGBA, sigma float64) *image.RGBA {
	b := img.Bounds()
	width, height := b.Dx(), b.Dy()
	dst := image.NewRGBA(b)
	if sigma <= 0 || width == 0 || height == 0 {
		copy(dst.Pix, img.Pix)
		return dst
	}

	src := getTempBuffer(width, height, 4)
	defer putTempBuffer(src)
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for i, v := range row {
			src[y*width*4+i] = float32(v)
		}
	}

	temp := getTempBuffer(width, height, 4)
	defer putTempBuffer(temp)

	kernel := CachedGaussianKernel(sigma)
	convolve(src, temp, width, height, 4, kernel, true)
	convolve(temp, src, width, height, 4, kernel, false)

	for y := 0; y < height; y++ {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+width*4]
		for i := range row {
			row[i] = clampUint8(src[y*width*4+i])
		}
	}
	return dst
}

// convolve applies a 1D kernel along rows (horizontal) or columns to an
// interleaved buffer with the given number of channels. Samples outside
// the buffer are clamped to the edge.
func convolve(src, dst []float32, width, height, channels int, kernel []float32, horizontal bool) {
	half := len(kernel) / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			for c := 0; c < channels; c++ {
				var sum float32
				for k, weight := range kernel {
					sx, sy := x, y
					if horizontal {
						sx = clampInt(x+k-half, 0, width-1)
					} else {
						sy = clampInt(y+k-half, 0, height-1)
					}
					sum += src[(sy*width+sx)*channels+c] * weight
				}
				dst[(y*width+x)*channels+c] = sum
			}
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// tempBufferPool holds scratch buffers for the separable passes.
var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float32, 256*256*4)}
	},
}

// getTempBuffer returns a zeroed buffer of width*height*channels elements.
func getTempBuffer(width, height, channels int) []float32 {
	size := width * height * channels
	wrapper := tempBufferPool.Get().(*floatBuffer)

	if len(wrapper.data) < size {
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}

	buf := wrapper.data[:size]
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// putTempBuffer returns a buffer to the pool.
func putTempBuffer(buf []float32) {
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
