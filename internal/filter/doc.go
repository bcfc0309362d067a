// Package filter provides the blur and shadow filters used by the software
// surface:
//   - Gaussian blur of coverage masks and RGBA images (separable)
//   - Drop shadow (offset + blur) of a coverage mask
//
// Separable convolution keeps the cost at O(w*h*(rx+ry)). Temporary
// buffers are pooled.
package filter
