// SPDX-License-Identifier: MIT

// Package features turns images into network input vectors.
//
// An image is composited over a white canvas of the target grid size
// (down-sampled with bilinear interpolation when its size differs), and each
// pixel becomes one feature:
//
//	v = (255 − (r+g+b)/3) / 255
//
// in row-major order. White maps to 0, black to 1, so dark ink on a light
// background yields high activations. Transparent areas count as white.
package features

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// DigitSize is the side length of the square digit grid (28×28 = 784 inputs).
const DigitSize = 28

// ErrInvalidSize is returned for a non-positive grid size.
var ErrInvalidSize = errors.New("features: invalid grid size")

// ErrNilImage is returned for a nil image.
var ErrNilImage = errors.New("features: nil image")

// FromImage extracts a DigitSize×DigitSize feature vector (length 784).
func FromImage(img image.Image) ([]float64, error) {
	return FromImageSize(img, DigitSize, DigitSize)
}

// FromImageSize extracts a w×h feature vector (length w*h) from img.
//
// Implementation:
//   - Stage 1: fill a w×h RGBA canvas with white.
//   - Stage 2: composite img over it; scale with draw.ApproxBiLinear when
//     the source size differs from w×h.
//   - Stage 3: emit one inverted grayscale value per pixel, row-major.
//
// Errors:
//   - ErrNilImage, ErrInvalidSize.
//
// Complexity:
//   - Time O(w*h + src pixels), Space O(w*h).
func FromImageSize(img image.Image, w, h int) ([]float64, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("features: %d×%d: %w", w, h, ErrInvalidSize)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	src := img.Bounds()
	if src.Dx() == w && src.Dy() == h {
		draw.Draw(canvas, canvas.Bounds(), img, src.Min, draw.Over)
	} else {
		draw.ApproxBiLinear.Scale(canvas, canvas.Bounds(), img, src, draw.Over, nil)
	}

	out := make([]float64, 0, w*h)
	var x, y, off int
	for y = 0; y < h; y++ {
		off = canvas.PixOffset(0, y)
		for x = 0; x < w; x++ {
			out = append(out, intensity(canvas.Pix[off], canvas.Pix[off+1], canvas.Pix[off+2]))
			off += 4
		}
	}

	return out, nil
}

// intensity maps an 8-bit RGB triple to [0, 1], darker is larger.
func intensity(r, g, b uint8) float64 {
	gray := (float64(r) + float64(g) + float64(b)) / 3

	return (255 - gray) / 255
}
