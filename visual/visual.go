// SPDX-License-Identifier: MIT

// Package visual turns network parameters into drawable data: neuron
// positions and styled connections. It does no drawing itself.
//
// Conventions:
//   - A weight is scaled by 1/WeightScale and clipped to [−1, 1]; the
//     magnitude becomes the stroke opacity.
//   - Positive weights are blue, zero and negative weights are red.
//   - Layers are laid out left to right at quarter widths; at most
//     MaxNeuronsDisplay neurons per layer are shown.
package visual

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/network"
)

const (
	// WeightScale maps a weight of ±WeightScale to full opacity.
	WeightScale = 5.0

	// MaxNeuronsDisplay caps the number of neurons drawn per layer.
	MaxNeuronsDisplay = 20
)

// Stroke colors.
var (
	Positive = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Negative = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// ErrInvalidLayout is returned by Layout for non-positive canvas or layer sizes.
var ErrInvalidLayout = errors.New("visual: invalid layout")

// Stroke is the style of one connection line.
type Stroke struct {
	Color   color.RGBA
	Opacity float64 // in [0, 1]
}

// Point is a neuron center in canvas coordinates.
type Point struct {
	X, Y float64
}

// Connection links neuron From of one layer to neuron To of the next.
type Connection struct {
	From, To int
	Weight   float64
	Stroke   Stroke
}

// Diagram is a renderable snapshot of a one-hidden-layer network.
type Diagram struct {
	InputHidden  []Connection
	HiddenOutput []Connection
}

// StyleWeight returns the stroke for a single weight.
func StyleWeight(w float64) Stroke {
	return styleNormalized(w, math.Max(-1, math.Min(1, w/WeightScale)))
}

func styleNormalized(w, normalized float64) Stroke {
	s := Stroke{Color: Negative, Opacity: math.Abs(normalized)}
	if w > 0 {
		s.Color = Positive
	}

	return s
}

// Layout places len(sizes) layers on a width×height canvas. Layer k sits at
// x = width/4·(k+1); neuron i of a layer with n shown neurons sits at
// y = (i+1)·height/(n+1).
func Layout(width, height float64, sizes ...int) ([][]Point, error) {
	if !(width > 0) || !(height > 0) || len(sizes) == 0 {
		return nil, fmt.Errorf("visual.Layout: %gx%g, %d layers: %w", width, height, len(sizes), ErrInvalidLayout)
	}
	spacing := width / 4
	layers := make([][]Point, len(sizes))
	var k, i, n int
	for k = range sizes {
		if sizes[k] <= 0 {
			return nil, fmt.Errorf("visual.Layout: layer %d size %d: %w", k, sizes[k], ErrInvalidLayout)
		}
		n = shown(sizes[k])
		layers[k] = make([]Point, n)
		for i = 0; i < n; i++ {
			layers[k][i] = Point{
				X: spacing * float64(k+1),
				Y: float64(i+1) * height / float64(n+1),
			}
		}
	}

	return layers, nil
}

// Connections styles the weights of a to×from weight matrix w, where
// w[j][i] connects neuron i to neuron j. Only the first maxFrom source and
// maxTo target neurons are included. Results are ordered by From, then To.
//
// Errors:
//   - matrix.ErrNilMatrix.
func Connections(w matrix.Matrix, maxFrom, maxTo int) ([]Connection, error) {
	if err := matrix.ValidateNotNil(w); err != nil {
		return nil, fmt.Errorf("visual.Connections: %w", err)
	}
	scaled, err := matrix.Map(w, func(_, _ int, v float64) float64 { return v / WeightScale })
	if err != nil {
		return nil, fmt.Errorf("visual.Connections: %w", err)
	}
	normalized, err := matrix.Clip(scaled, -1, 1)
	if err != nil {
		return nil, fmt.Errorf("visual.Connections: %w", err)
	}

	from := min(w.Cols(), max(maxFrom, 0))
	to := min(w.Rows(), max(maxTo, 0))
	out := make([]Connection, 0, from*to)
	var i, j int
	var weight, nv float64
	for i = 0; i < from; i++ {
		for j = 0; j < to; j++ {
			if weight, err = w.At(j, i); err != nil {
				return nil, fmt.Errorf("visual.Connections: %w", err)
			}
			if nv, err = normalized.At(j, i); err != nil {
				return nil, fmt.Errorf("visual.Connections: %w", err)
			}
			out = append(out, Connection{From: i, To: j, Weight: weight, Stroke: styleNormalized(weight, nv)})
		}
	}

	return out, nil
}

// Snapshot styles both weight layers of p, each capped at MaxNeuronsDisplay
// neurons per side.
func Snapshot(p network.Parameters) (Diagram, error) {
	if _, _, _, err := p.Sizes(); err != nil {
		return Diagram{}, fmt.Errorf("visual.Snapshot: %w", err)
	}
	ih, err := Connections(p.WeightsInputHidden, MaxNeuronsDisplay, MaxNeuronsDisplay)
	if err != nil {
		return Diagram{}, err
	}
	ho, err := Connections(p.WeightsHiddenOutput, MaxNeuronsDisplay, MaxNeuronsDisplay)
	if err != nil {
		return Diagram{}, err
	}

	return Diagram{InputHidden: ih, HiddenOutput: ho}, nil
}

func shown(n int) int { return min(n, MaxNeuronsDisplay) }
