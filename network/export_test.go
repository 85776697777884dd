// SPDX-License-Identifier: MIT

package network

// HiddenErrors runs the backward pass without committing it and returns
// wHOᵗ·outputErrors as computed inside Train.
func HiddenErrors(n *FeedForward, input, target []float64) ([]float64, error) {
	s, err := n.backprop(input, target)
	if err != nil {
		return nil, err
	}

	return s.hiddenErrors.ToSlice()
}
