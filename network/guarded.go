// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"sync"
)

// ErrNilNetwork is returned by NewGuarded for a nil *FeedForward.
var ErrNilNetwork = errors.New("network: nil network")

// Guarded serializes access to a FeedForward: Predict and Parameters share a
// read lock, Train holds the write lock. Predictions never observe a half
// applied training step.
type Guarded struct {
	mu  sync.RWMutex
	net *FeedForward
}

// NewGuarded wraps net. The caller must not use net directly afterwards.
func NewGuarded(net *FeedForward) (*Guarded, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}

	return &Guarded{net: net}, nil
}

// Predict is FeedForward.Predict under the read lock.
func (g *Guarded) Predict(input []float64) ([]float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.net.Predict(input)
}

// Train is FeedForward.Train under the write lock.
func (g *Guarded) Train(input, target []float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.net.Train(input, target)
}

// Parameters returns a consistent deep copy of the current parameters.
func (g *Guarded) Parameters() Parameters {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.net.Parameters()
}

// Sizes returns the topology of the wrapped network. It is fixed, so no lock
// is taken.
func (g *Guarded) Sizes() (input, hidden, output int) {
	return g.net.inputSize, g.net.hiddenSize, g.net.outputSize
}
