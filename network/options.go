// SPDX-License-Identifier: MIT

// Package network: functional configuration for FeedForward construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies setters over the defaults.
//
// Design goals:
//   - No global state: every network owns its random source.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package network

import (
	"math"
	"math/rand"
	"time"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLearningRate scales every gradient step.
	DefaultLearningRate = 0.1

	// DefaultInitLow and DefaultInitHigh bound the uniform distribution
	// U[low, high) that initializes all weights and biases.
	DefaultInitLow  = -1.0
	DefaultInitHigh = 1.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLearningRateInvalid = "network: WithLearningRate: rate must be finite and > 0"
	panicInitRangeInvalid    = "network: WithInitRange: bounds must be finite with low < high"
	panicRandNil             = "network: WithRand: rng must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	learningRate float64    // > 0; DefaultLearningRate
	initLow      float64    // DefaultInitLow
	initHigh     float64    // DefaultInitHigh
	rng          *rand.Rand // nil ⇒ seeded from the clock in gatherOptions
}

// WithLearningRate sets the step size used by Train.
// Panics when rate is not a finite positive number.
func WithLearningRate(rate float64) Option {
	if !(rate > 0) || math.IsInf(rate, 0) {
		panic(panicLearningRateInvalid)
	}

	return func(o *Options) { o.learningRate = rate }
}

// WithInitRange sets the uniform initialization interval [low, high).
// Only New uses it; NewWithParameters takes the parameters as given.
// Panics when the bounds are not finite or low >= high.
func WithInitRange(low, high float64) Option {
	if math.IsNaN(low) || math.IsNaN(high) || math.IsInf(low, 0) || math.IsInf(high, 0) || low >= high {
		panic(panicInitRangeInvalid)
	}

	return func(o *Options) {
		o.initLow = low
		o.initHigh = high
	}
}

// WithSeed makes initialization reproducible by seeding a private source.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand makes the network draw its initial parameters from rng.
// The network does not retain rng after construction.
// Panics on nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic(panicRandNil)
	}

	return func(o *Options) { o.rng = rng }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		learningRate: DefaultLearningRate,
		initLow:      DefaultInitLow,
		initHigh:     DefaultInitHigh,
	}
}

// gatherOptions applies user-provided setters on top of defaults and fills in
// a clock-seeded random source when none was configured.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return o
}
