// SPDX-License-Identifier: MIT

package network_test

import (
	"testing"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/katalvlaran/lvnet/network"
)

// dense builds an r×c matrix from row-major values or fails the test.
func dense(t testing.TB, r, c int, vals ...float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("dense: want %d values, got %d", r*c, len(vals))
	}
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = m.Set(i, j, vals[i*c+j]); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// mustNew builds a seeded network or fails the test.
func mustNew(t testing.TB, in, hid, out int, opts ...network.Option) *network.FeedForward {
	t.Helper()
	n, err := network.New(in, hid, out, opts...)
	if err != nil {
		t.Fatalf("New(%d,%d,%d): %v", in, hid, out, err)
	}

	return n
}

// flat returns the row-major contents of m.
func flat(t testing.TB, m matrix.Matrix) []float64 {
	t.Helper()
	out := make([]float64, 0, m.Rows()*m.Cols())
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			out = append(out, v)
		}
	}

	return out
}
