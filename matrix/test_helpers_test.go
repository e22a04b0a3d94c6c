// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the kernels and the loader.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/matverify/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) path in Mul.
type hide struct{ matrix.Matrix }

// mustFromRows builds a *Dense from literal rows or fails the test.
func mustFromRows(tb testing.TB, rows [][]int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		tb.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// randDense fills an r×c *Dense with values in [0, 100] from a fixed seed,
// the same range the lab producers use.
func randDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			_ = m.Set(i, j, rng.Int63n(101))
		}
	}

	return m
}
