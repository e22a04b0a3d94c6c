// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels and the loader return these sentinels (possibly wrapped with
// call-site context) and tests check them via errors.Is. No exported function
// panics on a user-triggered error condition.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so that verdict lines in the
// report can be traced back to this package by grep. Wrap with
// fmt.Errorf("ctx: %w", ErrX) at the outer boundary; callers use errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or Compare on different shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrParse is returned by the text loader for any malformed input:
	// unreadable file, non-integer token, ragged rows or an empty grid.
	ErrParse = errors.New("matrix: parse error")

	// ErrRagged marks a grid whose rows do not share one length.
	// Always returned together with ErrParse.
	ErrRagged = errors.New("matrix: rows have inconsistent lengths")

	// ErrOverflow indicates that a cell of the reference product does not fit
	// in int64. Intermediate sums may exceed the range; only the final value counts.
	ErrOverflow = errors.New("matrix: product cell overflows int64")
)

// matrixErrorf wraps err with an operation tag ("Mul", "Compare", ...).
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
