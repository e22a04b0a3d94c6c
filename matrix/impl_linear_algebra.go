// SPDX-License-Identifier: MIT

// Package matrix - reference kernel and comparator.
//
// Purpose:
//   - Mul is the correctness oracle's reference product: plain integer
//     arithmetic, fixed loop order, no blocking, no parallelism.
//   - Compare scans a claimed product against the reference and reports the
//     exact maximum absolute deviation.
//
// Determinism:
//   - Both kernels visit cells in row-major order, so Diff.First is stable.

package matrix

import (
	"fmt"
	"math/bits"
)

const (
	opMul     = "Mul"
	opCompare = "Compare"
)

// acc128 is a two's-complement 128-bit accumulator. Every int64×int64 product
// fits, and so does any realistic sum of them.
type acc128 struct {
	hi, lo uint64
}

// addMul adds a*b exactly.
func (s *acc128) addMul(a, b int64) {
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = -ua
	}
	if b < 0 {
		ub = -ub
	}
	hi, lo := bits.Mul64(ua, ub)
	if (a < 0) != (b < 0) {
		var c uint64
		lo, c = bits.Add64(^lo, 1, 0)
		hi, _ = bits.Add64(^hi, 0, c)
	}
	var c uint64
	s.lo, c = bits.Add64(s.lo, lo, 0)
	s.hi, _ = bits.Add64(s.hi, hi, c)
}

// int64 narrows the sum; ok is false when it lies outside the int64 range.
func (s acc128) int64() (v int64, ok bool) {
	neg := s.lo>>63 == 1
	if (!neg && s.hi == 0) || (neg && s.hi == ^uint64(0)) {
		return int64(s.lo), true
	}

	return 0, false
}

// Mul returns the matrix product a × b.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b) (nil → ErrNilMatrix, a.Cols != b.Rows → ErrDimensionMismatch).
//   - Stage 2: allocate Dense(a.Rows, b.Cols).
//   - Stage 3: *Dense × *Dense uses the i-k-j flat loop (zero skip on a[i,k])
//     over one row of 128-bit accumulators; any other implementation falls
//     back to the i-j-k At/Set triple loop.
//
// Behavior highlights:
//   - Exact integer arithmetic: result[i,j] = Σ_k a[i,k]*b[k,j]. A cell whose
//     final value does not fit in int64 fails with ErrOverflow instead of wrapping.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	// Validate inputs via canonical validator
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int // loop iterators
		av, bv  int64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			row := make([]acc128, bCols)
			var rowOffsetA, rowOffsetB int
			for i = 0; i < aRows; i++ {
				clear(row)
				rowOffsetA = i * aCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						row[j].addMul(av, db.data[rowOffsetB+j])
					}
				}
				for j = 0; j < bCols; j++ {
					v, ok := row[j].int64()
					if !ok {
						return nil, matrixErrorf(opMul, fmt.Errorf("cell (%d,%d): %w", i, j, ErrOverflow))
					}
					res.data[i*bCols+j] = v
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	var current acc128
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = acc128{}
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current.addMul(av, bv) // accumulate product
			}
			v, ok := current.int64()
			if !ok {
				return nil, matrixErrorf(opMul, fmt.Errorf("cell (%d,%d): %w", i, j, ErrOverflow))
			}
			res.data[i*bCols+j] = v
		}
	}

	return res, nil
}

// Compare scans claimed against reference cell by cell.
//
// Implementation:
//   - Stage 1: both non-nil and same shape (ErrNilMatrix / ErrDimensionMismatch).
//   - Stage 2: row-major scan; track count, first differing cell and max |claimed - reference|.
//
// Returns:
//   - Diff with MaxAbs == 0 and Count == 0 when every cell matches exactly.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Compare(claimed, reference Matrix) (Diff, error) {
	var d Diff
	if err := ValidateNotNil(claimed); err != nil {
		return d, matrixErrorf(opCompare, err)
	}
	if err := ValidateNotNil(reference); err != nil {
		return d, matrixErrorf(opCompare, err)
	}
	if err := ValidateSameShape(claimed, reference); err != nil {
		return d, matrixErrorf(opCompare, fmt.Errorf("%dx%d vs %dx%d: %w",
			claimed.Rows(), claimed.Cols(), reference.Rows(), reference.Cols(), err))
	}

	rows, cols := reference.Rows(), reference.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			cv, err := claimed.At(i, j)
			if err != nil {
				return Diff{}, matrixErrorf(opCompare, err)
			}
			rv, err := reference.At(i, j)
			if err != nil {
				return Diff{}, matrixErrorf(opCompare, err)
			}
			if cv == rv {
				continue
			}
			if d.Count == 0 {
				d.First = Cell{Row: i, Col: j}
			}
			d.Count++
			if delta := absDiff(cv, rv); delta > d.MaxAbs {
				d.MaxAbs = delta
			}
		}
	}

	return d, nil
}

// absDiff returns |a - b| in uint64, where it always fits
// (|MinInt64 - MaxInt64| = 2^64 - 1).
func absDiff(a, b int64) uint64 {
	if a > b {
		return uint64(a) - uint64(b)
	}

	return uint64(b) - uint64(a)
}
