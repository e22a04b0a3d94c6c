// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage, the reference
// kernel and the comparator. Errors live in errors.go, validators in
// validators.go.
package matrix

// Matrix is a rectangular grid of int64 values.
// All methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (int64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v int64) error

	// Clone returns a deep copy of the matrix.
	Clone() Matrix
}

// Cell addresses one element of a matrix (row, column), zero-based.
type Cell struct {
	Row int // row index
	Col int // column index
}

// Diff summarizes an elementwise comparison of a claimed matrix against a
// reference of the same shape.
//   - MaxAbs is max |claimed - reference| over all cells (0 when equal). It is
//     unsigned: the distance between two int64 values can exceed math.MaxInt64.
//   - Count is the number of differing cells.
//   - First is the first differing cell in row-major order; valid only when Count > 0.
type Diff struct {
	MaxAbs uint64 // largest absolute deviation
	Count  int    // number of cells that differ
	First  Cell   // first differing cell (row-major scan)
}

// Equal reports whether the comparison found no differing cell.
func (d Diff) Equal() bool { return d.Count == 0 }
