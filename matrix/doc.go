// Package matrix holds the integer matrices of the verifier: storage, text
// loading and the reference product.
//
// The matrix package provides:
//
//   - Dense, a row-major int64 grid with bounds-checked At/Set.
//   - Read/ReadFile/ReadFS, the whitespace-delimited text loader; every
//     failure wraps ErrParse.
//   - Mul, the plain triple-loop reference product used as the correctness
//     oracle; incompatible shapes fail with ErrDimensionMismatch.
//   - Compare, an exact elementwise comparison reporting the maximum absolute
//     deviation, the number of differing cells and the first one.
//
// Matrices are small enough for the oracle to be a diagnostic, never a
// performance target: no blocking, no goroutines.
package matrix
