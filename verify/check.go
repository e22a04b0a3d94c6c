package verify

import (
	"fmt"

	"github.com/katalvlaran/matverify/matrix"
)

// Check computes ref = a × b and compares it with the claimed product c.
//
// Outcomes:
//   - OK when every cell of c equals ref;
//   - Mismatch with the exact max |c - ref| otherwise;
//   - Error when a and b cannot be multiplied, when a cell of a × b does not
//     fit in int64 (matrix.ErrOverflow), or when c's shape is not
//     a.Rows × b.Cols (there is no meaningful elementwise deviation then).
func Check(a, b, c matrix.Matrix) Verdict {
	ref, err := matrix.Mul(a, b)
	if err != nil {
		return Errored(err)
	}
	if err = matrix.ValidateNotNil(c); err != nil {
		return Errored(err)
	}
	if c.Rows() != ref.Rows() || c.Cols() != ref.Cols() {
		return Errored(fmt.Errorf("claimed product is %dx%d, want %dx%d: %w",
			c.Rows(), c.Cols(), ref.Rows(), ref.Cols(), matrix.ErrDimensionMismatch))
	}

	d, err := matrix.Compare(c, ref)
	if err != nil {
		return Errored(err)
	}
	if d.Equal() {
		return OK()
	}

	return Mismatch(d)
}
