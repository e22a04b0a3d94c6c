package matrix_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matverify/matrix"
)

// ExampleMul multiplies two 2×2 operands read from text.
func ExampleMul() {
	a, _ := matrix.Read(strings.NewReader("1 2\n3 4\n"))
	b, _ := matrix.Read(strings.NewReader("5 6\n7 8\n"))

	c, err := matrix.Mul(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(c)

	// Output:
	// [19, 22]
	// [43, 50]
}

// ExampleCompare reports the deviation of a wrong claimed product.
func ExampleCompare() {
	ref, _ := matrix.NewFromRows([][]int64{{19, 22}, {43, 50}})
	claimed, _ := matrix.NewFromRows([][]int64{{19, 22}, {43, 51}})

	d, _ := matrix.Compare(claimed, ref)
	fmt.Println(d.Equal(), d.MaxAbs, d.Count, d.First)

	// Output:
	// false 1 1 {1 1}
}
