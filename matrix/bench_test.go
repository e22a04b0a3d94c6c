// Package matrix_test provides benchmarks for the reference kernel and the
// loader, using deterministic random fill for Dense matrices.
package matrix_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/katalvlaran/matverify/matrix"
)

// benchSizes are the matrix sizes to benchmark (the lab producers go up to 1000).
var benchSizes = []int{64, 128, 256}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkD matrix.Diff
)

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, n, 1337)
			B := randDense(b, n, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkCompare(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := randDense(b, n, n, 11)
			C := A.Clone()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Compare(C, A)
				if err != nil {
					b.Fatal(err)
				}
				sinkD = d
			}
		})
	}
}

func BenchmarkRead(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			var buf bytes.Buffer
			if err := matrix.Write(&buf, randDense(b, n, n, 5)); err != nil {
				b.Fatal(err)
			}
			raw := buf.Bytes()
			b.SetBytes(int64(len(raw)))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Read(bytes.NewReader(raw))
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
