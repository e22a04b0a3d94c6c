package timing_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/matverify/timing"
)

func ExampleAggregate() {
	lab1, _ := timing.ParseColumns(strings.NewReader("Размер\tСреднее время (сек)\n100\t0,4\n100\t0,2\n"), 1)
	mpi, _ := timing.ParseTriples(strings.NewReader("4 100 0.1\n"))

	agg := timing.NewAggregator()
	agg.Add(lab1)
	agg.Add(mpi)
	for _, r := range agg.Table().Rows {
		fmt.Printf("p=%d n=%d mean=%.2f count=%d\n", r.Parallelism, r.Size, r.Mean, r.Count)
	}
	// Output:
	// p=1 n=100 mean=0.30 count=2
	// p=4 n=100 mean=0.10 count=1
}
