package timing

import (
	"math"
	"strconv"
	"strings"
)

// Sample is one raw observation.
type Sample struct {
	Parallelism int     // threads or processes, ≥ 1
	Size        int     // matrix dimension N of an N×N product, > 0
	Elapsed     float64 // seconds, ≥ 0
}

// Key groups samples.
type Key struct {
	Parallelism int
	Size        int
}

// Key returns the grouping key of s.
func (s Sample) Key() Key { return Key{Parallelism: s.Parallelism, Size: s.Size} }

// Valid reports whether s satisfies the sample invariants.
func (s Sample) Valid() bool {
	return s.Parallelism >= 1 && s.Size > 0 &&
		s.Elapsed >= 0 && !math.IsInf(s.Elapsed, 0) && !math.IsNaN(s.Elapsed)
}

// Batch is what one source yields.
//   - Dropped counts malformed rows; header and comment lines are not counted.
//   - Omitted lists parallelism levels whose file was absent.
type Batch struct {
	Samples []Sample
	Dropped int
	Omitted []int
}

// Merge appends o into b.
func (b *Batch) Merge(o Batch) {
	b.Samples = append(b.Samples, o.Samples...)
	b.Dropped += o.Dropped
	b.Omitted = append(b.Omitted, o.Omitted...)
}

// add keeps s when valid and counts it as dropped otherwise.
func (b *Batch) add(s Sample) {
	if !s.Valid() {
		b.Dropped++
		return
	}
	b.Samples = append(b.Samples, s)
}

// parseSeconds accepts "0.125", "0,125" and exponent forms like "1.5e-05".
func parseSeconds(tok string) (float64, error) {
	return strconv.ParseFloat(strings.Replace(strings.TrimSpace(tok), ",", ".", 1), 64)
}

// parseCount parses a non-negative decimal integer field.
func parseCount(tok string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(tok))
}
