package timing

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Aggregator groups samples by Key. The zero value is not usable; call
// NewAggregator.
type Aggregator struct {
	groups  map[Key][]float64
	dropped int
	omitted map[int]struct{}
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		groups:  make(map[Key][]float64),
		omitted: make(map[int]struct{}),
	}
}

// Add ingests a batch, counting its dropped rows and omitted levels.
func (a *Aggregator) Add(b Batch) {
	for _, s := range b.Samples {
		a.AddSample(s)
	}
	a.dropped += b.Dropped
	for _, p := range b.Omitted {
		a.omitted[p] = struct{}{}
	}
}

// AddSample ingests one sample; an invalid sample is counted as dropped and
// reported false.
func (a *Aggregator) AddSample(s Sample) bool {
	if !s.Valid() {
		a.dropped++
		return false
	}
	k := s.Key()
	a.groups[k] = append(a.groups[k], s.Elapsed)

	return true
}

// Dropped is the number of rows rejected so far, across all sources.
func (a *Aggregator) Dropped() int { return a.dropped }

// Omitted lists, in ascending order, parallelism levels whose source file was
// absent and that received no sample from any other source.
func (a *Aggregator) Omitted() []int {
	present := make(map[int]bool, len(a.groups))
	for k := range a.groups {
		present[k.Parallelism] = true
	}
	var out []int
	for p := range a.omitted {
		if !present[p] {
			out = append(out, p)
		}
	}
	slices.Sort(out)

	return out
}

// Table reduces every group to its arithmetic mean. Rows are sorted by
// parallelism, then size; each key present in the input appears exactly once.
func (a *Aggregator) Table() Table {
	keys := make([]Key, 0, len(a.groups))
	for k := range a.groups {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeys)

	rows := make([]Row, 0, len(keys))
	for _, k := range keys {
		vals := a.groups[k]
		rows = append(rows, Row{Key: k, Mean: stat.Mean(vals, nil), Count: len(vals)})
	}

	return Table{Rows: rows}
}

// Aggregate is the one-shot form: group and average samples.
func Aggregate(samples []Sample) Table {
	a := NewAggregator()
	for _, s := range samples {
		a.AddSample(s)
	}

	return a.Table()
}

func compareKeys(x, y Key) int {
	if x.Parallelism != y.Parallelism {
		return x.Parallelism - y.Parallelism
	}

	return x.Size - y.Size
}
