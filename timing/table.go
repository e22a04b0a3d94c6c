package timing

import (
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Row is one aggregated (parallelism, size) cell.
type Row struct {
	Key
	Mean  float64 // arithmetic mean of Elapsed, seconds
	Count int     // number of samples averaged
}

// Table is the aggregated timing, sorted by parallelism then size.
type Table struct {
	Rows []Row
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.Rows) }

// Parallelism returns the distinct parallelism levels, ascending.
func (t Table) Parallelism() []int {
	var out []int
	for _, r := range t.Rows {
		if n := len(out); n == 0 || out[n-1] != r.Parallelism {
			out = append(out, r.Parallelism)
		}
	}

	return out
}

// Series returns the rows of one parallelism level, ascending by size.
func (t Table) Series(parallelism int) []Row {
	var out []Row
	for _, r := range t.Rows {
		if r.Parallelism == parallelism {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Size < out[j].Size })

	return out
}

// Mean looks up the mean of k.
func (t Table) Mean(k Key) (float64, bool) {
	i := sort.Search(len(t.Rows), func(i int) bool { return compareKeys(t.Rows[i].Key, k) >= 0 })
	if i < len(t.Rows) && t.Rows[i].Key == k {
		return t.Rows[i].Mean, true
	}

	return 0, false
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Render draws the table for a terminal.
func (t Table) Render() string {
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Parallelism", "Size", "Mean time (s)", "Samples").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, r := range t.Rows {
		tbl.Row(
			strconv.Itoa(r.Parallelism),
			strconv.Itoa(r.Size),
			strconv.FormatFloat(r.Mean, 'f', 6, 64),
			strconv.Itoa(r.Count),
		)
	}

	return tbl.String()
}
