package timing

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// DefaultThreadLogPattern matches the MPI producer's summary line,
// "[MPI] Matrix size: 400 | Mean time for 10 tries: 0.0312 s".
// Group 1 is the size, group 2 the seconds.
const DefaultThreadLogPattern = `Matrix size: (\d+) .*?: ([0-9.]+(?:[eE][-+]?\d+)?)`

// ParseColumns reads "<size> <time>" lines and tags every sample with the
// given parallelism.
//
// A line whose first token is not numeric (a header such as
// "Размер	Среднее время (сек)" or a comment) is skipped without counting. A line
// with a numeric first token but a bad or missing time is dropped. Extra
// columns are ignored.
func ParseColumns(r io.Reader, parallelism int) (Batch, error) {
	var b Batch
	err := scanLines(r, func(fields []string) {
		if _, err := parseSeconds(fields[0]); err != nil {
			return // header-like
		}
		if len(fields) < 2 {
			b.Dropped++
			return
		}
		size, err := parseCount(fields[0])
		if err != nil {
			b.Dropped++
			return
		}
		secs, err := parseSeconds(fields[1])
		if err != nil {
			b.Dropped++
			return
		}
		b.add(Sample{Parallelism: parallelism, Size: size, Elapsed: secs})
	})

	return b, err
}

// ParseTriples reads "<parallelism> <size> <time>" lines. Blank lines are
// ignored; any other line that is not exactly three valid fields is dropped.
func ParseTriples(r io.Reader) (Batch, error) {
	var b Batch
	err := scanLines(r, func(fields []string) {
		if len(fields) != 3 {
			b.Dropped++
			return
		}
		p, errP := parseCount(fields[0])
		size, errS := parseCount(fields[1])
		secs, errT := parseSeconds(fields[2])
		if errP != nil || errS != nil || errT != nil {
			b.Dropped++
			return
		}
		b.add(Sample{Parallelism: p, Size: size, Elapsed: secs})
	})

	return b, err
}

// ParseThreadLog extracts samples from free-text log lines using re, whose
// first two groups capture size and seconds. Lines that do not match are
// ignored; matches with unparsable groups are dropped.
func ParseThreadLog(r io.Reader, parallelism int, re *regexp.Regexp) (Batch, error) {
	if re == nil || re.NumSubexp() < 2 {
		return Batch{}, fmt.Errorf("%w: pattern needs two capture groups", ErrFormat)
	}
	var b Batch
	sc := newScanner(r)
	for sc.Scan() {
		m := re.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		size, errS := parseCount(m[1])
		secs, errT := parseSeconds(m[2])
		if errS != nil || errT != nil {
			b.Dropped++
			continue
		}
		b.add(Sample{Parallelism: parallelism, Size: size, Elapsed: secs})
	}
	if err := sc.Err(); err != nil {
		return b, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return b, nil
}

// Columns names the accepted header aliases of a delimited table. Matching is
// case-insensitive and ignores surrounding spaces.
type Columns struct {
	Parallelism []string
	Size        []string
	Time        []string
}

// DefaultColumns accepts the lab producers' headers and their English forms.
func DefaultColumns() Columns {
	return Columns{
		Parallelism: []string{"Потоки", "threads", "parallelism", "processes", "workers"},
		Size:        []string{"Размер", "size", "n"},
		Time:        []string{"Среднее время (сек)", "avg_time", "average time (s)", "mean", "time", "elapsed"},
	}
}

// ParseTable reads a delimited table with a header row. The delimiter is a
// tab when the header holds one, otherwise ';' or ','.
//
// A header lacking any required column returns ErrFormat and no samples.
// Rows with too few fields or unparsable values are dropped.
func ParseTable(r io.Reader, cols Columns) (Batch, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Batch{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = detectDelimiter(data)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return Batch{}, fmt.Errorf("%w: no header row: %w", ErrFormat, err)
	}
	ip, is, it := findColumn(header, cols.Parallelism), findColumn(header, cols.Size), findColumn(header, cols.Time)
	if ip < 0 || is < 0 || it < 0 {
		return Batch{}, fmt.Errorf("%w: want columns %s / %s / %s, found %q", ErrFormat,
			first(cols.Parallelism), first(cols.Size), first(cols.Time), header)
	}
	need := max(ip, is, it) + 1

	var b Batch
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			b.Dropped++
			continue
		}
		if err != nil {
			return b, fmt.Errorf("%w: %w", ErrParse, err)
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue // blank line
		}
		if len(rec) < need {
			b.Dropped++
			continue
		}
		p, errP := parseCount(rec[ip])
		size, errS := parseCount(rec[is])
		secs, errT := parseSeconds(rec[it])
		if errP != nil || errS != nil || errT != nil {
			b.Dropped++
			continue
		}
		b.add(Sample{Parallelism: p, Size: size, Elapsed: secs})
	}

	return b, nil
}

// detectDelimiter inspects the first line only.
func detectDelimiter(data []byte) rune {
	line := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		line = data[:i]
	}
	switch {
	case bytes.IndexByte(line, '\t') >= 0:
		return '\t'
	case bytes.IndexByte(line, ';') >= 0:
		return ';'
	default:
		return ','
	}
}

func findColumn(header []string, aliases []string) int {
	for i, h := range header {
		h = strings.TrimSpace(h)
		for _, a := range aliases {
			if strings.EqualFold(h, a) {
				return i
			}
		}
	}

	return -1
}

func first(aliases []string) string {
	if len(aliases) == 0 {
		return "?"
	}

	return fmt.Sprintf("%q", aliases[0])
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)

	return sc
}

// scanLines calls fn with the whitespace fields of every non-blank line.
func scanLines(r io.Reader, fn func(fields []string)) error {
	sc := newScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		fn(fields)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	return nil
}
