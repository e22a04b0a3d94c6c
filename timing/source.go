package timing

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"sort"

	"go.uber.org/zap"
)

// Source yields samples from an fs.FS (os.DirFS(".") in the CLI).
type Source interface {
	// Name identifies the source in logs.
	Name() string
	// Collect reads the source. A non-nil error means the source contributed
	// only what the returned Batch holds (usually nothing).
	Collect(fsys fs.FS) (Batch, error)
}

// Compile-time checks.
var (
	_ Source = ColumnsFile{}
	_ Source = TableFile{}
	_ Source = ThreadLogs{}
	_ Source = Triples{}
	_ Source = Auto{}
)

// ColumnsFile is a "<size> <time>" file; Parallelism defaults to 1.
type ColumnsFile struct {
	Path        string
	Parallelism int
}

func (s ColumnsFile) Name() string { return "columns:" + s.Path }

func (s ColumnsFile) Collect(fsys fs.FS) (Batch, error) {
	data, err := readSource(fsys, s.Path)
	if err != nil {
		return Batch{}, err
	}

	return ParseColumns(bytes.NewReader(data), defaultParallelism(s.Parallelism))
}

// TableFile is a delimited table with a header row.
// A zero Columns value means DefaultColumns().
type TableFile struct {
	Path    string
	Columns Columns
}

func (s TableFile) Name() string { return "table:" + s.Path }

func (s TableFile) Collect(fsys fs.FS) (Batch, error) {
	data, err := readSource(fsys, s.Path)
	if err != nil {
		return Batch{}, err
	}

	return ParseTable(bytes.NewReader(data), s.columns())
}

func (s TableFile) columns() Columns {
	if len(s.Columns.Parallelism) == 0 && len(s.Columns.Size) == 0 && len(s.Columns.Time) == 0 {
		return DefaultColumns()
	}

	return s.Columns
}

// Auto reads one file as a TableFile when its header names the required
// columns, and as a ColumnsFile otherwise.
type Auto struct {
	Path        string
	Parallelism int
	Columns     Columns
}

func (s Auto) Name() string { return "auto:" + s.Path }

func (s Auto) Collect(fsys fs.FS) (Batch, error) {
	data, err := readSource(fsys, s.Path)
	if err != nil {
		return Batch{}, err
	}
	b, err := ParseTable(bytes.NewReader(data), TableFile{Columns: s.Columns}.columns())
	if errors.Is(err, ErrFormat) {
		return ParseColumns(bytes.NewReader(data), defaultParallelism(s.Parallelism))
	}

	return b, err
}

// DefaultThreadCounts are the per-thread log files the MPI lab writes.
var DefaultThreadCounts = []int{1, 2, 4, 8, 16, 20}

// DefaultThreadLogName formats a count into a file name.
const DefaultThreadLogName = "%d_threads.txt"

// ThreadLogs is a family of per-parallelism log files. A missing file omits
// that parallelism level and is not an error.
type ThreadLogs struct {
	Counts     []int  // parallelism levels; DefaultThreadCounts when empty
	NameFormat string // fmt verb for the count; DefaultThreadLogName when empty
	Pattern    string // DefaultThreadLogPattern when empty
}

func (s ThreadLogs) Name() string { return "thread-logs:" + s.nameFormat() }

func (s ThreadLogs) nameFormat() string {
	if s.NameFormat == "" {
		return DefaultThreadLogName
	}

	return s.NameFormat
}

func (s ThreadLogs) Collect(fsys fs.FS) (Batch, error) {
	pattern := s.Pattern
	if pattern == "" {
		pattern = DefaultThreadLogPattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Batch{}, fmt.Errorf("%w: pattern %q: %w", ErrFormat, pattern, err)
	}
	counts := s.Counts
	if len(counts) == 0 {
		counts = DefaultThreadCounts
	}

	var out Batch
	for _, p := range counts {
		data, err := readSource(fsys, fmt.Sprintf(s.nameFormat(), p))
		if err != nil {
			out.Omitted = append(out.Omitted, p)
			continue
		}
		b, err := ParseThreadLog(bytes.NewReader(data), p, re)
		if err != nil {
			return out, err
		}
		out.Merge(b)
	}

	return out, nil
}

// DefaultTriplesGlob matches the MPI lab's per-run timing files.
const DefaultTriplesGlob = "timings_mpi_*.txt"

// Triples reads every file matching Glob, in sorted name order.
type Triples struct {
	Glob string // DefaultTriplesGlob when empty
}

func (s Triples) glob() string {
	if s.Glob == "" {
		return DefaultTriplesGlob
	}

	return s.Glob
}

func (s Triples) Name() string { return "triples:" + s.glob() }

func (s Triples) Collect(fsys fs.FS) (Batch, error) {
	names, err := fs.Glob(fsys, s.glob())
	if err != nil {
		return Batch{}, fmt.Errorf("%w: glob %q: %w", ErrFormat, s.glob(), err)
	}
	if len(names) == 0 {
		return Batch{}, fmt.Errorf("%w: no file matches %q", ErrMissing, s.glob())
	}
	sort.Strings(names)

	var out Batch
	for _, name := range names {
		data, err := readSource(fsys, name)
		if err != nil {
			continue // vanished between Glob and Open
		}
		b, err := ParseTriples(bytes.NewReader(data))
		if err != nil {
			return out, err
		}
		out.Merge(b)
	}

	return out, nil
}

// CollectAll runs every source, logs its outcome and merges what it yields.
// Per-source errors are returned for diagnostics; none of them stops the others.
func CollectAll(fsys fs.FS, logger *zap.Logger, sources ...Source) (Batch, []error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	var (
		all  Batch
		errs []error
	)
	for _, src := range sources {
		b, err := src.Collect(fsys)
		all.Merge(b)
		fields := []zap.Field{
			zap.String("source", src.Name()),
			zap.Int("samples", len(b.Samples)),
			zap.Int("dropped", b.Dropped),
		}
		if len(b.Omitted) > 0 {
			fields = append(fields, zap.Ints("omitted_parallelism", b.Omitted))
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
			logger.Warn("timing source failed", append(fields, zap.Error(err))...)
			continue
		}
		logger.Info("timing source collected", fields...)
	}

	return all, errs
}

// readSource reads a whole file; absence maps to ErrMissing.
func readSource(fsys fs.FS, name string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrMissing, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return data, nil
}

func defaultParallelism(p int) int {
	if p < 1 {
		return 1
	}

	return p
}
