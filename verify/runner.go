package verify

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/matverify/cases"
	"github.com/katalvlaran/matverify/matrix"
)

// Loader reads one matrix file from fsys.
type Loader interface {
	Load(fsys fs.FS, name string) (matrix.Matrix, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(fsys fs.FS, name string) (matrix.Matrix, error)

// Load calls f.
func (f LoaderFunc) Load(fsys fs.FS, name string) (matrix.Matrix, error) { return f(fsys, name) }

// TextLoader reads the whitespace-delimited integer format via matrix.ReadFS.
var TextLoader Loader = LoaderFunc(func(fsys fs.FS, name string) (matrix.Matrix, error) {
	m, err := matrix.ReadFS(fsys, name)
	if err != nil {
		return nil, err // keep the interface nil, not a typed nil *Dense
	}

	return m, nil
})

// Result pairs a case key with its verdict.
// Elapsed is the oracle time (reference multiply + compare); it is a
// diagnostic and never enters the report.
type Result struct {
	Key     string
	Verdict Verdict
	Elapsed time.Duration
}

// Runner scores enumerated entries one by one.
type Runner struct {
	loader Loader
	logger *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLoader replaces TextLoader.
func WithLoader(l Loader) Option {
	return func(r *Runner) {
		if l != nil {
			r.loader = l
		}
	}
}

// WithLogger attaches a logger; the default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRunner returns a Runner with TextLoader and a no-op logger unless overridden.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{loader: TextLoader, logger: zap.NewNop()}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}

	return r
}

// Run scores every entry in order and returns one Result per entry.
// len(result) == len(entries) always.
func (r *Runner) Run(fsys fs.FS, entries []cases.Entry) []Result {
	out := make([]Result, 0, len(entries))
	for _, e := range entries {
		res := r.RunEntry(fsys, e)
		r.log(res)
		out = append(out, res)
	}

	return out
}

// RunEntry scores a single entry. A panic inside the loader or the kernel is
// recovered into an Error verdict.
func (r *Runner) RunEntry(fsys fs.FS, e cases.Entry) (res Result) {
	res.Key = e.Key()
	if e.Skip != nil {
		res.Verdict = Skipped(e.Skip.Reason())
		return res
	}
	if e.Case == nil {
		res.Verdict = Errored(errors.New("empty entry"))
		return res
	}

	defer func() {
		if p := recover(); p != nil {
			res.Verdict = Errored(fmt.Errorf("panic: %v", p))
		}
	}()

	c := e.Case
	var ms [3]matrix.Matrix
	for i, name := range [3]string{c.A, c.B, c.C} {
		m, err := r.loader.Load(fsys, name)
		if err != nil {
			res.Verdict = Errored(err)
			return res
		}
		ms[i] = m
	}

	start := time.Now()
	res.Verdict = Check(ms[0], ms[1], ms[2])
	res.Elapsed = time.Since(start)

	return res
}

func (r *Runner) log(res Result) {
	fields := []zap.Field{
		zap.String("case", res.Key),
		zap.Stringer("status", res.Verdict.Status),
	}
	if scored := res.Verdict.Status == StatusOK || res.Verdict.Status == StatusMismatch; scored || res.Elapsed > 0 {
		fields = append(fields, zap.Duration("oracle", res.Elapsed))
	}
	switch res.Verdict.Status {
	case StatusOK:
		r.logger.Debug("case verified", fields...)
	case StatusMismatch:
		r.logger.Warn("case mismatch", append(fields,
			zap.Uint64("max_abs_diff", res.Verdict.MaxAbsDiff),
			zap.Int("cells", res.Verdict.Mismatches),
			zap.Int("first_row", res.Verdict.First.Row),
			zap.Int("first_col", res.Verdict.First.Col),
		)...)
	default:
		r.logger.Warn("case not scored", append(fields, zap.String("reason", res.Verdict.Reason))...)
	}
}
