// Package report renders verdicts into the flat text report.
//
// One line per case, in the order cases were added:
//
//	✅ 64x64/set_01: OK
//	❌ 64x64/set_02: ERROR (max diff: 3)
//	⚠️ 64x64/set_03: skipped (missing files: B.txt)
//	⚠️ 64x64/set_04: error: matrix: parse error: ...
//
// followed by a blank line and "<success>/<total> cases verified successfully".
// A Reporter owns its lines; there is no package-level state.
package report

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/matverify/verify"
)

// Status symbols.
const (
	SymbolOK      = "✅"
	SymbolFail    = "❌"
	SymbolWarning = "⚠️"
)

// Tally counts successes over every case considered, skipped and errored ones included.
type Tally struct {
	Success int
	Total   int
}

// String renders the summary line.
func (t Tally) String() string {
	return fmt.Sprintf("%d/%d cases verified successfully", t.Success, t.Total)
}

// Reporter accumulates verdict lines.
type Reporter struct {
	lines []string
	tally Tally
}

// New returns an empty Reporter.
func New() *Reporter { return &Reporter{} }

// Add appends the line for res and updates the tally.
func (r *Reporter) Add(res verify.Result) {
	r.lines = append(r.lines, Line(res))
	r.tally.Total++
	if res.Verdict.Passed() {
		r.tally.Success++
	}
}

// AddAll adds results in order.
func (r *Reporter) AddAll(results []verify.Result) {
	for _, res := range results {
		r.Add(res)
	}
}

// Tally returns the current counts.
func (r *Reporter) Tally() Tally { return r.tally }

// Lines returns a copy of the verdict lines.
func (r *Reporter) Lines() []string {
	out := make([]string, len(r.lines))
	copy(out, r.lines)

	return out
}

// Line formats one result as "<symbol> <key>: <detail>".
func Line(res verify.Result) string {
	v := res.Verdict
	switch v.Status {
	case verify.StatusOK:
		return fmt.Sprintf("%s %s: OK", SymbolOK, res.Key)
	case verify.StatusMismatch:
		return fmt.Sprintf("%s %s: ERROR (max diff: %d)", SymbolFail, res.Key, v.MaxAbsDiff)
	case verify.StatusSkipped:
		return fmt.Sprintf("%s %s: skipped (%s)", SymbolWarning, res.Key, v.Reason)
	default:
		return fmt.Sprintf("%s %s: error: %s", SymbolWarning, res.Key, oneLine(v.Reason))
	}
}

// oneLine keeps multi-line error text from breaking the line-per-case layout.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// WriteTo writes every line, a blank line and the tally line.
func (r *Reporter) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	for _, l := range r.lines {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}
	buf.WriteByte('\n')
	buf.WriteString(r.tally.String())
	buf.WriteByte('\n')

	return buf.WriteTo(w)
}

// WriteFile replaces path with the report. The text goes to a temporary file
// in the same directory first and is renamed over path, so a reader never sees
// a half-written report.
func (r *Reporter) WriteFile(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err = r.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("report: close %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("report: replace %s: %w", path, err)
	}

	return nil
}
