package verify

import (
	"fmt"

	"github.com/katalvlaran/matverify/matrix"
)

// Status classifies a case.
type Status int

const (
	StatusOK       Status = iota // claimed product equals the reference exactly
	StatusMismatch               // shapes agree, at least one cell differs
	StatusSkipped                // the set folder was incomplete or unreadable
	StatusError                  // loading or multiplying failed
)

// String returns "OK", "MISMATCH", "SKIPPED" or "ERROR".
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusMismatch:
		return "MISMATCH"
	case StatusSkipped:
		return "SKIPPED"
	case StatusError:
		return "ERROR"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Verdict is the outcome of one case.
//   - MaxAbsDiff, Mismatches and First are set only for StatusMismatch.
//   - Reason is set only for StatusSkipped and StatusError.
type Verdict struct {
	Status     Status
	MaxAbsDiff uint64
	Mismatches int
	First      matrix.Cell
	Reason     string
}

// OK is the passing verdict.
func OK() Verdict { return Verdict{Status: StatusOK} }

// Mismatch builds a failing verdict from a non-empty comparison.
func Mismatch(d matrix.Diff) Verdict {
	return Verdict{
		Status:     StatusMismatch,
		MaxAbsDiff: d.MaxAbs,
		Mismatches: d.Count,
		First:      d.First,
	}
}

// Skipped marks a case that was never loaded.
func Skipped(reason string) Verdict {
	return Verdict{Status: StatusSkipped, Reason: reason}
}

// Errored marks a case whose loading or multiplication failed.
func Errored(err error) Verdict {
	return Verdict{Status: StatusError, Reason: err.Error()}
}

// Passed reports whether the verdict counts toward the success tally.
func (v Verdict) Passed() bool { return v.Status == StatusOK }
