package timing

import "errors"

var (
	// ErrFormat marks a source whose structure is unusable (missing table
	// columns, invalid pattern or glob). The source contributes zero samples.
	ErrFormat = errors.New("timing: unexpected source format")

	// ErrMissing marks a source whose file (or every glob match) is absent.
	ErrMissing = errors.New("timing: source not found")

	// ErrParse marks a read failure in the middle of a source.
	ErrParse = errors.New("timing: read error")
)
