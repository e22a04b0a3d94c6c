// SPDX-License-Identifier: MIT

// Package matrix - plain-text matrix I/O.
//
// Format:
//   - one row per line, integers separated by one or more spaces/tabs;
//   - blank lines are ignored (a trailing newline is not a row);
//   - every row must have the same number of values.
//
// Every failure (open, read, token, ragged rows, empty grid) wraps ErrParse so
// callers can classify it with a single errors.Is check.

package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes bounds one scanned line; a 4096-wide row of 20-digit values fits.
const maxLineBytes = 16 << 20

// parseErrorf wraps err under ErrParse with a location prefix.
func parseErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}

// Read parses a whitespace-delimited integer grid from r.
//
// Errors:
//   - ErrParse for a bad token ("line L, column C: "x" is not an integer"),
//     ragged rows (also ErrRagged), empty input or a read failure.
//
// Complexity:
//   - Time O(bytes), Space O(r*c).
func Read(r io.Reader) (*Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	var (
		data []int64
		cols int
		rows int
		line int
	)
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue // blank line
		}
		if rows == 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, fmt.Errorf("%w: line %d has %d values, want %d: %w",
				ErrParse, line, len(fields), cols, ErrRagged)
		}
		for j, tok := range fields {
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, parseErrorf("line %d, column %d: %q is not an integer", line, j+1, tok)
			}
			data = append(data, v)
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if rows == 0 {
		return nil, parseErrorf("empty matrix")
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// ReadFile opens path, parses it with Read and closes it.
func ReadFile(path string) (*Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// ReadFS is ReadFile over an fs.FS (os.DirFS in the CLI, fstest.MapFS in tests).
func ReadFS(fsys fs.FS, name string) (*Dense, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return m, nil
}

// Write emits m in the format Read accepts: single spaces, one row per line.
func Write(w io.Writer, m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			if err != nil {
				return err
			}
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, v, 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
		buf = buf[:0]
	}

	return bw.Flush()
}

// IsParseError reports whether err came from the text loader.
func IsParseError(err error) bool { return errors.Is(err, ErrParse) }
