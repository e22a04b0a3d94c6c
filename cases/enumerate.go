package cases

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strconv"
	"strings"
)

// Enumerate walks fsys according to opts and returns every set folder as an
// Entry, in enumeration order.
//
// Rules:
//   - non-directory entries are ignored at the parallelism, size and set levels;
//   - siblings are sorted per Options.Order before descent;
//   - a set folder missing any required file yields a Skip listing the
//     missing names in A, B, C order;
//   - an unreadable sub-directory yields a Skip carrying the read error;
//   - an unreadable root returns ErrRoot.
//
// The returned slice is a snapshot: iterate it as often as needed.
func Enumerate(fsys fs.FS, opts ...Option) ([]Entry, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	top, err := subdirs(fsys, ".", o.Order)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRoot, err)
	}

	var out []Entry
	switch o.Topology {
	case Flat:
		for _, size := range top {
			out = walkSize(fsys, o, "", size, out)
		}
	case Nested:
		for _, par := range top {
			sizes, err := subdirs(fsys, par, o.Order)
			if err != nil {
				out = append(out, Entry{Skip: &Skip{Key: par, Err: err}})
				continue
			}
			for _, size := range sizes {
				out = walkSize(fsys, o, par, size, out)
			}
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrTopology, o.Topology)
	}

	return out, nil
}

// walkSize appends one entry per set folder below <par>/<size>.
func walkSize(fsys fs.FS, o Options, par, size string, out []Entry) []Entry {
	dir := path.Join(par, size)
	sets, err := subdirs(fsys, dir, o.Order)
	if err != nil {
		return append(out, Entry{Skip: &Skip{Key: dir, Err: err}})
	}
	for _, set := range sets {
		out = append(out, inspectSet(fsys, o.Files, par, size, set))
	}

	return out
}

// inspectSet turns one set folder into a Case, or a Skip when files are missing.
func inspectSet(fsys fs.FS, files FileNames, par, size, set string) Entry {
	dir := path.Join(par, size, set)
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return Entry{Skip: &Skip{Key: dir, Err: err}}
	}
	present := make(map[string]bool, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			present[e.Name()] = true
		}
	}

	var missing []string
	for _, name := range []string{files.A, files.B, files.C} {
		if !present[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return Entry{Skip: &Skip{Key: dir, Missing: missing}}
	}

	return Entry{Case: &Case{
		Key:         dir,
		Parallelism: par,
		Size:        size,
		Set:         set,
		A:           path.Join(dir, files.A),
		B:           path.Join(dir, files.B),
		C:           path.Join(dir, files.C),
	}}
}

// subdirs lists the directory names directly below dir, sorted per order.
// Symlinks are followed with fs.Stat so linked folders count as directories.
func subdirs(fsys fs.FS, dir string, order Order) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		isDir := e.IsDir()
		if e.Type()&fs.ModeSymlink != 0 {
			if fi, err := fs.Stat(fsys, path.Join(dir, e.Name())); err == nil {
				isDir = fi.IsDir()
			}
		}
		if isDir {
			names = append(names, e.Name())
		}
	}
	sortNames(names, order)

	return names, nil
}

// sortNames sorts in place; Natural falls back to byte order on ties so the
// result is total and stable across runs.
func sortNames(names []string, order Order) {
	if order == Natural {
		slices.SortFunc(names, naturalCompare)
		return
	}
	slices.Sort(names)
}

// naturalCompare compares a and b treating each run of ASCII digits as a
// number: "8x8" < "64x64" < "128x128", "set_2" < "set_10".
func naturalCompare(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			si := i
			for i < len(a) && isDigit(a[i]) {
				i++
			}
			sj := j
			for j < len(b) && isDigit(b[j]) {
				j++
			}
			na := strings.TrimLeft(a[si:i], "0")
			nb := strings.TrimLeft(b[sj:j], "0")
			if len(na) != len(nb) {
				return len(na) - len(nb)
			}
			if c := strings.Compare(na, nb); c != 0 {
				return c
			}
			continue
		}
		if a[i] != b[j] {
			return int(a[i]) - int(b[j])
		}
		i++
		j++
	}
	if c := (len(a) - i) - (len(b) - j); c != 0 {
		return c
	}

	return strings.Compare(a, b)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// ParseLabel returns the leading decimal number of a folder label:
// "64x64" → 64, "4_threads" → 4, "128" → 128.
func ParseLabel(label string) (int, error) {
	end := 0
	for end < len(label) && isDigit(label[end]) {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("%w: %q", ErrLabel, label)
	}
	n, err := strconv.Atoi(label[:end])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %w", ErrLabel, label, err)
	}

	return n, nil
}
