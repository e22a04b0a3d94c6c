package cases

import (
	"fmt"
	"strings"
)

// Topology selects the directory layout below the root.
type Topology int

const (
	// Flat is root → size → set.
	Flat Topology = iota
	// Nested is root → parallelism → size → set.
	Nested
)

// String returns "flat" or "nested".
func (t Topology) String() string {
	switch t {
	case Flat:
		return "flat"
	case Nested:
		return "nested"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// ParseTopology maps "flat"/"nested" (case-insensitive) to a Topology.
func ParseTopology(s string) (Topology, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "flat", "":
		return Flat, nil
	case "nested":
		return Nested, nil
	}

	return Flat, fmt.Errorf("%w: %q", ErrTopology, s)
}

// Order selects how sibling folder names are sorted.
type Order int

const (
	// Lexical sorts by byte-wise string comparison (directory listing order).
	Lexical Order = iota
	// Natural compares runs of digits by numeric value.
	Natural
)

// String returns "lexical" or "natural".
func (o Order) String() string {
	if o == Natural {
		return "natural"
	}

	return "lexical"
}

// ParseOrder maps "lexical"/"natural" (case-insensitive) to an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lexical", "":
		return Lexical, nil
	case "natural":
		return Natural, nil
	}

	return Lexical, fmt.Errorf("%w: order %q", ErrTopology, s)
}

// FileNames are the three files every set folder must hold.
type FileNames struct {
	A string // operand A
	B string // operand B
	C string // claimed product
}

// DefaultFileNames matches the lab producers' output.
var DefaultFileNames = FileNames{A: "A.txt", B: "B.txt", C: "C.txt"}

// Case is one complete set folder. Paths are slash-separated and relative to
// the enumerated fs.FS.
type Case struct {
	Key         string // "64x64/set_03" or "4_threads/128x128/set_01"
	Parallelism string // parallelism folder label; empty for Flat
	Size        string // size folder label
	Set         string // set folder label
	A, B, C     string // file paths
}

// Skip is a folder that could not become a Case.
type Skip struct {
	Key     string   // slash-joined labels of the folder
	Missing []string // required file names absent from a set folder, in A, B, C order
	Err     error    // read failure of a sub-directory; nil for missing files
}

// Reason renders the skip cause for the report.
func (s Skip) Reason() string {
	if s.Err != nil {
		return "unreadable: " + s.Err.Error()
	}

	return "missing files: " + strings.Join(s.Missing, ", ")
}

// Entry is exactly one of Case or Skip.
type Entry struct {
	Case *Case
	Skip *Skip
}

// Key returns the key of whichever side is set.
func (e Entry) Key() string {
	if e.Case != nil {
		return e.Case.Key
	}
	if e.Skip != nil {
		return e.Skip.Key
	}

	return ""
}
