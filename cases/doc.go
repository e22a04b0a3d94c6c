// Package cases enumerates verification cases from a directory tree.
//
// Two layouts are supported:
//
//	Flat:   <root>/<size>/<set>/{A.txt,B.txt,C.txt}
//	Nested: <root>/<parallelism>/<size>/<set>/{A.txt,B.txt,C.txt}
//
// Enumerate walks an fs.FS (os.DirFS in the CLI, fstest.MapFS in tests) and
// returns a concrete, ordered []Entry. Each entry is either a Case whose three
// files exist, or a Skip naming what is missing. Only an unreadable root is
// fatal (ErrRoot); every other problem becomes a Skip so that no folder is
// silently dropped from the report.
//
// Ordering is lexicographic by folder name at every level by default, which
// matches directory listing order ("64x64" sorts before "8x8"). WithOrder(Natural)
// compares digit runs numerically instead.
package cases
