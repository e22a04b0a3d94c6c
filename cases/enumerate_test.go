package cases_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/katalvlaran/matverify/cases"
	"github.com/stretchr/testify/require"
)

// file is a one-line matrix body; content is irrelevant to enumeration.
var file = &fstest.MapFile{Data: []byte("1\n")}

// fullSet adds A/B/C below dir.
func fullSet(fsys fstest.MapFS, dir string) {
	fsys[dir+"/A.txt"] = file
	fsys[dir+"/B.txt"] = file
	fsys[dir+"/C.txt"] = file
}

func keys(entries []cases.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Key())
	}

	return out
}

func flatTree() fstest.MapFS {
	fsys := fstest.MapFS{
		"notes.txt":        file, // ignored: not a directory
		"64x64/README":     file, // ignored: not a directory
		"8x8/set_01/extra": file, // extra files are fine
	}
	fullSet(fsys, "64x64/set_02")
	fullSet(fsys, "64x64/set_01")
	fullSet(fsys, "8x8/set_01")

	return fsys
}

func TestEnumerate_FlatLexical(t *testing.T) {
	entries, err := cases.Enumerate(flatTree())
	require.NoError(t, err)
	require.Equal(t, []string{"64x64/set_01", "64x64/set_02", "8x8/set_01"}, keys(entries))

	c := entries[0].Case
	require.NotNil(t, c)
	require.Nil(t, entries[0].Skip)
	require.Equal(t, "", c.Parallelism)
	require.Equal(t, "64x64", c.Size)
	require.Equal(t, "set_01", c.Set)
	require.Equal(t, "64x64/set_01/A.txt", c.A)
	require.Equal(t, "64x64/set_01/B.txt", c.B)
	require.Equal(t, "64x64/set_01/C.txt", c.C)
}

func TestEnumerate_FlatNatural(t *testing.T) {
	entries, err := cases.Enumerate(flatTree(), cases.WithOrder(cases.Natural))
	require.NoError(t, err)
	require.Equal(t, []string{"8x8/set_01", "64x64/set_01", "64x64/set_02"}, keys(entries))
}

func TestEnumerate_Nested(t *testing.T) {
	fsys := fstest.MapFS{}
	fullSet(fsys, "2_threads/100x100/set_1")
	fullSet(fsys, "1_threads/200x200/set_1")
	fullSet(fsys, "1_threads/100x100/set_2")
	fullSet(fsys, "1_threads/100x100/set_1")

	entries, err := cases.Enumerate(fsys, cases.WithTopology(cases.Nested))
	require.NoError(t, err)
	require.Equal(t, []string{
		"1_threads/100x100/set_1",
		"1_threads/100x100/set_2",
		"1_threads/200x200/set_1",
		"2_threads/100x100/set_1",
	}, keys(entries))
	require.Equal(t, "1_threads", entries[0].Case.Parallelism)
}

// TestEnumerate_MissingFile is the "set folder missing B.txt" scenario.
func TestEnumerate_MissingFile(t *testing.T) {
	fsys := fstest.MapFS{
		"64x64/set_01/A.txt": file,
		"64x64/set_01/C.txt": file,
		"64x64/set_02":       {Mode: fs.ModeDir}, // empty set folder
	}

	entries, err := cases.Enumerate(fsys)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	s := entries[0].Skip
	require.NotNil(t, s)
	require.Nil(t, entries[0].Case)
	require.Equal(t, "64x64/set_01", s.Key)
	require.Equal(t, []string{"B.txt"}, s.Missing)
	require.Equal(t, "missing files: B.txt", s.Reason())

	require.Equal(t, []string{"A.txt", "B.txt", "C.txt"}, entries[1].Skip.Missing)
}

func TestEnumerate_CustomFileNames(t *testing.T) {
	fsys := fstest.MapFS{
		"4x4/s/left.txt":  file,
		"4x4/s/right.txt": file,
		"4x4/s/C.txt":     file,
	}

	entries, err := cases.Enumerate(fsys, cases.WithFileNames(cases.FileNames{A: "left.txt", B: "right.txt"}))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Case)
	require.Equal(t, "4x4/s/right.txt", entries[0].Case.B)
}

func TestEnumerate_RootUnreadable(t *testing.T) {
	_, err := cases.Enumerate(os.DirFS(filepath.Join(t.TempDir(), "absent")))
	require.ErrorIs(t, err, cases.ErrRoot)
}

func TestEnumerate_OnDisk(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "16x16", "set_01")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range []string{"A.txt", "B.txt", "C.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("1\n"), 0o644))
	}

	entries, err := cases.Enumerate(os.DirFS(root))
	require.NoError(t, err)
	require.Equal(t, []string{"16x16/set_01"}, keys(entries))
}

func TestEnumerate_Deterministic(t *testing.T) {
	fsys := flatTree()

	first, err := cases.Enumerate(fsys)
	require.NoError(t, err)
	second, err := cases.Enumerate(fsys)
	require.NoError(t, err)
	require.Equal(t, keys(first), keys(second))
}

func TestParseLabel(t *testing.T) {
	tests := []struct {
		label string
		want  int
		ok    bool
	}{
		{"64x64", 64, true},
		{"4_threads", 4, true},
		{"1000", 1000, true},
		{"set_01", 0, false},
		{"", 0, false},
	}
	for _, tc := range tests {
		got, err := cases.ParseLabel(tc.label)
		if !tc.ok {
			require.ErrorIs(t, err, cases.ErrLabel, tc.label)
			continue
		}
		require.NoError(t, err, tc.label)
		require.Equal(t, tc.want, got)
	}
}

func TestParseTopologyAndOrder(t *testing.T) {
	top, err := cases.ParseTopology("Nested")
	require.NoError(t, err)
	require.Equal(t, cases.Nested, top)
	require.Equal(t, "nested", top.String())

	_, err = cases.ParseTopology("spiral")
	require.ErrorIs(t, err, cases.ErrTopology)

	ord, err := cases.ParseOrder("natural")
	require.NoError(t, err)
	require.Equal(t, cases.Natural, ord)

	_, err = cases.ParseOrder("random")
	require.ErrorIs(t, err, cases.ErrTopology)
}
