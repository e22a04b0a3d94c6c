package timing_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/matverify/timing"
)

func TestParseColumns_SkipsHeader(t *testing.T) {
	in := "Размер\tСреднее время (сек)\n100\t0,0125\n\n200\t0.5\n"

	b, err := timing.ParseColumns(strings.NewReader(in), 1)
	require.NoError(t, err)
	want := []timing.Sample{
		{Parallelism: 1, Size: 100, Elapsed: 0.0125},
		{Parallelism: 1, Size: 200, Elapsed: 0.5},
	}
	if diff := cmp.Diff(want, b.Samples); diff != "" {
		t.Fatalf("samples mismatch (-want +got):\n%s", diff)
	}
	require.Zero(t, b.Dropped)
}

// TestParseColumns_UnparsableHeaderOneRow: a garbage header plus one valid
// row yields exactly one sample.
func TestParseColumns_UnparsableHeaderOneRow(t *testing.T) {
	b, err := timing.ParseColumns(strings.NewReader("%%% size?? ###\n64 0.25\n"), 2)
	require.NoError(t, err)
	require.Len(t, b.Samples, 1)
	require.Equal(t, timing.Sample{Parallelism: 2, Size: 64, Elapsed: 0.25}, b.Samples[0])
}

func TestParseColumns_DropsMalformed(t *testing.T) {
	in := "100 fast\n200\n1.5 0.1\n-4 0.1\n300 0.3 extra\n"

	b, err := timing.ParseColumns(strings.NewReader(in), 1)
	require.NoError(t, err)
	require.Len(t, b.Samples, 1) // only "300 0.3 extra"
	require.Equal(t, 4, b.Dropped)
}

func TestParseTriples(t *testing.T) {
	in := "1\t100\t0.02\n2 100 0.011\nbroken line\n\n4 200\n8 400 1e-3\n"

	b, err := timing.ParseTriples(strings.NewReader(in))
	require.NoError(t, err)
	want := []timing.Sample{
		{Parallelism: 1, Size: 100, Elapsed: 0.02},
		{Parallelism: 2, Size: 100, Elapsed: 0.011},
		{Parallelism: 8, Size: 400, Elapsed: 0.001},
	}
	if diff := cmp.Diff(want, b.Samples); diff != "" {
		t.Fatalf("samples mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 2, b.Dropped)
}

func TestParseThreadLog(t *testing.T) {
	in := strings.Join([]string{
		"[MPI] starting run",
		"[MPI] Matrix size: 100 | Mean time for 10 tries: 0.0031 s",
		"noise without numbers",
		"[MPI] Matrix size: 200 | Mean time for 10 tries: 2.5e-02 s",
	}, "\n")

	b, err := timing.ParseThreadLog(strings.NewReader(in), 4, regexp.MustCompile(timing.DefaultThreadLogPattern))
	require.NoError(t, err)
	want := []timing.Sample{
		{Parallelism: 4, Size: 100, Elapsed: 0.0031},
		{Parallelism: 4, Size: 200, Elapsed: 0.025},
	}
	if diff := cmp.Diff(want, b.Samples); diff != "" {
		t.Fatalf("samples mismatch (-want +got):\n%s", diff)
	}
	require.Zero(t, b.Dropped)
}

func TestParseThreadLog_PatternNeedsGroups(t *testing.T) {
	_, err := timing.ParseThreadLog(strings.NewReader(""), 1, regexp.MustCompile(`size: \d+`))
	require.ErrorIs(t, err, timing.ErrFormat)
}

func TestParseTable_LabHeaders(t *testing.T) {
	in := "Потоки\tРазмер\tСреднее время (сек)\n" +
		"1\t100\t0.004\n" +
		"2\t100\t0,002\n" +
		"2\tbad\t0.1\n" +
		"4\t100\n"

	b, err := timing.ParseTable(strings.NewReader(in), timing.DefaultColumns())
	require.NoError(t, err)
	want := []timing.Sample{
		{Parallelism: 1, Size: 100, Elapsed: 0.004},
		{Parallelism: 2, Size: 100, Elapsed: 0.002},
	}
	if diff := cmp.Diff(want, b.Samples); diff != "" {
		t.Fatalf("samples mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 2, b.Dropped)
}

func TestParseTable_CommaSeparatedReordered(t *testing.T) {
	in := "size,elapsed,threads\n64,0.5,8\n"

	b, err := timing.ParseTable(strings.NewReader(in), timing.DefaultColumns())
	require.NoError(t, err)
	require.Equal(t, []timing.Sample{{Parallelism: 8, Size: 64, Elapsed: 0.5}}, b.Samples)
}

func TestParseTable_MissingColumn(t *testing.T) {
	in := "Размер\tСреднее время (сек)\n100\t0.1\n"

	b, err := timing.ParseTable(strings.NewReader(in), timing.DefaultColumns())
	require.ErrorIs(t, err, timing.ErrFormat)
	require.Empty(t, b.Samples)
	require.Contains(t, err.Error(), `"Потоки"`)
}

func TestParseTable_Empty(t *testing.T) {
	_, err := timing.ParseTable(strings.NewReader(""), timing.DefaultColumns())
	require.ErrorIs(t, err, timing.ErrFormat)
}

func TestSample_Valid(t *testing.T) {
	require.True(t, timing.Sample{Parallelism: 1, Size: 1, Elapsed: 0}.Valid())
	require.False(t, timing.Sample{Parallelism: 0, Size: 1, Elapsed: 0}.Valid())
	require.False(t, timing.Sample{Parallelism: 1, Size: 0, Elapsed: 0}.Valid())
	require.False(t, timing.Sample{Parallelism: 1, Size: 1, Elapsed: -0.1}.Valid())
}
