// Package timing turns raw multiplication timing logs into a per-(parallelism,
// size) table of mean elapsed times.
//
// The pipeline follows the usual benchmark-processing shape: read samples from
// one or more sources, group them under a comparable Key, reduce each group to
// its mean, then sort the keys for presentation.
//
// Sources come in four layouts, all behind the Source interface:
//
//	Columns     "<size> <time>" lines, parallelism fixed by configuration
//	Table       delimited table with named parallelism/size/time columns
//	ThreadLogs  one free-text log per parallelism count ("4_threads.txt"),
//	            values pulled out with a regular expression
//	Triples     every file of a glob holds "<parallelism> <size> <time>" rows
//
// Auto picks Table or Columns for a single file by looking at its header.
//
// Timing is observational: malformed rows are dropped and counted, a missing
// file omits its data, and a source that fails entirely contributes nothing.
// Nothing in this package aborts a run.
package timing
