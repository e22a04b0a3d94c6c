// Package matverify checks externally produced matrix products and charts how
// their recorded run times scale.
//
// What it does:
//
//	• Correctness: for every <size>/<set> (or <parallelism>/<size>/<set>) folder,
//	  multiply A.txt by B.txt with a plain integer kernel and compare with C.txt.
//	• Reporting: one ✅ / ❌ / ⚠️ line per case plus "<ok>/<total> cases verified successfully".
//	• Timing: read the lab producers' timing files, average per (parallelism, size),
//	  print the table and plot one scaling curve per parallelism level.
//
// Under the hood:
//
//	matrix/          int64 Dense storage, text loader, reference Mul and Compare
//	cases/           case tree enumeration (flat or nested) over an fs.FS
//	verify/          Check (the oracle) and the Runner that scores every entry
//	report/          verdict lines, tally and the atomically written report file
//	timing/          four timing file shapes behind one Source, Aggregator, Table
//	plot/            scaling curves via gonum/plot
//	internal/config/ matverify.yaml
//	internal/watch/  debounced re-verification on file changes
//	cmd/matverify/   the CLI
//
// Quick ASCII example of a flat tree:
//
//	cases/
//	  64x64/
//	    set_01/ A.txt B.txt C.txt
//	    set_02/ A.txt B.txt          (skipped: missing C.txt)
//
//	go install github.com/katalvlaran/matverify/cmd/matverify@latest
package matverify
