// Package verify is the correctness oracle: it recomputes A × B with the
// reference kernel, compares it exactly with the claimed product C and
// classifies each case as OK, Mismatch, Skipped or Error.
//
// Check scores one case from matrices already in memory. Runner drives the
// loader and Check over an enumerated []cases.Entry; every failure is scoped
// to its case, so one bad folder never stops the others.
package verify
