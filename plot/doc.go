// SPDX-License-Identifier: MIT

// Package plot renders aggregated timing as scaling curves: one line per
// parallelism level, matrix size on the x axis, mean seconds on the y axis.
//
// The output format follows the file extension (.png, .svg, .pdf, ...).
package plot
