// SPDX-License-Identifier: MIT

package plot

// Options controls labels and canvas size.
type Options struct {
	Title  string
	XLabel string
	YLabel string
	Width  float64 // inches
	Height float64 // inches
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the labels and 8x5 inch canvas used by the CLI.
func DefaultOptions() Options {
	return Options{
		Title:  "Matrix multiplication scaling",
		XLabel: "Matrix size (N)",
		YLabel: "Mean time (s)",
		Width:  8,
		Height: 5,
	}
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithLabels sets the axis labels; empty values keep the defaults.
func WithLabels(x, y string) Option {
	return func(o *Options) {
		if x != "" {
			o.XLabel = x
		}
		if y != "" {
			o.YLabel = y
		}
	}
}

// WithSize sets the canvas size in inches; non-positive values are ignored.
func WithSize(width, height float64) Option {
	return func(o *Options) {
		if width > 0 {
			o.Width = width
		}
		if height > 0 {
			o.Height = height
		}
	}
}
