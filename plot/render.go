// SPDX-License-Identifier: MIT

package plot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/matverify/timing"
)

const opRender = "plot.Render"

// Build assembles the plot without saving it.
//
// Series are added in ascending parallelism; each series' points are sorted
// by ascending size. Legend entries read "<p> thread(s)".
func Build(t timing.Table, opts ...Option) (*plot.Plot, error) {
	if t.Len() == 0 {
		return nil, ErrEmpty
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = o.XLabel
	p.Y.Label.Text = o.YLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	for i, par := range t.Parallelism() {
		rows := t.Series(par)
		pts := make(plotter.XYs, len(rows))
		for j, r := range rows {
			pts[j].X = float64(r.Size)
			pts[j].Y = r.Mean
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, fmt.Errorf("%s: series %d: %w", opRender, par, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)
		p.Legend.Add(Label(par), line, points)
	}

	return p, nil
}

// Render draws t to path. An empty table returns ErrEmpty and writes nothing.
func Render(t timing.Table, path string, opts ...Option) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p, err := Build(t, opts...)
	if err != nil {
		return err
	}
	if err := p.Save(vg.Length(o.Width)*vg.Inch, vg.Length(o.Height)*vg.Inch, path); err != nil {
		return fmt.Errorf("%s: %s: %w", opRender, path, err)
	}

	return nil
}

// Label is the legend text of one parallelism level.
func Label(parallelism int) string { return fmt.Sprintf("%d thread(s)", parallelism) }
