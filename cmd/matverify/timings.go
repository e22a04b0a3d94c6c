package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/matverify/plot"
	"github.com/katalvlaran/matverify/timing"
)

func newTimingsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "timings",
		Short: "Average the timing files, print the table and write the scaling plot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTimings(cmd.Context())
		},
	}
}

// runTimings is the timing pipeline. Missing or malformed sources are logged
// and skipped; only a failure to write the plot is returned.
func (a *app) runTimings(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sources, err := a.cfg.TimingSources()
	if err != nil {
		return err
	}
	log := a.logger.Named("timing")
	batch, errs := timing.CollectAll(os.DirFS(a.cfg.Timing.Dir), log, sources...)

	agg := timing.NewAggregator()
	agg.Add(batch)
	tbl := agg.Table()
	log.Info("timing aggregated",
		zap.Int("rows", tbl.Len()),
		zap.Int("dropped", agg.Dropped()),
		zap.Ints("omitted_parallelism", agg.Omitted()),
		zap.Int("failed_sources", len(errs)))

	if tbl.Len() == 0 {
		log.Warn("no timing data, plot not written")
		a.printf("no timing data found\n")
		return nil
	}
	a.printf("%s\n", tbl.Render())

	if err := plot.Render(tbl, a.cfg.Plot.Path, a.cfg.PlotOptions()...); err != nil {
		return err
	}
	log.Info("plot written", zap.String("path", a.cfg.Plot.Path))
	a.printf("plot saved to %s\n", a.cfg.Plot.Path)

	return nil
}
