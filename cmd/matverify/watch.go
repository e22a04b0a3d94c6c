package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/matverify/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [root]",
		Short: "Re-run verification whenever files under root change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := a.cfg.Root
			if len(args) == 1 {
				root = args[0]
			}
			return a.runWatch(cmd.Context(), root)
		},
	}
}

// runWatch verifies once, then again after every settled change, until ctx ends.
func (a *app) runWatch(ctx context.Context, root string) error {
	if _, err := a.runVerify(ctx, root); err != nil {
		return err
	}
	debounce, err := a.cfg.Debounce()
	if err != nil {
		return err
	}
	log := a.logger.Named("watch")
	w, err := watch.New(root, func(ctx context.Context) {
		if _, err := a.runVerify(ctx, root); err != nil {
			log.Error("re-verification failed", zap.Error(err))
		}
	},
		watch.WithDebounce(debounce),
		watch.WithLogger(log),
		watch.WithIgnore(a.cfg.Report, a.cfg.Plot.Path),
	)
	if err != nil {
		return err
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		return err
	}
	defer w.Stop()

	<-ctx.Done()

	return nil
}
