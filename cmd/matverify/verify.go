package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/matverify/cases"
	"github.com/katalvlaran/matverify/report"
	"github.com/katalvlaran/matverify/verify"
)

var (
	passStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [root]",
		Short: "Check every C.txt against A.txt × B.txt and write the report",
		Long: `Enumerates the case tree (flat: <size>/<set>, nested: <parallelism>/<size>/<set>),
verifies each set and writes the report. Only an unreadable root is fatal;
mismatches, missing files and parse errors are reported per case.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := a.cfg.Root
			if len(args) == 1 {
				root = args[0]
			}
			_, err := a.runVerify(cmd.Context(), root)
			return err
		},
	}
}

// runVerify is the correctness pipeline: enumerate, score, report.
func (a *app) runVerify(ctx context.Context, root string) (report.Tally, error) {
	if err := ctx.Err(); err != nil {
		return report.Tally{}, err
	}
	opts, err := a.cfg.CaseOptions()
	if err != nil {
		return report.Tally{}, err
	}
	fsys := os.DirFS(root)
	entries, err := cases.Enumerate(fsys, opts...)
	if err != nil {
		a.logger.Error("cannot enumerate cases", zap.String("root", root), zap.Error(err))
		return report.Tally{}, err
	}

	runner := verify.NewRunner(verify.WithLogger(a.logger.Named("verify")))
	rep := report.New()
	rep.AddAll(runner.Run(fsys, entries))

	if err := rep.WriteFile(a.cfg.Report); err != nil {
		return rep.Tally(), err
	}

	tally := rep.Tally()
	a.logger.Info("verification finished",
		zap.String("root", root),
		zap.Int("success", tally.Success),
		zap.Int("total", tally.Total),
		zap.String("report", a.cfg.Report))

	style := passStyle
	if tally.Success != tally.Total {
		style = failStyle
	}
	a.outMu.Lock()
	defer a.outMu.Unlock()
	for _, l := range rep.Lines() {
		fmt.Fprintln(a.out, l)
	}
	fmt.Fprintf(a.out, "\n%s\n", style.Render(tally.String()))

	return tally, nil
}
