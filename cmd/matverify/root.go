package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/matverify/internal/config"
)

// app carries what every subcommand shares once PersistentPreRunE has run.
type app struct {
	configPath string
	root       string
	topology   string
	order      string
	reportPath string
	plotPath   string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger

	outMu sync.Mutex
	out   io.Writer
}

// printf serializes console output from the two pipelines.
func (a *app) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "matverify",
		Short: "Verify matrix products and plot multiplication scaling",
		Long: `matverify walks a tree of size/set folders, multiplies A.txt by B.txt with
a plain integer kernel and compares the result against C.txt. Each case is
reported as OK, ERROR (max diff), skipped or error in results.txt.

It also collects timing files from the lab producers, averages them per
(parallelism, size) and draws one scaling curve per parallelism level.

Run without arguments to do both.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			var g errgroup.Group
			g.Go(func() error {
				_, err := a.runVerify(ctx, a.cfg.Root)
				return err
			})
			g.Go(func() error { return a.runTimings(ctx) })

			return g.Wait()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultPath, "YAML config file (optional)")
	pf.StringVar(&a.root, "root", "", "directory holding the case tree")
	pf.StringVar(&a.topology, "topology", "", "case layout: flat or nested")
	pf.StringVar(&a.order, "order", "", "folder ordering: lexical or natural")
	pf.StringVar(&a.reportPath, "report", "", "report file")
	pf.StringVar(&a.plotPath, "plot", "", "scaling plot image (.png, .svg, .pdf)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(
		newVerifyCmd(a),
		newTimingsCmd(a),
		newWatchCmd(a),
	)

	return rootCmd
}

// setup loads the config, applies explicitly set flags and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("root") {
		cfg.Root = a.root
	}
	if flags.Changed("topology") {
		cfg.Topology = a.topology
	}
	if flags.Changed("order") {
		cfg.Order = a.order
	}
	if flags.Changed("report") {
		cfg.Report = a.reportPath
	}
	if flags.Changed("plot") {
		cfg.Plot.Path = a.plotPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.out = cmd.OutOrStdout()

	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}
	if a.verbose {
		level = zapcore.DebugLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger.With(zap.String("run_id", uuid.NewString()))
	a.logger.Debug("config loaded",
		zap.String("config", a.configPath),
		zap.String("root", cfg.Root),
		zap.String("topology", cfg.Topology),
		zap.String("order", cfg.Order))

	return nil
}
