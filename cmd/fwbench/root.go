// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/apsp/apsp"
	"github.com/katalvlaran/apsp/builder"
	"github.com/katalvlaran/apsp/config"
	"github.com/katalvlaran/apsp/matrix"
	"github.com/katalvlaran/apsp/report"
	"github.com/katalvlaran/apsp/telemetry"
)

const serviceName = "fwbench"

// errMismatch marks a run whose kernels disagreed.
var errMismatch = errors.New("sequential and parallel results differ")

// verifier is the part of *apsp.Engine that run drives.
type verifier interface {
	Verify(ctx context.Context, g *matrix.Distance) (*apsp.Result, error)
	Workers() int
}

// newVerifier builds the engine for a run; tests replace it.
var newVerifier = func(opts ...apsp.Option) verifier { return apsp.New(opts...) }

func newRootCmd() *cobra.Command {
	var (
		configPath string
		flagCfg    = config.Default()
	)

	root := &cobra.Command{
		Use:   "fwbench",
		Short: "Benchmark and cross-check sequential vs parallel Floyd–Warshall",
		Long: `Generate a seeded random directed graph, compute all-pairs shortest paths
with the sequential kernel and the row-parallel kernel, print both timings and
verify the two distance matrices are identical.

Configuration precedence: flags that were set > --config file > defaults.

Examples:
  fwbench                          # N=500, GOMAXPROCS workers
  fwbench --size 1000 --workers 8  # bigger graph, fixed pool
  fwbench --repeat 5 --format yaml # five runs plus a summary, as YAML
  fwbench --config bench.yaml --seed 42

Exit Codes:
  0 = all runs matched
  1 = mismatch or error`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(configPath, flagCfg, cmd.Flags())
			if err != nil {
				return err
			}

			return run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	fs := root.Flags()
	fs.StringVar(&configPath, "config", "", "YAML config file")
	fs.IntVar(&flagCfg.Size, "size", flagCfg.Size, "number of vertices N")
	fs.Int64Var(&flagCfg.Seed, "seed", flagCfg.Seed, "graph generator seed (0 = time-based)")
	fs.Float64Var(&flagCfg.EdgeProbability, "edge-probability", flagCfg.EdgeProbability, "probability of each directed edge")
	fs.Int64Var(&flagCfg.MinWeight, "min-weight", flagCfg.MinWeight, "inclusive lower edge weight bound")
	fs.Int64Var(&flagCfg.MaxWeight, "max-weight", flagCfg.MaxWeight, "exclusive upper edge weight bound")
	fs.IntVar(&flagCfg.Workers, "workers", flagCfg.Workers, "parallel tasks per pivot (0 = GOMAXPROCS)")
	fs.StringVar(&flagCfg.Partition, "partition", flagCfg.Partition, "row partition: rows|blocks")
	fs.IntVar(&flagCfg.Repeat, "repeat", flagCfg.Repeat, "number of runs on fresh graphs")
	fs.DurationVar(&flagCfg.Timeout, "timeout", flagCfg.Timeout, "abort the whole run after this long (0 = never)")
	fs.StringVar(&flagCfg.Format, "format", flagCfg.Format, "report format: text|yaml")
	fs.StringVar(&flagCfg.LogLevel, "log-level", flagCfg.LogLevel, "debug|info|warn|error")
	fs.StringVar(&flagCfg.Telemetry, "telemetry", flagCfg.Telemetry, "telemetry exporter: none|stdout")

	root.AddCommand(newVersionCmd())

	return root
}

// resolveConfig layers explicitly set flags over the file (or defaults) and
// validates the result.
func resolveConfig(path string, flagCfg config.Config, fs *pflag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	overlays := map[string]func(){
		"size":             func() { cfg.Size = flagCfg.Size },
		"seed":             func() { cfg.Seed = flagCfg.Seed },
		"edge-probability": func() { cfg.EdgeProbability = flagCfg.EdgeProbability },
		"min-weight":       func() { cfg.MinWeight = flagCfg.MinWeight },
		"max-weight":       func() { cfg.MaxWeight = flagCfg.MaxWeight },
		"workers":          func() { cfg.Workers = flagCfg.Workers },
		"partition":        func() { cfg.Partition = flagCfg.Partition },
		"repeat":           func() { cfg.Repeat = flagCfg.Repeat },
		"timeout":          func() { cfg.Timeout = flagCfg.Timeout },
		"format":           func() { cfg.Format = flagCfg.Format },
		"log-level":        func() { cfg.LogLevel = flagCfg.LogLevel },
		"telemetry":        func() { cfg.Telemetry = flagCfg.Telemetry },
	}
	fs.Visit(func(f *pflag.Flag) {
		if apply, ok := overlays[f.Name]; ok {
			apply()
		}
	})

	return cfg, cfg.Validate()
}

// run executes cfg.Repeat verifications and reports each one, plus a summary
// when more than one run was made.
func run(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) (err error) {
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	shutdown, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    serviceName,
		ServiceVersion: version,
		Exporter:       cfg.Telemetry,
		Writer:         stderr,
	})
	if err != nil {
		return err
	}
	defer func() {
		if serr := shutdown(context.Background()); serr != nil {
			logger.Warn("telemetry shutdown failed", slog.String("error", serr.Error()))
		}
	}()

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	partition, err := apsp.ParsePartition(cfg.Partition)
	if err != nil {
		return err
	}
	opts := []apsp.Option{apsp.WithPartition(partition), apsp.WithLogger(logger)}
	if cfg.Workers > 0 {
		opts = append(opts, apsp.WithWorkers(cfg.Workers))
	}
	engine := newVerifier(opts...)

	seed := cfg.EffectiveSeed()
	src := builder.NewRandom(
		builder.WithSeed(seed),
		builder.WithEdgeProbability(cfg.EdgeProbability),
		builder.WithWeightRange(cfg.MinWeight, cfg.MaxWeight),
	)

	var rep report.Reporter
	switch cfg.Format {
	case "yaml":
		rep = report.NewYAML(stdout)
	default:
		rep = report.NewText(stdout)
	}

	logger.Info("fwbench starting",
		slog.Int("n", cfg.Size),
		slog.Int64("seed", seed),
		slog.Int("workers", engine.Workers()),
		slog.String("partition", partition.String()),
		slog.Int("repeat", cfg.Repeat),
	)

	results := make([]*apsp.Result, 0, cfg.Repeat)
	for i := 0; i < cfg.Repeat; i++ {
		start := time.Now()
		g, gerr := src.Generate(cfg.Size)
		if gerr != nil {
			return fmt.Errorf("run %d: %w", i+1, gerr)
		}
		logger.Debug("graph generated", slog.Int("run", i+1), slog.Duration("elapsed", time.Since(start)))

		res, verr := engine.Verify(ctx, g)
		if verr != nil {
			return fmt.Errorf("run %d: %w", i+1, verr)
		}
		if err = rep.Report(res); err != nil {
			return err
		}
		results = append(results, res)
	}

	sum := report.Summarize(results)
	if cfg.Repeat > 1 {
		if err = rep.ReportSummary(sum); err != nil {
			return err
		}
	}
	if !sum.OK() {
		return fmt.Errorf("%w in %d of %d runs", errMismatch, sum.Mismatches, sum.Runs)
	}

	return nil
}
