package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvknap/instance"
	"github.com/katalvlaran/lvknap/internal/config"
	"github.com/katalvlaran/lvknap/knapsack"
)

// strategyBoth runs both traversals and cross-checks them.
const strategyBoth = "both"

type solveFlags struct {
	strategy    string
	nodeLimit   int64
	timeLimit   time.Duration
	maxFrontier int
	parallel    int
}

func newSolveCmd(a *app) *cobra.Command {
	f := &solveFlags{}
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Solve instances exactly with Branch-and-Bound",
		Long: `Solve each FILE with an exact Branch-and-Bound search.

Budgets (--node-limit, --time-limit, --max-frontier) never fail a solve:
the best solution found so far is printed with optimal=0. With several
files, up to --parallel instances are solved concurrently; results are
printed in argument order.`,
		Args: requireArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := a.cfg.Solver
			overlaySolveFlags(cmd, f, &sc)
			if sc.MaxFrontier < 0 || sc.NodeLimit < 0 || sc.TimeLimit < 0 || sc.Parallel < 1 {
				return usageErrorf("limits must be non-negative and --parallel at least 1")
			}
			strategies, err := parseStrategies(sc.Strategy)
			if err != nil {
				return err
			}

			reports, err := a.solveAll(cmd.Context(), args, sc, strategies)
			if err != nil {
				return err
			}

			return a.printSolveReports(cmd, reports)
		},
	}
	cmd.Flags().StringVar(&f.strategy, "strategy", "dfs", "Search strategy (dfs|best-first|both)")
	cmd.Flags().Int64Var(&f.nodeLimit, "node-limit", 0, "Maximum processed nodes per solve (0 = unlimited)")
	cmd.Flags().DurationVar(&f.timeLimit, "time-limit", 0, "Wall-clock budget per solve (0 = unlimited)")
	cmd.Flags().IntVar(&f.maxFrontier, "max-frontier", 0, "Best-first frontier cap (0 = unlimited)")
	cmd.Flags().IntVar(&f.parallel, "parallel", 4, "Files solved concurrently")

	return cmd
}

// overlaySolveFlags lets explicitly set flags win over the configuration.
func overlaySolveFlags(cmd *cobra.Command, f *solveFlags, sc *config.SolverConfig) {
	fs := cmd.Flags()
	if fs.Changed("strategy") {
		sc.Strategy = f.strategy
	}
	if fs.Changed("node-limit") {
		sc.NodeLimit = f.nodeLimit
	}
	if fs.Changed("time-limit") {
		sc.TimeLimit = f.timeLimit
	}
	if fs.Changed("max-frontier") {
		sc.MaxFrontier = f.maxFrontier
	}
	if fs.Changed("parallel") {
		sc.Parallel = f.parallel
	}
}

// parseStrategies maps the --strategy value to the traversals to run.
func parseStrategies(name string) ([]knapsack.Strategy, error) {
	if name == strategyBoth {
		return []knapsack.Strategy{knapsack.DepthFirst, knapsack.BestFirst}, nil
	}
	s, err := knapsack.ParseStrategy(name)
	if err != nil {
		return nil, usageErrorf("--strategy must be dfs, best-first or both, got %q", name)
	}

	return []knapsack.Strategy{s}, nil
}

// solveAll solves every file with bounded concurrency. Reports keep the
// argument order.
func (a *app) solveAll(ctx context.Context, files []string, sc config.SolverConfig, strategies []knapsack.Strategy) ([]solveReport, error) {
	reports := make([]solveReport, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(sc.Parallel)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			rep, err := a.solveFile(ctx, path, sc, strategies)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}

// solveFile loads one instance and runs the requested strategies on a shared
// catalog.
func (a *app) solveFile(ctx context.Context, path string, sc config.SolverConfig, strategies []knapsack.Strategy) (solveReport, error) {
	log := a.logger.With(slog.String("file", path))

	inst, err := instance.Load(path)
	if err != nil {
		return solveReport{}, err
	}
	cat, err := knapsack.NewCatalog(inst)
	if err != nil {
		return solveReport{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("instance loaded", slog.Int("items", cat.Len()), slog.Int64("capacity", cat.Capacity()))

	results := make([]knapsack.Result, 0, len(strategies))
	for _, s := range strategies {
		lg := log.With(slog.String("strategy", s.String()))
		res, err := knapsack.SolveCatalog(ctx, cat,
			knapsack.WithStrategy(s),
			knapsack.WithNodeLimit(sc.NodeLimit),
			knapsack.WithTimeLimit(sc.TimeLimit),
			knapsack.WithMaxFrontier(sc.MaxFrontier),
			knapsack.WithObserver(func(imp knapsack.Improvement) {
				lg.Debug("incumbent improved",
					"value", imp.Value, "previous", imp.Previous, "node", imp.Node)
			}),
		)
		if err != nil {
			return solveReport{}, fmt.Errorf("%s: %w", path, err)
		}
		if err := inst.Verify(res); err != nil {
			return solveReport{}, fmt.Errorf("%s: %s: %w", path, s, err)
		}
		logResult(lg, res)
		results = append(results, res)
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Optimal && best.Optimal && r.Value != best.Value {
			return solveReport{}, WrapError(ExitError, path,
				fmt.Errorf("%w: %s=%d %s=%d", errDisagreement, best.Strategy, best.Value, r.Strategy, r.Value))
		}
		if r.Value > best.Value || (r.Optimal && !best.Optimal && r.Value == best.Value) {
			best = r
		}
	}
	if ctx.Err() != nil && !best.Optimal {
		return solveReport{}, ctx.Err()
	}

	return newSolveReport(path, best), nil
}

// logResult records the outcome of one search.
func logResult(log *slog.Logger, res knapsack.Result) {
	attrs := []any{
		slog.Int64("value", res.Value),
		slog.Bool("optimal", res.Optimal),
		slog.Int64("nodes", res.Stats.Nodes),
		slog.Int64("pruned", res.Stats.Pruned),
		slog.Int64("greedy", res.Stats.GreedyValue),
		slog.Float64("root_bound", res.Stats.RootBound),
		slog.Duration("elapsed", res.Stats.Elapsed),
	}
	if res.Abort != nil {
		log.Warn("search stopped early", append(attrs, slog.String("reason", res.Abort.Error()))...)
		return
	}
	log.Info("search complete", attrs...)
}
