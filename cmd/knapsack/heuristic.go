package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvknap/instance"
	"github.com/katalvlaran/lvknap/internal/config"
	"github.com/katalvlaran/lvknap/knapsack"
	"github.com/katalvlaran/lvknap/mbo"
)

type heuristicFlags struct {
	iterations  int
	seed        int64
	spermatheca int
	broods      int
	mutation    float64
	alpha       float64
	colonies    int
}

func newHeuristicCmd(a *app) *cobra.Command {
	f := &heuristicFlags{}
	cmd := &cobra.Command{
		Use:   "heuristic FILE",
		Short: "Approximate a solution with Marriage-in-honey-Bees Optimization",
		Long: `Run the MBO metaheuristic on FILE. The answer is always feasible but
never claimed optimal (the text output prints optimal=0). Runs are
reproducible for a given --seed and --colonies.`,
		Args: requireArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hc := a.cfg.Heuristic
			overlayHeuristicFlags(cmd, f, &hc)

			path := args[0]
			inst, err := instance.Load(path)
			if err != nil {
				return err
			}
			res, err := mbo.Run(cmd.Context(), inst, mbo.WithOptions(mbo.Options{
				Iterations:      hc.Iterations,
				SpermathecaSize: hc.SpermathecaSize,
				MaxBroods:       hc.MaxBroods,
				Alpha:           hc.Alpha,
				MutationProb:    hc.MutationProb,
				Colonies:        hc.Colonies,
				Seed:            hc.Seed,
			}))
			if errors.Is(err, mbo.ErrInvalidOptions) {
				return WrapError(ExitUsage, "invalid heuristic parameters", err)
			}
			if err != nil {
				return WrapError(ExitError, path, err)
			}
			if res.Abort != nil {
				return res.Abort
			}
			a.logger.Info("heuristic complete",
				slog.String("file", path),
				slog.Int64("value", res.Value),
				slog.Int("flights", res.Flights),
				slog.Int("colonies", hc.Colonies))

			if a.flags.GetOutputFormat() == FormatJSON {
				return writeJSON(cmd.OutOrStdout(), heuristicReport{
					File:      path,
					Value:     res.Value,
					Weight:    res.Weight,
					Selection: res.Selection,
					Flights:   res.Flights,
					History:   res.History,
				})
			}
			return instance.FormatResult(cmd.OutOrStdout(), knapsack.Result{
				Value:     res.Value,
				Weight:    res.Weight,
				Selection: res.Selection,
			})
		},
	}
	d := mbo.DefaultOptions()
	cmd.Flags().IntVar(&f.iterations, "iterations", d.Iterations, "Mating flights")
	cmd.Flags().Int64Var(&f.seed, "seed", d.Seed, "RNG seed (0 = fixed default)")
	cmd.Flags().IntVar(&f.spermatheca, "spermatheca", d.SpermathecaSize, "Drones stored per flight")
	cmd.Flags().IntVar(&f.broods, "broods", d.MaxBroods, "Larvae bred per flight")
	cmd.Flags().Float64Var(&f.mutation, "mutation", d.MutationProb, "Per-gene mutation probability")
	cmd.Flags().Float64Var(&f.alpha, "alpha", d.Alpha, "Speed decay factor in (0,1]")
	cmd.Flags().IntVar(&f.colonies, "colonies", d.Colonies, "Independent colonies run concurrently")

	return cmd
}

// overlayHeuristicFlags lets explicitly set flags win over the configuration.
func overlayHeuristicFlags(cmd *cobra.Command, f *heuristicFlags, hc *config.HeuristicConfig) {
	fs := cmd.Flags()
	if fs.Changed("iterations") {
		hc.Iterations = f.iterations
	}
	if fs.Changed("seed") {
		hc.Seed = f.seed
	}
	if fs.Changed("spermatheca") {
		hc.SpermathecaSize = f.spermatheca
	}
	if fs.Changed("broods") {
		hc.MaxBroods = f.broods
	}
	if fs.Changed("mutation") {
		hc.MutationProb = f.mutation
	}
	if fs.Changed("alpha") {
		hc.Alpha = f.alpha
	}
	if fs.Changed("colonies") {
		hc.Colonies = f.colonies
	}
}
