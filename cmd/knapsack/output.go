package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvknap/instance"
	"github.com/katalvlaran/lvknap/knapsack"
)

// solveReport is the JSON shape of one solved file.
type solveReport struct {
	File      string      `json:"file"`
	Strategy  string      `json:"strategy"`
	Value     int64       `json:"value"`
	Weight    int64       `json:"weight"`
	Optimal   bool        `json:"optimal"`
	Selection []int       `json:"selection"`
	Abort     string      `json:"abort,omitempty"`
	Stats     statsReport `json:"stats"`

	result knapsack.Result
}

type statsReport struct {
	Nodes        int64   `json:"nodes"`
	Pruned       int64   `json:"pruned"`
	Improvements int64   `json:"improvements"`
	MaxFrontier  int     `json:"max_frontier"`
	GreedyValue  int64   `json:"greedy_value"`
	RootBound    float64 `json:"root_bound"`
	ElapsedMS    float64 `json:"elapsed_ms"`
}

func newSolveReport(path string, res knapsack.Result) solveReport {
	rep := solveReport{
		File:      path,
		Strategy:  res.Strategy.String(),
		Value:     res.Value,
		Weight:    res.Weight,
		Optimal:   res.Optimal,
		Selection: res.Selection,
		Stats: statsReport{
			Nodes:        res.Stats.Nodes,
			Pruned:       res.Stats.Pruned,
			Improvements: res.Stats.Improvements,
			MaxFrontier:  res.Stats.MaxFrontier,
			GreedyValue:  res.Stats.GreedyValue,
			RootBound:    res.Stats.RootBound,
			ElapsedMS:    float64(res.Stats.Elapsed.Microseconds()) / 1000,
		},
		result: res,
	}
	if res.Abort != nil {
		rep.Abort = res.Abort.Error()
	}

	return rep
}

// heuristicReport is the JSON shape of an MBO run.
type heuristicReport struct {
	File      string  `json:"file"`
	Value     int64   `json:"value"`
	Weight    int64   `json:"weight"`
	Selection []int   `json:"selection"`
	Flights   int     `json:"flights"`
	History   []int64 `json:"history"`
}

// printSolveReports writes the reports in the selected output format. In text
// mode a single file prints the bare two-line result; several files get a
// "# FILE" line before each result.
func (a *app) printSolveReports(cmd *cobra.Command, reports []solveReport) error {
	w := cmd.OutOrStdout()
	if a.flags.GetOutputFormat() == FormatJSON {
		return writeJSON(w, reports)
	}
	for _, rep := range reports {
		if len(reports) > 1 {
			if _, err := fmt.Fprintf(w, "# %s\n", rep.File); err != nil {
				return err
			}
		}
		if err := instance.FormatResult(w, rep.result); err != nil {
			return err
		}
	}

	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
