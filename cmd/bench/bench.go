// Package bench implements the "bench" subcommand: time all three solvers
// against a puzzle file and report (or persist) summary statistics.
package bench

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowpaths/flowpaths/pkg/bench"
	"github.com/flowpaths/flowpaths/pkg/common"
	"github.com/flowpaths/flowpaths/pkg/loader"
	"github.com/flowpaths/flowpaths/pkg/ui"
)

var (
	trials int
	outFile string
)

var benchCmd = &cobra.Command{
	Use:     "bench <puzzle-file>",
	Aliases: []string{"b"},
	Short:   "Time backtracking, A*, and SAT against a puzzle",
	Long: `Run all three solvers against the same puzzle file for --trials
iterations each and report mean/stddev/min/max wall-clock time, using
gonum's stat package for the aggregation.

Examples:
  flowpaths bench puzzles/level5.txt
  flowpaths bench puzzles/level5.txt --trials 20 --out stats.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		g, err := loader.LoadFile(path)
		if err != nil {
			return fmt.Errorf("bench: %w", err)
		}

		spinner := ui.NewSpinner(fmt.Sprintf("benchmarking %s", path))
		spinner.Start()
		summaries, err := bench.RunAll(g, trials)
		spinner.Stop()
		if err != nil {
			return fmt.Errorf("bench: %w", err)
		}

		for _, s := range summaries {
			common.Info("%s", s)
		}

		if outFile != "" {
			records := make([]bench.Record, 0, len(summaries))
			for _, s := range summaries {
				records = append(records, s.ToRecord(path))
			}
			data, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return fmt.Errorf("bench: %w", err)
			}
			if err := os.WriteFile(outFile, data, 0644); err != nil {
				return fmt.Errorf("bench: %w", err)
			}
			common.Info("wrote %s", outFile)
		}

		return nil
	},
}

func init() {
	benchCmd.Flags().IntVarP(&trials, "trials", "n", 5, "number of trials per algorithm")
	benchCmd.Flags().StringVarP(&outFile, "out", "o", "", "write JSON records to this path")
}

// GetCommand returns the bench command for registration with root.
func GetCommand() *cobra.Command {
	return benchCmd
}
