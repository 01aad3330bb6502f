// Package stats implements the "stats" subcommand: summarize one or more
// JSON files written by "flowpaths bench --out".
package stats

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowpaths/flowpaths/pkg/bench"
)

var statsCmd = &cobra.Command{
	Use:     "stats <file> [file...]",
	Aliases: []string{"st"},
	Short:   "Summarize bench --out JSON files",
	Long: `Summarize one or more JSON files produced by "flowpaths bench --out",
each file separately, into per-algorithm averages across that file's records.

Examples:
  flowpaths stats stats.json
  flowpaths stats run1.json run2.json run3.json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			if err := summarize(path); err != nil {
				fmt.Fprintf(os.Stderr, "stats: %s: %v\n", path, err)
			}
		}
		return nil
	},
}

func summarize(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var records []bench.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Printf("%s: no records\n", path)
		return nil
	}

	byAlgorithm := make(map[string][]bench.Record)
	for _, r := range records {
		byAlgorithm[r.Algorithm] = append(byAlgorithm[r.Algorithm], r)
	}

	fmt.Printf("%s:\n", path)
	for algorithm, rs := range byAlgorithm {
		var sumMean, maxMean float64
		solved := 0
		for _, r := range rs {
			sumMean += r.MeanMs
			if r.MeanMs > maxMean {
				maxMean = r.MeanMs
			}
			if r.Result == "Solved" {
				solved++
			}
		}
		fmt.Printf("  %-12s puzzles=%-3d solved=%-3d avg_mean_ms=%.2f worst_mean_ms=%.2f\n",
			algorithm, len(rs), solved, sumMean/float64(len(rs)), maxMean)
	}
	return nil
}

// GetCommand returns the stats command for registration with root.
func GetCommand() *cobra.Command {
	return statsCmd
}
