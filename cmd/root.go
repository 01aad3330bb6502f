package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowpaths/flowpaths/cmd/bench"
	"github.com/flowpaths/flowpaths/cmd/solve"
	"github.com/flowpaths/flowpaths/cmd/stats"
	"github.com/flowpaths/flowpaths/cmd/view"
	"github.com/flowpaths/flowpaths/pkg/common"
)

var (
	verbose bool
	logFile string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "flowpaths",
	Short: "Solve, time, and inspect Flow-Free style connection puzzles",
	Long: `flowpaths loads a puzzle grid from a text file and completes it with one
of three independent solvers:

  - pruned backtracking, enumerating and pruning candidate paths per colour
  - A* best-first search over partial grid completions
  - a SAT/CNF reduction dispatched to a real solver engine

It provides commands for:
  - Solving a single puzzle with a chosen algorithm
  - Stepping through a solver's search interactively in a terminal viewer
  - Timing all three algorithms against a puzzle
  - Summarizing timing records from prior runs`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		common.VerboseEnabled = verbose
		common.LogFile = logFile
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output for debugging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write output to this log file")

	rootCmd.AddCommand(solve.GetCommand())
	rootCmd.AddCommand(view.GetCommand())
	rootCmd.AddCommand(bench.GetCommand())
	rootCmd.AddCommand(stats.GetCommand())
}
