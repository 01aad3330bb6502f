// Package solve implements the "solve" subcommand: load a puzzle file and
// complete it with one of the three solvers.
package solve

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowpaths/flowpaths/pkg/common"
	"github.com/flowpaths/flowpaths/pkg/loader"
	"github.com/flowpaths/flowpaths/pkg/solver"
)

var (
	algorithm string
	asciiOnly bool
)

var solveCmd = &cobra.Command{
	Use:     "solve <puzzle-file>",
	Aliases: []string{"s"},
	Short:   "Solve a puzzle file with the chosen algorithm",
	Long: `Load a puzzle text file and complete it using one of three independent
solvers: pruned backtracking, A* best-first search, or a SAT/CNF reduction.

Examples:
  flowpaths solve puzzles/level5.txt
  flowpaths solve puzzles/level5.txt --algorithm astar
  flowpaths solve puzzles/level5.txt --algorithm sat --ascii`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		common.Verbose("loading puzzle from %s", path)

		g, err := loader.LoadFile(path)
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}

		var result solver.Result
		switch algorithm {
		case "backtracking", "bt":
			result, err = solver.Backtrack(g, nil)
		case "astar":
			g, result, err = solver.AStar(g, nil)
		case "sat":
			g, result, err = solver.SAT(g, nil)
		default:
			return fmt.Errorf("solve: unknown algorithm %q (want backtracking, astar, or sat)", algorithm)
		}
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}

		common.Info("result: %s", result)
		if result == solver.Solved {
			fmt.Print(loader.Render(g, asciiOnly))
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().StringVarP(&algorithm, "algorithm", "a", "backtracking", "solver to use: backtracking, astar, or sat")
	solveCmd.Flags().BoolVar(&asciiOnly, "ascii", false, "render with plain ASCII only")
}

// GetCommand returns the solve command for registration with root.
func GetCommand() *cobra.Command {
	return solveCmd
}
