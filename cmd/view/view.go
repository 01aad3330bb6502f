// Package view implements the "view" subcommand: step through a solver's
// search interactively in a tcell terminal screen.
package view

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowpaths/flowpaths/pkg/display"
	"github.com/flowpaths/flowpaths/pkg/loader"
	"github.com/flowpaths/flowpaths/pkg/solver"
)

var algorithm string

var viewCmd = &cobra.Command{
	Use:     "view <puzzle-file>",
	Aliases: []string{"v"},
	Short:   "Step through a solver's search interactively",
	Long: `Open an interactive terminal viewer (tcell) that renders the grid after
every tentative move a solver makes, advancing on space/n and quitting on q.

SAT has no intermediate moves to step through: it encodes the whole puzzle
at once, so --algorithm sat only shows the encoded-formula and decoded-model
frames.

Examples:
  flowpaths view puzzles/level5.txt
  flowpaths view puzzles/level5.txt --algorithm astar`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loader.LoadFile(args[0])
		if err != nil {
			return fmt.Errorf("view: %w", err)
		}

		viewer, err := display.NewViewer()
		if err != nil {
			return fmt.Errorf("view: %w", err)
		}
		defer viewer.Close()

		var result solver.Result
		switch algorithm {
		case "backtracking", "bt":
			result, err = solver.Backtrack(g, viewer.Step)
		case "astar":
			_, result, err = solver.AStar(g, viewer.Step)
		case "sat":
			_, result, err = solver.SAT(g, viewer.Step)
		default:
			return fmt.Errorf("view: unknown algorithm %q (want backtracking, astar, or sat)", algorithm)
		}
		if err != nil {
			return fmt.Errorf("view: %w", err)
		}

		viewer.Close()
		fmt.Printf("result: %s\n", result)
		return nil
	},
}

func init() {
	viewCmd.Flags().StringVarP(&algorithm, "algorithm", "a", "backtracking", "solver to use: backtracking, astar, or sat")
}

// GetCommand returns the view command for registration with root.
func GetCommand() *cobra.Command {
	return viewCmd
}
