// Package solver implements three independent ways of finishing a partially
// filled grid.Grid: pruned backtracking (backtracking.go), A* best-first
// search (astar.go), and a SAT/CNF reduction (sat.go). Backtracking and A*
// share the deduction kernel in pkg/grid; SAT encodes the whole puzzle
// without it. All three are expected to agree on solvability for any given
// puzzle; pkg/solver/agreement_test.go exercises that property directly.
package solver

import "github.com/flowpaths/flowpaths/pkg/grid"

// Result is the outcome of a solve attempt.
type Result int

const (
	// Solved means Grid holds a complete, valid solution.
	Solved Result = iota
	// Impossible means no completion exists from the given starting state.
	Impossible
	// Cancelled means an Observer callback asked the solver to stop early.
	Cancelled
)

func (r Result) String() string {
	switch r {
	case Solved:
		return "Solved"
	case Impossible:
		return "Impossible"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Observer is called after every tentative move a solver commits to the
// working grid. step is a monotonically increasing counter, message is a
// short human-readable description of the move. Returning false asks the
// solver to abandon the search and return Cancelled; this is how the
// interactive viewer (cmd/view) and a future timeout wrapper both cooperate
// with a solver already mid-search, without the solver package importing
// context or time itself.
type Observer func(g *grid.Grid, step int, message string) bool

// noopObserver is used internally when a caller passes a nil Observer, so
// solve loops never need a nil check on the hot path.
func noopObserver(*grid.Grid, int, string) bool { return true }
