// Package main provides the flowpaths CLI: a tool for solving, timing, and
// inspecting Flow-Free style connection puzzles.
//
// # Overview
//
// A puzzle is a rectangular grid carrying a fixed pair of endpoints per
// colour. Solving it means filling every remaining cell with a coloured
// path such that each colour's two endpoints are connected through a single
// simple chain of its own colour, and the grid ends up completely full.
// flowpaths provides three independent ways to do this:
//
//   - backtracking: pruned depth-first search enumerating simple candidate
//     paths per colour, backtracking on dead ends
//   - astar: best-first search over partial grid completions, guided by an
//     admissible heuristic (remaining empty cells) and always growing
//     whichever unconnected colour is most constrained
//   - sat: a reduction to a CNF boolean satisfiability problem, solved with
//     a real SAT engine (github.com/irifrance/gini)
//
// Backtracking and A* share a deduction kernel (pkg/grid) that propagates
// forced moves to a fixpoint, detects dead ends and stranded regions, and
// fills border-trapped colour pairs directly — shrinking the search space
// before either one branches. The SAT reduction does not use it.
//
// # Installation & Building
//
//	go build
//	./flowpaths --help
//
// # Commands
//
// ## solve
//
// Load a puzzle file and complete it with the chosen algorithm, printing the
// solved grid.
//
//	flowpaths solve puzzles/level5.txt
//	flowpaths solve puzzles/level5.txt --algorithm astar
//	flowpaths solve puzzles/level5.txt --algorithm sat --ascii
//
// ## view
//
// Step through a solver's search interactively in a terminal screen
// (github.com/gdamore/tcell/v2), rendering the grid after every tentative
// move. Space/n advances, q quits.
//
//	flowpaths view puzzles/level5.txt --algorithm backtracking
//
// ## bench
//
// Time all three solvers against the same puzzle over repeated trials and
// report mean/stddev/min/max wall-clock time (github.com/gonum/gonum's stat
// package computes the aggregates). --out writes the results as JSON.
//
//	flowpaths bench puzzles/level5.txt --trials 20 --out stats.json
//
// ## stats
//
// Summarize one or more JSON files written by "bench --out" into
// per-algorithm averages.
//
//	flowpaths stats stats.json
//
// # Puzzle file format
//
// One line per grid row. '.' is an empty cell; any other character is an
// endpoint, using the same alphabet as the classic game (uppercase letters
// for most colours, a handful of lowercase letters for the rest — see
// pkg/grid.ColourFromChar for the full table). Each colour must appear
// exactly twice.
//
//	R...B
//	.....
//	.....
//	.....
//	RB...
//
// # Architecture
//
//	cmd/              - Cobra command implementations
//	  ├─ solve/       - solve command
//	  ├─ view/        - interactive tcell viewer command
//	  ├─ bench/       - timing harness command
//	  └─ stats/       - JSON record summarizer command
//	pkg/
//	  ├─ common/      - shared error taxonomy and logging
//	  ├─ geometry/    - points, neighbours, perimeter/border-arc geometry
//	  ├─ grid/        - Grid/Cell/Colour model and the shared deduction kernel
//	  ├─ solver/      - the three solvers
//	  ├─ loader/      - puzzle text format parser and renderer
//	  ├─ display/     - interactive (tcell) step-through viewer
//	  ├─ bench/       - timing harness and its JSON record type
//	  └─ ui/          - terminal spinner wrapper
//
// # Global flags
//
//	-v, --verbose          enable verbose output
//	    --log-file string  also write output to this log file
package main
