package solver

import (
	"github.com/flowpaths/flowpaths/pkg/geometry"
	"github.com/flowpaths/flowpaths/pkg/grid"
)

// pathVisitor is called once per simple path found by findPaths, in
// depth-first discovery order, with the path from (exclusive) start to
// (inclusive) end. Returning false stops the search early: this lets
// Backtrack try one candidate path at a time and bail out of enumerating the
// rest as soon as one of them leads to a full solution, instead of
// materializing every simple path between two points before trying any.
type pathVisitor func(path []geometry.Point) bool

// findPaths walks every simple path from current to end through cells that
// are Empty or already carry colour, calling visit once per path found.
// Search stops the moment visit returns false.
func findPaths(g *grid.Grid, current, end geometry.Point, colour grid.Colour, visited map[geometry.Point]bool, path []geometry.Point, visit pathVisitor) bool {
	if current == end {
		return visit(append([]geometry.Point(nil), path...))
	}

	visited[current] = true
	defer delete(visited, current)

	for _, n := range current.Neighbors(g.Width, g.Height) {
		if visited[n] {
			continue
		}
		cell := g.Get(n)
		if !cell.IsEmpty() && !cell.HasColour(colour) {
			continue
		}
		if !findPaths(g, n, end, colour, visited, append(path, n), visit) {
			return false
		}
	}
	return true
}

// fillToFixpoint runs the shared deduction kernel's two fill mechanisms,
// guaranteed border-arc fill and forced-move propagation, interleaved to a
// joint fixpoint: each one can expose new opportunities for the other (a
// forced move can complete a border arc, and a border fill can leave a head
// with only one empty neighbour). It returns every point filled across all
// rounds so the caller can undo them together on backtrack.
func fillToFixpoint(g *grid.Grid, endpoints grid.Endpoints) []geometry.Point {
	var all []geometry.Point
	for {
		progress := false
		if filled, ok := grid.FillGuaranteed(g, endpoints); ok {
			all = append(all, filled...)
			progress = true
		}
		if moves, ok := grid.ApplyForcedMoves(g, endpoints); ok && len(moves) > 0 {
			for _, m := range moves {
				all = append(all, m.Point)
			}
			progress = true
		}
		if !progress {
			return all
		}
	}
}

type colourPair struct {
	colour     grid.Colour
	start, end geometry.Point
}

// Backtrack fills g in place by trying, for each still-unconnected colour in
// turn, every simple candidate path from its start to its end, applying the
// shared deduction kernel after each tentative commit and recursing; it
// undoes a path's cells before trying the next candidate or colour. obs may
// be nil.
func Backtrack(g *grid.Grid, obs Observer) (Result, error) {
	if obs == nil {
		obs = noopObserver
	}
	endpoints, err := g.Endpoints()
	if err != nil {
		return Impossible, err
	}
	fillToFixpoint(g, endpoints)

	pairs := make([]colourPair, 0, len(endpoints))
	for colour, pair := range endpoints {
		pairs = append(pairs, colourPair{colour: colour, start: pair[0], end: pair[1]})
	}

	step := 0
	cancelled := false
	solved := backtrack(g, pairs, 0, endpoints, obs, &step, &cancelled)
	if cancelled {
		return Cancelled, nil
	}
	if solved {
		return Solved, nil
	}
	return Impossible, nil
}

func backtrack(g *grid.Grid, pairs []colourPair, index int, endpoints grid.Endpoints, obs Observer, step *int, cancelled *bool) bool {
	if index == len(pairs) {
		return g.IsSolved(endpoints)
	}

	p := pairs[index]
	if g.Connected(p.colour, p.start, p.end) {
		return backtrack(g, pairs, index+1, endpoints, obs, step, cancelled)
	}

	if g.AnyDeadEnd() || grid.Stranded(g, endpoints) {
		return false
	}

	visited := make(map[geometry.Point]bool)
	found := false

	findPaths(g, p.start, p.end, p.colour, visited, nil, func(path []geometry.Point) bool {
		if *cancelled {
			return false
		}

		var committed []geometry.Point
		for _, pt := range path {
			if g.Get(pt).IsEmpty() {
				g.Set(pt, grid.PathCell(p.colour))
				committed = append(committed, pt)
			}
		}

		filled := fillToFixpoint(g, endpoints)

		*step++
		if !obs(g, *step, "trying path for "+p.colour.String()) {
			*cancelled = true
		}

		if !*cancelled && !g.AnyDeadEnd() && !grid.Stranded(g, endpoints) && backtrack(g, pairs, index+1, endpoints, obs, step, cancelled) {
			found = true
			return false
		}

		for _, pt := range filled {
			g.Set(pt, grid.EmptyCell())
		}
		for _, pt := range committed {
			g.Set(pt, grid.EmptyCell())
		}

		*step++
		if !obs(g, *step, "backtracking "+p.colour.String()) {
			*cancelled = true
		}

		return !*cancelled
	})

	return found
}
