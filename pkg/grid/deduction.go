package grid

import "github.com/flowpaths/flowpaths/pkg/geometry"

// DeadEnd reports whether p is an empty cell boxed in by three or more
// path/endpoint neighbours, meaning no colour could ever route through it.
func (g *Grid) DeadEnd(p geometry.Point) bool {
	cell := g.Get(p)
	if !cell.IsEmpty() {
		return false
	}
	occupied := 0
	for _, n := range p.Neighbors(g.Width, g.Height) {
		if !g.Get(n).IsEmpty() {
			occupied++
		}
	}
	return occupied >= 3
}

// AnyDeadEnd scans the whole grid for a dead-end cell. Solvers call this
// after every tentative move to prune branches that can never complete.
func (g *Grid) AnyDeadEnd() bool {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.DeadEnd(geometry.Point{X: x, Y: y}) {
				return true
			}
		}
	}
	return false
}

// ForcedMove is a single cell that must take a given colour because it is
// the only empty neighbour of a live chain head.
type ForcedMove struct {
	Point  geometry.Point
	Colour Colour
}

// ApplyForcedMoves repeatedly scans every unfinished colour's two heads: if a
// head has exactly one empty neighbour and that neighbour isn't the other
// head's goal cell itself, the move is forced — no other colour could ever
// legally claim that cell without first blocking this one. Moves are applied
// to g in place and returned in application order, looping to a fixpoint
// since one forced move often exposes another. Returns false if applying a
// forced move would require overwriting an endpoint, signalling the caller
// (the deduction kernel's caller) that this branch is dead.
func ApplyForcedMoves(g *Grid, endpoints Endpoints) ([]ForcedMove, bool) {
	var applied []ForcedMove
	for {
		progress := false
		for colour, pair := range endpoints {
			for _, start := range pair {
				other := pair[0]
				if other == start {
					other = pair[1]
				}
				head := g.Head(colour, start)
				if head == other {
					continue // chain from this endpoint already reaches the other: done
				}
				empties := emptyNeighbours(g, head)
				if len(empties) != 1 {
					continue
				}
				next := empties[0]
				if err := g.Set(next, PathCell(colour)); err != nil {
					return applied, false
				}
				applied = append(applied, ForcedMove{Point: next, Colour: colour})
				progress = true
			}
		}
		if !progress {
			break
		}
	}
	return applied, true
}

func emptyNeighbours(g *Grid, p geometry.Point) []geometry.Point {
	var out []geometry.Point
	for _, n := range p.Neighbors(g.Width, g.Height) {
		if g.Get(n).IsEmpty() {
			out = append(out, n)
		}
	}
	return out
}

// Stranded reports whether any unfinished colour's two heads have been
// separated into different connected components of the empty-cell graph:
// if a colour's two heads sit in different components, or either head has
// no empty neighbour at all, the branch can never complete. This is the
// region-stranding check: label the connected components of empty cells,
// then verify every unfinished colour's two heads border the same component.
// Only the component touching each head's first empty neighbour (in
// Neighbors order) is compared, and an empty component that borders no head
// at all is not reported.
func Stranded(g *Grid, endpoints Endpoints) bool {
	labels := labelEmptyRegions(g)
	for colour, pair := range endpoints {
		headA := g.Head(colour, pair[0])
		headB := g.Head(colour, pair[1])
		if headA == pair[1] || headB == pair[0] || headA == headB {
			continue // colour already connects head-to-head
		}
		regionA := adjacentRegion(g, headA, labels)
		regionB := adjacentRegion(g, headB, labels)
		if regionA == -1 || regionB == -1 || regionA != regionB {
			return true
		}
	}
	return false
}

// labelEmptyRegions assigns each empty cell a connected-component id via
// flood fill, -1 for non-empty cells.
func labelEmptyRegions(g *Grid) []int {
	labels := make([]int, g.Width*g.Height)
	for i := range labels {
		labels[i] = -1
	}
	next := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			start := geometry.Point{X: x, Y: y}
			idx := g.index(start)
			if !g.Get(start).IsEmpty() || labels[idx] != -1 {
				continue
			}
			queue := []geometry.Point{start}
			labels[idx] = next
			for len(queue) > 0 {
				cur := queue[0]
				queue = queue[1:]
				for _, n := range cur.Neighbors(g.Width, g.Height) {
					ni := g.index(n)
					if g.Get(n).IsEmpty() && labels[ni] == -1 {
						labels[ni] = next
						queue = append(queue, n)
					}
				}
			}
			next++
		}
	}
	return labels
}

// adjacentRegion returns the region label bordering head, or -1 if head has
// no empty neighbour (i.e. it is walled in, handled separately by DeadEnd).
func adjacentRegion(g *Grid, head geometry.Point, labels []int) int {
	for _, n := range head.Neighbors(g.Width, g.Height) {
		if g.Get(n).IsEmpty() {
			return labels[g.index(n)]
		}
	}
	return -1
}

// FillGuaranteed looks for a colour whose two endpoints both lie on the
// grid's border with exactly one of the two border arcs between them clear
// (every cell on that arc empty or already that colour) and the other arc
// blocked (touches a different colour or a non-border obstruction). When
// such an arc is unique, no other colour can ever use it, so it is filled in
// directly rather than discovered cell-by-cell by search. Returns the filled
// points and true if a fill was applied; ApplyForcedMoves-style fixpoint
// looping is the caller's responsibility since a fill can unblock another
// colour's own border arc.
func FillGuaranteed(g *Grid, endpoints Endpoints) ([]geometry.Point, bool) {
	for colour, pair := range endpoints {
		arcs, ok := geometry.BorderArcs(g.Width, g.Height, pair[0], pair[1])
		if !ok {
			continue
		}
		clear := -1
		for i, arc := range arcs {
			if arcIsClear(g, arc, colour) {
				if clear != -1 {
					clear = -2 // both arcs clear: not unique, can't force either
					break
				}
				clear = i
			}
		}
		if clear < 0 {
			continue
		}
		arc := arcs[clear]
		var filled []geometry.Point
		for _, p := range arc {
			if g.Get(p).IsEmpty() {
				if err := g.Set(p, PathCell(colour)); err != nil {
					return filled, false
				}
				filled = append(filled, p)
			}
		}
		if len(filled) > 0 {
			return filled, true
		}
	}
	return nil, false
}

func arcIsClear(g *Grid, arc []geometry.Point, colour Colour) bool {
	for _, p := range arc {
		cell := g.Get(p)
		if !cell.IsEmpty() && !cell.HasColour(colour) {
			return false
		}
	}
	return true
}
