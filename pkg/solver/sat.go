package solver

import (
	"github.com/flowpaths/flowpaths/pkg/geometry"
	"github.com/flowpaths/flowpaths/pkg/grid"
)

// dirType is one of the six ways a non-endpoint path cell can bend: the flow
// enters from one side and leaves from another. Endpoints never get a
// direction-type variable since they only connect to a single neighbour.
type dirType uint8

const (
	dirLeftRight dirType = iota
	dirTopBottom
	dirTopLeft
	dirTopRight
	dirBottomLeft
	dirBottomRight
	numDirTypes
)

// dirOffsets gives the two neighbour offsets a direction type connects, in
// (dx, dy) form.
var dirOffsets = [numDirTypes][2][2]int{
	dirLeftRight:  {{-1, 0}, {1, 0}},
	dirTopBottom:  {{0, -1}, {0, 1}},
	dirTopLeft:    {{-1, 0}, {0, -1}},
	dirTopRight:   {{1, 0}, {0, -1}},
	dirBottomLeft: {{-1, 0}, {0, 1}},
	dirBottomRight: {{1, 0}, {0, 1}},
}

// cnfBuilder accumulates clauses over a growing set of 1-based variables.
type cnfBuilder struct {
	nextVar int
	clauses [][]int
}

func (b *cnfBuilder) newVar() int {
	b.nextVar++
	return b.nextVar
}

func (b *cnfBuilder) clause(lits ...int) {
	b.clauses = append(b.clauses, append([]int(nil), lits...))
}

// atMostOne adds pairwise mutual-exclusion clauses over lits.
func (b *cnfBuilder) atMostOne(lits []int) {
	for i := 0; i < len(lits); i++ {
		for j := i + 1; j < len(lits); j++ {
			b.clause(-lits[i], -lits[j])
		}
	}
}

// SAT reduces g's remaining-cell assignment to a CNF formula over a
// cell-is-colour variable per (cell, colour) and a bend-type variable per
// non-endpoint cell, in the style of a loopless-flow encoding: every cell
// gets exactly one colour, every endpoint's colour is fixed and has exactly
// one same-colour neighbour, and every non-endpoint cell picks exactly one
// of the six direction types, which in turn forces its two connected
// neighbours to share its colour and forbids touching any other neighbour
// of that colour (preventing the encoding from producing a branching or
// self-touching flow). A satisfying assignment is decoded back into a
// completed grid; g itself is never mutated.
func SAT(g *grid.Grid, obs Observer) (*grid.Grid, Result, error) {
	if obs == nil {
		obs = noopObserver
	}
	endpoints, err := g.Endpoints()
	if err != nil {
		return nil, Impossible, err
	}

	colours := make([]grid.Colour, 0, len(endpoints))
	for c := range endpoints {
		colours = append(colours, c)
	}

	b := &cnfBuilder{}
	cellVar := make(map[geometry.Point]map[grid.Colour]int)
	dirVar := make(map[geometry.Point]map[dirType]int)

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := geometry.Point{X: x, Y: y}
			cellVar[p] = make(map[grid.Colour]int, len(colours))
			for _, c := range colours {
				cellVar[p][c] = b.newVar()
			}
		}
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := geometry.Point{X: x, Y: y}
			if g.Get(p).IsEndpoint() {
				continue
			}
			dirVar[p] = make(map[dirType]int, numDirTypes)
			for d := dirType(0); d < numDirTypes; d++ {
				dirVar[p][d] = b.newVar()
			}
		}
	}

	// Exactly one colour per cell.
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := geometry.Point{X: x, Y: y}
			lits := make([]int, 0, len(colours))
			for _, c := range colours {
				lits = append(lits, cellVar[p][c])
			}
			b.clause(lits...)
			b.atMostOne(lits)
		}
	}

	// Endpoint constraints: fixed colour, and exactly one same-colour
	// neighbour (the single step the flow takes away from the endpoint).
	for colour, pair := range endpoints {
		for _, ep := range pair {
			b.clause(cellVar[ep][colour])
			for _, other := range colours {
				if other != colour {
					b.clause(-cellVar[ep][other])
				}
			}
			var neighbourLits []int
			for _, n := range ep.Neighbors(g.Width, g.Height) {
				neighbourLits = append(neighbourLits, cellVar[n][colour])
			}
			b.clause(neighbourLits...)
			b.atMostOne(neighbourLits)
		}
	}

	// Non-endpoint cells: exactly one direction type, and that type's
	// pair of neighbours must share the cell's colour while every other
	// neighbour must not (no branching, no self-touching flow).
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := geometry.Point{X: x, Y: y}
			dvs, ok := dirVar[p]
			if !ok {
				continue
			}
			var dirLits []int
			validDirs := make(map[dirType][2]geometry.Point)
			for d := dirType(0); d < numDirTypes; d++ {
				offs := dirOffsets[d]
				n1 := geometry.Point{X: x + offs[0][0], Y: y + offs[0][1]}
				n2 := geometry.Point{X: x + offs[1][0], Y: y + offs[1][1]}
				if !n1.InBounds(g.Width, g.Height) || !n2.InBounds(g.Width, g.Height) {
					continue
				}
				dirLits = append(dirLits, dvs[d])
				validDirs[d] = [2]geometry.Point{n1, n2}
			}
			b.clause(dirLits...)
			b.atMostOne(dirLits)

			allNeighbours := p.Neighbors(g.Width, g.Height)
			for _, c := range colours {
				cellLit := cellVar[p][c]
				for d, pair := range validDirs {
					dirLit := dvs[d]
					n1Lit := cellVar[pair[0]][c]
					n2Lit := cellVar[pair[1]][c]
					// dirLit -> (cellLit <-> n1Lit)
					b.clause(-dirLit, -cellLit, n1Lit)
					b.clause(-dirLit, cellLit, -n1Lit)
					// dirLit -> (cellLit <-> n2Lit)
					b.clause(-dirLit, -cellLit, n2Lit)
					b.clause(-dirLit, cellLit, -n2Lit)
					// every other neighbour must not also carry colour c
					for _, n := range allNeighbours {
						if n == pair[0] || n == pair[1] {
							continue
						}
						b.clause(-dirLit, -cellLit, -cellVar[n][c])
					}
				}
			}
		}
	}

	obs(g, 1, "encoded formula")

	sat, model := solveCNF(b.nextVar, b.clauses)
	if !sat {
		return nil, Impossible, nil
	}

	out := g.Clone()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := geometry.Point{X: x, Y: y}
			assigned := false
			for _, c := range colours {
				if model[cellVar[p][c]-1] {
					if g.Get(p).IsEndpoint() {
						// already an endpoint cell of this colour; nothing to set
					} else {
						out.Set(p, grid.PathCell(c))
					}
					assigned = true
					break
				}
			}
			if !assigned {
				return nil, Impossible, nil
			}
		}
	}

	obs(out, 2, "decoded model")
	return out, Solved, nil
}
