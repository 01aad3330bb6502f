package grid

import (
	"fmt"

	"github.com/flowpaths/flowpaths/pkg/common"
	"github.com/flowpaths/flowpaths/pkg/geometry"
)

// Endpoints maps a colour to its two fixed terminal positions.
type Endpoints map[Colour][2]geometry.Point

// Grid is a width x height board of cells, stored row-major. It is built by
// the loader with endpoints fixed and the interior empty, then mutated in
// place by solvers (which must restore it on backtrack) or cloned whenever
// an algorithm needs a snapshot (A*'s open set).
type Grid struct {
	Width  int
	Height int
	cells  []Cell
}

// New builds an empty-interior grid with the given endpoints placed. It
// panics on an out-of-bounds endpoint, since that can only be a loader bug,
// not a runtime condition a caller can recover from.
func New(width, height int, endpoints Endpoints) *Grid {
	g := &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}
	for colour, pair := range endpoints {
		for _, p := range pair {
			if !p.InBounds(width, height) {
				panic(fmt.Sprintf("grid: endpoint %v out of bounds for %dx%d grid", p, width, height))
			}
			g.cells[g.index(p)] = EndpointCell(colour)
		}
	}
	return g
}

func (g *Grid) index(p geometry.Point) int {
	return p.Y*g.Width + p.X
}

// Get returns the cell at p. It panics on out-of-bounds p, matching the
// spec's treatment of endpoint-overwrite style invariant violations as
// programmer errors rather than recoverable conditions.
func (g *Grid) Get(p geometry.Point) Cell {
	if !p.InBounds(g.Width, g.Height) {
		panic(fmt.Sprintf("grid: %v out of bounds for %dx%d grid", p, g.Width, g.Height))
	}
	return g.cells[g.index(p)]
}

// Set writes cell at p, refusing to overwrite an Endpoint.
func (g *Grid) Set(p geometry.Point, cell Cell) error {
	if !p.InBounds(g.Width, g.Height) {
		panic(fmt.Sprintf("grid: %v out of bounds for %dx%d grid", p, g.Width, g.Height))
	}
	idx := g.index(p)
	if g.cells[idx].Kind == KindEndpoint {
		return fmt.Errorf("%w: at %v", common.ErrEndpointOverwrite, p)
	}
	g.cells[idx] = cell
	return nil
}

// Clone returns a deep, independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		Width:  g.Width,
		Height: g.Height,
		cells:  make([]Cell, len(g.cells)),
	}
	copy(out.cells, g.cells)
	return out
}

// Equal reports whether two grids have identical dimensions and cell
// contents. Used by the cross-solver agreement property.
func (g *Grid) Equal(other *Grid) bool {
	if g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Endpoints scans the grid and returns the colour -> (p1, p2) mapping. It
// fails with ErrMalformedEndpoints if any colour present has other than
// exactly two endpoint cells.
func (g *Grid) Endpoints() (Endpoints, error) {
	found := make(map[Colour][]geometry.Point)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := geometry.Point{X: x, Y: y}
			cell := g.Get(p)
			if cell.Kind == KindEndpoint {
				found[cell.Colour] = append(found[cell.Colour], p)
			}
		}
	}
	out := make(Endpoints, len(found))
	for colour, pts := range found {
		if len(pts) != 2 {
			return nil, fmt.Errorf("%w: colour %s has %d endpoints, want 2", common.ErrMalformedEndpoints, colour, len(pts))
		}
		out[colour] = [2]geometry.Point{pts[0], pts[1]}
	}
	return out, nil
}

// Connected reports whether a and b are reachable from one another through
// cells whose colour equals colour (Path or Endpoint). This is the hot-path
// implementation: a plain BFS over the grid's own cell array, used by every
// solver and the deduction kernel. See ConnectedViaGraph for a
// library-backed equivalent used for independent verification.
func (g *Grid) Connected(colour Colour, a, b geometry.Point) bool {
	if a == b {
		return true
	}
	visited := make(map[geometry.Point]bool)
	queue := []geometry.Point{a}
	visited[a] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == b {
			return true
		}
		for _, n := range cur.Neighbors(g.Width, g.Height) {
			if visited[n] {
				continue
			}
			if g.Get(n).HasColour(colour) {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return false
}

// IsSolved reports whether every cell is non-empty and every colour's
// endpoints are connected through cells of that colour.
func (g *Grid) IsSolved(endpoints Endpoints) bool {
	for _, c := range g.cells {
		if c.Kind == KindEmpty {
			return false
		}
	}
	for colour, pair := range endpoints {
		if !g.Connected(colour, pair[0], pair[1]) {
			return false
		}
	}
	return true
}

// Head walks the simple chain of colour cells starting at start (which must
// be an endpoint of that colour) and returns the far end of the chain: the
// colour cell with no further same-colour neighbour to continue toward. If
// the colour hasn't been traced at all yet, Head returns start itself. This
// lets the deduction kernel (forced moves, dead-end, stranding) operate
// purely on grid contents, with no separate head bookkeeping required from
// either solver.
func (g *Grid) Head(colour Colour, start geometry.Point) geometry.Point {
	prev := geometry.Point{X: -1, Y: -1}
	current := start
	for {
		var next geometry.Point
		found := false
		for _, n := range current.Neighbors(g.Width, g.Height) {
			if n == prev {
				continue
			}
			if g.Get(n).HasColour(colour) {
				next = n
				found = true
				break
			}
		}
		if !found {
			return current
		}
		prev = current
		current = next
	}
}
