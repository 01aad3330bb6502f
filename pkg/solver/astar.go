package solver

import (
	"container/heap"
	"strings"

	"github.com/flowpaths/flowpaths/pkg/geometry"
	"github.com/flowpaths/flowpaths/pkg/grid"
)

// astarState is one node of the A* search tree: a grid snapshot plus the
// accumulated cost to reach it. Heads are recomputed on demand via
// grid.Grid.Head rather than carried alongside the state, since the grid
// contents alone already determine every colour's frontier.
type astarState struct {
	g        *grid.Grid
	cost     int
	estimate int // f = cost + h
	h        int // heuristic alone, used as a tie-break under equal f
	seq      int // push order, the final tie-break for a deterministic FIFO
	index    int // heap bookkeeping
}

// heuristic counts remaining empty cells: an admissible, if weak, estimate
// of moves left, since every empty cell must eventually take some colour.
func heuristic(g *grid.Grid) int {
	count := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Get(geometry.Point{X: x, Y: y}).IsEmpty() {
				count++
			}
		}
	}
	return count
}

type stateHeap []*astarState

func (h stateHeap) Len() int { return len(h) }

// Less orders the open list by f = cost + h first, then by h alone, then by
// push order, so that states discovered earlier are expanded first whenever
// f and h both tie. container/heap gives no ordering guarantee among equal
// elements on its own, so without this a run's expansion order (and thus
// which path solvers find first) would depend on Go's internal slice
// shuffling during sift-up/down rather than anything about the puzzle.
func (h stateHeap) Less(i, j int) bool {
	if h[i].estimate != h[j].estimate {
		return h[i].estimate < h[j].estimate
	}
	if h[i].h != h[j].h {
		return h[i].h < h[j].h
	}
	return h[i].seq < h[j].seq
}
func (h stateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *stateHeap) Push(x interface{}) {
	s := x.(*astarState)
	s.index = len(*h)
	*h = append(*h, s)
}
func (h *stateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return s
}

// gridKey renders a grid's cell contents as a string, used as a visited-set
// key so the open/closed list never revisits an identical board.
func gridKey(g *grid.Grid) string {
	var b strings.Builder
	b.Grow(g.Width * g.Height * 2)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cell := g.Get(geometry.Point{X: x, Y: y})
			b.WriteByte(byte(cell.Kind))
			b.WriteByte(byte(cell.Colour))
		}
	}
	return b.String()
}

// activeColour picks the still-unconnected colour whose frontier has the
// fewest empty neighbours (most constrained first), returning false if
// every colour is already connected.
func activeColour(g *grid.Grid, endpoints grid.Endpoints) (grid.Colour, geometry.Point, geometry.Point, bool) {
	best := -1
	var bestColour grid.Colour
	var bestHead, bestGoal geometry.Point
	for colour, pair := range endpoints {
		head := g.Head(colour, pair[0])
		if head == pair[1] {
			continue
		}
		moves := 0
		for _, n := range head.Neighbors(g.Width, g.Height) {
			if g.Get(n).IsEmpty() {
				moves++
			}
		}
		if best == -1 || moves < best {
			best = moves
			bestColour = colour
			bestHead = head
			bestGoal = pair[1]
		}
	}
	if best == -1 {
		return 0, geometry.Point{}, geometry.Point{}, false
	}
	return bestColour, bestHead, bestGoal, true
}

// AStar performs best-first search over partial grid completions, expanding
// the most promising (lowest cost+heuristic) state first and always growing
// whichever unconnected colour currently has the fewest candidate moves. It
// reuses the shared deduction kernel (forced moves, dead-end and stranding
// checks) to prune and shrink the search tree the same way Backtrack does.
// It returns a solved grid on success; g itself is left untouched, since
// A* works over cloned states rather than mutating the caller's grid.
func AStar(g *grid.Grid, obs Observer) (*grid.Grid, Result, error) {
	if obs == nil {
		obs = noopObserver
	}
	endpoints, err := g.Endpoints()
	if err != nil {
		return nil, Impossible, err
	}

	start := g.Clone()
	fillToFixpoint(start, endpoints)

	open := &stateHeap{}
	heap.Init(open)
	seq := 0
	push := func(s *astarState) {
		s.seq = seq
		seq++
		heap.Push(open, s)
	}
	startH := heuristic(start)
	push(&astarState{g: start, cost: 0, estimate: startH, h: startH})

	visited := make(map[string]bool)
	step := 0

	for open.Len() > 0 {
		state := heap.Pop(open).(*astarState)

		key := gridKey(state.g)
		if visited[key] {
			continue
		}
		visited[key] = true

		if state.g.AnyDeadEnd() || grid.Stranded(state.g, endpoints) {
			continue
		}
		fillToFixpoint(state.g, endpoints)

		step++
		if !obs(state.g, step, "expanding state") {
			return nil, Cancelled, nil
		}

		if state.g.IsSolved(endpoints) {
			return state.g, Solved, nil
		}

		colour, head, goal, ok := activeColour(state.g, endpoints)
		if !ok {
			continue // every colour connected but grid not solved: some cell unreachable
		}
		if head == goal {
			continue
		}

		for _, n := range head.Neighbors(state.g.Width, state.g.Height) {
			cell := state.g.Get(n)
			if !cell.IsEmpty() && !(cell.IsEndpoint() && cell.HasColour(colour)) {
				continue
			}
			next := state.g.Clone()
			if cell.IsEmpty() {
				next.Set(n, grid.PathCell(colour))
			}
			if next.AnyDeadEnd() || grid.Stranded(next, endpoints) {
				continue
			}
			cost := state.cost + 1
			nextH := heuristic(next)
			push(&astarState{g: next, cost: cost, estimate: cost + nextH, h: nextH})
		}
	}

	return nil, Impossible, nil
}
