package grid

import (
	"fmt"

	"github.com/katalvlaran/lvlath/bfs"
	"github.com/katalvlaran/lvlath/core"

	"github.com/flowpaths/flowpaths/pkg/geometry"
)

// ConnectedViaGraph is a library-backed equivalent of Connected: it builds an
// undirected github.com/katalvlaran/lvlath/core.Graph over every cell whose
// colour equals colour, then runs github.com/katalvlaran/lvlath/bfs.BFS from
// a to check reachability to b. It is not on the hot path of any solver (it
// allocates a fresh graph per call) but serves as an independently-verified
// cross-check of the hand-rolled BFS in Connected, exercised by
// grid_test.go's TestConnectedAgreesWithGraphBackedImplementation.
func (g *Grid) ConnectedViaGraph(colour Colour, a, b geometry.Point) (bool, error) {
	if a == b {
		return true, nil
	}

	graph := core.NewGraph()
	id := func(p geometry.Point) string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

	// Pass 1: every colour-matching cell becomes a vertex.
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := geometry.Point{X: x, Y: y}
			if g.Get(p).HasColour(colour) {
				if err := graph.AddVertex(id(p)); err != nil {
					return false, err
				}
			}
		}
	}

	// Pass 2: every vertex now exists, so edges to its up/left neighbours
	// (already visited in row-major order) cover each undirected edge once.
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := geometry.Point{X: x, Y: y}
			if !g.Get(p).HasColour(colour) {
				continue
			}
			if x > 0 {
				if left := (geometry.Point{X: x - 1, Y: y}); g.Get(left).HasColour(colour) {
					if _, err := graph.AddEdge(id(p), id(left), 0); err != nil {
						return false, err
					}
				}
			}
			if y > 0 {
				if up := (geometry.Point{X: x, Y: y - 1}); g.Get(up).HasColour(colour) {
					if _, err := graph.AddEdge(id(p), id(up), 0); err != nil {
						return false, err
					}
				}
			}
		}
	}

	if !graph.HasVertex(id(a)) || !graph.HasVertex(id(b)) {
		return false, nil
	}
	result, err := bfs.BFS(graph, id(a))
	if err != nil {
		return false, err
	}
	_, reached := result.Depth[id(b)]
	return reached, nil
}
