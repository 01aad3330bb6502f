package solver

import (
	"testing"

	"github.com/flowpaths/flowpaths/pkg/grid"
	"github.com/flowpaths/flowpaths/pkg/loader"
)

func TestAStarSolvesFourByFour(t *testing.T) {
	g, err := loader.LoadFile("../../testdata/solvable_4x4.txt")
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	solved, result, err := AStar(g, nil)
	if err != nil {
		t.Fatalf("AStar returned error: %v", err)
	}
	if result != Solved {
		t.Fatalf("AStar(solvable_4x4) = %v, want Solved", result)
	}
	endpoints, _ := g.Endpoints()
	if !solved.IsSolved(endpoints) {
		t.Error("AStar reports Solved but returned grid is not IsSolved")
	}
}

func TestAStarLeavesInputGridUntouched(t *testing.T) {
	g, err := loader.LoadFile("../../testdata/solvable_4x4.txt")
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	before := g.Clone()
	if _, _, err := AStar(g, nil); err != nil {
		t.Fatalf("AStar returned error: %v", err)
	}
	if !g.Equal(before) {
		t.Error("AStar should solve over cloned states, leaving the input grid unchanged")
	}
}

func TestAStarFindsCrossingEndpointsImpossible(t *testing.T) {
	g, err := loader.LoadFile("../../testdata/unsolvable_2x2.txt")
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	_, result, err := AStar(g, nil)
	if err != nil {
		t.Fatalf("AStar returned error: %v", err)
	}
	if result != Impossible {
		t.Fatalf("AStar(unsolvable_2x2) = %v, want Impossible", result)
	}
}

func TestAStarSolvesForcedChainAlone(t *testing.T) {
	g, err := loader.LoadFile("../../testdata/forced_chain_1x5.txt")
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	_, result, err := AStar(g, nil)
	if err != nil {
		t.Fatalf("AStar returned error: %v", err)
	}
	if result != Solved {
		t.Fatalf("AStar(forced_chain_1x5) = %v, want Solved", result)
	}
}

func TestAStarCancelledByObserver(t *testing.T) {
	g, err := loader.LoadFile("../../testdata/solvable_4x4.txt")
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	_, result, err := AStar(g, func(*grid.Grid, int, string) bool { return false })
	if err != nil {
		t.Fatalf("AStar returned error: %v", err)
	}
	if result != Cancelled {
		t.Fatalf("AStar with always-false observer = %v, want Cancelled", result)
	}
}
