package solver

import (
	"testing"

	"github.com/flowpaths/flowpaths/pkg/loader"
)

// TestAllSolversAgreeOnSolvability is the cross-solver agreement property:
// whatever one solver decides about a puzzle, the other two must decide the
// same thing, since all three are answering the same question (does a
// completion exist) over the same grid.
func TestAllSolversAgreeOnSolvability(t *testing.T) {
	cases := []struct {
		path string
		want Result
	}{
		{"../../testdata/solvable_4x4.txt", Solved},
		{"../../testdata/unsolvable_2x2.txt", Impossible},
		{"../../testdata/unsolvable_3x3_boxed_corner.txt", Impossible},
		{"../../testdata/forced_chain_1x5.txt", Solved},
		{"../../testdata/multicolour_5x5.txt", Solved},
		{"../../testdata/border_only_3x3.txt", Solved},
		{"../../testdata/single_pair_3x3.txt", Impossible},
	}

	for _, c := range cases {
		g, err := loader.LoadFile(c.path)
		if err != nil {
			t.Fatalf("LoadFile(%s) returned error: %v", c.path, err)
		}

		btResult, err := Backtrack(g.Clone(), nil)
		if err != nil {
			t.Fatalf("%s: Backtrack returned error: %v", c.path, err)
		}
		if btResult != c.want {
			t.Errorf("%s: Backtrack = %v, want %v", c.path, btResult, c.want)
		}

		_, aResult, err := AStar(g.Clone(), nil)
		if err != nil {
			t.Fatalf("%s: AStar returned error: %v", c.path, err)
		}
		if aResult != c.want {
			t.Errorf("%s: AStar = %v, want %v", c.path, aResult, c.want)
		}

		_, sResult, err := SAT(g.Clone(), nil)
		if err != nil {
			t.Fatalf("%s: SAT returned error: %v", c.path, err)
		}
		if sResult != c.want {
			t.Errorf("%s: SAT = %v, want %v", c.path, sResult, c.want)
		}

		if btResult != aResult || aResult != sResult {
			t.Errorf("%s: solvers disagree: backtracking=%v astar=%v sat=%v", c.path, btResult, aResult, sResult)
		}
	}
}
