package solver

import (
	"github.com/irifrance/gini"
	"github.com/irifrance/gini/z"
)

// solveCNF hands a CNF formula, expressed as 1-based DIMACS-style integer
// literals (negative for negation), to a real SAT engine and reads the
// model back out. This is the only file in the package that touches
// github.com/irifrance/gini directly, so a future engine swap (or API
// drift) stays contained to one place.
func solveCNF(numVars int, clauses [][]int) (sat bool, model []bool) {
	g := gini.New()
	for _, clause := range clauses {
		for _, lit := range clause {
			v := z.Var(absInt(lit))
			if lit > 0 {
				g.Add(v.Pos())
			} else {
				g.Add(v.Neg())
			}
		}
		g.Add(0)
	}

	if g.Solve() != 1 {
		return false, nil
	}

	model = make([]bool, numVars)
	for i := 1; i <= numVars; i++ {
		model[i-1] = g.Value(z.Var(i).Pos())
	}
	return true, model
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
