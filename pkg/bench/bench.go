// Package bench times the three solvers against a puzzle over repeated
// trials and reports summary statistics, so a caller can compare algorithm
// performance on a given grid rather than trusting a single noisy run.
package bench

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/flowpaths/flowpaths/pkg/grid"
	"github.com/flowpaths/flowpaths/pkg/solver"
)

// Algorithm identifies which solver a Run exercises.
type Algorithm string

const (
	Backtracking Algorithm = "backtracking"
	AStar        Algorithm = "astar"
	SAT          Algorithm = "sat"
)

// Summary holds per-algorithm timing statistics over Trials runs.
type Summary struct {
	Algorithm Algorithm
	Trials    int
	Result    solver.Result
	Mean      time.Duration
	StdDev    time.Duration
	Min       time.Duration
	Max       time.Duration
}

func (s Summary) String() string {
	return fmt.Sprintf("%-12s trials=%-3d result=%-11s mean=%-10s stddev=%-10s min=%-10s max=%-10s",
		s.Algorithm, s.Trials, s.Result, s.Mean, s.StdDev, s.Min, s.Max)
}

// Run times algorithm against a fresh clone of g for trials iterations and
// returns aggregate statistics computed with gonum.org/v1/gonum/stat. Every
// trial starts from an independent clone since the solvers mutate (or, for
// AStar/SAT, read endpoints off) their input.
func Run(g *grid.Grid, algorithm Algorithm, trials int) (Summary, error) {
	if trials < 1 {
		trials = 1
	}
	samples := make([]float64, 0, trials)
	var lastResult solver.Result

	for i := 0; i < trials; i++ {
		working := g.Clone()
		start := time.Now()

		var result solver.Result
		var err error
		switch algorithm {
		case Backtracking:
			result, err = solver.Backtrack(working, nil)
		case AStar:
			_, result, err = solver.AStar(working, nil)
		case SAT:
			_, result, err = solver.SAT(working, nil)
		default:
			return Summary{}, fmt.Errorf("bench: unknown algorithm %q", algorithm)
		}
		if err != nil {
			return Summary{}, fmt.Errorf("bench: trial %d: %w", i, err)
		}

		elapsed := time.Since(start)
		samples = append(samples, float64(elapsed))
		lastResult = result
	}

	mean := stat.Mean(samples, nil)
	var stddev float64
	if len(samples) > 1 {
		stddev = stat.StdDev(samples, mean, nil)
	}

	min, max := samples[0], samples[0]
	for _, s := range samples[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}

	return Summary{
		Algorithm: algorithm,
		Trials:    trials,
		Result:    lastResult,
		Mean:      time.Duration(mean),
		StdDev:    time.Duration(stddev),
		Min:       time.Duration(min),
		Max:       time.Duration(max),
	}, nil
}

// RunAll times every algorithm against g in turn.
func RunAll(g *grid.Grid, trials int) ([]Summary, error) {
	summaries := make([]Summary, 0, 3)
	for _, alg := range []Algorithm{Backtracking, AStar, SAT} {
		s, err := Run(g, alg, trials)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// Record is Summary flattened to plain JSON-friendly fields (durations as
// milliseconds), the form bench --out writes and cmd/stats reads back.
type Record struct {
	Puzzle    string  `json:"puzzle"`
	Algorithm string  `json:"algorithm"`
	Trials    int     `json:"trials"`
	Result    string  `json:"result"`
	MeanMs    float64 `json:"mean_ms"`
	StdDevMs  float64 `json:"stddev_ms"`
	MinMs     float64 `json:"min_ms"`
	MaxMs     float64 `json:"max_ms"`
}

// ToRecord attaches a puzzle label to a Summary and converts its durations
// to milliseconds for serialization.
func (s Summary) ToRecord(puzzle string) Record {
	return Record{
		Puzzle:    puzzle,
		Algorithm: string(s.Algorithm),
		Trials:    s.Trials,
		Result:    s.Result.String(),
		MeanMs:    float64(s.Mean) / float64(time.Millisecond),
		StdDevMs:  float64(s.StdDev) / float64(time.Millisecond),
		MinMs:     float64(s.Min) / float64(time.Millisecond),
		MaxMs:     float64(s.Max) / float64(time.Millisecond),
	}
}
