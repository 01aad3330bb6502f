package geometry

import "testing"

func TestPerimeterSquare(t *testing.T) {
	perim := Perimeter(3, 3)
	if len(perim) != 8 {
		t.Fatalf("Perimeter(3,3) has %d points, want 8", len(perim))
	}
	seen := make(map[Point]bool)
	for _, p := range perim {
		if !p.OnBorder(3, 3) {
			t.Errorf("Perimeter point %v is not on the border", p)
		}
		if seen[p] {
			t.Errorf("Perimeter point %v repeated", p)
		}
		seen[p] = true
	}
	if seen[Point{1, 1}] {
		t.Error("Perimeter should not include the center cell")
	}
}

func TestPerimeterDegenerateRow(t *testing.T) {
	perim := Perimeter(5, 1)
	want := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}
	if len(perim) != len(want) {
		t.Fatalf("Perimeter(5,1) = %v, want %v", perim, want)
	}
	for i, p := range perim {
		if p != want[i] {
			t.Errorf("Perimeter(5,1)[%d] = %v, want %v", i, p, want[i])
		}
	}
}

func TestBorderArcsSplitsIntoTwo(t *testing.T) {
	arcs, ok := BorderArcs(3, 3, Point{0, 0}, Point{2, 0})
	if !ok {
		t.Fatal("BorderArcs should succeed for two border points")
	}
	if len(arcs) != 2 {
		t.Fatalf("expected 2 arcs, got %d", len(arcs))
	}
	// One arc goes the short way (through (1,0)), the other the long way
	// around the remaining 5 border cells.
	shortLen, longLen := len(arcs[0]), len(arcs[1])
	if shortLen > longLen {
		shortLen, longLen = longLen, shortLen
	}
	if shortLen != 1 || longLen != 5 {
		t.Errorf("arc lengths = %d, %d, want 1, 5", len(arcs[0]), len(arcs[1]))
	}
}

func TestBorderArcsRejectsInteriorPoint(t *testing.T) {
	if _, ok := BorderArcs(3, 3, Point{1, 1}, Point{0, 0}); ok {
		t.Error("BorderArcs should reject a non-border point")
	}
}

func TestBorderArcsDegenerateSingleArc(t *testing.T) {
	arcs, ok := BorderArcs(5, 1, Point{0, 0}, Point{4, 0})
	if !ok {
		t.Fatal("BorderArcs should succeed for a degenerate 1-row grid")
	}
	if len(arcs) != 1 {
		t.Fatalf("degenerate grid should produce exactly 1 arc, got %d", len(arcs))
	}
	want := []Point{{1, 0}, {2, 0}, {3, 0}}
	if len(arcs[0]) != len(want) {
		t.Fatalf("arc = %v, want %v", arcs[0], want)
	}
	for i, p := range arcs[0] {
		if p != want[i] {
			t.Errorf("arc[%d] = %v, want %v", i, p, want[i])
		}
	}
}
