package geometry

import "testing"

func TestNeighborsCorner(t *testing.T) {
	p := Point{X: 0, Y: 0}
	got := p.Neighbors(3, 3)
	want := []Point{{1, 0}, {0, 1}}
	if len(got) != len(want) {
		t.Fatalf("Neighbors(0,0) = %v, want %v", got, want)
	}
	for i, g := range got {
		if g != want[i] {
			t.Fatalf("Neighbors(0,0)[%d] = %v, want %v", i, g, want[i])
		}
	}
}

func TestNeighborsInterior(t *testing.T) {
	p := Point{X: 1, Y: 1}
	got := p.Neighbors(3, 3)
	if len(got) != 4 {
		t.Fatalf("interior point should have 4 neighbours, got %d: %v", len(got), got)
	}
}

func TestInBounds(t *testing.T) {
	cases := []struct {
		p    Point
		want bool
	}{
		{Point{0, 0}, true},
		{Point{2, 2}, true},
		{Point{-1, 0}, false},
		{Point{3, 0}, false},
		{Point{0, 3}, false},
	}
	for _, c := range cases {
		if got := c.p.InBounds(3, 3); got != c.want {
			t.Errorf("InBounds(%v, 3, 3) = %v, want %v", c.p, got, c.want)
		}
	}
}

func TestOnBorder(t *testing.T) {
	if !(Point{0, 0}).OnBorder(3, 3) {
		t.Error("corner should be on border")
	}
	if (Point{1, 1}).OnBorder(3, 3) {
		t.Error("center of 3x3 should not be on border")
	}
	if !(Point{1, 0}).OnBorder(3, 3) {
		t.Error("top edge should be on border")
	}
}
