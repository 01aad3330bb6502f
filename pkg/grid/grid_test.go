package grid

import (
	"testing"

	"github.com/flowpaths/flowpaths/pkg/geometry"
)

func fourByFour() (*Grid, Endpoints) {
	endpoints := Endpoints{
		Red:  [2]geometry.Point{{0, 0}, {0, 3}},
		Blue: [2]geometry.Point{{3, 0}, {3, 3}},
	}
	return New(4, 4, endpoints), endpoints
}

func TestNewPlacesEndpoints(t *testing.T) {
	g, endpoints := fourByFour()
	for colour, pair := range endpoints {
		for _, p := range pair {
			cell := g.Get(p)
			if !cell.IsEndpoint() || cell.Colour != colour {
				t.Errorf("expected endpoint %v at %v, got %v", colour, p, cell)
			}
		}
	}
}

func TestSetRefusesEndpointOverwrite(t *testing.T) {
	g, _ := fourByFour()
	if err := g.Set(geometry.Point{X: 0, Y: 0}, PathCell(Blue)); err == nil {
		t.Error("Set should refuse to overwrite an endpoint")
	}
}

func TestEndpointsRoundTrip(t *testing.T) {
	g, want := fourByFour()
	got, err := g.Endpoints()
	if err != nil {
		t.Fatalf("Endpoints() returned error: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("Endpoints() = %v, want %v", got, want)
	}
	for colour, pair := range want {
		gotPair, ok := got[colour]
		if !ok {
			t.Fatalf("missing colour %v", colour)
		}
		if gotPair != pair {
			t.Errorf("colour %v: got %v, want %v", colour, gotPair, pair)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g, _ := fourByFour()
	clone := g.Clone()
	clone.Set(geometry.Point{X: 1, Y: 1}, PathCell(Red))
	if !g.Get(geometry.Point{X: 1, Y: 1}).IsEmpty() {
		t.Error("mutating the clone should not affect the original")
	}
	if !g.Equal(g.Clone()) {
		t.Error("a grid should equal its own clone")
	}
}

func TestConnected(t *testing.T) {
	g, _ := fourByFour()
	a, b := geometry.Point{X: 0, Y: 0}, geometry.Point{X: 0, Y: 3}
	if g.Connected(Red, a, b) {
		t.Error("Red should not be connected before any path cells are set")
	}
	g.Set(geometry.Point{X: 0, Y: 1}, PathCell(Red))
	g.Set(geometry.Point{X: 0, Y: 2}, PathCell(Red))
	if !g.Connected(Red, a, b) {
		t.Error("Red should be connected once the column is filled")
	}
}

func TestConnectedAgreesWithGraphBackedImplementation(t *testing.T) {
	g, _ := fourByFour()
	g.Set(geometry.Point{X: 0, Y: 1}, PathCell(Red))
	g.Set(geometry.Point{X: 1, Y: 0}, PathCell(Blue))

	a, b := geometry.Point{X: 0, Y: 0}, geometry.Point{X: 0, Y: 3}
	want := g.Connected(Red, a, b)
	got, err := g.ConnectedViaGraph(Red, a, b)
	if err != nil {
		t.Fatalf("ConnectedViaGraph returned error: %v", err)
	}
	if got != want {
		t.Errorf("ConnectedViaGraph(Red) = %v, want %v (matching Connected)", got, want)
	}

	c, d := geometry.Point{X: 3, Y: 0}, geometry.Point{X: 3, Y: 3}
	want = g.Connected(Blue, c, d)
	got, err = g.ConnectedViaGraph(Blue, c, d)
	if err != nil {
		t.Fatalf("ConnectedViaGraph returned error: %v", err)
	}
	if got != want {
		t.Errorf("ConnectedViaGraph(Blue) = %v, want %v (matching Connected)", got, want)
	}
}

func TestIsSolved(t *testing.T) {
	endpoints := Endpoints{Red: [2]geometry.Point{{0, 0}, {2, 0}}}
	g := New(3, 1, endpoints)
	if g.IsSolved(endpoints) {
		t.Error("grid with empty cells should not be solved")
	}
	g.Set(geometry.Point{X: 1, Y: 0}, PathCell(Red))
	if !g.IsSolved(endpoints) {
		t.Error("fully filled, fully connected grid should be solved")
	}
}

func TestHeadReturnsStartWhenUntraced(t *testing.T) {
	g, _ := fourByFour()
	start := geometry.Point{X: 0, Y: 0}
	if head := g.Head(Red, start); head != start {
		t.Errorf("Head with no path cells should return start, got %v", head)
	}
}

func TestHeadWalksToFrontier(t *testing.T) {
	g, _ := fourByFour()
	start := geometry.Point{X: 0, Y: 0}
	g.Set(geometry.Point{X: 0, Y: 1}, PathCell(Red))
	g.Set(geometry.Point{X: 0, Y: 2}, PathCell(Red))
	want := geometry.Point{X: 0, Y: 2}
	if head := g.Head(Red, start); head != want {
		t.Errorf("Head = %v, want %v", head, want)
	}
}
