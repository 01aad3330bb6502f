package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/flowpaths/flowpaths/pkg/common"
	"github.com/flowpaths/flowpaths/pkg/geometry"
	"github.com/flowpaths/flowpaths/pkg/grid"
)

func TestLoadPlacesEndpoints(t *testing.T) {
	g, err := Load(strings.NewReader("R..B\nR...\nR...\nR..B\n"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if g.Width != 4 || g.Height != 4 {
		t.Fatalf("got %dx%d grid, want 4x4", g.Width, g.Height)
	}
	endpoints, err := g.Endpoints()
	if err != nil {
		t.Fatalf("Endpoints() returned error: %v", err)
	}
	red, ok := endpoints[grid.Red]
	if !ok {
		t.Fatal("missing Red endpoints")
	}
	want := [2]geometry.Point{{X: 0, Y: 0}, {X: 0, Y: 3}}
	if red != want {
		t.Errorf("Red endpoints = %v, want %v", red, want)
	}
	blue, ok := endpoints[grid.Blue]
	if !ok {
		t.Fatal("missing Blue endpoints")
	}
	wantBlue := [2]geometry.Point{{X: 3, Y: 0}, {X: 3, Y: 3}}
	if blue != wantBlue {
		t.Errorf("Blue endpoints = %v, want %v", blue, wantBlue)
	}
}

func TestLoadRejectsWrongEndpointCount(t *testing.T) {
	_, err := Load(strings.NewReader("R.R\n...\nR..\n"))
	if !errors.Is(err, common.ErrMalformedEndpoints) {
		t.Errorf("Load() error = %v, want wrapping ErrMalformedEndpoints", err)
	}
}

func TestLoadRejectsInvalidCharacter(t *testing.T) {
	_, err := Load(strings.NewReader("R.9\n...\nR..\n"))
	if err == nil {
		t.Error("Load should reject a character outside the colour table")
	}
}

func TestLoadFileReadsFixture(t *testing.T) {
	g, err := LoadFile("../../testdata/solvable_4x4.txt")
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}
	if g.Width != 4 || g.Height != 4 {
		t.Fatalf("got %dx%d grid, want 4x4", g.Width, g.Height)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("../../testdata/does-not-exist.txt"); err == nil {
		t.Error("LoadFile should fail for a missing file")
	}
}

func TestRenderShowsEndpointsAsCapitalO(t *testing.T) {
	g, err := Load(strings.NewReader("R.R\n"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := Render(g, true); got != "O.O\n" {
		t.Errorf("Render = %q, want %q", got, "O.O\n")
	}
}

func TestRenderShowsPathCellsAsLowerO(t *testing.T) {
	g, err := Load(strings.NewReader("R.R\n"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if err := g.Set(geometry.Point{X: 1, Y: 0}, grid.PathCell(grid.Red)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if got := Render(g, true); got != "OoO\n" {
		t.Errorf("Render = %q, want %q", got, "OoO\n")
	}
}

func TestRenderAsciiVsUnicodeEmpty(t *testing.T) {
	g, err := Load(strings.NewReader("R.R\n"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := Render(g, true); got != "O.O\n" {
		t.Errorf("ascii Render = %q, want %q", got, "O.O\n")
	}
	if got := Render(g, false); got != "O·O\n" {
		t.Errorf("unicode Render = %q, want %q", got, "O·O\n")
	}
}
