// Package loader reads the puzzle text format: one line per row, '.' for an
// empty cell, a colour character (see grid.ColourFromChar) for an endpoint.
// Interior Path cells never appear in a loaded file; they only exist once a
// solver has run. It also renders grids as text diagrams (Render), which are
// not in the puzzle format.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/flowpaths/flowpaths/pkg/common"
	"github.com/flowpaths/flowpaths/pkg/geometry"
	"github.com/flowpaths/flowpaths/pkg/grid"
)

// Load reads a puzzle from r: width is the longest line's length, height is
// the line count, and every alphabetic character seeds an endpoint pair for
// its colour. Returns ErrMalformedEndpoints if any colour ends up with other
// than exactly two occurrences.
func Load(r io.Reader) (*grid.Grid, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	height := len(lines)

	found := make(map[grid.Colour][]geometry.Point)
	for y, line := range lines {
		for x, ch := range line {
			if ch == '.' || ch == ' ' {
				continue
			}
			colour, err := grid.ColourFromChar(ch)
			if err != nil {
				return nil, fmt.Errorf("loader: line %d col %d: %w", y+1, x+1, err)
			}
			found[colour] = append(found[colour], geometry.Point{X: x, Y: y})
		}
	}

	endpoints := make(grid.Endpoints, len(found))
	for colour, pts := range found {
		if len(pts) != 2 {
			return nil, fmt.Errorf("loader: %w: colour %s has %d occurrences, want 2", common.ErrMalformedEndpoints, colour, len(pts))
		}
		endpoints[colour] = [2]geometry.Point{pts[0], pts[1]}
	}

	return grid.New(width, height, endpoints), nil
}

// LoadFile opens path and loads it, closing the file before returning.
func LoadFile(path string) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Render writes g out as a text diagram, not the puzzle format Load reads
// back: '.' (or '·' with asciiOnly false) for empty, 'O' for an endpoint,
// 'o' for a path cell. Colour is deliberately not encoded by character here
// — this renderer is for eyeballing shape and progress, not round-tripping
// through Load; callers that need colour (the viewer, bench traces) read it
// separately off the cell.
func Render(g *grid.Grid, asciiOnly bool) string {
	var b strings.Builder
	empty := '.'
	if !asciiOnly {
		empty = '·' // middle dot
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cell := g.Get(geometry.Point{X: x, Y: y})
			switch {
			case cell.IsEmpty():
				b.WriteRune(empty)
			case cell.IsEndpoint():
				b.WriteByte('O')
			default:
				b.WriteByte('o')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
