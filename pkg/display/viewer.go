package display

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/flowpaths/flowpaths/pkg/geometry"
	"github.com/flowpaths/flowpaths/pkg/grid"
)

// Viewer drives a tcell screen showing a solver's progress one step at a
// time: every call to Step blocks until the user presses a key, advancing on
// space/n and quitting on q/Esc/Ctrl-C. It is the Observer a solver is
// handed from cmd/view, so a search that would otherwise run to completion
// instantly becomes an inspectable, steppable trace.
type Viewer struct {
	screen tcell.Screen
}

// NewViewer initializes a tcell screen for interactive viewing.
func NewViewer() (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("display: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	return &Viewer{screen: screen}, nil
}

// Close tears down the screen. Callers must defer this after NewViewer
// succeeds, or the terminal is left in raw mode.
func (v *Viewer) Close() {
	v.screen.Fini()
}

// Step renders g with a status line and blocks for a keypress. It satisfies
// solver.Observer's signature, so it can be passed directly as the obs
// argument to Backtrack, AStar, or SAT.
func (v *Viewer) Step(g *grid.Grid, step int, message string) bool {
	v.draw(g, step, message)
	for {
		ev := v.screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventKey:
			switch {
			case e.Key() == tcell.KeyCtrlC, e.Key() == tcell.KeyEscape:
				return false
			case e.Rune() == 'q':
				return false
			case e.Rune() == ' ', e.Rune() == 'n':
				return true
			}
		case *tcell.EventResize:
			v.screen.Sync()
			v.draw(g, step, message)
		}
	}
}

func (v *Viewer) draw(g *grid.Grid, step int, message string) {
	v.screen.Clear()
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cell := g.Get(geometry.Point{X: x, Y: y})
			v.drawCell(x, y, cell)
		}
	}
	status := fmt.Sprintf("step %d: %s  (space/n: next, q: quit)", step, message)
	for i, r := range status {
		v.screen.SetContent(i, g.Height+1, r, nil, tcell.StyleDefault)
	}
	v.screen.Show()
}

func (v *Viewer) drawCell(x, y int, cell grid.Cell) {
	if cell.IsEmpty() {
		v.screen.SetContent(x*2, y, '.', nil, tcell.StyleDefault)
		return
	}
	style := tcell.StyleDefault.Foreground(TcellColour(cell.Colour)).Bold(cell.IsEndpoint())
	glyph := '*'
	if cell.IsEndpoint() {
		glyph = cell.Colour.Char()
	}
	v.screen.SetContent(x*2, y, glyph, nil, style)
}
