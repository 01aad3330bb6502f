// Package display renders a grid.Grid to a terminal interactively via
// github.com/gdamore/tcell/v2 (cmd/view). Static text rendering is
// loader.Render, not part of this package.
package display

import (
	"github.com/gdamore/tcell/v2"

	"github.com/flowpaths/flowpaths/pkg/grid"
)

// tcellColours maps a puzzle colour to a concrete terminal colour. Not every
// puzzle colour has a visually distinct tcell.Color counterpart, but all
// sixteen are assigned one, so the viewer never falls back to a default.
var tcellColours = [...]tcell.Color{
	grid.Red:     tcell.ColorRed,
	grid.Green:   tcell.ColorGreen,
	grid.Blue:    tcell.ColorBlue,
	grid.Yellow:  tcell.ColorYellow,
	grid.Magenta: tcell.ColorFuchsia,
	grid.Orange:  tcell.ColorOrange,
	grid.Cyan:    tcell.ColorAqua,
	grid.Brown:   tcell.ColorSaddleBrown,
	grid.Purple:  tcell.ColorPurple,
	grid.White:   tcell.ColorWhite,
	grid.Gray:    tcell.ColorGray,
	grid.Lime:    tcell.ColorLime,
	grid.Beige:   tcell.ColorBeige,
	grid.Navy:    tcell.ColorNavy,
	grid.Teal:    tcell.ColorTeal,
	grid.Pink:    tcell.ColorPink,
}

// TcellColour returns the terminal colour assigned to c.
func TcellColour(c grid.Colour) tcell.Color {
	return tcellColours[c]
}
