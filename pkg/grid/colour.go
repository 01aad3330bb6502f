package grid

import (
	"fmt"

	"github.com/flowpaths/flowpaths/pkg/common"
)

// Colour is one of at most sixteen distinguishable endpoint/path tags.
type Colour uint8

// The closed set of colours a puzzle may use.
const (
	Red Colour = iota
	Green
	Blue
	Yellow
	Magenta
	Orange
	Cyan
	Brown
	Purple
	White
	Gray
	Lime
	Beige
	Navy
	Teal
	Pink
	numColours
)

var colourNames = [numColours]string{
	Red:     "Red",
	Green:   "Green",
	Blue:    "Blue",
	Yellow:  "Yellow",
	Magenta: "Magenta",
	Orange:  "Orange",
	Cyan:    "Cyan",
	Brown:   "Brown",
	Purple:  "Purple",
	White:   "White",
	Gray:    "Gray",
	Lime:    "Lime",
	Beige:   "Beige",
	Navy:    "Navy",
	Teal:    "Teal",
	Pink:    "Pink",
}

// String returns the human-readable colour name.
func (c Colour) String() string {
	if int(c) >= len(colourNames) {
		return fmt.Sprintf("Colour(%d)", c)
	}
	return colourNames[c]
}

// charToColour mirrors the puzzle file format's character table: uppercase
// letters for most colours, a small set of lowercase letters for the rest.
var charToColour = map[rune]Colour{
	'R': Red,
	'B': Blue,
	'G': Green,
	'M': Magenta,
	'Y': Yellow,
	'O': Orange,
	'C': Cyan,
	'm': Brown,
	'P': Purple,
	'W': White,
	'g': Gray,
	'L': Lime,
	'b': Beige,
	'N': Navy,
	'T': Teal,
	'p': Pink,
}

var colourToChar = func() map[Colour]rune {
	out := make(map[Colour]rune, len(charToColour))
	for r, c := range charToColour {
		out[c] = r
	}
	return out
}()

// ColourFromChar maps a puzzle-file character to its colour. It returns
// ErrInvalidCharacter for any character outside the fixed table.
func ColourFromChar(r rune) (Colour, error) {
	c, ok := charToColour[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", common.ErrInvalidCharacter, r)
	}
	return c, nil
}

// Char returns the puzzle-file character for a colour.
func (c Colour) Char() rune {
	return colourToChar[c]
}
