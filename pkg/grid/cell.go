package grid

// Kind distinguishes the three states a cell can be in.
type Kind uint8

const (
	// KindEmpty is an uncommitted cell.
	KindEmpty Kind = iota
	// KindEndpoint is a terminal of a colour pair.
	KindEndpoint
	// KindPath is an intermediate cell carrying a path of a colour.
	KindPath
)

// Cell is a tagged value: Empty, Endpoint(colour), or Path(colour).
// Colour is meaningless when Kind is KindEmpty.
type Cell struct {
	Kind   Kind
	Colour Colour
}

// EmptyCell returns an Empty cell.
func EmptyCell() Cell { return Cell{Kind: KindEmpty} }

// EndpointCell returns an Endpoint cell of the given colour.
func EndpointCell(c Colour) Cell { return Cell{Kind: KindEndpoint, Colour: c} }

// PathCell returns a Path cell of the given colour.
func PathCell(c Colour) Cell { return Cell{Kind: KindPath, Colour: c} }

// IsEmpty reports whether the cell is Empty.
func (c Cell) IsEmpty() bool { return c.Kind == KindEmpty }

// IsEndpoint reports whether the cell is an Endpoint.
func (c Cell) IsEndpoint() bool { return c.Kind == KindEndpoint }

// HasColour reports whether the cell carries the given colour, i.e. it is a
// Path or Endpoint of that colour.
func (c Cell) HasColour(colour Colour) bool {
	return c.Kind != KindEmpty && c.Colour == colour
}

// String renders the cell the way the puzzle file format would: '.' for
// empty, the colour's uppercase/lowercase character otherwise. Endpoint and
// Path are distinguished only by the caller (see loader.Render), since the
// wire format does not mark them differently.
func (c Cell) String() string {
	if c.Kind == KindEmpty {
		return "."
	}
	return string(c.Colour.Char())
}
