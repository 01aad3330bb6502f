package geometry

// Perimeter returns the border cells of a width x height grid walked in a
// fixed cyclic order starting at (0,0): rightward along the top edge,
// downward along the right edge, leftward along the bottom edge, and upward
// along the left edge back toward (0,0). When every cell of the grid is
// already on the border (Width == 1 or Height == 1) there is no cycle to
// walk, so the simple top-to-bottom or left-to-right ordering is returned
// instead.
func Perimeter(width, height int) []Point {
	if width <= 0 || height <= 0 {
		return nil
	}
	if width == 1 {
		pts := make([]Point, height)
		for y := 0; y < height; y++ {
			pts[y] = Point{0, y}
		}
		return pts
	}
	if height == 1 {
		pts := make([]Point, width)
		for x := 0; x < width; x++ {
			pts[x] = Point{x, 0}
		}
		return pts
	}

	pts := make([]Point, 0, 2*(width+height-2))
	for x := 0; x < width; x++ { // top edge, left to right
		pts = append(pts, Point{x, 0})
	}
	for y := 1; y < height; y++ { // right edge, top to bottom
		pts = append(pts, Point{width - 1, y})
	}
	for x := width - 2; x >= 0; x-- { // bottom edge, right to left
		pts = append(pts, Point{x, height - 1})
	}
	for y := height - 2; y > 0; y-- { // left edge, bottom to top
		pts = append(pts, Point{0, y})
	}
	return pts
}

// BorderArcs returns the route(s) along the grid's perimeter strictly
// between start and end (exclusive of both endpoints), in walking order from
// start to end. For a rectangle with Width >= 2 and Height >= 2 the border is
// a cycle, so two arcs exist (clockwise and counter-clockwise) and both are
// returned. For a degenerate single-row or single-column grid the border is
// a simple path, so exactly one arc is returned.
//
// BorderArcs returns (nil, false) if start or end is not on the border.
func BorderArcs(width, height int, start, end Point) ([][]Point, bool) {
	if !start.OnBorder(width, height) || !end.OnBorder(width, height) {
		return nil, false
	}
	perim := Perimeter(width, height)
	n := len(perim)
	startIdx, endIdx := -1, -1
	for i, p := range perim {
		if p == start {
			startIdx = i
		}
		if p == end {
			endIdx = i
		}
	}
	if startIdx == -1 || endIdx == -1 {
		return nil, false
	}

	degenerate := width == 1 || height == 1
	if degenerate {
		lo, hi := startIdx, endIdx
		reverse := lo > hi
		if reverse {
			lo, hi = hi, lo
		}
		arc := append([]Point(nil), perim[lo+1:hi]...)
		if reverse {
			reversePoints(arc)
		}
		return [][]Point{arc}, true
	}

	forward := make([]Point, 0, n)
	for i := (startIdx + 1) % n; i != endIdx; i = (i + 1) % n {
		forward = append(forward, perim[i])
	}
	backward := make([]Point, 0, n)
	for i := (startIdx - 1 + n) % n; i != endIdx; i = (i - 1 + n) % n {
		backward = append(backward, perim[i])
	}
	return [][]Point{forward, backward}, true
}

func reversePoints(pts []Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}
