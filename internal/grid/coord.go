package grid

// Coord is a cell position on the tactical grid.
// X grows east, Y grows south; the origin is the north-west corner.
type Coord struct {
	X, Y int
}

// Manhattan returns the orthogonal step distance between two cells.
func Manhattan(a, b Coord) int {
	return absInt(a.X-b.X) + absInt(a.Y-b.Y)
}

// Neighbors4 returns the four cardinal neighbors of c in a fixed order
// (south, east, north, west). Fixed order keeps search tie-breaking
// deterministic. No bounds filtering is applied.
func Neighbors4(c Coord) [4]Coord {
	return [4]Coord{
		{c.X, c.Y + 1},
		{c.X + 1, c.Y},
		{c.X, c.Y - 1},
		{c.X - 1, c.Y},
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
