package grid

// WallMatrix is a dense boolean occupancy grid built once from a wall
// coordinate set. Lookups are O(1). Out-of-bounds coordinates passed to
// IsWall are the caller's responsibility and panic on access.
type WallMatrix struct {
	width, height int
	cells         [][]bool // column-major: cells[x][y]
}

// NewWallMatrix builds the matrix for a width×height grid. Wall
// coordinates outside the grid are ignored.
func NewWallMatrix(width, height int, walls []Coord) *WallMatrix {
	m := &WallMatrix{
		width:  width,
		height: height,
		cells:  make([][]bool, width),
	}
	for x := range m.cells {
		m.cells[x] = make([]bool, height)
	}
	for _, w := range walls {
		if w.X >= 0 && w.X < width && w.Y >= 0 && w.Y < height {
			m.cells[w.X][w.Y] = true
		}
	}
	return m
}

// Width returns the grid width in cells.
func (m *WallMatrix) Width() int { return m.width }

// Height returns the grid height in cells.
func (m *WallMatrix) Height() int { return m.height }

// IsWall reports whether the cell at (x, y) is a wall.
func (m *WallMatrix) IsWall(x, y int) bool {
	return m.cells[x][y]
}

// InBounds reports whether (x, y) lies inside the grid.
func (m *WallMatrix) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Walkable reports whether c is inside the grid and not a wall.
func (m *WallMatrix) Walkable(c Coord) bool {
	return m.InBounds(c.X, c.Y) && !m.cells[c.X][c.Y]
}

// Bounds returns the full-grid rectangle.
func (m *WallMatrix) Bounds() Rect {
	return Rect{X: 0, Y: 0, W: m.width, H: m.height}
}
