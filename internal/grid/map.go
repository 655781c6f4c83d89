package grid

// CostFunc returns the per-cell movement cost of entering (x, y).
// Implementations must return at least 1. Only the flat fallback search
// consults it; the hierarchical tier assumes uniform step cost.
type CostFunc func(x, y int) int

// Map is the engine's input surface: grid dimensions, static walls and
// tracked entity anchor positions. Everything else about the world
// (occupancy, combat, vision) belongs to the collaborators that own it.
type Map struct {
	Width, Height int
	Walls         []Coord
	Entities      map[string]Coord

	// Cost is optional. When nil every step costs 1.
	Cost CostFunc
}

// WalkableCells returns every in-bounds non-wall cell, column by column.
func (m *Map) WalkableCells() []Coord {
	walls := NewWallMatrix(m.Width, m.Height, m.Walls)
	cells := make([]Coord, 0, m.Width*m.Height-len(m.Walls))
	for x := 0; x < m.Width; x++ {
		for y := 0; y < m.Height; y++ {
			if !walls.IsWall(x, y) {
				cells = append(cells, Coord{X: x, Y: y})
			}
		}
	}
	return cells
}
