package grid

// Rect is an axis-aligned rectangle of cells: origin (X, Y), size W×H.
// A Rect covers cells [X, X+W) × [Y, Y+H).
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether c lies inside the rectangle.
func (r Rect) Contains(c Coord) bool {
	return c.X >= r.X && c.X < r.X+r.W && c.Y >= r.Y && c.Y < r.Y+r.H
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Split4 bisects the rectangle into four quadrants: NW, NE, SW, SE.
// Width and height are halved with the floor going to the west/north
// quadrants, so the quadrants partition r exactly.
func (r Rect) Split4() [4]Rect {
	hw := r.W / 2
	hh := r.H / 2
	return [4]Rect{
		{r.X, r.Y, hw, hh},                     // NW
		{r.X + hw, r.Y, r.W - hw, hh},          // NE
		{r.X, r.Y + hh, hw, r.H - hh},          // SW
		{r.X + hw, r.Y + hh, r.W - hw, r.H - hh}, // SE
	}
}
