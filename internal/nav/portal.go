package nav

import (
	"github.com/greyfall/tacnav/internal/grid"
)

// borderKind selects which shared edge of two sibling regions to scan.
type borderKind int

const (
	// borderVertical: a sits west of b, the border runs north–south.
	borderVertical borderKind = iota
	// borderHorizontal: a sits north of b, the border runs east–west.
	borderHorizontal
)

// detectPortals walks the shared border between two adjacent regions and
// collapses every maximal run of cells that are walkable on both sides
// into a single portal at the run's floor midpoint. Isolated open cells
// (run length 1) yield a portal too. Regions with no shared border
// produce no portals.
//
// The portal coordinate is the scanned cell on a's side of the border;
// its counterpart across the border is walkable by construction.
func detectPortals(walls *grid.WallMatrix, a, b grid.Rect, kind borderKind) []grid.Coord {
	var portals []grid.Coord
	var segment []grid.Coord

	flush := func() {
		if len(segment) > 0 {
			portals = append(portals, segment[len(segment)/2])
			segment = segment[:0]
		}
	}

	switch kind {
	case borderVertical:
		borderX := a.X + a.W - 1
		if b.X != borderX+1 {
			return nil
		}
		yLo := max(a.Y, b.Y)
		yHi := min(a.Y+a.H, b.Y+b.H)
		for y := yLo; y < yHi; y++ {
			near := grid.Coord{X: borderX, Y: y}
			far := grid.Coord{X: borderX + 1, Y: y}
			if walls.Walkable(near) && walls.Walkable(far) {
				segment = append(segment, near)
			} else {
				flush()
			}
		}
	case borderHorizontal:
		borderY := a.Y + a.H - 1
		if b.Y != borderY+1 {
			return nil
		}
		xLo := max(a.X, b.X)
		xHi := min(a.X+a.W, b.X+b.W)
		for x := xLo; x < xHi; x++ {
			near := grid.Coord{X: x, Y: borderY}
			far := grid.Coord{X: x, Y: borderY + 1}
			if walls.Walkable(near) && walls.Walkable(far) {
				segment = append(segment, near)
			} else {
				flush()
			}
		}
	}
	flush()

	return portals
}

// portalRegistry assigns a stable arena index to every portal coordinate
// in detection order. The index order is the deterministic tie-break for
// equal-cost portal choices and the axis of the all-pairs matrices.
type portalRegistry struct {
	coords []grid.Coord
	index  map[grid.Coord]int
}

func newPortalRegistry() *portalRegistry {
	return &portalRegistry{index: make(map[grid.Coord]int)}
}

// register adds p if unseen and returns its index.
func (r *portalRegistry) register(p grid.Coord) int {
	if i, ok := r.index[p]; ok {
		return i
	}
	i := len(r.coords)
	r.coords = append(r.coords, p)
	r.index[p] = i
	return i
}

// lookup returns the index of p, or -1 if p is not a portal.
func (r *portalRegistry) lookup(p grid.Coord) int {
	if i, ok := r.index[p]; ok {
		return i
	}
	return -1
}

func (r *portalRegistry) count() int { return len(r.coords) }
