package nav

import (
	"github.com/greyfall/tacnav/internal/grid"
)

// Quadrant indices within region.children.
const (
	quadNW = iota
	quadNE
	quadSW
	quadSE
)

const noRegion = -1

// region is one node of the quadtree decomposition. Regions live in a
// flat arena and refer to each other by index, so parent and leaf
// lookups are O(1) instead of scans.
type region struct {
	bounds   grid.Rect
	parent   int
	children [4]int
	leaf     bool

	// portals detected on the borders between this region's children.
	// Leaves own no portals.
	portals []grid.Coord
}

// regionArena holds the full decomposition of one map: the region nodes
// in build (pre-)order plus a dense cell→leaf index.
type regionArena struct {
	regions  []region
	cellLeaf [][]int // column-major: cellLeaf[x][y] → leaf region index
	root     int
}

// buildRegions decomposes the map into a quadtree down to minLeafSize
// and detects portals along every sibling border. Portal coordinates are
// registered in reg (in detection order) and intra-region edges are
// added to g as the tree is merged upward.
func buildRegions(walls *grid.WallMatrix, minLeafSize int, reg *portalRegistry, g *portalGraph) *regionArena {
	a := &regionArena{
		cellLeaf: make([][]int, walls.Width()),
	}
	for x := range a.cellLeaf {
		a.cellLeaf[x] = make([]int, walls.Height())
	}
	a.root = a.build(walls.Bounds(), noRegion, walls, minLeafSize, reg, g)
	return a
}

// build recursively decomposes bounds and returns the arena index of the
// created region.
func (a *regionArena) build(bounds grid.Rect, parent int, walls *grid.WallMatrix, minLeafSize int, reg *portalRegistry, g *portalGraph) int {
	idx := len(a.regions)
	a.regions = append(a.regions, region{
		bounds:   bounds,
		parent:   parent,
		children: [4]int{noRegion, noRegion, noRegion, noRegion},
	})

	if bounds.W <= minLeafSize || bounds.H <= minLeafSize {
		a.regions[idx].leaf = true
		for x := bounds.X; x < bounds.X+bounds.W; x++ {
			for y := bounds.Y; y < bounds.Y+bounds.H; y++ {
				a.cellLeaf[x][y] = idx
			}
		}
		return idx
	}

	quads := bounds.Split4()
	var children [4]int
	for q, qb := range quads {
		children[q] = a.build(qb, idx, walls, minLeafSize, reg, g)
	}
	a.regions[idx].children = children

	// Sibling borders: NW–NE and SW–SE are vertical, NW–SW and NE–SE
	// are horizontal.
	var portals []grid.Coord
	portals = appendPortals(portals, detectPortals(walls, quads[quadNW], quads[quadNE], borderVertical))
	portals = appendPortals(portals, detectPortals(walls, quads[quadSW], quads[quadSE], borderVertical))
	portals = appendPortals(portals, detectPortals(walls, quads[quadNW], quads[quadSW], borderHorizontal))
	portals = appendPortals(portals, detectPortals(walls, quads[quadNE], quads[quadSE], borderHorizontal))
	a.regions[idx].portals = portals

	for _, p := range portals {
		reg.register(p)
	}

	// Connect every portal pair of this region through its own bounds.
	for i := 0; i < len(portals); i++ {
		for j := i + 1; j < len(portals); j++ {
			tiles := astar(walls, portals[i], portals[j], &a.regions[idx].bounds, nil)
			if tiles != nil {
				g.connect(portals[i], portals[j], tiles)
			}
		}
	}

	return idx
}

// appendPortals unions detected portals into the region's set, skipping
// duplicates (a border-corner cell can surface from two pairings).
func appendPortals(dst, src []grid.Coord) []grid.Coord {
	for _, p := range src {
		dup := false
		for _, have := range dst {
			if have == p {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, p)
		}
	}
	return dst
}

// leafAt returns the leaf region index owning cell c.
func (a *regionArena) leafAt(c grid.Coord) int {
	return a.cellLeaf[c.X][c.Y]
}

// lowestCommonAncestor returns the deepest region containing both r1 and
// r2 on its subtree, walking the parent indices of the arena.
func (a *regionArena) lowestCommonAncestor(r1, r2 int) int {
	seen := make(map[int]struct{}, 8)
	for r := r1; r != noRegion; r = a.regions[r].parent {
		seen[r] = struct{}{}
	}
	for r := r2; r != noRegion; r = a.regions[r].parent {
		if _, ok := seen[r]; ok {
			return r
		}
	}
	return noRegion
}

// candidatePortals collects the portals of every region on the parent
// chain from leaf up to and including ancestor. Leaves own no portals,
// so for a leaf that is a direct child of the ancestor this is exactly
// the ancestor's portal set.
func (a *regionArena) candidatePortals(leaf, ancestor int) []grid.Coord {
	var portals []grid.Coord
	for r := leaf; r != noRegion; r = a.regions[r].parent {
		portals = appendPortals(portals, a.regions[r].portals)
		if r == ancestor {
			break
		}
	}
	return portals
}

// leafCount returns the number of leaf regions (build diagnostics).
func (a *regionArena) leafCount() int {
	count := 0
	for i := range a.regions {
		if a.regions[i].leaf {
			count++
		}
	}
	return count
}
