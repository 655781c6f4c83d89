package nav

import (
	"github.com/greyfall/tacnav/internal/grid"
)

// ResolvePath returns a tile path from start to end inclusive, or nil
// when no path exists. No partial results are ever returned.
//
// Resolution order: memoized answer, trivial same-cell query, bounded
// search inside a shared leaf region, cross-region portal stitching, and
// finally one unconstrained search over the full map. Non-empty results
// are memoized under the (start, end) key, so repeated queries return
// identical paths without touching the static structure again.
func (e *Engine) ResolvePath(start, end grid.Coord) []grid.Coord {
	if !e.precomputed {
		panic("nav: ResolvePath called before PrecomputePaths")
	}
	if path, ok := e.paths.Get(start, end); ok {
		return path
	}
	if start == end {
		if !e.walls.Walkable(start) {
			return nil
		}
		return []grid.Coord{start}
	}
	if !e.walls.Walkable(start) || !e.walls.Walkable(end) {
		return nil
	}

	startLeaf := e.arena.leafAt(start)
	endLeaf := e.arena.leafAt(end)

	if startLeaf == endLeaf {
		bounds := e.arena.regions[startLeaf].bounds
		if path := astar(e.walls, start, end, &bounds, nil); path != nil {
			e.paths.Put(start, end, path)
			return path
		}
		// The pair may still connect through neighboring regions.
		return e.fallback(start, end)
	}

	if path := e.stitchAcrossRegions(start, end, startLeaf, endLeaf); path != nil {
		e.paths.Put(start, end, path)
		return path
	}
	return e.fallback(start, end)
}

// stitchAcrossRegions assembles a cross-region path: start to its entry
// portal, the precomputed portal waypoint chain, then exit portal to
// end. Returns nil when any piece is missing; the caller falls back to
// the flat search.
func (e *Engine) stitchAcrossRegions(start, end grid.Coord, startLeaf, endLeaf int) []grid.Coord {
	lca := e.arena.lowestCommonAncestor(startLeaf, endLeaf)
	if lca == noRegion {
		return nil
	}
	lcaBounds := e.arena.regions[lca].bounds

	startCands := e.arena.candidatePortals(startLeaf, lca)
	endCands := e.arena.candidatePortals(endLeaf, lca)
	if len(startCands) == 0 || len(endCands) == 0 {
		return nil
	}

	entry, entryPath, ok := e.nearestPortal(start, startCands, lcaBounds)
	if !ok {
		return nil
	}
	exit, exitPath, ok := e.nearestPortal(end, endCands, lcaBounds)
	if !ok {
		return nil
	}

	chain := []grid.Coord{entry}
	if entry != exit {
		cached, ok := e.routes.Get(entry, exit)
		if !ok {
			return nil
		}
		chain = cached
	}

	path := append([]grid.Coord(nil), entryPath...)
	for i := 0; i+1 < len(chain); i++ {
		seg := e.portalSegment(chain[i], chain[i+1])
		if seg == nil {
			return nil
		}
		path = append(path, seg[1:]...)
	}

	// exitPath runs end→exit; reversed it continues the stitched path.
	back := reverseCoords(exitPath)
	path = append(path, back[1:]...)

	// Portal detours can overshoot on open terrain. When the stitched
	// path misses the Manhattan lower bound, refine with one bounded
	// search over the common ancestor and keep the shorter of the two.
	if len(path) > grid.Manhattan(start, end)+1 {
		if refined := astar(e.walls, start, end, &lcaBounds, nil); refined != nil && len(refined) < len(path) {
			path = refined
		}
	}
	return path
}

// nearestPortal picks the candidate minimizing the bounded-search path
// length from the given cell. Equal lengths keep the earlier candidate
// in the given order, which candidatePortals builds leaf upward. Returns
// the portal, the tile path from the cell to it, and whether any
// candidate was reachable.
func (e *Engine) nearestPortal(from grid.Coord, candidates []grid.Coord, bounds grid.Rect) (grid.Coord, []grid.Coord, bool) {
	var (
		best      grid.Coord
		bestPath  []grid.Coord
		bestFound bool
	)
	for _, p := range candidates {
		tiles := astar(e.walls, from, p, &bounds, nil)
		if tiles == nil {
			continue
		}
		if !bestFound || len(tiles) < len(bestPath) {
			best, bestPath, bestFound = p, tiles, true
		}
	}
	return best, bestPath, bestFound
}

// portalSegment expands one waypoint hop into tiles, constrained to the
// bounds of the waypoints' nearest common ancestor (unconstrained when
// none is found).
func (e *Engine) portalSegment(a, b grid.Coord) []grid.Coord {
	lca := e.arena.lowestCommonAncestor(e.arena.leafAt(a), e.arena.leafAt(b))
	if lca == noRegion {
		return astar(e.walls, a, b, nil, nil)
	}
	bounds := e.arena.regions[lca].bounds
	return astar(e.walls, a, b, &bounds, nil)
}

// fallback is the last-resort unconstrained search over the full map.
// It is the only tier that consults the per-cell cost function.
func (e *Engine) fallback(start, end grid.Coord) []grid.Coord {
	path := astar(e.walls, start, end, nil, e.cost)
	if path != nil {
		e.paths.Put(start, end, path)
	}
	return path
}
