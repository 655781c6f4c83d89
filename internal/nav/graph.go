package nav

import (
	"github.com/greyfall/tacnav/internal/grid"
)

// portalEdge is one weighted connection between two portals: the step
// cost and the concrete tile path that realizes it.
type portalEdge struct {
	cost  int
	tiles []grid.Coord
}

// portalGraph is the weighted graph over portal nodes. Edges are
// symmetric; on duplicate inserts the cheaper edge wins.
type portalGraph struct {
	edges map[grid.Coord]map[grid.Coord]portalEdge
}

func newPortalGraph() *portalGraph {
	return &portalGraph{edges: make(map[grid.Coord]map[grid.Coord]portalEdge)}
}

// connect adds a bidirectional edge between a and b realized by tiles
// (a..b inclusive). Edge weight is the tile-path length minus one. A
// cheaper existing edge is kept.
func (g *portalGraph) connect(a, b grid.Coord, tiles []grid.Coord) {
	cost := len(tiles) - 1
	if existing, ok := g.edge(a, b); ok && existing.cost <= cost {
		return
	}
	g.insert(a, b, portalEdge{cost: cost, tiles: tiles})
	g.insert(b, a, portalEdge{cost: cost, tiles: reverseCoords(tiles)})
}

func (g *portalGraph) insert(from, to grid.Coord, e portalEdge) {
	m, ok := g.edges[from]
	if !ok {
		m = make(map[grid.Coord]portalEdge)
		g.edges[from] = m
	}
	m[to] = e
}

// edge returns the edge from a to b, if connected.
func (g *portalGraph) edge(a, b grid.Coord) (portalEdge, bool) {
	e, ok := g.edges[a][b]
	return e, ok
}

// edgeCount returns the number of directed edges (build diagnostics).
func (g *portalGraph) edgeCount() int {
	count := 0
	for _, m := range g.edges {
		count += len(m)
	}
	return count
}

func reverseCoords(tiles []grid.Coord) []grid.Coord {
	out := make([]grid.Coord, len(tiles))
	for i, t := range tiles {
		out[len(tiles)-1-i] = t
	}
	return out
}
