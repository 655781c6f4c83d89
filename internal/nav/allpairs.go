package nav

import (
	"math"

	"github.com/greyfall/tacnav/internal/grid"
)

const infCost = math.MaxInt / 2

// precomputeAllPairs runs Floyd–Warshall over every registered portal
// and stores, for each reachable ordered pair, the chain of portal
// waypoints (not the expanded tile path) in the route table.
//
// The initial matrix takes direct costs from the portal graph; pairs
// with no graph edge are seeded by one unconstrained search between
// them, which patches connectivity across tree levels. Pairs that stay
// unreachable get no cache entry.
func precomputeAllPairs(walls *grid.WallMatrix, reg *portalRegistry, g *portalGraph, routes *PathCache) {
	n := reg.count()
	if n == 0 {
		return
	}

	dist := make([][]int, n)
	next := make([][]int, n)
	for i := 0; i < n; i++ {
		dist[i] = make([]int, n)
		next[i] = make([]int, n)
		for j := 0; j < n; j++ {
			dist[i][j] = infCost
			next[i][j] = -1
		}
		dist[i][i] = 0
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := reg.coords[i], reg.coords[j]
			cost := infCost
			if e, ok := g.edge(a, b); ok {
				cost = e.cost
			} else if tiles := astar(walls, a, b, nil, nil); tiles != nil {
				cost = len(tiles) - 1
			}
			if cost < infCost {
				dist[i][j], dist[j][i] = cost, cost
				next[i][j], next[j][i] = j, i
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if dist[i][k] == infCost {
				continue
			}
			for j := 0; j < n; j++ {
				if through := dist[i][k] + dist[k][j]; through < dist[i][j] {
					dist[i][j] = through
					next[i][j] = next[i][k]
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || next[i][j] == -1 {
				continue
			}
			chain := make([]grid.Coord, 0, 4)
			chain = append(chain, reg.coords[i])
			for at := i; at != j; {
				at = next[at][j]
				chain = append(chain, reg.coords[at])
			}
			routes.Put(reg.coords[i], reg.coords[j], chain)
		}
	}
}
