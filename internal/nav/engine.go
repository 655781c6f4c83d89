package nav

import (
	"log/slog"
	"runtime"
	"time"

	"github.com/greyfall/tacnav/internal/config"
	"github.com/greyfall/tacnav/internal/grid"
)

// Engine answers point-to-point path and area-reachability queries over
// a static occupancy grid. The static structure (region tree, portal
// graph, all-pairs routes) is built once by PrecomputePaths; after that
// the engine is safe for concurrent queries. Walls are assumed stable
// once precomputed — if the underlying map changes, rebuild.
//
// Per-cell movement cost is a deliberate simplification: only the flat
// fallback search consults Map.Cost, the hierarchical tier assumes one
// cost per step.
type Engine struct {
	walls    *grid.WallMatrix
	entities map[string]grid.Coord
	cost     grid.CostFunc

	minLeafSize   int
	workers       int
	moveDistances []int
	entityRadius  int
	sampleStride  int

	arena     *regionArena
	graph     *portalGraph
	portals   *portalRegistry
	paths     *PathCache // tile paths served to callers
	routes    *PathCache // portal waypoint chains, internal only
	reachable *reachTable

	precomputed bool
}

// NewEngine builds an engine over m using cfg tuning. The grid structure
// is not built yet; call PrecomputePaths before querying.
func NewEngine(m *grid.Map, cfg config.Nav) *Engine {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	minLeaf := cfg.MinLeafSize
	if minLeaf < 1 {
		minLeaf = 1
	}
	entities := make(map[string]grid.Coord, len(m.Entities))
	for id, pos := range m.Entities {
		entities[id] = pos
	}
	return &Engine{
		walls:         grid.NewWallMatrix(m.Width, m.Height, m.Walls),
		entities:      entities,
		cost:          m.Cost,
		minLeafSize:   minLeaf,
		workers:       workers,
		moveDistances: cfg.MoveDistances,
		entityRadius:  cfg.EntityRadius,
		sampleStride:  cfg.SampleStride,
		paths:         NewPathCache(),
		routes:        NewPathCache(),
		reachable:     newReachTable(),
	}
}

// PrecomputePaths runs the full build phase: region decomposition,
// portal detection, portal-graph construction and the all-pairs portal
// routes. Idempotent but expensive; intended to run once after the grid
// is finalized. Calling it again discards both caches and rebuilds the
// structure from scratch.
func (e *Engine) PrecomputePaths() {
	start := time.Now()

	e.paths.Clear()
	e.routes.Clear()
	e.reachable.clear()

	e.portals = newPortalRegistry()
	e.graph = newPortalGraph()
	e.arena = buildRegions(e.walls, e.minLeafSize, e.portals, e.graph)

	precomputeAllPairs(e.walls, e.portals, e.graph, e.routes)
	e.precomputed = true

	slog.Info("navigation structure built",
		"regions", len(e.arena.regions),
		"leaves", e.arena.leafCount(),
		"portals", e.portals.count(),
		"edges", e.graph.edgeCount(),
		"routes", e.routes.Len(),
		"elapsed", time.Since(start))
}

// PrecomputeReachableTiles runs the parallel batch phase: one bounded
// BFS per (anchor, distance) pair, dispatched to a fixed-size worker
// pool. Anchors are every tracked entity position, the walkable cells
// around each entity, and a coarse sampling grid for general coverage.
// Blocks until the pool drains. With no distances given the configured
// defaults apply.
func (e *Engine) PrecomputeReachableTiles(distances ...int) {
	if len(distances) == 0 {
		distances = e.moveDistances
	}
	start := time.Now()

	anchors := e.collectAnchors()
	computeReachableSets(e.walls, anchors, distances, e.workers, e.reachable)

	slog.Info("reachable tiles precomputed",
		"anchors", len(anchors),
		"distances", distances,
		"sets", e.reachable.len(),
		"workers", e.workers,
		"elapsed", time.Since(start))
}

// GetReachableTiles returns every cell reachable from anchor within
// distance cardinal steps, anchor included. On a table miss the set is
// computed on demand and memoized, so a walkable anchor never yields a
// silently empty answer. The returned set is shared; callers must not
// modify it.
func (e *Engine) GetReachableTiles(anchor grid.Coord, distance int) map[grid.Coord]struct{} {
	if set, ok := e.reachable.get(anchor, distance); ok {
		return set
	}
	set := bfsReachable(e.walls, anchor, distance)
	e.reachable.put(anchor, distance, set)
	return set
}

// collectAnchors gathers the curated anchor positions for the reachable
// batch: entity anchors, their walkable surroundings and the coverage
// sampling grid. Duplicates are removed, detection order is kept.
func (e *Engine) collectAnchors() []grid.Coord {
	var anchors []grid.Coord
	seen := make(map[grid.Coord]struct{})
	add := func(c grid.Coord) {
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		anchors = append(anchors, c)
	}

	for _, pos := range e.entities {
		if e.walls.Walkable(pos) {
			add(pos)
		}
		for dx := -e.entityRadius; dx <= e.entityRadius; dx++ {
			for dy := -e.entityRadius; dy <= e.entityRadius; dy++ {
				c := grid.Coord{X: pos.X + dx, Y: pos.Y + dy}
				if e.walls.Walkable(c) {
					add(c)
				}
			}
		}
	}

	if e.sampleStride > 0 {
		for x := 0; x < e.walls.Width(); x += e.sampleStride {
			for y := 0; y < e.walls.Height(); y += e.sampleStride {
				c := grid.Coord{X: x, Y: y}
				if e.walls.Walkable(c) {
					add(c)
				}
			}
		}
	}

	return anchors
}

// PathCacheLen returns the number of memoized path entries.
func (e *Engine) PathCacheLen() int {
	return e.paths.Len()
}
