package nav

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/greyfall/tacnav/internal/grid"
)

// reachKey identifies one precomputed reachable set.
type reachKey struct {
	anchor   grid.Coord
	distance int
}

// reachTable is the lookup table of precomputed reachable sets. Safe for
// concurrent readers and insert-only writers.
type reachTable struct {
	mu   sync.RWMutex
	sets map[reachKey]map[grid.Coord]struct{}
}

func newReachTable() *reachTable {
	return &reachTable{sets: make(map[reachKey]map[grid.Coord]struct{})}
}

func (t *reachTable) get(anchor grid.Coord, distance int) (map[grid.Coord]struct{}, bool) {
	t.mu.RLock()
	set, ok := t.sets[reachKey{anchor, distance}]
	t.mu.RUnlock()
	return set, ok
}

func (t *reachTable) put(anchor grid.Coord, distance int, set map[grid.Coord]struct{}) {
	key := reachKey{anchor, distance}
	t.mu.Lock()
	if _, ok := t.sets[key]; !ok {
		t.sets[key] = set
	}
	t.mu.Unlock()
}

func (t *reachTable) len() int {
	t.mu.RLock()
	n := len(t.sets)
	t.mu.RUnlock()
	return n
}

func (t *reachTable) clear() {
	t.mu.Lock()
	t.sets = make(map[reachKey]map[grid.Coord]struct{})
	t.mu.Unlock()
}

// bfsReachable returns every cell reachable from anchor within distance
// cardinal steps, anchor included. A blocked or out-of-bounds anchor
// yields an empty set.
func bfsReachable(walls *grid.WallMatrix, anchor grid.Coord, distance int) map[grid.Coord]struct{} {
	reachable := make(map[grid.Coord]struct{})
	if distance < 0 || !walls.Walkable(anchor) {
		return reachable
	}

	type frontier struct {
		pos  grid.Coord
		dist int
	}
	queue := []frontier{{anchor, 0}}
	reachable[anchor] = struct{}{}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.dist >= distance {
			continue
		}
		for _, next := range grid.Neighbors4(cur.pos) {
			if !walls.Walkable(next) {
				continue
			}
			if _, seen := reachable[next]; seen {
				continue
			}
			reachable[next] = struct{}{}
			queue = append(queue, frontier{next, cur.dist + 1})
		}
	}
	return reachable
}

// reachResult pairs one finished task with its key so workers never
// touch the shared table.
type reachResult struct {
	key reachKey
	set map[grid.Coord]struct{}
}

// computeReachableSets runs one BFS per (anchor, distance) pair on a
// bounded worker pool and merges the results into the table after the
// pool drains. Each task reads only the immutable wall grid, so workers
// share no mutable state.
func computeReachableSets(walls *grid.WallMatrix, anchors []grid.Coord, distances []int, workers int, table *reachTable) {
	tasks := make([]reachKey, 0, len(anchors)*len(distances))
	for _, d := range distances {
		for _, a := range anchors {
			tasks = append(tasks, reachKey{anchor: a, distance: d})
		}
	}

	results := make([]reachResult, len(tasks))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, task := range tasks {
		i, task := i, task
		g.Go(func() error {
			results[i] = reachResult{
				key: task,
				set: bfsReachable(walls, task.anchor, task.distance),
			}
			return nil
		})
	}
	// Tasks are pure CPU work and never fail.
	_ = g.Wait()

	for _, r := range results {
		table.put(r.key.anchor, r.key.distance, r.set)
	}
}
