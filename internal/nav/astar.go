package nav

import (
	"container/heap"

	"github.com/greyfall/tacnav/internal/grid"
)

// pathNode is a node in the A* search graph.
type pathNode struct {
	pos    grid.Coord
	parent *pathNode
	gCost  int // actual cost from start
	fCost  int // gCost + Manhattan heuristic
	index  int // heap index
}

// astar runs a 4-directional A* search with Manhattan heuristic from
// start to end. When bounds is non-nil the search never leaves that
// rectangle. When cost is non-nil it supplies the per-cell step cost;
// otherwise every step costs 1. Returns the tile path from start to end
// inclusive, or nil if no path exists.
//
// Open-set membership is tracked alongside the heap so a cell is never
// enqueued twice with a stale node; the closed set is checked after pop.
func astar(walls *grid.WallMatrix, start, end grid.Coord, bounds *grid.Rect, cost grid.CostFunc) []grid.Coord {
	if !walls.Walkable(start) || !walls.Walkable(end) {
		return nil
	}
	if bounds != nil && (!bounds.Contains(start) || !bounds.Contains(end)) {
		return nil
	}
	if start == end {
		return []grid.Coord{start}
	}

	first := &pathNode{pos: start, fCost: grid.Manhattan(start, end)}
	open := &pathHeap{}
	heap.Init(open)
	heap.Push(open, first)

	inOpen := map[grid.Coord]*pathNode{start: first}
	closed := make(map[grid.Coord]struct{}, 64)

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)
		delete(inOpen, current.pos)

		if current.pos == end {
			return reconstruct(current)
		}

		if _, done := closed[current.pos]; done {
			continue
		}
		closed[current.pos] = struct{}{}

		for _, next := range grid.Neighbors4(current.pos) {
			if bounds != nil && !bounds.Contains(next) {
				continue
			}
			if !walls.Walkable(next) {
				continue
			}
			if _, done := closed[next]; done {
				continue
			}

			step := 1
			if cost != nil {
				step = cost(next.X, next.Y)
			}
			gCost := current.gCost + step

			if existing, ok := inOpen[next]; ok {
				if gCost >= existing.gCost {
					continue
				}
				existing.parent = current
				existing.gCost = gCost
				existing.fCost = gCost + grid.Manhattan(next, end)
				heap.Fix(open, existing.index)
				continue
			}

			node := &pathNode{
				pos:    next,
				parent: current,
				gCost:  gCost,
				fCost:  gCost + grid.Manhattan(next, end),
			}
			inOpen[next] = node
			heap.Push(open, node)
		}
	}

	return nil
}

// reconstruct walks the parent chain back to the start and reverses it.
func reconstruct(goal *pathNode) []grid.Coord {
	path := make([]grid.Coord, 0, goal.gCost+1)
	for n := goal; n != nil; n = n.parent {
		path = append(path, n.pos)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// pathHeap implements container/heap for the A* open list (min-heap by fCost).
type pathHeap []*pathNode

func (h pathHeap) Len() int           { return len(h) }
func (h pathHeap) Less(i, j int) bool { return h[i].fCost < h[j].fCost }
func (h pathHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *pathHeap) Push(x any)        { n := x.(*pathNode); n.index = len(*h); *h = append(*h, n) }
func (h *pathHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil // GC
	node.index = -1
	*h = old[:n-1]
	return node
}
