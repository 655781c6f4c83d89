package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greyfall/tacnav/internal/grid"
)

func TestAstarOpenGridIsOptimal(t *testing.T) {
	walls := grid.NewWallMatrix(10, 10, nil)

	path := astar(walls, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 7, Y: 4}, nil, nil)
	require.NotNil(t, path)
	assert.Len(t, path, 12, "Manhattan distance 11 plus the start tile")
	assert.Equal(t, grid.Coord{X: 0, Y: 0}, path[0])
	assert.Equal(t, grid.Coord{X: 7, Y: 4}, path[len(path)-1])
}

func TestAstarSameCell(t *testing.T) {
	walls := grid.NewWallMatrix(5, 5, nil)

	path := astar(walls, grid.Coord{X: 2, Y: 2}, grid.Coord{X: 2, Y: 2}, nil, nil)
	assert.Equal(t, []grid.Coord{{X: 2, Y: 2}}, path)
}

func TestAstarBlockedEndpoints(t *testing.T) {
	walls := grid.NewWallMatrix(5, 5, []grid.Coord{{X: 0, Y: 0}, {X: 4, Y: 4}})

	assert.Nil(t, astar(walls, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 2, Y: 2}, nil, nil))
	assert.Nil(t, astar(walls, grid.Coord{X: 2, Y: 2}, grid.Coord{X: 4, Y: 4}, nil, nil))
}

func TestAstarWalksAroundWalls(t *testing.T) {
	// Vertical wall at x=2 with a gap at y=4.
	walls := grid.NewWallMatrix(5, 5, wallCol(2, 0, 3))

	path := astar(walls, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 0}, nil, nil)
	require.NotNil(t, path)
	assert.Contains(t, path, grid.Coord{X: 2, Y: 4}, "only opening in the wall")
	for _, c := range path {
		assert.False(t, walls.IsWall(c.X, c.Y))
	}
}

func TestAstarFullBarrierHasNoPath(t *testing.T) {
	walls := grid.NewWallMatrix(5, 5, wallRow(2, 0, 4))

	assert.Nil(t, astar(walls, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 0, Y: 4}, nil, nil))
}

func TestAstarRespectsBounds(t *testing.T) {
	walls := grid.NewWallMatrix(10, 10, nil)
	bounds := grid.Rect{X: 0, Y: 0, W: 5, H: 5}

	assert.Nil(t, astar(walls, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 7, Y: 7}, &bounds, nil),
		"end outside the search box")

	path := astar(walls, grid.Coord{X: 0, Y: 0}, grid.Coord{X: 4, Y: 4}, &bounds, nil)
	require.NotNil(t, path)
	for _, c := range path {
		assert.True(t, bounds.Contains(c))
	}
}

func TestAstarConsultsCostFunc(t *testing.T) {
	walls := grid.NewWallMatrix(3, 3, nil)
	costly := func(x, y int) int {
		if x == 1 && y == 1 {
			return 10
		}
		return 1
	}

	path := astar(walls, grid.Coord{X: 0, Y: 1}, grid.Coord{X: 2, Y: 1}, nil, costly)
	require.NotNil(t, path)
	assert.NotContains(t, path, grid.Coord{X: 1, Y: 1}, "expensive cell should be bypassed")
	assert.Len(t, path, 5)
}

func TestPathHeapOrdering(t *testing.T) {
	h := &pathHeap{}
	n1 := &pathNode{pos: grid.Coord{X: 1, Y: 0}, fCost: 10}
	n2 := &pathNode{pos: grid.Coord{X: 2, Y: 0}, fCost: 5}
	n3 := &pathNode{pos: grid.Coord{X: 3, Y: 0}, fCost: 15}

	h.Push(n1)
	h.Push(n2)
	h.Push(n3)
	assert.Equal(t, 3, h.Len())

	assert.True(t, h.Less(1, 0), "n2 has the lowest fCost")
}
