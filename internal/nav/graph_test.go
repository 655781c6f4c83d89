package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greyfall/tacnav/internal/grid"
)

func line(coords ...grid.Coord) []grid.Coord { return coords }

func TestPortalGraphConnect(t *testing.T) {
	g := newPortalGraph()
	a := grid.Coord{X: 0, Y: 0}
	b := grid.Coord{X: 0, Y: 2}

	g.connect(a, b, line(a, grid.Coord{X: 0, Y: 1}, b))

	forward, ok := g.edge(a, b)
	require.True(t, ok)
	assert.Equal(t, 2, forward.cost, "tile path length minus one")
	assert.Equal(t, a, forward.tiles[0])
	assert.Equal(t, b, forward.tiles[len(forward.tiles)-1])

	back, ok := g.edge(b, a)
	require.True(t, ok)
	assert.Equal(t, forward.cost, back.cost, "edges are symmetric")
	assert.Equal(t, b, back.tiles[0])
	assert.Equal(t, a, back.tiles[len(back.tiles)-1])

	assert.Equal(t, 2, g.edgeCount())
}

func TestPortalGraphKeepsCheaperEdge(t *testing.T) {
	g := newPortalGraph()
	a := grid.Coord{X: 0, Y: 0}
	b := grid.Coord{X: 2, Y: 0}

	g.connect(a, b, line(a, grid.Coord{X: 1, Y: 0}, b))
	g.connect(a, b, line(a, grid.Coord{X: 0, Y: 1}, grid.Coord{X: 1, Y: 1}, grid.Coord{X: 2, Y: 1}, b))

	e, ok := g.edge(a, b)
	require.True(t, ok)
	assert.Equal(t, 2, e.cost, "longer duplicate must not replace the edge")

	g.connect(b, a, line(b, a))
	e, ok = g.edge(a, b)
	require.True(t, ok)
	assert.Equal(t, 1, e.cost, "cheaper duplicate wins, both directions")
	back, _ := g.edge(b, a)
	assert.Equal(t, 1, back.cost)
}

func TestReverseCoords(t *testing.T) {
	tiles := line(grid.Coord{X: 0, Y: 0}, grid.Coord{X: 1, Y: 0}, grid.Coord{X: 2, Y: 0})
	rev := reverseCoords(tiles)

	assert.Equal(t, line(grid.Coord{X: 2, Y: 0}, grid.Coord{X: 1, Y: 0}, grid.Coord{X: 0, Y: 0}), rev)
	assert.Equal(t, grid.Coord{X: 0, Y: 0}, tiles[0], "input untouched")
}
