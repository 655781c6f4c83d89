package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greyfall/tacnav/internal/grid"
)

// fakeTiles builds a tile slice of the given length between two anchors;
// only the length matters to edge weighting.
func fakeTiles(a, b grid.Coord, length int) []grid.Coord {
	tiles := make([]grid.Coord, length)
	tiles[0] = a
	tiles[length-1] = b
	return tiles
}

func TestAllPairsDirectEdges(t *testing.T) {
	walls := grid.NewWallMatrix(10, 10, nil)
	reg := newPortalRegistry()
	g := newPortalGraph()
	cache := NewPathCache()

	a := grid.Coord{X: 1, Y: 1}
	b := grid.Coord{X: 8, Y: 1}
	reg.register(a)
	reg.register(b)
	g.connect(a, b, fakeTiles(a, b, 8))

	precomputeAllPairs(walls, reg, g, cache)

	chain, ok := cache.Get(a, b)
	require.True(t, ok)
	assert.Equal(t, []grid.Coord{a, b}, chain)

	back, ok := cache.Get(b, a)
	require.True(t, ok)
	assert.Equal(t, []grid.Coord{b, a}, back)
}

func TestAllPairsRelaxesThroughIntermediate(t *testing.T) {
	walls := grid.NewWallMatrix(12, 12, nil)
	reg := newPortalRegistry()
	g := newPortalGraph()
	cache := NewPathCache()

	a := grid.Coord{X: 0, Y: 0}
	mid := grid.Coord{X: 5, Y: 5}
	b := grid.Coord{X: 11, Y: 11}
	reg.register(a)
	reg.register(mid)
	reg.register(b)

	// The direct connection is a long detour; routing through mid wins.
	g.connect(a, b, fakeTiles(a, b, 40))
	g.connect(a, mid, fakeTiles(a, mid, 11))
	g.connect(mid, b, fakeTiles(mid, b, 13))

	precomputeAllPairs(walls, reg, g, cache)

	chain, ok := cache.Get(a, b)
	require.True(t, ok)
	assert.Equal(t, []grid.Coord{a, mid, b}, chain)
}

func TestAllPairsSeedsUnconnectedPairsGlobally(t *testing.T) {
	walls := grid.NewWallMatrix(10, 10, nil)
	reg := newPortalRegistry()
	g := newPortalGraph()
	cache := NewPathCache()

	// No graph edges at all: connectivity comes from the fallback
	// searches during matrix seeding.
	a := grid.Coord{X: 0, Y: 0}
	b := grid.Coord{X: 9, Y: 9}
	reg.register(a)
	reg.register(b)

	precomputeAllPairs(walls, reg, g, cache)

	chain, ok := cache.Get(a, b)
	require.True(t, ok)
	assert.Equal(t, []grid.Coord{a, b}, chain)
}

func TestAllPairsOmitsUnreachablePairs(t *testing.T) {
	walls := grid.NewWallMatrix(10, 10, wallRow(5, 0, 9))
	reg := newPortalRegistry()
	g := newPortalGraph()
	cache := NewPathCache()

	north := grid.Coord{X: 2, Y: 2}
	south := grid.Coord{X: 2, Y: 8}
	reg.register(north)
	reg.register(south)

	precomputeAllPairs(walls, reg, g, cache)

	_, ok := cache.Get(north, south)
	assert.False(t, ok, "separated portals get no entry")
	_, ok = cache.Get(south, north)
	assert.False(t, ok)
}

func TestAllPairsEmptyRegistry(t *testing.T) {
	walls := grid.NewWallMatrix(5, 5, nil)
	cache := NewPathCache()

	precomputeAllPairs(walls, newPortalRegistry(), newPortalGraph(), cache)
	assert.Equal(t, 0, cache.Len())
}
