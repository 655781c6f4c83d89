package nav

import (
	"sync"

	"github.com/greyfall/tacnav/internal/grid"
)

// pathKey is an ordered (start, end) coordinate pair.
type pathKey struct {
	start, end grid.Coord
}

// PathCache memoizes coordinate sequences keyed by their endpoints. The
// engine keeps two instances: one for fully expanded tile paths served
// to callers, one for portal-to-portal waypoint chains, so a chain can
// never leak out of a query. Entries are insert-only for the lifetime of
// an engine build; Clear discards everything when the engine rebuilds.
//
// The cache is safe for concurrent readers and lazy writers. Returned
// slices are shared and must not be modified by callers.
type PathCache struct {
	mu    sync.RWMutex
	paths map[pathKey][]grid.Coord
}

// NewPathCache returns an empty cache.
func NewPathCache() *PathCache {
	return &PathCache{paths: make(map[pathKey][]grid.Coord)}
}

// Get returns the cached sequence for (start, end), if present.
func (c *PathCache) Get(start, end grid.Coord) ([]grid.Coord, bool) {
	c.mu.RLock()
	path, ok := c.paths[pathKey{start, end}]
	c.mu.RUnlock()
	return path, ok
}

// Put stores a sequence under (start, end). An existing entry is kept:
// the first resolved answer for a key stays authoritative.
func (c *PathCache) Put(start, end grid.Coord, path []grid.Coord) {
	key := pathKey{start, end}
	c.mu.Lock()
	if _, ok := c.paths[key]; !ok {
		c.paths[key] = path
	}
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *PathCache) Len() int {
	c.mu.RLock()
	n := len(c.paths)
	c.mu.RUnlock()
	return n
}

// Clear drops every entry. Called when the engine rebuilds its static
// structure; cached paths would be stale against a changed wall set.
func (c *PathCache) Clear() {
	c.mu.Lock()
	c.paths = make(map[pathKey][]grid.Coord)
	c.mu.Unlock()
}
