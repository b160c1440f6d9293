package presscost

import (
	"sync"

	"github.com/katalvlaran/keypadchain/keypad"
)

// cacheKey identifies one memoized cost. The keypad pointer keeps numeric
// and directional entries for the same symbols apart.
type cacheKey struct {
	pad      *keypad.Keypad
	from, to keypad.Symbol
	depth    int
}

// Cache memoizes press counts. The zero value is not usable; call NewCache.
// Entries are never invalidated.
type Cache struct {
	mu sync.RWMutex
	m  map[cacheKey]uint64
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{m: make(map[cacheKey]uint64, 256)}
}

// Load returns the cached cost for a -> b on pad at depth, if any.
func (c *Cache) Load(pad *keypad.Keypad, a, b keypad.Symbol, depth int) (uint64, bool) {
	c.mu.RLock()
	v, ok := c.m[cacheKey{pad, a, b, depth}]
	c.mu.RUnlock()
	return v, ok
}

// LoadOrStore stores v unless an entry already exists, and returns the
// value held by the cache afterwards.
func (c *Cache) LoadOrStore(pad *keypad.Keypad, a, b keypad.Symbol, depth int, v uint64) uint64 {
	k := cacheKey{pad, a, b, depth}
	c.mu.Lock()
	defer c.mu.Unlock()
	if old, ok := c.m[k]; ok {
		return old
	}
	c.m[k] = v
	return v
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Reset drops every entry.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.m = make(map[cacheKey]uint64, 256)
	c.mu.Unlock()
}
