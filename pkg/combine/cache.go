package combine

import (
	"strconv"
	"sync"

	"github.com/aretw0/staged/pkg/domain"
)

// Cache memoizes combinations for a single processing run.
// It is safe for concurrent use. Never share a Cache between unrelated runs.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*domain.TypeRef
	names   map[string]string // synthesized name -> key that owns it
	created []*domain.TypeRef
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]*domain.TypeRef),
		names:   make(map[string]string),
	}
}

func (c *Cache) get(key string) (*domain.TypeRef, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.entries[key]
	return t, ok
}

// put stores t under key unless another goroutine won the race, in which case the
// earlier value is returned so callers always observe one canonical pointer.
func (c *Cache) put(key string, t *domain.TypeRef, synthesized bool) *domain.TypeRef {
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[key]; ok {
		return existing
	}
	if synthesized {
		t.Name = c.claimName(t.Package, t.Name, key)
		c.created = append(c.created, t)
	}
	c.entries[key] = t
	return t
}

// claimName reserves name for key, appending a counter before the interface suffix
// when a structurally different combination already owns it.
func (c *Cache) claimName(pkg, name, key string) string {
	candidate := name
	for n := 2; ; n++ {
		fqn := pkg + "." + candidate
		owner, taken := c.names[fqn]
		if !taken || owner == key {
			c.names[fqn] = key
			return candidate
		}
		candidate = domain.ToInterfaceName(domain.StripSuffix(name) + strconv.Itoa(n))
	}
}

// Combined returns the synthesized union types in creation order.
func (c *Cache) Combined() []*domain.TypeRef {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*domain.TypeRef, len(c.created))
	copy(out, c.created)
	return out
}

// Len returns the number of memoized keys.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Reset drops every memoized combination.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*domain.TypeRef)
	c.names = make(map[string]string)
	c.created = nil
}
