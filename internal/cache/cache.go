package cache

import "sync"

// Cache is an LRU map holding at most limit entries. A limit of zero or
// less means unbounded. Cache is safe for concurrent use and must not be
// copied after first use.
type Cache[K comparable, V any] struct {
	mu    sync.Mutex
	limit int
	items map[K]*item[K, V]
	order lruList[K]
}

type item[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// New returns an empty cache bounded to limit entries.
func New[K comparable, V any](limit int) *Cache[K, V] {
	return &Cache[K, V]{
		limit: limit,
		items: make(map[K]*item[K, V]),
	}
}

// Get returns the value for key and marks it most recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(it.node)
	return it.value, true
}

// Set stores value under key, evicting the oldest entries if needed.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// GetOrCreate returns the cached value for key, calling create to fill a
// miss. create runs under the cache lock, so concurrent misses on one key
// create the value once.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if it, ok := c.items[key]; ok {
		c.order.MoveToFront(it.node)
		return it.value
	}
	v := create()
	c.set(key, v)
	return v
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Clear drops every entry.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.items)
	c.order.Clear()
}

// set stores value. Callers hold c.mu.
func (c *Cache[K, V]) set(key K, value V) {
	if it, ok := c.items[key]; ok {
		it.value = value
		c.order.MoveToFront(it.node)
		return
	}
	c.items[key] = &item[K, V]{value: value, node: c.order.PushFront(key)}
	for c.limit > 0 && len(c.items) > c.limit {
		old, ok := c.order.RemoveOldest()
		if !ok {
			break
		}
		delete(c.items, old)
	}
}
