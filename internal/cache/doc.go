// Package cache provides a bounded, thread-safe least-recently-used map.
//
//	outlines := cache.New[glyphKey, []font.Segment](4096)
//	segs := outlines.GetOrCreate(key, func() []font.Segment { return load(key) })
//
// When an insertion takes the cache past its limit, the least recently
// used entries are dropped.
package cache
