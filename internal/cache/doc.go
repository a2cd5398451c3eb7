// Package cache provides the bounded LRU cache behind preview
// memoization.
//
//	c := cache.New[uint64, glyph.Outline](512)
//	out, err := c.GetOrCreate(key, func() (glyph.Outline, error) {
//	    return glyph.Build(contour)
//	})
//
// Cache is safe for concurrent use and must not be copied after
// creation.
package cache
