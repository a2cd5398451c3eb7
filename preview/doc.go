// Package preview turns an edited glyph into the outlines a canvas draws.
//
// A Rebuilder expands every contour operation (variable width stroke,
// dash, pattern along path) and folds the boolean layer operations into
// their groups. Built contours are memoized by a hash of the base points
// and the operation parameters, so dragging one point rebuilds only the
// contour it belongs to.
//
//	r := preview.New(preview.WithCacheSize(1024))
//	r.MarkDirty()
//	res, err := r.Rebuild(g)
//	if err != nil {
//		// Some contours were skipped; res still holds the rest.
//	}
//	for _, l := range res.Layers {
//		draw(l.Outline)
//	}
//
// Rebuild is safe for concurrent use.
package preview
