package query

import (
	"github.com/gogpu/glyph"
	"github.com/gogpu/glyph/geom"
)

// Hit identifies a point or one of its handles.
type Hit struct {
	Contour int
	Point   int
	Handle  glyph.WhichHandle
}

// HitTest returns the first point or handle whose drawn box contains pos.
// On-curve points are tested before their handles.
func HitTest(o glyph.Outline, pos geom.Point, opts ...Option) (Hit, bool) {
	op := newOptions(opts)
	size := op.scaled(2*PointRadius + 2*PointStroke)
	for ci, c := range o {
		for pi, p := range c.Points() {
			if op.masked && op.mask == (PointRef{Contour: ci, Point: pi}) {
				continue
			}
			if geom.RectAround(p.Pos(), size).Contains(pos) {
				return Hit{Contour: ci, Point: pi, Handle: glyph.Neither}, true
			}
			if p.A.Set && geom.RectAround(p.APos(), size).Contains(pos) {
				return Hit{Contour: ci, Point: pi, Handle: glyph.HandleA}, true
			}
			if p.B.Set && geom.RectAround(p.BPos(), size).Contains(pos) {
				return Hit{Contour: ci, Point: pi, Handle: glyph.HandleB}, true
			}
		}
	}
	return Hit{}, false
}

// BoxSelect returns every point and set handle inside r.
func BoxSelect(o glyph.Outline, r geom.Rect) []Hit {
	r = geom.NewRect(r.Min, r.Max)
	var out []Hit
	for ci, c := range o {
		for pi, p := range c.Points() {
			if r.Contains(p.Pos()) {
				out = append(out, Hit{Contour: ci, Point: pi, Handle: glyph.Neither})
			}
			if p.A.Set && r.Contains(p.APos()) {
				out = append(out, Hit{Contour: ci, Point: pi, Handle: glyph.HandleA})
			}
			if p.B.Set && r.Contains(p.BPos()) {
				out = append(out, Hit{Contour: ci, Point: pi, Handle: glyph.HandleB})
			}
		}
	}
	return out
}
