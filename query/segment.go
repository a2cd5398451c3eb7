package query

import (
	"honnef.co/go/curve"

	"github.com/gogpu/glyph"
	"github.com/gogpu/glyph/geom"
)

type spanKind int

const (
	spanLine spanKind = iota
	spanQuad
	spanCubic
)

// span is one segment of a contour in its native form. Segments whose
// handles are both colocated are straight lines.
type span struct {
	kind  spanKind
	line  geom.Line
	quad  geom.QuadBez
	cubic geom.CubicBez
}

func spanAt(c *glyph.Contour, i int) (span, bool) {
	if i < 0 || i >= c.SegmentCount() {
		return span{}, false
	}
	p, _ := c.Point(i)
	q, _ := c.Point((i + 1) % c.Len())
	switch {
	case !p.A.Set && !q.B.Set:
		return span{kind: spanLine, line: geom.Line{P0: p.Pos(), P1: q.Pos()}}, true
	case c.Kind == glyph.Quad:
		qs, _ := c.QuadSegment(i)
		return span{kind: spanQuad, quad: qs}, true
	}
	cs, _ := c.Segment(i)
	return span{kind: spanCubic, cubic: cs}, true
}

func (s span) pathSegment() curve.PathSegment {
	switch s.kind {
	case spanLine:
		return curve.PathSegment{Kind: curve.LineKind, P0: s.line.P0.CurvePoint(), P1: s.line.P1.CurvePoint()}
	case spanQuad:
		return s.quad.Segment()
	}
	return s.cubic.Segment()
}

func (s span) eval(t float64) geom.Point {
	switch s.kind {
	case spanLine:
		return s.line.Eval(t)
	case spanQuad:
		return s.quad.Eval(t)
	}
	return s.cubic.Eval(t)
}

// handlesAt returns the incoming and outgoing handles of a point
// inserted at t.
func (s span) handlesAt(t float64) (in, out geom.Point) {
	switch s.kind {
	case spanLine:
		p := s.line.Eval(t)
		return p, p
	case spanQuad:
		l, r := s.quad.Raise().SplitAt(t)
		return l.P2, r.P1
	}
	l, r := s.cubic.SplitAt(t)
	return l.P2, r.P1
}

// handle returns a handle at h, or a colocated one when h sits on owner.
func handle(h, owner geom.Point) glyph.Handle {
	hh := glyph.HandleAt(h)
	if float64(hh.X) == float64(float32(owner.X)) && float64(hh.Y) == float64(float32(owner.Y)) {
		return glyph.Colocated()
	}
	return hh
}

func pointAt(p geom.Point, typ glyph.PointType) glyph.Point {
	return glyph.NewPoint(float32(p.X), float32(p.Y), typ)
}
