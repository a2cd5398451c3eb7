package fontimport

import (
	"github.com/gogpu/glyph"
	"github.com/gogpu/glyph/geom"
)

type segOp int

const (
	opLine segOp = iota
	opQuad
	opCubic
)

type segment struct {
	op  segOp
	pts [3]geom.Point
}

// outlineBuilder turns a font's path commands into closed contours.
type outlineBuilder struct {
	scale float64
	out   glyph.Outline

	start geom.Point
	segs  []segment
	open  bool
}

func (b *outlineBuilder) pt(x, y float64) geom.Point {
	return geom.Pt(x*b.scale, y*b.scale)
}

func (b *outlineBuilder) moveTo(p geom.Point) {
	b.flush()
	b.start, b.open = p, true
}

func (b *outlineBuilder) lineTo(p geom.Point) {
	b.segs = append(b.segs, segment{op: opLine, pts: [3]geom.Point{p}})
}

func (b *outlineBuilder) quadTo(c, p geom.Point) {
	b.segs = append(b.segs, segment{op: opQuad, pts: [3]geom.Point{c, p}})
}

func (b *outlineBuilder) cubeTo(c1, c2, p geom.Point) {
	b.segs = append(b.segs, segment{op: opCubic, pts: [3]geom.Point{c1, c2, p}})
}

// flush closes the current contour. A final segment ending on the start
// point is folded into the first point.
func (b *outlineBuilder) flush() {
	if !b.open {
		return
	}
	segs := b.segs
	b.segs, b.open = b.segs[:0], false
	if len(segs) == 0 {
		return
	}

	kind := glyph.Quad
	for _, s := range segs {
		if s.op == opCubic {
			kind = glyph.Cubic
			break
		}
	}

	pts := []glyph.Point{pointAt(b.start, glyph.Line)}
	prev := b.start
	for _, s := range segs {
		last := &pts[len(pts)-1]
		switch s.op {
		case opLine:
			pts = append(pts, pointAt(s.pts[0], glyph.Line))
			prev = s.pts[0]
		case opQuad:
			if kind == glyph.Quad {
				last.A = glyph.HandleAt(s.pts[0])
				pts = append(pts, pointAt(s.pts[1], glyph.QCurve))
				prev = s.pts[1]
				continue
			}
			c := geom.QuadBez{P0: prev, P1: s.pts[0], P2: s.pts[1]}.Raise()
			last.A = glyph.HandleAt(c.P1)
			np := pointAt(c.P3, glyph.Curve)
			np.B = glyph.HandleAt(c.P2)
			pts = append(pts, np)
			prev = c.P3
		case opCubic:
			last.A = glyph.HandleAt(s.pts[0])
			np := pointAt(s.pts[2], glyph.Curve)
			np.B = glyph.HandleAt(s.pts[1])
			pts = append(pts, np)
			prev = s.pts[2]
		}
	}

	if n := len(pts); n > 1 && pts[n-1].Pos() == pts[0].Pos() {
		pts[0].B, pts[0].Type = pts[n-1].B, pts[n-1].Type
		pts = pts[:n-1]
	}
	b.out = append(b.out, glyph.NewContour(kind, pts))
}

func (b *outlineBuilder) outline() glyph.Outline {
	b.flush()
	return b.out
}

func pointAt(p geom.Point, typ glyph.PointType) glyph.Point {
	return glyph.NewPoint(float32(p.X), float32(p.Y), typ)
}
