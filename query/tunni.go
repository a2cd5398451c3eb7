package query

import (
	"math"

	"github.com/gogpu/glyph"
	"github.com/gogpu/glyph/geom"
)

// TunniPoint returns the Tunni point of the segment from a to b, built
// from a's outgoing handle and b's incoming one. Moving it scales both
// handles together. It reports false when either handle is colocated or
// the handle lines are parallel.
func TunniPoint(a, b glyph.Point) (geom.Point, bool) {
	if !a.A.Set || !b.B.Set {
		return geom.Point{}, false
	}
	f, s := a.Pos(), b.Pos()
	ha, hb := a.APos(), b.BPos()
	ra := geom.Line{P0: f, P1: ha}
	t, _, ok := ra.RayIntersect(geom.Line{P0: s, P1: hb})
	if !ok {
		return geom.Point{}, false
	}
	x := ra.Eval(t)
	v := ha.Vec2().Mul(2).Sub(f.Vec2()).
		Add(hb.Vec2().Mul(2)).Sub(s.Vec2()).
		Sub(x.Vec2())
	return v.ToPoint(), true
}

// TunniLine joins the two handles of a segment.
type TunniLine struct {
	A, B  geom.Point
	Point geom.Point
}

// Tunni returns the Tunni line of the segment from a to b. Both handles
// must lie on the same side of the chord.
func Tunni(a, b glyph.Point) (TunniLine, bool) {
	tp, ok := TunniPoint(a, b)
	if !ok {
		return TunniLine{}, false
	}
	chord := b.Pos().Sub(a.Pos())
	ca := a.APos().Sub(a.Pos()).Cross(chord)
	cb := b.BPos().Sub(b.Pos()).Cross(chord)
	if (ca >= 0) != (cb >= 0) {
		return TunniLine{}, false
	}
	return TunniLine{A: a.APos(), B: b.BPos(), Point: tp}, true
}

// Distance returns the distance from pos to the segment between the
// handles.
func (l TunniLine) Distance(pos geom.Point) float64 {
	d := l.B.Sub(l.A)
	if d.IsZero() {
		return pos.Distance(l.A)
	}
	t := math.Max(0, math.Min(1, pos.Sub(l.A).Dot(d)/d.LengthSq()))
	return pos.Distance(l.A.Lerp(l.B, t))
}

// TunniTarget says which part of a Tunni line the pointer is over.
type TunniTarget int

const (
	TunniOnPoint TunniTarget = iota
	TunniOnLine
)

// TunniHit is the Tunni line closest to the pointer.
type TunniHit struct {
	Contour int
	// First and Second are the indices of the segment's points.
	First, Second int
	Line          TunniLine
	Target        TunniTarget
	Distance      float64
}

// ClosestTunniLine returns the Tunni line or point of a cubic segment
// nearest to pos, if it is within TunniTolerance screen units.
func ClosestTunniLine(o glyph.Outline, pos geom.Point, opts ...Option) (TunniHit, bool) {
	op := newOptions(opts)
	best := TunniHit{Distance: math.Inf(1)}
	for ci, c := range o {
		if c.Kind == glyph.Quad {
			continue
		}
		n := c.Len()
		for i := 0; i < c.SegmentCount(); i++ {
			j := (i + 1) % n
			a, _ := c.Point(i)
			b, _ := c.Point(j)
			line, ok := Tunni(a, b)
			if !ok {
				continue
			}
			target, d := TunniOnPoint, pos.Distance(line.Point)
			if ld := line.Distance(pos); ld < d {
				target, d = TunniOnLine, ld
			}
			if d < best.Distance {
				best = TunniHit{Contour: ci, First: i, Second: j, Line: line, Target: target, Distance: d}
			}
		}
	}
	if best.Distance >= op.scaled(TunniTolerance) {
		return TunniHit{}, false
	}
	return best, true
}
