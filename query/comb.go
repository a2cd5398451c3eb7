package query

import (
	"errors"
	"fmt"

	"github.com/gogpu/glyph"
	"github.com/gogpu/glyph/geom"
)

// ErrEndpoint is returned when simplifying the first or last point of an
// open contour.
var ErrEndpoint = errors.New("query: cannot simplify an open contour's endpoint")

// CombSample is one tooth of a curvature comb.
type CombSample struct {
	Segment int
	T       float64
	Point   geom.Point
	// Normal is the unit left normal.
	Normal    geom.Vec2
	Curvature float64
}

// Curvature samples the curvature of every segment of c at samples evenly
// spaced parameters, ends included. Straight segments have zero curvature.
func Curvature(c *glyph.Contour, samples int) []CombSample {
	samples = max(samples, 2)
	out := make([]CombSample, 0, c.SegmentCount()*samples)
	for i := 0; i < c.SegmentCount(); i++ {
		seg, _ := c.Segment(i)
		straight := seg.IsLine()
		for k := range samples {
			t := float64(k) / float64(samples-1)
			s := CombSample{
				Segment: i,
				T:       t,
				Point:   seg.Eval(t),
				Normal:  seg.Direction(t).Perp(),
			}
			if !straight {
				s.Curvature = seg.Curvature(t)
			}
			out = append(out, s)
		}
	}
	return out
}

// SimplifyPoint removes point idx and refits the two segments around it
// as one. The new handles keep the outer tangent directions and are
// lengthened by the ratio of the combined arc length to each side's.
// Quad contours and straight runs just lose the point.
func SimplifyPoint(c *glyph.Contour, idx int) error {
	n := c.Len()
	if idx < 0 || idx >= n {
		return fmt.Errorf("query: simplify point: %w: %d of %d", glyph.ErrIndexOutOfRange, idx, n)
	}
	if c.IsOpen() && (idx == 0 || idx == n-1) {
		return ErrEndpoint
	}
	if n < 3 {
		return c.RemovePoint(idx)
	}

	pi, ni := (idx+n-1)%n, (idx+1)%n
	prev, _ := c.Point(pi)
	cur, _ := c.Point(idx)
	next, _ := c.Point(ni)
	if c.Kind == glyph.Quad || !prev.A.Set && !cur.B.Set && !cur.A.Set && !next.B.Set {
		return c.RemovePoint(idx)
	}

	left, _ := c.Segment(pi)
	right, _ := c.Segment(idx)
	l1, l2 := left.Arclen(1e-6), right.Arclen(1e-6)
	total := l1 + l2

	h0 := total / 3
	if l1 > 0 && left.P1 != left.P0 {
		h0 = left.P1.Distance(left.P0) * total / l1
	}
	h1 := total / 3
	if l2 > 0 && right.P2 != right.P3 {
		h1 = right.P3.Distance(right.P2) * total / l2
	}
	prev.A = glyph.HandleAt(prev.Pos().Add(left.Direction(0).Mul(h0)))
	next.B = glyph.HandleAt(next.Pos().Add(right.Direction(1).Mul(-h1)))
	if next.Type != glyph.Move {
		next.Type = glyph.Curve
	}

	if err := c.RemovePoint(idx); err != nil {
		return err
	}
	if pi > idx {
		pi--
	}
	if ni > idx {
		ni--
	}
	if err := c.SetPoint(pi, prev); err != nil {
		return err
	}
	return c.SetPoint(ni, next)
}
