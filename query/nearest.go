package query

import (
	"fmt"
	"math"

	"github.com/gogpu/glyph"
	"github.com/gogpu/glyph/geom"
)

// Nearest describes the closest point on an outline to a position.
type Nearest struct {
	Contour int
	Segment int
	// T is the parameter along the segment.
	T     float64
	Point geom.Point
	// A and B are the outgoing and incoming handles a point inserted at
	// Point takes so that the curve keeps its shape.
	A, B     geom.Point
	Distance float64
}

// NearestPoint finds the point on o closest to pos, if it is within
// NearestTolerance screen units.
func NearestPoint(o glyph.Outline, pos geom.Point, opts ...Option) (Nearest, bool) {
	op := newOptions(opts)
	limit := op.scaled(NearestTolerance)
	best := Nearest{Distance: math.Inf(1)}
	found := false
	for ci, c := range o {
		for si := 0; si < c.SegmentCount(); si++ {
			s, _ := spanAt(c, si)
			d2, t := s.pathSegment().Nearest(pos.CurvePoint(), op.accuracy)
			d := math.Sqrt(d2)
			if d > limit || d >= best.Distance {
				continue
			}
			best = Nearest{Contour: ci, Segment: si, T: t, Point: s.eval(t), Distance: d}
			best.B, best.A = s.handlesAt(t)
			found = true
		}
	}
	return best, found
}

// InsertPoint subdivides segment n.Segment of c at n.T without changing
// the curve's shape. The contour's operation gains a parameter for the
// new point. It returns the new point's index, or -1 when n.T falls on an
// existing point.
func InsertPoint(c *glyph.Contour, n Nearest) (int, error) {
	if n.Segment < 0 || n.Segment >= c.SegmentCount() {
		return -1, fmt.Errorf("query: insert point: %w: segment %d of %d",
			glyph.ErrIndexOutOfRange, n.Segment, c.SegmentCount())
	}
	if splitSegment(c, n.Segment, cleanParams([]float64{n.T})) == 0 {
		return -1, nil
	}
	return n.Segment + 1, nil
}
