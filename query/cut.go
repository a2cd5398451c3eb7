package query

import (
	"cmp"
	"maps"
	"slices"

	"github.com/gogpu/glyph"
	"github.com/gogpu/glyph/geom"
)

// paramEpsilon is the distance from a segment end under which a split
// parameter is treated as the existing endpoint.
const paramEpsilon = 1e-6

// Intersection is a crossing between a cut line and an outline segment.
type Intersection struct {
	Contour int
	Segment int
	// T is the parameter along the segment, LineT along the cut line.
	T     float64
	LineT float64
	Point geom.Point
}

// IntersectLine returns every crossing of line with o, ordered along the
// line.
func IntersectLine(o glyph.Outline, line geom.Line) []Intersection {
	var out []Intersection
	cl := line.CurveLine()
	for ci, c := range o {
		for si := 0; si < c.SegmentCount(); si++ {
			s, _ := spanAt(c, si)
			hits, n := s.pathSegment().IntersectLine(cl)
			for _, h := range hits[:n] {
				out = append(out, Intersection{
					Contour: ci,
					Segment: si,
					T:       h.SegmentT,
					LineT:   h.LineT,
					Point:   s.eval(h.SegmentT),
				})
			}
		}
	}
	slices.SortStableFunc(out, func(a, b Intersection) int {
		return cmp.Compare(a.LineT, b.LineT)
	})
	return out
}

// SplitAtIntersections returns a copy of o with a point inserted at every
// intersection. Each segment is split once with all of its parameters.
func SplitAtIntersections(o glyph.Outline, ints []Intersection) glyph.Outline {
	bySegment := make(map[int]map[int][]float64)
	for _, in := range ints {
		if in.Contour < 0 || in.Contour >= len(o) {
			continue
		}
		if bySegment[in.Contour] == nil {
			bySegment[in.Contour] = make(map[int][]float64)
		}
		bySegment[in.Contour][in.Segment] = append(bySegment[in.Contour][in.Segment], in.T)
	}

	out := make(glyph.Outline, len(o))
	for ci, c := range o {
		out[ci] = c.Clone()
		segs := bySegment[ci]
		// Split from the last segment back so earlier indices stay valid.
		for _, si := range slices.Backward(slices.Sorted(maps.Keys(segs))) {
			splitSegment(out[ci], si, cleanParams(segs[si]))
		}
	}
	return out
}

// Cut splits o wherever line crosses it.
func Cut(o glyph.Outline, line geom.Line) glyph.Outline {
	return SplitAtIntersections(o, IntersectLine(o, line))
}

// cleanParams sorts ts and drops values at segment ends and repeats.
func cleanParams(ts []float64) []float64 {
	ts = slices.Clone(ts)
	slices.Sort(ts)
	out := ts[:0]
	for _, t := range ts {
		if t <= paramEpsilon || t >= 1-paramEpsilon {
			continue
		}
		if n := len(out); n > 0 && t-out[n-1] <= paramEpsilon {
			continue
		}
		out = append(out, t)
	}
	return out
}

// splitSegment inserts a point into segment i of c at each of the sorted
// parameters ts and returns the number of points inserted.
func splitSegment(c *glyph.Contour, i int, ts []float64) int {
	s, ok := spanAt(c, i)
	if !ok || len(ts) == 0 {
		return 0
	}
	j := (i + 1) % c.Len()
	p, _ := c.Point(i)
	q, _ := c.Point(j)

	var added []glyph.Point
	switch s.kind {
	case spanLine:
		for _, t := range ts {
			added = append(added, pointAt(s.line.Eval(t), glyph.Line))
		}
	case spanQuad:
		pieces := s.quad.SplitAtMany(ts)
		if !p.A.Set {
			q.B = glyph.Colocated()
		}
		p.A = glyph.HandleAt(pieces[0].P1)
		for _, piece := range pieces[1:] {
			np := pointAt(piece.P0, glyph.QCurve)
			np.A = glyph.HandleAt(piece.P1)
			added = append(added, np)
		}
	default:
		pieces := s.cubic.SplitAtMany(ts)
		p.A = handle(pieces[0].P1, p.Pos())
		q.B = handle(pieces[len(pieces)-1].P2, q.Pos())
		for k, piece := range pieces[1:] {
			np := pointAt(piece.P0, glyph.Line)
			np.B = handle(pieces[k].P2, piece.P0)
			np.A = handle(piece.P1, piece.P0)
			if np.B.Set {
				np.Type = glyph.Curve
			}
			added = append(added, np)
		}
	}

	if i == j {
		p.B = q.B
	} else {
		_ = c.SetPoint(j, q)
	}
	_ = c.SetPoint(i, p)
	for k, np := range added {
		c.InsertPoint(i+1+k, np)
	}
	return len(added)
}
