package geom

import "honnef.co/go/curve"

// Conversions between this package's types and honnef.co/go/curve, which
// provides the numerical solvers (nearest point, line intersection, arc
// length, stroking).

// CurvePoint converts p to a curve.Point.
func (p Point) CurvePoint() curve.Point {
	return curve.Point{X: p.X, Y: p.Y}
}

// FromCurvePoint converts a curve.Point.
func FromCurvePoint(p curve.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

// CurveLine converts l to a curve.Line.
func (l Line) CurveLine() curve.Line {
	return curve.Line{P0: l.P0.CurvePoint(), P1: l.P1.CurvePoint()}
}

// Segment converts c to a cubic curve.PathSegment.
func (c CubicBez) Segment() curve.PathSegment {
	return curve.PathSegment{
		Kind: curve.CubicKind,
		P0:   c.P0.CurvePoint(),
		P1:   c.P1.CurvePoint(),
		P2:   c.P2.CurvePoint(),
		P3:   c.P3.CurvePoint(),
	}
}

// Segment converts q to a quadratic curve.PathSegment.
func (q QuadBez) Segment() curve.PathSegment {
	return curve.PathSegment{
		Kind: curve.QuadKind,
		P0:   q.P0.CurvePoint(),
		P1:   q.P1.CurvePoint(),
		P2:   q.P2.CurvePoint(),
	}
}

// Arclen returns the arc length of c to within accuracy.
func (c CubicBez) Arclen(accuracy float64) float64 {
	if c.IsLine() {
		return c.P0.Distance(c.P3)
	}
	return c.Segment().Arclen(accuracy)
}

// Elements returns the piecewise curve as curve path elements, closing
// the path when p is closed.
func (p Piecewise) Elements() curve.BezPath {
	if len(p.Segs) == 0 {
		return nil
	}
	path := make(curve.BezPath, 0, len(p.Segs)+2)
	path.MoveTo(p.Segs[0].P0.CurvePoint())
	for _, s := range p.Segs {
		if s.IsLine() {
			path.LineTo(s.P3.CurvePoint())
			continue
		}
		path.CubicTo(s.P1.CurvePoint(), s.P2.CurvePoint(), s.P3.CurvePoint())
	}
	if p.Closed {
		path.ClosePath()
	}
	return path
}
