package glyph

import (
	"io"

	"honnef.co/go/curve"

	"github.com/gogpu/glyph/geom"
)

// closeEpsilon is the distance under which the last point of a closed
// subpath is treated as a repeat of the first.
const closeEpsilon = 1e-6

// ContoursFromPath converts path elements to cubic contours, one per
// subpath. Subpaths ending in ClosePath become closed contours; a final
// point repeating the start is folded into the first point.
func ContoursFromPath(path curve.BezPath) Outline {
	var (
		out   Outline
		pts   []Point
		start geom.Point
	)
	flush := func(closed bool) {
		if len(pts) == 0 {
			return
		}
		if closed {
			if n := len(pts); n > 1 && pts[n-1].Pos().Distance(pts[0].Pos()) < closeEpsilon {
				pts[0].B = pts[n-1].B
				pts = pts[:n-1]
			}
			pts[0].Type = onCurveType(Cubic, pts[0].B.Set)
		}
		out = append(out, &Contour{Kind: Cubic, points: pts})
		pts = nil
	}
	// current returns the index of the last point, starting a subpath at
	// the previous start when a drawing element follows ClosePath.
	current := func() int {
		if len(pts) == 0 {
			pts = append(pts, Point{X: float32(start.X), Y: float32(start.Y), Type: Move})
		}
		return len(pts) - 1
	}

	for _, el := range path {
		switch el.Kind {
		case curve.MoveToKind:
			flush(false)
			start = geom.FromCurvePoint(el.P0)
			pts = append(pts, Point{X: float32(start.X), Y: float32(start.Y), Type: Move})
		case curve.LineToKind:
			current()
			pts = append(pts, pointAt(geom.FromCurvePoint(el.P0), Line))
		case curve.QuadToKind:
			last := current()
			q := geom.QuadBez{P0: pts[last].Pos(), P1: geom.FromCurvePoint(el.P0), P2: geom.FromCurvePoint(el.P1)}
			appendCubic(&pts, last, q.Raise())
		case curve.CubicToKind:
			last := current()
			appendCubic(&pts, last, geom.CubicBez{
				P0: pts[last].Pos(),
				P1: geom.FromCurvePoint(el.P0),
				P2: geom.FromCurvePoint(el.P1),
				P3: geom.FromCurvePoint(el.P2),
			})
		case curve.ClosePathKind:
			flush(true)
		}
	}
	flush(false)
	return out
}

func pointAt(p geom.Point, typ PointType) Point {
	return Point{X: float32(p.X), Y: float32(p.Y), Type: typ}
}

func appendCubic(pts *[]Point, last int, c geom.CubicBez) {
	(*pts)[last].A = handleFor(c.P1, (*pts)[last].Pos())
	end := pointAt(c.P3, Curve)
	end.B = handleFor(c.P2, end.Pos())
	*pts = append(*pts, end)
}

// handleFor returns a handle at h, or a colocated handle when h sits on
// its point.
func handleFor(h, owner geom.Point) Handle {
	hh := HandleAt(h)
	if hh.X == float32(owner.X) && hh.Y == float32(owner.Y) {
		return Colocated()
	}
	return hh
}

// Path returns the contour as path elements.
func (c *Contour) Path() curve.BezPath {
	if c.Len() == 1 {
		var p curve.BezPath
		p.MoveTo(c.points[0].Pos().CurvePoint())
		return p
	}
	return c.Piecewise().Elements()
}

// Path returns all contours as one path.
func (o Outline) Path() curve.BezPath {
	var p curve.BezPath
	for _, c := range o {
		p = append(p, c.Path()...)
	}
	return p
}

// SVG returns the outline as SVG path data.
func (o Outline) SVG() string {
	return o.Path().SVG(curve.SVGOptions{MaxPrecision: 4})
}

// WriteSVG writes the outline's SVG path data to w.
func (o Outline) WriteSVG(w io.Writer) error {
	return o.Path().WriteSVG(w, curve.SVGOptions{MaxPrecision: 4})
}
