package boolean

import (
	"cmp"
	"math"
	"slices"

	cgeom "github.com/ctessum/geom"
	"honnef.co/go/curve"

	"github.com/gogpu/glyph"
)

// Combine folds every operation layer into the group started by the
// nearest layer above it without an operation. Invisible layers are
// skipped. The input layers are not modified.
func Combine(layers []*glyph.Layer, opts ...Option) []*glyph.Layer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	visible := make([]*glyph.Layer, 0, len(layers))
	for _, l := range layers {
		if l != nil && l.Visible {
			visible = append(visible, l)
		}
	}
	if len(visible) == 0 {
		return nil
	}
	if len(visible) == 1 {
		return []*glyph.Layer{visible[0].Clone()}
	}

	var (
		out  []*glyph.Layer
		acc  group
		flat = func(l *glyph.Layer) cgeom.Polygon { return Fill(l.Outline, o.tolerance) }
	)
	acc.start(visible[0])
	for _, l := range visible[1:] {
		if !l.Operation.Set {
			out = append(out, acc.flush())
			acc.start(l)
			continue
		}
		if !acc.combined {
			acc.poly, acc.combined = flat(acc.seed), true
		}
		acc.poly = apply(acc.poly, flat(l), l.Operation.Op)
		glyph.Logger().Debug("boolean: combined layer",
			"layer", l.Name, "into", acc.seed.Name, "op", l.Operation.Op, "rings", len(acc.poly))
	}
	return append(out, acc.flush())
}

// group accumulates the layers combined into seed. Until an operation
// applies the group is untouched and keeps its curves.
type group struct {
	seed     *glyph.Layer
	poly     cgeom.Polygon
	combined bool
}

func (g *group) start(l *glyph.Layer) {
	g.seed, g.poly, g.combined = l, nil, false
}

func (g *group) flush() *glyph.Layer {
	out := g.seed.Clone()
	out.Operation = glyph.NoLayerOp()
	if g.combined {
		out.Outline = Outline(g.poly)
	}
	return out
}

func apply(a, b cgeom.Polygon, op glyph.LayerOperation) cgeom.Polygon {
	var r cgeom.Polygonal
	switch op {
	case glyph.Union:
		r = a.Union(b)
	case glyph.Intersect:
		r = a.Intersection(b)
	case glyph.XOR:
		r = a.XOr(b)
	default:
		r = a.Difference(b)
	}
	var out cgeom.Polygon
	for _, p := range r.Polygons() {
		out = append(out, p...)
	}
	return out
}

// Fill flattens o like Polygon and resolves the rings to the region they
// cover under the nonzero winding rule, so overlapping contours of the
// same direction merge instead of cancelling. Rings are folded in largest
// first: a ring whose inside has winding zero is a hole and is
// subtracted, every other ring is added.
func Fill(o glyph.Outline, tolerance float64) cgeom.Polygon {
	rings := Polygon(o, tolerance)
	if len(rings) < 2 {
		return rings
	}
	sorted := slices.Clone(rings)
	slices.SortStableFunc(sorted, func(a, b cgeom.Path) int {
		return cmp.Compare(math.Abs(signedArea(b)), math.Abs(signedArea(a)))
	})

	var acc cgeom.Polygon
	for _, r := range sorted {
		pt, ok := insidePoint(r)
		if !ok {
			continue
		}
		switch {
		case winding(rings, pt) == 0:
			if acc != nil {
				acc = apply(acc, cgeom.Polygon{r}, glyph.Difference)
			}
		case acc == nil:
			acc = cgeom.Polygon{r}
		default:
			acc = apply(acc, cgeom.Polygon{r}, glyph.Union)
		}
	}
	return acc
}

// signedArea is positive for counter-clockwise rings with y up.
func signedArea(r cgeom.Path) float64 {
	var a float64
	for i, p := range r {
		q := r[(i+1)%len(r)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// insidePoint returns a point just inside r next to its longest edge.
func insidePoint(r cgeom.Path) (cgeom.Point, bool) {
	area := signedArea(r)
	var perim, best float64
	var a, b cgeom.Point
	for i, p := range r {
		q := r[(i+1)%len(r)]
		l := math.Hypot(q.X-p.X, q.Y-p.Y)
		perim += l
		if l > best {
			best, a, b = l, p, q
		}
	}
	if area == 0 || best == 0 {
		return cgeom.Point{}, false
	}
	// Off the midpoint so the sample avoids edges shared with other rings.
	const at = 0.381966
	d := 1e-3 * math.Abs(area) / perim
	if area < 0 {
		d = -d
	}
	nx, ny := -(b.Y-a.Y)/best, (b.X-a.X)/best
	return cgeom.Point{
		X: a.X + (b.X-a.X)*at + nx*d,
		Y: a.Y + (b.Y-a.Y)*at + ny*d,
	}, true
}

// winding returns the winding number of p's rings around pt.
func winding(p cgeom.Polygon, pt cgeom.Point) int {
	w := 0
	for _, r := range p {
		for i, a := range r {
			b := r[(i+1)%len(r)]
			side := (b.X-a.X)*(pt.Y-a.Y) - (pt.X-a.X)*(b.Y-a.Y)
			if a.Y <= pt.Y {
				if b.Y > pt.Y && side > 0 {
					w++
				}
			} else if b.Y <= pt.Y && side < 0 {
				w--
			}
		}
	}
	return w
}

// Polygon flattens o into rings within tolerance. Open contours are
// closed. Rings with fewer than three points are dropped.
func Polygon(o glyph.Outline, tolerance float64) cgeom.Polygon {
	var poly cgeom.Polygon
	for _, c := range o {
		path := c.Path()
		if c.IsOpen() {
			path.ClosePath()
		}
		var ring cgeom.Path
		flushRing := func() {
			if n := len(ring); n > 1 && ring[n-1] == ring[0] {
				ring = ring[:n-1]
			}
			if len(ring) >= 3 {
				poly = append(poly, ring)
			}
			ring = nil
		}
		for el := range path.Flatten(tolerance) {
			switch el.Kind {
			case curve.MoveToKind:
				flushRing()
				ring = append(ring, cgeom.Point{X: el.P0.X, Y: el.P0.Y})
			case curve.LineToKind:
				ring = append(ring, cgeom.Point{X: el.P0.X, Y: el.P0.Y})
			case curve.ClosePathKind:
				flushRing()
			}
		}
		flushRing()
	}
	return poly
}

// Outline converts polygon rings to closed contours of line points.
func Outline(p cgeom.Polygon) glyph.Outline {
	out := make(glyph.Outline, 0, len(p))
	for _, ring := range p {
		pts := make([]glyph.Point, 0, len(ring))
		for _, q := range ring {
			pt := glyph.NewPoint(float32(q.X), float32(q.Y), glyph.Line)
			if n := len(pts); n > 0 && pts[n-1].Pos() == pt.Pos() {
				continue
			}
			pts = append(pts, pt)
		}
		if n := len(pts); n > 1 && pts[0].Pos() == pts[n-1].Pos() {
			pts = pts[:n-1]
		}
		if len(pts) >= 3 {
			out = append(out, glyph.NewContour(glyph.Cubic, pts))
		}
	}
	return out
}
