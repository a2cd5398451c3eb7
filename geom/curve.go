package geom

import (
	"math"
	"sort"
)

// Curve types for glyph geometry.
// Based on kurbo patterns, adapted for Go idioms.

// Rect represents an axis-aligned rectangle.
// Min holds the minimum coordinates, Max the maximum.
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two corners.
// The corners are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// RectAround returns the square of the given size centered on p.
func RectAround(p Point, size float64) Rect {
	h := size / 2
	return Rect{
		Min: Point{X: p.X - h, Y: p.Y - h},
		Max: Point{X: p.X + h, Y: p.Y + h},
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Center returns the center of the rectangle.
func (r Rect) Center() Point {
	return r.Min.Midpoint(r.Max)
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// UnionPoint returns the smallest rectangle containing r and p.
func (r Rect) UnionPoint(p Point) Rect {
	return r.Union(Rect{Min: p, Max: p})
}

// Inflate grows the rectangle by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: Point{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

// Contains returns true if the point is inside the rectangle, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Overlaps reports whether the two rectangles share any interior area.
func (r Rect) Overlaps(other Rect) bool {
	return r.Min.X < other.Max.X && other.Min.X < r.Max.X &&
		r.Min.Y < other.Max.Y && other.Min.Y < r.Max.Y
}

// -------------------------------------------------------------------
// Line
// -------------------------------------------------------------------

// Line represents a line segment from P0 to P1.
type Line struct {
	P0, P1 Point
}

// Eval evaluates the line at parameter t.
func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Length returns the length of the line segment.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Cubic returns the line as a degenerate cubic whose handles sit on the
// endpoints.
func (l Line) Cubic() CubicBez {
	return CubicBez{P0: l.P0, P1: l.P0, P2: l.P1, P3: l.P1}
}

// RayIntersect intersects the infinite lines through l and other.
// It returns the parameters along each line and false for parallel lines.
func (l Line) RayIntersect(other Line) (t, u float64, ok bool) {
	d1 := l.P1.Sub(l.P0)
	d2 := other.P1.Sub(other.P0)
	denom := d1.Cross(d2)
	if math.Abs(denom) < 1e-12 {
		return 0, 0, false
	}
	w := other.P0.Sub(l.P0)
	t = w.Cross(d2) / denom
	u = w.Cross(d1) / denom
	return t, u, true
}

// -------------------------------------------------------------------
// QuadBez - Quadratic Bezier Curve
// -------------------------------------------------------------------

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t using de Casteljau's algorithm.
func (q QuadBez) Eval(t float64) Point {
	a := q.P0.Lerp(q.P1, t)
	b := q.P1.Lerp(q.P2, t)
	return a.Lerp(b, t)
}

// Tangent returns the derivative at t. Coincident control points give
// the zero vector.
func (q QuadBez) Tangent(t float64) Vec2 {
	d0 := q.P1.Sub(q.P0)
	d1 := q.P2.Sub(q.P1)
	return d0.Mul(2 * (1 - t)).Add(d1.Mul(2 * t))
}

// SplitAt splits the curve at t into two quadratics sharing Eval(t).
func (q QuadBez) SplitAt(t float64) (QuadBez, QuadBez) {
	a := q.P0.Lerp(q.P1, t)
	b := q.P1.Lerp(q.P2, t)
	mid := a.Lerp(b, t)
	return QuadBez{P0: q.P0, P1: a, P2: mid}, QuadBez{P0: mid, P1: b, P2: q.P2}
}

// SplitAtMany splits the curve at every parameter in ts, which must be
// sorted ascending. It returns len(ts)+1 pieces.
func (q QuadBez) SplitAtMany(ts []float64) []QuadBez {
	out := make([]QuadBez, 0, len(ts)+1)
	rest := q
	prev := 0.0
	for _, t := range ts {
		local := remap(t, prev)
		left, right := rest.SplitAt(local)
		out = append(out, left)
		rest = right
		prev = t
	}
	return append(out, rest)
}

// Subsegment returns the portion of the curve from t0 to t1.
func (q QuadBez) Subsegment(t0, t1 float64) QuadBez {
	_, right := q.SplitAt(t0)
	left, _ := right.SplitAt(remap(t1, t0))
	return left
}

// Extrema returns parameter values in (0, 1) where either coordinate's
// derivative vanishes.
func (q QuadBez) Extrema() []float64 {
	var result []float64
	d0 := q.P1.Sub(q.P0)
	dd := q.P2.Sub(q.P1).Sub(d0)
	if dd.X != 0 {
		if t := -d0.X / dd.X; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (q QuadBez) BoundingBox() Rect {
	bbox := NewRect(q.P0, q.P2)
	for _, t := range q.Extrema() {
		bbox = bbox.UnionPoint(q.Eval(t))
	}
	return bbox
}

// Raise elevates the quadratic to an exactly equivalent cubic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		P0: q.P0,
		P1: q.P0.Lerp(q.P1, 2.0/3.0),
		P2: q.P2.Lerp(q.P1, 2.0/3.0),
		P3: q.P2,
	}
}

// -------------------------------------------------------------------
// CubicBez - Cubic Bezier Curve
// -------------------------------------------------------------------

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t using de Casteljau's algorithm.
func (c CubicBez) Eval(t float64) Point {
	a := c.P0.Lerp(c.P1, t)
	b := c.P1.Lerp(c.P2, t)
	d := c.P2.Lerp(c.P3, t)
	ab := a.Lerp(b, t)
	bd := b.Lerp(d, t)
	return ab.Lerp(bd, t)
}

// Deriv returns the derivative curve as a quadratic in vector space.
func (c CubicBez) Deriv() QuadBez {
	return QuadBez{
		P0: c.P1.Sub(c.P0).Mul(3).ToPoint(),
		P1: c.P2.Sub(c.P1).Mul(3).ToPoint(),
		P2: c.P3.Sub(c.P2).Mul(3).ToPoint(),
	}
}

// Tangent returns the first derivative at t. The zero vector means the
// curve has no direction there; callers must treat it as such.
func (c CubicBez) Tangent(t float64) Vec2 {
	return c.Deriv().Eval(t).Vec2()
}

// Direction returns the unit direction of travel at t. Where the
// derivative vanishes (a handle colocated with its endpoint) it falls back
// to the chord towards the next distinct control point. A curve whose
// control points all coincide has no direction and yields the zero vector.
func (c CubicBez) Direction(t float64) Vec2 {
	if d := c.Tangent(t); !d.IsZero() {
		return d.Normalize()
	}
	var cands [3]Vec2
	if t < 0.5 {
		cands = [3]Vec2{c.P2.Sub(c.P0), c.P3.Sub(c.P0), c.P3.Sub(c.P1)}
	} else {
		cands = [3]Vec2{c.P3.Sub(c.P1), c.P3.Sub(c.P0), c.P2.Sub(c.P0)}
	}
	for _, v := range cands {
		if !v.IsZero() {
			return v.Normalize()
		}
	}
	return Vec2{}
}

// SecondDeriv returns the second derivative at t.
func (c CubicBez) SecondDeriv(t float64) Vec2 {
	a := c.P2.Sub(c.P1).Sub(c.P1.Sub(c.P0))
	b := c.P3.Sub(c.P2).Sub(c.P2.Sub(c.P1))
	return a.Mul(6 * (1 - t)).Add(b.Mul(6 * t))
}

// Curvature returns the signed curvature at t, or 0 where the tangent
// vanishes.
func (c CubicBez) Curvature(t float64) float64 {
	d1 := c.Tangent(t)
	l := d1.Length()
	if l < 1e-12 {
		return 0
	}
	return d1.Cross(c.SecondDeriv(t)) / (l * l * l)
}

// SplitAt splits the curve at t using de Casteljau's control-point
// construction. The left piece ends and the right piece starts at Eval(t).
func (c CubicBez) SplitAt(t float64) (CubicBez, CubicBez) {
	a := c.P0.Lerp(c.P1, t)
	b := c.P1.Lerp(c.P2, t)
	d := c.P2.Lerp(c.P3, t)
	ab := a.Lerp(b, t)
	bd := b.Lerp(d, t)
	mid := ab.Lerp(bd, t)
	return CubicBez{P0: c.P0, P1: a, P2: ab, P3: mid},
		CubicBez{P0: mid, P1: bd, P2: d, P3: c.P3}
}

// SplitAtMany splits the curve at every parameter in ts, which must be
// sorted ascending and expressed in the original curve's parameter space.
// It returns len(ts)+1 pieces; each split is performed on the remaining
// right-hand piece with its parameter remapped.
func (c CubicBez) SplitAtMany(ts []float64) []CubicBez {
	out := make([]CubicBez, 0, len(ts)+1)
	rest := c
	prev := 0.0
	for _, t := range ts {
		left, right := rest.SplitAt(remap(t, prev))
		out = append(out, left)
		rest = right
		prev = t
	}
	return append(out, rest)
}

// Subsegment returns the portion of the curve from t0 to t1.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	_, right := c.SplitAt(t0)
	left, _ := right.SplitAt(remap(t1, t0))
	return left
}

// Reversed returns the same curve traversed from P3 to P0.
func (c CubicBez) Reversed() CubicBez {
	return CubicBez{P0: c.P3, P1: c.P2, P2: c.P1, P3: c.P0}
}

// IsLine reports whether both handles sit on their endpoints.
func (c CubicBez) IsLine() bool {
	return c.P1 == c.P0 && c.P2 == c.P3
}

// Extrema returns parameter values in (0, 1) where either coordinate's
// derivative vanishes.
func (c CubicBez) Extrema() []float64 {
	result := make([]float64, 0, 4)
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	result = append(result, SolveQuadraticInUnitInterval(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	result = append(result, SolveQuadraticInUnitInterval(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)

	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	bbox := NewRect(c.P0, c.P3)
	for _, t := range c.Extrema() {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// SignedArea returns the signed area swept between the curve and the
// origin (Green's theorem). Summed over a closed path it gives the
// enclosed area; positive for counter-clockwise in y-up coordinates.
func (c CubicBez) SignedArea() float64 {
	p0, p1, p2, p3 := c.P0, c.P1, c.P2, c.P3
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*(p1.X*(-2*p0.Y+p2.Y+p3.Y)-p2.X*(p0.Y+p1.Y-2*p3.Y)) -
		p3.X*(p0.Y+3*p1.Y+6*p2.Y)) * (1.0 / 20)
}

// remap converts t in the original parameter space to the parameter space
// of the piece that starts at prev.
func remap(t, prev float64) float64 {
	if prev >= 1 {
		return 0
	}
	return clamp01((t - prev) / (1 - prev))
}

// Arc returns a cubic approximating the circular arc of the given radius
// around center from angle a0 to a1. The handles are
// 4/3*tan((a1-a0)/4)*radius long, which puts the curve's midpoint on the
// circle. Sweeps should stay within a quarter turn.
func Arc(center Point, radius, a0, a1 float64) CubicBez {
	k := 4.0 / 3 * math.Tan((a1-a0)/4) * radius
	sin0, cos0 := math.Sincos(a0)
	sin1, cos1 := math.Sincos(a1)
	p0 := Pt(center.X+radius*cos0, center.Y+radius*sin0)
	p3 := Pt(center.X+radius*cos1, center.Y+radius*sin1)
	return CubicBez{
		P0: p0,
		P1: Pt(p0.X-k*sin0, p0.Y+k*cos0),
		P2: Pt(p3.X+k*sin1, p3.Y-k*cos1),
		P3: p3,
	}
}
