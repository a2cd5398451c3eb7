package geom

import (
	"math"
	"sort"
)

// DefaultAccuracy is the arc-length accuracy used when callers have no
// better figure.
const DefaultAccuracy = 1e-6

// ArcLengthSamples is the resolution of an ArcLengthTable.
const ArcLengthSamples = 1000

// Piecewise is an ordered run of cubic segments forming one contour.
// Closed piecewise curves end where they start.
type Piecewise struct {
	Segs   []CubicBez
	Closed bool
}

// Len returns the number of segments.
func (p Piecewise) Len() int {
	return len(p.Segs)
}

// IsClosed reports whether the last segment returns to the first point.
func (p Piecewise) IsClosed() bool {
	return p.Closed
}

// Bounds returns the union of the tight bounds of every segment.
// An empty Piecewise has zero bounds.
func (p Piecewise) Bounds() Rect {
	if len(p.Segs) == 0 {
		return Rect{}
	}
	r := p.Segs[0].BoundingBox()
	for _, s := range p.Segs[1:] {
		r = r.Union(s.BoundingBox())
	}
	return r
}

// Length returns the total arc length.
func (p Piecewise) Length() float64 {
	var total float64
	for _, s := range p.Segs {
		total += s.Arclen(DefaultAccuracy)
	}
	return total
}

// SignedArea returns the signed enclosed area. It is only meaningful for
// closed curves.
func (p Piecewise) SignedArea() float64 {
	var a float64
	for _, s := range p.Segs {
		a += s.SignedArea()
	}
	return a
}

// Eval evaluates the curve at a global parameter u in [0, Len()]. The
// integer part selects the segment and the fraction is the local t.
func (p Piecewise) Eval(u float64) Point {
	i, t := p.local(u)
	if i < 0 {
		return Point{}
	}
	return p.Segs[i].Eval(t)
}

// Tangent returns the derivative at the global parameter u.
func (p Piecewise) Tangent(u float64) Vec2 {
	i, t := p.local(u)
	if i < 0 {
		return Vec2{}
	}
	return p.Segs[i].Tangent(t)
}

// Direction returns the unit direction of travel at the global parameter u.
func (p Piecewise) Direction(u float64) Vec2 {
	i, t := p.local(u)
	if i < 0 {
		return Vec2{}
	}
	return p.Segs[i].Direction(t)
}

func (p Piecewise) local(u float64) (int, float64) {
	n := len(p.Segs)
	if n == 0 {
		return -1, 0
	}
	if u <= 0 {
		return 0, 0
	}
	if u >= float64(n) {
		return n - 1, 1
	}
	i := int(math.Floor(u))
	return i, u - float64(i)
}

// Reversed returns the curve traversed in the opposite direction.
func (p Piecewise) Reversed() Piecewise {
	segs := make([]CubicBez, len(p.Segs))
	for i, s := range p.Segs {
		segs[len(p.Segs)-1-i] = s.Reversed()
	}
	return Piecewise{Segs: segs, Closed: p.Closed}
}

// ArcLengthTable maps normalized arc-length fractions to global curve
// parameters. It samples the curve at ArcLengthSamples evenly spaced
// parameters and inverts the cumulative chord lengths by binary search.
type ArcLengthTable struct {
	pw     Piecewise
	params []float64
	cum    []float64
	total  float64
}

// NewArcLengthTable precomputes the arc-length lookup for p.
func NewArcLengthTable(p Piecewise) *ArcLengthTable {
	n := ArcLengthSamples
	tab := &ArcLengthTable{
		pw:     p,
		params: make([]float64, n+1),
		cum:    make([]float64, n+1),
	}
	if len(p.Segs) == 0 {
		return tab
	}

	span := float64(len(p.Segs))
	prev := p.Eval(0)
	for i := 1; i <= n; i++ {
		u := span * float64(i) / float64(n)
		pt := p.Eval(u)
		tab.params[i] = u
		tab.cum[i] = tab.cum[i-1] + prev.Distance(pt)
		prev = pt
	}
	tab.total = tab.cum[n]
	return tab
}

// Length returns the sampled total length.
func (a *ArcLengthTable) Length() float64 {
	return a.total
}

// Piecewise returns the curve the table was built for.
func (a *ArcLengthTable) Piecewise() Piecewise {
	return a.pw
}

// ParamAt maps a normalized arc-length fraction in [0, 1] to a global
// parameter. A zero-length curve maps every fraction to 0.
func (a *ArcLengthTable) ParamAt(fraction float64) float64 {
	if a.total <= 0 {
		return 0
	}
	target := clamp01(fraction) * a.total
	i := sort.SearchFloat64s(a.cum, target)
	switch {
	case i <= 0:
		return 0
	case i >= len(a.cum):
		return a.params[len(a.params)-1]
	}
	seg := a.cum[i] - a.cum[i-1]
	if seg <= 0 {
		return a.params[i]
	}
	f := (target - a.cum[i-1]) / seg
	return a.params[i-1] + f*(a.params[i]-a.params[i-1])
}

// FractionAt maps a global parameter back to its normalized arc-length
// fraction.
func (a *ArcLengthTable) FractionAt(u float64) float64 {
	if a.total <= 0 {
		return 0
	}
	i := sort.SearchFloat64s(a.params, u)
	switch {
	case i <= 0:
		return 0
	case i >= len(a.params):
		return 1
	}
	span := a.params[i] - a.params[i-1]
	f := (u - a.params[i-1]) / span
	return (a.cum[i-1] + f*(a.cum[i]-a.cum[i-1])) / a.total
}

// PointAtLength returns the point s units along the curve.
func (a *ArcLengthTable) PointAtLength(s float64) Point {
	return a.pw.Eval(a.paramAtLength(s))
}

// TangentAtLength returns the unit tangent s units along the curve.
func (a *ArcLengthTable) TangentAtLength(s float64) Vec2 {
	return a.pw.Direction(a.paramAtLength(s))
}

func (a *ArcLengthTable) paramAtLength(s float64) float64 {
	if a.total <= 0 {
		return 0
	}
	return a.ParamAt(s / a.total)
}
