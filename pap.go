package glyph

import (
	"math"

	"github.com/gogpu/glyph/geom"
)

// PatternCopies selects how many times the pattern is placed.
type PatternCopies int

const (
	// CopiesSingle places the pattern once at the start of the path.
	CopiesSingle PatternCopies = iota
	// CopiesRepeated tiles the pattern along the whole path.
	CopiesRepeated
)

// PatternSubdivide controls splitting of pattern segments before they
// are bent along the path.
type PatternSubdivide int

const (
	SubdivideOff PatternSubdivide = iota
	// SubdivideSimple splits every pattern segment into SubdivideN+1 pieces.
	SubdivideSimple
)

// PatternStretch controls how the pattern fills the path length.
type PatternStretch int

const (
	StretchOff PatternStretch = iota
	// StretchOn scales the pattern so the copies exactly cover the path.
	StretchOn
	// StretchSpacing spreads the leftover length into the gaps.
	StretchSpacing
)

// PAPContour places copies of a pattern outline along a contour.
//
// Pattern x runs along the path by arc length and pattern y runs along
// the path normal.
type PAPContour struct {
	Pattern       Outline
	Copies        PatternCopies
	Subdivide     PatternSubdivide
	SubdivideN    int
	Spacing       float64
	NormalOffset  float64
	TangentOffset float64
	PatternScale  [2]float64
	// Center centers the pattern on the path; otherwise its bottom edge
	// sits on the path.
	Center          bool
	Stretch         PatternStretch
	Simplify        bool
	PreventOverdraw bool
	TwoPassCulling  bool
	ReverseCulling  bool
	ReversePath     bool
}

// NewPAPContour returns a repeating, centered placement of pattern.
func NewPAPContour(pattern Outline) *PAPContour {
	return &PAPContour{
		Pattern:      pattern.Clone(),
		Copies:       CopiesRepeated,
		PatternScale: [2]float64{1, 1},
		Center:       true,
	}
}

func (*PAPContour) contourOperation() {}

// ParamLen returns -1: patterns have no per-point parameters.
func (p *PAPContour) ParamLen() int { return -1 }

// Clone returns a deep copy.
func (p *PAPContour) Clone() ContourOperation {
	out := *p
	out.Pattern = p.Pattern.Clone()
	return &out
}

func (p *PAPContour) Sub(int, int) ContourOperation                 { return p.Clone() }
func (p *PAPContour) Append(ContourOperation, int) ContourOperation { return p.Clone() }
func (p *PAPContour) Insert(int) ContourOperation                   { return p.Clone() }
func (p *PAPContour) Remove(int) ContourOperation                   { return p.Clone() }

func (p *PAPContour) scale() (float64, float64) {
	sx, sy := p.PatternScale[0], p.PatternScale[1]
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}

// placement is the arc-length layout of the copies.
type placement struct {
	starts []float64
	// stretch scales pattern x after PatternScale.
	stretch float64
}

// layout places copies of a pattern width w along a path of length total.
func (p *PAPContour) layout(w, total float64, closed bool) placement {
	if p.Copies == CopiesSingle {
		pl := placement{starts: []float64{0}, stretch: 1}
		if p.Stretch == StretchOn && w > 0 {
			pl.stretch = total / w
		}
		return pl
	}

	gap := p.Spacing
	step := w + gap
	if w <= 0 || step <= 0 {
		return placement{starts: []float64{0}, stretch: 1}
	}
	// Closed paths need a gap after the last copy as well.
	span := total + gap
	if closed {
		span = total
	}
	n := max(int(math.Floor(span/step+1e-9)), 1)

	stretch := 1.0
	switch p.Stretch {
	case StretchOn:
		gaps := float64(n - 1)
		if closed {
			gaps = float64(n)
		}
		if fill := total - gaps*gap; fill > 0 {
			stretch = fill / (float64(n) * w)
		}
	case StretchSpacing:
		gaps := float64(n - 1)
		if closed {
			gaps = float64(n)
		}
		if gaps > 0 {
			gap = (total - float64(n)*w) / gaps
		}
	}

	pl := placement{starts: make([]float64, n), stretch: stretch}
	for i := range pl.starts {
		pl.starts[i] = float64(i) * (w*stretch + gap)
	}
	return pl
}

// Build bends copies of the pattern along c.
func (p *PAPContour) Build(c *Contour, _ ...BuildOption) (Outline, error) {
	base := c.ToCubic()
	if p.ReversePath {
		base = base.Reverse()
	}
	pw := base.Piecewise()
	if pw.Len() == 0 || len(p.Pattern) == 0 {
		return Outline{}, nil
	}
	table := geom.NewArcLengthTable(pw)
	total := table.Length()

	pattern := p.preparePattern()
	b := pattern.Bounds()
	sx, sy := p.scale()
	w := b.Width() * sx
	pl := p.layout(w, total, pw.IsClosed())

	yBase := b.Min.Y
	if p.Center {
		yBase = b.Center().Y
	}

	copies := make([]Outline, 0, len(pl.starts))
	for _, s0 := range pl.starts {
		warp := func(q geom.Point) geom.Point {
			s := s0 + (q.X-b.Min.X)*sx*pl.stretch + p.TangentOffset
			n := (q.Y-yBase)*sy + p.NormalOffset
			return pointAlong(table, s, n, pw.IsClosed())
		}
		copies = append(copies, warpOutline(pattern, warp))
	}

	if p.PreventOverdraw {
		copies = p.cull(copies, pw.IsClosed())
	}

	var out Outline
	for _, cp := range copies {
		for _, con := range cp {
			if p.Simplify {
				con = simplifyContour(con)
			}
			out = append(out, con)
		}
	}
	return out, nil
}

// preparePattern returns the pattern as cubic contours, subdivided when
// requested.
func (p *PAPContour) preparePattern() Outline {
	out := make(Outline, 0, len(p.Pattern))
	for _, c := range p.Pattern {
		c = c.ToCubic()
		if p.Subdivide == SubdivideSimple && p.SubdivideN > 0 {
			c = subdivideContour(c, p.SubdivideN)
		}
		out = append(out, c)
	}
	return out
}

// pointAlong returns the point s units along the path and n units along
// its left normal. Closed paths wrap; open paths extend along the end
// tangents.
func pointAlong(t *geom.ArcLengthTable, s, n float64, closed bool) geom.Point {
	total := t.Length()
	if total <= 0 {
		return t.PointAtLength(0).Add(geom.V2(0, n))
	}
	var pos geom.Point
	var tan geom.Vec2
	switch {
	case closed:
		s = math.Mod(s, total)
		if s < 0 {
			s += total
		}
		pos, tan = t.PointAtLength(s), t.TangentAtLength(s)
	case s < 0:
		tan = t.TangentAtLength(0)
		pos = t.PointAtLength(0).Add(tan.Mul(s))
	case s > total:
		tan = t.TangentAtLength(total)
		pos = t.PointAtLength(total).Add(tan.Mul(s - total))
	default:
		pos, tan = t.PointAtLength(s), t.TangentAtLength(s)
	}
	return pos.Add(tan.Perp().Mul(n))
}

// warpOutline maps every point and set handle of o through f.
func warpOutline(o Outline, f func(geom.Point) geom.Point) Outline {
	out := make(Outline, 0, len(o))
	for _, c := range o {
		pts := c.Points()
		for i, pt := range pts {
			if pt.A.Set {
				pts[i].A = HandleAt(f(pt.APos()))
			}
			if pt.B.Set {
				pts[i].B = HandleAt(f(pt.BPos()))
			}
			pts[i].SetPos(f(pt.Pos()))
		}
		out = append(out, NewContour(Cubic, pts))
	}
	return out
}

// subdivideContour splits every segment of c into n+1 equal parameter
// pieces.
func subdivideContour(c *Contour, n int) *Contour {
	if c.SegmentCount() == 0 {
		return c
	}
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = float64(i+1) / float64(n+1)
	}
	var path geom.Piecewise
	path.Closed = c.IsClosed()
	for i := 0; i < c.SegmentCount(); i++ {
		s, _ := c.Segment(i)
		if s.IsLine() {
			for _, piece := range s.SplitAtMany(ts) {
				path.Segs = append(path.Segs, geom.Line{P0: piece.P0, P1: piece.P3}.Cubic())
			}
			continue
		}
		path.Segs = append(path.Segs, s.SplitAtMany(ts)...)
	}
	out := ContoursFromPath(path.Elements())
	if len(out) == 0 {
		return c
	}
	return out[0]
}

// cull drops copies whose bounds overlap a copy already kept. The first
// pass checks each copy against its kept neighbours; TwoPassCulling adds
// a pass against every kept copy.
func (p *PAPContour) cull(copies []Outline, closed bool) []Outline {
	const shrink = 1e-6
	bounds := make([]geom.Rect, len(copies))
	for i, cp := range copies {
		bounds[i] = cp.Bounds().Inflate(-shrink)
	}

	order := make([]int, len(copies))
	for i := range order {
		order[i] = i
		if p.ReverseCulling {
			order[i] = len(copies) - 1 - i
		}
	}

	var kept []int
	for _, i := range order {
		if len(kept) > 0 && bounds[i].Overlaps(bounds[kept[len(kept)-1]]) {
			continue
		}
		if closed && len(kept) > 1 && bounds[i].Overlaps(bounds[kept[0]]) {
			continue
		}
		kept = append(kept, i)
	}

	if p.TwoPassCulling {
		var second []int
		for _, i := range kept {
			overlaps := false
			for _, j := range second {
				if bounds[i].Overlaps(bounds[j]) {
					overlaps = true
					break
				}
			}
			if !overlaps {
				second = append(second, i)
			}
		}
		kept = second
	}

	out := make([]Outline, 0, len(kept))
	for _, i := range kept {
		out = append(out, copies[i])
	}
	return out
}

// simplifyContour drops repeated points and points in the middle of a
// straight run.
func simplifyContour(c *Contour) *Contour {
	const eps = 1e-6
	pts := c.Points()
	if len(pts) < 3 {
		return c
	}
	var dedup []Point
	for _, pt := range pts {
		if len(dedup) > 0 && pt.Pos().Distance(dedup[len(dedup)-1].Pos()) < eps && !pt.B.Set {
			continue
		}
		dedup = append(dedup, pt)
	}

	closed := c.IsClosed()
	n := len(dedup)
	var kept []Point
	for i, pt := range dedup {
		if n > 2 && (closed || (i > 0 && i < n-1)) && !pt.A.Set && !pt.B.Set {
			prev, next := dedup[(i+n-1)%n], dedup[(i+1)%n]
			if len(kept) > 0 {
				prev = kept[len(kept)-1]
			}
			if !prev.A.Set && !next.B.Set {
				d, e := next.Pos().Sub(prev.Pos()), pt.Pos().Sub(prev.Pos())
				if dot := d.Dot(e); math.Abs(d.Cross(e)) <= eps*d.LengthSq() && dot > 0 && dot < d.LengthSq() {
					continue
				}
			}
		}
		kept = append(kept, pt)
	}
	out := NewContour(c.Kind, kept)
	out.fixTypes(c.IsOpen())
	return out
}
