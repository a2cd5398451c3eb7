package offset

import (
	"math"

	"honnef.co/go/curve"

	"github.com/gogpu/glyph/geom"
)

// Cap specifies the shape of an open outline's ends.
type Cap int

const (
	// CapButt ends flat at the endpoint.
	CapButt Cap = iota
	// CapRound ends with a half circle spanning both sides.
	CapRound
	// CapSquare extends past the endpoint by half the total width.
	CapSquare
)

// Join specifies how the offset sides meet at corners.
type Join int

const (
	// JoinMiter extends the sides to their intersection, within MiterLimit.
	JoinMiter Join = iota
	// JoinRound connects the sides with a circular arc.
	JoinRound
	// JoinBevel connects the sides with a straight line.
	JoinBevel
)

// Style configures caps and joins.
type Style struct {
	StartCap   Cap
	EndCap     Cap
	Join       Join
	MiterLimit float64
}

// Width is the offset at one vertex.
type Width struct {
	Left, Right float64
	// Tangent slides the offset points along the direction of travel.
	Tangent float64
}

func (w Width) lerp(o Width, t float64) Width {
	return Width{
		Left:    w.Left + (o.Left-w.Left)*t,
		Right:   w.Right + (o.Right-w.Right)*t,
		Tangent: w.Tangent + (o.Tangent-w.Tangent)*t,
	}
}

// Segment is one centre-line segment with the widths at its ends.
type Segment struct {
	Curve      geom.CubicBez
	Start, End Width
	// Hold keeps Start for the whole segment instead of interpolating.
	Hold bool
}

func (s Segment) widthAt(t float64) Width {
	if s.Hold {
		return s.Start
	}
	return s.Start.lerp(s.End, t)
}

// Expander converts a variable-width centre line to a fill outline.
type Expander struct {
	style Style

	// Tolerance for curve flattening and join skipping.
	tolerance float64

	forward  curve.BezPath
	backward curve.BezPath
	output   curve.BezPath

	startPt  geom.Point
	startTan geom.Vec2
	startW   Width
	lastPt   geom.Point
	lastTan  geom.Vec2
	lastW    Width

	joinThresh float64
}

// NewExpander creates an expander with the given style.
func NewExpander(style Style) *Expander {
	if style.MiterLimit <= 0 {
		style.MiterLimit = 4
	}
	return &Expander{
		style:     style,
		tolerance: 0.25,
	}
}

// SetTolerance sets the curve flattening tolerance. Non-positive values
// are ignored.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Expand offsets segs, which must be contiguous. Closed input produces two
// closed subpaths, open input one.
func (e *Expander) Expand(segs []Segment, closed bool) curve.BezPath {
	e.reset()
	if len(segs) == 0 {
		return nil
	}

	e.startPt = segs[0].Curve.P0
	e.lastPt = e.startPt
	e.lastW = segs[0].widthAt(0)
	for _, s := range segs {
		e.doSegment(s)
	}

	if closed {
		e.finishClosed()
	} else {
		e.finish()
	}
	return e.output
}

func (e *Expander) reset() {
	e.forward = nil
	e.backward = nil
	e.output = nil
	e.startPt = geom.Point{}
	e.startTan = geom.Vec2{}
	e.startW = Width{}
	e.lastPt = geom.Point{}
	e.lastTan = geom.Vec2{}
	e.lastW = Width{}
	e.joinThresh = 2.0 * e.tolerance
}

// doSegment flattens one segment and extends both sides along it.
func (e *Expander) doSegment(s Segment) {
	c := s.Curve
	if c.P0 == c.P1 && c.P0 == c.P2 && c.P0 == c.P3 {
		return
	}
	for _, smp := range e.flatten(c) {
		tangent := smp.pt.Sub(e.lastPt)
		if tangent.LengthSq() < 1e-18 {
			continue
		}
		w := s.widthAt(smp.t)
		e.doJoin(tangent)
		e.lastTan = tangent
		e.doLine(tangent, smp.pt, w)
	}
}

// left and right return the offset points for p moving along dir.
func left(p geom.Point, dir geom.Vec2, w Width) geom.Point {
	u := dir.Normalize()
	q := p.Add(u.Perp().Mul(-w.Left))
	if m := math.Max(w.Left, w.Right); m > 0 && w.Tangent != 0 {
		q = q.Add(u.Mul(-w.Tangent * w.Left / m))
	}
	return q
}

func right(p geom.Point, dir geom.Vec2, w Width) geom.Point {
	u := dir.Normalize()
	q := p.Add(u.Perp().Mul(w.Right))
	if m := math.Max(w.Left, w.Right); m > 0 && w.Tangent != 0 {
		q = q.Add(u.Mul(w.Tangent * w.Right / m))
	}
	return q
}

// doJoin joins the segment starting with tan0 to the previous one.
func (e *Expander) doJoin(tan0 geom.Vec2) {
	p0 := e.lastPt
	w := e.lastW
	if len(e.forward) == 0 {
		e.forward.MoveTo(left(p0, tan0, w).CurvePoint())
		e.backward.MoveTo(right(p0, tan0, w).CurvePoint())
		e.startTan = tan0
		e.startW = w
		return
	}

	ab := e.lastTan
	cd := tan0
	cross := ab.Cross(cd)
	dot := ab.Dot(cd)
	hypot := math.Hypot(cross, dot)

	// Flattening produces many nearly collinear joints; connect those
	// directly so the sides stay continuous.
	if dot > 0 && math.Abs(cross) < hypot*e.joinThresh/math.Max(1, math.Max(w.Left, w.Right)) {
		e.lineBoth(p0, cd, w)
		return
	}

	switch e.style.Join {
	case JoinBevel:
		e.lineBoth(p0, cd, w)
	case JoinMiter:
		e.miterJoin(p0, ab, cd, w, cross, dot, hypot)
	case JoinRound:
		e.roundJoin(p0, ab, cd, w, cross, dot)
	}
}

func (e *Expander) lineBoth(p0 geom.Point, dir geom.Vec2, w Width) {
	e.forward.LineTo(left(p0, dir, w).CurvePoint())
	e.backward.LineTo(right(p0, dir, w).CurvePoint())
}

// miterJoin extends the outer side to the intersection of the two offset
// lines when the miter limit allows it.
func (e *Expander) miterJoin(p0 geom.Point, ab, cd geom.Vec2, w Width, cross, dot, hypot float64) {
	limitSq := e.style.MiterLimit * e.style.MiterLimit
	if 2*hypot < (hypot+dot)*limitSq && cross != 0 {
		var prev, next geom.Point
		if cross > 0 {
			prev, next = left(p0, ab, w), left(p0, cd, w)
		} else {
			prev, next = right(p0, ab, w), right(p0, cd, w)
		}
		l1 := geom.Line{P0: prev, P1: prev.Add(ab)}
		l2 := geom.Line{P0: next, P1: next.Add(cd)}
		if t, _, ok := l1.RayIntersect(l2); ok {
			miter := l1.Eval(t)
			if cross > 0 {
				e.forward.LineTo(miter.CurvePoint())
			} else {
				e.backward.LineTo(miter.CurvePoint())
			}
		}
	}
	e.lineBoth(p0, cd, w)
}

// roundJoin arcs around p0 on the outer side of the turn.
func (e *Expander) roundJoin(p0 geom.Point, ab, cd geom.Vec2, w Width, cross, dot float64) {
	angle := math.Atan2(cross, dot)
	if angle > 0 {
		e.backward.LineTo(right(p0, cd, w).CurvePoint())
		start := left(p0, ab, w).Sub(p0)
		arc(&e.forward, p0, start, angle)
	} else {
		e.forward.LineTo(left(p0, cd, w).CurvePoint())
		start := right(p0, ab, w).Sub(p0)
		arc(&e.backward, p0, start, angle)
	}
}

// doLine extends both sides to p1.
func (e *Expander) doLine(tangent geom.Vec2, p1 geom.Point, w Width) {
	e.lineBoth(p1, tangent, w)
	e.lastPt = p1
	e.lastW = w
}

// finish completes an open outline with caps.
func (e *Expander) finish() {
	if len(e.forward) == 0 {
		return
	}

	e.output = append(e.output, e.forward...)

	end := right(e.lastPt, e.lastTan, e.lastW)
	e.applyCap(e.style.EndCap, left(e.lastPt, e.lastTan, e.lastW), end, e.lastTan)

	e.appendReversed(e.backward)

	start := left(e.startPt, e.startTan, e.startW)
	e.applyCap(e.style.StartCap, right(e.startPt, e.startTan, e.startW), start, e.startTan.Neg())
	e.output.ClosePath()

	e.forward = nil
	e.backward = nil
}

// finishClosed completes a closed outline as two rings.
func (e *Expander) finishClosed() {
	if len(e.forward) == 0 {
		return
	}

	e.doJoin(e.startTan)

	e.output = append(e.output, e.forward...)
	e.output.ClosePath()

	if n := len(e.backward); n > 0 {
		last, _ := e.backward[n-1].EndPoint()
		e.output.MoveTo(last)
	}
	e.appendReversed(e.backward)
	e.output.ClosePath()

	e.forward = nil
	e.backward = nil
}

// applyCap connects from to to across the end of the outline, bulging
// towards out.
func (e *Expander) applyCap(c Cap, from, to geom.Point, out geom.Vec2) {
	switch c {
	case CapRound:
		center := from.Midpoint(to)
		arc(&e.output, center, from.Sub(center), math.Pi)
	case CapSquare:
		ext := out.Normalize().Mul(from.Distance(to) / 2)
		e.output.LineTo(from.Add(ext).CurvePoint())
		e.output.LineTo(to.Add(ext).CurvePoint())
		e.output.LineTo(to.CurvePoint())
	default:
		e.output.LineTo(to.CurvePoint())
	}
}

// appendReversed appends a side path in reverse order.
func (e *Expander) appendReversed(path curve.BezPath) {
	for i := len(path) - 1; i >= 1; i-- {
		end, _ := path[i-1].EndPoint()
		switch el := path[i]; el.Kind {
		case curve.LineToKind:
			e.output.LineTo(end)
		case curve.CubicToKind:
			e.output.CubicTo(el.P1, el.P0, end)
		}
	}
}

// arc appends a circular arc around center starting at center+start and
// sweeping angle radians, using at most quarter-turn cubic pieces.
func arc(out *curve.BezPath, center geom.Point, start geom.Vec2, angle float64) {
	n := int(math.Ceil(math.Abs(angle) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := angle / float64(n)
	a0 := start.Atan2()
	r := start.Length()
	for i := 0; i < n; i++ {
		seg := geom.Arc(center, r, a0, a0+step)
		out.CubicTo(seg.P1.CurvePoint(), seg.P2.CurvePoint(), seg.P3.CurvePoint())
		a0 += step
	}
}

type sample struct {
	pt geom.Point
	t  float64
}

// flatten returns points along c (excluding its start) with their local
// parameters, subdividing until each piece is within tolerance of its chord.
func (e *Expander) flatten(c geom.CubicBez) []sample {
	var out []sample
	e.flattenRec(c, 0, 1, 0, &out)
	return out
}

func (e *Expander) flattenRec(c geom.CubicBez, t0, t1 float64, depth int, out *[]sample) {
	d := math.Max(distanceToLine(c.P1, c.P0, c.P3), distanceToLine(c.P2, c.P0, c.P3))
	if d < e.tolerance || depth >= 16 {
		*out = append(*out, sample{pt: c.P3, t: t1})
		return
	}
	left, right := c.SplitAt(0.5)
	mid := (t0 + t1) / 2
	e.flattenRec(left, t0, mid, depth+1, out)
	e.flattenRec(right, mid, t1, depth+1, out)
}

// distanceToLine calculates the distance from p to the segment (a, b).
func distanceToLine(p, a, b geom.Point) float64 {
	ab := b.Sub(a)
	abLen := ab.Length()
	if abLen < 1e-10 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / (abLen * abLen)
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.Add(ab.Mul(t)))
}
