package glyph

import (
	"fmt"
	"slices"

	"github.com/gogpu/glyph/geom"
)

// Kind is the curve family a contour's segments are drawn with.
type Kind int

const (
	// Cubic segments use both handles: cubic(p, p.A, next.B, next).
	Cubic Kind = iota
	// Quad segments use one control point: the start's A handle, or the
	// end's B handle when A is colocated.
	Quad
	// Hyper contours are drawn as cubics.
	Hyper
)

func (k Kind) String() string {
	switch k {
	case Cubic:
		return "cubic"
	case Quad:
		return "quad"
	case Hyper:
		return "hyper"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Contour is an ordered list of points with an optional operation. The
// operation's per-point parameters are kept in step with the points by
// every mutating method.
//
// A contour is open when its first point has type Move, closed otherwise.
type Contour struct {
	Kind Kind

	points []Point
	op     ContourOperation
}

// NewContour returns a contour holding a copy of points.
func NewContour(kind Kind, points []Point) *Contour {
	return &Contour{Kind: kind, points: slices.Clone(points)}
}

// Len returns the number of points.
func (c *Contour) Len() int {
	return len(c.points)
}

// IsOpen reports whether the contour has a start and an end.
func (c *Contour) IsOpen() bool {
	return len(c.points) > 0 && c.points[0].Type == Move
}

// IsClosed reports whether the last point connects back to the first.
func (c *Contour) IsClosed() bool {
	return !c.IsOpen()
}

// Point returns point i.
func (c *Contour) Point(i int) (Point, bool) {
	if i < 0 || i >= len(c.points) {
		return Point{}, false
	}
	return c.points[i], true
}

// First returns the first point.
func (c *Contour) First() (Point, bool) {
	return c.Point(0)
}

// Last returns the last point.
func (c *Contour) Last() (Point, bool) {
	return c.Point(len(c.points) - 1)
}

// SetPoint replaces point i.
func (c *Contour) SetPoint(i int, p Point) error {
	if i < 0 || i >= len(c.points) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(c.points))
	}
	c.points[i] = p
	return nil
}

// Points returns a copy of the points.
func (c *Contour) Points() []Point {
	return slices.Clone(c.points)
}

// SetPoints replaces all points. Operation parameters are truncated or
// extended (duplicating the last parameter) to the new length.
func (c *Contour) SetPoints(points []Point) {
	c.points = slices.Clone(points)
	if c.op == nil {
		return
	}
	n, have := len(c.points), c.op.ParamLen()
	switch {
	case have < 0 || have == n:
	case have > n:
		c.op = c.op.Sub(0, n-1)
	default:
		c.op = c.op.Append(nil, n-have)
	}
}

// Operation returns the contour operation, or nil for none.
func (c *Contour) Operation() ContourOperation {
	return c.op
}

// SetOperation attaches op to the contour. Operations with per-point
// parameters must carry exactly one parameter per point.
func (c *Contour) SetOperation(op ContourOperation) error {
	if op != nil {
		if n := op.ParamLen(); n >= 0 && n != len(c.points) {
			return &ParamMismatchError{Contour: -1, Points: len(c.points), Params: n}
		}
	}
	c.op = op
	return nil
}

// Clone returns a deep copy.
func (c *Contour) Clone() *Contour {
	out := &Contour{Kind: c.Kind, points: slices.Clone(c.points)}
	if c.op != nil {
		out.op = c.op.Clone()
	}
	return out
}

// SegmentCount returns the number of segments: one fewer than the point
// count for open contours, equal for closed ones.
func (c *Contour) SegmentCount() int {
	n := len(c.points)
	if n == 0 {
		return 0
	}
	if c.IsOpen() {
		return n - 1
	}
	return n
}

// Segment returns segment i as a cubic. Quad segments are raised.
func (c *Contour) Segment(i int) (geom.CubicBez, bool) {
	if i < 0 || i >= c.SegmentCount() {
		return geom.CubicBez{}, false
	}
	p, q := c.points[i], c.points[(i+1)%len(c.points)]
	if c.Kind == Quad {
		return quadSegment(p, q).Raise(), true
	}
	return geom.CubicBez{P0: p.Pos(), P1: p.APos(), P2: q.BPos(), P3: q.Pos()}, true
}

// QuadSegment returns segment i of a Quad contour in its native form.
func (c *Contour) QuadSegment(i int) (geom.QuadBez, bool) {
	if c.Kind != Quad || i < 0 || i >= c.SegmentCount() {
		return geom.QuadBez{}, false
	}
	return quadSegment(c.points[i], c.points[(i+1)%len(c.points)]), true
}

func quadSegment(p, q Point) geom.QuadBez {
	var ctrl geom.Point
	switch {
	case p.A.Set:
		ctrl = p.APos()
	case q.B.Set:
		ctrl = q.BPos()
	default:
		ctrl = p.Pos().Midpoint(q.Pos())
	}
	return geom.QuadBez{P0: p.Pos(), P1: ctrl, P2: q.Pos()}
}

// Piecewise returns the contour as cubic segments. Colocated handles give
// straight segments, which are kept.
func (c *Contour) Piecewise() geom.Piecewise {
	n := c.SegmentCount()
	pw := geom.Piecewise{Segs: make([]geom.CubicBez, 0, n), Closed: c.IsClosed() && n > 0}
	for i := 0; i < n; i++ {
		s, _ := c.Segment(i)
		pw.Segs = append(pw.Segs, s)
	}
	return pw
}

// Bounds returns the tight bounds of the contour's curve. A single point
// has empty bounds at that point.
func (c *Contour) Bounds() geom.Rect {
	switch len(c.points) {
	case 0:
		return geom.Rect{}
	case 1:
		p := c.points[0].Pos()
		return geom.Rect{Min: p, Max: p}
	}
	return c.Piecewise().Bounds()
}

// ToCubic returns the contour with every segment expressed with cubic
// handles. Quad control points are raised; Hyper contours already use
// cubic handles and are relabelled.
func (c *Contour) ToCubic() *Contour {
	out := c.Clone()
	switch c.Kind {
	case Cubic:
		return out
	case Hyper:
		Logger().Debug("glyph: hyper contour drawn as cubic", "points", len(c.points))
		out.Kind = Cubic
		return out
	}

	out.Kind = Cubic
	for i := range out.points {
		out.points[i].A = Colocated()
		out.points[i].B = Colocated()
		if out.points[i].Type == QCurve {
			out.points[i].Type = Curve
		}
	}
	n := len(c.points)
	for i := 0; i < c.SegmentCount(); i++ {
		p, q := c.points[i], c.points[(i+1)%n]
		if !p.A.Set && !q.B.Set {
			continue
		}
		cub := quadSegment(p, q).Raise()
		out.points[i].A = HandleAt(cub.P1)
		out.points[(i+1)%n].B = HandleAt(cub.P2)
	}
	return out
}

// InsertPoint inserts p before index idx (clamped to [0, Len]). The
// operation gains a copy of the preceding point's parameter.
func (c *Contour) InsertPoint(idx int, p Point) {
	idx = max(0, min(idx, len(c.points)))
	open := c.IsOpen()
	c.points = slices.Insert(c.points, idx, p)
	if c.op != nil {
		c.op = c.op.Insert(max(idx-1, 0))
	}
	c.fixTypes(open)
}

// RemovePoint deletes point idx and its operation parameter.
func (c *Contour) RemovePoint(idx int) error {
	if idx < 0 || idx >= len(c.points) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, idx, len(c.points))
	}
	open := c.IsOpen()
	c.points = slices.Delete(c.points, idx, idx+1)
	if c.op != nil {
		c.op = c.op.Remove(idx)
	}
	c.fixTypes(open)
	return nil
}

// AppendContour appends other's points. The operation parameters follow
// the rules of the operation's Append.
func (c *Contour) AppendContour(other *Contour) {
	if other == nil || other.Len() == 0 {
		return
	}
	open := c.IsOpen() || len(c.points) == 0 && other.IsOpen()
	c.points = append(c.points, other.points...)
	if c.op != nil {
		c.op = c.op.Append(other.op, other.Len())
	}
	c.fixTypes(open)
}

// Sub returns points begin through end inclusive as an open contour.
// Indices are clamped; an empty range gives an empty contour.
func (c *Contour) Sub(begin, end int) *Contour {
	out := &Contour{Kind: c.Kind}
	n := len(c.points)
	begin = max(begin, 0)
	end = min(end, n-1)
	if begin > end {
		if c.op != nil {
			out.op = c.op.Sub(0, -1)
		}
		return out
	}
	out.points = slices.Clone(c.points[begin : end+1])
	if c.op != nil {
		out.op = c.op.Sub(begin, end)
	}
	out.fixTypes(true)
	return out
}

// Open marks a closed contour as open at its first point.
func (c *Contour) Open() {
	if len(c.points) > 0 {
		c.points[0].Type = Move
	}
}

// Close marks an open contour as closed.
func (c *Contour) Close() {
	if !c.IsOpen() {
		return
	}
	c.points[0].Type = onCurveType(c.Kind, c.points[0].B.Set)
}

// fixTypes restores the rule that only the first point of an open contour
// has type Move.
func (c *Contour) fixTypes(open bool) {
	for i := range c.points {
		switch {
		case i == 0 && open:
			c.points[i].Type = Move
		case c.points[i].Type == Move:
			c.points[i].Type = onCurveType(c.Kind, c.points[i].B.Set)
		}
	}
}

func onCurveType(k Kind, curved bool) PointType {
	switch {
	case !curved:
		return Line
	case k == Quad:
		return QCurve
	}
	return Curve
}

func (c *Contour) String() string {
	state := "closed"
	if c.IsOpen() {
		state = "open"
	}
	return fmt.Sprintf("Contour(%s, %s, %d points)", c.Kind, state, len(c.points))
}
