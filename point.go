package glyph

import (
	"fmt"

	"github.com/gogpu/glyph/geom"
)

// Handle is an off-curve control point. A colocated handle sits on its
// owning point; its position is resolved with Pos.
type Handle struct {
	X, Y float32
	Set  bool
}

// Colocated returns a handle that sits on its owning point.
func Colocated() Handle {
	return Handle{}
}

// At returns a handle at (x, y).
func At(x, y float32) Handle {
	return Handle{X: x, Y: y, Set: true}
}

// HandleAt returns a handle at p.
func HandleAt(p geom.Point) Handle {
	return At(float32(p.X), float32(p.Y))
}

// IsColocated reports whether h sits on its owning point.
func (h Handle) IsColocated() bool {
	return !h.Set
}

// Pos resolves the handle position for the point that owns it.
func (h Handle) Pos(owner Point) geom.Point {
	if !h.Set {
		return owner.Pos()
	}
	return geom.Pt(float64(h.X), float64(h.Y))
}

func (h Handle) String() string {
	if !h.Set {
		return "Colocated"
	}
	return fmt.Sprintf("At(%g, %g)", h.X, h.Y)
}

// PointType is the on-curve classification of a point.
type PointType int

const (
	// Move starts an open contour. Only the first point of an open contour
	// has this type.
	Move PointType = iota
	Curve
	QCurve
	Line
	OffCurve
)

func (t PointType) String() string {
	switch t {
	case Move:
		return "move"
	case Curve:
		return "curve"
	case QCurve:
		return "qcurve"
	case Line:
		return "line"
	case OffCurve:
		return "offcurve"
	}
	return fmt.Sprintf("PointType(%d)", int(t))
}

// Point is an on-curve point with its two handles. A is the outgoing
// handle (towards the next point), B the incoming one.
type Point struct {
	X, Y float32
	A, B Handle
	Type PointType
	Name string
}

// NewPoint returns a point at (x, y) with colocated handles.
func NewPoint(x, y float32, typ PointType) Point {
	return Point{X: x, Y: y, Type: typ}
}

// Pos returns the point position.
func (p Point) Pos() geom.Point {
	return geom.Pt(float64(p.X), float64(p.Y))
}

// SetPos moves the point to q without moving its handles.
func (p *Point) SetPos(q geom.Point) {
	p.X, p.Y = float32(q.X), float32(q.Y)
}

// APos returns the resolved outgoing handle position.
func (p Point) APos() geom.Point {
	return p.A.Pos(p)
}

// BPos returns the resolved incoming handle position.
func (p Point) BPos() geom.Point {
	return p.B.Pos(p)
}

// Translate moves the point and any set handles by d.
func (p *Point) Translate(d geom.Vec2) {
	p.SetPos(p.Pos().Add(d))
	if p.A.Set {
		p.A = HandleAt(geom.Pt(float64(p.A.X), float64(p.A.Y)).Add(d))
	}
	if p.B.Set {
		p.B = HandleAt(geom.Pt(float64(p.B.X), float64(p.B.Y)).Add(d))
	}
}

// Handle returns the handle selected by w.
func (p Point) Handle(w WhichHandle) Handle {
	switch w {
	case HandleA:
		return p.A
	case HandleB:
		return p.B
	}
	return Colocated()
}

// WhichHandle names one of a point's handles.
type WhichHandle int

const (
	Neither WhichHandle = iota
	HandleA
	HandleB
)

func (w WhichHandle) String() string {
	switch w {
	case HandleA:
		return "A"
	case HandleB:
		return "B"
	}
	return "neither"
}
