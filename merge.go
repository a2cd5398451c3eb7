package glyph

import (
	"fmt"
	"slices"

	"github.com/gogpu/glyph/geom"
)

// Endpoint says which end of an open contour a point is.
type Endpoint int

const (
	NotEndpoint Endpoint = iota
	StartPoint
	EndPoint
)

// EndpointOf reports whether point pi is the start or end of open contour ci.
func (o Outline) EndpointOf(ci, pi int) Endpoint {
	if ci < 0 || ci >= len(o) || !o[ci].IsOpen() {
		return NotEndpoint
	}
	switch pi {
	case 0:
		return StartPoint
	case o[ci].Len() - 1:
		return EndPoint
	}
	return NotEndpoint
}

// OverlappingEndpoint finds an open contour endpoint within radius of the
// dragged endpoint (ci, pi) that it can be merged with: a start with an
// end, of the same contour or another one. It returns the contour indices
// in Merge's argument order.
func (o Outline) OverlappingEndpoint(ci, pi int, radius float64) (end, start int, ok bool) {
	role := o.EndpointOf(ci, pi)
	if role == NotEndpoint {
		return 0, 0, false
	}
	pos := o[ci].points[pi].Pos()
	for cj, c := range o {
		if !c.IsOpen() {
			continue
		}
		target := c.Len() - 1
		if role == EndPoint {
			target = 0
		}
		if cj == ci && target == pi {
			continue
		}
		if c.points[target].Pos().Distance(pos) > radius {
			continue
		}
		if role == EndPoint {
			return ci, cj, true
		}
		return cj, ci, true
	}
	return 0, 0, false
}

// Merge joins the end of open contour end to the start of open contour
// start.
//
// When both are the same contour it is closed: the last point is dropped
// and its incoming handle moves to the first point. Otherwise the first
// point of start is dropped, its outgoing handle moves to the last point
// of end, the rest of start is appended to end, and start is removed.
func (o Outline) Merge(end, start int) (Outline, error) {
	if end < 0 || end >= len(o) || start < 0 || start >= len(o) {
		return o, fmt.Errorf("%w: contour index out of range", ErrNotMergeable)
	}
	ec, sc := o[end], o[start]
	if !ec.IsOpen() || !sc.IsOpen() {
		return o, fmt.Errorf("%w: contour is closed", ErrNotMergeable)
	}

	out := slices.Clone(o)
	if end == start {
		if ec.Len() < 2 {
			return o, fmt.Errorf("%w: contour has %d points", ErrNotMergeable, ec.Len())
		}
		c := ec.Clone()
		last := c.points[c.Len()-1]
		_ = c.RemovePoint(c.Len() - 1)
		c.points[0].B = last.B
		c.points[0].Type = onCurveType(c.Kind, true)
		out[end] = c
		return out, nil
	}

	c := ec.Clone()
	first := sc.points[0]
	c.points[c.Len()-1].A = first.A
	c.AppendContour(sc.Sub(1, sc.Len()-1))
	out[end] = c
	return slices.Delete(out, start, start+1), nil
}

// SnapEndpoint moves point pi of contour ci onto pos, carrying its handles.
func (o Outline) SnapEndpoint(ci, pi int, pos geom.Point) {
	if ci < 0 || ci >= len(o) {
		return
	}
	p, ok := o[ci].Point(pi)
	if !ok {
		return
	}
	p.Translate(pos.Sub(p.Pos()))
	_ = o[ci].SetPoint(pi, p)
}
