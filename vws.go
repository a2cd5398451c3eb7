package glyph

import (
	"math"
	"slices"

	"github.com/gogpu/glyph/internal/offset"
)

// Interpolation controls how a VWS width changes between two points.
type Interpolation int

const (
	// InterpolationNull holds the start point's width for the whole segment.
	InterpolationNull Interpolation = iota
	// InterpolationLinear blends linearly between the two points' widths.
	InterpolationLinear
)

// CapType is the end shape of an open VWS contour.
type CapType int

const (
	CapRound CapType = iota
	CapSquare
	CapButt
	// CapCustom caps are drawn as CapButt.
	CapCustom
)

// JoinType is the corner shape of a stroke.
type JoinType int

const (
	JoinRound JoinType = iota
	JoinMiter
	JoinBevel
)

// VWSHandle is the stroke width at one point.
type VWSHandle struct {
	LeftOffset    float64
	RightOffset   float64
	TangentOffset float64
	Interpolation Interpolation
}

// DefaultVWSHandle returns the handle given to points that have none.
func DefaultVWSHandle() VWSHandle {
	return VWSHandle{LeftOffset: 10, RightOffset: 10, Interpolation: InterpolationLinear}
}

func (h VWSHandle) width() offset.Width {
	return offset.Width{Left: h.LeftOffset, Right: h.RightOffset, Tangent: h.TangentOffset}
}

// VWSContour is a variable-width stroke: one handle per point.
type VWSContour struct {
	Handles        []VWSHandle
	CapStart       CapType
	CapEnd         CapType
	Join           JoinType
	RemoveInternal bool
	RemoveExternal bool
}

// NewVWSContour returns a stroke with n default handles and round caps
// and joins.
func NewVWSContour(n int) *VWSContour {
	v := &VWSContour{Handles: make([]VWSHandle, max(n, 0))}
	for i := range v.Handles {
		v.Handles[i] = DefaultVWSHandle()
	}
	return v
}

func (*VWSContour) contourOperation() {}

// ParamLen returns the number of handles.
func (v *VWSContour) ParamLen() int {
	return len(v.Handles)
}

// Clone returns a deep copy.
func (v *VWSContour) Clone() ContourOperation {
	return v.clone()
}

func (v *VWSContour) clone() *VWSContour {
	out := *v
	out.Handles = slices.Clone(v.Handles)
	return &out
}

// Sub keeps handles begin through end inclusive.
func (v *VWSContour) Sub(begin, end int) ContourOperation {
	out := v.clone()
	begin = max(begin, 0)
	end = min(end, len(v.Handles)-1)
	if begin > end {
		out.Handles = nil
		return out
	}
	out.Handles = slices.Clone(v.Handles[begin : end+1])
	return out
}

// Append concatenates another stroke's handles. For any other operation
// the last handle (or the default handle) is repeated n times.
func (v *VWSContour) Append(other ContourOperation, n int) ContourOperation {
	out := v.clone()
	if o, ok := other.(*VWSContour); ok && o != nil {
		out.Handles = append(out.Handles, o.Handles...)
		return out
	}
	h := DefaultVWSHandle()
	if len(v.Handles) > 0 {
		h = v.Handles[len(v.Handles)-1]
	}
	for range max(n, 0) {
		out.Handles = append(out.Handles, h)
	}
	return out
}

// Insert duplicates handle idx in place.
func (v *VWSContour) Insert(idx int) ContourOperation {
	out := v.clone()
	if len(v.Handles) == 0 {
		out.Handles = []VWSHandle{DefaultVWSHandle()}
		return out
	}
	idx = clampIndex(idx, len(v.Handles))
	out.Handles = slices.Insert(out.Handles, idx, v.Handles[idx])
	return out
}

// Remove drops handle idx when it exists.
func (v *VWSContour) Remove(idx int) ContourOperation {
	out := v.clone()
	if idx >= 0 && idx < len(v.Handles) {
		out.Handles = slices.Delete(out.Handles, idx, idx+1)
	}
	return out
}

// reversed mirrors the handles for a contour walked backwards: the order
// follows the points and the two sides swap.
func (v *VWSContour) reversed(closed bool) *VWSContour {
	out := v.clone()
	n := len(out.Handles)
	for i, h := range v.Handles {
		j := n - 1 - i
		if closed {
			j = (n - i) % n
		}
		out.Handles[j] = VWSHandle{
			LeftOffset:    h.RightOffset,
			RightOffset:   h.LeftOffset,
			TangentOffset: -h.TangentOffset,
			Interpolation: h.Interpolation,
		}
	}
	out.CapStart, out.CapEnd = v.CapEnd, v.CapStart
	return out
}

// Build strokes c with the widths given by its handles. Open contours
// give one closed outline; closed contours give an outer and an inner
// ring, either of which can be dropped.
func (v *VWSContour) Build(c *Contour, opts ...BuildOption) (Outline, error) {
	o := newBuildOptions(opts)
	if err := checkParams(c, v, o); err != nil {
		return nil, err
	}
	base := c.ToCubic()
	n := base.Len()
	if n < 2 {
		return Outline{}, nil
	}

	segs := make([]offset.Segment, 0, base.SegmentCount())
	for i := 0; i < base.SegmentCount(); i++ {
		cur, _ := base.Segment(i)
		h0, h1 := v.Handles[i], v.Handles[(i+1)%n]
		segs = append(segs, offset.Segment{
			Curve: cur,
			Start: h0.width(),
			End:   h1.width(),
			Hold:  h0.Interpolation == InterpolationNull,
		})
	}

	e := offset.NewExpander(offset.Style{
		StartCap: v.CapStart.offsetCap(),
		EndCap:   v.CapEnd.offsetCap(),
		Join:     v.Join.offsetJoin(),
	})
	e.SetTolerance(o.tolerance)
	out := ContoursFromPath(e.Expand(segs, base.IsClosed()))

	if base.IsClosed() && len(out) == 2 && (v.RemoveInternal || v.RemoveExternal) {
		outer, inner := out[0], out[1]
		if math.Abs(inner.Piecewise().SignedArea()) > math.Abs(outer.Piecewise().SignedArea()) {
			outer, inner = inner, outer
		}
		out = out[:0]
		if !v.RemoveExternal {
			out = append(out, outer)
		}
		if !v.RemoveInternal {
			out = append(out, inner)
		}
	}
	return out, nil
}

func (c CapType) offsetCap() offset.Cap {
	switch c {
	case CapRound:
		return offset.CapRound
	case CapSquare:
		return offset.CapSquare
	}
	return offset.CapButt
}

func (j JoinType) offsetJoin() offset.Join {
	switch j {
	case JoinRound:
		return offset.JoinRound
	case JoinBevel:
		return offset.JoinBevel
	}
	return offset.JoinMiter
}
