package glyph

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"honnef.co/go/curve"

	"github.com/gogpu/glyph/geom"
)

// DashCap is the end shape of each dash.
type DashCap int

const (
	DashCapButt DashCap = iota
	DashCapSquare
	DashCapRound
)

// DashCull removes dashes too small to matter.
type DashCull struct {
	// Width is the minimum on-length of a dash.
	Width float64
	// AreaCutoff is the minimum filled area of a stroked dash.
	AreaCutoff float64
}

// DashContour strokes dashes along a contour.
//
// DashDesc alternates on and off lengths: [10, 5] gives 10 units of
// stroke followed by a 5 unit gap.
type DashContour struct {
	StrokeWidth float64
	DashDesc    []float64
	// Offset is the starting distance into the pattern.
	Offset          float64
	Cull            *DashCull
	IncludeLastPath bool
	Cap             DashCap
	Join            JoinType
}

// NewDashContour returns a dash operation with a 10 unit stroke and a
// [10, 10] pattern.
func NewDashContour() *DashContour {
	return &DashContour{
		StrokeWidth: 10,
		DashDesc:    []float64{10, 10},
		Cap:         DashCapButt,
		Join:        JoinMiter,
	}
}

// ValidateDashDesc reports whether desc is a usable pattern: an even
// number of non-negative lengths, at least two, with a positive total.
func ValidateDashDesc(desc []float64) error {
	if len(desc) < 2 || len(desc)%2 != 0 {
		return fmt.Errorf("%w: got %d entries", ErrInvalidDashPattern, len(desc))
	}
	var total float64
	for _, l := range desc {
		if l < 0 || math.IsNaN(l) || math.IsInf(l, 0) {
			return fmt.Errorf("%w: bad length %v", ErrInvalidDashPattern, l)
		}
		total += l
	}
	if total <= 0 {
		return fmt.Errorf("%w: zero total length", ErrInvalidDashPattern)
	}
	return nil
}

// SetDashDesc replaces the pattern. Invalid patterns are rejected and the
// current pattern is kept.
func (d *DashContour) SetDashDesc(desc []float64) error {
	if err := ValidateDashDesc(desc); err != nil {
		return err
	}
	d.DashDesc = slices.Clone(desc)
	return nil
}

// PatternLength returns the length of one pattern cycle.
func (d *DashContour) PatternLength() float64 {
	var total float64
	for _, l := range d.DashDesc {
		total += l
	}
	return total
}

// NormalizedOffset returns the offset reduced to within one cycle.
func (d *DashContour) NormalizedOffset() float64 {
	period := d.PatternLength()
	if period <= 0 {
		return 0
	}
	off := math.Mod(d.Offset, period)
	if off < 0 {
		off += period
	}
	return off
}

// Scale multiplies the stroke width, pattern and offset by factor.
func (d *DashContour) Scale(factor float64) {
	if factor <= 0 {
		return
	}
	d.StrokeWidth *= factor
	d.Offset *= factor
	for i := range d.DashDesc {
		d.DashDesc[i] *= factor
	}
}

func (*DashContour) contourOperation() {}

// ParamLen returns -1: dashes have no per-point parameters.
func (d *DashContour) ParamLen() int { return -1 }

// Clone returns a deep copy.
func (d *DashContour) Clone() ContourOperation {
	out := *d
	out.DashDesc = slices.Clone(d.DashDesc)
	if d.Cull != nil {
		cull := *d.Cull
		out.Cull = &cull
	}
	return &out
}

func (d *DashContour) Sub(int, int) ContourOperation                 { return d.Clone() }
func (d *DashContour) Append(ContourOperation, int) ContourOperation { return d.Clone() }
func (d *DashContour) Insert(int) ContourOperation                   { return d.Clone() }
func (d *DashContour) Remove(int) ContourOperation                   { return d.Clone() }

// Build strokes each dash of c. An invalid pattern leaves the contour
// undashed.
func (d *DashContour) Build(c *Contour, opts ...BuildOption) (Outline, error) {
	o := newBuildOptions(opts)
	if err := ValidateDashDesc(d.DashDesc); err != nil {
		Logger().Warn("glyph: invalid dash pattern, contour left undashed",
			"contour", o.index, "pattern", d.DashDesc, "error", err)
		return Outline{c.Clone()}, nil
	}
	pw := c.ToCubic().Piecewise()
	if pw.Len() == 0 || d.StrokeWidth <= 0 {
		return Outline{}, nil
	}

	pieces := subpaths(curve.Dash(pw.Elements().Elements(), d.Offset, d.DashDesc))
	if c.IsOpen() {
		pieces = fromStart(pieces, pw.Segs[0].P0)
		if len(pieces) > 0 && !d.IncludeLastPath && d.endsMidDash(pw.Length()) {
			pieces = pieces[:len(pieces)-1]
		}
	}

	style := curve.Stroke{
		Width:      d.StrokeWidth,
		Join:       d.Join.curveJoin(),
		MiterLimit: 4,
		StartCap:   d.Cap.curveCap(),
		EndCap:     d.Cap.curveCap(),
	}

	var out Outline
	for _, piece := range pieces {
		if d.Cull != nil && piece.Arclen(o.accuracy) < d.Cull.Width {
			continue
		}
		stroked := curve.BezPath(slices.Collect(curve.StrokePath(
			piece.Elements(), style, curve.StrokeOpts{OptLevel: curve.Subdivide}, o.tolerance)))
		dash := ContoursFromPath(stroked)
		if d.Cull != nil && d.Cull.AreaCutoff > 0 && dash.Area() < d.Cull.AreaCutoff {
			continue
		}
		out = append(out, dash...)
	}
	return out, nil
}

// endsMidDash reports whether a path of the given length stops inside an
// on interval, leaving a shortened last dash.
func (d *DashContour) endsMidDash(length float64) bool {
	const eps = 1e-9
	period := d.PatternLength()
	phase := math.Mod(d.NormalizedOffset()+length, period)
	for i, l := range d.DashDesc {
		if phase < l-eps {
			return i%2 == 0 && phase > eps
		}
		phase -= l
	}
	return false
}

// subpaths splits a path at each MoveTo.
func subpaths(seq iter.Seq[curve.PathElement]) []curve.BezPath {
	var (
		out []curve.BezPath
		cur curve.BezPath
	)
	for el := range seq {
		if el.Kind == curve.MoveToKind {
			if len(cur) > 1 {
				out = append(out, cur)
			}
			cur = nil
		}
		cur = append(cur, el)
	}
	if len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}

// fromStart rotates pieces so the dash starting at start comes first.
// curve.Dash holds back the first dash of a subpath until the end.
func fromStart(pieces []curve.BezPath, start geom.Point) []curve.BezPath {
	for i, p := range pieces {
		if i > 0 && geom.FromCurvePoint(p[0].P0).Distance(start) < 1e-9 {
			return append(slices.Clone(pieces[i:]), pieces[:i]...)
		}
	}
	return pieces
}

func (c DashCap) curveCap() curve.Cap {
	switch c {
	case DashCapSquare:
		return curve.SquareCap
	case DashCapRound:
		return curve.RoundCap
	}
	return curve.ButtCap
}

func (j JoinType) curveJoin() curve.Join {
	switch j {
	case JoinRound:
		return curve.RoundJoin
	case JoinBevel:
		return curve.BevelJoin
	}
	return curve.MiterJoin
}
