package offset

import (
	"math"
	"testing"

	"honnef.co/go/curve"

	"github.com/gogpu/glyph/geom"
)

func constant(w float64) Width {
	return Width{Left: w, Right: w}
}

func lineSeg(x0, y0, x1, y1, w float64) Segment {
	return Segment{
		Curve: geom.Line{P0: geom.Pt(x0, y0), P1: geom.Pt(x1, y1)}.Cubic(),
		Start: constant(w),
		End:   constant(w),
	}
}

func square(w float64) []Segment {
	return []Segment{
		lineSeg(0, 0, 100, 0, w),
		lineSeg(100, 0, 100, 100, w),
		lineSeg(100, 100, 0, 100, w),
		lineSeg(0, 100, 0, 0, w),
	}
}

func countKind(path curve.BezPath, kind curve.PathElementKind) int {
	n := 0
	for _, el := range path {
		if el.Kind == kind {
			n++
		}
	}
	return n
}

func hasPoint(path curve.BezPath, p geom.Point, eps float64) bool {
	for _, el := range path {
		if end, ok := el.EndPoint(); ok && math.Abs(end.X-p.X) < eps && math.Abs(end.Y-p.Y) < eps {
			return true
		}
	}
	return false
}

func TestNewExpander(t *testing.T) {
	e := NewExpander(Style{})
	if e.tolerance != 0.25 {
		t.Errorf("tolerance = %v, want 0.25", e.tolerance)
	}
	if e.style.MiterLimit != 4 {
		t.Errorf("MiterLimit = %v, want 4", e.style.MiterLimit)
	}
}

func TestExpander_SetTolerance(t *testing.T) {
	e := NewExpander(Style{})
	e.SetTolerance(0.1)
	if e.tolerance != 0.1 {
		t.Errorf("tolerance = %v, want 0.1", e.tolerance)
	}
	e.SetTolerance(-1)
	e.SetTolerance(0)
	if e.tolerance != 0.1 {
		t.Error("non-positive tolerance should be ignored")
	}
}

func TestExpander_Empty(t *testing.T) {
	if out := NewExpander(Style{}).Expand(nil, true); out != nil {
		t.Errorf("Expand(nil) = %v, want nil", out)
	}
}

func TestExpander_OpenLine(t *testing.T) {
	e := NewExpander(Style{StartCap: CapButt, EndCap: CapButt})
	out := e.Expand([]Segment{lineSeg(0, 0, 100, 0, 10)}, false)

	if got := countKind(out, curve.MoveToKind); got != 1 {
		t.Fatalf("MoveTo count = %d, want 1", got)
	}
	if got := countKind(out, curve.ClosePathKind); got != 1 {
		t.Errorf("ClosePath count = %d, want 1", got)
	}
	for _, p := range []geom.Point{geom.Pt(0, -10), geom.Pt(100, -10), geom.Pt(100, 10), geom.Pt(0, 10)} {
		if !hasPoint(out, p, 1e-9) {
			t.Errorf("outline missing corner %v", p)
		}
	}
}

func TestExpander_AsymmetricWidths(t *testing.T) {
	seg := Segment{
		Curve: geom.Line{P0: geom.Pt(0, 0), P1: geom.Pt(100, 0)}.Cubic(),
		Start: Width{Left: 5, Right: 20},
		End:   Width{Left: 15, Right: 0},
	}
	out := NewExpander(Style{}).Expand([]Segment{seg}, false)

	for _, p := range []geom.Point{geom.Pt(0, -5), geom.Pt(100, -15), geom.Pt(0, 20), geom.Pt(100, 0)} {
		if !hasPoint(out, p, 1e-9) {
			t.Errorf("outline missing %v", p)
		}
	}
}

func TestExpander_Hold(t *testing.T) {
	seg := lineSeg(0, 0, 100, 0, 10)
	seg.End = constant(30)
	seg.Hold = true
	out := NewExpander(Style{}).Expand([]Segment{seg}, false)
	if !hasPoint(out, geom.Pt(100, -10), 1e-9) {
		t.Error("held width should stay at the start value")
	}
}

func TestExpander_SquareCap(t *testing.T) {
	e := NewExpander(Style{StartCap: CapSquare, EndCap: CapSquare})
	out := e.Expand([]Segment{lineSeg(0, 0, 100, 0, 10)}, false)
	for _, p := range []geom.Point{geom.Pt(110, -10), geom.Pt(110, 10), geom.Pt(-10, 10), geom.Pt(-10, -10)} {
		if !hasPoint(out, p, 1e-9) {
			t.Errorf("square cap missing %v", p)
		}
	}
}

func TestExpander_RoundCap(t *testing.T) {
	e := NewExpander(Style{StartCap: CapRound, EndCap: CapRound})
	out := e.Expand([]Segment{lineSeg(0, 0, 100, 0, 10)}, false)
	if !hasPoint(out, geom.Pt(110, 0), 1e-9) {
		t.Error("round end cap should reach 10 past the end")
	}
	if !hasPoint(out, geom.Pt(-10, 0), 1e-9) {
		t.Error("round start cap should reach 10 before the start")
	}
}

func TestExpander_ClosedSquareRoundJoins(t *testing.T) {
	e := NewExpander(Style{Join: JoinRound})
	out := e.Expand(square(10), true)

	if got := countKind(out, curve.MoveToKind); got != 2 {
		t.Fatalf("MoveTo count = %d, want 2 rings", got)
	}
	if got := countKind(out, curve.ClosePathKind); got != 2 {
		t.Fatalf("ClosePath count = %d, want 2", got)
	}

	// Each outer corner arc starts and ends 10 units from the corner along
	// the adjacent edges' outward normals.
	corners := []struct {
		corner  geom.Point
		in, out geom.Vec2
	}{
		{geom.Pt(100, 0), geom.V2(0, -1), geom.V2(1, 0)},
		{geom.Pt(100, 100), geom.V2(1, 0), geom.V2(0, 1)},
		{geom.Pt(0, 100), geom.V2(0, 1), geom.V2(-1, 0)},
		{geom.Pt(0, 0), geom.V2(-1, 0), geom.V2(0, -1)},
	}
	for _, c := range corners {
		a := c.corner.Add(c.in.Mul(10))
		b := c.corner.Add(c.out.Mul(10))
		if !hasPoint(out, a, 1e-9) {
			t.Errorf("corner %v: missing arc start %v", c.corner, a)
		}
		if !hasPoint(out, b, 1e-9) {
			t.Errorf("corner %v: missing arc end %v", c.corner, b)
		}
	}

	// Arc midpoints sit on the circle of radius 10 around the corner.
	diag := geom.Pt(100+10/math.Sqrt2, -10/math.Sqrt2)
	found := false
	for _, el := range out {
		if el.Kind != curve.CubicToKind {
			continue
		}
		seg := geom.CubicBez{
			P0: geom.Pt(100, -10),
			P1: geom.FromCurvePoint(el.P0),
			P2: geom.FromCurvePoint(el.P1),
			P3: geom.FromCurvePoint(el.P2),
		}
		if el.P2.X == 110 && el.P2.Y == 0 {
			mid := seg.Eval(0.5)
			if math.Abs(mid.X-diag.X) < 1e-2 && math.Abs(mid.Y-diag.Y) < 1e-2 {
				found = true
			}
		}
	}
	if !found {
		t.Error("corner arc at (100,0) is not a quarter circle of radius 10")
	}
}

func TestExpander_MiterJoin(t *testing.T) {
	e := NewExpander(Style{Join: JoinMiter, MiterLimit: 4})
	out := e.Expand(square(10), true)
	if !hasPoint(out, geom.Pt(110, -10), 1e-9) {
		t.Error("miter join should reach the offset lines' intersection")
	}
}

func TestExpander_BevelJoin(t *testing.T) {
	e := NewExpander(Style{Join: JoinBevel})
	out := e.Expand(square(10), true)
	if hasPoint(out, geom.Pt(110, -10), 1e-9) {
		t.Error("bevel join should not produce a miter point")
	}
	if countKind(out, curve.CubicToKind) != 0 {
		t.Error("bevel join on straight edges should not produce curves")
	}
}

func TestExpander_CurveStaysAtWidth(t *testing.T) {
	const k = 0.5522847498307936
	arcSeg := Segment{
		Curve: geom.CubicBez{P0: geom.Pt(100, 0), P1: geom.Pt(100, 100*k), P2: geom.Pt(100*k, 100), P3: geom.Pt(0, 100)},
		Start: constant(10),
		End:   constant(10),
	}
	e := NewExpander(Style{})
	e.SetTolerance(0.05)
	out := e.Expand([]Segment{arcSeg}, false)

	for _, el := range out {
		if el.Kind != curve.LineToKind {
			continue
		}
		r := math.Hypot(el.P0.X, el.P0.Y)
		if math.Abs(r-110) > 0.5 && math.Abs(r-90) > 0.5 {
			t.Errorf("offset point %v at radius %v, want 90 or 110", el.P0, r)
		}
	}
}

func TestDistanceToLine(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b geom.Point
		want    float64
	}{
		{"perpendicular", geom.Pt(5, 5), geom.Pt(0, 0), geom.Pt(10, 0), 5},
		{"before start", geom.Pt(-3, 4), geom.Pt(0, 0), geom.Pt(10, 0), 5},
		{"degenerate", geom.Pt(3, 4), geom.Pt(0, 0), geom.Pt(0, 0), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := distanceToLine(tt.p, tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("distanceToLine = %v, want %v", got, tt.want)
			}
		})
	}
}
