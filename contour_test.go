package glyph

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/glyph/geom"
)

const epsilon = 1e-9

func squareContour() *Contour {
	return NewContour(Cubic, []Point{
		NewPoint(0, 0, Line),
		NewPoint(100, 0, Line),
		NewPoint(100, 100, Line),
		NewPoint(0, 100, Line),
	})
}

func openLine() *Contour {
	return NewContour(Cubic, []Point{
		NewPoint(0, 0, Move),
		NewPoint(100, 0, Line),
		NewPoint(200, 0, Line),
	})
}

// numberedVWS returns a stroke whose handle i has left offset i+1.
func numberedVWS(n int) *VWSContour {
	v := NewVWSContour(n)
	for i := range v.Handles {
		v.Handles[i].LeftOffset = float64(i + 1)
	}
	return v
}

func leftOffsets(c *Contour) []float64 {
	v, ok := c.Operation().(*VWSContour)
	if !ok {
		return nil
	}
	out := make([]float64, len(v.Handles))
	for i, h := range v.Handles {
		out[i] = h.LeftOffset
	}
	return out
}

func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > epsilon {
			return false
		}
	}
	return true
}

func TestContour_IsOpen(t *testing.T) {
	tests := []struct {
		name string
		c    *Contour
		open bool
	}{
		{"closed square", squareContour(), false},
		{"open line", openLine(), true},
		{"empty", NewContour(Cubic, nil), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.IsOpen(); got != tt.open {
				t.Errorf("IsOpen() = %v, want %v", got, tt.open)
			}
			if got := tt.c.IsClosed(); got == tt.open {
				t.Errorf("IsClosed() = %v, want %v", got, !tt.open)
			}
		})
	}
}

func TestContour_SegmentCount(t *testing.T) {
	tests := []struct {
		name string
		c    *Contour
		want int
	}{
		{"closed square", squareContour(), 4},
		{"open line", openLine(), 2},
		{"empty", NewContour(Cubic, nil), 0},
		{"single open point", NewContour(Cubic, []Point{NewPoint(1, 1, Move)}), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.SegmentCount(); got != tt.want {
				t.Errorf("SegmentCount() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestContour_Piecewise(t *testing.T) {
	pw := squareContour().Piecewise()
	if pw.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", pw.Len())
	}
	if !pw.IsClosed() {
		t.Error("square piecewise should be closed")
	}
	for i, s := range pw.Segs {
		if !s.IsLine() {
			t.Errorf("segment %d should be straight with colocated handles", i)
		}
	}
	if last := pw.Segs[3].P3; !last.Approx(geom.Pt(0, 0), epsilon) {
		t.Errorf("closing segment ends at %v, want (0, 0)", last)
	}
	if a := pw.SignedArea(); math.Abs(a-10000) > epsilon {
		t.Errorf("SignedArea() = %v, want 10000", a)
	}
}

func TestContour_Segment(t *testing.T) {
	c := NewContour(Cubic, []Point{
		{X: 0, Y: 0, A: At(0, 50), Type: Move},
		{X: 100, Y: 0, B: At(100, 50), Type: Curve},
	})
	s, ok := c.Segment(0)
	if !ok {
		t.Fatal("Segment(0) not found")
	}
	want := geom.CubicBez{P0: geom.Pt(0, 0), P1: geom.Pt(0, 50), P2: geom.Pt(100, 50), P3: geom.Pt(100, 0)}
	if s != want {
		t.Errorf("Segment(0) = %v, want %v", s, want)
	}
	if _, ok := c.Segment(1); ok {
		t.Error("open contour has no closing segment")
	}
	if _, ok := c.Segment(-1); ok {
		t.Error("Segment(-1) should not exist")
	}
}

func TestContour_ToCubicQuad(t *testing.T) {
	c := NewContour(Quad, []Point{
		{X: 0, Y: 0, A: At(50, 100), Type: Move},
		{X: 100, Y: 0, Type: QCurve},
	})
	cub := c.ToCubic()
	if cub.Kind != Cubic {
		t.Fatalf("Kind = %v, want cubic", cub.Kind)
	}
	p0, _ := cub.Point(0)
	p1, _ := cub.Point(1)
	if !p0.APos().Approx(geom.Pt(100.0/3, 200.0/3), 1e-3) {
		t.Errorf("A = %v, want (33.3, 66.7)", p0.APos())
	}
	if !p1.BPos().Approx(geom.Pt(200.0/3, 200.0/3), 1e-3) {
		t.Errorf("B = %v, want (66.7, 66.7)", p1.BPos())
	}
	if p1.Type != Curve {
		t.Errorf("Type = %v, want curve", p1.Type)
	}

	q, _ := c.QuadSegment(0)
	s, _ := c.Segment(0)
	for _, tt := range []float64{0, 0.25, 0.5, 0.9} {
		if !q.Eval(tt).Approx(s.Eval(tt), 1e-9) {
			t.Errorf("raised segment differs at t=%v", tt)
		}
	}
}

func TestContour_Bounds(t *testing.T) {
	b := squareContour().Bounds()
	if !b.Min.Approx(geom.Pt(0, 0), epsilon) || !b.Max.Approx(geom.Pt(100, 100), epsilon) {
		t.Errorf("Bounds() = %v, want (0,0)-(100,100)", b)
	}
}

func TestContour_SetOperationMismatch(t *testing.T) {
	c := squareContour()
	err := c.SetOperation(NewVWSContour(3))
	var pm *ParamMismatchError
	if !errors.As(err, &pm) {
		t.Fatalf("SetOperation() = %v, want *ParamMismatchError", err)
	}
	if pm.Points != 4 || pm.Params != 3 {
		t.Errorf("mismatch = %d points, %d params; want 4, 3", pm.Points, pm.Params)
	}
	if !errors.Is(err, ErrParamMismatch) {
		t.Error("error should unwrap to ErrParamMismatch")
	}
	if c.Operation() != nil {
		t.Error("rejected operation should not be attached")
	}
}

func TestContour_InsertPoint(t *testing.T) {
	c := squareContour()
	if err := c.SetOperation(numberedVWS(4)); err != nil {
		t.Fatal(err)
	}
	c.InsertPoint(2, NewPoint(100, 50, Line))

	if c.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", c.Len())
	}
	if got, want := leftOffsets(c), []float64{1, 2, 2, 3, 4}; !floatsEqual(got, want) {
		t.Errorf("handles = %v, want %v", got, want)
	}
	p, _ := c.Point(2)
	if p.X != 100 || p.Y != 50 {
		t.Errorf("Point(2) = %v, want (100, 50)", p)
	}
}

func TestContour_InsertPointAtOpenStart(t *testing.T) {
	c := openLine()
	c.InsertPoint(-5, NewPoint(-100, 0, Line))

	first, _ := c.First()
	second, _ := c.Point(1)
	if first.Type != Move {
		t.Errorf("first type = %v, want move", first.Type)
	}
	if second.Type != Line {
		t.Errorf("old first type = %v, want line", second.Type)
	}
	if !c.IsOpen() {
		t.Error("contour should stay open")
	}
}

func TestContour_RemovePoint(t *testing.T) {
	c := openLine()
	if err := c.SetOperation(numberedVWS(3)); err != nil {
		t.Fatal(err)
	}
	if err := c.RemovePoint(0); err != nil {
		t.Fatal(err)
	}
	if got, want := leftOffsets(c), []float64{2, 3}; !floatsEqual(got, want) {
		t.Errorf("handles = %v, want %v", got, want)
	}
	if !c.IsOpen() {
		t.Error("removing the start of an open contour should keep it open")
	}

	for _, idx := range []int{-1, 2, 100} {
		if err := c.RemovePoint(idx); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("RemovePoint(%d) = %v, want ErrIndexOutOfRange", idx, err)
		}
	}
	if c.Len() != 2 || c.Operation().ParamLen() != 2 {
		t.Error("failed removal should not change the contour")
	}
}

func TestContour_AppendContour(t *testing.T) {
	t.Run("same operation concatenates", func(t *testing.T) {
		a, b := openLine(), openLine()
		_ = a.SetOperation(numberedVWS(3))
		bv := numberedVWS(3)
		for i := range bv.Handles {
			bv.Handles[i].LeftOffset += 10
		}
		_ = b.SetOperation(bv)
		a.AppendContour(b)
		if got, want := leftOffsets(a), []float64{1, 2, 3, 11, 12, 13}; !floatsEqual(got, want) {
			t.Errorf("handles = %v, want %v", got, want)
		}
		for i := 1; i < a.Len(); i++ {
			if p, _ := a.Point(i); p.Type == Move {
				t.Errorf("point %d keeps type move", i)
			}
		}
	})

	t.Run("other operation repeats last", func(t *testing.T) {
		a, b := openLine(), openLine()
		_ = a.SetOperation(numberedVWS(3))
		_ = b.SetOperation(NewDashContour())
		a.AppendContour(b)
		if got, want := leftOffsets(a), []float64{1, 2, 3, 3, 3, 3}; !floatsEqual(got, want) {
			t.Errorf("handles = %v, want %v", got, want)
		}
	})

	t.Run("empty stroke uses default", func(t *testing.T) {
		v := NewVWSContour(0).Append(nil, 2).(*VWSContour)
		if len(v.Handles) != 2 || v.Handles[0] != DefaultVWSHandle() {
			t.Errorf("handles = %v, want two defaults", v.Handles)
		}
	})
}

func TestContour_Sub(t *testing.T) {
	c := squareContour()
	_ = c.SetOperation(numberedVWS(4))

	tests := []struct {
		name       string
		begin, end int
		wantLen    int
		wantLeft   []float64
	}{
		{"middle", 1, 2, 2, []float64{2, 3}},
		{"clamped low", -3, 1, 2, []float64{1, 2}},
		{"clamped high", 2, 10, 2, []float64{3, 4}},
		{"empty", 3, 1, 0, []float64{}},
		{"out of range", 5, 10, 0, []float64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := c.Sub(tt.begin, tt.end)
			if sub.Len() != tt.wantLen {
				t.Fatalf("Len() = %d, want %d", sub.Len(), tt.wantLen)
			}
			if got := leftOffsets(sub); !floatsEqual(got, tt.wantLeft) {
				t.Errorf("handles = %v, want %v", got, tt.wantLeft)
			}
			if tt.wantLen > 0 && !sub.IsOpen() {
				t.Error("sub contour should be open")
			}
		})
	}
}

func TestContour_SetPoints(t *testing.T) {
	c := squareContour()
	_ = c.SetOperation(numberedVWS(4))

	c.SetPoints(c.Points()[:2])
	if got, want := leftOffsets(c), []float64{1, 2}; !floatsEqual(got, want) {
		t.Errorf("after shrink handles = %v, want %v", got, want)
	}

	c.SetPoints(squareContour().Points())
	if got, want := leftOffsets(c), []float64{1, 2, 2, 2}; !floatsEqual(got, want) {
		t.Errorf("after grow handles = %v, want %v", got, want)
	}
}

func TestContour_CloneIsDeep(t *testing.T) {
	c := squareContour()
	_ = c.SetOperation(numberedVWS(4))
	cl := c.Clone()

	_ = cl.SetPoint(0, NewPoint(5, 5, Line))
	cl.Operation().(*VWSContour).Handles[0].LeftOffset = 99

	if p, _ := c.Point(0); p.X != 0 {
		t.Error("clone shares points with the original")
	}
	if leftOffsets(c)[0] != 1 {
		t.Error("clone shares operation parameters with the original")
	}
}

func TestContour_OpenClose(t *testing.T) {
	c := openLine()
	c.Close()
	if c.IsOpen() {
		t.Fatal("Close() should close the contour")
	}
	c.Open()
	if !c.IsOpen() {
		t.Fatal("Open() should open the contour")
	}
}

func TestHandle(t *testing.T) {
	p := Point{X: 10, Y: 20, A: At(30, 40)}
	if !p.APos().Approx(geom.Pt(30, 40), epsilon) {
		t.Errorf("APos() = %v, want (30, 40)", p.APos())
	}
	if !p.BPos().Approx(geom.Pt(10, 20), epsilon) {
		t.Errorf("colocated BPos() = %v, want (10, 20)", p.BPos())
	}
	if !p.B.IsColocated() || p.A.IsColocated() {
		t.Error("IsColocated() mismatch")
	}

	p.Translate(geom.V2(1, 2))
	if p.X != 11 || p.Y != 22 || p.A.X != 31 || p.A.Y != 42 {
		t.Errorf("Translate() = %v", p)
	}
	if p.B.Set {
		t.Error("Translate() should keep colocated handles colocated")
	}
	if p.Handle(HandleA) != p.A || p.Handle(HandleB) != p.B {
		t.Error("Handle() returned the wrong handle")
	}
}
