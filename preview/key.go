package preview

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"github.com/gogpu/glyph"
)

// keyWriter accumulates the bytes of a contour key.
type keyWriter struct {
	buf []byte
}

func (w *keyWriter) u64(v uint64)  { w.buf = binary.LittleEndian.AppendUint64(w.buf, v) }
func (w *keyWriter) int(v int)     { w.u64(uint64(int64(v))) }
func (w *keyWriter) f64(v float64) { w.u64(math.Float64bits(v)) }
func (w *keyWriter) f32(v float32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, math.Float32bits(v))
}

func (w *keyWriter) bool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}

func (w *keyWriter) str(v string) {
	w.int(len(v))
	w.buf = append(w.buf, v...)
}

func (w *keyWriter) handle(h glyph.Handle) {
	w.bool(h.Set)
	if h.Set {
		w.f32(h.X)
		w.f32(h.Y)
	}
}

func (w *keyWriter) contour(c *glyph.Contour) {
	w.int(int(c.Kind))
	w.int(c.Len())
	for _, p := range c.Points() {
		w.f32(p.X)
		w.f32(p.Y)
		w.handle(p.A)
		w.handle(p.B)
		w.int(int(p.Type))
		w.str(p.Name)
	}
	w.operation(c.Operation())
}

func (w *keyWriter) operation(op glyph.ContourOperation) {
	switch op := op.(type) {
	case nil:
		w.buf = append(w.buf, 'n')
	case *glyph.VWSContour:
		w.buf = append(w.buf, 'v')
		w.int(len(op.Handles))
		for _, h := range op.Handles {
			w.f64(h.LeftOffset)
			w.f64(h.RightOffset)
			w.f64(h.TangentOffset)
			w.int(int(h.Interpolation))
		}
		w.int(int(op.CapStart))
		w.int(int(op.CapEnd))
		w.int(int(op.Join))
		w.bool(op.RemoveInternal)
		w.bool(op.RemoveExternal)
	case *glyph.DashContour:
		w.buf = append(w.buf, 'd')
		w.f64(op.StrokeWidth)
		w.int(len(op.DashDesc))
		for _, v := range op.DashDesc {
			w.f64(v)
		}
		w.f64(op.Offset)
		w.bool(op.Cull != nil)
		if op.Cull != nil {
			w.f64(op.Cull.Width)
			w.f64(op.Cull.AreaCutoff)
		}
		w.bool(op.IncludeLastPath)
		w.int(int(op.Cap))
		w.int(int(op.Join))
	case *glyph.PAPContour:
		w.buf = append(w.buf, 'p')
		w.int(len(op.Pattern))
		for _, c := range op.Pattern {
			w.contour(c)
		}
		w.int(int(op.Copies))
		w.int(int(op.Subdivide))
		w.int(op.SubdivideN)
		w.f64(op.Spacing)
		w.f64(op.NormalOffset)
		w.f64(op.TangentOffset)
		w.f64(op.PatternScale[0])
		w.f64(op.PatternScale[1])
		for _, b := range []bool{op.Center, op.Simplify, op.PreventOverdraw,
			op.TwoPassCulling, op.ReverseCulling, op.ReversePath} {
			w.bool(b)
		}
		w.int(int(op.Stretch))
	}
}

// contourKey hashes everything Build reads from c.
func contourKey(c *glyph.Contour) uint64 {
	var w keyWriter
	w.contour(c)
	h := fnv.New64a()
	_, _ = h.Write(w.buf) // fnv.Write never returns an error
	return h.Sum64()
}
