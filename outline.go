package glyph

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gogpu/glyph/geom"
)

// Outline is an ordered list of contours.
type Outline []*Contour

// Clone returns a deep copy.
func (o Outline) Clone() Outline {
	if o == nil {
		return nil
	}
	out := make(Outline, len(o))
	for i, c := range o {
		out[i] = c.Clone()
	}
	return out
}

// Bounds returns the union of the contours' bounds.
func (o Outline) Bounds() geom.Rect {
	var (
		r     geom.Rect
		found bool
	)
	for _, c := range o {
		if c.Len() == 0 {
			continue
		}
		b := c.Bounds()
		if !found {
			r, found = b, true
			continue
		}
		r = r.Union(b)
	}
	return r
}

// Area returns the sum of the absolute areas of the closed contours.
func (o Outline) Area() float64 {
	var a float64
	for _, c := range o {
		if c.IsClosed() {
			a += math.Abs(c.Piecewise().SignedArea())
		}
	}
	return a
}

// PointCount returns the number of points in all contours.
func (o Outline) PointCount() int {
	n := 0
	for _, c := range o {
		n += c.Len()
	}
	return n
}

// LayerOperation is the boolean operation a layer applies to the layers
// below it.
type LayerOperation int

const (
	Difference LayerOperation = iota
	Union
	Intersect
	XOR
)

func (op LayerOperation) String() string {
	switch op {
	case Difference:
		return "difference"
	case Union:
		return "union"
	case Intersect:
		return "intersect"
	case XOR:
		return "xor"
	}
	return fmt.Sprintf("LayerOperation(%d)", int(op))
}

// LayerOp is an optional LayerOperation.
type LayerOp struct {
	Op  LayerOperation
	Set bool
}

// WithLayerOp returns a set LayerOp.
func WithLayerOp(op LayerOperation) LayerOp {
	return LayerOp{Op: op, Set: true}
}

// NoLayerOp returns an unset LayerOp.
func NoLayerOp() LayerOp {
	return LayerOp{}
}

// Layer is one drawing layer of a glyph.
type Layer struct {
	Name      string
	Visible   bool
	Color     *color.RGBA
	Outline   Outline
	Operation LayerOp
}

// Clone returns a deep copy.
func (l *Layer) Clone() *Layer {
	out := *l
	out.Outline = l.Outline.Clone()
	if l.Color != nil {
		c := *l.Color
		out.Color = &c
	}
	return &out
}

// Glyph is a named set of layers.
type Glyph struct {
	Name    string
	Unicode []rune
	Width   float64
	Layers  []*Layer
}

// Clone returns a deep copy.
func (g *Glyph) Clone() *Glyph {
	out := *g
	out.Unicode = append([]rune(nil), g.Unicode...)
	out.Layers = make([]*Layer, len(g.Layers))
	for i, l := range g.Layers {
		out.Layers[i] = l.Clone()
	}
	return &out
}
