package glyph

// Reverse returns the contour traversed in the opposite direction. A
// closed contour keeps its first point first. Handles swap roles, and
// variable-width strokes swap sides so the built outline is unchanged.
func (c *Contour) Reverse() *Contour {
	n := len(c.points)
	out := &Contour{Kind: c.Kind, points: make([]Point, n)}
	open := c.IsOpen()
	for i, p := range c.points {
		j := n - 1 - i
		if !open {
			j = (n - i) % n
		}
		q := p
		q.A, q.B = p.B, p.A
		q.Type = onCurveType(c.Kind, p.A.Set)
		out.points[j] = q
	}
	if open {
		out.points[0].Type = Move
	}

	switch op := c.op.(type) {
	case nil:
	case *VWSContour:
		out.op = op.reversed(!open)
	default:
		out.op = op.Clone()
	}
	return out
}

// Reverse returns the outline with every contour reversed.
func (o Outline) Reverse() Outline {
	out := make(Outline, len(o))
	for i, c := range o {
		out[i] = c.Reverse()
	}
	return out
}
