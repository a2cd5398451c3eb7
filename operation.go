package glyph

import (
	"errors"
)

// ContourOperation is a non-destructive effect attached to a contour. The
// base contour is never modified; Build derives the displayed outline.
//
// Implementations are *VWSContour, *DashContour and *PAPContour. A nil
// ContourOperation means no operation.
//
// Sub, Append, Insert and Remove keep per-point parameters in step with
// the contour's points. They return a new value and never panic:
// indices are clamped or ignored when out of range.
type ContourOperation interface {
	// Build expands c into the outline it displays as.
	Build(c *Contour, opts ...BuildOption) (Outline, error)

	// Sub keeps the parameters for points begin through end inclusive.
	Sub(begin, end int) ContourOperation

	// Append extends the parameters for n appended points taken from a
	// contour carrying other.
	Append(other ContourOperation, n int) ContourOperation

	// Insert adds a parameter for a point inserted after index idx.
	Insert(idx int) ContourOperation

	// Remove drops the parameter of point idx.
	Remove(idx int) ContourOperation

	// Clone returns a deep copy.
	Clone() ContourOperation

	// ParamLen returns the number of per-point parameters, or -1 when
	// the operation has none.
	ParamLen() int

	contourOperation()
}

// Build returns the outline c displays as. A contour without an
// operation builds to a copy of itself. Contours whose operation
// parameters are out of step with their points fail with a
// *ParamMismatchError.
func Build(c *Contour, opts ...BuildOption) (Outline, error) {
	if c == nil {
		return nil, ErrEmptyContour
	}
	if c.op == nil {
		return Outline{c.Clone()}, nil
	}
	return c.op.Build(c, opts...)
}

// BuildOutline builds every contour of o. Contours that fail to build are
// skipped and their errors joined; the remaining contours are still
// returned.
func BuildOutline(o Outline, opts ...BuildOption) (Outline, error) {
	var (
		out  Outline
		errs []error
	)
	for i, c := range o {
		built, err := Build(c, append(opts[:len(opts):len(opts)], WithContourIndex(i))...)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, built...)
	}
	return out, errors.Join(errs...)
}

// checkParams reports a mismatch between c's points and op's parameters.
func checkParams(c *Contour, op ContourOperation, o buildOptions) error {
	n := op.ParamLen()
	if n < 0 || n == c.Len() {
		return nil
	}
	Logger().Warn("glyph: operation parameter mismatch, skipping contour",
		"contour", o.index, "points", c.Len(), "params", n)
	return &ParamMismatchError{Contour: o.index, Points: c.Len(), Params: n}
}

// clampIndex clamps i to [0, n-1]. n must be positive.
func clampIndex(i, n int) int {
	return max(0, min(i, n-1))
}
