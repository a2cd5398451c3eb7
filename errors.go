package glyph

import (
	"errors"
	"fmt"
)

var (
	// ErrParamMismatch is returned when an operation's per-point parameter
	// count differs from its contour's point count.
	ErrParamMismatch = errors.New("glyph: operation parameter count does not match point count")

	// ErrInvalidDashPattern is returned for dash descriptions with an odd
	// number of entries or fewer than two.
	ErrInvalidDashPattern = errors.New("glyph: dash pattern must have an even number of entries, at least two")

	// ErrIndexOutOfRange is returned when a point index is outside a contour.
	ErrIndexOutOfRange = errors.New("glyph: point index out of range")

	// ErrEmptyContour is returned by operations that need at least one point.
	ErrEmptyContour = errors.New("glyph: empty contour")

	// ErrNotMergeable is returned when two contour ends cannot be merged.
	ErrNotMergeable = errors.New("glyph: contours cannot be merged")
)

// ParamMismatchError reports a contour whose operation parameters are out
// of step with its points. It unwraps to ErrParamMismatch.
type ParamMismatchError struct {
	// Contour is the index of the contour within its outline, or -1 when
	// the contour was built on its own.
	Contour int
	Points  int
	Params  int
}

func (e *ParamMismatchError) Error() string {
	return fmt.Sprintf("glyph: contour %d has %d points but %d operation parameters",
		e.Contour, e.Points, e.Params)
}

func (e *ParamMismatchError) Unwrap() error {
	return ErrParamMismatch
}
