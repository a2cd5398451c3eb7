// Package geom provides the primitive curve math behind glyph contours:
// points and vectors, lines, quadratic and cubic Bezier segments,
// piecewise cubic curves and arc-length parameterization.
//
// All types are small values in float64 coordinates. Nothing in this
// package panics on degenerate input: coincident control points produce
// zero tangents, which callers treat as "no direction".
//
// Numerical work that is not specific to glyph editing (nearest point,
// line intersection, arc length, stroking) is delegated to
// honnef.co/go/curve through the conversions in this package.
package geom
