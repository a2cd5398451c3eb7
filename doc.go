// Package glyph is the contour geometry engine of a vector glyph editor.
//
// # Overview
//
// A glyph is a stack of layers, each holding an Outline: a list of
// contours. A Contour is an ordered list of on-curve points, each with an
// outgoing handle A and an incoming handle B. Segment i of a cubic
// contour is the Bézier curve from point i through i.A and (i+1).B to
// point i+1. A contour is open when its first point has type Move.
//
// # Contour operations
//
// A contour may carry a non-destructive ContourOperation that turns it
// into a different outline when built:
//
//   - VWSContour strokes the contour with per-point left and right widths
//   - DashContour strokes dashes along it
//   - PAPContour bends copies of a pattern along it
//
// Operations with per-point parameters are kept in step with the
// contour's points by every Contour mutation (InsertPoint, RemovePoint,
// AppendContour, Sub). A contour whose parameters fall out of step is
// reported with a *ParamMismatchError and skipped.
//
// # Quick Start
//
//	c := glyph.Circle(0, 0, 100, glyph.CounterClockwise)
//	if err := c.SetOperation(glyph.NewVWSContour(c.Len())); err != nil {
//	    return err
//	}
//	out, err := glyph.Build(c, glyph.WithTolerance(0.1))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(out.SVG())
//
// # Related packages
//
//   - geom: float64 curve primitives and arc-length tables
//   - boolean: combining layers with union, difference, intersection, xor
//   - query: nearest point, cutting, Tunni lines, hit testing
//   - preview: memoized rebuilding of a glyph's displayed outline
//   - fontimport: seeding glyphs from TrueType and OpenType fonts
//
// # Coordinate System
//
// Coordinates are font units with y pointing up. Counter-clockwise
// contours have positive signed area.
package glyph
