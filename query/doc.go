// Package query answers the geometric questions interactive tools ask of
// an outline: which point is under the pointer, where the pointer is
// nearest a curve, where a drawn line crosses the outline, and where the
// Tunni point of a curve lies.
//
// Queries never fail loudly. Degenerate geometry (parallel handles,
// colocated points, empty outlines) yields ok == false, which callers
// treat as "nothing to do this frame".
//
// Screen-space tolerances are given at zoom 1 and divided by the zoom
// factor set with WithZoom, so hit targets keep a constant size on
// screen.
package query
