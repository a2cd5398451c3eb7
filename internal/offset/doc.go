// Package offset expands a contour with per-vertex left and right widths
// into filled outlines. It backs the variable-width stroke operation.
//
// The algorithm follows the kurbo stroker: the centre line is flattened
// to the configured tolerance and two parallel paths are built while
// walking it.
//
//   - Forward path: offset to the left by the interpolated left width
//   - Backward path: offset to the right by the interpolated right width
//
// Unlike a uniform stroke the two sides carry independent widths, so
// joins and caps are sized per side. Closed input yields two closed
// rings (forward, then backward reversed). Open input yields one closed
// outline: forward, end cap, backward reversed, start cap.
//
// # Widths
//
// Each input segment carries the width at its start and end vertex.
// Widths are linearly interpolated along the segment by its local
// parameter, or held at the start value when Hold is set. A tangent
// offset slides the offset point along the direction of travel, scaled
// by that side's share of the larger width.
//
// # Usage
//
//	e := offset.NewExpander(offset.Style{
//	    StartCap: offset.CapRound,
//	    EndCap:   offset.CapRound,
//	    Join:     offset.JoinRound,
//	})
//	e.SetTolerance(0.1)
//	out := e.Expand(segs, closed)
package offset
