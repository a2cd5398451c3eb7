// Package boolean combines the layers of a glyph.
//
// Layers form groups: a layer without an operation starts a group and
// every following layer with an operation is combined into it with
// union, difference, intersection or xor. Combine returns one layer per
// group.
//
// Curves are flattened to polygons before clipping, so combined groups
// come back as straight-line contours. Groups with nothing combined into
// them are returned unchanged. Each layer fills by the nonzero winding
// rule before it is clipped.
package boolean
