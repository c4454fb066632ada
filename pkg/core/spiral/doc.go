// Package spiral packs area-proportional squares into a spiral.
//
// # Overview
//
// Given an ordered list of magnitudes, [Pack] places one axis-aligned square
// per magnitude so that square areas are proportional to the magnitudes.
// Alongside the squares it maintains an outline: a counter-clockwise polygon
// around every square placed so far.
//
// # Algorithm
//
// The first square sits at the origin and its four corners seed the outline.
// Each following square is attached to the outline vertex nearest the
// outline's centroid (the anchor):
//
//  1. The square's first edge runs from the anchor towards its successor.
//  2. The second edge runs towards the predecessor, rotated by 90° when the
//     predecessor lies behind the first edge.
//  3. If the resulting corner would fall inside the current outline the
//     second edge is flipped so the square grows outward.
//  4. The outline is spliced to absorb the new square. Vertices that
//     coincide with existing neighbours (within [geom.Epsilon]) are dropped.
//
// Re-deriving the anchor costs O(k) per square for an outline of k vertices,
// so a full run is O(n·k).
//
// # Overlap
//
// The anchor rule only looks at the outline vertex nearest the centroid. When
// that vertex sits in a notch shallower than the new square, the square is
// placed anyway: it overlaps a neighbour and the outline crosses itself. Pack
// neither detects nor repairs this. Small inputs and runs of equal values
// pack cleanly; longer descending runs often do not. Use [geom.IsSimple] on
// the outline to tell the two apart.
//
// # Ordering
//
// Squares are returned in input order. The spiral reads best when magnitudes
// are sorted largest first; sorting is the caller's job (see
// pipeline.Options.Sort).
//
// # Scale
//
// Side lengths are sqrt(value) / sqrt(maxValue): a square for maxValue itself
// has side 1. Passing a maxValue smaller than the largest value is allowed
// but yields sides larger than 1.
package spiral
