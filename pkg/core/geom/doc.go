// Package geom provides the 2D vector and polygon primitives used by the
// spiral packer.
//
// # Vectors
//
// [Vec2] and [Vec3] are immutable value types. Every operation returns a new
// value and never modifies its operands:
//
//	d := geom.Normalize(geom.Sub(n1, v0))
//	v1 := geom.Add(v0, geom.Scale(d, size))
//
// # Polygons
//
// A polygon (an "outline") is an ordered []Vec2 whose first and last
// vertices are implicitly connected. The package computes its shoelace
// centroid ([Centroid]), signed area ([Area]), axis-aligned bounding box
// ([Extent]) and answers even-odd containment queries ([PointIsInside]).
//
// # Tolerance
//
// [Epsilon] is the single tolerance used for every coincidence test in this
// module: vertex merging, direction degeneracy and collinearity. Callers
// comparing geometric quantities must use it rather than a local constant.
package geom
