// Package cdt implements an incremental constrained Delaunay
// triangulation: point insertion via hint-walk location and Lawson
// flipping, constraint insertion via Anglada's "flip the crossing edges"
// algorithm, optional constraint splitting at intersection points, bulk
// loading, and Ruppert-style quality refinement.
//
// What:
//
//   - Triangulation: the mutable incremental CDT. Insert/AddConstraint/
//     AddConstraintAndSplit/BulkLoad build it up; Refine improves
//     triangle quality; Triangles/Points expose the result for
//     package triangulate to turn into a navmesh.Layer.
//
// Why:
//
//   - This is the from-points-and-obstacles mesh builder spec.md §4.3
//     requires: Insert and the flip-based legalization it triggers are
//     the textbook incremental CDT algorithm (Lawson 1977, Anglada 1997
//     for constraint insertion); Refine follows Ruppert 1995.
//
// Complexity:
//
//   - Insert: expected O(log n) point location via hint-walk on
//     reasonably-distributed inputs, worst-case O(n); legalization O(1)
//     amortized flips per insertion for random order.
//   - AddConstraint: O(k·T) where k is the number of edges the segment
//     crosses and T the number of triangles: each flip step scans every
//     triangle to find the next crossing edge.
//   - BulkLoad: O(n log n) for the angle sort plus O(n) expected
//     insertions.
//   - Refine: O(m·T) where m is the number of Steiner points added,
//     bounded by MaxAdditionalVertices: each step scans every triangle
//     for the worst one.
//
// Errors:
//
//   - ErrNaN / ErrTooLarge: coordinate validation on Insert-like calls.
//     ErrTooSmall is declared beside them, but no call in this package
//     returns it.
//   - ErrOverlappingConstraint: AddConstraint (not AddConstraintAndSplit)
//     was asked to create a constraint crossing an existing one.
package cdt
