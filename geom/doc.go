// Package geom provides the 2D geometric primitives shared by the
// triangulator, the navigation-mesh data model, and the Polyanya search
// engine: points, exact-ish orientation and incircle predicates, segment
// intersection, and point-to-segment projection.
//
// What:
//
//   - Point: an (x, y) pair with vector arithmetic.
//   - Orient2D / InCircle: sign predicates used by the CDT to decide which
//     side of a line a point falls on, and whether a point lies inside the
//     circumcircle of a triangle. Both use a fast double-precision path
//     guarded by a conservative error bound, falling back to a
//     higher-precision (big.Float) recomputation only when the fast path's
//     result is too close to zero to trust.
//   - SegmentIntersect: the intersection point of two segments, if any.
//   - ProjectPointOnSegment: the closest point on a segment to a query point.
//
// Why:
//
//   - Every predicate the triangulator and the search engine rely on for
//     correctness bottoms out in these primitives; keeping them in one
//     package means there is exactly one place that needs to reason about
//     floating-point robustness.
//
// Complexity:
//
//   - All operations in this package are O(1).
//
// Errors:
//
//   - This package never returns errors; predicates return degenerate
//     zero values for degenerate input (e.g. SegmentIntersect returns
//     ok=false for parallel or non-crossing segments).
package geom
