// Package meshops provides mesh cleanup and merging operations over
// navmesh.Mesh: reordering a vertex's polygon fan into CCW order with
// correct obstacle markers, dropping vertices no polygon references
// anymore, and merging adjacent polygons into larger convex ones.
//
// What:
//
//   - ReorderNeighborsCCWAndFixCorners: re-sorts each vertex's fan by the
//     angle to each incident polygon's centroid, then reinserts an
//     obstacle sentinel after each polygon whose CCW successor does not
//     share its edge through the vertex.
//   - RemoveUselessVertices: drops vertices whose fan is empty or
//     obstacle-only, remapping every polygon's vertex indices.
//   - MergePolygons: iteratively coalesces neighboring polygons whose
//     union is still convex and CCW, via union-find over polygon ids.
//
// Why:
//
//   - A triangulator emits many small triangles; path length is
//     unaffected by how finely a traversable region is cut up, but a
//     coarser mesh makes the search faster and the result more legible.
//     This is the "quality-of-input" pass spec.md singles out as
//     optional: callers may search directly against the triangulated
//     mesh, or run these passes first.
//
// Complexity:
//
//   - ReorderNeighborsCCWAndFixCorners: O(V log d) where d is the max fan
//     degree.
//   - RemoveUselessVertices: O(V + P) with remapping.
//   - MergePolygons: O(P²·d²) per full pass to a fixed point, where d
//     is average polygon degree: each edge's neighbor is found by scanning
//     every polygon's edges.
//
// Errors: none of these operations can fail on a Mesh that satisfies
// navmesh.New's invariants; they panic only on programmer error (an
// out-of-range index), never on well-formed input.
//
// Contract: callers MUST call Mesh.Bake again after any of these
// functions runs -- they invalidate the spatial index and island ids.
package meshops
