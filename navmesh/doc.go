// Package navmesh defines the navigation-mesh data model: vertices with
// ordered polygon fans, polygons, layers, and the multi-layer Mesh that
// ties them together, plus the bake step that builds the spatial index
// and island information the search engine (package polyanya) depends on.
//
// What:
//
//   - Vertex: a point plus an ordered, CCW, minimal fan of polygon
//     references, with an obstacle sentinel marking non-traversable gaps.
//   - Polygon: a CCW vertex-index loop plus a OneWay hint.
//   - Layer: a vertex/polygon sheet plus optional bake caches (spatial
//     index, islands, per-vertex heights, translation offset).
//   - Mesh: an ordered list of layers, cross-layer polygon refs packed as
//     (layer<<24)|polygon, with the all-ones value reserved as the
//     obstacle sentinel.
//
// Why:
//
//   - This is the shape Polyanya search expects as input; keeping
//     construction, validation and baking in one package means every
//     caller (the triangulator, file-format importers, hand-built test
//     fixtures) goes through the same invariants.
//
// Complexity:
//
//   - New: O(V+P) validation.
//   - Bake: O(V+P) for the spatial index and per-polygon centroids,
//     O((V+P)·α(V+P)) for islands (union-find).
//   - Locate: amortized O(1) via the spatial index's bucket lookup,
//     worst case O(polygons in bucket).
//
// Errors:
//
//   - ErrInvalidMesh: wraps the specific structural violation (see
//     MeshError) found by New or by an importer.
package navmesh
