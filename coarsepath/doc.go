// Package coarsepath builds a coarse, polygon-adjacency-graph distance
// oracle over a baked navmesh.Mesh. Each polygon becomes one graph
// vertex; two polygons sharing a mesh edge become one graph edge,
// weighted by the integer-scaled distance between their centroids.
//
// This is deliberately not a shortest path in the navmesh.Mesh's own
// geometry -- centroid-to-centroid hops overestimate the true Euclidean
// distance polyanya.FindPath would return -- but it is cheap (one
// Dijkstra run over O(polygons) vertices, no interval search) and useful
// as a fast reachability/upper-bound oracle, e.g. to rank candidate goals
// by rough cost before refining the best few with an exact search, or to
// answer "can these two regions even reach each other" without doing the
// more expensive interval expansion at all.
//
// What:
//   - Build: constructs the coarse graph from a baked Mesh.
//   - Graph.Distance / Graph.Path: coarse distance and polygon-chain
//     queries between two mesh locations.
//
// Why a generic weighted graph and Dijkstra, not a bespoke BFS:
//   - Centroid-distance weights are real-valued costs, not hop counts;
//     a hop-count BFS would rank a long chain of small polygons as
//     cheaper than a short chain of large ones, which is wrong for any
//     caller using the result as a distance estimate.
package coarsepath
