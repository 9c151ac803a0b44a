// Package polyanya implements the Polyanya any-angle pathfinding
// algorithm (Cui, Harabor, Grastien) over a baked navmesh.Mesh: an A*-style
// search over "intervals" -- a visible sub-segment of a mesh edge
// together with the taut-path root point that generated it -- rather than
// over mesh vertices, giving true shortest (not grid-constrained) paths.
//
// What:
//
//   - Interval: a doorway (edge sub-segment) plus its root, f/g costs and
//     a parent link for path reconstruction.
//   - SearchInstance: owns all per-query mutable state (heap, root-history
//     cache, iteration counter); never shared across goroutines.
//   - FindPath(mesh, from, to, opts...) (Path, bool): synchronous query.
//   - Setup/Step: cooperative step-iterator form for callers that want to
//     bound work per scheduling tick themselves.
//
// Why:
//
//   - This is the search engine the rest of the module builds meshes for.
//     Interval-based search is what makes Polyanya return the true
//     Euclidean shortest path instead of a vertex-graph approximation.
//
// Complexity:
//
//   - Each interval expansion considers O(polygon degree) successor
//     edges; overall complexity is output-sensitive, bounded by the
//     number of intervals ever pushed, itself bounded by mesh size times
//     a small constant in practice (root-history pruning keeps this from
//     blowing up on meshes with many short edges).
//
// Errors:
//
//   - FindPath never returns an error for "no path exists" -- it returns
//     (Path{}, false), Go's idiomatic found/not-found idiom.
package polyanya
