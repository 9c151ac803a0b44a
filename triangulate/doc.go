// Package triangulate is the front end between raw geometry (an outer
// boundary and a list of interior obstacle polygons) and a ready-to-bake
// navmesh.Layer. It drives a cdt.Triangulation through four stages:
// optionally inflate obstacles by an agent radius and union overlapping
// ones, insert the boundary and obstacles as constraints, classify each
// resulting face as traversable or not, and build per-vertex polygon
// fans with obstacle sentinels at non-traversable edges.
//
// What:
//
//   - Options: agent-radius inflation and simplification knobs, plus the
//     cdt.RefineOptions to apply before classification.
//   - Build(boundary, obstacles, opts) (*navmesh.Layer, error): runs the
//     full pipeline.
//   - Simplify: Visvalingam-Whyatt simplification of a closed polygon,
//     used internally after inflation and union and exposed for callers
//     preprocessing their own obstacle data.
//
// Why:
//
//   - This is the mesh builder spec.md §4.3's "triangulation front-end"
//     names: obstacles as the caller naturally has them (polygons), the
//     CDT as the caller never wants to touch directly.
//
// Errors:
//
//   - Wraps cdt's coordinate/constraint errors; returns ErrEmptyBoundary
//     for a degenerate (fewer than 3 point) outer boundary.
package triangulate
