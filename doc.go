// Package polynav is a 2D navigation-mesh pathfinding library
// implementing the Polyanya algorithm (Cui, Harabor, Grastien): exact,
// any-angle shortest paths over triangulated or polygonal meshes via
// interval-based search, rather than the zig-zag results grid-based or
// waypoint-graph pathfinding produce.
//
// What it brings together:
//
//	geom/       — exact-enough 2D primitives (points, orientation,
//	              segment intersection) every other package builds on
//	cdt/        — constrained Delaunay triangulation: turns a polygon
//	              outline plus holes into a mesh of triangles
//	triangulate/— higher-level polygon-set-to-mesh front end (union of
//	              input shapes, then cdt, then cleanup)
//	navmesh/    — the baked mesh data model itself: vertices with CCW
//	              polygon fans, multi-layer stitching, islands, spatial
//	              index, ascii/Recast import via formats/
//	meshops/    — mesh cleanup and simplification (merge coplanar
//	              polygons, drop degenerate vertices, fix winding)
//	polyanya/   — the search engine: SearchInstance, Setup/Step/FindPath
//	coarsepath/ — a cheap polygon-adjacency distance oracle, useful as a
//	              fast upper bound before refining with polyanya
//	formats/    — parsers for the Polyanya ASCII mesh format and Recast
//	              polygon-mesh-plus-detail-mesh JSON exports
//	tracer/     — optional span hooks for instrumenting a search
//
// Typical use:
//
//	mesh, err := navmesh.NewFromTriangles(points, triangles)
//	mesh.Bake()
//	path, ok := polyanya.FindPath(mesh, start, goal)
//
// Pathfinding is a query operation over an immutable, baked Mesh: build
// once, bake once, then run many concurrent FindPath calls. Any
// structural change (meshops cleanup, re-stitching layers) requires a
// fresh Bake before the mesh can be queried again.
package polynav
