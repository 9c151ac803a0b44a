// Package formats parses third-party navmesh file formats into the
// navmesh data model (navmesh.Mesh). It is a thin, self-contained
// adapter layer: its only contract is to reproduce the vertex/polygon
// structure the rest of the module expects, nothing more.
//
// What:
//
//   - ParsePolyanyaMesh: the Polyanya project's line-oriented ASCII
//     "mesh 2"/"mesh 3" text format.
//   - ParseRecastMesh: Recast/Detour's JSON polygon-mesh-plus-detail-mesh
//     export, including the per-vertex height channel.
//
// Why:
//
//   - Neither format is part of this module's own data model, and
//     neither format's parsing logic belongs in navmesh, cdt or polyanya:
//     keeping them here means the core search/triangulation packages
//     never import an encoding package, and a caller who only needs the
//     in-memory model never pulls in a text/JSON parser.
//
// Errors:
//
//   - Malformed input returns a *FormatError wrapping ErrMalformedInput,
//     naming the line or field at fault.
package formats
