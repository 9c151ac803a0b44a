package formats

import (
	"encoding/json"
	"io"

	"github.com/katalvlaran/polynav/geom"
	"github.com/katalvlaran/polynav/navmesh"
)

// recastDocument mirrors the JSON schema Recast/Detour's own export
// tooling produces: a polygon mesh (ground-plane vertices plus CCW
// vertex-index loops, up to six vertices each) and, optionally, a detail
// mesh refining it with extra interior vertices carrying accurate
// height. Recast's coordinate convention is Y-up; each vertex triple is
// (x, y, z) with y the height and (x, z) the ground plane.
type recastDocument struct {
	PolyMesh struct {
		Verts [][3]float64 `json:"verts"`
		Polys [][]int32    `json:"polys"`
	} `json:"polyMesh"`
	DetailMesh *struct {
		Verts [][3]float64 `json:"verts"`
	} `json:"detailMesh"`
}

// ParseRecastMesh decodes a Recast polygon-mesh-plus-detail-mesh JSON
// export into a navmesh.Mesh. Ground-plane coordinates come from the
// polygon mesh; if a detail mesh is present, its per-vertex heights
// replace the polygon mesh's own (coarser) ones, index for index -- the
// detail mesh is defined to refine, not replace, the coarse mesh's
// vertex set in Recast's own format, so the two share indices for the
// vertices the coarse mesh already has.
func ParseRecastMesh(r io.Reader) (*navmesh.Mesh, error) {
	var doc recastDocument
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, malformed(0, "invalid JSON: %v", err)
	}
	if len(doc.PolyMesh.Verts) == 0 {
		return nil, malformed(0, "polyMesh.verts is empty")
	}
	if len(doc.PolyMesh.Polys) == 0 {
		return nil, malformed(0, "polyMesh.polys is empty")
	}

	points := make([]geom.Point, len(doc.PolyMesh.Verts))
	height := make([]float64, len(doc.PolyMesh.Verts))
	for i, v := range doc.PolyMesh.Verts {
		points[i] = geom.Point{X: v[0], Y: v[2]}
		height[i] = v[1]
	}
	if doc.DetailMesh != nil {
		for i, v := range doc.DetailMesh.Verts {
			if i >= len(height) {
				break
			}
			height[i] = v[1]
		}
	}

	polys := make([][]int32, len(doc.PolyMesh.Polys))
	for i, p := range doc.PolyMesh.Polys {
		if len(p) < 3 {
			return nil, malformed(0, "polygon %d has fewer than 3 vertices", i)
		}
		polys[i] = p
	}

	mesh, err := navmesh.NewFromPolygons(points, polys)
	if err != nil {
		return nil, err
	}
	mesh.Layers[0].Height = height
	return mesh, nil
}
