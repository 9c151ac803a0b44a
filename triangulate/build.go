package triangulate

import (
	"github.com/katalvlaran/polynav/cdt"
	"github.com/katalvlaran/polynav/geom"
	"github.com/katalvlaran/polynav/navmesh"
)

// Build runs the full boundary+obstacles -> navmesh.Layer pipeline
// (spec.md §4.3): inflate and union obstacles, triangulate with boundary
// and obstacles as constraints, classify traversable faces, and build the
// vertex fans (with obstacle sentinels implicit in which triangles were
// kept). boundary must be a CCW loop of at least 3 points; obstacles are
// CCW loops of at least 3 points each.
func Build(boundary []geom.Point, obstacles [][]geom.Point, opts Options) (*navmesh.Layer, error) {
	if len(boundary) < 3 {
		return nil, ErrEmptyBoundary
	}

	prepared := make([][]geom.Point, 0, len(obstacles))
	for _, obs := range obstacles {
		if len(obs) < 3 {
			continue
		}
		prepared = append(prepared, inflate(obs, opts.AgentRadius, opts.AgentRadiusSegments))
	}
	prepared = unionOverlapping(prepared)
	if opts.AgentRadiusSimplification > 0 {
		for i, obs := range prepared {
			prepared[i] = Simplify(obs, opts.AgentRadiusSimplification)
		}
	}

	bboxMin, bboxMax := boundsOverlapBox(boundary, prepared)
	tri := cdt.New(bboxMin, bboxMax)

	all := append([]geom.Point(nil), boundary...)
	loopStart := []int{0}
	for _, obs := range prepared {
		all = append(all, obs...)
		loopStart = append(loopStart, len(all))
	}

	ids, err := tri.BulkLoad(all)
	if err != nil {
		return nil, err
	}

	loops := append([][]geom.Point{boundary}, prepared...)
	for li, loop := range loops {
		start := loopStart[li]
		n := len(loop)
		for i := 0; i < n; i++ {
			u := ids[start+i]
			v := ids[start+(i+1)%n]
			if err := tri.AddConstraint(u, v); err != nil {
				return nil, err
			}
		}
	}

	if opts.Refine != nil {
		tri.Refine(*opts.Refine)
	}

	points := tri.Vertices()
	tris := tri.Triangles()
	traversable := traversableTriangles(points, tris, boundary, prepared)

	mesh, err := navmesh.NewFromTriangles(points, traversable)
	if err != nil {
		return nil, err
	}
	tagOneWayPolygons(mesh)
	return &mesh.Layers[0], nil
}

func boundsOverlapBox(boundary []geom.Point, obstacles [][]geom.Point) (geom.Point, geom.Point) {
	min, max := bbox(boundary)
	for _, obs := range obstacles {
		if len(obs) == 0 {
			continue
		}
		oMin, oMax := bbox(obs)
		if oMin.X < min.X {
			min.X = oMin.X
		}
		if oMin.Y < min.Y {
			min.Y = oMin.Y
		}
		if oMax.X > max.X {
			max.X = oMax.X
		}
		if oMax.Y > max.Y {
			max.Y = oMax.Y
		}
	}
	return min, max
}

// tagOneWayPolygons sets Polygon.OneWay for every polygon in the (only)
// layer that has at most one distinct traversable neighbor across its
// edges, per spec.md §3's "one_way hint set to true iff the polygon has
// at most one traversable neighbor".
func tagOneWayPolygons(mesh *navmesh.Mesh) {
	layer := &mesh.Layers[0]
	for pid := range layer.Polygons {
		p := layer.Polygons[pid]
		neighbors := make(map[int32]bool)
		for e := 0; e < p.NumEdges(); e++ {
			a, b := p.Edge(e)
			if _, np, ok := mesh.NeighborAcrossEdge(0, int32(pid), a, b); ok {
				neighbors[np] = true
			}
		}
		layer.Polygons[pid].OneWay = len(neighbors) <= 1
	}
}
