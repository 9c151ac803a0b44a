package meshops

import (
	"math"
	"sort"

	"github.com/katalvlaran/polynav/geom"
	"github.com/katalvlaran/polynav/navmesh"
)

// ReorderNeighborsCCWAndFixCorners rebuilds every vertex's fan in layer
// li of m: for each vertex, the incident polygons already present in its
// fan (obstacle entries ignored) are re-sorted by the angle of the vector
// from the vertex to each polygon's centroid, then an obstacle sentinel
// is reinserted after every polygon whose CCW successor in the fan does
// not share its CCW-side edge through the vertex, so a vertex with a
// single polygon, or on the boundary, keeps its obstacle (spec.md §4.4).
func ReorderNeighborsCCWAndFixCorners(m *navmesh.Mesh, li int) {
	layer := &m.Layers[li]
	edgeOwners := buildEdgeOwners(layer.Polygons)

	for vi := range layer.Vertices {
		v := &layer.Vertices[vi]
		polys := realPolygons(v.Fan)
		if len(polys) == 0 {
			continue
		}
		vp := layer.Vertices[vi].Point.Add(layer.Offset)

		type entry struct {
			poly  int32
			angle float64
		}
		entries := make([]entry, len(polys))
		for i, pid := range polys {
			c := centroid(layer, layer.Polygons[pid])
			d := c.Sub(vp)
			entries[i] = entry{poly: pid, angle: math.Atan2(d.Y, d.X)}
		}
		sort.Slice(entries, func(a, b int) bool { return entries[a].angle < entries[b].angle })

		fan := make([]navmesh.FanEntry, 0, len(entries)*2)
		for i, e := range entries {
			fan = append(fan, navmesh.PackRef(li, int(e.poly)))
			next := entries[(i+1)%len(entries)].poly
			if !shareEdge(layer.Polygons, e.poly, next, int32(vi), edgeOwners) {
				fan = append(fan, navmesh.ObstacleEntry)
			}
		}
		v.Fan = fan
	}
}

func realPolygons(fan []navmesh.FanEntry) []int32 {
	out := make([]int32, 0, len(fan))
	for _, e := range fan {
		if !e.IsObstacle() {
			_, p := e.Unpack()
			out = append(out, int32(p))
		}
	}
	return out
}

func centroid(l *navmesh.Layer, p navmesh.Polygon) geom.Point {
	var c geom.Point
	for _, vi := range p.Vertices {
		c = c.Add(l.Vertices[vi].Point.Add(l.Offset))
	}
	return c.Scale(1 / float64(len(p.Vertices)))
}

func buildEdgeOwners(polygons []navmesh.Polygon) map[[2]int32][]int32 {
	owners := make(map[[2]int32][]int32, len(polygons)*3)
	for pi, p := range polygons {
		for e := 0; e < p.NumEdges(); e++ {
			a, b := p.Edge(e)
			k := edgeKey(a, b)
			owners[k] = append(owners[k], int32(pi))
		}
	}
	return owners
}

func edgeKey(a, b int32) [2]int32 {
	if a > b {
		a, b = b, a
	}
	return [2]int32{a, b}
}

// shareEdge reports whether pb is pa's CCW successor around vertex v:
// pa and pb are distinct and pb also owns the edge from v to the vertex
// that precedes v in pa's loop (pa's CCW-side edge at v).
func shareEdge(polygons []navmesh.Polygon, pa, pb, v int32, owners map[[2]int32][]int32) bool {
	if pa == pb {
		return false
	}
	p := polygons[pa]
	n := len(p.Vertices)
	for i, x := range p.Vertices {
		if x != v {
			continue
		}
		prev := p.Vertices[(i-1+n)%n]
		for _, owner := range owners[edgeKey(v, prev)] {
			if owner == pb {
				return true
			}
		}
		return false
	}
	return false
}
