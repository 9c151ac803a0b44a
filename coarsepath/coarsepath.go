package coarsepath

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/polynav/core"
	"github.com/katalvlaran/polynav/dijkstra"
	"github.com/katalvlaran/polynav/geom"
	"github.com/katalvlaran/polynav/navmesh"
)

// ErrNotBaked is returned by Build when the supplied mesh has not been
// baked -- the coarse graph needs every layer's polygon set finalized,
// same precondition polyanya.Setup has on the meshes it searches.
var ErrNotBaked = errors.New("coarsepath: mesh is not baked")

// ErrOutOfMesh is returned by Distance/Path when a query point does not
// lie in any layer of the mesh.
var ErrOutOfMesh = errors.New("coarsepath: point is outside the mesh")

// weightScale converts a float64 centroid distance into core.Edge's
// int64 weight unit, keeping two decimal digits of precision.
const weightScale = 100.0

// Graph is a coarse polygon-adjacency view of a baked navmesh.Mesh,
// ready for Dijkstra-based distance and path queries.
type Graph struct {
	mesh *navmesh.Mesh
	g    *core.Graph
}

// Build constructs the coarse adjacency graph: one vertex per polygon
// ("layer:poly"), one edge per pair of polygons sharing a mesh edge,
// weighted by the integer-scaled centroid-to-centroid distance.
func Build(mesh *navmesh.Mesh) (*Graph, error) {
	if !mesh.Baked() {
		return nil, ErrNotBaked
	}

	g := core.NewGraph(core.WithWeighted())
	seen := make(map[[2]string]bool)

	for li := range mesh.Layers {
		layer := &mesh.Layers[li]
		for pi, poly := range layer.Polygons {
			from := vertexID(li, int32(pi))
			if err := g.AddVertex(from); err != nil {
				return nil, fmt.Errorf("coarsepath: %w", err)
			}
			centroidFrom := centroid(mesh, li, poly)

			for e := 0; e < poly.NumEdges(); e++ {
				a, b := poly.Edge(e)
				nl, np, ok := mesh.NeighborAcrossEdge(li, int32(pi), a, b)
				if !ok {
					continue
				}
				to := vertexID(nl, np)
				key := canonicalPair(from, to)
				if seen[key] {
					continue
				}
				seen[key] = true

				centroidTo := centroid(mesh, nl, mesh.Layers[nl].Polygons[np])
				weight := int64(centroidFrom.Dist(centroidTo) * weightScale)
				if _, err := g.AddEdge(from, to, weight); err != nil {
					return nil, fmt.Errorf("coarsepath: %w", err)
				}
			}
		}
	}

	return &Graph{mesh: mesh, g: g}, nil
}

// Distance returns the coarse (centroid-hop) distance between from and
// to, in the mesh's own units, and whether both points resolved to a
// polygon connected by some chain of shared edges.
func (c *Graph) Distance(from, to geom.Point) (float64, bool, error) {
	fromID, err := c.locate(from)
	if err != nil {
		return 0, false, err
	}
	toID, err := c.locate(to)
	if err != nil {
		return 0, false, err
	}
	if fromID == toID {
		return 0, true, nil
	}

	dist, _, err := dijkstra.Dijkstra(c.g, dijkstra.Source(fromID))
	if err != nil {
		return 0, false, fmt.Errorf("coarsepath: %w", err)
	}
	scaled, ok := dist[toID]
	if !ok || scaled == math.MaxInt64 {
		return 0, false, nil
	}
	return float64(scaled) / weightScale, true, nil
}

// Path returns the chain of polygon centroids a coarse shortest path
// visits from from's polygon to to's polygon, plus the total coarse
// distance. Unlike polyanya.FindPath this is not a taut (shortest
// Euclidean) path -- it is the centroid-to-centroid route through the
// Dijkstra predecessor chain, useful as a quick sanity check or as a
// seed corridor for a subsequent exact search.
func (c *Graph) Path(from, to geom.Point) ([]geom.Point, float64, bool, error) {
	fromID, err := c.locate(from)
	if err != nil {
		return nil, 0, false, err
	}
	toID, err := c.locate(to)
	if err != nil {
		return nil, 0, false, err
	}

	dist, prev, err := dijkstra.Dijkstra(c.g, dijkstra.Source(fromID), dijkstra.WithReturnPath())
	if err != nil {
		return nil, 0, false, fmt.Errorf("coarsepath: %w", err)
	}
	scaled, ok := dist[toID]
	if !ok || scaled == math.MaxInt64 {
		return nil, 0, false, nil
	}

	var chain []string
	for v := toID; v != ""; v = prev[v] {
		chain = append(chain, v)
		if v == fromID {
			break
		}
	}
	points := make([]geom.Point, len(chain))
	for i, id := range chain {
		li, pi := mustParseVertexID(id)
		points[len(chain)-1-i] = centroid(c.mesh, li, c.mesh.Layers[li].Polygons[pi])
	}

	return points, float64(scaled) / weightScale, true, nil
}

func (c *Graph) locate(p geom.Point) (string, error) {
	for li := range c.mesh.Layers {
		if poly, ok := c.mesh.Locate(li, p); ok {
			return vertexID(li, poly), nil
		}
	}
	return "", ErrOutOfMesh
}

func vertexID(layer int, poly int32) string {
	return strconv.Itoa(layer) + ":" + strconv.Itoa(int(poly))
}

func mustParseVertexID(id string) (int, int32) {
	li, pi, _ := strings.Cut(id, ":")
	layer, _ := strconv.Atoi(li)
	poly, _ := strconv.Atoi(pi)
	return layer, int32(poly)
}

// canonicalPair orders (a,b) so both directions of a shared-edge
// discovery hash to the same key, keeping the graph simple (one edge
// per adjacency) even though NeighborAcrossEdge is found from both
// polygons independently.
func canonicalPair(a, b string) [2]string {
	if a <= b {
		return [2]string{a, b}
	}
	return [2]string{b, a}
}

// centroid computes polygon p's centroid in mesh world coordinates
// (layer offset applied), the same way navmesh's own bake step does for
// its internal per-polygon centroid cache -- duplicated here rather than
// exported from navmesh because it is coarsepath's only consumer outside
// the package.
func centroid(mesh *navmesh.Mesh, layer int, p navmesh.Polygon) geom.Point {
	var c geom.Point
	for _, vi := range p.Vertices {
		c = c.Add(mesh.VertexPoint(layer, vi))
	}
	return c.Scale(1 / float64(len(p.Vertices)))
}
