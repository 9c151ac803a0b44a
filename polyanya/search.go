package polyanya

import (
	"container/heap"

	"github.com/katalvlaran/polynav/geom"
	"github.com/katalvlaran/polynav/navmesh"
)

// SearchInstance owns every piece of mutable state for one path query. It
// is never shared across goroutines (the navmesh.Mesh it reads from is
// read-only and may be, but a SearchInstance's heap/arena/root-history
// cache are not synchronized). Multiple independent SearchInstances may
// run concurrently over the same baked Mesh.
type SearchInstance struct {
	mesh *navmesh.Mesh
	opts options

	start, goal           geom.Point
	startLayer, goalLayer int
	startPoly, goalPoly   int32

	arena   []interval
	h       intervalHeap
	bestG   map[rootKey]float64
	seq     int64
	iters   int
	done    bool
	result  Path
	foundOK bool
}

// Setup locates start and goal on mesh and seeds the search frontier from
// start's containing polygon. Returns ok=false if either point lies
// outside every layer of the mesh.
func Setup(mesh *navmesh.Mesh, start, goal geom.Point, opts ...Option) (*SearchInstance, bool) {
	cfg := defaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	sl, sp, ok := locateAnyLayer(mesh, start)
	if !ok {
		return nil, false
	}
	gl, gp, ok := locateAnyLayer(mesh, goal)
	if !ok {
		return nil, false
	}

	si := &SearchInstance{
		mesh:       mesh,
		opts:       cfg,
		start:      start,
		goal:       goal,
		startLayer: sl,
		startPoly:  sp,
		goalLayer:  gl,
		goalPoly:   gp,
		bestG:      make(map[rootKey]float64),
	}
	si.h.arena = &si.arena

	if start.Almost(goal) {
		si.done = true
		si.foundOK = true
		si.result = Path{Waypoints: []geom.Point{goal}, Length: 0}
		return si, true
	}

	if sl == gl && sp == gp {
		si.done = true
		si.foundOK = true
		si.result = Path{Waypoints: []geom.Point{goal}, Length: start.Dist(goal)}
		return si, true
	}

	if mesh.IslandsValid() && sl == gl && !mesh.Layers[sl].SameIsland(sp, gp) {
		si.done = true
		si.foundOK = false
		return si, true
	}

	si.seedFromPolygon(sl, sp)
	return si, true
}

func locateAnyLayer(mesh *navmesh.Mesh, p geom.Point) (int, int32, bool) {
	for li := range mesh.Layers {
		if poly, ok := mesh.Locate(li, p); ok {
			return li, poly, true
		}
	}
	return 0, 0, false
}

// seedFromPolygon pushes one initial interval per edge of the start
// polygon, rooted at the query's start point.
func (si *SearchInstance) seedFromPolygon(layer int, poly int32) {
	p := si.mesh.Layers[layer].Polygons[poly]
	for e := 0; e < p.NumEdges(); e++ {
		a, b := p.Edge(e)
		nl, np, ok := si.mesh.NeighborAcrossEdge(layer, poly, a, b)
		if !ok {
			continue
		}
		if si.mesh.IslandsValid() && layer == si.goalLayer && !si.mesh.Layers[layer].SameIsland(int32(np), si.goalPoly) {
			continue
		}
		pa := si.mesh.VertexPoint(layer, a)
		pb := si.mesh.VertexPoint(layer, b)
		iv := interval{
			Left: pa, Right: pb, Root: si.start,
			Layer: nl, Poly: np, EdgeA: a, EdgeB: b,
			RootVertex: -1,
			G:          0,
			parent:     -1,
		}
		si.pushInterval(iv)
	}
}

// pushInterval computes f/g, applies root-history dominance pruning, and
// pushes the interval onto the heap if it survives.
func (si *SearchInstance) pushInterval(iv interval) {
	h, _ := lowerBoundThroughDoorway(iv.Root, iv.Left, iv.Right, si.goal)
	iv.F = iv.G + h

	if iv.RootVertex >= 0 {
		key := rootKey{layer: iv.Layer, vertex: iv.RootVertex}
		if best, ok := si.bestG[key]; ok && iv.G >= best {
			return // dominance pruning: a cheaper path to this root already exists
		}
		si.bestG[key] = iv.G
	}

	iv.seq = si.seq
	si.seq++
	si.arena = append(si.arena, iv)
	heap.Push(&si.h, int32(len(si.arena)-1))
}

// Step advances the search by one interval expansion (or a chain of
// one-way-polygon expansions; see expandOneWay) and reports the outcome.
func (si *SearchInstance) Step() StepResult {
	if si.done {
		if si.foundOK {
			return StepResult{Status: StepFound, Path: si.result}
		}
		return StepResult{Status: StepNotFound}
	}

	release := si.opts.tracer.Span("step")
	defer release()

	for si.h.Len() > 0 {
		si.iters++
		if si.iters > si.opts.maxIterations {
			si.done, si.foundOK = true, false
			return StepResult{Status: StepNotFound}
		}

		idx := heap.Pop(&si.h).(int32)
		cur := si.arena[idx]

		// Post-pop pruning: a cheaper path to this root was recorded after
		// this entry was pushed (lazy-decrease-key, as with a textbook
		// Dijkstra heap); this entry is stale.
		if cur.RootVertex >= 0 {
			key := rootKey{layer: cur.Layer, vertex: cur.RootVertex}
			if best, ok := si.bestG[key]; ok && cur.G > best {
				continue
			}
		}

		if found, path := si.tryGoal(idx, cur); found {
			si.done, si.foundOK, si.result = true, true, path
			return StepResult{Status: StepFound, Path: path}
		}

		si.expandOneWay(idx, cur)
		return StepResult{Status: StepContinue}
	}

	si.done, si.foundOK = true, false
	return StepResult{Status: StepNotFound}
}

// tryGoal checks whether goal lies in cur's destination polygon and, if
// so, whether it is visible through cur's doorway without further
// bending; if both hold this interval's expansion IS the optimal path
// (A*: the first such node popped has minimal f).
func (si *SearchInstance) tryGoal(idx int32, cur interval) (bool, Path) {
	if cur.Layer != si.goalLayer || cur.Poly != si.goalPoly {
		return false, Path{}
	}
	edge := cur.Right.Sub(cur.Left)
	if edge.Length() < geom.Epsilon {
		return false, Path{}
	}
	t := intersectParam(cur.Root, si.goal, cur.Left, cur.Right)
	if t < -geom.Epsilon || t > 1+geom.Epsilon {
		return false, Path{}
	}
	length := cur.G + cur.Root.Dist(si.goal)
	waypoints := si.reconstruct(idx)
	waypoints = append(waypoints, si.goal)
	return true, Path{Waypoints: waypoints, Length: length}
}

// reconstruct walks parent links from idx back to the seed intervals,
// collecting each distinct root (a taut-path bend point) in order. The
// query's own start point is always the first root in this chain (every
// seed interval's Root is si.start); it is dropped here since waypoints
// run from start (excluded) to goal (included).
func (si *SearchInstance) reconstruct(idx int32) []geom.Point {
	var bends []geom.Point
	for i := idx; i != -1; {
		iv := si.arena[i]
		if len(bends) == 0 || !bends[len(bends)-1].Almost(iv.Root) {
			bends = append(bends, iv.Root)
		}
		i = iv.parent
	}
	out := make([]geom.Point, len(bends))
	for i, p := range bends {
		out[len(bends)-1-i] = p
	}
	if len(out) > 0 && out[0].Almost(si.start) {
		out = out[1:]
	}
	return out
}

// FindPath runs Setup then Step until the search concludes or the
// iteration budget (WithMaxIterations) is exhausted.
func FindPath(mesh *navmesh.Mesh, from, to geom.Point, opts ...Option) (Path, bool) {
	si, ok := Setup(mesh, from, to, opts...)
	if !ok {
		return Path{}, false
	}
	for {
		r := si.Step()
		switch r.Status {
		case StepFound:
			return r.Path, true
		case StepNotFound:
			return Path{}, false
		}
	}
}
