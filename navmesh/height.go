package navmesh

import "github.com/katalvlaran/polynav/geom"

// LiftPath lifts a 2D path onto a detail layer's height channel by
// barycentric interpolation of each waypoint's containing triangle,
// producing per-waypoint Z the way a Recast detail mesh stores it
// (spec.md §4.6/§6 path_with_height). to3D is used as-is for the last
// waypoint (the path's end, which may not correspond to a mesh vertex);
// every other waypoint is looked up against l. from3D is not read: the
// waypoints exclude the path's start.
//
// Returns nil if l has no height channel.
func LiftPath(path2D []geom.Point, from3D, to3D geom.Point3, l *Layer) []geom.Point3 {
	if !l.HasHeight() || len(path2D) == 0 {
		return nil
	}

	out := make([]geom.Point3, len(path2D))
	for i, p := range path2D {
		if i == len(path2D)-1 {
			out[i] = to3D
			continue
		}
		if i == 0 {
			// The caller's convention (spec.md §4.1) excludes the start
			// point from waypoints; if callers do include it they should
			// overwrite out[0] with from3D themselves. We still compute
			// a mesh-based height below for consistency when it is not
			// the literal start.
		}
		out[i] = liftPoint(p, l)
	}
	if len(path2D) > 0 {
		out[len(path2D)-1] = to3D
	}
	return out
}

func liftPoint(p geom.Point, l *Layer) geom.Point3 {
	for _, poly := range l.Polygons {
		if pointInPolygon(l, poly, p) {
			return barycentricHeight(p, l, poly)
		}
	}
	return geom.Point3{X: p.X, Y: p.Y, Z: 0}
}

// barycentricHeight interpolates height within poly's first triangle fan
// (v0, vi, vi+1) containing p. Detail-mesh polygons are triangles in
// practice (Recast emits triangulated detail meshes), so a single
// triangle test suffices for the common case; for larger polygons this
// fans from vertex 0.
func barycentricHeight(p geom.Point, l *Layer, poly Polygon) geom.Point3 {
	n := len(poly.Vertices)
	v0 := poly.Vertices[0]
	for i := 1; i < n-1; i++ {
		v1, v2 := poly.Vertices[i], poly.Vertices[i+1]
		a, b, c := l.localPoint(v0), l.localPoint(v1), l.localPoint(v2)
		if u, v, w, ok := barycentric(p, a, b, c); ok {
			z := u*l.Height[v0] + v*l.Height[v1] + w*l.Height[v2]
			return geom.Point3{X: p.X, Y: p.Y, Z: z}
		}
	}
	// Fallback: the height of the polygon's first vertex.
	return geom.Point3{X: p.X, Y: p.Y, Z: l.Height[v0]}
}

// barycentric returns the barycentric coordinates of p with respect to
// triangle (a,b,c), and whether p lies within the triangle (allowing a
// small negative tolerance for points on an edge).
func barycentric(p, a, b, c geom.Point) (u, v, w float64, ok bool) {
	area := geom.TriangleArea2(a, b, c)
	if area == 0 {
		return 0, 0, 0, false
	}
	u = geom.TriangleArea2(p, b, c) / area
	v = geom.TriangleArea2(a, p, c) / area
	w = 1 - u - v
	const tol = 1e-7
	ok = u >= -tol && v >= -tol && w >= -tol
	return u, v, w, ok
}
