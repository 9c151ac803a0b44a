package triangulate

import "github.com/katalvlaran/polynav/geom"

// Simplify applies a Visvalingam-Whyatt pass to a closed polygon (given
// as a CCW or CW vertex loop): repeatedly remove whichever vertex
// contributes the smallest triangle area (formed with its two neighbors)
// as long as that area stays below epsilon, stopping when fewer than 4
// vertices remain (3 is the minimum polygon) or no vertex's area is below
// epsilon. Removals are chosen by area alone: no check is made that the
// loop stays simple or clear of other obstacles. Grounded on spec.md §6's
// "topology-preserving Visvalingam-Whyatt pass on obstacle edges".
func Simplify(loop []geom.Point, epsilon float64) []geom.Point {
	if epsilon <= 0 || len(loop) <= 3 {
		return loop
	}
	pts := append([]geom.Point(nil), loop...)
	for len(pts) > 3 {
		n := len(pts)
		minArea := epsilon
		minIdx := -1
		for i := 0; i < n; i++ {
			prev := pts[(i-1+n)%n]
			cur := pts[i]
			next := pts[(i+1)%n]
			area := triangleAreaAbs(prev, cur, next)
			if area < minArea {
				minArea = area
				minIdx = i
			}
		}
		if minIdx < 0 {
			break
		}
		pts = append(pts[:minIdx], pts[minIdx+1:]...)
	}
	return pts
}

func triangleAreaAbs(a, b, c geom.Point) float64 {
	d := geom.TriangleArea2(a, b, c)
	if d < 0 {
		d = -d
	}
	return d / 2
}
