package geom

import "math"

// Epsilon is the default tolerance used for point-coincidence and
// on-segment tests across the module. Tolerance is implementation-defined
// per spec but must be stable under small perturbations; this value is
// tuned for meshes with coordinates in the low thousands.
const Epsilon = 1e-9

// Point is a 2D point or vector. The navigation mesh, the triangulator and
// the search engine all share this single value type.
type Point struct {
	X, Y float64
}

// Point3 extends Point with a height channel, used only once a 2D path has
// been lifted onto a detail mesh (navmesh.LiftPath).
type Point3 struct {
	X, Y, Z float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the 2D cross product (z-component) of p and q.
func (p Point) Cross(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Length returns the Euclidean norm of p.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return p.Sub(q).Length() }

// Normalize returns p scaled to unit length. Returns the zero vector if p
// is itself the zero vector.
func (p Point) Normalize() Point {
	l := p.Length()
	if l < Epsilon {
		return Point{}
	}
	return p.Scale(1 / l)
}

// Perp returns p rotated 90 degrees counter-clockwise.
func (p Point) Perp() Point { return Point{-p.Y, p.X} }

// Almost reports whether p and q are within Epsilon of each other.
func (p Point) Almost(q Point) bool { return p.Dist(q) <= Epsilon }

// Lerp linearly interpolates between p and q at parameter t in [0,1].
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}
