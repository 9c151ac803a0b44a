package geom

import (
	"math"
	"math/big"
)

// Orientation classifies the sign of Orient2D.
type Orientation int

const (
	// CW means c lies clockwise of the directed line a->b.
	CW Orientation = -1
	// Collinear means a, b, c lie on one line (within the predicate's
	// resolution).
	Collinear Orientation = 0
	// CCW means c lies counter-clockwise of the directed line a->b.
	CCW Orientation = 1
)

// errorBoundOrient is a conservative bound on the rounding error of the
// naive double-precision determinant below, derived the standard way
// (Shewchuk 1997): a small multiple of machine epsilon times the maximum
// magnitude of the terms involved. Values whose magnitude is below this
// bound cannot be trusted to have the correct sign and are recomputed with
// big.Float.
const errorBoundOrient = 3.3306690738754716e-16

// Orient2D returns the sign of the cross product (b-a) x (c-a): positive
// if a, b, c form a counter-clockwise turn, negative for clockwise, zero
// for collinear. It uses a fast double-precision path and only falls back
// to arbitrary-precision arithmetic when the fast result is too close to
// zero to trust -- the scheme recommended in spec.md's design notes,
// since no pack dependency offers adaptive exact predicates.
func Orient2D(a, b, c Point) float64 {
	detleft := (a.X - c.X) * (b.Y - c.Y)
	detright := (a.Y - c.Y) * (b.X - c.X)
	det := detleft - detright

	detsum := math.Abs(detleft) + math.Abs(detright)
	if math.Abs(det) >= errorBoundOrient*detsum {
		return det
	}
	return orient2DExact(a, b, c)
}

// OrientationOf classifies Orient2D's sign.
func OrientationOf(a, b, c Point) Orientation {
	d := Orient2D(a, b, c)
	switch {
	case d > 0:
		return CCW
	case d < 0:
		return CW
	default:
		return Collinear
	}
}

// bigFloat converts x for the fallback paths at 1024 bits of precision;
// big.NewFloat would keep float64's 53 bits.
func bigFloat(x float64) *big.Float { return new(big.Float).SetPrec(1024).SetFloat64(x) }

func orient2DExact(a, b, c Point) float64 {
	ax, ay := bigFloat(a.X), bigFloat(a.Y)
	bx, by := bigFloat(b.X), bigFloat(b.Y)
	cx, cy := bigFloat(c.X), bigFloat(c.Y)

	left := new(big.Float).Mul(new(big.Float).Sub(ax, cx), new(big.Float).Sub(by, cy))
	right := new(big.Float).Mul(new(big.Float).Sub(ay, cy), new(big.Float).Sub(bx, cx))
	res, _ := new(big.Float).Sub(left, right).Float64()
	return res
}

// errorBoundInCircle bounds the rounding error of the naive incircle
// determinant below, analogous to errorBoundOrient but for the larger
// 3x3-plus-lift determinant.
const errorBoundInCircle = 1.1102230246251565e-15

// InCircle returns a positive value iff d lies strictly inside the
// circumcircle of the counter-clockwise triangle (a, b, c); negative if
// outside; zero if exactly on the circle. Callers must ensure (a,b,c) is
// CCW -- InCircle does not check orientation itself.
func InCircle(a, b, c, d Point) float64 {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	bdxcdy := bdx * cdy
	cdxbdy := cdx * bdy
	alift := adx*adx + ady*ady

	cdxady := cdx * ady
	adxcdy := adx * cdy
	blift := bdx*bdx + bdy*bdy

	adxbdy := adx * bdy
	bdxady := bdx * ady
	clift := cdx*cdx + cdy*cdy

	det := alift*(bdxcdy-cdxbdy) + blift*(cdxady-adxcdy) + clift*(adxbdy-bdxady)

	permanent := (math.Abs(bdxcdy)+math.Abs(cdxbdy))*alift +
		(math.Abs(cdxady)+math.Abs(adxcdy))*blift +
		(math.Abs(adxbdy)+math.Abs(bdxady))*clift
	if math.Abs(det) >= errorBoundInCircle*permanent {
		return det
	}
	return inCircleExact(a, b, c, d)
}

func inCircleExact(a, b, c, d Point) float64 {
	lift := func(p, q Point) *big.Float {
		dx := new(big.Float).Sub(bigFloat(p.X), bigFloat(q.X))
		dy := new(big.Float).Sub(bigFloat(p.Y), bigFloat(q.Y))
		sx := new(big.Float).Mul(dx, dx)
		sy := new(big.Float).Mul(dy, dy)
		return new(big.Float).Add(sx, sy)
	}
	sub := func(p, q Point) (*big.Float, *big.Float) {
		return new(big.Float).Sub(bigFloat(p.X), bigFloat(q.X)),
			new(big.Float).Sub(bigFloat(p.Y), bigFloat(q.Y))
	}
	adx, ady := sub(a, d)
	bdx, bdy := sub(b, d)
	cdx, cdy := sub(c, d)

	bdxcdy := new(big.Float).Mul(bdx, cdy)
	cdxbdy := new(big.Float).Mul(cdx, bdy)
	cdxady := new(big.Float).Mul(cdx, ady)
	adxcdy := new(big.Float).Mul(adx, cdy)
	adxbdy := new(big.Float).Mul(adx, bdy)
	bdxady := new(big.Float).Mul(bdx, ady)

	alift := lift(a, d)
	blift := lift(b, d)
	clift := lift(c, d)

	t1 := new(big.Float).Mul(alift, new(big.Float).Sub(bdxcdy, cdxbdy))
	t2 := new(big.Float).Mul(blift, new(big.Float).Sub(cdxady, adxcdy))
	t3 := new(big.Float).Mul(clift, new(big.Float).Sub(adxbdy, bdxady))

	sum := new(big.Float).Add(t1, new(big.Float).Add(t2, t3))
	res, _ := sum.Float64()
	return res
}
