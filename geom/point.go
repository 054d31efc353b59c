package geom

import "math"

// PointD is a point with float64 coordinates.
type PointD struct {
	X, Y float64
}

// Add returns p+q.
func (p PointD) Add(q PointD) PointD { return PointD{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p PointD) Sub(q PointD) PointD { return PointD{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by k.
func (p PointD) Scale(k float64) PointD { return PointD{p.X * k, p.Y * k} }

// Dot returns the dot product p.q.
func (p PointD) Dot(q PointD) float64 { return p.X*q.X + p.Y*q.Y }

// Cross returns the z-component of the 3D cross product of p and q,
// treated as vectors from the origin. Its sign determines the turn
// direction from p to q.
func (p PointD) Cross(q PointD) float64 { return p.X*q.Y - p.Y*q.X }

// Length returns the Euclidean norm of p treated as a vector.
func (p PointD) Length() float64 { return math.Hypot(p.X, p.Y) }

// DistanceTo returns the Euclidean distance between p and q.
func (p PointD) DistanceTo(q PointD) float64 { return p.Sub(q).Length() }

// DistanceSquaredTo returns the squared Euclidean distance between p and q,
// avoiding the sqrt when only comparison is needed.
func (p PointD) DistanceSquaredTo(q PointD) float64 {
	d := p.Sub(q)

	return d.X*d.X + d.Y*d.Y
}

// Equal reports whether p and q are identical, component-wise, within ε.
// ε=0 requires exact equality.
func (p PointD) Equal(q PointD, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

// ToPointI rounds p to the nearest integer coordinates via math.Round.
func (p PointD) ToPointI() PointI {
	return PointI{X: int64(math.Round(p.X)), Y: int64(math.Round(p.Y))}
}

// PointI is a point with integer coordinates. Arithmetic promotes to
// int64 internally and detects overflow rather than silently wrapping,
// matching spec section 3.1's ArithmeticOverflow requirement.
type PointI struct {
	X, Y int64
}

const (
	maxSafeInt = int64(1) << 62
	minSafeInt = -maxSafeInt
)

func overflowsAdd(a, b int64) bool {
	if b > 0 && a > maxSafeInt-b {
		return true
	}
	if b < 0 && a < minSafeInt-b {
		return true
	}

	return false
}

func overflowsMul(a, b int64) bool {
	if a == 0 || b == 0 {
		return false
	}
	p := a * b
	if p/b != a {
		return true
	}

	return p > maxSafeInt || p < minSafeInt
}

// Add returns p+q, or ErrArithmeticOverflow if the result would exceed the
// safe representable range.
func (p PointI) Add(q PointI) (PointI, error) {
	if overflowsAdd(p.X, q.X) || overflowsAdd(p.Y, q.Y) {
		return PointI{}, ErrArithmeticOverflow
	}

	return PointI{X: p.X + q.X, Y: p.Y + q.Y}, nil
}

// Sub returns p-q, or ErrArithmeticOverflow if the result would exceed the
// safe representable range.
func (p PointI) Sub(q PointI) (PointI, error) {
	if overflowsAdd(p.X, -q.X) || overflowsAdd(p.Y, -q.Y) {
		return PointI{}, ErrArithmeticOverflow
	}

	return PointI{X: p.X - q.X, Y: p.Y - q.Y}, nil
}

// Scale returns p scaled by integer factor k, or ErrArithmeticOverflow.
func (p PointI) Scale(k int64) (PointI, error) {
	if overflowsMul(p.X, k) || overflowsMul(p.Y, k) {
		return PointI{}, ErrArithmeticOverflow
	}

	return PointI{X: p.X * k, Y: p.Y * k}, nil
}

// Equal reports exact component-wise equality.
func (p PointI) Equal(q PointI) bool { return p.X == q.X && p.Y == q.Y }

// ToPointD widens p to float64 coordinates. Exact for magnitudes up to
// 2^53; beyond that, float64's 52-bit mantissa rounds, which is acceptable
// given this package's non-goal of exact-predicate arithmetic.
func (p PointI) ToPointD() PointD { return PointD{X: float64(p.X), Y: float64(p.Y)} }
