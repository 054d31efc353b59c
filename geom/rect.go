package geom

import "math"

// SizeD is a non-negative width/height pair with float64 components.
type SizeD struct {
	Width, Height float64
}

// NewSizeD validates and constructs a SizeD, rejecting negative components.
func NewSizeD(w, h float64) (SizeD, error) {
	if w < 0 || h < 0 {
		return SizeD{}, ErrNegativeSize
	}

	return SizeD{Width: w, Height: h}, nil
}

// SizeI is a non-negative width/height pair with integer components.
type SizeI struct {
	Width, Height int64
}

// NewSizeI validates and constructs a SizeI, rejecting negative components.
func NewSizeI(w, h int64) (SizeI, error) {
	if w < 0 || h < 0 {
		return SizeI{}, ErrNegativeSize
	}

	return SizeI{Width: w, Height: h}, nil
}

// RectD is an axis-aligned rectangle with float64 corners, stored as
// Min/Max with the invariant Min.X <= Max.X and Min.Y <= Max.Y.
type RectD struct {
	Min, Max PointD
}

// NewRectD constructs a RectD, returning ErrInvalidRect if min > max on
// either axis.
func NewRectD(min, max PointD) (RectD, error) {
	if min.X > max.X || min.Y > max.Y {
		return RectD{}, ErrInvalidRect
	}

	return RectD{Min: min, Max: max}, nil
}

// NewRectDFromPoints builds the smallest RectD containing both corners,
// regardless of their relative order; this never fails.
func NewRectDFromPoints(a, b PointD) RectD {
	return RectD{
		Min: PointD{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: PointD{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

// Width returns Max.X - Min.X.
func (r RectD) Width() float64 { return r.Max.X - r.Min.X }

// Height returns Max.Y - Min.Y.
func (r RectD) Height() float64 { return r.Max.Y - r.Min.Y }

// Contains reports whether p lies within r. closed includes the boundary;
// eps widens the boundary band.
func (r RectD) Contains(p PointD, eps float64, closed bool) bool {
	if closed {
		return p.X >= r.Min.X-eps && p.X <= r.Max.X+eps &&
			p.Y >= r.Min.Y-eps && p.Y <= r.Max.Y+eps
	}

	return p.X > r.Min.X+eps && p.X < r.Max.X-eps &&
		p.Y > r.Min.Y+eps && p.Y < r.Max.Y-eps
}

// Intersects reports whether r and other overlap (closed regions).
func (r RectD) Intersects(other RectD) bool {
	return r.Min.X <= other.Max.X && r.Max.X >= other.Min.X &&
		r.Min.Y <= other.Max.Y && r.Max.Y >= other.Min.Y
}

// Union returns the smallest rectangle containing both r and other.
func (r RectD) Union(other RectD) RectD {
	return RectD{
		Min: PointD{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: PointD{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Intersection returns the overlap of r and other, and false if they do
// not overlap.
func (r RectD) Intersection(other RectD) (RectD, bool) {
	if !r.Intersects(other) {
		return RectD{}, false
	}

	return RectD{
		Min: PointD{X: math.Max(r.Min.X, other.Min.X), Y: math.Max(r.Min.Y, other.Min.Y)},
		Max: PointD{X: math.Min(r.Max.X, other.Max.X), Y: math.Min(r.Max.Y, other.Max.Y)},
	}, true
}

// DistanceVector returns the displacement from p to the nearest point on
// the boundary of r. It is the zero vector when p is inside r (including
// the boundary); otherwise its direction and magnitude describe how far
// and which way p must move to reach r.
func (r RectD) DistanceVector(p PointD) PointD {
	if r.Contains(p, 0, true) {
		return PointD{}
	}
	clampedX := math.Min(math.Max(p.X, r.Min.X), r.Max.X)
	clampedY := math.Min(math.Max(p.Y, r.Min.Y), r.Max.Y)
	nearest := PointD{X: clampedX, Y: clampedY}

	return nearest.Sub(p)
}

// IntersectLine clips l to r using the Liang-Barsky parametric algorithm,
// returning the clipped segment and false if it lies entirely outside r.
func (r RectD) IntersectLine(l LineD) (LineD, bool) {
	v := l.Vector()
	p := [4]float64{-v.X, v.X, -v.Y, v.Y}
	q := [4]float64{l.Start.X - r.Min.X, r.Max.X - l.Start.X, l.Start.Y - r.Min.Y, r.Max.Y - l.Start.Y}
	t0, t1 := 0.0, 1.0
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return LineD{}, false
			}

			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return LineD{}, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return LineD{}, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	if t0 > t1 {
		return LineD{}, false
	}

	return LineD{Start: l.Start.Add(v.Scale(t0)), End: l.Start.Add(v.Scale(t1))}, true
}

// IntersectPolygon clips the convex or concave polygon poly (vertices in
// order, implicitly closed) against r using Sutherland-Hodgman, which
// handles arbitrary simple polygons clipped against a convex window such
// as r and returns a (possibly empty) simple polygon.
func (r RectD) IntersectPolygon(poly []PointD) []PointD {
	if len(poly) == 0 {
		return nil
	}
	edges := []struct {
		inside func(PointD) bool
		isect  func(PointD, PointD) PointD
	}{
		{func(p PointD) bool { return p.X >= r.Min.X }, func(a, b PointD) PointD { return clipX(a, b, r.Min.X) }},
		{func(p PointD) bool { return p.X <= r.Max.X }, func(a, b PointD) PointD { return clipX(a, b, r.Max.X) }},
		{func(p PointD) bool { return p.Y >= r.Min.Y }, func(a, b PointD) PointD { return clipY(a, b, r.Min.Y) }},
		{func(p PointD) bool { return p.Y <= r.Max.Y }, func(a, b PointD) PointD { return clipY(a, b, r.Max.Y) }},
	}

	out := poly
	for _, e := range edges {
		if len(out) == 0 {
			break
		}
		out = clipAgainstEdge(out, e.inside, e.isect)
	}

	return out
}

func clipX(a, b PointD, x float64) PointD {
	t := (x - a.X) / (b.X - a.X)

	return PointD{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func clipY(a, b PointD, y float64) PointD {
	t := (y - a.Y) / (b.Y - a.Y)

	return PointD{X: a.X + t*(b.X-a.X), Y: y}
}

func clipAgainstEdge(poly []PointD, inside func(PointD) bool, isect func(PointD, PointD) PointD) []PointD {
	var out []PointD
	n := len(poly)
	for i := 0; i < n; i++ {
		cur := poly[i]
		prev := poly[(i-1+n)%n]
		curIn, prevIn := inside(cur), inside(prev)
		if curIn {
			if !prevIn {
				out = append(out, isect(prev, cur))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, isect(prev, cur))
		}
	}

	return out
}

// RectI is an axis-aligned rectangle with integer corners.
type RectI struct {
	Min, Max PointI
}

// NewRectI constructs a RectI, returning ErrInvalidRect if min > max on
// either axis.
func NewRectI(min, max PointI) (RectI, error) {
	if min.X > max.X || min.Y > max.Y {
		return RectI{}, ErrInvalidRect
	}

	return RectI{Min: min, Max: max}, nil
}

// ToRectD widens r to float64 corners.
func (r RectI) ToRectD() RectD {
	return RectD{Min: r.Min.ToPointD(), Max: r.Max.ToPointD()}
}
