package geom

import "sort"

// PrimaryAxis selects which coordinate a PointDComparator orders on
// first.
type PrimaryAxis int

const (
	// YPrimary orders by Y then X (screen-sweep order).
	YPrimary PrimaryAxis = iota
	// XPrimary orders by X then Y (needed for x-band range pruning).
	XPrimary
)

// PointDComparator orders PointD values lexicographically along a
// primary axis then the other, within a tolerance ε. It underlies the
// OrderedPointSet in package collections; the sweep-line event queues in
// mlsi and voronoi use their own exact orderings.
type PointDComparator struct {
	Eps   float64
	Axis  PrimaryAxis
}

// NewPointDComparator constructs a Y-primary comparator with the given
// tolerance. A negative eps is rejected with ErrNegativeEpsilon.
func NewPointDComparator(eps float64) (PointDComparator, error) {
	return NewPointDComparatorAxis(eps, YPrimary)
}

// NewPointDComparatorAxis constructs a comparator with the given
// tolerance and primary axis. A negative eps is rejected with
// ErrNegativeEpsilon.
func NewPointDComparatorAxis(eps float64, axis PrimaryAxis) (PointDComparator, error) {
	if eps < 0 {
		return PointDComparator{}, ErrNegativeEpsilon
	}

	return PointDComparator{Eps: eps, Axis: axis}, nil
}

// Less reports whether a sorts strictly before b along the comparator's
// primary axis, ties broken by the other axis. Values within ε on both
// axes are never Less of each other.
func (c PointDComparator) Less(a, b PointD) bool {
	p1, s1, p2, s2 := a.Y, a.X, b.Y, b.X
	if c.Axis == XPrimary {
		p1, s1, p2, s2 = a.X, a.Y, b.X, b.Y
	}
	if p1 < p2-c.Eps {
		return true
	}
	if p1 > p2+c.Eps {
		return false
	}

	return s1 < s2-c.Eps
}

// Primary returns q's coordinate on the comparator's primary axis.
func (c PointDComparator) Primary(q PointD) float64 {
	if c.Axis == XPrimary {
		return q.X
	}

	return q.Y
}

// Equal reports whether a and b are within ε on both axes.
func (c PointDComparator) Equal(a, b PointD) bool { return a.Equal(b, c.Eps) }

// Compare returns -1, 0, or 1 following the usual three-way convention.
func (c PointDComparator) Compare(a, b PointD) int {
	switch {
	case c.Equal(a, b):
		return 0
	case c.Less(a, b):
		return -1
	default:
		return 1
	}
}

// Sort orders pts in place by Less and returns ErrAmbiguousOrder if any
// adjacent pair in the sorted result compares as Less in neither
// direction yet is not identical — meaning ε is too coarse relative to
// the point spacing to produce a well-defined total order. Exact
// duplicates are accepted.
func (c PointDComparator) Sort(pts []PointD) error {
	sort.Slice(pts, func(i, j int) bool { return c.Less(pts[i], pts[j]) })
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		if !c.Less(a, b) && !c.Less(b, a) && a != b {
			return ErrAmbiguousOrder
		}
	}

	return nil
}

// FindNearest returns the point in pts closest to q by Euclidean
// distance, and false if pts is empty. Ties break toward the earlier
// element in pts.
func FindNearest(pts []PointD, q PointD) (PointD, bool) {
	if len(pts) == 0 {
		return PointD{}, false
	}
	best := pts[0]
	bestD := best.DistanceSquaredTo(q)
	for _, p := range pts[1:] {
		if d := p.DistanceSquaredTo(q); d < bestD {
			best, bestD = p, d
		}
	}

	return best, true
}

// FindRange returns every point in pts contained in r (closed, ε=0).
// Callers needing an x-band-pruned search over a pre-sorted set should
// use collections.OrderedPointSet.FindRange instead; this is the
// unindexed reference form.
func FindRange(pts []PointD, r RectD) []PointD {
	var out []PointD
	for _, p := range pts {
		if r.Contains(p, 0, true) {
			out = append(out, p)
		}
	}

	return out
}
