package geom

import "math"

// LineLocation classifies where a point lies relative to a line segment.
type LineLocation int

const (
	// LocationBefore is before the segment's start, on the infinite line.
	LocationBefore LineLocation = iota
	// LocationStart is at the segment's start endpoint.
	LocationStart
	// LocationBetween is strictly between the two endpoints.
	LocationBetween
	// LocationEnd is at the segment's end endpoint.
	LocationEnd
	// LocationAfter is beyond the segment's end, on the infinite line.
	LocationAfter
	// LocationLeft is off the infinite line, to its left.
	LocationLeft
	// LocationRight is off the infinite line, to its right.
	LocationRight
)

// String implements fmt.Stringer for debugging/test output.
func (l LineLocation) String() string {
	switch l {
	case LocationBefore:
		return "BEFORE"
	case LocationStart:
		return "START"
	case LocationBetween:
		return "BETWEEN"
	case LocationEnd:
		return "END"
	case LocationAfter:
		return "AFTER"
	case LocationLeft:
		return "LEFT"
	case LocationRight:
		return "RIGHT"
	default:
		return "UNKNOWN"
	}
}

// LineRelation classifies the relationship between two lines.
type LineRelation int

const (
	// RelationDivergent lines meet at exactly one point (not parallel).
	RelationDivergent LineRelation = iota
	// RelationParallel lines never meet (same direction, different offset).
	RelationParallel
	// RelationCollinear lines lie on the same infinite line.
	RelationCollinear
)

// LineIntersection is the result of intersecting two lines.
type LineIntersection struct {
	Relation LineRelation
	// Shared is the intersection point for RelationDivergent, or one
	// representative point of the overlap for RelationCollinear with a
	// non-empty overlap. Zero-valued and ignored for RelationParallel or
	// a disjoint RelationCollinear pair.
	Shared    PointD
	HasShared bool
	// Loc1/Loc2 classify Shared on line 1/line 2 respectively (on the
	// infinite line for RelationDivergent).
	Loc1, Loc2 LineLocation
}

// LineD is a line segment with float64 endpoints.
type LineD struct {
	Start, End PointD
}

// Vector returns End-Start.
func (l LineD) Vector() PointD { return l.End.Sub(l.Start) }

// Length returns the Euclidean length of the segment.
func (l LineD) Length() float64 { return l.Vector().Length() }

// Slope returns dy/dx; +Inf/-Inf for vertical segments (dx==0).
func (l LineD) Slope() float64 {
	v := l.Vector()
	if v.X == 0 {
		if v.Y >= 0 {
			return math.Inf(1)
		}

		return math.Inf(-1)
	}

	return v.Y / v.X
}

// InverseSlope returns dx/dy; +Inf/-Inf for horizontal segments (dy==0).
func (l LineD) InverseSlope() float64 {
	v := l.Vector()
	if v.Y == 0 {
		if v.X >= 0 {
			return math.Inf(1)
		}

		return math.Inf(-1)
	}

	return v.X / v.Y
}

// Angle returns the polar angle of the segment's direction vector, in
// [0, 2*pi).
func (l LineD) Angle() float64 {
	v := l.Vector()
	a := math.Atan2(v.Y, v.X)
	if a < 0 {
		a += 2 * math.Pi
	}

	return a
}

// Reverse returns the segment with endpoints swapped.
func (l LineD) Reverse() LineD { return LineD{Start: l.End, End: l.Start} }

// IsDegenerate reports whether Start equals End within ε.
func (l LineD) IsDegenerate(eps float64) bool { return l.Start.Equal(l.End, eps) }

// ClassifyPoint classifies q relative to the infinite line through l and,
// when q projects within the segment, relative to the segment's
// endpoints. ε widens the BEFORE/START/BETWEEN/END/AFTER bands to absorb
// floating-point noise; a ε=0 call performs exact classification.
func (l LineD) ClassifyPoint(q PointD, eps float64) LineLocation {
	v := l.Vector()
	w := q.Sub(l.Start)
	cross := v.Cross(w)
	if math.Abs(cross) > eps*math.Max(1, v.Length()) {
		if cross > 0 {
			return LocationLeft
		}

		return LocationRight
	}

	// q is on the infinite line (within tolerance); locate it along the
	// segment by projecting onto v.
	t := 0.0
	vlen2 := v.Dot(v)
	if vlen2 > 0 {
		t = v.Dot(w) / vlen2
	}
	switch {
	case math.Abs(t) <= eps:
		return LocationStart
	case math.Abs(t-1) <= eps:
		return LocationEnd
	case t < 0:
		return LocationBefore
	case t > 1:
		return LocationAfter
	default:
		return LocationBetween
	}
}

// Intersect classifies the relationship between l and other and, for
// RelationDivergent or an overlapping RelationCollinear pair, computes the
// shared point. eps is the tolerance used to decide parallelism
// (|cross(dir1,dir2)| <= eps) and collinearity; pass 0 for exact
// arithmetic.
func (l LineD) Intersect(other LineD, eps float64) LineIntersection {
	d1 := l.Vector()
	d2 := other.Vector()
	denom := d1.Cross(d2)

	if math.Abs(denom) <= eps {
		// Parallel or collinear: check whether other.Start lies on l's
		// infinite line.
		w := other.Start.Sub(l.Start)
		if math.Abs(d1.Cross(w)) > eps*math.Max(1, d1.Length()) {
			return LineIntersection{Relation: RelationParallel}
		}

		return l.collinearIntersect(other, eps)
	}

	w := other.Start.Sub(l.Start)
	t := w.Cross(d2) / denom
	shared := l.Start.Add(d1.Scale(t))

	return LineIntersection{
		Relation:  RelationDivergent,
		Shared:    shared,
		HasShared: true,
		Loc1:      l.ClassifyPoint(shared, eps),
		Loc2:      other.ClassifyPoint(shared, eps),
	}
}

// collinearIntersect computes the overlap of two collinear segments,
// parameterizing both along l's direction vector.
func (l LineD) collinearIntersect(other LineD, eps float64) LineIntersection {
	d1 := l.Vector()
	vlen2 := d1.Dot(d1)
	if vlen2 == 0 {
		// l is degenerate; fall back to point containment on other.
		loc := other.ClassifyPoint(l.Start, eps)
		if loc == LocationBefore || loc == LocationAfter {
			return LineIntersection{Relation: RelationCollinear}
		}

		return LineIntersection{
			Relation: RelationCollinear, Shared: l.Start, HasShared: true,
			Loc1: LocationStart, Loc2: loc,
		}
	}

	param := func(p PointD) float64 { return p.Sub(l.Start).Dot(d1) / vlen2 }
	a0, a1 := 0.0, 1.0
	b0, b1 := param(other.Start), param(other.End)
	if b0 > b1 {
		b0, b1 = b1, b0
	}
	lo, hi := math.Max(a0, b0), math.Min(a1, b1)
	if lo > hi+eps {
		return LineIntersection{Relation: RelationCollinear}
	}
	mid := (lo + hi) / 2
	shared := l.Start.Add(d1.Scale(mid))

	return LineIntersection{
		Relation:  RelationCollinear,
		Shared:    shared,
		HasShared: true,
		Loc1:      l.ClassifyPoint(shared, eps),
		Loc2:      other.ClassifyPoint(shared, eps),
	}
}

// LineI is a line segment with integer endpoints.
type LineI struct {
	Start, End PointI
}

// ToLineD widens l to float64 endpoints.
func (l LineI) ToLineD() LineD {
	return LineD{Start: l.Start.ToPointD(), End: l.End.ToPointD()}
}

// IsDegenerate reports whether Start equals End exactly.
func (l LineI) IsDegenerate() bool { return l.Start.Equal(l.End) }
