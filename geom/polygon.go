package geom

import "sort"

// PointPolygonRelation classifies a point's relation to a polygon.
type PointPolygonRelation int

const (
	// Outside means the point lies strictly outside the polygon.
	Outside PointPolygonRelation = iota
	// Inside means the point lies strictly inside the polygon.
	Inside
	// OnEdge means the point lies on an edge, excluding vertices.
	OnEdge
	// OnVertex means the point coincides with a polygon vertex.
	OnVertex
)

// String implements fmt.Stringer.
func (r PointPolygonRelation) String() string {
	switch r {
	case Outside:
		return "OUTSIDE"
	case Inside:
		return "INSIDE"
	case OnEdge:
		return "EDGE"
	case OnVertex:
		return "VERTEX"
	default:
		return "UNKNOWN"
	}
}

// PointInPolygon classifies q against the simple polygon poly (vertices in
// order, implicitly closed), using the even-odd crossings rule with an
// ε-tolerant pre-check for vertex and edge membership.
func PointInPolygon(q PointD, poly []PointD, eps float64) PointPolygonRelation {
	n := len(poly)
	if n == 0 {
		return Outside
	}

	for _, v := range poly {
		if v.Equal(q, eps) {
			return OnVertex
		}
	}

	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		seg := LineD{Start: a, End: b}
		if loc := seg.ClassifyPoint(q, eps); loc == LocationBetween {
			return OnEdge
		}
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > q.Y) != (b.Y > q.Y) {
			xCross := (b.X-a.X)*(q.Y-a.Y)/(b.Y-a.Y) + a.X
			if q.X < xCross {
				inside = !inside
			}
		}
	}
	if inside {
		return Inside
	}

	return Outside
}

// ConvexHull computes the convex hull of pts using Andrew's monotone-chain
// algorithm, returning hull vertices in counter-clockwise order with no
// duplicate start/end point. Collinear boundary points are excluded. Input
// order is not preserved; pts is not mutated.
func ConvexHull(pts []PointD, eps float64) []PointD {
	if len(pts) < 3 {
		out := make([]PointD, len(pts))
		copy(out, pts)

		return out
	}

	sorted := make([]PointD, len(pts))
	copy(sorted, pts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}

		return sorted[i].Y < sorted[j].Y
	})

	// Dedup points equal within eps to avoid zero-length hull edges.
	dedup := sorted[:0:0]
	for _, p := range sorted {
		if len(dedup) > 0 && dedup[len(dedup)-1].Equal(p, eps) {
			continue
		}
		dedup = append(dedup, p)
	}
	sorted = dedup
	if len(sorted) < 3 {
		return sorted
	}

	cross := func(o, a, b PointD) float64 { return a.Sub(o).Cross(b.Sub(o)) }

	lower := make([]PointD, 0, len(sorted))
	for _, p := range sorted {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= eps {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	upper := make([]PointD, 0, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= eps {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

// PolygonArea returns the signed area of poly (positive for
// counter-clockwise winding, negative for clockwise) via the shoelace
// formula.
func PolygonArea(poly []PointD) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}

	return sum / 2
}

// PolygonCentroid returns the area-weighted centroid of poly.
func PolygonCentroid(poly []PointD) PointD {
	n := len(poly)
	if n == 0 {
		return PointD{}
	}
	area := PolygonArea(poly)
	if area == 0 {
		var sx, sy float64
		for _, p := range poly {
			sx += p.X
			sy += p.Y
		}

		return PointD{X: sx / float64(n), Y: sy / float64(n)}
	}

	var cx, cy float64
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		cross := a.X*b.Y - b.X*a.Y
		cx += (a.X + b.X) * cross
		cy += (a.Y + b.Y) * cross
	}

	return PointD{X: cx / (6 * area), Y: cy / (6 * area)}
}
