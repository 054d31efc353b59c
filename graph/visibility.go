package graph

import (
	"math"
	"sort"

	"github.com/katalvlaran/planesweep/geom"
)

// angularArc is a closed interval [Lo, Hi] of bearing angles (radians),
// normalized to never wrap past 2π; an arc that would wrap is split into
// two before being stored anywhere.
type angularArc struct{ Lo, Hi float64 }

// Visibility returns every node visible from source: nodes are swept
// outward in order of increasing distance, and each node deemed opaque
// (per the caller's predicate) occludes an angular arc, from source's
// point of view, equal to the angular span of its world polygon (or a
// single bearing, for a node with no polygon). A later node counts as
// visible if the fraction of its own arc not covered by any closer
// occluder is at least visibleFraction.
//
// radius limits the sweep to nodes within that world distance of
// source; zero disables the limit.
func Visibility[N comparable](g Graph[N], source N, radius float64, opaque func(N) bool, visibleFraction float64) ([]N, error) {
	if !g.HasNode(source) {
		return nil, ErrSourceNotFound
	}
	srcPos, ok := g.Position(source)
	if !ok {
		return nil, ErrNoPosition
	}

	type candidate struct {
		node N
		dist float64
		arcs []angularArc
	}

	var candidates []candidate
	for _, n := range g.Nodes() {
		if n == source {
			continue
		}
		pos, ok := g.Position(n)
		if !ok {
			continue
		}
		d := srcPos.DistanceTo(pos)
		if radius > 0 && d > radius {
			continue
		}
		candidates = append(candidates, candidate{node: n, dist: d, arcs: nodeArcs[N](g, srcPos, n, pos)})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].dist < candidates[j].dist })

	var occluders []angularArc
	var visible []N

	for _, c := range candidates {
		if arcVisibleFraction(c.arcs, occluders) >= visibleFraction {
			visible = append(visible, c.node)
		}
		if opaque(c.node) {
			for _, a := range c.arcs {
				occluders = insertMergeArc(occluders, a)
			}
		}
	}

	return visible, nil
}

// nodeArcs returns the angular span(s) node n subtends as seen from src,
// splitting at the 0/2π seam if the span crosses it. A node with no
// world polygon subtends a single bearing: a zero-width arc.
func nodeArcs[N comparable](g Graph[N], src geom.PointD, n N, pos geom.PointD) []angularArc {
	if poly, ok := g.Polygon(n); ok && len(poly) > 0 {
		return arcFromPolygon(src, poly)
	}

	b := bearing(src, pos)

	return []angularArc{{Lo: b, Hi: b}}
}

func bearing(from, to geom.PointD) float64 {
	v := to.Sub(from)
	a := math.Atan2(v.Y, v.X)
	if a < 0 {
		a += 2 * math.Pi
	}

	return a
}

// arcFromPolygon computes the angular span a polygon subtends as seen
// from src: the min-to-max bearing among its vertices once all bearings
// are rotated so the polygon's centroid direction sits at π, avoiding a
// spurious full-circle span for polygons that straddle bearing 0.
func arcFromPolygon(src geom.PointD, poly []geom.PointD) []angularArc {
	if len(poly) == 0 {
		return nil
	}
	centroidBearing := bearing(src, geom.PolygonCentroid(poly))
	rotate := math.Pi - centroidBearing

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range poly {
		a := bearing(src, p) + rotate
		a = math.Mod(a, 2*math.Pi)
		if a < 0 {
			a += 2 * math.Pi
		}
		if a < lo {
			lo = a
		}
		if a > hi {
			hi = a
		}
	}

	return splitArc(angularArc{Lo: lo - rotate, Hi: hi - rotate})
}

// splitArc normalizes an arc into one or two non-wrapping arcs within
// [0, 2π).
func splitArc(a angularArc) []angularArc {
	lo, hi := math.Mod(a.Lo, 2*math.Pi), math.Mod(a.Hi, 2*math.Pi)
	if lo < 0 {
		lo += 2 * math.Pi
	}
	if hi < 0 {
		hi += 2 * math.Pi
	}
	if lo <= hi {
		return []angularArc{{Lo: lo, Hi: hi}}
	}

	return []angularArc{{Lo: lo, Hi: 2 * math.Pi}, {Lo: 0, Hi: hi}}
}

// insertMergeArc inserts a into a sorted, non-overlapping arc list,
// merging any arcs it now overlaps or touches.
func insertMergeArc(arcs []angularArc, a angularArc) []angularArc {
	arcs = append(arcs, a)
	sort.Slice(arcs, func(i, j int) bool { return arcs[i].Lo < arcs[j].Lo })

	merged := arcs[:1]
	for _, cur := range arcs[1:] {
		last := &merged[len(merged)-1]
		if cur.Lo <= last.Hi {
			if cur.Hi > last.Hi {
				last.Hi = cur.Hi
			}

			continue
		}
		merged = append(merged, cur)
	}

	return merged
}

// arcVisibleFraction returns the fraction of candidate (the union of its
// arcs) not covered by occluders. A zero-width candidate arc is either
// fully covered (fraction 0) or not (fraction 1), since a point has no
// partial coverage.
func arcVisibleFraction(candidate, occluders []angularArc) float64 {
	var totalWidth, coveredWidth float64
	for _, c := range candidate {
		width := c.Hi - c.Lo
		if width == 0 {
			if arcPointCovered(c.Lo, occluders) {
				return 0
			}

			continue
		}
		totalWidth += width
		coveredWidth += coveredLength(c, occluders)
	}
	if totalWidth == 0 {
		return 1
	}

	return (totalWidth - coveredWidth) / totalWidth
}

func arcPointCovered(angle float64, occluders []angularArc) bool {
	for _, o := range occluders {
		if angle >= o.Lo && angle <= o.Hi {
			return true
		}
	}

	return false
}

func coveredLength(c angularArc, occluders []angularArc) float64 {
	var total float64
	for _, o := range occluders {
		lo := math.Max(c.Lo, o.Lo)
		hi := math.Min(c.Hi, o.Hi)
		if hi > lo {
			total += hi - lo
		}
	}

	return total
}
