package voronoi

import "github.com/katalvlaran/planesweep/geom"

// regionsFromEdges derives each site's bounded region polygon directly
// from the site set and the bounding rectangle, by intersecting, for
// every other site, the half-plane of points at least as close to this
// site as to that one. This is equivalent to walking the edge set built by the sweep
// but does not depend on it, which keeps the degenerate-input code paths
// (zero/two/collinear sites) able to share the same region logic as the
// general sweep.
func regionsFromEdges(sites []geom.PointD, _ []VoronoiEdge, bounds geom.RectD) [][]geom.PointD {
	out := make([][]geom.PointD, len(sites))
	base := rectPolygon(bounds)
	for i, s := range sites {
		poly := base
		for j, o := range sites {
			if i == j {
				continue
			}
			poly = clipHalfPlane(poly, s, o)
			if len(poly) == 0 {
				break
			}
		}
		out[i] = poly
	}

	return out
}

func rectPolygon(r geom.RectD) []geom.PointD {
	return []geom.PointD{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
}

// clipHalfPlane clips poly to the set of points at least as close to
// keep as to other, using Sutherland-Hodgman against the perpendicular
// bisector of keep and other.
func clipHalfPlane(poly []geom.PointD, keep, other geom.PointD) []geom.PointD {
	if len(poly) == 0 {
		return nil
	}
	mid := keep.Add(other).Scale(0.5)
	dir := other.Sub(keep)

	inside := func(p geom.PointD) bool { return p.Sub(mid).Dot(dir) <= 0 }
	isect := func(a, b geom.PointD) geom.PointD {
		ab := b.Sub(a)
		denom := ab.Dot(dir)
		if denom == 0 {
			return a
		}
		t := mid.Sub(a).Dot(dir) / denom

		return a.Add(ab.Scale(t))
	}

	var out []geom.PointD
	n := len(poly)
	for i := 0; i < n; i++ {
		cur := poly[i]
		prev := poly[(i-1+n)%n]
		curIn, prevIn := inside(cur), inside(prev)
		switch {
		case curIn && prevIn:
			out = append(out, cur)
		case curIn && !prevIn:
			out = append(out, isect(prev, cur), cur)
		case !curIn && prevIn:
			out = append(out, isect(prev, cur))
		}
	}

	return out
}
