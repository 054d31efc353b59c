package mlsi

import (
	"math"

	"github.com/katalvlaran/planesweep/geom"
)

// FindSimple finds every crossing among lines by testing all C(n,2) pairs.
// It is the O(n^2) reference implementation that Find is cross-validated
// against: both report the same incidences, modulo ordering.
func FindSimple(lines []geom.LineD, opts ...Option) []LineIncidence {
	cfg := resolve(opts)

	var out []LineIncidence
	for i := 0; i < len(lines); i++ {
		for j := i + 1; j < len(lines); j++ {
			out = append(out, classifyPair(i, j, lines[i], lines[j], cfg.eps)...)
		}
	}

	return out
}

// classifyPair returns zero, one, or two incidences between segments i and
// j (two only for a non-degenerate collinear overlap, recorded as its two
// endpoints per the collinear-overlap contract).
func classifyPair(i, j int, a, b geom.LineD, eps float64) []LineIncidence {
	r := a.Intersect(b, eps)
	switch r.Relation {
	case geom.RelationDivergent:
		if isOnSegment(r.Loc1) && isOnSegment(r.Loc2) {
			return []LineIncidence{{Line1: i, Line2: j, Shared: r.Shared, Relation: r.Relation, Loc1: r.Loc1, Loc2: r.Loc2}}
		}

		return nil
	case geom.RelationCollinear:
		lo, hi, ok := collinearOverlap(a, b, eps)
		if !ok {
			return nil
		}
		if lo.Equal(hi, eps) {
			return []LineIncidence{{
				Line1: i, Line2: j, Shared: lo, Relation: r.Relation,
				Loc1: a.ClassifyPoint(lo, eps), Loc2: b.ClassifyPoint(lo, eps),
			}}
		}

		return []LineIncidence{
			{Line1: i, Line2: j, Shared: lo, Relation: r.Relation, Loc1: a.ClassifyPoint(lo, eps), Loc2: b.ClassifyPoint(lo, eps)},
			{Line1: i, Line2: j, Shared: hi, Relation: r.Relation, Loc1: a.ClassifyPoint(hi, eps), Loc2: b.ClassifyPoint(hi, eps)},
		}
	default:
		return nil
	}
}

func isOnSegment(loc geom.LineLocation) bool {
	return loc == geom.LocationStart || loc == geom.LocationBetween || loc == geom.LocationEnd
}

// collinearOverlap returns the two endpoints of the overlap between two
// collinear segments a and b, parameterized along a's direction vector.
func collinearOverlap(a, b geom.LineD, eps float64) (lo, hi geom.PointD, ok bool) {
	d := a.Vector()
	vlen2 := d.Dot(d)
	if vlen2 == 0 {
		return geom.PointD{}, geom.PointD{}, false
	}

	param := func(p geom.PointD) float64 { return p.Sub(a.Start).Dot(d) / vlen2 }
	a0, a1 := 0.0, 1.0
	b0, b1 := param(b.Start), param(b.End)
	if b0 > b1 {
		b0, b1 = b1, b0
	}
	loT, hiT := math.Max(a0, b0), math.Min(a1, b1)
	if loT > hiT+eps {
		return geom.PointD{}, geom.PointD{}, false
	}

	return a.Start.Add(d.Scale(loT)), a.Start.Add(d.Scale(hiT)), true
}
