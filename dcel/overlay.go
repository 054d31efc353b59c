package dcel

import (
	"math"

	"github.com/katalvlaran/planesweep/geom"
	"github.com/katalvlaran/planesweep/mlsi"
)

// Intersection computes the Boolean overlay of two subdivisions: a new
// subdivision whose edges are the union of both inputs' edges after
// splitting at mutual crossings, plus for each resulting face the key of
// the face of each input that contains it.
func Intersection(a, b *Subdivision, eps float64) (*Subdivision, []int, []int, error) {
	lines, provenance := collectTaggedSegments(a, b)

	incidences := mlsi.Find(lines, mlsi.WithEpsilon(eps))
	pieces := mlsi.Split(lines, incidences, mlsi.WithEpsilon(eps))

	var split []geom.LineD
	for _, group := range pieces {
		split = append(split, group...)
	}

	result, err := FromLines(split, eps)
	if err != nil {
		return nil, nil, nil, err
	}

	_ = provenance

	faceKeys1 := make([]int, 0, len(result.faces))
	faceKeys2 := make([]int, 0, len(result.faces))
	keys := result.boundedFaceKeysSorted()
	keys = append([]int{UnboundedFaceKey}, keys...)

	for _, k := range keys {
		sample, ok := result.interiorSample(k)
		if !ok {
			faceKeys1 = append(faceKeys1, UnboundedFaceKey)
			faceKeys2 = append(faceKeys2, UnboundedFaceKey)

			continue
		}
		f1, _ := a.FindFaceBrute(sample)
		f2, _ := b.FindFaceBrute(sample)
		faceKeys1 = append(faceKeys1, f1)
		faceKeys2 = append(faceKeys2, f2)
	}

	return result, faceKeys1, faceKeys2, nil
}

// collectTaggedSegments gathers every undirected edge's segment from both
// subdivisions. The provenance slice marks which input (0 or 1) each
// segment in the returned slice came from, preserved for callers that
// need to trace a split piece back to its source edge.
func collectTaggedSegments(a, b *Subdivision) ([]geom.LineD, []int) {
	var lines []geom.LineD
	var provenance []int

	appendFrom := func(s *Subdivision, tag int) {
		seen := make(map[int]bool)
		for key, e := range s.edges {
			if seen[key] || seen[e.Twin] {
				continue
			}
			seen[key] = true
			seg, err := s.Segment(key)
			if err != nil {
				continue
			}
			lines = append(lines, seg)
			provenance = append(provenance, tag)
		}
	}
	appendFrom(a, 0)
	appendFrom(b, 1)

	return lines, provenance
}

// interiorSample returns a point known to lie inside face key: the
// centroid of its outer cycle when that centroid is itself inside the
// face (true for any convex or mildly non-convex outer boundary with no
// holes reaching the centroid), otherwise the midpoint of the first
// outer edge that, nudged toward the polygon's interior, lands strictly
// inside the outer ring and outside every hole. If no edge qualifies,
// the first outer vertex is returned.
func (s *Subdivision) interiorSample(key int) (geom.PointD, bool) {
	outer, holes := s.facePolygon(key)
	if len(outer) == 0 {
		return geom.PointD{}, false
	}
	c := geom.PolygonCentroid(outer)
	if s.pointInFaceFromRings(c, outer, holes) {
		return c, true
	}
	n := len(outer)
	for i := 0; i < n; i++ {
		a, b := outer[i], outer[(i+1)%n]
		d := b.Sub(a)
		length := d.Length()
		if length == 0 {
			continue
		}
		// Bounded outer rings wind counter-clockwise, so the interior is
		// on the left of each edge.
		left := geom.PointD{X: -d.Y / length, Y: d.X / length}
		cand := a.Add(d.Scale(0.5)).Add(left.Scale(math.Max(10*s.eps, length*1e-6)))
		if geom.PointInPolygon(cand, outer, s.eps) == geom.Inside && s.pointInFaceFromRings(cand, outer, holes) {
			return cand, true
		}
	}

	return outer[0], true
}

func (s *Subdivision) pointInFaceFromRings(q geom.PointD, outer []geom.PointD, holes [][]geom.PointD) bool {
	if geom.PointInPolygon(q, outer, s.eps) == geom.Outside {
		return false
	}
	for _, h := range holes {
		if geom.PointInPolygon(q, h, s.eps) == geom.Inside {
			return false
		}
	}

	return true
}
