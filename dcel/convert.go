package dcel

import "github.com/katalvlaran/planesweep/geom"

// ToLines returns one geom.LineD per undirected edge, each in no
// particular orientation.
func (s *Subdivision) ToLines() []geom.LineD {
	out := make([]geom.LineD, 0, len(s.edges)/2)
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
		out = append(out, seg)
	}

	return out
}

// ToPolygons returns the outer boundary of every bounded face, in
// ascending face-key order, each ready for a round trip through
// FromPolygons.
func (s *Subdivision) ToPolygons() [][]geom.PointD {
	keys := s.boundedFaceKeysSorted()
	out := make([][]geom.PointD, 0, len(keys))
	for _, k := range keys {
		outer, _ := s.facePolygon(k)
		if len(outer) > 0 {
			out = append(out, outer)
		}
	}

	return out
}
