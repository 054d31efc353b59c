package dcel

import (
	"math"
	"sort"

	"github.com/katalvlaran/planesweep/geom"
)

// facePolygon returns a face's outer ring and its hole rings, by walking
// the OuterEdge and each InnerEdges cycle.
func (s *Subdivision) facePolygon(key int) (outer []geom.PointD, holes [][]geom.PointD) {
	f := s.faces[key]
	if f.OuterEdge >= 0 {
		outer = s.walkPolygon(f.OuterEdge)
	}
	for _, rep := range f.InnerEdges {
		holes = append(holes, s.walkPolygon(rep))
	}

	return outer, holes
}

func (s *Subdivision) walkPolygon(start int) []geom.PointD {
	var poly []geom.PointD
	cur := start
	for {
		poly = append(poly, s.vertices[s.edges[cur].Origin].Pos)
		cur = s.edges[cur].Next
		if cur == start || cur < 0 {
			break
		}
	}

	return poly
}

func (s *Subdivision) pointInFace(q geom.PointD, key int) bool {
	outer, holes := s.facePolygon(key)
	if outer != nil && geom.PointInPolygon(q, outer, s.eps) == geom.Outside {
		return false
	}
	for _, h := range holes {
		if geom.PointInPolygon(q, h, s.eps) == geom.Inside {
			return false
		}
	}

	return true
}

// FindFaceBrute locates the face containing q by testing every bounded
// face's polygon in ascending key order, falling back to the unbounded
// face if none contains q. O(faces * vertices).
func (s *Subdivision) FindFaceBrute(q geom.PointD) (int, error) {
	keys := s.boundedFaceKeysSorted()
	for _, k := range keys {
		if s.pointInFace(q, k) {
			return k, nil
		}
	}

	return UnboundedFaceKey, nil
}

func (s *Subdivision) boundedFaceKeysSorted() []int {
	keys := make([]int, 0, len(s.faces))
	for k := range s.faces {
		if k != UnboundedFaceKey {
			keys = append(keys, k)
		}
	}
	sort.Ints(keys)

	return keys
}

// orderedLocator is a deterministic point-location accelerator built by
// inserting every bounded face, in ascending face-key order, into a list
// sorted by the face's bounding-box minimum X. A query narrows to the
// faces whose bounding box could contain it before falling back to exact
// point-in-polygon tests on that (typically small) candidate set. This is
// a simplification of a full randomized trapezoidal-map history DAG,
// traded for determinism and a much smaller implementation, per the
// ordered-vs-randomized choice recorded for findFace.
type orderedLocator struct {
	entries []orderedEntry
}

type orderedEntry struct {
	key    int
	bounds geom.RectD
}

func boundingBox(pts []geom.PointD) geom.RectD {
	b := geom.NewRectDFromPoints(pts[0], pts[0])
	for _, p := range pts[1:] {
		b = geom.NewRectDFromPoints(
			geom.PointD{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y)},
			geom.PointD{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y)},
		)
	}

	return b
}

func (s *Subdivision) buildOrderedLocator() *orderedLocator {
	keys := s.boundedFaceKeysSorted()
	entries := make([]orderedEntry, 0, len(keys))
	for _, k := range keys {
		outer, _ := s.facePolygon(k)
		if len(outer) == 0 {
			continue
		}
		entries = append(entries, orderedEntry{key: k, bounds: boundingBox(outer)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].bounds.Min.X < entries[j].bounds.Min.X })

	return &orderedLocator{entries: entries}
}

// FindFaceOrdered locates the face containing q using the cached ordered
// locator, rebuilding it if the subdivision has changed since it was
// last built.
func (s *Subdivision) FindFaceOrdered(q geom.PointD) (int, error) {
	if s.ordered == nil {
		s.ordered = s.buildOrderedLocator()
	}

	for _, e := range s.ordered.entries {
		if q.X < e.bounds.Min.X-s.eps {
			break
		}
		if q.X > e.bounds.Max.X+s.eps || q.Y < e.bounds.Min.Y-s.eps || q.Y > e.bounds.Max.Y+s.eps {
			continue
		}
		if s.pointInFace(q, e.key) {
			return e.key, nil
		}
	}

	return UnboundedFaceKey, nil
}

// FindNearestEdge returns the key of the half-edge (of either direction
// of its undirected edge) whose segment minimizes distance to q, along
// with that distance.
func (s *Subdivision) FindNearestEdge(q geom.PointD) (int, float64, error) {
	if len(s.edges) == 0 {
		return -1, 0, ErrEdgeNotFound
	}

	bestKey := -1
	bestDist := 0.0
	keys := make([]int, 0, len(s.edges))
	for k := range s.edges {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	for _, k := range keys {
		seg, err := s.Segment(k)
		if err != nil {
			continue
		}
		d := distanceSquaredToSegment(q, seg)
		if bestKey < 0 || d < bestDist {
			bestKey, bestDist = k, d
		}
	}

	return bestKey, math.Sqrt(bestDist), nil
}

func distanceSquaredToSegment(q geom.PointD, l geom.LineD) float64 {
	d := l.End.Sub(l.Start)
	len2 := d.X*d.X + d.Y*d.Y
	if len2 == 0 {
		return q.DistanceSquaredTo(l.Start)
	}
	t := q.Sub(l.Start).Dot(d) / len2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := l.Start.Add(d.Scale(t))

	return q.DistanceSquaredTo(proj)
}

// FindNearestVertex returns the key of the vertex closest to q, using
// the ε-ordered vertex index.
func (s *Subdivision) FindNearestVertex(q geom.PointD) (int, error) {
	_, key, ok := s.vertexIndex.FindNearest(q)
	if !ok {
		return -1, ErrVertexNotFound
	}

	return key, nil
}
