package dcel

import (
	"math"
	"sort"

	"github.com/katalvlaran/planesweep/geom"
)

// AddEdge inserts a new edge between p and q, creating either endpoint as
// a vertex if none exists within ε. It fails without mutating the
// subdivision if the open segment pq crosses the interior of any
// existing edge. Returns the key of the half-edge directed p->q.
func (s *Subdivision) AddEdge(p, q geom.PointD) (int, error) {
	if p.Equal(q, s.eps) {
		return -1, ErrDegenerateSegment
	}
	if s.crossesAnyEdge(p, q, -1) {
		return -1, ErrEdgeCrossesExisting
	}

	e1, _ := s.addSegment(p, q)
	s.rebuildTopology()

	return e1, nil
}

// crossesAnyEdge reports whether the open segment p-q crosses the
// interior of any existing edge other than skip. Touching at a shared
// endpoint, or running collinear without overlapping, is not a crossing.
func (s *Subdivision) crossesAnyEdge(p, q geom.PointD, skip int) bool {
	candidate := geom.LineD{Start: p, End: q}
	seen := make(map[int]bool)
	for key, e := range s.edges {
		if key == skip || e.Twin == skip || seen[e.Twin] {
			continue
		}
		seen[key] = true

		seg, err := s.Segment(key)
		if err != nil {
			continue
		}
		inter := candidate.Intersect(seg, s.eps)
		switch inter.Relation {
		case geom.RelationDivergent:
			if inter.Loc1 == geom.LocationBetween && inter.Loc2 == geom.LocationBetween {
				return true
			}
		case geom.RelationCollinear:
			if loA, hiA, ok := collinearOverlapInterval(candidate, seg, s.eps); ok && hiA-loA > s.eps {
				return true
			}
		}
	}

	return false
}

// collinearOverlapInterval returns the overlap, in units of distance
// along a, between two known-collinear segments a and b.
func collinearOverlapInterval(a, b geom.LineD, eps float64) (lo, hi float64, ok bool) {
	d := a.End.Sub(a.Start)
	dd := d.X*d.X + d.Y*d.Y
	if dd < eps*eps {
		return 0, 0, false
	}
	length := math.Sqrt(dd)
	param := func(p geom.PointD) float64 {
		v := p.Sub(a.Start)

		return (v.X*d.X + v.Y*d.Y) / length
	}

	aLo, aHi := 0.0, length
	bLo, bHi := param(b.Start), param(b.End)
	if bLo > bHi {
		bLo, bHi = bHi, bLo
	}

	lo = math.Max(aLo, bLo)
	hi = math.Min(aHi, bHi)

	return lo, hi, lo < hi
}

// RemoveEdge deletes the undirected edge identified by either of its two
// half-edge keys. If either endpoint is left with no incident edge, that
// vertex is removed too.
func (s *Subdivision) RemoveEdge(key int) error {
	e, err := s.HalfEdge(key)
	if err != nil {
		return err
	}
	twin := s.edges[e.Twin]

	origin, dest := e.Origin, twin.Origin
	delete(s.edges, e.Key)
	delete(s.edges, twin.Key)

	s.dropVertexIfIsolated(origin)
	s.dropVertexIfIsolated(dest)

	s.rebuildTopology()

	return nil
}

func (s *Subdivision) dropVertexIfIsolated(vertexKey int) {
	for _, e := range s.edges {
		if e.Origin == vertexKey {
			return
		}
	}
	v, ok := s.vertices[vertexKey]
	if !ok {
		return
	}
	s.vertexIndex.Remove(v.Pos)
	delete(s.vertices, vertexKey)
}

// SplitEdge inserts a new vertex at the midpoint of the undirected edge
// identified by key, replacing it with two collinear edges. Face
// topology is unchanged. Returns the new vertex's key.
func (s *Subdivision) SplitEdge(key int) (int, error) {
	e, err := s.HalfEdge(key)
	if err != nil {
		return -1, err
	}
	twin := s.edges[e.Twin]
	from := s.vertices[e.Origin].Pos
	to := s.vertices[twin.Origin].Pos
	mid := geom.PointD{X: (from.X + to.X) / 2, Y: (from.Y + to.Y) / 2}

	delete(s.edges, e.Key)
	delete(s.edges, twin.Key)

	s.addSegment(from, mid)
	s.addSegment(mid, to)
	s.rebuildTopology()

	midKey, _ := s.vertexIndex.Get(mid)

	return midKey, nil
}

// MoveVertex relocates the vertex at p to q. It fails without mutating
// the subdivision if q coincides with a different vertex or if any
// incident edge, under its new position, would cross a non-incident
// edge.
func (s *Subdivision) MoveVertex(p, q geom.PointD) error {
	key, ok := s.vertexIndex.Get(p)
	if !ok {
		return ErrVertexNotFound
	}
	if other, ok := s.vertexIndex.Get(q); ok && other != key {
		return ErrVertexCoincidence
	}

	for ek, e := range s.edges {
		if e.Origin != key {
			continue
		}
		far := s.vertices[s.edges[e.Twin].Origin].Pos
		if s.crossesAnyEdge(q, far, ek) || s.crossesAnyEdge(q, far, e.Twin) {
			return ErrEdgeCrossesExisting
		}
	}

	s.vertexIndex.Remove(p)
	s.vertices[key].Pos = q
	s.vertexIndex.Put(q, key)
	s.rebuildTopology()

	return nil
}

// RemoveVertex deletes the vertex at p, which must have degree exactly
// two, merging its two incident edges into one spanning their far
// endpoints.
func (s *Subdivision) RemoveVertex(p geom.PointD) error {
	key, ok := s.vertexIndex.Get(p)
	if !ok {
		return ErrVertexNotFound
	}

	var incident []int
	for ek, e := range s.edges {
		if e.Origin == key {
			incident = append(incident, ek)
		}
	}
	if len(incident) != 2 {
		return ErrNotDegreeTwo
	}

	far1 := s.vertices[s.edges[s.edges[incident[0]].Twin].Origin].Pos
	far2 := s.vertices[s.edges[s.edges[incident[1]].Twin].Origin].Pos

	for _, ek := range incident {
		twinKey := s.edges[ek].Twin
		delete(s.edges, ek)
		delete(s.edges, twinKey)
	}
	s.vertexIndex.Remove(p)
	delete(s.vertices, key)

	s.addSegment(far1, far2)
	s.rebuildTopology()

	return nil
}

// RenumberEdges compacts half-edge keys to remove gaps left by
// removals, preserving relative order. Returns true iff any key changed.
func (s *Subdivision) RenumberEdges() bool {
	keys := make([]int, 0, len(s.edges))
	for k := range s.edges {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	remap := make(map[int]int, len(keys))
	changed := false
	for i, old := range keys {
		remap[old] = i
		if old != i {
			changed = true
		}
	}
	if !changed {
		return false
	}

	newEdges := make(map[int]*HalfEdge, len(s.edges))
	for old, e := range s.edges {
		e.Key = remap[old]
		e.Twin = remap[e.Twin]
		if e.Next >= 0 {
			e.Next = remap[e.Next]
		}
		if e.Prev >= 0 {
			e.Prev = remap[e.Prev]
		}
		newEdges[e.Key] = e
	}
	s.edges = newEdges
	s.nextEdgeKey = len(keys)

	for _, v := range s.vertices {
		if v.Edge >= 0 {
			v.Edge = remap[v.Edge]
		}
	}
	for _, f := range s.faces {
		if f.OuterEdge >= 0 {
			f.OuterEdge = remap[f.OuterEdge]
		}
		for i, ie := range f.InnerEdges {
			f.InnerEdges[i] = remap[ie]
		}
	}

	return true
}

// RenumberFaces compacts bounded face keys to 1..n, leaving the
// unbounded face at key 0. Returns true iff any key changed.
func (s *Subdivision) RenumberFaces() bool {
	keys := make([]int, 0, len(s.faces))
	for k := range s.faces {
		if k != UnboundedFaceKey {
			keys = append(keys, k)
		}
	}
	sort.Ints(keys)

	remap := map[int]int{UnboundedFaceKey: UnboundedFaceKey}
	changed := false
	for i, old := range keys {
		newKey := UnboundedFaceKey + 1 + i
		remap[old] = newKey
		if old != newKey {
			changed = true
		}
	}
	if !changed {
		return false
	}

	newFaces := make(map[int]*Face, len(s.faces))
	for old, f := range s.faces {
		f.Key = remap[old]
		newFaces[f.Key] = f
	}
	s.faces = newFaces
	s.nextFaceKey = UnboundedFaceKey + 1 + len(keys)

	for _, e := range s.edges {
		e.Face = remap[e.Face]
	}

	return true
}
