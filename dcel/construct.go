package dcel

import (
	"math"
	"sort"

	"github.com/katalvlaran/planesweep/geom"
)

// FromLines builds a subdivision from segments known to be non-crossing
// except at shared endpoints (callers with arbitrary segments should
// pre-split them with package mlsi first). Endpoints within ε of each
// other collapse to one vertex.
func FromLines(lines []geom.LineD, eps float64) (*Subdivision, error) {
	s := NewEmpty(eps)
	for _, l := range lines {
		if l.IsDegenerate(eps) {
			return nil, ErrDegenerateSegment
		}
		s.addSegment(l.Start, l.End)
	}
	s.rebuildTopology()

	return s, nil
}

// FromPolygons builds a subdivision from a set of closed rings, each
// given as an ordered vertex list (not repeating the first point at the
// end). Consecutive vertices in each ring become edges; the ring is
// closed by an implicit edge from the last vertex back to the first.
func FromPolygons(polys [][]geom.PointD, eps float64) (*Subdivision, error) {
	s := NewEmpty(eps)
	for _, poly := range polys {
		n := len(poly)
		if n < 3 {
			continue
		}
		for i := 0; i < n; i++ {
			a, b := poly[i], poly[(i+1)%n]
			if a.Equal(b, eps) {
				return nil, ErrDegenerateSegment
			}
			s.addSegment(a, b)
		}
	}
	s.rebuildTopology()

	return s, nil
}

// findOrCreateVertex returns the key of the vertex at pos, creating one
// if none is within ε.
func (s *Subdivision) findOrCreateVertex(pos geom.PointD) int {
	if key, ok := s.vertexIndex.Get(pos); ok {
		return key
	}
	key := s.nextVertexKey
	s.nextVertexKey++
	s.vertices[key] = &Vertex{Key: key, Pos: pos, Edge: -1}
	s.vertexIndex.Put(pos, key)

	return key
}

// addSegment creates a twin half-edge pair for the segment a-b, without
// yet wiring Next/Prev or Face; rebuildTopology does that for every edge
// in the subdivision at once.
func (s *Subdivision) addSegment(a, b geom.PointD) (int, int) {
	va := s.findOrCreateVertex(a)
	vb := s.findOrCreateVertex(b)

	e1 := s.nextEdgeKey
	s.nextEdgeKey++
	e2 := s.nextEdgeKey
	s.nextEdgeKey++

	s.edges[e1] = &HalfEdge{Key: e1, Origin: va, Twin: e2, Next: -1, Prev: -1, Face: -1}
	s.edges[e2] = &HalfEdge{Key: e2, Origin: vb, Twin: e1, Next: -1, Prev: -1, Face: -1}

	if s.vertices[va].Edge < 0 {
		s.vertices[va].Edge = e1
	}
	if s.vertices[vb].Edge < 0 {
		s.vertices[vb].Edge = e2
	}

	return e1, e2
}

// rebuildTopology wires every half-edge's Next/Prev by angular sort at
// each vertex, then walks the resulting cycles to assign faces. Call
// after any batch of addSegment calls.
func (s *Subdivision) rebuildTopology() {
	s.wireNextPrev()
	s.assignFaces()
	s.topoVersion++
	s.ordered = nil
	s.faceGraph = nil
}

func (s *Subdivision) wireNextPrev() {
	outgoingByVertex := make(map[int][]int)
	for key, e := range s.edges {
		outgoingByVertex[e.Origin] = append(outgoingByVertex[e.Origin], key)
	}

	for v, outgoing := range outgoingByVertex {
		origin := s.vertices[v].Pos
		sort.Slice(outgoing, func(i, j int) bool {
			ai := s.angleOf(origin, outgoing[i])
			aj := s.angleOf(origin, outgoing[j])

			return ai < aj
		})

		n := len(outgoing)
		for i := 0; i < n; i++ {
			cur := outgoing[i]
			nxt := outgoing[(i+1)%n]
			incoming := s.edges[nxt].Twin
			s.edges[incoming].Next = cur
			s.edges[cur].Prev = incoming
		}
	}
}

func (s *Subdivision) angleOf(origin geom.PointD, edgeKey int) float64 {
	e := s.edges[edgeKey]
	dest := s.vertices[s.edges[e.Twin].Origin].Pos
	v := dest.Sub(origin)
	a := math.Atan2(v.Y, v.X)
	if a < 0 {
		a += 2 * math.Pi
	}

	return a
}

// assignFaces walks every Next-cycle, determines its winding via signed
// area, and assigns face keys: a positive-area (CCW) cycle is some new
// bounded face's outer boundary; a negative-area (CW) cycle bounds the
// unbounded region from the inside of whichever positive cycle, if any,
// contains it, and becomes that face's inner (hole) boundary — or the
// unbounded face's, if none contains it.
func (s *Subdivision) assignFaces() {
	// Reset to a single unbounded face before recomputing, so repeated
	// calls (e.g. after a mutation) start clean.
	s.faces = map[int]*Face{UnboundedFaceKey: {Key: UnboundedFaceKey, OuterEdge: -1}}
	s.nextFaceKey = UnboundedFaceKey + 1

	visited := make(map[int]bool)
	type cycle struct {
		rep  int
		poly []geom.PointD
		area float64
	}
	var cycles []cycle

	for key := range s.edges {
		if visited[key] {
			continue
		}
		cur := key
		var poly []geom.PointD
		for {
			visited[cur] = true
			poly = append(poly, s.vertices[s.edges[cur].Origin].Pos)
			cur = s.edges[cur].Next
			if cur == key || cur < 0 {
				break
			}
		}
		cycles = append(cycles, cycle{rep: key, poly: poly, area: geom.PolygonArea(poly)})
	}

	var positives []cycle
	var negatives []cycle
	for _, c := range cycles {
		if c.area > 0 {
			positives = append(positives, c)
		} else {
			negatives = append(negatives, c)
		}
	}

	posFaceKey := make([]int, len(positives))
	for i, c := range positives {
		key := s.nextFaceKey
		s.nextFaceKey++
		s.faces[key] = &Face{Key: key, OuterEdge: c.rep}
		posFaceKey[i] = key
		s.walkAssignFace(c.rep, key)
	}

	for _, c := range negatives {
		owner := UnboundedFaceKey
		bestArea := math.Inf(1)
		for i, pc := range positives {
			area := math.Abs(pc.area)
			if area < bestArea && polygonStrictlyContains(pc.poly, c.poly, s.eps) {
				bestArea = area
				owner = posFaceKey[i]
			}
		}
		s.walkAssignFace(c.rep, owner)
		s.faces[owner].InnerEdges = append(s.faces[owner].InnerEdges, c.rep)
	}
}

// polygonStrictlyContains reports whether every vertex of inner lies
// inside outer (a cheap proxy for cycle containment, adequate since
// inner and outer here are both simple, non-crossing DCEL cycles).
func polygonStrictlyContains(outer, inner []geom.PointD, eps float64) bool {
	for _, p := range inner {
		if geom.PointInPolygon(p, outer, eps) != geom.Inside {
			return false
		}
	}

	return true
}

func (s *Subdivision) walkAssignFace(start, face int) {
	cur := start
	for {
		s.edges[cur].Face = face
		cur = s.edges[cur].Next
		if cur == start || cur < 0 {
			break
		}
	}
}
