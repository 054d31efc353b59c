package dcel

import (
	"github.com/katalvlaran/planesweep/collections"
	"github.com/katalvlaran/planesweep/core"
	"github.com/katalvlaran/planesweep/geom"
)

// UnboundedFaceKey is the reserved key of the subdivision's single
// unbounded face.
const UnboundedFaceKey = 0

// Vertex is one point of the subdivision.
type Vertex struct {
	Key int
	Pos geom.PointD
	// Edge is the key of one half-edge whose Origin is this vertex;
	// -1 for a vertex with no incident edges (never produced by
	// construction, but reachable transiently during mutation).
	Edge int
}

// HalfEdge is one directed side of an edge; every edge is represented by
// a twin pair of HalfEdges with opposite direction.
type HalfEdge struct {
	Key    int
	Origin int // vertex key
	Twin   int // half-edge key
	Next   int // half-edge key, next around this half-edge's face
	Prev   int // half-edge key, previous around this half-edge's face
	Face   int // face key this half-edge bounds
}

// Face is one region of the subdivision's planar decomposition.
type Face struct {
	Key int
	// OuterEdge is the key of one half-edge on this face's outer
	// boundary cycle; -1 for the unbounded face, which has no outer
	// cycle of its own (every bounded face's outer cycle is, from the
	// unbounded face's perspective, one of its inner cycles).
	OuterEdge int
	// InnerEdges holds, for each hole or disjoint interior component,
	// the key of one half-edge on that inner cycle.
	InnerEdges []int
}

// Subdivision is a doubly-connected edge list: the exclusive owner of
// its vertex, edge, and face tables.
type Subdivision struct {
	eps float64

	vertices map[int]*Vertex
	edges    map[int]*HalfEdge
	faces    map[int]*Face

	// vertexIndex maps vertex position to vertex key, under the same ε
	// as eps, giving findNearestVertex and construction's endpoint
	// collapsing a sublinear lookup instead of a linear scan.
	vertexIndex *collections.OrderedPointSet[int]

	nextVertexKey int
	nextEdgeKey   int
	nextFaceKey   int

	// topoVersion increments on every topology rebuild. The cached query
	// structures (the ordered point-location index, the face adjacency
	// graph) are not checked against it: rebuildTopology clears them to
	// nil, and the next query rebuilds them.
	topoVersion int
	ordered     *orderedLocator
	faceGraph   *core.Graph
}

// NewEmpty returns a subdivision containing only the unbounded face.
func NewEmpty(eps float64) *Subdivision {
	cmp, _ := geom.NewPointDComparatorAxis(eps, geom.XPrimary)
	s := &Subdivision{
		eps:         eps,
		vertices:    make(map[int]*Vertex),
		edges:       make(map[int]*HalfEdge),
		faces:       make(map[int]*Face),
		vertexIndex: collections.NewOrderedPointSet[int](cmp),
		nextFaceKey: UnboundedFaceKey + 1,
	}
	s.faces[UnboundedFaceKey] = &Face{Key: UnboundedFaceKey, OuterEdge: -1}

	return s
}

// Epsilon returns the tolerance used for vertex collapsing and
// geometric predicates throughout this subdivision.
func (s *Subdivision) Epsilon() float64 { return s.eps }

// VertexCount returns the number of vertices.
func (s *Subdivision) VertexCount() int { return len(s.vertices) }

// EdgeCount returns the number of half-edges (twice the number of
// undirected edges).
func (s *Subdivision) EdgeCount() int { return len(s.edges) }

// FaceCount returns the number of faces, including the unbounded face.
func (s *Subdivision) FaceCount() int { return len(s.faces) }

// Vertex returns the vertex with the given key.
func (s *Subdivision) Vertex(key int) (*Vertex, error) {
	v, ok := s.vertices[key]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// HalfEdge returns the half-edge with the given key.
func (s *Subdivision) HalfEdge(key int) (*HalfEdge, error) {
	e, ok := s.edges[key]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Face returns the face with the given key.
func (s *Subdivision) Face(key int) (*Face, error) {
	f, ok := s.faces[key]
	if !ok {
		return nil, ErrFaceNotFound
	}

	return f, nil
}

// VertexKeys returns every vertex key, in no particular order.
func (s *Subdivision) VertexKeys() []int {
	out := make([]int, 0, len(s.vertices))
	for k := range s.vertices {
		out = append(out, k)
	}

	return out
}

// EdgeKeys returns every half-edge key, in no particular order.
func (s *Subdivision) EdgeKeys() []int {
	out := make([]int, 0, len(s.edges))
	for k := range s.edges {
		out = append(out, k)
	}

	return out
}

// FaceKeys returns every face key, in no particular order.
func (s *Subdivision) FaceKeys() []int {
	out := make([]int, 0, len(s.faces))
	for k := range s.faces {
		out = append(out, k)
	}

	return out
}

// Segment returns the line segment traced by half-edge key from its
// origin to its twin's origin.
func (s *Subdivision) Segment(key int) (geom.LineD, error) {
	e, err := s.HalfEdge(key)
	if err != nil {
		return geom.LineD{}, err
	}
	twin, err := s.HalfEdge(e.Twin)
	if err != nil {
		return geom.LineD{}, err
	}
	from, err := s.Vertex(e.Origin)
	if err != nil {
		return geom.LineD{}, err
	}
	to, err := s.Vertex(twin.Origin)
	if err != nil {
		return geom.LineD{}, err
	}

	return geom.LineD{Start: from.Pos, End: to.Pos}, nil
}
