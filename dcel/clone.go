package dcel

import (
	"github.com/katalvlaran/planesweep/collections"
	"github.com/katalvlaran/planesweep/geom"
)

// Clone returns a deep copy: mutating the result never affects s, and
// vice versa.
func (s *Subdivision) Clone() *Subdivision {
	cmp, _ := geom.NewPointDComparatorAxis(s.eps, geom.XPrimary)
	out := &Subdivision{
		eps:           s.eps,
		vertices:      make(map[int]*Vertex, len(s.vertices)),
		edges:         make(map[int]*HalfEdge, len(s.edges)),
		faces:         make(map[int]*Face, len(s.faces)),
		vertexIndex:   nil,
		nextVertexKey: s.nextVertexKey,
		nextEdgeKey:   s.nextEdgeKey,
		nextFaceKey:   s.nextFaceKey,
		topoVersion:   s.topoVersion,
	}

	idx := collections.NewOrderedPointSet[int](cmp)
	for k, v := range s.vertices {
		cp := *v
		out.vertices[k] = &cp
		idx.Put(cp.Pos, k)
	}
	out.vertexIndex = idx

	for k, e := range s.edges {
		cp := *e
		out.edges[k] = &cp
	}
	for k, f := range s.faces {
		cp := *f
		cp.InnerEdges = append([]int(nil), f.InnerEdges...)
		out.faces[k] = &cp
	}

	return out
}
