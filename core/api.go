// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: thin public facade exposing constructors and read-only getters.
// No algorithms or hidden state here; see methods_*.go.
package core

// NewUnweighted is sugar for NewGraph() when callers want to be explicit
// that they do not intend to attach weights.
func NewUnweighted(opts ...GraphOption) *Graph {
	return NewGraph(opts...)
}

// GraphStats is a point-in-time, read-only summary of a Graph.
type GraphStats struct {
	DirectedDefault    bool
	Weighted           bool
	AllowsMulti        bool
	AllowsLoops        bool
	VertexCount        int
	EdgeCount          int
	DirectedEdgeCount  int
	UndirectedEdgeCount int
}

// Stats produces an O(V+E) read-only summary of the graph.
//
// Complexity: O(V + E).
func (g *Graph) Stats() *GraphStats {
	stats := &GraphStats{
		DirectedDefault: g.directed,
		Weighted:        g.weighted,
		AllowsMulti:     g.allowMulti,
		AllowsLoops:     g.allowLoops,
		VertexCount:     len(g.vertices),
		EdgeCount:       len(g.edges),
	}
	for _, e := range g.edges {
		if e.Directed {
			stats.DirectedEdgeCount++
		} else {
			stats.UndirectedEdgeCount++
		}
	}

	return stats
}
