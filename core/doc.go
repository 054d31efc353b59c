// Package core provides a minimal in-memory Graph implementation with a
// small, composable API surface.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Monotonic textual Edge.ID generation ("e1", "e2", ...)
//
// Graph is the adjacency substrate the rest of planesweep builds on: dcel
// and polygrid each construct one internally to hold their induced
// node/distance graph, then wrap it in a small adapter implementing
// graph.Graph[string] (see the graph package) by delegating membership and
// neighbor queries here and supplying positions/polygons from their own
// geometric data.
//
// Single-threaded by contract (spec section "Concurrency & resource
// model"): Graph carries no locks. A caller sharing one Graph across
// goroutines owns its own synchronization, same as with any other mutable
// Go value.
//
// Configuration options (GraphOption):
//
//   - WithDirected(defaultDirected bool): default orientation of new edges.
//   - WithWeighted(): permits non-zero weights; otherwise AddEdge(weight!=0)
//     returns ErrBadWeight.
//   - WithMultiEdges(): allows multiple parallel edges between the same
//     endpoints; otherwise a second AddEdge(from,to) returns
//     ErrMultiEdgeNotAllowed.
//   - WithLoops(): permits self-loops (from == to); otherwise AddEdge(v,v)
//     returns ErrLoopNotAllowed.
package core
