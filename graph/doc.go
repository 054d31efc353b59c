// Package graph implements pathfinding and reachability algorithms over
// an opaque, generic node space: A*, a budgeted Dijkstra ("Coverage"),
// predicate-driven BFS ("FloodFill"), and angular-occlusion reachability
// ("Visibility"). Every algorithm is generic over Graph[N], so the same
// implementation serves a dcel.Subdivision's face graph and a polygrid
// cell grid without either package depending on the other.
//
// Algorithms accept an optional Agent[N] to layer per-query legality,
// cost, and goal rules on top of a Graph's static topology, mirroring
// how dijkstra's functional options customize a single fixed algorithm
// rather than requiring a new Graph implementation per ruleset.
package graph
