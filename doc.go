// Package planesweep is a computational-geometry and planar-graph
// library: geometric primitives, multi-segment intersection, Voronoi/
// Delaunay diagrams, a doubly-connected edge list (DCEL) for planar
// subdivisions, polygon grids, and graph search algorithms layered over
// all of them.
//
// Subpackages:
//
//	geom/       — points, lines, rectangles, polygons, epsilon-aware comparison
//	mlsi/       — multi-line segment intersection (brute force + Bentley-Ottmann)
//	voronoi/    — Fortune's sweep, Delaunay duals, region clipping
//	dcel/       — planar subdivision construction, mutation, point location, overlay
//	polygrid/   — square/hexagonal cell grids, world<->grid transforms
//	graph/      — A*, budgeted coverage, flood fill, visibility over a generic Graph[N]
//	collections/ — ordered point sets (backing dcel vertex lookup) and quadtrees
//	core/       — the adjacency-list Graph that dcel and polygrid each wrap
//
// Single-threaded by contract: no package here carries locks. A caller
// sharing a value across goroutines owns its own synchronization.
package planesweep
