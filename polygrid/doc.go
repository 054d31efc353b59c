// Package polygrid lays out a grid of congruent regular polygons
// (squares or hexagons) over the plane, in either orientation and with
// an optional offset shift pattern for diamond-style row/column
// staggering. It converts cell coordinates to and from world positions,
// answers neighbor and step-distance queries, and hands off to dcel and
// graph the same way gridgraph hands a raster grid off to core: each
// cell becomes a node in a core.Graph, then an adapter exposes it as a
// graph.Graph[string].
package polygrid
