// Package dcel implements a planar subdivision as a doubly-connected
// edge list: vertices, half-edge twin pairs, and faces, built from line
// segments or closed polygons. It is the largest single component of
// this module, providing construction, incremental mutation, point
// location, and overlay (intersection) of two subdivisions.
//
// A Subdivision owns its vertex, edge, and face tables exclusively;
// copies made via Clone are deep. Mutation operations either succeed and
// preserve every invariant, or fail and leave the subdivision unchanged.
package dcel
