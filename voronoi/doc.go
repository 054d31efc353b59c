// Package voronoi builds the Voronoi diagram and its dual Delaunay
// triangulation for a set of sites in the plane, using Fortune's
// sweep (beach-line) algorithm. The diagram is clipped to a caller-
// supplied bounding rectangle, since unbounded regions have no finite
// polygon otherwise.
//
// Degenerate inputs are handled explicitly rather than left to fall out
// of the general algorithm: zero or one site produces no edges, exactly
// two sites produces a single clipped bisector, and collinear sites
// produce a fan of mutually parallel bisectors.
package voronoi
