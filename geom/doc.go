// Package geom provides the geometric primitives shared by every other
// planesweep package: points, lines, rectangles, and sizes in both integer
// and floating-point flavors, plus the small set of predicates (point-in-
// polygon, convex hull, epsilon-aware lexicographic ordering) that the
// planar-subdivision, Voronoi, multi-line-intersection, and polygon-grid
// engines all build on.
//
// geom intentionally stays at "~10% of the system" (per the design
// overview): it holds arithmetic and classification, not algorithms that
// themselves construct a data structure. Exact-predicate arithmetic is a
// non-goal; all floating-point comparisons go through a caller-supplied
// epsilon, defaulting to exact (ε=0) where the caller passes none.
package geom
