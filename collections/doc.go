// Package collections provides the two spatial containers the rest of
// planesweep builds point-location indexes on: OrderedPointSet, an
// epsilon-aware ordered map keyed by geom.PointD, and Quadtree, a
// bounded recursive spatial index. Both exist because the obvious
// standard-library container (map[geom.PointD]V) cannot honor an
// epsilon tolerance or answer range queries.
package collections
