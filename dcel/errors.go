package dcel

import "errors"

// Sentinel errors for dcel operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex key
	// not present in the subdivision.
	ErrVertexNotFound = errors.New("dcel: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced an edge key not
	// present in the subdivision.
	ErrEdgeNotFound = errors.New("dcel: edge not found")

	// ErrFaceNotFound indicates a face key not present in the
	// subdivision.
	ErrFaceNotFound = errors.New("dcel: face not found")

	// ErrEdgeCrossesExisting indicates a new segment's interior would
	// cross an existing edge, which addEdge refuses.
	ErrEdgeCrossesExisting = errors.New("dcel: new edge crosses an existing edge")

	// ErrDegenerateSegment indicates a construction or mutation segment
	// had coincident endpoints.
	ErrDegenerateSegment = errors.New("dcel: segment start equals end")

	// ErrVertexCoincidence indicates moveVertex would place a vertex
	// exactly on another.
	ErrVertexCoincidence = errors.New("dcel: move would coincide with another vertex")

	// ErrNotDegreeTwo indicates removeVertex was called on a vertex
	// whose degree is not exactly two.
	ErrNotDegreeTwo = errors.New("dcel: vertex degree must be exactly 2")

	// ErrNoFaceContainsPoint indicates point location found no face
	// (should only occur for points outside every bounded region when
	// the unbounded face itself is excluded from the search, which
	// findFace never does — kept for completeness of the taxonomy).
	ErrNoFaceContainsPoint = errors.New("dcel: no face contains the query point")
)
