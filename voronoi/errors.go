package voronoi

import "errors"

// Sentinel errors for the voronoi package.
var (
	// ErrInvalidBounds indicates a bounding rectangle with zero or
	// negative area was supplied.
	ErrInvalidBounds = errors.New("voronoi: bounds must have positive width and height")

	// ErrDuplicateSite indicates two input sites coincide within ε,
	// which Fortune's sweep cannot resolve into distinct regions.
	ErrDuplicateSite = errors.New("voronoi: duplicate site")
)
