package geom

import "errors"

// Sentinel errors for geom operations. These correspond to the
// DomainError and OverflowError taxonomy: invalid construction arguments
// and integer promotions that would exceed representable range.
var (
	// ErrInvalidRect indicates a rectangle was constructed with min > max
	// on some axis.
	ErrInvalidRect = errors.New("geom: rectangle min must be <= max on every axis")

	// ErrNegativeSize indicates a Size was constructed with a negative
	// width or height.
	ErrNegativeSize = errors.New("geom: size width/height must be >= 0")

	// ErrNegativeEpsilon indicates a negative epsilon was supplied to an
	// epsilon-aware operation.
	ErrNegativeEpsilon = errors.New("geom: epsilon must be >= 0")

	// ErrDegenerateLine indicates a line whose start equals its end was
	// rejected by an operation that requires a non-degenerate segment.
	ErrDegenerateLine = errors.New("geom: line start equals end")

	// ErrArithmeticOverflow indicates an integer primitive operation would
	// exceed the representable range of the promoted type.
	ErrArithmeticOverflow = errors.New("geom: arithmetic overflow")

	// ErrAmbiguousOrder is returned by PointDComparator.Sort when two
	// points that are not identical compare as equal under Less (neither
	// is Less than the other); this indicates the epsilon is too large
	// for the given point set.
	ErrAmbiguousOrder = errors.New("geom: epsilon comparator produced an ambiguous order")
)
