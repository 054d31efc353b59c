package polygrid

import "errors"

var (
	// ErrInvalidShape reports a shape with an unsupported side count.
	ErrInvalidShape = errors.New("polygrid: shape must be square or hexagon")
	// ErrInvalidShift reports a (shape, orientation, shift) combination
	// that has no consistent tiling.
	ErrInvalidShift = errors.New("polygrid: shift pattern not valid for this shape/orientation")
	// ErrInvalidDimensions reports a non-positive element length, column
	// count, or row count.
	ErrInvalidDimensions = errors.New("polygrid: columns, rows and element length must be positive")
	// ErrOutOfRange reports a cell coordinate outside the populated grid.
	ErrOutOfRange = errors.New("polygrid: cell coordinate out of range")
	// ErrOutsideGrid reports a world point that maps to no cell, returned
	// by WorldToGrid as the out-of-range sentinel the spec calls for.
	ErrOutsideGrid = errors.New("polygrid: point lies outside the populated area")
)
