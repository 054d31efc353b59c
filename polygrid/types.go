package polygrid

import "fmt"

// Shape is the regular polygon tiled across the grid.
type Shape int

const (
	// Square tiles the plane with axis-aligned or diamond squares.
	Square Shape = iota
	// Hexagon tiles the plane with flat-top or pointy-top hexagons.
	Hexagon
)

func (s Shape) String() string {
	switch s {
	case Square:
		return "square"
	case Hexagon:
		return "hexagon"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

func (s Shape) sides() int {
	if s == Hexagon {
		return 6
	}

	return 4
}

// Orientation describes whether a cell is "stood" on one of its edges
// (flat side down, the conventional reading for squares and flat-top
// hexagons) or on a vertex (a corner down, giving diamond squares and
// pointy-top hexagons).
type Orientation int

const (
	// EdgeStood rests the polygon on a flat edge.
	EdgeStood Orientation = iota
	// VertexStood rests the polygon on a single vertex.
	VertexStood
)

func (o Orientation) String() string {
	if o == VertexStood {
		return "vertex-stood"
	}

	return "edge-stood"
}

// PolygonGridShift selects a diamond-style offset pattern applied to
// alternating columns or rows. Which values are legal depends on
// (Shape, Orientation): a plain edge-stood square grid admits no shift
// at all, while hexagon tilings require exactly one shift axis matching
// their orientation.
type PolygonGridShift int

const (
	// ShiftNone lays out columns and rows with no offset.
	ShiftNone PolygonGridShift = iota
	// ShiftColumnUp offsets odd columns half a step up.
	ShiftColumnUp
	// ShiftColumnDown offsets odd columns half a step down.
	ShiftColumnDown
	// ShiftRowLeft offsets odd rows half a step left.
	ShiftRowLeft
	// ShiftRowRight offsets odd rows half a step right.
	ShiftRowRight
)

func (s PolygonGridShift) String() string {
	switch s {
	case ShiftNone:
		return "none"
	case ShiftColumnUp:
		return "column-up"
	case ShiftColumnDown:
		return "column-down"
	case ShiftRowLeft:
		return "row-left"
	case ShiftRowRight:
		return "row-right"
	default:
		return fmt.Sprintf("PolygonGridShift(%d)", int(s))
	}
}

// CellCoord is an integer (column, row) grid address.
type CellCoord struct {
	Column, Row int
}

func (c CellCoord) String() string {
	return fmt.Sprintf("%d,%d", c.Column, c.Row)
}

// Connectivity selects how many neighbors a square cell has. Hexagons
// always have 6 and ignore this setting.
type Connectivity int

const (
	// Conn4 connects squares only across shared edges.
	Conn4 Connectivity = 4
	// Conn8 connects squares across shared edges and corners.
	Conn8 Connectivity = 8
)
