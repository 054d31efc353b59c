package polygrid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/planesweep/geom"
)

const sqrt3 = 1.7320508075688772

// config holds the functional-option-configurable parts of Grid
// construction, mirroring the teacher's GridOptions/DefaultOptions
// pattern.
type config struct {
	conn Connectivity
}

// Option configures a Grid at construction time.
type Option func(*config)

// WithConnectivity sets square-cell connectivity (Conn4 or Conn8).
// Ignored for hexagonal grids, which are always 6-connected.
func WithConnectivity(c Connectivity) Option {
	return func(cfg *config) { cfg.conn = c }
}

func defaultConfig() config {
	return config{conn: Conn4}
}

// Grid is a tiling of congruent regular polygons (squares or hexagons)
// over a rectangular (column, row) index range, in a given orientation
// and shift pattern, with a fixed element length.
type Grid struct {
	shape         Shape
	orientation   Orientation
	shift         PolygonGridShift
	elementLength float64
	columns, rows int
	conn          Connectivity
}

// NewGrid builds a Grid of the given shape/orientation/shift, with
// columns x rows cells each elementLength along an edge. Returns
// ErrInvalidShift if the (shape, orientation, shift) combination has no
// consistent tiling, or ErrInvalidDimensions if columns, rows, or
// elementLength is non-positive.
func NewGrid(shape Shape, orientation Orientation, shift PolygonGridShift, elementLength float64, columns, rows int, opts ...Option) (*Grid, error) {
	if columns <= 0 || rows <= 0 || elementLength <= 0 {
		return nil, ErrInvalidDimensions
	}
	if shape != Square && shape != Hexagon {
		return nil, ErrInvalidShape
	}
	if err := validateShift(shape, orientation, shift); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	return &Grid{
		shape:         shape,
		orientation:   orientation,
		shift:         shift,
		elementLength: elementLength,
		columns:       columns,
		rows:          rows,
		conn:          cfg.conn,
	}, nil
}

// validateShift encodes which shift patterns produce a consistent
// tiling for a given (shape, orientation) pair:
//
//  1. a square grid, either orientation, admits no column/row offset:
//     its cells already tile edge-to-edge with ShiftNone.
//  2. a vertex-stood (pointy-top) hexagon grid requires a row shift
//     (ROW_LEFT or ROW_RIGHT) — its rows are horizontal bands that only
//     interlock when alternate rows are offset horizontally.
//  3. an edge-stood (flat-top) hexagon grid requires a column shift
//     (COLUMN_UP or COLUMN_DOWN) for the symmetric reason: its columns
//     are vertical bands needing a vertical offset to interlock.
func validateShift(shape Shape, orientation Orientation, shift PolygonGridShift) error {
	switch shape {
	case Square:
		if shift != ShiftNone {
			return fmt.Errorf("%w: square grids take no shift", ErrInvalidShift)
		}

		return nil
	case Hexagon:
		switch orientation {
		case VertexStood:
			if shift != ShiftRowLeft && shift != ShiftRowRight {
				return fmt.Errorf("%w: pointy-top hexagons require a row shift", ErrInvalidShift)
			}
		case EdgeStood:
			if shift != ShiftColumnUp && shift != ShiftColumnDown {
				return fmt.Errorf("%w: flat-top hexagons require a column shift", ErrInvalidShift)
			}
		}

		return nil
	default:
		return ErrInvalidShape
	}
}

// InBounds reports whether c falls within the grid's populated range.
func (g *Grid) InBounds(c CellCoord) bool {
	return c.Column >= 0 && c.Column < g.columns && c.Row >= 0 && c.Row < g.rows
}

// Columns returns the grid's column count.
func (g *Grid) Columns() int { return g.columns }

// Rows returns the grid's row count.
func (g *Grid) Rows() int { return g.rows }

// GridToWorld maps a cell coordinate to the world position of its
// center, per this grid's (shape, orientation, shift, elementLength).
func (g *Grid) GridToWorld(p CellCoord) (geom.PointD, error) {
	if !g.InBounds(p) {
		return geom.PointD{}, ErrOutOfRange
	}

	return g.cellCenter(p.Column, p.Row), nil
}

// cellCenter computes a cell's world center without a bounds check, so
// neighbor-offset derivation can probe cells adjacent to the grid edge.
func (g *Grid) cellCenter(column, row int) geom.PointD {
	col, r := float64(column), float64(row)
	l := g.elementLength

	switch g.shape {
	case Square:
		if g.orientation == EdgeStood {
			return geom.PointD{X: col * l, Y: r * l}
		}
		half := l / math.Sqrt2
		return geom.PointD{X: (col - r) * half, Y: (col + r) * half}

	case Hexagon:
		sign := 1.0
		switch g.shift {
		case ShiftRowLeft, ShiftColumnDown:
			sign = -1.0
		}
		if g.orientation == VertexStood {
			x := l*sqrt3*col + sign*l*sqrt3/2*math.Mod(r, 2)
			y := l * 1.5 * r
			return geom.PointD{X: x, Y: y}
		}
		x := l * 1.5 * col
		y := l*sqrt3*r + sign*l*sqrt3/2*math.Mod(col, 2)
		return geom.PointD{X: x, Y: y}
	}

	return geom.PointD{}
}

// WorldToGrid returns the cell whose region contains q, the inverse of
// GridToWorld, or ErrOutsideGrid if q lies outside the populated area.
func (g *Grid) WorldToGrid(q geom.PointD) (CellCoord, error) {
	l := g.elementLength

	var guess CellCoord
	switch g.shape {
	case Square:
		if g.orientation == EdgeStood {
			guess = CellCoord{Column: round(q.X / l), Row: round(q.Y / l)}
		} else {
			half := l / math.Sqrt2
			col := (q.X/half + q.Y/half) / 2
			row := (q.Y/half - q.X/half) / 2
			guess = CellCoord{Column: round(col), Row: round(row)}
		}

	case Hexagon:
		guess = g.nearestHexCell(q)
	}

	// Disambiguate by checking guess and its immediate neighbors for the
	// one whose world center is actually closest to q: the affine
	// inverse above gives the right answer for axis-aligned shapes, but
	// is only an approximation for the hexagon's non-rectangular cells.
	// Out-of-range candidates take part too, so a point whose nearest
	// center lies outside the grid is reported as outside.
	best := guess
	bestD := math.Inf(1)
	candidates := append([]CellCoord{guess}, g.neighborOffsets(guess)...)
	for i, c := range candidates {
		if i > 0 {
			c = CellCoord{Column: guess.Column + c.Column, Row: guess.Row + c.Row}
		}
		center := g.cellCenter(c.Column, c.Row)
		if d := center.DistanceSquaredTo(q); d < bestD {
			best, bestD = c, d
		}
	}
	if !g.InBounds(best) {
		return CellCoord{}, ErrOutsideGrid
	}

	return best, nil
}

func (g *Grid) nearestHexCell(q geom.PointD) CellCoord {
	l := g.elementLength
	sign := 1.0
	switch g.shift {
	case ShiftRowLeft, ShiftColumnDown:
		sign = -1.0
	}

	if g.orientation == VertexStood {
		row := round(q.Y / (1.5 * l))
		col := round((q.X - sign*l*sqrt3/2*math.Mod(float64(row), 2)) / (l * sqrt3))
		return CellCoord{Column: col, Row: row}
	}

	col := round(q.X / (1.5 * l))
	row := round((q.Y - sign*l*sqrt3/2*math.Mod(float64(col), 2)) / (l * sqrt3))
	return CellCoord{Column: col, Row: row}
}

func round(x float64) int {
	return int(math.Round(x))
}
