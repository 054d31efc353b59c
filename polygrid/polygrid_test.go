package polygrid_test

import (
	"testing"

	"github.com/katalvlaran/planesweep/geom"
	"github.com/katalvlaran/planesweep/graph"
	"github.com/katalvlaran/planesweep/polygrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridRejectsShiftOnSquares(t *testing.T) {
	_, err := polygrid.NewGrid(polygrid.Square, polygrid.EdgeStood, polygrid.ShiftColumnUp, 1, 3, 3)
	assert.ErrorIs(t, err, polygrid.ErrInvalidShift)
}

func TestNewGridRequiresMatchingHexShift(t *testing.T) {
	_, err := polygrid.NewGrid(polygrid.Hexagon, polygrid.VertexStood, polygrid.ShiftNone, 1, 3, 3)
	assert.ErrorIs(t, err, polygrid.ErrInvalidShift)

	_, err = polygrid.NewGrid(polygrid.Hexagon, polygrid.VertexStood, polygrid.ShiftColumnUp, 1, 3, 3)
	assert.ErrorIs(t, err, polygrid.ErrInvalidShift)

	g, err := polygrid.NewGrid(polygrid.Hexagon, polygrid.VertexStood, polygrid.ShiftRowRight, 1, 3, 3)
	require.NoError(t, err)
	require.NotNil(t, g)
}

func TestNewGridRejectsBadDimensions(t *testing.T) {
	_, err := polygrid.NewGrid(polygrid.Square, polygrid.EdgeStood, polygrid.ShiftNone, 0, 3, 3)
	assert.ErrorIs(t, err, polygrid.ErrInvalidDimensions)
}

func TestGridToWorldSquareEdgeStood(t *testing.T) {
	g, err := polygrid.NewGrid(polygrid.Square, polygrid.EdgeStood, polygrid.ShiftNone, 2, 4, 4)
	require.NoError(t, err)

	p, err := g.GridToWorld(polygrid.CellCoord{Column: 1, Row: 2})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, p.X, 1e-9)
	assert.InDelta(t, 4.0, p.Y, 1e-9)
}

func TestGridToWorldOutOfRange(t *testing.T) {
	g, err := polygrid.NewGrid(polygrid.Square, polygrid.EdgeStood, polygrid.ShiftNone, 1, 2, 2)
	require.NoError(t, err)

	_, err = g.GridToWorld(polygrid.CellCoord{Column: 5, Row: 0})
	assert.ErrorIs(t, err, polygrid.ErrOutOfRange)
}

func TestWorldToGridRoundTripsSquare(t *testing.T) {
	g, err := polygrid.NewGrid(polygrid.Square, polygrid.EdgeStood, polygrid.ShiftNone, 1.5, 6, 6)
	require.NoError(t, err)

	for col := 0; col < 6; col++ {
		for row := 0; row < 6; row++ {
			want := polygrid.CellCoord{Column: col, Row: row}
			center, err := g.GridToWorld(want)
			require.NoError(t, err)

			got, err := g.WorldToGrid(center)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}
}

func TestWorldToGridRoundTripsHex(t *testing.T) {
	g, err := polygrid.NewGrid(polygrid.Hexagon, polygrid.VertexStood, polygrid.ShiftRowRight, 1, 8, 8)
	require.NoError(t, err)

	for col := 1; col < 7; col++ {
		for row := 1; row < 7; row++ {
			want := polygrid.CellCoord{Column: col, Row: row}
			center, err := g.GridToWorld(want)
			require.NoError(t, err)

			got, err := g.WorldToGrid(center)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}
}

func TestWorldToGridReportsOutsideArea(t *testing.T) {
	g, err := polygrid.NewGrid(polygrid.Square, polygrid.EdgeStood, polygrid.ShiftNone, 1, 3, 3)
	require.NoError(t, err)

	_, err = g.WorldToGrid(geom.PointD{X: 50, Y: 50})
	assert.ErrorIs(t, err, polygrid.ErrOutsideGrid)
}

func TestGetNeighborsSquareConn4(t *testing.T) {
	g, err := polygrid.NewGrid(polygrid.Square, polygrid.EdgeStood, polygrid.ShiftNone, 1, 5, 5)
	require.NoError(t, err)

	reached, err := g.GetNeighbors(polygrid.CellCoord{Column: 2, Row: 2}, 1)
	require.NoError(t, err)
	assert.Len(t, reached, 5)
}

func TestGetNeighborsSquareConn8(t *testing.T) {
	g, err := polygrid.NewGrid(polygrid.Square, polygrid.EdgeStood, polygrid.ShiftNone, 1, 5, 5, polygrid.WithConnectivity(polygrid.Conn8))
	require.NoError(t, err)

	reached, err := g.GetNeighbors(polygrid.CellCoord{Column: 2, Row: 2}, 1)
	require.NoError(t, err)
	assert.Len(t, reached, 9)
}

func TestGetNeighborsHexHasSixAtRadiusOne(t *testing.T) {
	g, err := polygrid.NewGrid(polygrid.Hexagon, polygrid.EdgeStood, polygrid.ShiftColumnUp, 1, 7, 7)
	require.NoError(t, err)

	reached, err := g.GetNeighbors(polygrid.CellCoord{Column: 3, Row: 3}, 1)
	require.NoError(t, err)
	assert.Len(t, reached, 7)
}

func TestGetStepDistanceMatchesManhattanForConn4(t *testing.T) {
	g, err := polygrid.NewGrid(polygrid.Square, polygrid.EdgeStood, polygrid.ShiftNone, 1, 10, 10)
	require.NoError(t, err)

	d, err := g.GetStepDistance(polygrid.CellCoord{Column: 1, Row: 1}, polygrid.CellCoord{Column: 4, Row: 6})
	require.NoError(t, err)
	assert.Equal(t, 8, d)
}

func TestGetStepDistanceMatchesChebyshevForConn8(t *testing.T) {
	g, err := polygrid.NewGrid(polygrid.Square, polygrid.EdgeStood, polygrid.ShiftNone, 1, 10, 10, polygrid.WithConnectivity(polygrid.Conn8))
	require.NoError(t, err)

	d, err := g.GetStepDistance(polygrid.CellCoord{Column: 1, Row: 1}, polygrid.CellCoord{Column: 4, Row: 6})
	require.NoError(t, err)
	assert.Equal(t, 5, d)
}

func TestGetStepDistanceZeroForSameCell(t *testing.T) {
	g, err := polygrid.NewGrid(polygrid.Hexagon, polygrid.VertexStood, polygrid.ShiftRowRight, 1, 6, 6)
	require.NoError(t, err)

	c := polygrid.CellCoord{Column: 2, Row: 2}
	d, err := g.GetStepDistance(c, c)
	require.NoError(t, err)
	assert.Equal(t, 0, d)
}

func TestGetStepDistanceAgreesWithNeighborsForHex(t *testing.T) {
	g, err := polygrid.NewGrid(polygrid.Hexagon, polygrid.VertexStood, polygrid.ShiftRowRight, 1, 9, 9)
	require.NoError(t, err)

	center := polygrid.CellCoord{Column: 4, Row: 4}
	ring, err := g.GetNeighbors(center, 1)
	require.NoError(t, err)

	for _, c := range ring {
		if c == center {
			continue
		}
		d, err := g.GetStepDistance(center, c)
		require.NoError(t, err)
		assert.Equal(t, 1, d, "neighbor %v should be step distance 1 from %v", c, center)
	}
}

func TestCellPolygonHasCorrectVertexCount(t *testing.T) {
	sq, err := polygrid.NewGrid(polygrid.Square, polygrid.EdgeStood, polygrid.ShiftNone, 1, 3, 3)
	require.NoError(t, err)
	poly, err := sq.CellPolygon(polygrid.CellCoord{Column: 1, Row: 1})
	require.NoError(t, err)
	assert.Len(t, poly, 4)

	hex, err := polygrid.NewGrid(polygrid.Hexagon, polygrid.EdgeStood, polygrid.ShiftColumnUp, 1, 3, 3)
	require.NoError(t, err)
	poly, err = hex.CellPolygon(polygrid.CellCoord{Column: 1, Row: 1})
	require.NoError(t, err)
	assert.Len(t, poly, 6)
}

func TestToDCELProducesOneFacePerCellPlusUnbounded(t *testing.T) {
	g, err := polygrid.NewGrid(polygrid.Square, polygrid.EdgeStood, polygrid.ShiftNone, 1, 2, 2)
	require.NoError(t, err)

	sub, err := g.ToDCEL(1e-9)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(sub.ToPolygons()), 4)
}

func TestToCoreGraphHasOneVertexPerCell(t *testing.T) {
	g, err := polygrid.NewGrid(polygrid.Square, polygrid.EdgeStood, polygrid.ShiftNone, 1, 3, 3)
	require.NoError(t, err)

	cg, err := g.ToCoreGraph()
	require.NoError(t, err)
	assert.Equal(t, 9, cg.VertexCount())
	assert.True(t, cg.HasEdge("0,0", "1,0"))
}

func TestGraphAdapterSatisfiesAStar(t *testing.T) {
	g, err := polygrid.NewGrid(polygrid.Square, polygrid.EdgeStood, polygrid.ShiftNone, 1, 4, 4)
	require.NoError(t, err)

	adapter := polygrid.NewGraphAdapter(g)
	path, err := graph.AStar[string](adapter, nil, "0,0", "3,3", 0, false)
	require.NoError(t, err)
	assert.Equal(t, "3,3", path[len(path)-1])
	assert.Equal(t, 6, len(path))
}
