package polygrid

import (
	"math"

	"github.com/katalvlaran/planesweep/core"
	"github.com/katalvlaran/planesweep/dcel"
	"github.com/katalvlaran/planesweep/geom"
)

// CellPolygon returns the world-space polygon of cell c's region: 4
// vertices for a square, 6 for a hexagon, in the orientation this grid
// was built with.
func (g *Grid) CellPolygon(c CellCoord) ([]geom.PointD, error) {
	if !g.InBounds(c) {
		return nil, ErrOutOfRange
	}
	center := g.cellCenter(c.Column, c.Row)

	switch g.shape {
	case Square:
		radius := g.elementLength / math.Sqrt2
		base := math.Pi / 4
		if g.orientation == VertexStood {
			base = 0
		}

		return regularPolygon(center, radius, base, 4), nil

	case Hexagon:
		base := -math.Pi / 6
		if g.orientation == EdgeStood {
			base = 0
		}

		return regularPolygon(center, g.elementLength, base, 6), nil
	}

	return nil, ErrInvalidShape
}

func regularPolygon(center geom.PointD, radius, baseAngle float64, sides int) []geom.PointD {
	pts := make([]geom.PointD, sides)
	step := 2 * math.Pi / float64(sides)
	for i := 0; i < sides; i++ {
		a := baseAngle + step*float64(i)
		pts[i] = geom.PointD{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}

	return pts
}

// ToDCEL emits every populated cell's polygon and builds the planar
// subdivision induced by the full tiling, via dcel.FromPolygons.
func (g *Grid) ToDCEL(eps float64) (*dcel.Subdivision, error) {
	var polys [][]geom.PointD
	for col := 0; col < g.columns; col++ {
		for row := 0; row < g.rows; row++ {
			poly, err := g.CellPolygon(CellCoord{Column: col, Row: row})
			if err != nil {
				return nil, err
			}
			polys = append(polys, poly)
		}
	}

	return dcel.FromPolygons(polys, eps)
}

// ToCoreGraph builds the weighted, undirected adjacency graph induced
// by this grid's neighbor relation: one vertex per populated cell (ID
// "column,row", with Metadata "column"/"row"), one edge per neighbor
// pair weighted by the rounded millimetric world distance between cell
// centers, exactly as gridgraph.ToCoreGraph builds its raster
// adjacency graph.
func (g *Grid) ToCoreGraph() (*core.Graph, error) {
	cg := core.NewGraph(core.WithWeighted())

	for col := 0; col < g.columns; col++ {
		for row := 0; row < g.rows; row++ {
			c := CellCoord{Column: col, Row: row}
			if err := cg.AddVertex(c.String()); err != nil {
				return nil, err
			}
		}
	}
	verts := cg.VerticesMap()
	for col := 0; col < g.columns; col++ {
		for row := 0; row < g.rows; row++ {
			c := CellCoord{Column: col, Row: row}
			v := verts[c.String()]
			v.Metadata["column"] = col
			v.Metadata["row"] = row
		}
	}

	for col := 0; col < g.columns; col++ {
		for row := 0; row < g.rows; row++ {
			c := CellCoord{Column: col, Row: row}
			center := g.cellCenter(col, row)
			for _, off := range g.neighborOffsets(c) {
				nb := CellCoord{Column: col + off.Column, Row: row + off.Row}
				if !g.InBounds(nb) || cg.HasEdge(c.String(), nb.String()) {
					continue
				}
				d := center.DistanceTo(g.cellCenter(nb.Column, nb.Row))
				if _, err := cg.AddEdge(c.String(), nb.String(), int64(math.Round(d*1000))); err != nil {
					return nil, err
				}
			}
		}
	}

	return cg, nil
}
