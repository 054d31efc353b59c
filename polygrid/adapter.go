package polygrid

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/planesweep/core"
	"github.com/katalvlaran/planesweep/geom"
	"github.com/katalvlaran/planesweep/graph"
)

// GraphAdapter exposes a Grid as a graph.Graph[string], keyed by the
// same "column,row" vertex IDs ToCoreGraph uses, so graph's algorithms
// (AStar, Coverage, FloodFill, Visibility) run directly over a grid's
// cells. Adjacency is served from a cached core.Graph built once (a
// Grid's geometry and neighbor relation are immutable after
// construction, so the cache never needs invalidating); positions and
// polygons still come straight from the grid's own geometry, which
// core.Graph does not carry.
type GraphAdapter struct {
	grid *Grid
	cg   *core.Graph
}

// NewGraphAdapter wraps g for use with the graph package.
func NewGraphAdapter(g *Grid) *GraphAdapter {
	return &GraphAdapter{grid: g}
}

var _ graph.Graph[string] = (*GraphAdapter)(nil)

// coreGraph returns the grid's cached adjacency graph, building it on
// first use.
func (a *GraphAdapter) coreGraph() *core.Graph {
	if a.cg == nil {
		cg, err := a.grid.ToCoreGraph()
		if err != nil {
			return nil
		}
		a.cg = cg
	}

	return a.cg
}

func parseCellID(id string) (CellCoord, bool) {
	col, row, found := strings.Cut(id, ",")
	if !found {
		return CellCoord{}, false
	}
	c, err1 := strconv.Atoi(col)
	r, err2 := strconv.Atoi(row)
	if err1 != nil || err2 != nil {
		return CellCoord{}, false
	}

	return CellCoord{Column: c, Row: r}, true
}

// NodeCount returns the number of populated cells.
func (a *GraphAdapter) NodeCount() int {
	cg := a.coreGraph()
	if cg == nil {
		return 0
	}

	return cg.VertexCount()
}

// Nodes returns every cell ID, lexicographically sorted.
func (a *GraphAdapter) Nodes() []string {
	cg := a.coreGraph()
	if cg == nil {
		return nil
	}

	return cg.Vertices()
}

// HasNode reports whether id names a populated cell.
func (a *GraphAdapter) HasNode(id string) bool {
	cg := a.coreGraph()
	if cg == nil {
		return false
	}

	return cg.HasVertex(id)
}

// Neighbors returns id's adjacent cell IDs.
func (a *GraphAdapter) Neighbors(id string) []string {
	cg := a.coreGraph()
	if cg == nil {
		return nil
	}
	ids, err := cg.NeighborIDs(id)
	if err != nil {
		return nil
	}

	return ids
}

// Position returns id's cell center in world coordinates.
func (a *GraphAdapter) Position(id string) (geom.PointD, bool) {
	c, ok := parseCellID(id)
	if !ok || !a.grid.InBounds(c) {
		return geom.PointD{}, false
	}

	return a.grid.cellCenter(c.Column, c.Row), true
}

// Polygon returns id's cell polygon.
func (a *GraphAdapter) Polygon(id string) ([]geom.PointD, bool) {
	c, ok := parseCellID(id)
	if !ok {
		return nil, false
	}
	poly, err := a.grid.CellPolygon(c)
	if err != nil {
		return nil, false
	}

	return poly, true
}

// Nearest returns the cell whose center is closest to q.
func (a *GraphAdapter) Nearest(q geom.PointD) (string, bool) {
	c, err := a.grid.WorldToGrid(q)
	if err != nil {
		return "", false
	}

	return c.String(), true
}

// Distance returns the straight-line world distance between src and
// dst's cell centers.
func (a *GraphAdapter) Distance(src, dst string) float64 {
	pa, okA := a.Position(src)
	pb, okB := a.Position(dst)
	if !okA || !okB {
		return 0
	}

	return pa.DistanceTo(pb)
}
