package voronoi_test

import (
	"testing"

	"github.com/katalvlaran/planesweep/geom"
	"github.com/katalvlaran/planesweep/voronoi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bounds() geom.RectD {
	r, _ := geom.NewRectD(geom.PointD{X: -100, Y: -100}, geom.PointD{X: 100, Y: 100})

	return r
}

func TestFindAllEmptyAndSingleSite(t *testing.T) {
	res, err := voronoi.FindAll(nil, bounds())
	require.NoError(t, err)
	assert.Empty(t, res.Edges)

	res, err = voronoi.FindAll([]geom.PointD{{X: 0, Y: 0}}, bounds())
	require.NoError(t, err)
	assert.Empty(t, res.Edges)
}

func TestFindAllTwoSites(t *testing.T) {
	sites := []geom.PointD{{X: -10, Y: 0}, {X: 10, Y: 0}}
	res, err := voronoi.FindAll(sites, bounds())
	require.NoError(t, err)
	require.Len(t, res.Edges, 1)
	assert.Equal(t, [][2]int{{0, 1}}, res.DelaunayEdges)
}

func TestFindAllCollinearSites(t *testing.T) {
	sites := []geom.PointD{{X: -10, Y: 0}, {X: 0, Y: 0}, {X: 10, Y: 0}}
	res, err := voronoi.FindAll(sites, bounds())
	require.NoError(t, err)
	assert.Len(t, res.Edges, 2)
}

func TestFindAllTriangleProducesOneVertex(t *testing.T) {
	sites := []geom.PointD{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 10}}
	res, err := voronoi.FindAll(sites, bounds())
	require.NoError(t, err)
	assert.Len(t, res.Vertices, 1)
	assert.Len(t, res.DelaunayEdges, 3)
	assert.Len(t, res.Regions, 3)
}

func TestFindAllRejectsInvalidBounds(t *testing.T) {
	degenerate, _ := geom.NewRectD(geom.PointD{X: 0, Y: 0}, geom.PointD{X: 0, Y: 0})
	_, err := voronoi.FindAll([]geom.PointD{{X: 0, Y: 0}, {X: 1, Y: 1}}, degenerate)
	assert.ErrorIs(t, err, voronoi.ErrInvalidBounds)
}

func TestFindAllRejectsDuplicateSites(t *testing.T) {
	_, err := voronoi.FindAll([]geom.PointD{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 5, Y: 5}}, bounds())
	assert.ErrorIs(t, err, voronoi.ErrDuplicateSite)
}

func TestFindDelaunaySquare(t *testing.T) {
	sites := []geom.PointD{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	edges, err := voronoi.FindDelaunay(sites, bounds())
	require.NoError(t, err)
	assert.NotEmpty(t, edges)
}
