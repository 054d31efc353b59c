package geom_test

import (
	"testing"

	"github.com/katalvlaran/planesweep/geom"
	"github.com/stretchr/testify/assert"
)

func square() []geom.PointD {
	return []geom.PointD{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
}

func TestPointInPolygonInsideOutside(t *testing.T) {
	poly := square()

	assert.Equal(t, geom.Inside, geom.PointInPolygon(geom.PointD{X: 5, Y: 5}, poly, 1e-9))
	assert.Equal(t, geom.Outside, geom.PointInPolygon(geom.PointD{X: 15, Y: 5}, poly, 1e-9))
}

func TestPointInPolygonEdgeAndVertex(t *testing.T) {
	poly := square()

	assert.Equal(t, geom.OnVertex, geom.PointInPolygon(geom.PointD{X: 0, Y: 0}, poly, 1e-9))
	assert.Equal(t, geom.OnEdge, geom.PointInPolygon(geom.PointD{X: 5, Y: 0}, poly, 1e-9))
}

func TestConvexHullSquareWithInteriorPoint(t *testing.T) {
	pts := append(square(), geom.PointD{X: 5, Y: 5})

	hull := geom.ConvexHull(pts, 1e-9)
	assert.Len(t, hull, 4)
	for _, c := range square() {
		found := false
		for _, h := range hull {
			if h.Equal(c, 1e-9) {
				found = true
			}
		}
		assert.True(t, found, "expected corner %v in hull", c)
	}
}

func TestConvexHullCollinearExcluded(t *testing.T) {
	pts := []geom.PointD{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	hull := geom.ConvexHull(pts, 1e-9)
	for _, h := range hull {
		assert.False(t, h.Equal(geom.PointD{X: 5, Y: 0}, 1e-9))
	}
}

func TestPolygonAreaAndCentroid(t *testing.T) {
	poly := square()

	assert.InDelta(t, 100, geom.PolygonArea(poly), 1e-9)
	c := geom.PolygonCentroid(poly)
	assert.InDelta(t, 5, c.X, 1e-9)
	assert.InDelta(t, 5, c.Y, 1e-9)
}
