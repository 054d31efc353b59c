package geom_test

import (
	"testing"

	"github.com/katalvlaran/planesweep/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRectDRejectsInverted(t *testing.T) {
	_, err := geom.NewRectD(geom.PointD{X: 5, Y: 0}, geom.PointD{X: 0, Y: 5})
	require.ErrorIs(t, err, geom.ErrInvalidRect)
}

func TestRectDContains(t *testing.T) {
	r, err := geom.NewRectD(geom.PointD{X: 0, Y: 0}, geom.PointD{X: 10, Y: 10})
	require.NoError(t, err)

	assert.True(t, r.Contains(geom.PointD{X: 5, Y: 5}, 0, true))
	assert.True(t, r.Contains(geom.PointD{X: 0, Y: 0}, 0, true))
	assert.False(t, r.Contains(geom.PointD{X: 0, Y: 0}, 0, false))
	assert.False(t, r.Contains(geom.PointD{X: 11, Y: 5}, 0, true))
}

func TestRectDIntersectionAndUnion(t *testing.T) {
	a, _ := geom.NewRectD(geom.PointD{X: 0, Y: 0}, geom.PointD{X: 10, Y: 10})
	b, _ := geom.NewRectD(geom.PointD{X: 5, Y: 5}, geom.PointD{X: 15, Y: 15})

	got, ok := a.Intersection(b)
	require.True(t, ok)
	assert.Equal(t, geom.PointD{X: 5, Y: 5}, got.Min)
	assert.Equal(t, geom.PointD{X: 10, Y: 10}, got.Max)

	u := a.Union(b)
	assert.Equal(t, geom.PointD{X: 0, Y: 0}, u.Min)
	assert.Equal(t, geom.PointD{X: 15, Y: 15}, u.Max)

	c, _ := geom.NewRectD(geom.PointD{X: 20, Y: 20}, geom.PointD{X: 30, Y: 30})
	_, ok = a.Intersection(c)
	assert.False(t, ok)
}

func TestRectDDistanceVector(t *testing.T) {
	r, _ := geom.NewRectD(geom.PointD{X: 0, Y: 0}, geom.PointD{X: 10, Y: 10})

	assert.Equal(t, geom.PointD{}, r.DistanceVector(geom.PointD{X: 5, Y: 5}))

	v := r.DistanceVector(geom.PointD{X: 15, Y: 5})
	assert.InDelta(t, -5, v.X, 1e-9)
	assert.InDelta(t, 0, v.Y, 1e-9)
}

func TestRectDIntersectLine(t *testing.T) {
	r, _ := geom.NewRectD(geom.PointD{X: 0, Y: 0}, geom.PointD{X: 10, Y: 10})
	l := geom.LineD{Start: geom.PointD{X: -5, Y: 5}, End: geom.PointD{X: 15, Y: 5}}

	clipped, ok := r.IntersectLine(l)
	require.True(t, ok)
	assert.InDelta(t, 0, clipped.Start.X, 1e-9)
	assert.InDelta(t, 10, clipped.End.X, 1e-9)

	outside := geom.LineD{Start: geom.PointD{X: -5, Y: -5}, End: geom.PointD{X: -1, Y: -1}}
	_, ok = r.IntersectLine(outside)
	assert.False(t, ok)
}

func TestRectDIntersectPolygon(t *testing.T) {
	r, _ := geom.NewRectD(geom.PointD{X: 0, Y: 0}, geom.PointD{X: 10, Y: 10})
	tri := []geom.PointD{{X: -5, Y: 5}, {X: 5, Y: -5}, {X: 15, Y: 15}}

	clipped := r.IntersectPolygon(tri)
	assert.NotEmpty(t, clipped)
	for _, p := range clipped {
		assert.True(t, r.Contains(p, 1e-9, true))
	}
}

func TestNewSizeDRejectsNegative(t *testing.T) {
	_, err := geom.NewSizeD(-1, 2)
	require.ErrorIs(t, err, geom.ErrNegativeSize)
}
