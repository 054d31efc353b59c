package collections_test

import (
	"testing"

	"github.com/katalvlaran/planesweep/collections"
	"github.com/katalvlaran/planesweep/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedPointSetPutGetRemove(t *testing.T) {
	cmp, err := geom.NewPointDComparatorAxis(1e-9, geom.XPrimary)
	require.NoError(t, err)
	s := collections.NewOrderedPointSet[string](cmp)

	s.Put(geom.PointD{X: 1, Y: 1}, "a")
	s.Put(geom.PointD{X: 5, Y: 5}, "b")
	s.Put(geom.PointD{X: 3, Y: 3}, "c")

	v, ok := s.Get(geom.PointD{X: 3, Y: 3})
	require.True(t, ok)
	assert.Equal(t, "c", v)

	assert.True(t, s.ContainsKey(geom.PointD{X: 1, Y: 1}))
	assert.True(t, s.Remove(geom.PointD{X: 1, Y: 1}))
	assert.False(t, s.ContainsKey(geom.PointD{X: 1, Y: 1}))
	assert.Equal(t, 2, s.Len())
}

func TestOrderedPointSetFindNearest(t *testing.T) {
	cmp, _ := geom.NewPointDComparatorAxis(1e-9, geom.XPrimary)
	s := collections.NewOrderedPointSet[int](cmp)
	s.Put(geom.PointD{X: 0, Y: 0}, 0)
	s.Put(geom.PointD{X: 10, Y: 10}, 1)
	s.Put(geom.PointD{X: 2, Y: 2}, 2)

	pt, val, ok := s.FindNearest(geom.PointD{X: 3, Y: 3})
	require.True(t, ok)
	assert.Equal(t, geom.PointD{X: 2, Y: 2}, pt)
	assert.Equal(t, 2, val)
}

func TestOrderedPointSetFindRange(t *testing.T) {
	cmp, _ := geom.NewPointDComparatorAxis(1e-9, geom.XPrimary)
	s := collections.NewOrderedPointSet[int](cmp)
	for i := 0; i < 10; i++ {
		s.Put(geom.PointD{X: float64(i), Y: float64(i)}, i)
	}
	r, _ := geom.NewRectD(geom.PointD{X: 2, Y: 2}, geom.PointD{X: 5, Y: 5})

	got := s.FindRange(r)
	assert.Len(t, got, 4)
}

func TestQuadtreePutGetRemove(t *testing.T) {
	bounds, _ := geom.NewRectD(geom.PointD{X: 0, Y: 0}, geom.PointD{X: 100, Y: 100})
	qt := collections.NewQuadtree[string](bounds, 2)

	qt.Put(geom.PointD{X: 10, Y: 10}, "a")
	qt.Put(geom.PointD{X: 90, Y: 90}, "b")
	qt.Put(geom.PointD{X: 10, Y: 90}, "c")
	qt.Put(geom.PointD{X: 90, Y: 10}, "d")
	qt.Put(geom.PointD{X: 50, Y: 50}, "e")

	v, ok := qt.Get(geom.PointD{X: 10, Y: 10})
	require.True(t, ok)
	assert.Equal(t, "a", v)

	assert.True(t, qt.Remove(geom.PointD{X: 50, Y: 50}))
	assert.False(t, qt.ContainsKey(geom.PointD{X: 50, Y: 50}))
}

func TestQuadtreeFindRange(t *testing.T) {
	bounds, _ := geom.NewRectD(geom.PointD{X: 0, Y: 0}, geom.PointD{X: 100, Y: 100})
	qt := collections.NewQuadtree[int](bounds, 1)
	for i := 0; i < 20; i++ {
		qt.Put(geom.PointD{X: float64(i * 5), Y: float64(i * 5)}, i)
	}

	r, _ := geom.NewRectD(geom.PointD{X: 10, Y: 10}, geom.PointD{X: 30, Y: 30})
	got := qt.FindRange(r)
	for _, p := range got {
		assert.True(t, r.Contains(p, 0, true))
	}
	assert.NotEmpty(t, got)
}

func TestQuadtreeEachVisitsAll(t *testing.T) {
	bounds, _ := geom.NewRectD(geom.PointD{X: 0, Y: 0}, geom.PointD{X: 10, Y: 10})
	qt := collections.NewQuadtree[int](bounds, 1)
	for i := 0; i < 5; i++ {
		qt.Put(geom.PointD{X: float64(i), Y: float64(i)}, i)
	}

	count := 0
	qt.Each(func(geom.PointD, int) { count++ })
	assert.Equal(t, 5, count)
}
