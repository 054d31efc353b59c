package mlsi_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/planesweep/geom"
	"github.com/katalvlaran/planesweep/mlsi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSimpleXCross(t *testing.T) {
	lines := []geom.LineD{
		{Start: geom.PointD{X: 0, Y: 0}, End: geom.PointD{X: 10, Y: 10}},
		{Start: geom.PointD{X: 0, Y: 10}, End: geom.PointD{X: 10, Y: 0}},
	}

	incs := mlsi.FindSimple(lines, mlsi.WithEpsilon(1e-9))
	require.Len(t, incs, 1)
	assert.Equal(t, geom.RelationDivergent, incs[0].Relation)
	assert.InDelta(t, 5, incs[0].Shared.X, 1e-9)
	assert.InDelta(t, 5, incs[0].Shared.Y, 1e-9)
}

func TestFindSimpleIgnoresNonCrossingPairs(t *testing.T) {
	lines := []geom.LineD{
		{Start: geom.PointD{X: 0, Y: 0}, End: geom.PointD{X: 1, Y: 1}},
		{Start: geom.PointD{X: 5, Y: 5}, End: geom.PointD{X: 6, Y: 6}},
	}

	assert.Empty(t, mlsi.FindSimple(lines, mlsi.WithEpsilon(1e-9)))
}

func TestFindSimpleCollinearOverlapReportsEndpoints(t *testing.T) {
	lines := []geom.LineD{
		{Start: geom.PointD{X: 0, Y: 0}, End: geom.PointD{X: 10, Y: 0}},
		{Start: geom.PointD{X: 5, Y: 0}, End: geom.PointD{X: 15, Y: 0}},
	}

	incs := mlsi.FindSimple(lines, mlsi.WithEpsilon(1e-9))
	require.Len(t, incs, 2)
	for _, inc := range incs {
		assert.Equal(t, geom.RelationCollinear, inc.Relation)
	}
}

func TestSplitCutsAtBetweenIncidences(t *testing.T) {
	lines := []geom.LineD{
		{Start: geom.PointD{X: 0, Y: 0}, End: geom.PointD{X: 10, Y: 0}},
		{Start: geom.PointD{X: 5, Y: -5}, End: geom.PointD{X: 5, Y: 5}},
	}

	incs := mlsi.FindSimple(lines, mlsi.WithEpsilon(1e-9))
	require.Len(t, incs, 1)

	pieces := mlsi.Split(lines, incs, mlsi.WithEpsilon(1e-9))
	require.Len(t, pieces, 2)
	assert.Len(t, pieces[0], 2)
	assert.Len(t, pieces[1], 2)
}

func TestSplitLeavesUntouchedLineWhole(t *testing.T) {
	lines := []geom.LineD{
		{Start: geom.PointD{X: 0, Y: 0}, End: geom.PointD{X: 1, Y: 1}},
	}

	pieces := mlsi.Split(lines, nil)
	require.Len(t, pieces, 1)
	assert.Equal(t, lines, pieces[0])
}

func sortIncidences(incs []mlsi.LineIncidence) {
	sort.Slice(incs, func(i, j int) bool {
		a, b := incs[i], incs[j]
		if a.Line1 != b.Line1 {
			return a.Line1 < b.Line1
		}
		if a.Line2 != b.Line2 {
			return a.Line2 < b.Line2
		}
		if a.Shared.X != b.Shared.X {
			return a.Shared.X < b.Shared.X
		}

		return a.Shared.Y < b.Shared.Y
	})
}

// TestFindMatchesFindSimple cross-validates the sweep against the
// brute-force reference on a fixed battery of configurations, the
// property the two algorithms are required to share.
func TestFindMatchesFindSimple(t *testing.T) {
	cases := [][]geom.LineD{
		{
			{Start: geom.PointD{X: 0, Y: 0}, End: geom.PointD{X: 10, Y: 10}},
			{Start: geom.PointD{X: 0, Y: 10}, End: geom.PointD{X: 10, Y: 0}},
			{Start: geom.PointD{X: 5, Y: -5}, End: geom.PointD{X: 5, Y: 15}},
		},
		{
			{Start: geom.PointD{X: 0, Y: 0}, End: geom.PointD{X: 4, Y: 0}},
			{Start: geom.PointD{X: 1, Y: 2}, End: geom.PointD{X: 1, Y: -2}},
			{Start: geom.PointD{X: 2, Y: 2}, End: geom.PointD{X: 2, Y: -2}},
			{Start: geom.PointD{X: 3, Y: 2}, End: geom.PointD{X: 3, Y: -2}},
		},
		{
			{Start: geom.PointD{X: 0, Y: 0}, End: geom.PointD{X: 2, Y: 2}},
			{Start: geom.PointD{X: 2, Y: 0}, End: geom.PointD{X: 0, Y: 2}},
			{Start: geom.PointD{X: 0, Y: 1}, End: geom.PointD{X: 2, Y: 1}},
		},
	}

	for ci, lines := range cases {
		simple := mlsi.FindSimple(lines, mlsi.WithEpsilon(1e-9))
		swept := mlsi.Find(lines, mlsi.WithEpsilon(1e-9))

		sortIncidences(simple)
		sortIncidences(swept)

		require.Equal(t, len(simple), len(swept), "case %d: incidence count mismatch", ci)
		for k := range simple {
			assert.Equal(t, simple[k].Line1, swept[k].Line1, "case %d", ci)
			assert.Equal(t, simple[k].Line2, swept[k].Line2, "case %d", ci)
			assert.InDelta(t, simple[k].Shared.X, swept[k].Shared.X, 1e-6, "case %d", ci)
			assert.InDelta(t, simple[k].Shared.Y, swept[k].Shared.Y, 1e-6, "case %d", ci)
		}
	}
}
