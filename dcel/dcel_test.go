package dcel_test

import (
	"testing"

	"github.com/katalvlaran/planesweep/dcel"
	"github.com/katalvlaran/planesweep/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x0, y0, x1, y1 float64) []geom.PointD {
	return []geom.PointD{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	}
}

func TestFromPolygonsSingleSquare(t *testing.T) {
	s, err := dcel.FromPolygons([][]geom.PointD{square(0, 0, 10, 10)}, 1e-9)
	require.NoError(t, err)

	assert.Equal(t, 4, s.VertexCount())
	assert.Equal(t, 8, s.EdgeCount())
	assert.Equal(t, 2, s.FaceCount())
}

func TestFromPolygonsTwoDisjointSquares(t *testing.T) {
	polys := [][]geom.PointD{
		square(0, 0, 10, 10),
		square(20, 0, 30, 10),
	}
	s, err := dcel.FromPolygons(polys, 1e-9)
	require.NoError(t, err)

	assert.Equal(t, 8, s.VertexCount())
	assert.Equal(t, 3, s.FaceCount())
}

func TestFromLinesSharedEndpointsCollapse(t *testing.T) {
	lines := []geom.LineD{
		{Start: geom.PointD{X: 0, Y: 0}, End: geom.PointD{X: 10, Y: 0}},
		{Start: geom.PointD{X: 10, Y: 0}, End: geom.PointD{X: 10, Y: 10}},
		{Start: geom.PointD{X: 10, Y: 10}, End: geom.PointD{X: 0, Y: 10}},
		{Start: geom.PointD{X: 0, Y: 10}, End: geom.PointD{X: 0, Y: 0}},
	}
	s, err := dcel.FromLines(lines, 1e-9)
	require.NoError(t, err)
	assert.Equal(t, 4, s.VertexCount())
}

func TestFindFaceLocatesInsideAndOutside(t *testing.T) {
	s, err := dcel.FromPolygons([][]geom.PointD{square(0, 0, 10, 10)}, 1e-9)
	require.NoError(t, err)

	inside, err := s.FindFaceBrute(geom.PointD{X: 5, Y: 5})
	require.NoError(t, err)
	assert.NotEqual(t, dcel.UnboundedFaceKey, inside)

	outside, err := s.FindFaceBrute(geom.PointD{X: 50, Y: 50})
	require.NoError(t, err)
	assert.Equal(t, dcel.UnboundedFaceKey, outside)

	insideOrdered, err := s.FindFaceOrdered(geom.PointD{X: 5, Y: 5})
	require.NoError(t, err)
	assert.Equal(t, inside, insideOrdered)
}

func TestAddEdgeRejectsCrossing(t *testing.T) {
	s, err := dcel.FromPolygons([][]geom.PointD{square(0, 0, 10, 10)}, 1e-9)
	require.NoError(t, err)

	_, err = s.AddEdge(geom.PointD{X: 5, Y: -5}, geom.PointD{X: 5, Y: 15})
	assert.ErrorIs(t, err, dcel.ErrEdgeCrossesExisting)
}

func TestAddEdgeSplitsFace(t *testing.T) {
	s, err := dcel.FromPolygons([][]geom.PointD{square(0, 0, 10, 10)}, 1e-9)
	require.NoError(t, err)

	before := s.FaceCount()
	_, err = s.AddEdge(geom.PointD{X: 0, Y: 0}, geom.PointD{X: 10, Y: 10})
	require.NoError(t, err)
	assert.Equal(t, before+1, s.FaceCount())
}

func TestSplitEdgeAddsVertexNoFaceChange(t *testing.T) {
	s, err := dcel.FromPolygons([][]geom.PointD{square(0, 0, 10, 10)}, 1e-9)
	require.NoError(t, err)
	faces := s.FaceCount()

	var anyEdge int
	for _, k := range s.EdgeKeys() {
		anyEdge = k

		break
	}
	_, err = s.SplitEdge(anyEdge)
	require.NoError(t, err)
	assert.Equal(t, 5, s.VertexCount())
	assert.Equal(t, faces, s.FaceCount())
}

func TestRemoveVertexRequiresDegreeTwo(t *testing.T) {
	s, err := dcel.FromPolygons([][]geom.PointD{square(0, 0, 10, 10)}, 1e-9)
	require.NoError(t, err)

	_, err = s.AddEdge(geom.PointD{X: 0, Y: 0}, geom.PointD{X: 10, Y: 10})
	require.NoError(t, err)

	err = s.RemoveVertex(geom.PointD{X: 0, Y: 0})
	assert.ErrorIs(t, err, dcel.ErrNotDegreeTwo)
}

func TestRemoveVertexMergesEdges(t *testing.T) {
	lines := []geom.LineD{
		{Start: geom.PointD{X: 0, Y: 0}, End: geom.PointD{X: 5, Y: 0}},
		{Start: geom.PointD{X: 5, Y: 0}, End: geom.PointD{X: 10, Y: 0}},
	}
	s, err := dcel.FromLines(lines, 1e-9)
	require.NoError(t, err)
	require.Equal(t, 3, s.VertexCount())

	err = s.RemoveVertex(geom.PointD{X: 5, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, 2, s.VertexCount())
}

func TestMoveVertexRejectsCoincidence(t *testing.T) {
	s, err := dcel.FromPolygons([][]geom.PointD{square(0, 0, 10, 10)}, 1e-9)
	require.NoError(t, err)

	err = s.MoveVertex(geom.PointD{X: 0, Y: 0}, geom.PointD{X: 10, Y: 0})
	assert.ErrorIs(t, err, dcel.ErrVertexCoincidence)
}

func TestRenumberEdgesCompactsAfterRemoval(t *testing.T) {
	s, err := dcel.FromPolygons([][]geom.PointD{square(0, 0, 10, 10)}, 1e-9)
	require.NoError(t, err)

	// Remove the lowest-keyed edge so a gap is left below the highest key.
	target := sortedInts(s.EdgeKeys())[0]
	require.NoError(t, s.RemoveEdge(target))

	changed := s.RenumberEdges()
	assert.True(t, changed)
	for i, k := range sortedInts(s.EdgeKeys()) {
		assert.Equal(t, i, k)
	}
}

func TestFindNearestVertexAndEdge(t *testing.T) {
	s, err := dcel.FromPolygons([][]geom.PointD{square(0, 0, 10, 10)}, 1e-9)
	require.NoError(t, err)

	vKey, err := s.FindNearestVertex(geom.PointD{X: 0.1, Y: 0.1})
	require.NoError(t, err)
	v, err := s.Vertex(vKey)
	require.NoError(t, err)
	assert.Equal(t, geom.PointD{X: 0, Y: 0}, v.Pos)

	_, dist, err := s.FindNearestEdge(geom.PointD{X: 5, Y: -1})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, dist, 1e-9)
}

func TestIntersectionOverlapsTwoSquares(t *testing.T) {
	a, err := dcel.FromPolygons([][]geom.PointD{square(0, 0, 10, 10)}, 1e-9)
	require.NoError(t, err)
	b, err := dcel.FromPolygons([][]geom.PointD{square(5, 5, 15, 15)}, 1e-9)
	require.NoError(t, err)

	result, faceKeys1, faceKeys2, err := dcel.Intersection(a, b, 1e-9)
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.NotEmpty(t, faceKeys1)
	assert.NotEmpty(t, faceKeys2)
}

func TestCloneIsDeepCopy(t *testing.T) {
	s, err := dcel.FromPolygons([][]geom.PointD{square(0, 0, 10, 10)}, 1e-9)
	require.NoError(t, err)

	clone := s.Clone()
	require.NoError(t, clone.MoveVertex(geom.PointD{X: 0, Y: 0}, geom.PointD{X: -5, Y: -5}))

	v, err := s.Vertex(0)
	require.NoError(t, err)
	assert.NotEqual(t, geom.PointD{X: -5, Y: -5}, v.Pos)
}

func sortedInts(xs []int) []int {
	out := append([]int(nil), xs...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}

	return out
}
