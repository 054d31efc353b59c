package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/planesweep/core"
)

func TestAddVertexIdempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("a"))
	require.NoError(t, g.AddVertex("a"))
	require.Equal(t, 1, g.VertexCount())
	require.Equal(t, core.ErrEmptyVertexID, g.AddVertex(""))
}

func TestAddEdgeUndirectedMirrors(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	eid, err := g.AddEdge("a", "b", 3)
	require.NoError(t, err)
	require.NotEmpty(t, eid)
	require.True(t, g.HasEdge("a", "b"))
	require.True(t, g.HasEdge("b", "a"))

	ns, err := g.NeighborIDs("a")
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, ns)
}

func TestAddEdgeRejectsBadWeight(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 1)
	require.Equal(t, core.ErrBadWeight, err)
}

func TestAddEdgeRejectsLoopByDefault(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "a", 0)
	require.Equal(t, core.ErrLoopNotAllowed, err)
}

func TestAddEdgeRejectsMultiByDefault(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("a", "b", 0)
	require.Equal(t, core.ErrMultiEdgeNotAllowed, err)
}

func TestRemoveVertexRemovesIncidentEdges(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 0)
	require.NoError(t, err)
	require.NoError(t, g.RemoveVertex("a"))
	require.False(t, g.HasVertex("a"))
	require.Equal(t, 0, g.EdgeCount())
}

func TestCloneIsIndependent(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("a", "b", 5)
	require.NoError(t, err)
	clone := g.Clone()
	require.NoError(t, clone.RemoveVertex("a"))
	require.True(t, g.HasVertex("a"))
	require.False(t, clone.HasVertex("a"))
}

func TestDegreeCountsUndirectedSelfLoopTwice(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge("a", "a", 0)
	require.NoError(t, err)
	in, out, undirected, err := g.Degree("a")
	require.NoError(t, err)
	require.Equal(t, 0, in)
	require.Equal(t, 0, out)
	require.Equal(t, 2, undirected)
}
