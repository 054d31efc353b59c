package graph_test

import (
	"testing"

	"github.com/katalvlaran/planesweep/geom"
	"github.com/katalvlaran/planesweep/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridGraph is a minimal graph.Graph[string] fixture: an n x n grid of
// unit cells, 4-connected, positioned at integer coordinates.
type gridGraph struct {
	n int
}

func cellID(x, y int) string {
	return string(rune('A'+x)) + string(rune('a'+y))
}

func (g gridGraph) NodeCount() int { return g.n * g.n }

func (g gridGraph) Nodes() []string {
	var out []string
	for x := 0; x < g.n; x++ {
		for y := 0; y < g.n; y++ {
			out = append(out, cellID(x, y))
		}
	}

	return out
}

func (g gridGraph) HasNode(id string) bool {
	for _, n := range g.Nodes() {
		if n == id {
			return true
		}
	}

	return false
}

func parseCell(id string) (int, int) {
	return int(id[0] - 'A'), int(id[1] - 'a')
}

func (g gridGraph) Neighbors(id string) []string {
	x, y := parseCell(id)
	var out []string
	for _, d := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		nx, ny := x+d[0], y+d[1]
		if nx < 0 || nx >= g.n || ny < 0 || ny >= g.n {
			continue
		}
		out = append(out, cellID(nx, ny))
	}

	return out
}

func (g gridGraph) Position(id string) (geom.PointD, bool) {
	x, y := parseCell(id)

	return geom.PointD{X: float64(x), Y: float64(y)}, true
}

func (g gridGraph) Polygon(string) ([]geom.PointD, bool) { return nil, false }

func (g gridGraph) Nearest(q geom.PointD) (string, bool) {
	best := ""
	bestD := 0.0
	for _, n := range g.Nodes() {
		p, _ := g.Position(n)
		d := p.DistanceSquaredTo(q)
		if best == "" || d < bestD {
			best, bestD = n, d
		}
	}

	return best, best != ""
}

func (g gridGraph) Distance(a, b string) float64 {
	pa, _ := g.Position(a)
	pb, _ := g.Position(b)

	return pa.DistanceTo(pb)
}

func TestAStarFindsShortestPath(t *testing.T) {
	g := gridGraph{n: 5}
	path, err := graph.AStar[string](g, nil, cellID(0, 0), cellID(4, 4), 0, false)
	require.NoError(t, err)
	assert.Equal(t, 8, len(path))
	assert.Equal(t, cellID(4, 4), path[len(path)-1])
}

func TestAStarRejectsUnknownNodes(t *testing.T) {
	g := gridGraph{n: 3}
	_, err := graph.AStar[string](g, nil, "nope", cellID(1, 1), 0, false)
	assert.ErrorIs(t, err, graph.ErrSourceNotFound)
}

func TestCoverageRespectsBudget(t *testing.T) {
	g := gridGraph{n: 5}
	reached, err := graph.Coverage[string](g, nil, cellID(2, 2), 2)
	require.NoError(t, err)

	for n, d := range reached {
		assert.LessOrEqual(t, d, 2.0, "node %s", n)
	}
	assert.Contains(t, reached, cellID(2, 2))
}

func TestFloodFillRequiresSourceMatch(t *testing.T) {
	g := gridGraph{n: 3}
	_, err := graph.FloodFill[string](g, cellID(0, 0), func(string) bool { return false })
	assert.ErrorIs(t, err, graph.ErrSourceDoesNotMatch)
}

func TestFloodFillCollectsConnectedMatches(t *testing.T) {
	g := gridGraph{n: 3}
	match := func(id string) bool {
		x, _ := parseCell(id)

		return x < 2
	}
	reached, err := graph.FloodFill[string](g, cellID(0, 0), match)
	require.NoError(t, err)
	assert.Len(t, reached, 6)
}

func TestVisibilityWithoutOccludersSeesEverythingWithinRadius(t *testing.T) {
	g := gridGraph{n: 5}
	visible, err := graph.Visibility[string](g, cellID(2, 2), 1.5, func(string) bool { return false }, 0.5)
	require.NoError(t, err)
	assert.NotEmpty(t, visible)
}

func TestVisibilityOpaqueNodeOccludesFarther(t *testing.T) {
	g := gridGraph{n: 5}
	opaque := func(id string) bool { return id == cellID(3, 2) }
	visible, err := graph.Visibility[string](g, cellID(2, 2), 0, opaque, 0.9)
	require.NoError(t, err)
	for _, n := range visible {
		assert.NotEqual(t, cellID(4, 2), n)
	}
}
