package dcel

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/planesweep/core"
	"github.com/katalvlaran/planesweep/geom"
	"github.com/katalvlaran/planesweep/graph"
)

// faceNodeID formats a face key as the graph.Graph[string] node ID this
// package exposes it under.
func faceNodeID(key int) string { return fmt.Sprintf("f%d", key) }

func parseFaceID(id string) (int, bool) {
	var key int
	if n, err := fmt.Sscanf(id, "f%d", &key); err != nil || n != 1 {
		return 0, false
	}

	return key, true
}

// boundedFaceNeighbors returns, in ascending order, the keys of every
// bounded face sharing an edge with key: for each half-edge on key's
// outer cycle and each inner (hole) cycle, its twin's Face is a
// neighbor unless that twin bounds key itself or the unbounded face.
func (s *Subdivision) boundedFaceNeighbors(key int) []int {
	f := s.faces[key]
	seen := make(map[int]bool)
	var out []int

	cycles := append([]int{}, f.InnerEdges...)
	if f.OuterEdge >= 0 {
		cycles = append([]int{f.OuterEdge}, cycles...)
	}

	for _, start := range cycles {
		cur := start
		for {
			nb := s.edges[s.edges[cur].Twin].Face
			if nb != key && nb != UnboundedFaceKey && !seen[nb] {
				seen[nb] = true
				out = append(out, nb)
			}
			cur = s.edges[cur].Next
			if cur == start || cur < 0 {
				break
			}
		}
	}
	sort.Ints(out)

	return out
}

// CoreGraph builds (and caches, until the next topology rebuild) the
// weighted undirected adjacency graph induced by this subdivision's
// bounded faces: one vertex per bounded face (ID "f<key>", Metadata
// "faceKey"), one edge per pair of faces sharing a boundary edge,
// weighted by the rounded millimetric distance between their outer
// cycle centroids. This is the same vertex/edge/metadata convention
// polygrid.Grid.ToCoreGraph uses for cell adjacency.
func (s *Subdivision) CoreGraph() (*core.Graph, error) {
	if s.faceGraph != nil {
		return s.faceGraph, nil
	}

	cg := core.NewGraph(core.WithWeighted())
	keys := s.boundedFaceKeysSorted()
	centroids := make(map[int]geom.PointD, len(keys))

	for _, k := range keys {
		if err := cg.AddVertex(faceNodeID(k)); err != nil {
			return nil, err
		}
		outer, _ := s.facePolygon(k)
		centroids[k] = geom.PolygonCentroid(outer)
	}

	verts := cg.VerticesMap()
	for _, k := range keys {
		verts[faceNodeID(k)].Metadata["faceKey"] = k
	}

	for _, k := range keys {
		for _, nb := range s.boundedFaceNeighbors(k) {
			if nb <= k || cg.HasEdge(faceNodeID(k), faceNodeID(nb)) {
				continue
			}
			d := centroids[k].DistanceTo(centroids[nb])
			if _, err := cg.AddEdge(faceNodeID(k), faceNodeID(nb), int64(math.Round(d*1000))); err != nil {
				return nil, err
			}
		}
	}

	s.faceGraph = cg

	return cg, nil
}

// FaceGraphAdapter exposes a Subdivision's bounded faces as a
// graph.Graph[string]: nodes are faces, adjacency comes from
// Subdivision.CoreGraph, and positions/polygons/nearest/distance come
// directly from the subdivision's own geometry (core.Graph carries
// adjacency and metadata only, never coordinates).
type FaceGraphAdapter struct {
	sub *Subdivision
}

// NewFaceGraphAdapter wraps s for use with the graph package.
func NewFaceGraphAdapter(s *Subdivision) *FaceGraphAdapter {
	return &FaceGraphAdapter{sub: s}
}

var _ graph.Graph[string] = (*FaceGraphAdapter)(nil)

// NodeCount returns the number of bounded faces.
func (a *FaceGraphAdapter) NodeCount() int {
	cg, err := a.sub.CoreGraph()
	if err != nil {
		return 0
	}

	return cg.VertexCount()
}

// Nodes returns every bounded face's ID, lexicographically sorted.
func (a *FaceGraphAdapter) Nodes() []string {
	cg, err := a.sub.CoreGraph()
	if err != nil {
		return nil
	}

	return cg.Vertices()
}

// HasNode reports whether id names a bounded face of this subdivision.
func (a *FaceGraphAdapter) HasNode(id string) bool {
	cg, err := a.sub.CoreGraph()
	if err != nil {
		return false
	}

	return cg.HasVertex(id)
}

// Neighbors returns the IDs of every bounded face sharing a boundary
// edge with id.
func (a *FaceGraphAdapter) Neighbors(id string) []string {
	cg, err := a.sub.CoreGraph()
	if err != nil {
		return nil
	}
	ids, err := cg.NeighborIDs(id)
	if err != nil {
		return nil
	}

	return ids
}

// Position returns id's face's outer-cycle centroid.
func (a *FaceGraphAdapter) Position(id string) (geom.PointD, bool) {
	key, ok := parseFaceID(id)
	if !ok {
		return geom.PointD{}, false
	}
	outer, _ := a.sub.facePolygon(key)
	if len(outer) == 0 {
		return geom.PointD{}, false
	}

	return geom.PolygonCentroid(outer), true
}

// Polygon returns id's face's outer boundary ring.
func (a *FaceGraphAdapter) Polygon(id string) ([]geom.PointD, bool) {
	key, ok := parseFaceID(id)
	if !ok {
		return nil, false
	}
	outer, _ := a.sub.facePolygon(key)
	if len(outer) == 0 {
		return nil, false
	}

	return outer, true
}

// Nearest returns the bounded face containing q, falling back to the
// bounded face whose centroid is closest to q when q falls outside
// every bounded face (e.g. in the unbounded face).
func (a *FaceGraphAdapter) Nearest(q geom.PointD) (string, bool) {
	key, err := a.sub.FindFaceBrute(q)
	if err != nil {
		return "", false
	}
	if key != UnboundedFaceKey {
		return faceNodeID(key), true
	}

	best := -1
	bestD := math.Inf(1)
	for _, k := range a.sub.boundedFaceKeysSorted() {
		outer, _ := a.sub.facePolygon(k)
		if len(outer) == 0 {
			continue
		}
		if d := geom.PolygonCentroid(outer).DistanceSquaredTo(q); d < bestD {
			best, bestD = k, d
		}
	}
	if best < 0 {
		return "", false
	}

	return faceNodeID(best), true
}

// Distance returns the straight-line distance between src and dst's
// face centroids.
func (a *FaceGraphAdapter) Distance(src, dst string) float64 {
	pa, okA := a.Position(src)
	pb, okB := a.Position(dst)
	if !okA || !okB {
		return 0
	}

	return pa.DistanceTo(pb)
}
