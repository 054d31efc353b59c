package voronoi

import (
	"github.com/katalvlaran/planesweep/dcel"
	"github.com/katalvlaran/planesweep/geom"
)

// ToDelaunaySubdivision rebuilds the Delaunay triangulation carried in
// res.DelaunayEdges as a planar subdivision, by emitting one segment per
// dual edge and passing the set through dcel.FromLines.
func ToDelaunaySubdivision(res *VoronoiResults, eps float64) (*dcel.Subdivision, error) {
	lines := make([]geom.LineD, 0, len(res.DelaunayEdges))
	for _, e := range res.DelaunayEdges {
		a, b := res.Sites[e[0]], res.Sites[e[1]]
		lines = append(lines, geom.LineD{Start: a, End: b})
	}

	return dcel.FromLines(lines, eps)
}

// ToVoronoiSubdivision rebuilds the clipped Voronoi regions in res as a
// planar subdivision, by passing each site's bounded region polygon
// through dcel.FromPolygons.
func ToVoronoiSubdivision(res *VoronoiResults, eps float64) (*dcel.Subdivision, error) {
	polys := make([][]geom.PointD, 0, len(res.Regions))
	for _, r := range res.Regions {
		if len(r) >= 3 {
			polys = append(polys, r)
		}
	}

	return dcel.FromPolygons(polys, eps)
}
