package voronoi

import "github.com/katalvlaran/planesweep/geom"

// FindDelaunay returns the Delaunay triangulation's edges as pairs of
// site indices — the dual of the Voronoi diagram's edges. Site
// coordinates are not otherwise needed by callers working purely with
// the triangulation's connectivity.
func FindDelaunay(sites []geom.PointD, bounds geom.RectD, opts ...Option) ([][2]int, error) {
	res, err := FindAll(sites, bounds, opts...)
	if err != nil {
		return nil, err
	}

	return res.DelaunayEdges, nil
}
