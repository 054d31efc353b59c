package voronoi

import "github.com/katalvlaran/planesweep/geom"

// VoronoiEdge is one edge of the Voronoi diagram, separating the regions
// of SiteLeft and SiteRight (indices into the input site slice). Start
// and End are the edge's endpoints after clipping to the bounding
// rectangle.
type VoronoiEdge struct {
	SiteLeft, SiteRight int
	Start, End          geom.PointD
}

// VoronoiResults bundles the full output of a Voronoi construction.
type VoronoiResults struct {
	// Sites is the input site list, echoed back for convenience.
	Sites []geom.PointD
	// Vertices holds every Voronoi vertex (a point equidistant from
	// three or more sites), deduplicated within ε.
	Vertices []geom.PointD
	Edges    []VoronoiEdge
	// Regions holds, per site index, the bounded polygon of points
	// closer to that site than any other, in counter-clockwise order,
	// clipped to the bounds.
	Regions [][]geom.PointD
	// DelaunayEdges holds the pair of site indices for every Voronoi
	// edge — the dual Delaunay triangulation's edge set.
	DelaunayEdges [][2]int
}

// config holds resolved construction options.
type config struct {
	eps float64
}

// Option configures FindAll/FindDelaunay.
type Option func(*config)

// WithEpsilon sets the tolerance used for site deduplication, collinearity
// detection, and vertex merging. The zero value performs exact
// arithmetic.
func WithEpsilon(eps float64) Option {
	return func(c *config) { c.eps = eps }
}

func resolve(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
