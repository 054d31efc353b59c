package mlsi

import "github.com/katalvlaran/planesweep/geom"

// LineIncidence records one point at which two input segments meet or
// overlap. Line1/Line2 are indices into the caller's input slice, always
// stored with Line1 < Line2.
type LineIncidence struct {
	Line1, Line2 int
	Shared       geom.PointD
	Relation     geom.LineRelation
	// Loc1/Loc2 classify Shared on the segment at Line1/Line2
	// respectively.
	Loc1, Loc2 geom.LineLocation
}

// config holds the resolved options for FindSimple/Find.
type config struct {
	eps float64
}

// Option configures FindSimple/Find.
type Option func(*config)

// WithEpsilon sets the tolerance used to decide parallelism, collinearity,
// and endpoint coincidence. The zero value performs exact arithmetic.
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
