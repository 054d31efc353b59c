package graph

import "github.com/katalvlaran/planesweep/geom"

// Graph is the read-only capability contract every algorithm in this
// package operates against. N is the opaque node identity; concrete
// graphs (dcel's face adjacency, polygrid's cell grid) key it however
// suits them, typically a string.
type Graph[N comparable] interface {
	// NodeCount returns the number of nodes.
	NodeCount() int
	// Nodes returns every node, in the graph's own deterministic order.
	Nodes() []N
	// HasNode reports whether n belongs to the graph.
	HasNode(n N) bool
	// Neighbors returns the nodes directly reachable from n. May repeat
	// an ID if the underlying graph permits self-edges; callers that
	// forbid loops filter n out themselves.
	Neighbors(n N) []N
	// Position returns n's world position, or false if n carries none.
	Position(n N) (geom.PointD, bool)
	// Polygon returns the world polygon of n's region, or false if n has
	// no associated region.
	Polygon(n N) ([]geom.PointD, bool)
	// Nearest returns the node whose Position is closest to q.
	Nearest(q geom.PointD) (N, bool)
	// Distance returns the non-negative metric distance between a and b.
	Distance(a, b N) float64
}

// Agent layers per-query rules onto a Graph's static topology: whether a
// step is legal, its cost, and the goal test A* uses.
type Agent[N comparable] interface {
	// CanMakeStep reports whether moving from src to dst is legal at all.
	CanMakeStep(src, dst N) bool
	// CanOccupy reports whether dst is a permissible terminal node.
	CanOccupy(dst N) bool
	// GetStepCost returns the non-negative cost of moving src -> dst.
	GetStepCost(src, dst N) float64
	// IsNearTarget is A*'s goal test: whether src counts as having
	// reached target, within distance.
	IsNearTarget(src, target N, distance float64) bool
	// RelaxedRange reports whether Coverage should admit a node whose
	// predecessor's cost is within budget even though its own exceeds it,
	// by at most that final step's cost.
	RelaxedRange() bool
}
