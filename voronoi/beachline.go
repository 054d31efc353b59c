package voronoi

import (
	"math"

	"github.com/katalvlaran/planesweep/geom"
)

// arc is one parabolic piece of the beach line, focused at site Site
// with the sweep line as directrix. The beach line is held as a doubly
// linked list in left-to-right order; no balanced tree is needed since
// each site event touches only the arc directly above it and each
// circle event touches only its three neighbors.
type arc struct {
	site        int
	prev, next  *arc
	circleEvent *event
	// edge is the in-progress edge traced by the breakpoint to this
	// arc's left (shared with prev), finalized when that breakpoint
	// disappears at a circle event or when the sweep completes.
	edge *edgeBuilder
}

// edgeBuilder accumulates one Voronoi edge as its bounding breakpoint
// sweeps across the plane. start is the point where the breakpoint was
// first observed (often a circle event's vertex); direction is the ray
// the breakpoint continues along beyond start, used to extend an edge
// that never closes before the sweep ends.
type edgeBuilder struct {
	siteLeft, siteRight int
	start               geom.PointD
	hasStart            bool
	end                 geom.PointD
	hasEnd              bool
	direction           geom.PointD
}

// beachLine is the ordered sequence of arcs, with helpers to locate the
// arc above a given x at the current sweep y.
type beachLine struct {
	sites []geom.PointD
	head  *arc
}

func newBeachLine(sites []geom.PointD) *beachLine {
	return &beachLine{sites: sites}
}

// breakpointX returns the x-coordinate at which the parabolas focused at
// left and right, with directrix y=sweepY, meet. Standard closed form
// for two parabolic arcs under a common directrix.
func breakpointX(left, right geom.PointD, sweepY float64) float64 {
	if left.Y == right.Y {
		return (left.X + right.X) / 2
	}
	if left.Y == sweepY {
		return left.X
	}
	if right.Y == sweepY {
		return right.X
	}

	d1 := 1 / (2 * (left.Y - sweepY))
	d2 := 1 / (2 * (right.Y - sweepY))
	a := d1 - d2
	b := -2 * (left.X*d1 - right.X*d2)
	c := (left.X*left.X+left.Y*left.Y-sweepY*sweepY)*d1 - (right.X*right.X+right.Y*right.Y-sweepY*sweepY)*d2

	if a == 0 {
		return -c / b
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		disc = 0
	}
	sq := math.Sqrt(disc)
	x1 := (-b + sq) / (2 * a)
	x2 := (-b - sq) / (2 * a)
	if left.Y < right.Y {
		return math.Max(x1, x2)
	}

	return math.Min(x1, x2)
}

// locateAbove returns the arc whose parabola lies directly above x at
// the given sweep y.
func (b *beachLine) locateAbove(x, sweepY float64) *arc {
	cur := b.head
	for cur != nil {
		if cur.next == nil {
			return cur
		}
		bx := breakpointX(b.sites[cur.site], b.sites[cur.next.site], sweepY)
		if x < bx {
			return cur
		}
		cur = cur.next
	}

	return nil
}

// insertAfter splices a new arc focused at site immediately after prev,
// used when a site event splits an existing arc into left/new/right.
func (b *beachLine) insertAfter(prev *arc, site int) *arc {
	n := &arc{site: site, prev: prev, next: prev.next}
	if prev.next != nil {
		prev.next.prev = n
	}
	prev.next = n

	return n
}

func (b *beachLine) remove(a *arc) {
	if a.prev != nil {
		a.prev.next = a.next
	} else {
		b.head = a.next
	}
	if a.next != nil {
		a.next.prev = a.prev
	}
}
