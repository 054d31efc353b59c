package voronoi

import (
	"container/heap"

	"github.com/katalvlaran/planesweep/geom"
)

// eventKind distinguishes the two event types the sweep processes.
type eventKind int

const (
	siteEventKind eventKind = iota
	circleEventKind
)

// event is an entry in the sweep's priority queue, ordered top-down: a
// larger y sorts first (sites/circles nearer the top of the plane are
// processed before ones nearer the bottom), ties broken by smaller x.
type event struct {
	kind eventKind
	pt   geom.PointD // site location, or circle event's lowest point
	// site is the site index for a siteEventKind.
	site int
	// arc is the middle arc this circle event would remove, for a
	// circleEventKind. Invalidated (valid=false) if the beach line
	// changed underneath it before it is popped.
	arc   *arc
	valid bool
	// center is the circumcenter (the Voronoi vertex to be emitted),
	// for a circleEventKind; pt holds the circle's bottom point instead,
	// used only to order the event in the queue.
	center geom.PointD
}

// eventQueue implements container/heap.Interface, mirroring the
// lazy-invalidation pattern used for Dijkstra's relaxation queue: stale
// circle events are left in place and skipped when popped rather than
// removed eagerly.
type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.pt.Y != b.pt.Y {
		return a.pt.Y > b.pt.Y
	}

	return a.pt.X < b.pt.X
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x interface{}) { *q = append(*q, x.(*event)) }

func (q *eventQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}

func newEventQueue() *eventQueue {
	q := &eventQueue{}
	heap.Init(q)

	return q
}

func (q *eventQueue) pushSite(site int, pt geom.PointD) {
	heap.Push(q, &event{kind: siteEventKind, pt: pt, site: site, valid: true})
}

func (q *eventQueue) pushCircle(pt geom.PointD, a *arc) *event {
	ev := &event{kind: circleEventKind, pt: pt, arc: a, valid: true}
	heap.Push(q, ev)

	return ev
}
