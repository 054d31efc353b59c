package voronoi

import (
	"container/heap"
	"math"
	"sort"

	"github.com/katalvlaran/planesweep/geom"
)

// FindAll computes the Voronoi diagram for sites, clipped to bounds.
// Degenerate inputs (zero/one site, exactly two sites, collinear sites)
// are handled explicitly; three or more sites in general position run
// the full Fortune sweep.
func FindAll(sites []geom.PointD, bounds geom.RectD, opts ...Option) (*VoronoiResults, error) {
	cfg := resolve(opts)
	if bounds.Width() <= 0 || bounds.Height() <= 0 {
		return nil, ErrInvalidBounds
	}
	if err := checkDuplicates(sites, cfg.eps); err != nil {
		return nil, err
	}

	switch {
	case len(sites) <= 1:
		return &VoronoiResults{Sites: sites}, nil
	case len(sites) == 2:
		return findTwoSites(sites, bounds), nil
	}

	if collinear, dir := allCollinear(sites, cfg.eps); collinear {
		return findCollinearFan(sites, dir, bounds, cfg.eps), nil
	}

	return (&fortuneSweep{sites: sites, bounds: bounds, eps: cfg.eps}).run(), nil
}

func checkDuplicates(sites []geom.PointD, eps float64) error {
	for i := 0; i < len(sites); i++ {
		for j := i + 1; j < len(sites); j++ {
			if sites[i].Equal(sites[j], eps) {
				return ErrDuplicateSite
			}
		}
	}

	return nil
}

// allCollinear reports whether every site lies on one line, returning
// its direction vector (sites[1]-sites[0], not normalized) when true.
func allCollinear(sites []geom.PointD, eps float64) (bool, geom.PointD) {
	dir := sites[1].Sub(sites[0])
	for _, p := range sites[2:] {
		v := p.Sub(sites[0])
		if math.Abs(dir.Cross(v)) > eps*math.Max(1, dir.Length()*v.Length()) {
			return false, geom.PointD{}
		}
	}

	return true, dir
}

// findTwoSites handles the exactly-two-sites degenerate case: a single
// edge along the perpendicular bisector, clipped to bounds.
func findTwoSites(sites []geom.PointD, bounds geom.RectD) *VoronoiResults {
	mid := sites[0].Add(sites[1]).Scale(0.5)
	d := sites[1].Sub(sites[0])
	perp := geom.PointD{X: -d.Y, Y: d.X}
	diag := bounds.Max.DistanceTo(bounds.Min) + 1
	ray := geom.LineD{Start: mid.Sub(perp.Scale(diag)), End: mid.Add(perp.Scale(diag))}

	res := &VoronoiResults{Sites: sites, DelaunayEdges: [][2]int{{0, 1}}}
	if clipped, ok := bounds.IntersectLine(ray); ok {
		res.Edges = []VoronoiEdge{{SiteLeft: 0, SiteRight: 1, Start: clipped.Start, End: clipped.End}}
	}
	res.Regions = regionsFromEdges(sites, res.Edges, bounds)

	return res
}

// findCollinearFan handles every-site-on-one-line: the bisector between
// each adjacent pair (in order along dir) is perpendicular to dir, so
// the whole fan is a set of mutually parallel edges.
func findCollinearFan(sites []geom.PointD, dir geom.PointD, bounds geom.RectD, eps float64) *VoronoiResults {
	type indexed struct {
		idx int
		pt  geom.PointD
		t   float64
	}
	ordered := make([]indexed, len(sites))
	for i, p := range sites {
		ordered[i] = indexed{idx: i, pt: p, t: p.Sub(sites[0]).Dot(dir)}
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].t < ordered[j].t })

	perp := geom.PointD{X: -dir.Y, Y: dir.X}
	diag := bounds.Max.DistanceTo(bounds.Min) + 1

	res := &VoronoiResults{Sites: sites}
	for i := 0; i+1 < len(ordered); i++ {
		a, b := ordered[i], ordered[i+1]
		mid := a.pt.Add(b.pt).Scale(0.5)
		ray := geom.LineD{Start: mid.Sub(perp.Scale(diag)), End: mid.Add(perp.Scale(diag))}
		res.DelaunayEdges = append(res.DelaunayEdges, [2]int{min(a.idx, b.idx), max(a.idx, b.idx)})
		if clipped, ok := bounds.IntersectLine(ray); ok {
			res.Edges = append(res.Edges, VoronoiEdge{SiteLeft: a.idx, SiteRight: b.idx, Start: clipped.Start, End: clipped.End})
		}
	}
	_ = eps
	res.Regions = regionsFromEdges(sites, res.Edges, bounds)

	return res
}

// fortuneSweep holds the mutable state of one sweep run.
type fortuneSweep struct {
	sites  []geom.PointD
	bounds geom.RectD
	eps    float64

	queue  *eventQueue
	beach  *beachLine
	sweepY float64

	vertices []geom.PointD
	edges    []*edgeBuilder
}

func (s *fortuneSweep) run() *VoronoiResults {
	s.queue = newEventQueue()
	s.beach = newBeachLine(s.sites)
	for i, p := range s.sites {
		s.queue.pushSite(i, p)
	}

	for s.queue.Len() > 0 {
		ev := heap.Pop(s.queue).(*event)
		s.sweepY = ev.pt.Y
		if ev.kind == siteEventKind {
			s.handleSite(ev.site)
		} else if ev.valid {
			s.handleCircle(ev)
		}
	}

	return s.finish()
}

func (s *fortuneSweep) handleSite(site int) {
	if s.beach.head == nil {
		s.beach.head = &arc{site: site}

		return
	}

	x := s.sites[site].X
	old := s.beach.locateAbove(x, s.sweepY)
	if old.circleEvent != nil {
		old.circleEvent.valid = false
		old.circleEvent = nil
	}

	start := parabolaPoint(s.sites[old.site], x, s.sweepY)

	right := s.beach.insertAfter(old, old.site)
	mid := s.beach.insertAfter(old, site)
	right.edge = &edgeBuilder{siteLeft: site, siteRight: old.site, start: start, hasStart: true, direction: bisectorDirection(s.sites[site], s.sites[old.site])}
	mid.edge = &edgeBuilder{siteLeft: old.site, siteRight: site, start: start, hasStart: true, direction: bisectorDirection(s.sites[old.site], s.sites[site])}

	s.checkCircleEvent(old.prev, old, mid)
	s.checkCircleEvent(mid, right, right.next)
}

func (s *fortuneSweep) handleCircle(ev *event) {
	b := ev.arc
	a, c := b.prev, b.next
	vertex := ev.center
	merged := false
	for _, v := range s.vertices {
		if v.Equal(vertex, s.eps) {
			merged = true

			break
		}
	}
	if !merged {
		s.vertices = append(s.vertices, vertex)
	}

	if b.edge != nil {
		b.edge.finish(vertex)
		s.edges = append(s.edges, b.edge)
	}
	if c != nil && c.edge != nil {
		c.edge.finish(vertex)
		s.edges = append(s.edges, c.edge)
	}

	if a != nil && a.circleEvent != nil {
		a.circleEvent.valid = false
		a.circleEvent = nil
	}
	if c != nil && c.circleEvent != nil {
		c.circleEvent.valid = false
		c.circleEvent = nil
	}

	s.beach.remove(b)

	if a != nil && c != nil {
		c.edge = &edgeBuilder{siteLeft: a.site, siteRight: c.site, start: vertex, hasStart: true, direction: bisectorDirection(s.sites[a.site], s.sites[c.site])}
		s.checkCircleEvent(a.prev, a, c)
		s.checkCircleEvent(a, c, c.next)
	}
}

// checkCircleEvent schedules a circle event for the triple (a,b,c) if
// their sites turn clockwise (so the breakpoints on either side of b
// converge) and the circumcircle's lowest point lies at or below the
// current sweep position.
func (s *fortuneSweep) checkCircleEvent(a, b, c *arc) {
	if a == nil || b == nil || c == nil {
		return
	}
	pa, pb, pc := s.sites[a.site], s.sites[b.site], s.sites[c.site]
	if pb.Sub(pa).Cross(pc.Sub(pb)) >= 0 {
		return
	}
	center, radius, ok := circumcircle(s.sites[a.site], s.sites[b.site], s.sites[c.site])
	if !ok {
		return
	}
	bottom := center.Y - radius
	if bottom > s.sweepY+s.eps {
		return
	}

	ev := s.queue.pushCircle(geom.PointD{X: center.X, Y: bottom}, b)
	ev.center = center
	b.circleEvent = ev
}

// finish finalizes an in-progress edge at end. Edges still open when the
// sweep completes are extended along their stored direction by
// fortuneSweep.finish instead.
func (e *edgeBuilder) finish(end geom.PointD) {
	e.end = end
	e.hasEnd = true
}

// parabolaPoint returns the point on focus's parabolic arc directly
// above x, given the sweep line at directrixY.
func parabolaPoint(focus geom.PointD, x, directrixY float64) geom.PointD {
	denom := 2 * (focus.Y - directrixY)
	if math.Abs(denom) < 1e-12 {
		denom = math.Copysign(1e-12, denom)
	}
	y := ((x-focus.X)*(x-focus.X) + focus.Y*focus.Y - directrixY*directrixY) / denom

	return geom.PointD{X: x, Y: y}
}

// bisectorDirection returns a direction vector along the perpendicular
// bisector of a and b: b-a rotated a quarter turn clockwise, so that
// walking along it keeps a's region on the right.
func bisectorDirection(a, b geom.PointD) geom.PointD {
	d := b.Sub(a)

	return geom.PointD{X: d.Y, Y: -d.X}
}

// circumcircle returns the center and radius of the circle through a, b,
// c, and false if they are collinear.
func circumcircle(a, b, c geom.PointD) (geom.PointD, float64, bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < 1e-12 {
		return geom.PointD{}, 0, false
	}
	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y
	ux := (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d
	uy := (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d
	center := geom.PointD{X: ux, Y: uy}

	return center, center.DistanceTo(a), true
}

// finish wraps up the sweep: open edges are extended to the bounds,
// finished edges are clipped to them, and region polygons are derived.
func (s *fortuneSweep) finish() *VoronoiResults {
	diag := s.bounds.Max.DistanceTo(s.bounds.Min) + 1

	// Finish every breakpoint still open at sweep end by extending it
	// along its stored direction.
	for cur := s.beach.head; cur != nil; cur = cur.next {
		if cur.edge != nil && !cur.edge.hasEnd {
			cur.edge.end = cur.edge.start.Add(cur.edge.direction.Scale(diag))
			cur.edge.hasEnd = true
			s.edges = append(s.edges, cur.edge)
		}
	}

	res := &VoronoiResults{Sites: s.sites, Vertices: s.vertices}
	seen := make(map[[2]int]bool)
	for _, eb := range s.edges {
		if !eb.hasStart || !eb.hasEnd {
			continue
		}
		full := geom.LineD{Start: eb.start, End: eb.end}
		if full.IsDegenerate(s.eps) {
			continue
		}
		clipped, ok := s.bounds.IntersectLine(full)
		if !ok {
			continue
		}
		res.Edges = append(res.Edges, VoronoiEdge{SiteLeft: eb.siteLeft, SiteRight: eb.siteRight, Start: clipped.Start, End: clipped.End})
		key := [2]int{min(eb.siteLeft, eb.siteRight), max(eb.siteLeft, eb.siteRight)}
		if !seen[key] {
			seen[key] = true
			res.DelaunayEdges = append(res.DelaunayEdges, key)
		}
	}
	res.Regions = regionsFromEdges(s.sites, res.Edges, s.bounds)

	return res
}
