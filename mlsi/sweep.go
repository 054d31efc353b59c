package mlsi

import (
	"sort"

	"github.com/google/btree"

	"github.com/katalvlaran/planesweep/geom"
)

// eventPoint is a node in the Bentley-Ottmann event queue, keyed by a
// point in the plane. The queue is ordered top-down: larger Y first,
// ties broken by smaller X, matching screen-coordinate sweep direction.
type eventPoint struct {
	pt geom.PointD
	// upperOf holds indices of segments whose upper endpoint is pt.
	upperOf []int
	// lowerOf holds indices of segments whose lower endpoint is pt.
	lowerOf []int
	// crossAt holds indices of segments, already active in the status
	// structure, known to cross at pt (discovered by an earlier
	// neighbor test).
	crossAt []int
}

func (e *eventPoint) Less(than btree.Item) bool {
	o := than.(*eventPoint)
	if e.pt.Y != o.pt.Y {
		return e.pt.Y > o.pt.Y
	}

	return e.pt.X < o.pt.X
}

// Find finds every crossing among lines using a Bentley-Ottmann sweep:
// an event queue ordered by sweep point (backed by a B-tree, since unlike
// the status structure its keys never change after insertion) and a
// status structure of segments crossing the current sweep line, ordered
// by x and re-tested against their new neighbors whenever two segments
// swap order. It reports the same incidences as FindSimple, modulo
// ordering, in asymptotically better time when crossings are sparse.
func Find(lines []geom.LineD, opts ...Option) []LineIncidence {
	cfg := resolve(opts)
	s := newSweep(lines, cfg.eps)

	return s.run()
}

type sweep struct {
	lines []geom.LineD
	eps   float64
	queue *btree.BTree
	// status holds indices into lines, ordered by x at the current
	// sweep y, maintained as a sorted slice: the working set at any one
	// event is always small relative to len(lines) for sparse inputs.
	status  []int
	sweepY  float64
	results []LineIncidence
	// seen dedups incidences recorded both when discovered (look-ahead
	// neighbor test) and when the sweep actually reaches the point.
	seen map[[2]int]map[geom.PointD]bool
}

func newSweep(lines []geom.LineD, eps float64) *sweep {
	s := &sweep{
		lines: lines,
		eps:   eps,
		queue: btree.New(16),
		seen:  make(map[[2]int]map[geom.PointD]bool),
	}
	for i, l := range lines {
		if l.IsDegenerate(eps) {
			continue
		}
		upper, lower := l.Start, l.End
		if s.below(upper, lower) {
			upper, lower = lower, upper
		}
		s.addEvent(upper).upperOf = append(s.addEvent(upper).upperOf, i)
		s.addEvent(lower).lowerOf = append(s.addEvent(lower).lowerOf, i)
	}

	return s
}

// below reports whether a is below b in sweep order (a would be
// processed after b).
func (s *sweep) below(a, b geom.PointD) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}

	return a.X > b.X
}

func (s *sweep) addEvent(pt geom.PointD) *eventPoint {
	probe := &eventPoint{pt: pt}
	if existing := s.queue.Get(probe); existing != nil {
		return existing.(*eventPoint)
	}
	s.queue.ReplaceOrInsert(probe)

	return probe
}

func (s *sweep) xAtY(idx int, y float64) float64 {
	l := s.lines[idx]
	dy := l.End.Y - l.Start.Y
	if dy == 0 {
		return l.Start.X
	}

	return l.Start.X + (y-l.Start.Y)*(l.End.X-l.Start.X)/dy
}

func (s *sweep) statusLess(i, j int) bool {
	xi, xj := s.xAtY(i, s.sweepY), s.xAtY(j, s.sweepY)
	if xi != xj {
		return xi < xj
	}
	// Tie-break by slope, giving a deterministic and stable order for
	// segments that cross exactly on the sweep line.
	si, sj := s.lines[i].Slope(), s.lines[j].Slope()

	return si < sj
}

func (s *sweep) insertStatus(idx int) int {
	pos := sort.Search(len(s.status), func(k int) bool { return s.statusLess(idx, s.status[k]) })
	s.status = append(s.status, 0)
	copy(s.status[pos+1:], s.status[pos:])
	s.status[pos] = idx

	return pos
}

func (s *sweep) removeStatus(idx int) {
	for k, v := range s.status {
		if v == idx {
			s.status = append(s.status[:k], s.status[k+1:]...)

			return
		}
	}
}

func (s *sweep) positionOf(idx int) int {
	for k, v := range s.status {
		if v == idx {
			return k
		}
	}

	return -1
}

// run drains the event queue, returning every incidence found.
func (s *sweep) run() []LineIncidence {
	for s.queue.Len() > 0 {
		item := s.queue.Min()
		s.queue.Delete(item)
		ev := item.(*eventPoint)
		s.handleEvent(ev)
	}

	return s.results
}

func (s *sweep) handleEvent(ev *eventPoint) {
	s.sweepY = ev.pt.Y

	for _, idx := range ev.lowerOf {
		s.removeStatus(idx)
	}

	affected := append(append([]int{}, ev.upperOf...), ev.crossAt...)
	for _, idx := range ev.upperOf {
		s.insertStatus(idx)
	}

	for _, inc := range segmentPairsAt(ev, s.lines, s.eps) {
		s.record(inc.Line1, inc.Line2, inc.Shared, inc.Loc1, inc.Loc2, inc.Relation)
	}

	// Re-test every affected segment against its current neighbors: a
	// segment that just started, ended, or crossed here may now be
	// adjacent to a segment it has not yet been tested against.
	toCheck := append(append([]int{}, affected...), ev.lowerOf...)
	for _, idx := range toCheck {
		pos := s.positionOf(idx)
		if pos < 0 {
			continue
		}
		if pos > 0 {
			s.testPair(s.status[pos-1], s.status[pos])
		}
		if pos+1 < len(s.status) {
			s.testPair(s.status[pos], s.status[pos+1])
		}
	}
	if len(s.status) >= 2 {
		// Left/right neighbors of whatever just left the structure may
		// now be adjacent; test the whole boundary around the event.
		for k := 0; k+1 < len(s.status); k++ {
			s.testPair(s.status[k], s.status[k+1])
		}
	}
}

// segmentPairsAt classifies every pair of segments meeting at ev.pt (its
// upper/lower/cross participants), used to record the incidence for the
// point the sweep is currently processing. It reuses classifyPair so that
// collinear overlaps are reported identically to FindSimple.
func segmentPairsAt(ev *eventPoint, lines []geom.LineD, eps float64) []LineIncidence {
	all := append(append(append([]int{}, ev.upperOf...), ev.lowerOf...), ev.crossAt...)
	var out []LineIncidence
	for a := 0; a < len(all); a++ {
		for b := a + 1; b < len(all); b++ {
			i, j := all[a], all[b]
			if i == j {
				continue
			}
			if i > j {
				i, j = j, i
			}
			for _, inc := range classifyPair(i, j, lines[i], lines[j], eps) {
				if inc.Shared.Equal(ev.pt, eps) {
					out = append(out, inc)
				}
			}
		}
	}

	return out
}

// testPair checks two status-adjacent segments for an intersection at or
// below the current sweep position and, if found, schedules an event for
// it (a no-op if that event already exists).
func (s *sweep) testPair(i, j int) {
	if i == j {
		return
	}
	a, b := i, j
	if a > b {
		a, b = b, a
	}
	for _, inc := range classifyPair(a, b, s.lines[a], s.lines[b], s.eps) {
		if inc.Shared.Y > s.sweepY+s.eps {
			// Strictly above the sweep line: not yet reached.
			continue
		}
		ev := s.addEvent(inc.Shared)
		ev.crossAt = appendUnique(ev.crossAt, a)
		ev.crossAt = appendUnique(ev.crossAt, b)
		if inc.Shared.Y < s.sweepY-s.eps {
			continue
		}
		s.record(a, b, inc.Shared, inc.Loc1, inc.Loc2, inc.Relation)
	}
}

func appendUnique(xs []int, v int) []int {
	for _, x := range xs {
		if x == v {
			return xs
		}
	}

	return append(xs, v)
}

func (s *sweep) record(i, j int, pt geom.PointD, loc1, loc2 geom.LineLocation, rel geom.LineRelation) {
	key := [2]int{i, j}
	if s.seen[key] == nil {
		s.seen[key] = make(map[geom.PointD]bool)
	}
	for seenPt := range s.seen[key] {
		if seenPt.Equal(pt, s.eps) {
			return
		}
	}
	s.seen[key][pt] = true
	s.results = append(s.results, LineIncidence{Line1: i, Line2: j, Shared: pt, Relation: rel, Loc1: loc1, Loc2: loc2})
}
