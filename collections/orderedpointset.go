package collections

import (
	"sort"

	"github.com/katalvlaran/planesweep/geom"
)

// OrderedPointSet is an ordered associative container keyed by PointD
// under a supplied ε-tolerant comparator. Equality is insertion-order
// independent: inserting at a point already present (within ε) replaces
// its value rather than adding a second entry.
//
// Entries are kept in a slice sorted by the comparator's primary axis,
// which is what lets FindRange prune whole sub-ranges whose primary
// coordinate falls outside the query rectangle instead of scanning every
// entry.
type OrderedPointSet[V any] struct {
	cmp     geom.PointDComparator
	entries []psEntry[V]
}

type psEntry[V any] struct {
	pt  geom.PointD
	val V
}

// NewOrderedPointSet constructs an empty set using cmp for ordering and
// equality.
func NewOrderedPointSet[V any](cmp geom.PointDComparator) *OrderedPointSet[V] {
	return &OrderedPointSet[V]{cmp: cmp}
}

// Len returns the number of entries.
func (s *OrderedPointSet[V]) Len() int { return len(s.entries) }

func (s *OrderedPointSet[V]) search(pt geom.PointD) int {
	return sort.Search(len(s.entries), func(i int) bool { return !s.cmp.Less(s.entries[i].pt, pt) })
}

func (s *OrderedPointSet[V]) indexOf(pt geom.PointD) (int, bool) {
	i := s.search(pt)
	for k := i; k < len(s.entries) && s.cmp.Primary(s.entries[k].pt) <= s.cmp.Primary(pt)+s.cmp.Eps; k++ {
		if s.entries[k].pt.Equal(pt, s.cmp.Eps) {
			return k, true
		}
	}
	for k := i - 1; k >= 0 && s.cmp.Primary(s.entries[k].pt) >= s.cmp.Primary(pt)-s.cmp.Eps; k-- {
		if s.entries[k].pt.Equal(pt, s.cmp.Eps) {
			return k, true
		}
	}

	return i, false
}

// Put inserts or replaces the value at pt.
func (s *OrderedPointSet[V]) Put(pt geom.PointD, val V) {
	if idx, ok := s.indexOf(pt); ok {
		s.entries[idx].val = val

		return
	}
	pos := s.search(pt)
	s.entries = append(s.entries, psEntry[V]{})
	copy(s.entries[pos+1:], s.entries[pos:])
	s.entries[pos] = psEntry[V]{pt: pt, val: val}
}

// Get returns the value at pt and whether it was present.
func (s *OrderedPointSet[V]) Get(pt geom.PointD) (V, bool) {
	if idx, ok := s.indexOf(pt); ok {
		return s.entries[idx].val, true
	}
	var zero V

	return zero, false
}

// ContainsKey reports whether pt is present.
func (s *OrderedPointSet[V]) ContainsKey(pt geom.PointD) bool {
	_, ok := s.indexOf(pt)

	return ok
}

// Remove deletes the entry at pt, reporting whether it was present.
func (s *OrderedPointSet[V]) Remove(pt geom.PointD) bool {
	idx, ok := s.indexOf(pt)
	if !ok {
		return false
	}
	s.entries = append(s.entries[:idx], s.entries[idx+1:]...)

	return true
}

// Points returns every key, in comparator order.
func (s *OrderedPointSet[V]) Points() []geom.PointD {
	out := make([]geom.PointD, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.pt
	}

	return out
}

// FindNearest returns the entry whose point is closest to q by Euclidean
// distance, restricting the scan to entries whose primary coordinate is
// within the current best distance of q's, per the comparator's 1-D
// ordering. Returns false if the set is empty.
func (s *OrderedPointSet[V]) FindNearest(q geom.PointD) (geom.PointD, V, bool) {
	var zero V
	if len(s.entries) == 0 {
		return geom.PointD{}, zero, false
	}

	start := s.search(q)
	bestIdx := -1
	bestD := 0.0

	consider := func(i int) {
		d := s.entries[i].pt.DistanceSquaredTo(q)
		if bestIdx < 0 || d < bestD {
			bestIdx, bestD = i, d
		}
	}

	qp := s.cmp.Primary(q)
	for i := start; i < len(s.entries); i++ {
		if bestIdx >= 0 {
			gap := s.cmp.Primary(s.entries[i].pt) - qp
			if gap*gap > bestD {
				break
			}
		}
		consider(i)
	}
	for i := start - 1; i >= 0; i-- {
		if bestIdx >= 0 {
			gap := qp - s.cmp.Primary(s.entries[i].pt)
			if gap*gap > bestD {
				break
			}
		}
		consider(i)
	}

	return s.entries[bestIdx].pt, s.entries[bestIdx].val, true
}

// FindRange returns every (point, value) entry contained in r (closed),
// pruning the scan to the primary-axis band [r's min, r's max] on the
// comparator's axis before checking the other axis and Contains exactly.
func (s *OrderedPointSet[V]) FindRange(r geom.RectD) []geom.PointD {
	lo, hi := r.Min.Y, r.Max.Y
	if s.cmp.Axis == geom.XPrimary {
		lo, hi = r.Min.X, r.Max.X
	}

	loProbe := geom.PointD{X: r.Min.X, Y: r.Min.Y}
	if s.cmp.Axis == geom.XPrimary {
		loProbe = geom.PointD{X: lo, Y: r.Min.Y}
	} else {
		loProbe = geom.PointD{X: r.Min.X, Y: lo}
	}
	start := s.search(loProbe)

	var out []geom.PointD
	for i := start; i < len(s.entries); i++ {
		primary := s.cmp.Primary(s.entries[i].pt)
		if primary > hi+s.cmp.Eps {
			break
		}
		if r.Contains(s.entries[i].pt, s.cmp.Eps, true) {
			out = append(out, s.entries[i].pt)
		}
	}

	return out
}
