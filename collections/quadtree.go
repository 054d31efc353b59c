package collections

import "github.com/katalvlaran/planesweep/geom"

// quadrant indices, in the fixed order used throughout this file.
const (
	quadNW = iota
	quadNE
	quadSW
	quadSE
)

// Quadtree is a recursive spatial decomposition of a bounded rectangle.
// Each node holds up to Capacity entries before splitting into four
// child quadrants at its midpoint. A key lying exactly on a split
// boundary is assigned to the north-west quadrant of the two or four it
// is tied between.
type Quadtree[V any] struct {
	capacity int
	root     *qtNode[V]
}

type qtEntry[V any] struct {
	pt  geom.PointD
	val V
}

type qtNode[V any] struct {
	bounds   geom.RectD
	entries  []qtEntry[V]
	children [4]*qtNode[V]
	leaf     bool
}

// NewQuadtree constructs an empty quadtree over bounds, splitting any
// node once it holds more than capacity entries. capacity must be at
// least 1.
func NewQuadtree[V any](bounds geom.RectD, capacity int) *Quadtree[V] {
	if capacity < 1 {
		capacity = 1
	}

	return &Quadtree[V]{
		capacity: capacity,
		root:     &qtNode[V]{bounds: bounds, leaf: true},
	}
}

// quadrantBounds returns the bounds of the four children of bounds, in
// quadNW/quadNE/quadSW/quadSE order.
func quadrantBounds(bounds geom.RectD) [4]geom.RectD {
	midX := (bounds.Min.X + bounds.Max.X) / 2
	midY := (bounds.Min.Y + bounds.Max.Y) / 2

	return [4]geom.RectD{
		quadNW: {Min: geom.PointD{X: bounds.Min.X, Y: midY}, Max: geom.PointD{X: midX, Y: bounds.Max.Y}},
		quadNE: {Min: geom.PointD{X: midX, Y: midY}, Max: geom.PointD{X: bounds.Max.X, Y: bounds.Max.Y}},
		quadSW: {Min: geom.PointD{X: bounds.Min.X, Y: bounds.Min.Y}, Max: geom.PointD{X: midX, Y: midY}},
		quadSE: {Min: geom.PointD{X: midX, Y: bounds.Min.Y}, Max: geom.PointD{X: bounds.Max.X, Y: midY}},
	}
}

// quadrantOf reports which of bounds's four children contains pt,
// sending ties on the midpoint lines to the north and/or west quadrant.
func quadrantOf(bounds geom.RectD, pt geom.PointD) int {
	midX := (bounds.Min.X + bounds.Max.X) / 2
	midY := (bounds.Min.Y + bounds.Max.Y) / 2
	west := pt.X <= midX
	north := pt.Y >= midY

	switch {
	case west && north:
		return quadNW
	case !west && north:
		return quadNE
	case west && !north:
		return quadSW
	default:
		return quadSE
	}
}

const minSplitSize = 1e-9

func (n *qtNode[V]) split() {
	bounds := quadrantBounds(n.bounds)
	for i := range n.children {
		n.children[i] = &qtNode[V]{bounds: bounds[i], leaf: true}
	}
	for _, e := range n.entries {
		q := quadrantOf(n.bounds, e.pt)
		n.children[q].entries = append(n.children[q].entries, e)
	}
	n.entries = nil
	n.leaf = false
}

func (n *qtNode[V]) canSplit() bool {
	return n.bounds.Width() > minSplitSize && n.bounds.Height() > minSplitSize
}

// Put inserts or replaces the value at pt.
func (t *Quadtree[V]) Put(pt geom.PointD, val V) {
	n := t.root
	for !n.leaf {
		n = n.children[quadrantOf(n.bounds, pt)]
	}
	for i := range n.entries {
		if n.entries[i].pt.Equal(pt, 0) {
			n.entries[i].val = val

			return
		}
	}
	n.entries = append(n.entries, qtEntry[V]{pt: pt, val: val})
	if len(n.entries) > t.capacity && n.canSplit() {
		n.split()
	}
}

func (t *Quadtree[V]) leafFor(pt geom.PointD) *qtNode[V] {
	n := t.root
	for !n.leaf {
		n = n.children[quadrantOf(n.bounds, pt)]
	}

	return n
}

// Get returns the value at pt and whether it was present.
func (t *Quadtree[V]) Get(pt geom.PointD) (V, bool) {
	n := t.leafFor(pt)
	for _, e := range n.entries {
		if e.pt.Equal(pt, 0) {
			return e.val, true
		}
	}
	var zero V

	return zero, false
}

// ContainsKey reports whether pt is present.
func (t *Quadtree[V]) ContainsKey(pt geom.PointD) bool {
	_, ok := t.Get(pt)

	return ok
}

// Remove deletes the entry at pt, reporting whether it was present.
func (t *Quadtree[V]) Remove(pt geom.PointD) bool {
	n := t.leafFor(pt)
	for i, e := range n.entries {
		if e.pt.Equal(pt, 0) {
			n.entries = append(n.entries[:i], n.entries[i+1:]...)

			return true
		}
	}

	return false
}

// Each calls fn for every entry, in no particular order. Iteration must
// not mutate the tree.
func (t *Quadtree[V]) Each(fn func(pt geom.PointD, val V)) {
	var walk func(n *qtNode[V])
	walk = func(n *qtNode[V]) {
		if n.leaf {
			for _, e := range n.entries {
				fn(e.pt, e.val)
			}

			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t.root)
}

// FindRange returns every point contained in r, pruning recursion into
// any child node whose bounds do not intersect r.
func (t *Quadtree[V]) FindRange(r geom.RectD) []geom.PointD {
	var out []geom.PointD
	var walk func(n *qtNode[V])
	walk = func(n *qtNode[V]) {
		if !n.bounds.Intersects(r) {
			return
		}
		if n.leaf {
			for _, e := range n.entries {
				if r.Contains(e.pt, 0, true) {
					out = append(out, e.pt)
				}
			}

			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(t.root)

	return out
}
