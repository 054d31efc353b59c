package graph

import "container/heap"

// AStar finds a best path from source to target. Priority is f = g + h,
// with h the straight-line Graph.Distance to target (admissible);
// ties are broken by g descending, preferring the node already deepest
// into the search. Returns the node sequence from source (exclusive) to
// target (inclusive).
//
// agent may be nil, in which case every step is legal, its cost is
// Graph.Distance, and the goal test is exact node equality with target.
// If agent is non-nil, nearDistance is passed to its IsNearTarget goal
// test, letting the search stop once "close enough" rather than only at
// an exact node match.
//
// If useWorldDistance is set, a step's cost is never allowed to fall
// below Graph.Distance(src, dst): agent.GetStepCost may inflate a step's
// true cost (rough terrain, turning penalties) but never discount it
// below the straight-line distance, which is what keeps h admissible.
func AStar[N comparable](g Graph[N], agent Agent[N], source, target N, nearDistance float64, useWorldDistance bool) ([]N, error) {
	if !g.HasNode(source) {
		return nil, ErrSourceNotFound
	}
	if !g.HasNode(target) {
		return nil, ErrTargetNotFound
	}

	gScore := map[N]float64{source: 0}
	prev := make(map[N]N)
	visited := make(map[N]bool)

	open := &aStarQueue[N]{}
	heap.Init(open)
	heap.Push(open, &aStarItem[N]{node: source, f: g.Distance(source, target), g: 0})

	reached := func(cur N) bool {
		if agent != nil {
			return agent.IsNearTarget(cur, target, nearDistance)
		}

		return cur == target
	}

	for open.Len() > 0 {
		cur := heap.Pop(open).(*aStarItem[N])
		if visited[cur.node] {
			continue
		}
		visited[cur.node] = true

		if reached(cur.node) {
			return reconstructPath(prev, source, cur.node), nil
		}

		for _, nb := range g.Neighbors(cur.node) {
			if nb == cur.node || visited[nb] {
				continue
			}
			if agent != nil && (!agent.CanMakeStep(cur.node, nb) || !agent.CanOccupy(nb)) {
				continue
			}

			step := stepCost(g, agent, cur.node, nb, useWorldDistance)
			newG := gScore[cur.node] + step
			if old, ok := gScore[nb]; ok && newG >= old {
				continue
			}
			gScore[nb] = newG
			prev[nb] = cur.node

			h := g.Distance(nb, target)
			heap.Push(open, &aStarItem[N]{node: nb, f: newG + h, g: newG})
		}
	}

	return nil, ErrNoPath
}

// stepCost returns the cost of moving src -> dst: the agent's cost when
// an agent is supplied, else the graph's metric distance. useWorldDistance
// clamps the result to never fall below that metric distance, which is
// what keeps the A* heuristic admissible when an agent's cost model can
// otherwise discount a step.
func stepCost[N comparable](g Graph[N], agent Agent[N], src, dst N, useWorldDistance bool) float64 {
	if agent == nil {
		return g.Distance(src, dst)
	}
	cost := agent.GetStepCost(src, dst)
	if useWorldDistance {
		if d := g.Distance(src, dst); cost < d {
			cost = d
		}
	}

	return cost
}

func reconstructPath[N comparable](prev map[N]N, source, target N) []N {
	var path []N
	cur := target
	for cur != source {
		path = append(path, cur)
		p, ok := prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

type aStarItem[N comparable] struct {
	node N
	f, g float64
}

// aStarQueue is a min-heap ordered by f ascending, ties broken by g
// descending (deeper-g nodes pop first among equal f), mirroring the
// lazy-decrease-key heap pattern used throughout this corpus: stale
// entries are pushed over rather than mutated in place, and skipped via
// the visited set when popped.
type aStarQueue[N comparable] []*aStarItem[N]

func (q aStarQueue[N]) Len() int { return len(q) }
func (q aStarQueue[N]) Less(i, j int) bool {
	if q[i].f != q[j].f {
		return q[i].f < q[j].f
	}

	return q[i].g > q[j].g
}
func (q aStarQueue[N]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *aStarQueue[N]) Push(x any)   { *q = append(*q, x.(*aStarItem[N])) }
func (q *aStarQueue[N]) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
