package graph

import "container/heap"

// Coverage runs a budgeted Dijkstra from source, returning every
// reachable node mapped to its cost from source. A node past budget is
// never returned, unless agent is non-nil and reports RelaxedRange, in
// which case a node whose predecessor's cost was within budget is still
// included (at its own, over-budget cost) even though expansion stops
// there.
func Coverage[N comparable](g Graph[N], agent Agent[N], source N, budget float64) (map[N]float64, error) {
	if !g.HasNode(source) {
		return nil, ErrSourceNotFound
	}

	best := map[N]float64{source: 0}
	visited := make(map[N]bool)
	result := make(map[N]float64)

	pq := &coverageQueue[N]{}
	heap.Init(pq)
	heap.Push(pq, &coverageItem[N]{node: source, g: 0})

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*coverageItem[N])
		if visited[cur.node] {
			continue
		}
		visited[cur.node] = true
		if cur.g > budget {
			continue
		}
		result[cur.node] = cur.g

		for _, nb := range g.Neighbors(cur.node) {
			if nb == cur.node || visited[nb] {
				continue
			}
			if agent != nil && (!agent.CanMakeStep(cur.node, nb) || !agent.CanOccupy(nb)) {
				continue
			}

			step := stepCost(g, agent, cur.node, nb, false)
			newG := cur.g + step

			if newG > budget {
				if agent != nil && agent.RelaxedRange() {
					if old, ok := best[nb]; !ok || newG < old {
						best[nb] = newG
						result[nb] = newG
					}
				}

				continue
			}

			if old, ok := best[nb]; ok && newG >= old {
				continue
			}
			best[nb] = newG
			heap.Push(pq, &coverageItem[N]{node: nb, g: newG})
		}
	}

	return result, nil
}

type coverageItem[N comparable] struct {
	node N
	g    float64
}

type coverageQueue[N comparable] []*coverageItem[N]

func (q coverageQueue[N]) Len() int            { return len(q) }
func (q coverageQueue[N]) Less(i, j int) bool  { return q[i].g < q[j].g }
func (q coverageQueue[N]) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *coverageQueue[N]) Push(x any)         { *q = append(*q, x.(*coverageItem[N])) }
func (q *coverageQueue[N]) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]

	return item
}
