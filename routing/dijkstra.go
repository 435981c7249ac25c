package routing

import (
	"container/heap"
	"math"
)

// nodeItem pairs a label with its current best-known distance from the
// search source; it is the unit stored in the priority queue.
type nodeItem[L comparable] struct {
	label L
	dist  float64
}

// nodePQ is a min-heap of *nodeItem ordered by ascending dist. Distance
// improvements are applied by the lazy-decrease-key pattern: a new, smaller
// entry is pushed rather than updating one in place, and stale entries are
// skipped on pop once their label is marked visited.
type nodePQ[L comparable] []*nodeItem[L]

func (pq nodePQ[L]) Len() int            { return len(pq) }
func (pq nodePQ[L]) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ[L]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ[L]) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem[L])) }
func (pq *nodePQ[L]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// shortestPath runs Dijkstra's algorithm from `from` to `to` over the
// current edge costs (assumed non-negative and finite; AddEdge rejects
// NaN/Inf costs but not negative ones, matching upstream's expectation that
// edge costs model physical distances or penalties). Callers must already
// hold at least a read lock on the graph.
func (g *TransformGraph[L]) shortestPath(from, to L) ([]L, bool) {
	dist := make(map[L]float64, len(g.ndim))
	prev := make(map[L]L, len(g.ndim))
	visited := make(map[L]bool, len(g.ndim))

	for label := range g.ndim {
		dist[label] = math.Inf(1)
	}
	dist[from] = 0

	pq := make(nodePQ[L], 0, len(g.ndim))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem[L]{label: from, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem[L])
		u := item.label
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == to {
			break
		}

		for _, e := range g.edges[u] {
			newDist := dist[u] + e.cost
			if newDist < dist[e.to] {
				dist[e.to] = newDist
				prev[e.to] = u
				heap.Push(&pq, &nodeItem[L]{label: e.to, dist: newDist})
			}
		}
	}

	if math.IsInf(dist[to], 1) {
		return nil, false
	}

	var path []L
	for cur := to; ; {
		path = append(path, cur)
		if cur == from {
			break
		}
		p, ok := prev[cur]
		if !ok {
			return nil, false
		}
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
