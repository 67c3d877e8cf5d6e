package search

import (
	"cmp"
	"container/heap"
	"fmt"
	"math"
)

// Dijkstra is a priority-queue relaxation engine with a uniform edge weight
// of 1, so its results match [BFS] hop for hop. Ties between equally cheap
// frontier entries are broken by node order, which is why T must be ordered.
// Improved routes push duplicate heap entries instead of re-keying in place;
// stale entries are discarded when popped.
//
// Runs in O((V+E) log V) time and O(V+E) space.
type Dijkstra[T cmp.Ordered] struct{}

var _ Engine[string] = Dijkstra[string]{}

// Route implements [Engine].
func (Dijkstra[T]) Route(g Graph[T], source, target T) (int, map[T]T, bool) {
	if !g.Has(source) {
		panic(fmt.Sprintf("search: source node %v not in graph", source))
	}

	dist := make(map[T]int, g.NodeCount())
	for u := range g.Nodes() {
		dist[u] = math.MaxInt
	}
	dist[source] = 0

	prev := make(map[T]T)
	pq := make(costQueue[T], 0, g.NodeCount())
	heap.Init(&pq)
	heap.Push(&pq, costItem[T]{cost: 0, node: source})

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(costItem[T])
		if cur.node == target {
			return cur.cost, prev, true
		}
		if cur.cost > dist[cur.node] {
			continue // stale entry, a cheaper route was recorded after this push
		}
		for v := range neighbors(g, cur.node) {
			best, ok := dist[v]
			if !ok {
				panic(fmt.Sprintf("search: node %v reached by edge but absent from graph", v))
			}
			if next := cur.cost + 1; next < best {
				dist[v] = next
				prev[v] = cur.node
				heap.Push(&pq, costItem[T]{cost: next, node: v})
			}
		}
	}
	return 0, nil, false
}

// costItem is a queued (cost, node) pair.
type costItem[T cmp.Ordered] struct {
	cost int
	node T
}

// costQueue is a min-heap of costItems ordered by cost, then node, giving
// the deterministic pop order the relaxation loop relies on.
type costQueue[T cmp.Ordered] []costItem[T]

func (q costQueue[T]) Len() int { return len(q) }

func (q costQueue[T]) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	return q[i].node < q[j].node
}

func (q costQueue[T]) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *costQueue[T]) Push(x any) { *q = append(*q, x.(costItem[T])) }

func (q *costQueue[T]) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}
