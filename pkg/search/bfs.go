package search

import (
	"fmt"

	"github.com/matzehuels/nxgraph/pkg/graph"
)

// BFS is a breadth-first search engine: unit-cost frontier expansion over a
// FIFO queue. Distances grow monotonically through the queue, so the first
// time the target is popped its hop count is minimal.
//
// Runs in O(V+E) time and O(V) space.
type BFS[T comparable] struct{}

var _ Engine[string] = BFS[string]{}

// Route implements [Engine].
func (BFS[T]) Route(g Graph[T], source, target T) (int, map[T]T, bool) {
	if !g.Has(source) {
		panic(fmt.Sprintf("search: source node %v not in graph", source))
	}

	type item struct {
		node T
		dist int
	}
	prev := make(map[T]T)
	visited := graph.NewSet(source)
	queue := []item{{source, 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.node == target {
			return cur.dist, prev, true
		}
		for v := range neighbors(g, cur.node) {
			if visited.Contains(v) {
				continue
			}
			visited.Add(v)
			prev[v] = cur.node
			queue = append(queue, item{v, cur.dist + 1})
		}
	}
	return 0, nil, false
}
