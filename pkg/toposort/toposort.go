package toposort

import (
	"errors"
	"fmt"

	"github.com/matzehuels/nxgraph/pkg/graph"
)

// ErrCycle is returned by [Generations] and [Sort] when the graph contains a
// directed cycle. Nodes on a cycle never reach in-degree zero, so no
// ordering that includes every node exists.
var ErrCycle = errors.New("graph contains a cycle")

// Generations runs Kahn's algorithm over g and returns its topological
// layers: the first generation holds every node with no incoming edges, and
// each following generation holds the nodes whose last remaining dependency
// sits in the generation before it. A cycle-free run places every node in
// exactly one generation. Node order within a generation is unspecified;
// generation order is dependency order.
//
// If the graph contains a cycle, Generations returns an error wrapping
// [ErrCycle] and no partial result.
//
// Runs in O(V+E) time.
func Generations[T comparable](g *graph.DiGraph[T]) ([][]T, error) {
	// remaining tracks the not-yet-satisfied in-degree of every node that
	// still has one; nodes leave it for the frontier the moment they hit
	// zero.
	remaining := make(map[T]int)
	var frontier []T
	for u, d := range g.InDegreeMap() {
		if d == 0 {
			frontier = append(frontier, u)
		} else {
			remaining[u] = d
		}
	}

	var gens [][]T
	for len(frontier) > 0 {
		gen := frontier
		frontier = nil
		for _, u := range gen {
			nbrs, ok := g.Adjacent(u)
			if !ok {
				panic(fmt.Sprintf("toposort: missing adjacency entry for node %v", u))
			}
			for v := range nbrs {
				d, ok := remaining[v]
				if !ok {
					panic(fmt.Sprintf("toposort: node %v reached by edge but not pending", v))
				}
				d--
				if d == 0 {
					delete(remaining, v)
					frontier = append(frontier, v)
				} else {
					remaining[v] = d
				}
			}
		}
		gens = append(gens, gen)
	}

	if len(remaining) > 0 {
		return nil, fmt.Errorf("%w: %d nodes unresolved", ErrCycle, len(remaining))
	}
	return gens, nil
}

// Sort returns one valid topological order of g: the concatenation of
// [Generations] in discovery order. For every edge u→v, u appears before v.
// The order is valid but not unique - nodes within one generation have no
// mutual dependencies and their relative order is unspecified.
//
// Returns an error wrapping [ErrCycle] exactly when Generations does.
func Sort[T comparable](g *graph.DiGraph[T]) ([]T, error) {
	gens, err := Generations(g)
	if err != nil {
		return nil, err
	}
	order := make([]T, 0, g.NodeCount())
	for _, gen := range gens {
		order = append(order, gen...)
	}
	return order, nil
}
