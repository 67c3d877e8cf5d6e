package search

import (
	"fmt"
	"iter"
	"slices"

	"github.com/matzehuels/nxgraph/pkg/graph"
)

// Graph is the read-only view the engines require. Both [graph.Graph] and
// [graph.DiGraph] satisfy it: directed graphs are traversed along stored edge
// direction, undirected graphs in both directions because their storage is
// symmetric.
type Graph[T comparable] interface {
	Has(u T) bool
	Adjacent(u T) (graph.Set[T], bool)
	Nodes() iter.Seq[T]
	NodeCount() int
}

var (
	_ Graph[int] = (*graph.Graph[int])(nil)
	_ Graph[int] = (*graph.DiGraph[int])(nil)
)

// An Engine computes minimum-hop routes between two nodes of a graph.
// Engines are stateless values and interchangeable: [BFS] and [Dijkstra]
// return the same hop counts on every graph, differing only in traversal
// strategy.
type Engine[T comparable] interface {
	// Route returns the minimal number of hops from source to target and a
	// predecessor map sufficient to reconstruct one shortest path. ok is
	// false when target is unreachable; that is a normal negative result,
	// not an error. Route panics if source is not present in g or if the
	// graph's storage invariants turn out to be violated mid-traversal.
	Route(g Graph[T], source, target T) (cost int, prev map[T]T, ok bool)
}

// ShortestPath returns one shortest path from source to target as a node
// sequence (source first, target last), or false when no path exists. When
// source equals target the path is the single node itself. Which of several
// equally short paths is returned depends on neighbor iteration order and is
// unspecified.
func ShortestPath[T comparable](e Engine[T], g Graph[T], source, target T) ([]T, bool) {
	_, prev, ok := e.Route(g, source, target)
	if !ok {
		return nil, false
	}
	return buildPath(prev, source, target), true
}

// ShortestPathLength returns the hop count of a shortest path from source to
// target, or false when no path exists.
func ShortestPathLength[T comparable](e Engine[T], g Graph[T], source, target T) (int, bool) {
	cost, _, ok := e.Route(g, source, target)
	if !ok {
		return 0, false
	}
	return cost, true
}

// HasPath reports whether target is reachable from source.
func HasPath[T comparable](e Engine[T], g Graph[T], source, target T) bool {
	_, _, ok := e.Route(g, source, target)
	return ok
}

// buildPath walks predecessor links backward from target until it reaches
// source, then reverses. Every visited node was recorded by the engine that
// produced prev, so a missing link means the map was corrupted.
func buildPath[T comparable](prev map[T]T, source, target T) []T {
	path := []T{target}
	for cur := target; cur != source; {
		p, ok := prev[cur]
		if !ok {
			panic(fmt.Sprintf("search: broken predecessor chain at node %v", cur))
		}
		cur = p
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}

// neighbors returns the adjacency set of u. A node reached over an edge must
// have been registered at insertion time, so a missing entry is a corrupted
// store, not a recoverable lookup failure.
func neighbors[T comparable](g Graph[T], u T) graph.Set[T] {
	nbrs, ok := g.Adjacent(u)
	if !ok {
		panic(fmt.Sprintf("search: missing adjacency entry for node %v", u))
	}
	return nbrs
}
