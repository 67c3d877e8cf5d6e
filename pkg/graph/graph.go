package graph

import (
	"iter"
	"maps"
)

// index maps every node present in a graph to its neighbor set.
type index[T comparable] map[T]Set[T]

// ensure returns the neighbor set for u, creating an empty entry if u is new.
func (ix index[T]) ensure(u T) Set[T] {
	s, ok := ix[u]
	if !ok {
		s = Set[T]{}
		ix[u] = s
	}
	return s
}

// store holds the adjacency index shared by [Graph] and [DiGraph] and
// implements the read-side operations that are identical for both.
type store[T comparable] struct {
	adj index[T]
}

// Has reports whether u has been added to the graph, either directly via
// AddNode or as an endpoint of an edge.
func (s *store[T]) Has(u T) bool {
	_, ok := s.adj[u]
	return ok
}

// Adjacent returns the neighbor set of u, or false if u was never added.
// The returned set is the graph's internal index - treat it as a read-only
// view and do not modify it.
func (s *store[T]) Adjacent(u T) (Set[T], bool) {
	nbrs, ok := s.adj[u]
	return nbrs, ok
}

// Nodes returns an iterator over all node keys in no particular order.
// Collect it with [slices.Collect] for a sequence or [CollectSet] for a set.
func (s *store[T]) Nodes() iter.Seq[T] {
	return maps.Keys(s.adj)
}

// Edges returns an iterator over every stored (u, v) adjacency pair, in no
// particular order. Undirected graphs store each edge in both orientations,
// so (u, v) and (v, u) both appear; self-loops appear once.
func (s *store[T]) Edges() iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for u, nbrs := range s.adj {
			for v := range nbrs {
				if !yield(u, v) {
					return
				}
			}
		}
	}
}

// NodeCount returns the number of nodes in the graph.
func (s *store[T]) NodeCount() int { return len(s.adj) }

// EdgeCount returns the number of stored adjacency pairs, matching what
// [store.Edges] yields: undirected edges count once per orientation,
// self-loops once.
func (s *store[T]) EdgeCount() int {
	n := 0
	for _, nbrs := range s.adj {
		n += nbrs.Len()
	}
	return n
}

// Graph is an undirected graph over node keys of type T. Edges are stored
// symmetrically, so the adjacency index alone answers every neighborhood
// query and no predecessor index is kept.
//
// The zero value is not usable - use [New] to create a valid instance.
// Graph is not safe for concurrent use without external synchronization;
// concurrent readers are fine once mutation has stopped.
type Graph[T comparable] struct {
	store[T]
}

// New creates an empty undirected graph.
func New[T comparable]() *Graph[T] {
	return &Graph[T]{store[T]{adj: index[T]{}}}
}

// AddNode ensures u is present with an (empty-if-new) adjacency entry.
// Adding a node that already exists is a no-op; existing neighbors are kept.
func (g *Graph[T]) AddNode(u T) { g.adj.ensure(u) }

// AddEdge inserts the undirected edge (u, v), creating adjacency entries for
// both endpoints if absent. Insertion is symmetric: afterwards v is a
// neighbor of u and u is a neighbor of v. Self-loops (u == v) are permitted
// and make a node its own neighbor. Edges are sets, so re-adding an existing
// edge is a no-op.
func (g *Graph[T]) AddEdge(u, v T) {
	g.adj.ensure(u).Add(v)
	g.adj.ensure(v).Add(u)
}

// AddEdgesFrom applies [Graph.AddEdge] to each pair in order.
func (g *Graph[T]) AddEdgesFrom(pairs [][2]T) {
	for _, p := range pairs {
		g.AddEdge(p[0], p[1])
	}
}

// Directed reports whether edges carry direction. For a Graph it is always
// false.
func (g *Graph[T]) Directed() bool { return false }
