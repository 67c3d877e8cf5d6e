// Package search provides shortest-path queries over the graphs in
// [github.com/matzehuels/nxgraph/pkg/graph].
//
// # Overview
//
// Two engines implement one contract ([Engine]): [BFS], plain breadth-first
// frontier expansion, and [Dijkstra], priority-queue relaxation with a
// uniform edge weight of 1. Under unit weights both compute the same metric -
// minimal hop count - so they are drop-in replacements for each other; the
// package-level helpers [ShortestPath], [ShortestPathLength] and [HasPath]
// take whichever engine the caller prefers.
//
//	g := graph.New[int]()
//	g.AddEdgesFrom([][2]int{{1, 2}, {2, 3}})
//
//	path, ok := search.ShortestPath(search.BFS[int]{}, g, 1, 3)   // [1 2 3], true
//	n, ok := search.ShortestPathLength(search.Dijkstra[int]{}, g, 1, 3) // 2, true
//
// # Failure Semantics
//
// An unreachable target is a valid negative result reported through the ok
// return, never an error. A source node that was never added to the graph,
// or a node reached over an edge that has no adjacency entry, indicates a
// corrupted store and panics.
//
// # Determinism
//
// When several equally short paths exist, which one is reconstructed depends
// on neighbor iteration order, which the underlying set storage does not
// define. Callers should rely on path validity and length, not on one
// canonical path.
package search
