// Package pkg provides the core libraries for nxgraph.
//
// # Overview
//
// nxgraph stores graphs as node-keyed adjacency sets and runs classical
// algorithms over them. The pkg directory is organized into four areas:
//
//  1. [graph] - Graph storage (undirected and directed, generic over the node type)
//  2. [search] - Shortest-path engines (breadth-first search, Dijkstra)
//  3. [toposort] - Topological sorting into generations, with cycle detection
//  4. [buildinfo] - Build-time version information injected via ldflags
//
// # Architecture
//
// The typical data flow through nxgraph:
//
//	caller-built Graph[T] / DiGraph[T]
//	         ↓
//	    [search] package (route queries, path reconstruction)
//	    [toposort] package (generations, flat order)
//	         ↓
//	    paths, orders, degrees
//
// Storage never runs algorithms and algorithms never mutate storage; the
// packages meet at a small read-only interface.
//
// # Quick Start
//
// Build a directed graph and sort it:
//
//	import (
//	    "github.com/matzehuels/nxgraph/pkg/graph"
//	    "github.com/matzehuels/nxgraph/pkg/search"
//	    "github.com/matzehuels/nxgraph/pkg/toposort"
//	)
//
//	// 1. Build the graph
//	g := graph.NewDiGraph[string]()
//	g.AddEdgesFrom([][2]string{{"fetch", "build"}, {"build", "test"}})
//
//	// 2. Query a shortest path
//	path, ok := search.ShortestPath(search.BFS[string]{}, g, "fetch", "test")
//
//	// 3. Sort into generations
//	gens, err := toposort.Generations(g)
//
// # Main Packages
//
// [graph] - Generic adjacency-set storage. Graph mirrors every edge in both
// directions; DiGraph keeps a predecessor index alongside the adjacency
// index for in-degree queries. Both share iteration via iter.Seq.
//
// [search] - Interchangeable shortest-path engines behind one Engine
// contract. BFS works for any comparable node type; Dijkstra requires an
// ordered one for its deterministic tie-break.
//
// [toposort] - Kahn's algorithm yielding generations: groups of nodes that
// only depend on earlier groups. A cycle anywhere fails the whole sort with
// [toposort.ErrCycle].
//
// [buildinfo] - Version, commit, and build date variables set via ldflags,
// plus the cobra version template.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/search/...   # Specific package
//	go test -run Example       # Examples only
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/nxgraph/pkg/graph
// [search]: https://pkg.go.dev/github.com/matzehuels/nxgraph/pkg/search
// [toposort]: https://pkg.go.dev/github.com/matzehuels/nxgraph/pkg/toposort
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/nxgraph/pkg/buildinfo
package pkg
