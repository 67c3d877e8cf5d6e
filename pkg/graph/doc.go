// Package graph provides generic adjacency-set storage for directed and
// undirected graphs, keyed by any comparable node type.
//
// # Overview
//
// The package offers two concrete graph types sharing one read-side contract:
// [Graph] for undirected graphs and [DiGraph] for directed graphs. Both store
// neighborhoods as sets ([Set]), so there are no parallel edges and edge
// insertion is idempotent. An undirected edge is stored symmetrically in both
// endpoints' adjacency sets; a directed graph additionally maintains a
// predecessor index in lockstep with adjacency, which makes in-degree queries
// cheap.
//
// Every node present in a graph has an adjacency entry, possibly empty - a
// node added explicitly with AddNode is indistinguishable from one that only
// ever appeared as an edge endpoint.
//
// # Basic Usage
//
// Create a graph with [New] or [NewDiGraph], grow it with AddNode/AddEdge,
// and query it:
//
//	g := graph.NewDiGraph[string]()
//	g.AddEdge("app", "lib")
//	g.AddEdge("lib", "core")
//	g.AddNode("docs")
//
//	nbrs, ok := g.Adjacent("app") // Set{"lib"}, true
//	g.InDegree("core")            // 1
//
// Graphs only grow: there is no removal operation. Algorithms in the sibling
// packages borrow a graph read-only for the duration of a single call.
//
// # Iteration
//
// [Graph.Nodes] and [Graph.Edges] (likewise on [DiGraph]) return iterators
// rather than materialized containers, leaving the container choice to the
// caller: slices.Collect for an ordered sequence, [CollectSet] for set
// semantics, or a plain range loop for streaming. Iteration order is map
// order and therefore unspecified.
//
// # Absent Nodes
//
// Read operations never invent nodes. [Graph.Adjacent] reports absence via
// its second return value, and [DiGraph.InDegree] returns 0 for a node that
// was never added; callers that need the distinction should check
// [Graph.Has] first.
//
// # Concurrency
//
// Graph and DiGraph are not safe for concurrent use while being mutated.
// Standard shared-read/exclusive-write discipline applies and is the
// caller's responsibility; read-only access from multiple goroutines is safe
// once construction is complete.
package graph
