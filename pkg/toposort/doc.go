// Package toposort orders directed graphs with Kahn's algorithm, either as
// dependency layers ([Generations]) or flattened into a sequence ([Sort]).
//
// Cycle detection is always on: a graph containing a cycle yields [ErrCycle]
// and no partial ordering, because nodes on a cycle never reach in-degree
// zero and silently dropping them would hide the defect.
//
//	g := graph.NewDiGraph[string]()
//	g.AddEdge("build", "test")
//	g.AddEdge("test", "release")
//
//	gens, err := toposort.Generations(g) // [[build] [test] [release]]
//	order, err := toposort.Sort(g)       // [build test release]
package toposort
