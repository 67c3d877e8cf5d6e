package graph

// DiGraph is a directed graph over node keys of type T. Alongside the
// adjacency index it maintains a predecessor index in lockstep, so that
// in-degree queries do not require scanning every edge.
//
// The zero value is not usable - use [NewDiGraph] to create a valid instance.
// DiGraph is not safe for concurrent use without external synchronization;
// concurrent readers are fine once mutation has stopped.
type DiGraph[T comparable] struct {
	store[T]
	pred index[T]
}

// NewDiGraph creates an empty directed graph.
func NewDiGraph[T comparable]() *DiGraph[T] {
	return &DiGraph[T]{
		store: store[T]{adj: index[T]{}},
		pred:  index[T]{},
	}
}

// AddNode ensures u is present with (empty-if-new) adjacency and predecessor
// entries. Adding a node that already exists is a no-op.
func (g *DiGraph[T]) AddNode(u T) {
	g.adj.ensure(u)
	g.pred.ensure(u)
}

// AddEdge inserts the directed edge u→v: v joins u's adjacency set and u
// joins v's predecessor set. Both endpoints get (empty-if-new) adjacency and
// predecessor entries, so a node first seen as an edge target is
// indistinguishable from one added via [DiGraph.AddNode]. Self-loops are
// permitted; re-adding an existing edge is a no-op.
func (g *DiGraph[T]) AddEdge(u, v T) {
	g.adj.ensure(u).Add(v)
	g.adj.ensure(v)
	g.pred.ensure(v).Add(u)
	g.pred.ensure(u)
}

// AddEdgesFrom applies [DiGraph.AddEdge] to each pair in order.
func (g *DiGraph[T]) AddEdgesFrom(pairs [][2]T) {
	for _, p := range pairs {
		g.AddEdge(p[0], p[1])
	}
}

// Directed reports whether edges carry direction. For a DiGraph it is
// always true.
func (g *DiGraph[T]) Directed() bool { return true }

// InDegree returns the number of edges pointing into u, or 0 if u has no
// predecessor entry (i.e. was never added).
func (g *DiGraph[T]) InDegree(u T) int { return len(g.pred[u]) }

// InDegreeMap returns the in-degree of every node in the graph.
func (g *DiGraph[T]) InDegreeMap() map[T]int {
	m := make(map[T]int, g.NodeCount())
	for u := range g.adj {
		m[u] = g.InDegree(u)
	}
	return m
}
