package graph

import (
	"slices"
	"testing"
)

func TestGraph_AddNodeIdempotent(t *testing.T) {
	g := New[int]()
	g.AddEdge(1, 2)
	g.AddNode(1)

	if got := g.NodeCount(); got != 2 {
		t.Errorf("NodeCount() = %d, want 2", got)
	}
	nbrs, ok := g.Adjacent(1)
	if !ok {
		t.Fatalf("Adjacent(1) reported absent after AddNode")
	}
	if !nbrs.Contains(2) {
		t.Errorf("re-adding node 1 dropped its neighbors: %v", nbrs)
	}
}

func TestGraph_AddEdgeSymmetric(t *testing.T) {
	g := New[int]()
	g.AddEdge(1, 2)

	for _, tc := range []struct{ u, v int }{{1, 2}, {2, 1}} {
		nbrs, ok := g.Adjacent(tc.u)
		if !ok {
			t.Fatalf("Adjacent(%d) reported absent", tc.u)
		}
		if !nbrs.Contains(tc.v) {
			t.Errorf("Adjacent(%d) = %v, want it to contain %d", tc.u, nbrs, tc.v)
		}
	}
}

func TestGraph_AddEdgeCreatesEndpoints(t *testing.T) {
	g := New[string]()
	g.AddEdge("a", "b")

	if !g.Has("a") || !g.Has("b") {
		t.Errorf("Has(a) = %v, Has(b) = %v, want both true", g.Has("a"), g.Has("b"))
	}
	if got := g.NodeCount(); got != 2 {
		t.Errorf("NodeCount() = %d, want 2", got)
	}
}

func TestGraph_AddEdgeDuplicate(t *testing.T) {
	g := New[int]()
	g.AddEdge(1, 2)
	g.AddEdge(1, 2)
	g.AddEdge(2, 1)

	if got := g.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount() = %d, want 2 (one edge, two orientations)", got)
	}
}

func TestGraph_SelfLoop(t *testing.T) {
	g := New[int]()
	g.AddEdge(7, 7)

	nbrs, ok := g.Adjacent(7)
	if !ok || !nbrs.Contains(7) {
		t.Errorf("Adjacent(7) = %v, %v, want node to be its own neighbor", nbrs, ok)
	}
	if got := g.NodeCount(); got != 1 {
		t.Errorf("NodeCount() = %d, want 1", got)
	}
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d, want 1 (self-loop stored once)", got)
	}
}

func TestGraph_AddEdgesFrom(t *testing.T) {
	//   1 - 2 - 3
	//   |       |
	//   4 ----- 5
	g := New[int]()
	g.AddEdgesFrom([][2]int{{1, 2}, {2, 3}, {3, 5}, {1, 4}, {4, 5}})

	if got := g.NodeCount(); got != 5 {
		t.Errorf("NodeCount() = %d, want 5", got)
	}
	if got := g.EdgeCount(); got != 10 {
		t.Errorf("EdgeCount() = %d, want 10 (5 edges, both orientations)", got)
	}
}

func TestGraph_AdjacentAbsent(t *testing.T) {
	g := New[int]()
	g.AddNode(1)

	if _, ok := g.Adjacent(99); ok {
		t.Errorf("Adjacent(99) reported present for a node never added")
	}
	if g.Has(99) {
		t.Errorf("Has(99) = true, want false")
	}
}

func TestGraph_Nodes(t *testing.T) {
	g := New[int]()
	g.AddEdge(1, 2)
	g.AddNode(3)

	got := slices.Sorted(g.Nodes())
	want := []int{1, 2, 3}
	if !slices.Equal(got, want) {
		t.Errorf("Nodes() = %v, want %v", got, want)
	}
}

func TestGraph_EdgesBothOrientations(t *testing.T) {
	g := New[string]()
	g.AddEdge("a", "b")

	seen := map[[2]string]bool{}
	for u, v := range g.Edges() {
		seen[[2]string{u, v}] = true
	}
	if !seen[[2]string{"a", "b"}] || !seen[[2]string{"b", "a"}] {
		t.Errorf("Edges() = %v, want both (a,b) and (b,a)", seen)
	}
	if len(seen) != 2 {
		t.Errorf("Edges() yielded %d pairs, want 2", len(seen))
	}
}

func TestGraph_EmptyGraph(t *testing.T) {
	g := New[string]()

	if got := g.NodeCount(); got != 0 {
		t.Errorf("NodeCount() = %d, want 0", got)
	}
	if got := g.EdgeCount(); got != 0 {
		t.Errorf("EdgeCount() = %d, want 0", got)
	}
	if got := slices.Collect(g.Nodes()); len(got) != 0 {
		t.Errorf("Nodes() = %v, want empty", got)
	}
}

func TestGraph_Directed(t *testing.T) {
	if got := New[int]().Directed(); got {
		t.Errorf("Directed() = %v, want false", got)
	}
}
