package toposort_test

import (
	"errors"
	"fmt"
	"slices"

	"github.com/matzehuels/nxgraph/pkg/graph"
	"github.com/matzehuels/nxgraph/pkg/toposort"
)

func ExampleGenerations() {
	//   1 → 2 → 3 → 4 → 6
	//   ↓         ↑
	//   5 --------+        7 (isolated)
	g := graph.NewDiGraph[int]()
	g.AddEdgesFrom([][2]int{{1, 2}, {2, 3}, {3, 4}, {1, 5}, {5, 4}, {4, 6}})
	g.AddNode(7)

	gens, _ := toposort.Generations(g)
	for i, gen := range gens {
		fmt.Println(i, slices.Sorted(slices.Values(gen)))
	}
	// Output:
	// 0 [1 7]
	// 1 [2 5]
	// 2 [3]
	// 3 [4]
	// 4 [6]
}

func ExampleSort() {
	// A chain has exactly one valid order.
	g := graph.NewDiGraph[string]()
	g.AddEdgesFrom([][2]string{{"fetch", "build"}, {"build", "test"}, {"test", "release"}})

	order, _ := toposort.Sort(g)
	fmt.Println(order)
	// Output: [fetch build test release]
}

func ExampleSort_cycle() {
	g := graph.NewDiGraph[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	_, err := toposort.Sort(g)
	fmt.Println(errors.Is(err, toposort.ErrCycle))
	// Output: true
}
