package cli

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/nxgraph/pkg/graph"
	"github.com/matzehuels/nxgraph/pkg/search"
	"github.com/matzehuels/nxgraph/pkg/toposort"
)

// demoEdges is the five-edge sample both demo graphs are built from.
//
//	1 --- 2 --- 3
//	|           |
//	4 --------- 5     6
var demoEdges = [][2]int{{1, 2}, {2, 3}, {3, 5}, {1, 4}, {4, 5}}

// demoCommand creates the demo command showcasing the library end to end.
func (c *CLI) demoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the library on two small graphs",
		Long: `Walk through the library on two small built-in graphs.

The demo builds the same five-edge sample once as an undirected graph and
once as a directed graph, runs shortest-path queries with both engines,
prints in-degrees, and sorts the directed variant into topological
generations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			undirectedDemo()
			printNewline()
			directedDemo()
			return nil
		},
	}
}

// undirectedDemo tours the sample as an undirected graph, including the
// isolated node 6 that no path can reach.
func undirectedDemo() {
	g := graph.New[int]()
	g.AddEdgesFrom(demoEdges)
	g.AddNode(6)

	fmt.Println(StyleTitle.Render("Undirected graph"))
	printKeyValue("nodes", strings.Join(intLabels(slices.Sorted(g.Nodes())), " "))
	printKeyValue("edges", edgeSummary(g.Edges(), g.Directed()))
	printNewline()

	demoRoutes(g)
	if !search.HasPath(search.BFS[int]{}, g, 1, 6) {
		printError("no path from 1 to 6")
	}
}

// directedDemo tours the same sample as a directed graph and sorts it.
func directedDemo() {
	g := graph.NewDiGraph[int]()
	g.AddEdgesFrom(demoEdges)
	g.AddNode(6)

	fmt.Println(StyleTitle.Render("Directed graph"))
	printKeyValue("nodes", strings.Join(intLabels(slices.Sorted(g.Nodes())), " "))
	printKeyValue("edges", edgeSummary(g.Edges(), g.Directed()))
	printKeyValue("in-degrees", degreeSummary(g.InDegreeMap()))
	printNewline()

	demoRoutes(g)
	printNewline()

	printInfo("topological generations")
	gens, err := toposort.Generations(g)
	if err != nil {
		printError("%v", err)
		return
	}
	layers := make([][]string, len(gens))
	for i, gen := range gens {
		layers[i] = intLabels(slices.Sorted(slices.Values(gen)))
	}
	fmt.Println(renderLayers(layers))
}

// demoRoutes runs the 1 → 5 query with both engines and prints each route.
func demoRoutes(g search.Graph[int]) {
	printInfo("shortest path %s", StyleHighlight.Render("1 "+iconArrow+" 5"))
	engines := []struct {
		name   string
		engine search.Engine[int]
	}{
		{algoBFS, search.BFS[int]{}},
		{algoDijkstra, search.Dijkstra[int]{}},
	}
	for _, e := range engines {
		if path, ok := search.ShortestPath(e.engine, g, 1, 5); ok {
			printDetail("%-9s %s (%d hops)", e.name, strings.Join(intLabels(path), " "+iconArrow+" "), len(path)-1)
		}
	}
}

// intLabels converts ints to display labels.
func intLabels(ns []int) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = strconv.Itoa(n)
	}
	return out
}

// edgeSummary formats stored edges in sorted order. For undirected graphs
// each edge is kept once, via its smaller endpoint.
func edgeSummary(edges iter.Seq2[int, int], directed bool) string {
	var pairs [][2]int
	for u, v := range edges {
		if !directed && u > v {
			continue
		}
		pairs = append(pairs, [2]int{u, v})
	}
	slices.SortFunc(pairs, func(a, b [2]int) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return cmp.Compare(a[1], b[1])
	})

	sep := "-"
	if directed {
		sep = iconArrow
	}
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("%d%s%d", p[0], sep, p[1])
	}
	return strings.Join(parts, " ")
}

// degreeSummary formats an in-degree map as "node:degree" pairs in node order.
func degreeSummary(deg map[int]int) string {
	parts := make([]string, 0, len(deg))
	for _, n := range slices.Sorted(maps.Keys(deg)) {
		parts = append(parts, fmt.Sprintf("%d:%d", n, deg[n]))
	}
	return strings.Join(parts, " ")
}
