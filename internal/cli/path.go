package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/nxgraph/pkg/search"
)

const (
	algoBFS      = "bfs"      // breadth-first search
	algoDijkstra = "dijkstra" // priority-queue search, unit weights
)

// pathOpts holds the command-line flags for the path command.
type pathOpts struct {
	graphPath string // TOML graph file to query
	algo      string // search engine: "bfs" or "dijkstra"
}

// pathCommand creates the path command for shortest-path queries.
func (c *CLI) pathCommand() *cobra.Command {
	opts := pathOpts{algo: algoBFS}

	cmd := &cobra.Command{
		Use:   "path <source> <target>",
		Short: "Find a shortest path between two nodes",
		Long: `Find a shortest path between two nodes of a graph file.

Every edge counts as one hop. When several shortest paths exist, one of
them is reported. Both engines find paths of the same length; they may
pick different routes.

Examples:
  nxgraph path a e --graph deps.toml
  nxgraph path a e --graph deps.toml --algo dijkstra`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateAlgo(opts.algo); err != nil {
				return err
			}
			return runPath(cmd.Context(), &opts, args[0], args[1])
		},
	}

	cmd.Flags().StringVarP(&opts.graphPath, "graph", "g", "", "TOML graph file (required)")
	cmd.Flags().StringVar(&opts.algo, "algo", opts.algo, "search engine: bfs (default), dijkstra")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

// validateAlgo checks that the algorithm is either "bfs" or "dijkstra".
func validateAlgo(s string) error {
	if s != algoBFS && s != algoDijkstra {
		return fmt.Errorf("invalid algo: %s (must be 'bfs' or 'dijkstra')", s)
	}
	return nil
}

// engineFor returns the search engine selected by name.
func engineFor(algo string) search.Engine[string] {
	if algo == algoDijkstra {
		return search.Dijkstra[string]{}
	}
	return search.BFS[string]{}
}

// runPath loads the graph file and reports a shortest path from source to target.
// A missing endpoint is an error; a missing path is a reported outcome, not an error.
func runPath(ctx context.Context, opts *pathOpts, source, target string) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Loading %s", opts.graphPath)

	f, err := loadGraphFile(opts.graphPath)
	if err != nil {
		return err
	}

	var g search.Graph[string]
	if f.Directed {
		g = f.buildDirected()
	} else {
		g = f.buildUndirected()
	}
	printStats(g.NodeCount(), len(f.Edges), f.kind())

	for _, node := range []string{source, target} {
		if !g.Has(node) {
			return fmt.Errorf("node %q not in graph", node)
		}
	}

	logger.Debugf("Routing with %s", opts.algo)
	nodes, ok := search.ShortestPath(engineFor(opts.algo), g, source, target)
	if !ok {
		printWarning("No path from %s to %s", source, target)
		return nil
	}

	printSuccess("Shortest path from %s to %s (%d hops)", source, target, len(nodes)-1)
	printPath(nodes)
	return nil
}
