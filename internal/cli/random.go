package cli

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/matzehuels/nxgraph/pkg/toposort"
)

// randomOpts holds the command-line flags for the random command.
type randomOpts struct {
	nodes      int    // number of nodes to generate
	extraEdges int    // shortcut edges beyond the spanning structure
	seed       uint64 // PRNG seed for reproducible output
	output     string // output file path (stdout if empty)
}

// randomCommand creates the random command for generating DAG graph files.
func (c *CLI) randomCommand() *cobra.Command {
	opts := randomOpts{nodes: 12, extraEdges: 6, seed: 42}

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random DAG as a TOML graph file",
		Long: `Generate a random directed acyclic graph as a TOML graph file.

Every node except the first gets one edge from an earlier node, so the
graph is connected and acyclic by construction. Extra edges add forward
shortcuts on top of that spanning structure. The same seed always
produces the same graph.

Examples:
  nxgraph random -o build.toml
  nxgraph random --nodes 30 --extra-edges 15 --seed 7 -o big.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.nodes < 1 {
				return fmt.Errorf("invalid node count: %d (must be at least 1)", opts.nodes)
			}
			return runRandom(cmd.Context(), &opts)
		},
	}

	cmd.Flags().IntVar(&opts.nodes, "nodes", opts.nodes, "number of nodes")
	cmd.Flags().IntVar(&opts.extraEdges, "extra-edges", opts.extraEdges, "forward shortcuts beyond the spanning edges")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "random seed")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runRandom generates the DAG, runs a toposort sanity pass, and writes the
// TOML file. Styled output is suppressed when the file goes to stdout.
func runRandom(ctx context.Context, opts *randomOpts) error {
	logger := loggerFromContext(ctx)

	prog := newProgress(logger)
	f := generateDAG(opts.nodes, opts.extraEdges, opts.seed)
	gens, err := toposort.Generations(f.buildDirected())
	if err != nil {
		return fmt.Errorf("generated graph is cyclic: %w", err)
	}
	prog.done(fmt.Sprintf("Generated %d nodes, %d edges, %d generations", opts.nodes, len(f.Edges), len(gens)))

	out, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := f.writeTOML(out); err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Generated a %d-generation DAG", len(gens))
		printStats(opts.nodes, len(f.Edges), f.kind())
		printFile(opts.output)
		printNextStep("Sort it", fmt.Sprintf("nxgraph sort --graph %s", opts.output))
		printNextStep("Draw it", fmt.Sprintf("nxgraph dot --graph %s --format svg", opts.output))
	}
	return nil
}

// generateDAG builds a connected random DAG. Edges always point from a
// lower-numbered node to a higher-numbered one, which rules out cycles.
func generateDAG(nodes, extraEdges int, seed uint64) *graphFile {
	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))

	label := func(i int) string { return fmt.Sprintf("n%d", i+1) }

	seen := make(map[[2]int]bool, nodes+extraEdges)
	edges := make([][]string, 0, nodes+extraEdges)
	addEdge := func(i, j int) bool {
		if seen[[2]int{i, j}] {
			return false
		}
		seen[[2]int{i, j}] = true
		edges = append(edges, []string{label(i), label(j)})
		return true
	}

	// Spanning structure: every node hangs off an earlier one.
	for i := 1; i < nodes; i++ {
		addEdge(rng.IntN(i), i)
	}

	// Forward shortcuts. Attempts are capped so that requests beyond
	// saturation still terminate.
	if nodes >= 2 {
		for added, attempts := 0, 0; added < extraEdges && attempts < extraEdges*10; attempts++ {
			i := rng.IntN(nodes - 1)
			j := i + 1 + rng.IntN(nodes-i-1)
			if addEdge(i, j) {
				added++
			}
		}
	}

	file := &graphFile{Directed: true, Nodes: []string{}, Edges: edges}
	if nodes == 1 {
		file.Nodes = []string{label(0)}
	}
	return file
}
