package cli

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"

	"github.com/matzehuels/nxgraph/pkg/search"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// dotOpts holds the command-line flags for the dot command.
type dotOpts struct {
	graphPath string // TOML graph file to export
	output    string // output file path
	format    string // output format: "dot", "svg", "png"
}

// dotCommand creates the dot command for Graphviz exports.
func (c *CLI) dotCommand() *cobra.Command {
	opts := dotOpts{format: formatDOT}

	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Export a graph as Graphviz DOT, SVG, or PNG",
		Long: `Export a graph file in Graphviz DOT format, or render it to SVG or PNG.

The DOT output is deterministic: nodes and edges are emitted in sorted
order, and an undirected edge appears once.

Examples:
  nxgraph dot --graph deps.toml                       # DOT to stdout
  nxgraph dot --graph deps.toml --format svg          # writes deps.svg
  nxgraph dot --graph deps.toml --format png -o g.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			return runDot(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.graphPath, "graph", "g", "", "TOML graph file (required)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (derived from the graph file if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot (default), svg, png")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}

// validateFormat checks that the format is "dot", "svg", or "png".
func validateFormat(s string) error {
	switch s {
	case formatDOT, formatSVG, formatPNG:
		return nil
	}
	return fmt.Errorf("invalid format: %s (must be 'dot', 'svg', or 'png')", s)
}

// outputPath derives the output file for the requested format.
// DOT with no explicit output goes to stdout; SVG and PNG default to the
// graph file's name with the format extension.
func outputPath(opts *dotOpts) string {
	if opts.output != "" || opts.format == formatDOT {
		return opts.output
	}
	return strings.TrimSuffix(opts.graphPath, filepath.Ext(opts.graphPath)) + "." + opts.format
}

// runDot loads the graph file and writes it in the requested format.
func runDot(ctx context.Context, opts *dotOpts) error {
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

	dot := toDOT(g, f.Directed)

	data := []byte(dot)
	if opts.format != formatDOT {
		prog := newProgress(logger)
		data, err = renderDOT(ctx, dot, opts.format)
		if err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Rendered %s (%d bytes)", opts.format, len(data)))
	}

	path := outputPath(opts)
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	if path != "" {
		logger.Infof("Generated %s", path)
	}
	return nil
}

// toDOT converts a graph to Graphviz DOT format.
// Output is deterministic: nodes and neighbors are emitted in sorted order,
// and for undirected graphs each edge appears once, from its smaller endpoint.
func toDOT(g search.Graph[string], directed bool) string {
	keyword, edgeOp := "graph", "--"
	if directed {
		keyword, edgeOp = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s G {\n", keyword)
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	nodes := slices.Sorted(g.Nodes())
	for _, u := range nodes {
		fmt.Fprintf(&buf, "  %q;\n", u)
	}

	buf.WriteString("\n")
	for _, u := range nodes {
		adj, ok := g.Adjacent(u)
		if !ok {
			continue
		}
		for _, v := range slices.Sorted(maps.Keys(adj)) {
			if !directed && u > v {
				continue // emitted from the other endpoint
			}
			fmt.Fprintf(&buf, "  %q %s %q;\n", u, edgeOp, v)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// renderDOT renders a DOT graph to SVG or PNG using Graphviz.
func renderDOT(ctx context.Context, dot, format string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	target := graphviz.SVG
	if format == formatPNG {
		target = graphviz.PNG
	}

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, target, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
