package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/nxgraph/pkg/graph"
)

// Validation errors for graph files, wrapped with file and entry context.
var (
	errEdgeShape  = errors.New("edge needs exactly two endpoints")
	errEmptyLabel = errors.New("empty node label")
)

// graphFile is the on-disk TOML description of a graph:
//
//	directed = true
//	nodes    = ["g"]                  # optional isolated nodes
//	edges    = [["a","b"], ["b","c"]] # applied in order
//
// Endpoints of edges are added implicitly; nodes only needs entries that
// appear in no edge.
type graphFile struct {
	Directed bool       `toml:"directed"`
	Nodes    []string   `toml:"nodes"`
	Edges    [][]string `toml:"edges"`
}

// loadGraphFile reads and validates a TOML graph file.
func loadGraphFile(path string) (*graphFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f graphFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := f.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}

func (f *graphFile) validate() error {
	for i, n := range f.Nodes {
		if n == "" {
			return fmt.Errorf("nodes[%d]: %w", i, errEmptyLabel)
		}
	}
	for i, e := range f.Edges {
		if len(e) != 2 {
			return fmt.Errorf("edges[%d]: %w", i, errEdgeShape)
		}
		if e[0] == "" || e[1] == "" {
			return fmt.Errorf("edges[%d]: %w", i, errEmptyLabel)
		}
	}
	return nil
}

// kind describes the declared flavor for display purposes.
func (f *graphFile) kind() string {
	if f.Directed {
		return "directed"
	}
	return "undirected"
}

// buildUndirected materializes the file as an undirected graph.
func (f *graphFile) buildUndirected() *graph.Graph[string] {
	g := graph.New[string]()
	for _, n := range f.Nodes {
		g.AddNode(n)
	}
	g.AddEdgesFrom(f.pairs())
	return g
}

// buildDirected materializes the file as a directed graph.
func (f *graphFile) buildDirected() *graph.DiGraph[string] {
	g := graph.NewDiGraph[string]()
	for _, n := range f.Nodes {
		g.AddNode(n)
	}
	g.AddEdgesFrom(f.pairs())
	return g
}

// pairs converts the validated edge list into AddEdgesFrom input.
func (f *graphFile) pairs() [][2]string {
	pairs := make([][2]string, len(f.Edges))
	for i, e := range f.Edges {
		pairs[i] = [2]string{e[0], e[1]}
	}
	return pairs
}

// writeTOML encodes the graph file in the same format loadGraphFile reads.
func (f *graphFile) writeTOML(w io.Writer) error {
	return toml.NewEncoder(w).Encode(f)
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
