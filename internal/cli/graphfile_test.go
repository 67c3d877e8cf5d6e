package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeGraphFile writes a TOML graph file into a temp dir and returns its path.
func writeGraphFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp graph file: %v", err)
	}
	return path
}

func TestLoadGraphFile(t *testing.T) {
	path := writeGraphFile(t, `
directed = true
nodes    = ["g"]
edges    = [["a", "b"], ["b", "c"]]
`)

	f, err := loadGraphFile(path)
	if err != nil {
		t.Fatalf("loadGraphFile() error = %v", err)
	}

	if !f.Directed {
		t.Error("Directed = false, want true")
	}
	if len(f.Nodes) != 1 || f.Nodes[0] != "g" {
		t.Errorf("Nodes = %v, want [g]", f.Nodes)
	}
	if len(f.Edges) != 2 {
		t.Errorf("len(Edges) = %d, want 2", len(f.Edges))
	}
}

func TestLoadGraphFileValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"one endpoint", `edges = [["a"]]`, errEdgeShape},
		{"three endpoints", `edges = [["a", "b", "c"]]`, errEdgeShape},
		{"empty edge label", `edges = [["a", ""]]`, errEmptyLabel},
		{"empty node label", `nodes = [""]`, errEmptyLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeGraphFile(t, tt.content)
			_, err := loadGraphFile(path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("loadGraphFile() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadGraphFileMissing(t *testing.T) {
	if _, err := loadGraphFile(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("loadGraphFile() on a missing file should fail")
	}
}

func TestLoadGraphFileBadTOML(t *testing.T) {
	path := writeGraphFile(t, `edges = [[`)
	if _, err := loadGraphFile(path); err == nil {
		t.Error("loadGraphFile() on malformed TOML should fail")
	}
}

func TestBuildUndirected(t *testing.T) {
	f := &graphFile{Nodes: []string{"g"}, Edges: [][]string{{"a", "b"}}}
	g := f.buildUndirected()

	adj, ok := g.Adjacent("b")
	if !ok || !adj.Contains("a") {
		t.Error("edge a-b should be visible from b")
	}
	if !g.Has("g") {
		t.Error("isolated node g should be present")
	}
	if g.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", g.NodeCount())
	}
}

func TestBuildDirected(t *testing.T) {
	f := &graphFile{Directed: true, Edges: [][]string{{"a", "b"}}}
	g := f.buildDirected()

	adj, ok := g.Adjacent("b")
	if !ok || adj.Len() != 0 {
		t.Error("b should exist with no outgoing edges")
	}
	if got := g.InDegree("b"); got != 1 {
		t.Errorf("InDegree(b) = %d, want 1", got)
	}
}

func TestGraphFileKind(t *testing.T) {
	if got := (&graphFile{Directed: true}).kind(); got != "directed" {
		t.Errorf("kind() = %q, want %q", got, "directed")
	}
	if got := (&graphFile{}).kind(); got != "undirected" {
		t.Errorf("kind() = %q, want %q", got, "undirected")
	}
}
