package cli

import (
	"strings"
	"testing"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"dot", "dot", false},
		{"svg", "svg", false},
		{"png", "png", false},
		{"pdf", "pdf", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestToDOTUndirected(t *testing.T) {
	f := &graphFile{Nodes: []string{"d"}, Edges: [][]string{{"b", "a"}, {"b", "c"}}}
	got := toDOT(f.buildUndirected(), false)

	if !strings.HasPrefix(got, "graph G {") {
		t.Errorf("toDOT() should open an undirected graph, got %q", firstLine(got))
	}
	if !strings.Contains(got, `"a" -- "b";`) {
		t.Error(`missing edge "a" -- "b" (canonical orientation)`)
	}
	if strings.Contains(got, `"b" -- "a"`) {
		t.Error(`edge emitted twice: found "b" -- "a"`)
	}
	if !strings.Contains(got, `"d";`) {
		t.Error("isolated node d should be declared")
	}
}

func TestToDOTDirected(t *testing.T) {
	f := &graphFile{Directed: true, Edges: [][]string{{"b", "a"}}}
	got := toDOT(f.buildDirected(), true)

	if !strings.HasPrefix(got, "digraph G {") {
		t.Errorf("toDOT() should open a digraph, got %q", firstLine(got))
	}
	if !strings.Contains(got, `"b" -> "a";`) {
		t.Error(`missing edge "b" -> "a"`)
	}
	if strings.Contains(got, `"a" -> "b"`) {
		t.Error(`direction must not be mirrored: found "a" -> "b"`)
	}
}

func TestToDOTSelfLoop(t *testing.T) {
	f := &graphFile{Edges: [][]string{{"a", "a"}}}
	got := toDOT(f.buildUndirected(), false)

	if n := strings.Count(got, `"a" -- "a";`); n != 1 {
		t.Errorf("self-loop emitted %d times, want 1", n)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	f := &graphFile{Edges: [][]string{{"c", "a"}, {"a", "b"}, {"b", "c"}}}
	first := toDOT(f.buildUndirected(), false)
	for range 10 {
		if got := toDOT(f.buildUndirected(), false); got != first {
			t.Fatal("toDOT() output varies across runs")
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name string
		opts dotOpts
		want string
	}{
		{"dot to stdout", dotOpts{graphPath: "deps.toml", format: formatDOT}, ""},
		{"svg derived", dotOpts{graphPath: "deps.toml", format: formatSVG}, "deps.svg"},
		{"png derived", dotOpts{graphPath: "a/b.toml", format: formatPNG}, "a/b.png"},
		{"explicit wins", dotOpts{graphPath: "deps.toml", output: "out.svg", format: formatSVG}, "out.svg"},
		{"explicit dot file", dotOpts{graphPath: "deps.toml", output: "g.dot", format: formatDOT}, "g.dot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputPath(&tt.opts); got != tt.want {
				t.Errorf("outputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
