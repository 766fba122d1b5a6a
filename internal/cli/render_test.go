package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/drawkit/pkg/pipeline"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "svg", []string{"svg"}},
		{"multiple formats", "svg,pdf,png", []string{"svg", "pdf", "png"}},
		{"spaces trimmed", "svg, dot-svg", []string{"svg", "dot-svg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i, v := range got {
				if v != tt.want[i] {
					t.Errorf("parseFormats(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
				}
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"derive from input", "", "dir/diagram.json", "dir/diagram"},
		{"stdin", "", "-", "diagram"},
		{"strip svg", "out/x.svg", "in.json", "out/x"},
		{"strip dot-svg", "out/x.dot.svg", "in.json", "out/x"},
		{"keep unknown ext", "out/x.v2", "in.json", "out/x.v2"},
		{"no ext", "out/x", "in.json", "out/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	artifacts := map[string][]byte{"svg": []byte("<svg/>"), "dot-svg": []byte("<svg/>"), "dot": []byte("digraph{}")}

	t.Run("multiple formats use base path", func(t *testing.T) {
		paths, err := writeArtifacts(artifacts, []string{"svg", "dot", "dot-svg"}, "in.json", filepath.Join(dir, "sub", "out"))
		if err != nil {
			t.Fatal(err)
		}
		want := []string{
			filepath.Join(dir, "sub", "out.svg"),
			filepath.Join(dir, "sub", "out.dot"),
			filepath.Join(dir, "sub", "out.dot.svg"),
		}
		for i, p := range want {
			if paths[i] != p {
				t.Errorf("paths[%d] = %q, want %q", i, paths[i], p)
			}
			if _, err := os.Stat(p); err != nil {
				t.Errorf("%s not written: %v", p, err)
			}
		}
	})

	t.Run("single format uses output as is", func(t *testing.T) {
		out := filepath.Join(dir, "exact.image")
		paths, err := writeArtifacts(artifacts, []string{"svg"}, "in.json", out)
		if err != nil {
			t.Fatal(err)
		}
		if len(paths) != 1 || paths[0] != out {
			t.Errorf("paths = %v, want [%s]", paths, out)
		}
	})
}

func TestRunRender(t *testing.T) {
	input := writeSample(t)
	out := filepath.Join(t.TempDir(), "render")
	c := New(io.Discard, LogInfo)

	opts := &renderOpts{
		output:  out,
		formats: []string{pipeline.FormatSVG, pipeline.FormatDOT},
		padding: pipeline.DefaultPadding,
		noCache: true,
	}
	if err := c.runRender(context.Background(), input, nil, io.Discard, opts); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}

	svg, err := os.ReadFile(out + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{`data-element-id="a"`, `data-element-id="b"`, `data-element-id="c"`, `class="sketch"`} {
		if !bytes.Contains(svg, []byte(want)) {
			t.Errorf("svg missing %s", want)
		}
	}

	dot, err := os.ReadFile(out + ".dot")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(dot), "digraph") {
		t.Errorf("dot output = %q", dot)
	}
}

func TestRunRenderStdin(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "piped.svg")
	c := New(io.Discard, LogInfo)

	opts := &renderOpts{output: out, formats: []string{"svg"}, noCache: true}
	if err := c.runRender(context.Background(), "-", strings.NewReader(sampleDoc), io.Discard, opts); err != nil {
		t.Fatalf("runRender() error: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestRunRenderErrors(t *testing.T) {
	c := New(io.Discard, LogInfo)

	tests := []struct {
		name  string
		input string
		opts  renderOpts
	}{
		{"missing file", filepath.Join(t.TempDir(), "nope.json"), renderOpts{formats: []string{"svg"}, noCache: true}},
		{"missing theme", writeSample(t), renderOpts{formats: []string{"svg"}, theme: "nope.toml", noCache: true}},
		{"negative padding", writeSample(t), renderOpts{formats: []string{"svg"}, padding: -1, noCache: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.runRender(context.Background(), tt.input, nil, io.Discard, &tt.opts); err == nil {
				t.Error("runRender() should fail")
			}
		})
	}
}

func TestRenderCommandRejectsFormat(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"render", writeSample(t), "-f", "gif", "--no-cache"})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "invalid format") {
		t.Errorf("Execute() error = %v, want invalid format", err)
	}
}
