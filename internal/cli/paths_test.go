package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/matzehuels/drawkit/pkg/pipeline"
	"github.com/matzehuels/drawkit/pkg/render/path"
)

func TestRunPathsJSON(t *testing.T) {
	c := New(io.Discard, LogInfo)
	var buf bytes.Buffer

	if err := c.runPaths(context.Background(), writeSample(t), nil, &buf, true); err != nil {
		t.Fatalf("runPaths() error: %v", err)
	}

	var got []pipeline.ElementPath
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if len(got) != 3 {
		t.Fatalf("got %d paths, want 3", len(got))
	}

	want := []struct{ id, kind, renderer, path string }{
		{"a", "shape", "simple", "M10,10l50,0l0,30l-50,0z"},
		{"b", "shape", "handdrawn", "M120,10l50,0l0,30l-50,0z"},
		{"c", "connection", "simple", "M35,25L120,25"},
	}
	for i, w := range want {
		p := got[i]
		if p.ID != w.id || p.Kind != w.kind || p.Renderer != w.renderer || p.Path != w.path {
			t.Errorf("paths[%d] = %+v, want %+v", i, p, w)
		}
	}
	if got[0].Type != "bpmn:Task" {
		t.Errorf("paths[0].Type = %q", got[0].Type)
	}
}

func TestRunPathsTable(t *testing.T) {
	c := New(io.Discard, LogInfo)
	var buf bytes.Buffer

	if err := c.runPaths(context.Background(), "-", strings.NewReader(sampleDoc), &buf, false); err != nil {
		t.Fatalf("runPaths() error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Renderer", "handdrawn", "M10,10l50,0l0,30l-50,0z", "10,10 50x30"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRunPathsInvalidDocument(t *testing.T) {
	c := New(io.Discard, LogInfo)
	err := c.runPaths(context.Background(), "-", strings.NewReader(`{"shapes": [`), io.Discard, true)
	if err == nil {
		t.Error("runPaths() should fail on malformed JSON")
	}
}

func TestFormatBounds(t *testing.T) {
	tests := []struct {
		name string
		p    pipeline.ElementPath
		want string
	}{
		{"no outline", pipeline.ElementPath{}, "—"},
		{"integer", pipeline.ElementPath{Bounds: &path.Box{X: 10, Y: 10, W: 50, H: 30}}, "10,10 50x30"},
		{"fractional", pipeline.ElementPath{Bounds: &path.Box{X: 0.5, Y: -2, W: 1.25, H: 0}}, "0.5,-2 1.25x0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatBounds(tt.p); got != tt.want {
				t.Errorf("formatBounds() = %q, want %q", got, tt.want)
			}
		})
	}
}
