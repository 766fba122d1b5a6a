package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/drawkit/pkg/errors"
)

func TestRead(t *testing.T) {
	input := `{
	  "shapes": [
	    {"id": "a", "x": 10, "y": 10, "width": 50, "height": 30},
	    {"id": "b", "x": 100, "y": 10}
	  ],
	  "connections": [
	    {"id": "c", "source": "a", "target": "b", "waypoints": [
	      {"x": 60, "y": 25},
	      {"x": 100, "y": 25, "original": {"x": 110, "y": 20}}
	    ]}
	  ]
	}`

	doc, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(doc.Shapes) != 2 || len(doc.Connections) != 1 {
		t.Fatalf("got %d shapes, %d connections", len(doc.Shapes), len(doc.Connections))
	}

	b := doc.Shapes[1]
	if b.Width != 0 || b.Height != 0 {
		t.Errorf("missing size should default to zero, got %vx%v", b.Width, b.Height)
	}

	wp := doc.Connections[0].Waypoints[1]
	if wp.Original == nil || wp.Original.X != 110 || wp.Original.Y != 20 {
		t.Errorf("original not decoded: %+v", wp)
	}
	if got := wp.Outline(); got.X != 110 || got.Y != 20 {
		t.Errorf("Outline() = %+v, want (110,20)", got)
	}
	if got := doc.Connections[0].Waypoints[0].Outline(); got.X != 60 || got.Y != 25 {
		t.Errorf("Outline() of undocked point = %+v", got)
	}

	els := doc.Elements()
	if len(els) != 3 || els[2].Kind() != KindConnection {
		t.Errorf("Elements() should list shapes before connections")
	}
}

func TestReadAssignsIDs(t *testing.T) {
	doc, err := Read(strings.NewReader(`{"shapes": [{"x": 1, "y": 2}], "connections": [{"waypoints": []}]}`))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if doc.Shapes[0].ID == "" || doc.Connections[0].ID == "" {
		t.Error("elements without ID should be assigned one")
	}
	if doc.Shapes[0].ID == doc.Connections[0].ID {
		t.Error("assigned IDs should be unique")
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		element string
	}{
		{"malformed", `{"shapes": [`, ""},
		{"duplicate id", `{"shapes": [{"id": "a"}, {"id": "a"}]}`, "a"},
		{"duplicate across kinds", `{"shapes": [{"id": "a"}], "connections": [{"id": "a"}]}`, "a"},
		{"unknown source", `{"shapes": [{"id": "a"}], "connections": [{"id": "c", "source": "x"}]}`, "c"},
		{"unknown target", `{"shapes": [{"id": "a"}], "connections": [{"id": "c", "source": "a", "target": "x"}]}`, "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidDiagram) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidDiagram)
			}
			if got := errors.ElementID(err); got != tt.element {
				t.Errorf("ElementID = %q, want %q", got, tt.element)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "d.json")
	if err := os.WriteFile(path, []byte(`{"shapes": [{"id": "s", "width": 5, "height": 5}]}`), 0644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s, ok := doc.Shape("s"); !ok || s.Width != 5 {
		t.Errorf("Shape(s) = %+v, %v", s, ok)
	}

	_, err = Load(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	doc := &Document{
		Shapes: []*Shape{{ID: "a", X: 1, Y: 2, Width: 3, Height: 4}},
		Connections: []*Connection{{
			ID:        "c",
			Source:    "a",
			Waypoints: []Point{{X: 0, Y: 0}, {X: 5, Y: 5, Original: &Point{X: 6, Y: 6}}},
		}},
	}

	data, err := Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	again, err := Marshal(doc)
	if err != nil || string(data) != string(again) {
		t.Error("Marshal() should be deterministic")
	}

	back, err := Read(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if back.Connections[0].Waypoints[1].Original.X != 6 {
		t.Error("original lost in round trip")
	}
}

func TestAttr(t *testing.T) {
	s := &Shape{ID: "a", Attrs: Metadata{"renderer": "handdrawn", "n": 3}}
	if got := Attr(s, "renderer"); got != "handdrawn" {
		t.Errorf("Attr() = %q", got)
	}
	if got := Attr(s, "n"); got != "" {
		t.Errorf("Attr() of non-string = %q, want empty", got)
	}
	if got := Attr(nil, "renderer"); got != "" {
		t.Errorf("Attr(nil) = %q, want empty", got)
	}
	var c *Connection
	if got := Attr(c, "renderer"); got != "" {
		t.Errorf("Attr(typed nil) = %q, want empty", got)
	}
}
