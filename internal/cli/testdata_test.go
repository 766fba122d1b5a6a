package cli

import (
	"os"
	"path/filepath"
	"testing"
)

// sampleDoc has two shapes, one of them hand-drawn, and a docked connection.
const sampleDoc = `{
  "shapes": [
    {"id": "a", "type": "bpmn:Task", "x": 10, "y": 10, "width": 50, "height": 30},
    {"id": "b", "x": 120, "y": 10, "width": 50, "height": 30, "attrs": {"renderer": "handdrawn"}}
  ],
  "connections": [
    {"id": "c", "source": "a", "target": "b", "waypoints": [
      {"x": 60, "y": 25, "original": {"x": 35, "y": 25}},
      {"x": 120, "y": 25}
    ]}
  ]
}`

// writeSample writes sampleDoc to a temp dir and returns its path.
func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "diagram.json")
	if err := os.WriteFile(path, []byte(sampleDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
