// Package path builds the outline strings renderers return for hit-testing,
// selection highlighting and bounds computation.
//
// # Components
//
// An outline is assembled from [Component] values, each a command letter and
// its arguments. [Rect] produces the closed outline of a shape and
// [Polyline] the open outline of a connection, substituting docked
// waypoints with their original positions.
//
// # Serialization
//
// [ToString] joins every token with commas and removes any comma next to a
// command letter:
//
//	path.ToString(path.Rect(10, 10, 50, 30))
//	// M10,10l50,0l0,30l-50,0z
//
// Consumers may compare these strings byte for byte, so the format is fixed.
// [Normalize] applies the same comma rule to a joined string and is
// idempotent.
//
// # Reading Paths Back
//
// [Parse] reads an outline (or any M/L/H/V/Q/C/Z path) into components, and
// [Bounds] computes the box it covers. The SVG sink uses this to size the
// viewBox; the CLI and API report it next to each outline.
package path
