// Package sink turns a diagram document into output files.
//
// # Formats
//
//   - [RenderSVG]: the scene drawn through the renderer registry
//   - [RenderPNG]: the same scene rasterized in-process with fogleman/gg
//   - [RenderPDF]: SVG converted by rsvg-convert
//   - [ToDOT] / [RenderDOTSVG]: a node-link view of shapes and connections
//     laid out by Graphviz
//
// # Scene
//
// [Build] creates one element group per shape and connection (shapes
// first), draws each through the registry and collects the outline of
// every element. The viewBox is the union of the outline bounds grown by
// the padding, so the document frame follows the geometric outlines rather
// than the stroked drawing.
//
//	svg, err := sink.RenderSVG(doc, reg, sink.WithPadding(20), sink.WithOutlines())
//
// PDF export requires librsvg: brew install librsvg (macOS),
// apt install librsvg2-bin (Linux).
package sink
