// Package render defines the contract every diagram renderer implements.
//
// # Overview
//
// A [Renderer] answers five questions about a diagram element:
//
//   - CanRender: does this renderer draw the element?
//   - DrawShape / DrawConnection: create the primitive on the drawing surface
//   - ShapePath / ConnectionPath: return the outline used for hit-testing,
//     selection and bounds
//
// Several renderers coexist. The [registry] subpackage keeps them in
// priority order and hands each element to the first renderer whose
// CanRender returns true, so new renderers are added without changing
// existing ones.
//
// # Built-in Renderers
//
//   - [simple]: accepts every element; registered last as the fallback
//   - [handdrawn]: sketch look for elements that ask for it
//
// # Outlines
//
// Outline strings are built by the [path] subpackage. Drawing and outline
// computation are deliberately asymmetric for connections: drawing follows
// the raw (docked) waypoints while outlines use each waypoint's original
// position.
//
// [registry]: github.com/matzehuels/drawkit/pkg/render/registry
// [simple]: github.com/matzehuels/drawkit/pkg/render/simple
// [handdrawn]: github.com/matzehuels/drawkit/pkg/render/handdrawn
// [path]: github.com/matzehuels/drawkit/pkg/render/path
package render
