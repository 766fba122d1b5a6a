// Package graphics manages the per-element groups renderers draw into.
//
// Each element gets an outer <g> tagged with its ID and, for shapes, a
// translate transform; the renderer output lives in an inner "visual"
// group that is cleared on every redraw. [Factory.Update] supports moving
// and resizing elements without rebuilding the surface.
package graphics
