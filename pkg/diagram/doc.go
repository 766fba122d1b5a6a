// Package diagram defines the model objects drawkit renders.
//
// # Elements
//
// A [Shape] is a rectangle positioned by X/Y with optional Width/Height.
// A [Connection] is an open polyline through ordered [Point] waypoints.
// Both implement [Element], the type renderers dispatch on.
//
// # Docking
//
// Editors adjust connection endpoints so they touch shape borders. The
// adjusted point is stored in X/Y and the logical endpoint is kept in
// [Point.Original]. Drawing uses the adjusted point; outline computation
// uses [Point.Outline], which prefers the original.
//
// # Documents
//
// [Read] and [Load] decode a JSON [Document]; see [Read] for the format.
package diagram
