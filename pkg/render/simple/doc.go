// Package simple provides the fallback renderer.
//
// [Renderer] accepts every element. Shapes become a white rectangle with a
// 2px fuchsia border drawn at the shape's local origin; connections become a
// 5px fuchsia polyline through the raw waypoints. Colours and widths come
// from the [styles.Theme] passed to [New].
//
// Outlines follow the model rather than the drawing: a shape outline is its
// rectangle at (x,y), and a connection outline passes through the original
// position of docked waypoints.
//
//	r := simple.New(styles.New(), styles.DefaultTheme())
//	r.ShapePath(&diagram.Shape{X: 10, Y: 10, Width: 50, Height: 30})
//	// M10,10l50,0l0,30l-50,0z
package simple
