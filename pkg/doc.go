// Package pkg provides the core libraries for drawkit diagram rendering.
//
// # Overview
//
// drawkit draws diagram documents made of shapes and connections and
// computes the outline path of every element. Several renderers coexist in
// a priority-ordered registry; each element is drawn by the first renderer
// that accepts it.
//
// # Architecture
//
// The typical data flow:
//
//	JSON document
//	     ↓
//	[diagram] (shapes, connections, docked waypoints)
//	     ↓
//	[render/registry] (dispatch to [render/handdrawn] or [render/simple])
//	     ↓
//	[graphics] (one element group per element)
//	     ↓
//	[sink] (SVG, PNG, PDF, DOT output)
//
// # Quick Start
//
//	doc, _ := diagram.Load("diagram.json")
//	reg := registry.Default(logger, styles.DefaultTheme())
//	svg, _ := sink.RenderSVG(doc, reg)
//
// # Main Packages
//
// ## Rendering
//
// [render] - The renderer contract: CanRender, DrawShape, DrawConnection,
// ShapePath and ConnectionPath.
//
//   - [render/path]: outline strings (rectangles, polylines) and bounds
//   - [render/styles]: style attributes, traits and TOML themes
//   - [render/simple]: the fallback renderer
//   - [render/handdrawn]: the sketch renderer
//   - [render/registry]: priority dispatch
//
// [svg] - The drawing surface: a small element tree and its XML encoder.
//
// [graphics] - Element groups: creates, redraws and removes the group that
// holds each element's primitive.
//
// [sink] - Output formats. SVG is encoded directly, PNG is rasterized in
// process, PDF goes through rsvg-convert and DOT through Graphviz.
//
// ## Infrastructure
//
// [pipeline] - Render orchestration with caching, used by the CLI and the
// HTTP server.
//
// [cache] - Artifact caches: file, Redis and null.
//
// [observability] - Hooks for renderer dispatch, renders, cache access and
// HTTP requests.
//
// [errors] - Coded errors shared by every package.
//
// # Testing
//
//	go test ./...
//	DRAWKIT_TEST_REDIS_URL=redis://localhost:6379/0 go test ./pkg/cache/...
//
// [diagram]: https://pkg.go.dev/github.com/matzehuels/drawkit/pkg/diagram
// [render]: https://pkg.go.dev/github.com/matzehuels/drawkit/pkg/render
// [render/path]: https://pkg.go.dev/github.com/matzehuels/drawkit/pkg/render/path
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/drawkit/pkg/render/styles
// [render/simple]: https://pkg.go.dev/github.com/matzehuels/drawkit/pkg/render/simple
// [render/handdrawn]: https://pkg.go.dev/github.com/matzehuels/drawkit/pkg/render/handdrawn
// [render/registry]: https://pkg.go.dev/github.com/matzehuels/drawkit/pkg/render/registry
// [svg]: https://pkg.go.dev/github.com/matzehuels/drawkit/pkg/svg
// [graphics]: https://pkg.go.dev/github.com/matzehuels/drawkit/pkg/graphics
// [sink]: https://pkg.go.dev/github.com/matzehuels/drawkit/pkg/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/drawkit/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/drawkit/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/drawkit/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/drawkit/pkg/errors
package pkg
