// Package registry dispatches diagram elements to renderers.
//
// Renderers are registered with a priority. For each element the registry
// asks the renderers in descending priority order whether they can render
// it and uses the first that says yes; renderers with equal priority are
// asked in registration order. When no renderer accepts an element the
// registry returns an error with code NO_RENDERER.
//
//	reg := registry.New(logger)
//	reg.Register(myRenderer, registry.DefaultPriority)
//	reg.Register(simple.New(styles.New(), theme), registry.FallbackPriority)
//
//	d, err := reg.ShapePath(shape)
//
// [Default] builds the registry used by the CLI and HTTP server.
//
// Every dispatch is logged at debug level and reported to
// observability.Render().
package registry
