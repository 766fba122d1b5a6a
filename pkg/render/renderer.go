package render

import (
	"fmt"
	"strings"

	"github.com/matzehuels/drawkit/pkg/diagram"
	"github.com/matzehuels/drawkit/pkg/svg"
)

// Renderer draws diagram elements and computes their outlines.
// Implementations hold their own styles and no shared mutable state.
type Renderer interface {
	// CanRender reports whether the renderer draws e. It must be cheap and
	// free of side effects; e may be nil. A renderer that cannot draw an
	// element returns false here instead of failing in DrawShape or
	// DrawConnection.
	CanRender(e diagram.Element) bool

	// DrawShape creates exactly one top-level primitive for s inside
	// container, at the container's local origin, and returns it.
	// s is not modified.
	DrawShape(container *svg.Node, s *diagram.Shape) *svg.Node

	// DrawConnection creates exactly one top-level primitive following the
	// waypoints of c inside container and returns it. c is not modified.
	DrawConnection(container *svg.Node, c *diagram.Connection) *svg.Node

	// ShapePath returns the closed outline of s. It creates and mutates no
	// primitives.
	ShapePath(s *diagram.Shape) string

	// ConnectionPath returns the open outline of c, using the original
	// position of docked waypoints. It creates and mutates no primitives.
	ConnectionPath(c *diagram.Connection) string
}

// Named is implemented by renderers that report a name in logs, hooks and
// the inspector.
type Named interface {
	Name() string
}

// NameOf returns r's name, or its Go type when it does not implement
// [Named].
func NameOf(r Renderer) string {
	if n, ok := r.(Named); ok {
		return n.Name()
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", r), "*")
}

// Draw dispatches e to DrawShape or DrawConnection.
func Draw(r Renderer, container *svg.Node, e diagram.Element) *svg.Node {
	switch el := e.(type) {
	case *diagram.Shape:
		return r.DrawShape(container, el)
	case *diagram.Connection:
		return r.DrawConnection(container, el)
	}
	return nil
}

// Path dispatches e to ShapePath or ConnectionPath. Unknown element types
// have an empty outline.
func Path(r Renderer, e diagram.Element) string {
	switch el := e.(type) {
	case *diagram.Shape:
		return r.ShapePath(el)
	case *diagram.Connection:
		return r.ConnectionPath(el)
	}
	return ""
}
