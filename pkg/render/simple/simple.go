package simple

import (
	"strings"

	"github.com/matzehuels/drawkit/pkg/diagram"
	"github.com/matzehuels/drawkit/pkg/render"
	"github.com/matzehuels/drawkit/pkg/render/path"
	"github.com/matzehuels/drawkit/pkg/render/styles"
	"github.com/matzehuels/drawkit/pkg/svg"
)

// Name is the registry name of the fallback renderer.
const Name = "simple"

// Renderer draws every element as a plain rectangle or polyline.
// It accepts all elements and must be registered at the lowest priority.
type Renderer struct {
	shapeStyle      styles.Attrs
	connectionStyle styles.Attrs
}

var _ render.Renderer = (*Renderer)(nil)

// New builds the fallback renderer from a style resolver and theme.
func New(s *styles.Styles, theme styles.Theme) *Renderer {
	return &Renderer{
		shapeStyle: s.Style(nil, styles.Attrs{
			"fill":        theme.ShapeFill,
			"stroke":      theme.Accent,
			"strokeWidth": svg.Num(theme.ShapeStrokeWidth),
		}),
		connectionStyle: s.Style([]string{styles.TraitNoFill}, styles.Attrs{
			"stroke":      theme.Accent,
			"strokeWidth": svg.Num(theme.ConnectionStrokeWidth),
		}),
	}
}

// Name implements render.Named.
func (r *Renderer) Name() string { return Name }

// CanRender always returns true.
func (r *Renderer) CanRender(diagram.Element) bool { return true }

// DrawShape draws s as a rectangle at the container origin.
func (r *Renderer) DrawShape(container *svg.Node, s *diagram.Shape) *svg.Node {
	return svg.Rect(container, 0, 0, s.Width, s.Height).Attr(r.shapeStyle)
}

// DrawConnection draws c as a polyline through its raw waypoints.
func (r *Renderer) DrawConnection(container *svg.Node, c *diagram.Connection) *svg.Node {
	return CreateLine(c.Waypoints, r.connectionStyle).AppendTo(container)
}

// UpdateConnection moves an existing connection polyline to waypoints.
func (r *Renderer) UpdateConnection(gfx *svg.Node, waypoints []diagram.Point) *svg.Node {
	return UpdateLine(gfx, waypoints)
}

// ShapePath returns the closed rectangle outline of s.
func (r *Renderer) ShapePath(s *diagram.Shape) string {
	return path.ToString(path.Rect(s.X, s.Y, s.Width, s.Height))
}

// ConnectionPath returns the open outline of c through the original
// position of every docked waypoint.
func (r *Renderer) ConnectionPath(c *diagram.Connection) string {
	return path.ToString(path.Polyline(c.Waypoints))
}

// CreateLine returns a detached polyline through points with attrs applied.
func CreateLine(points []diagram.Point, attrs styles.Attrs) *svg.Node {
	return svg.Create("polyline", map[string]string{"points": Points(points)}).Attr(attrs)
}

// UpdateLine replaces the points of an existing polyline in place.
func UpdateLine(gfx *svg.Node, points []diagram.Point) *svg.Node {
	return gfx.Attr(map[string]string{"points": Points(points)})
}

// Points serializes points for a polyline "points" attribute: every point
// is written as "x,y " including the trailing space.
func Points(points []diagram.Point) string {
	var b strings.Builder
	for _, p := range points {
		b.WriteString(svg.Num(p.X))
		b.WriteByte(',')
		b.WriteString(svg.Num(p.Y))
		b.WriteByte(' ')
	}
	return b.String()
}
