package handdrawn

import (
	"fmt"

	"github.com/matzehuels/drawkit/pkg/diagram"
	"github.com/matzehuels/drawkit/pkg/render"
	"github.com/matzehuels/drawkit/pkg/render/path"
	"github.com/matzehuels/drawkit/pkg/render/styles"
	"github.com/matzehuels/drawkit/pkg/svg"
)

// Name is the registry name of the sketch renderer. Elements opt in by
// setting the "renderer" attribute to this value.
const Name = "handdrawn"

// Renderer draws opted-in elements with a hand-drawn look.
type Renderer struct {
	seed            uint64
	shapeStyle      styles.Attrs
	connectionStyle styles.Attrs
}

var _ render.Renderer = (*Renderer)(nil)

// New builds the sketch renderer from a style resolver and theme.
func New(s *styles.Styles, theme styles.Theme) *Renderer {
	return &Renderer{
		seed: theme.Sketch.Seed,
		shapeStyle: s.Cls("sketch", nil, styles.Attrs{
			"stroke":         theme.Sketch.Ink,
			"strokeWidth":    svg.Num(theme.ShapeStrokeWidth),
			"strokeLinejoin": "round",
		}),
		connectionStyle: s.Cls("sketch", []string{styles.TraitNoFill}, styles.Attrs{
			"stroke":        theme.Sketch.Ink,
			"strokeWidth":   svg.Num(theme.ShapeStrokeWidth),
			"strokeLinecap": "round",
		}),
	}
}

// Name implements render.Named.
func (r *Renderer) Name() string { return Name }

// CanRender accepts elements whose "renderer" attribute is "handdrawn".
func (r *Renderer) CanRender(e diagram.Element) bool {
	return diagram.Attr(e, "renderer") == Name
}

// DrawShape draws s as a wobbly, slightly rotated rectangle.
func (r *Renderer) DrawShape(container *svg.Node, s *diagram.Shape) *svg.Node {
	rot := rotationFor(s.ID, s.Width, s.Height)
	return svg.Create("path", map[string]string{
		"d":    wobbledRect(0, 0, s.Width, s.Height, r.seed, s.ID),
		"fill": greyForID(s.ID),
		"transform": fmt.Sprintf("rotate(%s,%s,%s)",
			svg.Num(rot), svg.Num(s.Width/2), svg.Num(s.Height/2)),
	}).Attr(r.shapeStyle).AppendTo(container)
}

// DrawConnection draws c as a bowed line through its raw waypoints.
func (r *Renderer) DrawConnection(container *svg.Node, c *diagram.Connection) *svg.Node {
	return svg.Create("path", map[string]string{
		"d": sketchLine(c.Waypoints),
	}).Attr(r.connectionStyle).AppendTo(container)
}

// ShapePath returns the exact rectangle outline; the wobble is visual only.
func (r *Renderer) ShapePath(s *diagram.Shape) string {
	return path.ToString(path.Rect(s.X, s.Y, s.Width, s.Height))
}

// ConnectionPath returns the straight outline through the waypoints.
func (r *Renderer) ConnectionPath(c *diagram.Connection) string {
	return path.ToString(path.Polyline(c.Waypoints))
}
