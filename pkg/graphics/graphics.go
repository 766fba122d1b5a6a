package graphics

import (
	"github.com/matzehuels/drawkit/pkg/diagram"
	"github.com/matzehuels/drawkit/pkg/render/registry"
	"github.com/matzehuels/drawkit/pkg/svg"
)

// ElementIDAttr is the attribute carrying the element ID on its group.
const ElementIDAttr = "data-element-id"

// Factory owns one group per diagram element and redraws it through a
// renderer registry.
type Factory struct {
	reg *registry.Registry
}

// NewFactory returns a factory drawing with reg.
func NewFactory(reg *registry.Registry) *Factory {
	return &Factory{reg: reg}
}

// Create returns a detached element group for e:
//
//	<g class="element shape" data-element-id="..." transform="translate(x,y)">
//	  <g class="visual"/>
//	</g>
//
// Shapes are translated to their position so renderers draw at the local
// origin. Connections use absolute coordinates and are not translated.
func (f *Factory) Create(e diagram.Element) *svg.Node {
	gfx := svg.Create("g", map[string]string{
		"class":       "element " + e.Kind().String(),
		ElementIDAttr: e.ElementID(),
	})
	if s, ok := e.(*diagram.Shape); ok {
		gfx.Attr(map[string]string{"transform": svg.Translate(s.X, s.Y)})
	}
	svg.Create("g", map[string]string{"class": "visual"}).AppendTo(gfx)
	return gfx
}

// Visual returns the group renderers draw into.
func Visual(gfx *svg.Node) *svg.Node {
	for _, c := range gfx.Children() {
		if c.Get("class") == "visual" {
			return c
		}
	}
	return svg.Create("g", map[string]string{"class": "visual"}).AppendTo(gfx)
}

// Draw clears the visual of gfx and draws e into it.
func (f *Factory) Draw(e diagram.Element, gfx *svg.Node) (*svg.Node, error) {
	visual := Visual(gfx)
	visual.Clear()
	return f.reg.Draw(visual, e)
}

// Update moves gfx to the current position of e and redraws it.
func (f *Factory) Update(e diagram.Element, gfx *svg.Node) (*svg.Node, error) {
	if s, ok := e.(*diagram.Shape); ok {
		gfx.Attr(map[string]string{"transform": svg.Translate(s.X, s.Y)})
	}
	return f.Draw(e, gfx)
}

// Remove detaches gfx from the surface.
func (f *Factory) Remove(gfx *svg.Node) {
	gfx.Remove()
}
