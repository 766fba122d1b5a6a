package sink

import (
	"github.com/matzehuels/drawkit/pkg/diagram"
	"github.com/matzehuels/drawkit/pkg/errors"
	"github.com/matzehuels/drawkit/pkg/graphics"
	"github.com/matzehuels/drawkit/pkg/render/path"
	"github.com/matzehuels/drawkit/pkg/render/registry"
	"github.com/matzehuels/drawkit/pkg/svg"
)

// DefaultPadding is the margin added around the diagram bounds.
const DefaultPadding = 10.0

// Scene is a drawn document: the SVG tree plus the bounds of all element
// outlines.
type Scene struct {
	Root     *svg.Node
	Bounds   path.Box
	Outlines map[string]string
}

// Build draws every shape and then every connection of doc into a fresh
// SVG tree. The root viewBox covers the union of all outlines grown by
// padding.
func Build(doc *diagram.Document, reg *registry.Registry, padding float64, outlines bool) (*Scene, error) {
	root := svg.Root()
	layer := svg.Create("g", map[string]string{"class": "layer"}).AppendTo(root)
	factory := graphics.NewFactory(reg)

	scene := &Scene{Root: root, Outlines: make(map[string]string)}
	var overlay *svg.Node
	if outlines {
		overlay = svg.Create("g", map[string]string{"class": "outlines"})
	}

	first := true
	for _, e := range doc.Elements() {
		gfx := factory.Create(e).AppendTo(layer)
		if _, err := factory.Draw(e, gfx); err != nil {
			return nil, err
		}

		d, err := reg.Path(e)
		if err != nil {
			return nil, err
		}
		scene.Outlines[e.ElementID()] = d

		b, ok, err := path.BoundsOf(d)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "bounds of outline").For(e.ElementID())
		}
		if ok {
			if first {
				scene.Bounds, first = b, false
			} else {
				scene.Bounds = scene.Bounds.Union(b)
			}
		}

		if overlay != nil && d != "" {
			svg.Create("path", map[string]string{
				"d":               d,
				"fill":            "none",
				"stroke":          "#0b6e99",
				"strokeWidth":     "1",
				"strokeDasharray": "4 2",
				"pointerEvents":   "none",
			}).AppendTo(overlay)
		}
	}
	if overlay != nil {
		overlay.AppendTo(root)
	}

	scene.Bounds = scene.Bounds.Pad(padding)
	b := scene.Bounds
	root.Attr(map[string]string{
		"viewBox": svg.Num(b.X) + " " + svg.Num(b.Y) + " " + svg.Num(b.W) + " " + svg.Num(b.H),
		"width":   svg.Num(b.W),
		"height":  svg.Num(b.H),
	})
	return scene, nil
}
