package sink

import (
	"github.com/matzehuels/drawkit/pkg/diagram"
	"github.com/matzehuels/drawkit/pkg/render/registry"
	"github.com/matzehuels/drawkit/pkg/svg"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	padding  float64
	outlines bool
}

// WithPadding sets the margin around the diagram bounds.
func WithPadding(p float64) SVGOption { return func(r *svgRenderer) { r.padding = p } }

// WithOutlines overlays every element outline as a dashed path.
func WithOutlines() SVGOption { return func(r *svgRenderer) { r.outlines = true } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{padding: DefaultPadding}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG draws doc through reg and returns the encoded SVG document.
func RenderSVG(doc *diagram.Document, reg *registry.Registry, opts ...SVGOption) ([]byte, error) {
	r := newSVGRenderer(opts...)
	scene, err := Build(doc, reg, r.padding, r.outlines)
	if err != nil {
		return nil, err
	}
	return svg.Marshal(scene.Root), nil
}
