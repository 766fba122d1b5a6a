package sink

import (
	"image/color"

	"github.com/matzehuels/drawkit/pkg/diagram"
	"github.com/matzehuels/drawkit/pkg/errors"
	"github.com/matzehuels/drawkit/pkg/render/registry"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts    []SVGOption
	scale      float64
	background string
}

// WithPNGSVGOptions passes scene options (padding, outlines) through.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithBackground fills the image with a colour before drawing. The default
// is white; "none" keeps the image transparent.
func WithBackground(c string) PNGOption {
	return func(r *pngRenderer) { r.background = c }
}

// RenderPNG rasterizes doc without external tools.
func RenderPNG(doc *diagram.Document, reg *registry.Registry, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0, background: "white"}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", r.scale)
	}

	var bg color.Color
	if c, ok := parseColor(r.background, nil); ok {
		bg = c
	} else if r.background != "none" && r.background != "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown background colour %q", r.background)
	}

	s := newSVGRenderer(r.svgOpts...)
	scene, err := Build(doc, reg, s.padding, s.outlines)
	if err != nil {
		return nil, err
	}
	return rasterize(scene, r.scale, bg)
}
