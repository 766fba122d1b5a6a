package pipeline

import (
	"context"

	"github.com/matzehuels/drawkit/pkg/diagram"
	"github.com/matzehuels/drawkit/pkg/errors"
	"github.com/matzehuels/drawkit/pkg/render/registry"
	"github.com/matzehuels/drawkit/pkg/sink"
)

// Render produces one artifact without caching.
func Render(ctx context.Context, doc *diagram.Document, reg *registry.Registry, format string, opts Options) ([]byte, error) {
	svgOpts := []sink.SVGOption{sink.WithPadding(opts.Padding)}
	if opts.Outlines {
		svgOpts = append(svgOpts, sink.WithOutlines())
	}

	switch format {
	case FormatSVG:
		return sink.RenderSVG(doc, reg, svgOpts...)
	case FormatPNG:
		return sink.RenderPNG(doc, reg, sink.WithPNGSVGOptions(svgOpts...))
	case FormatPDF:
		return sink.RenderPDF(ctx, doc, reg, sink.WithPDFSVGOptions(svgOpts...))
	case FormatDOT:
		return []byte(sink.ToDOT(doc, sink.DOTOptions{Detailed: opts.Detailed})), nil
	case FormatDOTSVG:
		return sink.RenderDOTSVG(ctx, sink.ToDOT(doc, sink.DOTOptions{Detailed: opts.Detailed}))
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
}
