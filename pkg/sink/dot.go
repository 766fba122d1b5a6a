package sink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/drawkit/pkg/diagram"
	"github.com/matzehuels/drawkit/pkg/errors"
)

// DOTOptions configures node-link export.
type DOTOptions struct {
	// Detailed adds the element type and attributes to node labels.
	Detailed bool
}

// ToDOT converts the shapes and connections of doc to Graphviz DOT. Shapes
// become boxes sized like the shape; connections with both endpoints become
// edges. Connections without a source or target have no node-link
// equivalent and are left out.
func ToDOT(doc *diagram.Document, opts DOTOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"filled\", fillcolor=white, color=fuchsia, fontsize=14];\n")
	buf.WriteString("  edge [color=fuchsia];\n")
	buf.WriteString("\n")

	for _, s := range doc.Shapes {
		attrs := []string{fmt.Sprintf("label=%q", shapeLabel(s, opts.Detailed))}
		if s.Width > 0 && s.Height > 0 {
			attrs = append(attrs,
				fmt.Sprintf("width=%.2f", s.Width/72),
				fmt.Sprintf("height=%.2f", s.Height/72))
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", s.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, c := range doc.Connections {
		if c.Source == "" || c.Target == "" {
			continue
		}
		if opts.Detailed && c.Type != "" {
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", c.Source, c.Target, c.Type)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", c.Source, c.Target)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func shapeLabel(s *diagram.Shape, detailed bool) string {
	if !detailed {
		return s.ID
	}
	parts := []string{s.ID}
	if s.Type != "" {
		parts = append(parts, s.Type)
	}
	for _, k := range slices.Sorted(maps.Keys(s.Attrs)) {
		parts = append(parts, fmt.Sprintf("%s: %v", k, s.Attrs[k]))
	}
	return strings.Join(parts, "\n")
}

// RenderDOTSVG lays out a DOT graph with Graphviz and returns SVG.
func RenderDOTSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render DOT")
	}
	return buf.Bytes(), nil
}
