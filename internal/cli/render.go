package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/drawkit/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string   // output file (single format) or base path (multiple)
	formats   []string // output formats: svg, png, pdf, dot, dot-svg
	theme     string   // TOML theme file; empty for the default theme
	padding   float64  // margin around the diagram
	outlines  bool     // overlay element outlines
	detailed  bool     // DOT labels include type and attributes
	noCache   bool     // disable the artifact cache
	refresh   bool     // re-render even when cached
	formatStr string
}

// renderCommand creates the render command.
//
// Default settings:
//   - format: svg
//   - padding: 10
//   - theme: built-in (white shapes, fuchsia strokes)
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{padding: pipeline.DefaultPadding}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a diagram document to SVG, PNG, PDF or DOT",
		Long: `Render a diagram document.

The document is a JSON object with "shapes" and "connections". Use "-" to
read it from stdin. Each element is drawn by the highest-priority renderer
that accepts it; elements with "renderer": "handdrawn" in their attrs get
the sketch look, everything else the plain fallback.`,
		Example: `  drawkit render diagram.json
  drawkit render diagram.json -f svg,png -o out/diagram
  drawkit render diagram.json -f pdf --theme dark.toml --outlines`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(opts.formatStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], cmd.InOrStdin(), cmd.OutOrStdout(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formatStr, "format", "f", "", "output format(s): "+strings.Join(pipeline.ValidFormats, ", ")+" (comma-separated)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "TOML theme file")
	cmd.Flags().Float64Var(&opts.padding, "padding", opts.padding, "margin around the diagram")
	cmd.Flags().BoolVar(&opts.outlines, "outlines", false, "overlay element outlines")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include type and attributes in DOT labels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

// runRender loads the document and theme, renders every requested format and
// writes one file per format.
func (c *CLI) runRender(ctx context.Context, input string, stdin io.Reader, out io.Writer, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	doc, err := loadDocument(input, stdin)
	if err != nil {
		return err
	}
	prog.lap("loaded document", "shapes", len(doc.Shapes), "connections", len(doc.Connections))

	theme, err := loadTheme(opts.theme)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()

	result, err := runner.Execute(ctx, doc, pipeline.Options{
		Formats:  opts.formats,
		Theme:    theme,
		Padding:  opts.padding,
		Outlines: opts.outlines,
		Detailed: opts.detailed,
		Refresh:  opts.refresh,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	paths, err := writeArtifacts(result.Artifacts, opts.formats, input, opts.output)
	if err != nil {
		return err
	}
	prog.done("rendered", "formats", len(paths), "cached", result.CacheHit)

	con := newConsole(out)
	con.success("Rendered %s", input)
	for _, p := range paths {
		con.file(p)
	}
	con.stats(result.Stats.Shapes, result.Stats.Connections, result.CacheHit)
	if input != "-" {
		con.next("Inspect outlines", "drawkit inspect "+input)
	}
	return nil
}

// writeArtifacts writes one file per format and returns the written paths in
// format order.
func writeArtifacts(artifacts map[string][]byte, formats []string, input, output string) ([]string, error) {
	base := basePath(output, input)
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := base + pipeline.Extension(format)
		if len(formats) == 1 && output != "" {
			path = output
		}
		if err := writeFile(path, artifacts[format]); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input ("diagram" for
// stdin). A known format extension on output is stripped as well.
func basePath(output, input string) string {
	if output == "" {
		if input == "-" {
			return "diagram"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	if strings.HasSuffix(output, pipeline.Extension(pipeline.FormatDOTSVG)) {
		return strings.TrimSuffix(output, pipeline.Extension(pipeline.FormatDOTSVG))
	}
	ext := filepath.Ext(output)
	if slices.Contains(pipeline.ValidFormats, strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
