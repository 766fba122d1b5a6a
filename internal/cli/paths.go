package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/drawkit/pkg/pipeline"
	"github.com/matzehuels/drawkit/pkg/svg"
)

// pathsCommand creates the paths command, which prints the outline of every
// element without drawing anything.
func (c *CLI) pathsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "paths [file]",
		Short: "Print the outline path of every element",
		Long: `Print the outline path of every element as SVG path data.

Shape outlines are closed rectangles at the shape position. Connection
outlines pass through the original position of docked waypoints.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPaths(cmd.Context(), args[0], cmd.InOrStdin(), cmd.OutOrStdout(), asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")

	return cmd
}

func (c *CLI) runPaths(ctx context.Context, input string, stdin io.Reader, w io.Writer, asJSON bool) error {
	logger := loggerFromContext(ctx)

	doc, err := loadDocument(input, stdin)
	if err != nil {
		return err
	}

	paths, err := pipeline.NewRunner(nil, nil, logger).Paths(doc)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(paths)
	}
	_, err = fmt.Fprintln(w, pathsTable(paths))
	return err
}

// pathsTable renders outlines as a bordered table. Paths are printed in
// full so the output can be copied.
func pathsTable(paths []pipeline.ElementPath) string {
	rows := make([][]string, 0, len(paths))
	for _, p := range paths {
		rows = append(rows, []string{p.ID, p.Kind, p.Renderer, formatBounds(p), p.Path})
	}
	rendererCol := lipgloss.NewStyle().Foreground(colorAccent)
	return newTable([]string{"ID", "Kind", "Renderer", "Bounds", "Path"}, rows,
		func(_, col int) lipgloss.Style {
			if col == 2 {
				return rendererCol
			}
			return lipgloss.NewStyle()
		}).Render()
}

// formatBounds renders "x,y wxh", or a dash for elements without
// an outline.
func formatBounds(p pipeline.ElementPath) string {
	if p.Bounds == nil {
		return "—"
	}
	b := p.Bounds
	return fmt.Sprintf("%s,%s %sx%s", svg.Num(b.X), svg.Num(b.Y), svg.Num(b.W), svg.Num(b.H))
}
