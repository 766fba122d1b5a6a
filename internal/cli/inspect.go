package cli

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/drawkit/pkg/pipeline"
)

// inspectCommand creates the inspect command, an interactive browser over
// the elements of a document.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "Browse elements, their renderers and outlines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func (c *CLI) runInspect(ctx context.Context, input string, stdin io.Reader, w io.Writer) error {
	logger := loggerFromContext(ctx)

	doc, err := loadDocument(input, stdin)
	if err != nil {
		return err
	}
	paths, err := pipeline.NewRunner(nil, nil, logger).Paths(doc)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("%s · %d shapes, %d connections", input, len(doc.Shapes), len(doc.Connections))
	p := tea.NewProgram(NewElementListModel(title, paths),
		tea.WithContext(ctx),
		tea.WithOutput(w),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
