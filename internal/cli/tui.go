package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/drawkit/pkg/pipeline"
)

var (
	detailKeyStyle = lipgloss.NewStyle().Foreground(colorSubtle).Width(10)
	selectedStyle  = lipgloss.NewStyle().Foreground(colorOK).Bold(true)
)

// maxPathWidth truncates outline paths in the list; the detail pane shows
// them in full.
const maxPathWidth = 48

// ElementListModel is the bubbletea model for browsing element outlines.
type ElementListModel struct {
	Title    string
	Elements []pipeline.ElementPath
	Cursor   int
	Height   int
	Offset   int
	Detail   bool // show the full outline of the element under the cursor
}

// NewElementListModel creates a new element list model.
func NewElementListModel(title string, elements []pipeline.ElementPath) ElementListModel {
	return ElementListModel{
		Title:    title,
		Elements: elements,
		Height:   15,
	}
}

func (m ElementListModel) Init() tea.Cmd {
	return nil
}

func (m ElementListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Elements)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", " ":
			m.Detail = !m.Detail
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 12
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m ElementListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")

	if len(m.Elements) == 0 {
		b.WriteString(StyleDim.Render("  no elements"))
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(m.Elements) {
		end = len(m.Elements)
	}

	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		e := m.Elements[i]
		marker := "  "
		if i == m.Cursor {
			marker = "▸ "
		}
		rows = append(rows, []string{marker, e.ID, e.Kind, e.Renderer, formatBounds(e), truncate(e.Path, maxPathWidth)})
	}

	// Geometry columns stay muted; the selected row is highlighted.
	t := newTable([]string{"", "ID", "Kind", "Renderer", "Bounds", "Outline"}, rows,
		func(row, col int) lipgloss.Style {
			geometry := col >= 4
			switch {
			case m.Offset+row != m.Cursor && geometry:
				return StyleDim
			case m.Offset+row != m.Cursor:
				return lipgloss.NewStyle()
			case geometry:
				return styleHeader
			default:
				return selectedStyle
			}
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Elements))))

	if m.Detail {
		b.WriteString("\n\n")
		b.WriteString(m.detailView(m.Elements[m.Cursor]))
	}

	return b.String()
}

func (m ElementListModel) detailView(e pipeline.ElementPath) string {
	var b strings.Builder
	line := func(k, v string) {
		b.WriteString(detailKeyStyle.Render(k) + " " + StyleValue.Render(v) + "\n")
	}
	line("id", e.ID)
	if e.Type != "" {
		line("type", e.Type)
	}
	line("renderer", e.Renderer)
	line("bounds", formatBounds(e))
	if e.Path == "" {
		line("outline", "—")
	} else {
		line("outline", e.Path)
	}
	return b.String()
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
