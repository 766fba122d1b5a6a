package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Palette. ANSI 256 codes so the output reads well on dark and light
// terminals alike.
var (
	colorAccent = lipgloss.Color("170") // magenta, matches the default stroke
	colorOK     = lipgloss.Color("78")
	colorWarn   = lipgloss.Color("214")
	colorLink   = lipgloss.Color("111")
	colorValue  = lipgloss.Color("253")
	colorSubtle = lipgloss.Color("247")
	colorMuted  = lipgloss.Color("243")
)

// Styles shared with the TUI and the paths table.
var (
	StyleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	StyleLink    = lipgloss.NewStyle().Foreground(colorLink).Underline(true)
	StyleDim     = lipgloss.NewStyle().Foreground(colorMuted)
	StyleValue   = lipgloss.NewStyle().Foreground(colorValue)
	StyleWarning = lipgloss.NewStyle().Foreground(colorWarn)
)

var (
	styleOK      = lipgloss.NewStyle().Foreground(colorOK)
	styleCommand = lipgloss.NewStyle().Foreground(colorLink)
	styleHeader  = lipgloss.NewStyle().Foreground(colorSubtle).Bold(true)
)

const separator = " · "

// console writes human-oriented status lines. Commands build one from
// cmd.OutOrStdout() so tests can capture what they print.
type console struct {
	w io.Writer
}

func newConsole(w io.Writer) console {
	if w == nil {
		w = io.Discard
	}
	return console{w: w}
}

func (c console) line(icon lipgloss.Style, mark, msg string) {
	fmt.Fprintln(c.w, icon.Render(mark)+" "+msg)
}

func (c console) success(format string, args ...any) {
	c.line(styleOK, "✓", fmt.Sprintf(format, args...))
}

func (c console) warn(format string, args ...any) {
	c.line(StyleWarning, "!", StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func (c console) info(format string, args ...any) {
	c.line(StyleDim, "›", fmt.Sprintf(format, args...))
}

// detail prints an indented, muted line under the previous message.
func (c console) detail(format string, args ...any) {
	fmt.Fprintln(c.w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// file prints one written output path.
func (c console) file(path string) {
	fmt.Fprintln(c.w, "  "+StyleDim.Render("→")+" "+StyleValue.Render(path))
}

// stats prints the element counts and whether the artifacts came from the
// cache, e.g. "2 shapes · 1 connections · cached".
func (c console) stats(shapes, connections int, cached bool) {
	status := StyleDim.Render("fresh")
	if cached {
		status = styleOK.Render("cached")
	}
	parts := []string{
		StyleDim.Render(fmt.Sprintf("%d shapes", shapes)),
		StyleDim.Render(fmt.Sprintf("%d connections", connections)),
		status,
	}
	fmt.Fprintln(c.w, "  "+strings.Join(parts, StyleDim.Render(separator)))
}

// next suggests a follow-up command.
func (c console) next(label, command string) {
	fmt.Fprintln(c.w, StyleDim.Render(label+":")+" "+styleCommand.Render(command))
}

// newTable returns a rounded table with bold headers. cell styles body
// cells; its row index is 0-based over rows.
func newTable(headers []string, rows [][]string, cell func(row, col int) lipgloss.Style) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return cell(row, col)
		})
}
