package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Column defines a table column with a header label and width.
type Column struct {
	Header string
	Width  int
}

// RenderTable renders rows as a fixed-width table with column headers.
// Cells wider than their column are truncated by display width.
func RenderTable(columns []Column, rows [][]string) string {
	var b strings.Builder

	writeRow := func(cells func(i int) string, style func(string) string) {
		for i, col := range columns {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(style(pad(cells(i), col.Width)))
		}
		b.WriteString("\n")
	}

	writeRow(func(i int) string { return columns[i].Header }, styleFunc(HeaderStyle))
	writeRow(func(i int) string { return strings.Repeat("─", columns[i].Width) }, styleFunc(DimStyle))

	for _, row := range rows {
		writeRow(func(i int) string {
			if i < len(row) {
				return row[i]
			}
			return ""
		}, func(s string) string { return s })
	}

	return b.String()
}

func styleFunc(style lipgloss.Style) func(string) string {
	return func(s string) string { return style.Render(s) }
}

func pad(s string, width int) string {
	s = runewidth.Truncate(s, width, "")
	return runewidth.FillRight(s, width)
}
