package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TableColumn represents a column in the table
type TableColumn struct {
	Header string
	Width  int // minimum width; content may widen it
	Right  bool
}

// Table renders tabular data with header, separator, and alternating rows
type Table struct {
	Columns []TableColumn
	Rows    [][]string
}

// NewTable creates a new table with specified columns
func NewTable(columns []TableColumn) *Table {
	return &Table{Columns: columns}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells []string) {
	t.Rows = append(t.Rows, cells)
}

// Render renders the table as a string
func (t *Table) Render() string {
	if len(t.Columns) == 0 {
		return ""
	}

	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = len(col.Header)
		if col.Width > widths[i] {
			widths[i] = col.Width
		}
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = pad(col.Header, widths[i], false)
	}
	b.WriteString(StyleTableHeader.Render(strings.Join(header, "  ")))
	b.WriteString("\n")

	sep := make([]string, len(t.Columns))
	for i := range t.Columns {
		sep[i] = strings.Repeat("─", widths[i])
	}
	b.WriteString(StyleTableBorder.Render(strings.Join(sep, "  ")))
	b.WriteString("\n")

	for idx, row := range t.Rows {
		cells := make([]string, len(t.Columns))
		for i := range t.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = pad(cell, widths[i], t.Columns[i].Right)
		}

		var style lipgloss.Style
		if idx%2 == 0 {
			style = StyleTableRow
		} else {
			style = StyleTableRowAlt
		}
		b.WriteString(style.Render(strings.Join(cells, "  ")))
		b.WriteString("\n")
	}

	return b.String()
}

func pad(s string, width int, right bool) string {
	if len(s) >= width {
		return s
	}
	fill := strings.Repeat(" ", width-len(s))
	if right {
		return fill + s
	}
	return s + fill
}
