package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/x88a9/edge-lab/internal/tui/styles"
)

// DataTable renders a cursor-navigable table. Cells are plain strings;
// callers pre-format numbers so the table stays dumb about types.
type DataTable struct {
	Columns []string
	Widths  []int
	Rows    [][]string
	Cursor  int
	Empty   string // shown when Rows is empty
}

// Render returns the styled table string.
func (t DataTable) Render() string {
	if len(t.Rows) == 0 {
		empty := t.Empty
		if empty == "" {
			empty = "nothing here yet"
		}
		return styles.Dim("  " + empty)
	}

	var b strings.Builder

	var headers []string
	for i, col := range t.Columns {
		headers = append(headers, pad(col, t.width(i)))
	}
	b.WriteString("  " + styles.TableHeader.Render(strings.Join(headers, "  ")))
	b.WriteString("\n")

	for r, row := range t.Rows {
		var cells []string
		for i, cell := range row {
			cells = append(cells, pad(cell, t.width(i)))
		}
		line := strings.Join(cells, "  ")

		style := styles.TableRow(r%2 == 0, r == t.Cursor)
		marker := "  "
		if r == t.Cursor {
			marker = styles.Amber("▸ ")
		}
		b.WriteString(marker + style.Render(line))
		if r < len(t.Rows)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (t DataTable) width(i int) int {
	if i < len(t.Widths) && t.Widths[i] > 0 {
		return t.Widths[i]
	}
	return 12
}

func pad(s string, width int) string {
	s = styles.TruncateWithEllipsis(s, width)
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// FormatFloat formats a float cell, em-dash for nil.
func FormatFloat(v *float64, format string) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf(format, *v)
}
