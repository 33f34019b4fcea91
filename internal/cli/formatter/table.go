package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const tableColGap = 2

// RenderTable renders a simple aligned table with a header separator line.
// Column widths track the widest visible cell, measured with lipgloss so
// ANSI escapes do not skew the alignment.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder

	writeCell := func(col int, cell string, last bool) {
		b.WriteString(cell)
		if !last {
			pad := widths[col] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(strings.Repeat(" ", pad+tableColGap))
		}
	}

	for i, h := range headers {
		writeCell(i, StyleHeader.Render(h), i == len(headers)-1)
	}
	b.WriteString("\n")

	for i, w := range widths {
		writeCell(i, StyleDim.Render(strings.Repeat("─", w)), i == len(widths)-1)
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := range widths {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			writeCell(i, cell, i == len(widths)-1)
		}
		b.WriteString("\n")
	}

	return b.String()
}
