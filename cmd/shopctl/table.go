package main

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// table renders static rows as padded, pipe-separated columns
type table struct {
	headers []string
	rows    [][]string
}

func newTable(headers ...string) *table {
	return &table{headers: headers}
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// render writes the table to w. Styling follows the color profile of w,
// so files and pipes receive plain text.
func (t *table) render(w io.Writer) error {
	re := lipgloss.NewRenderer(w)

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(colWidths) && lipgloss.Width(cell) > colWidths[i] {
				colWidths[i] = lipgloss.Width(cell)
			}
		}
	}
	// lipgloss Width includes padding
	for i := range colWidths {
		colWidths[i] += 2
	}

	headerStyle := re.NewStyle().Bold(true).Padding(0, 1)
	rowStyle := re.NewStyle().Padding(0, 1)
	sepStyle := re.NewStyle().Faint(true)

	var sb strings.Builder
	writeRow := func(style lipgloss.Style, cells []string) {
		for i, cell := range cells {
			if i >= len(colWidths) {
				break
			}
			if i > 0 {
				sb.WriteString(sepStyle.Render("|"))
			}
			sb.WriteString(style.Width(colWidths[i]).Render(cell))
		}
		sb.WriteString("\n")
	}

	writeRow(headerStyle, t.headers)

	totalWidth := len(colWidths) - 1
	for _, cw := range colWidths {
		totalWidth += cw
	}
	sb.WriteString(sepStyle.Render(strings.Repeat("-", totalWidth)) + "\n")

	for _, row := range t.rows {
		writeRow(rowStyle, row)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
