package stats

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type column struct {
	title string
	right bool
}

// renderTable pads every cell to its column's widest value. Missing trailing
// cells render blank.
func renderTable(cols []column, rows [][]string) []string {
	if len(cols) == 0 {
		return nil
	}
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = runewidth.StringWidth(c.title)
	}
	for _, row := range rows {
		for i := range cols {
			if w := runewidth.StringWidth(cell(row, i)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.title
	}
	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, renderRow(cols, widths, titles))
	for _, row := range rows {
		lines = append(lines, renderRow(cols, widths, row))
	}
	return lines
}

func renderRow(cols []column, widths []int, row []string) string {
	cells := make([]string, len(cols))
	for i, c := range cols {
		value := cell(row, i)
		pad := strings.Repeat(" ", max(0, widths[i]-runewidth.StringWidth(value)))
		if c.right {
			cells[i] = pad + value
		} else {
			cells[i] = value + pad
		}
	}
	return strings.TrimRight(strings.Join(cells, " "), " ")
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
