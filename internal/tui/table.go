package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type column struct {
	title string
	width int
	right bool
	// style colours a cell by its text. Nil renders it plain.
	style func(string) lipgloss.Style
}

// renderTable lays rows out in fixed width columns. The row at cursor is
// highlighted; pass -1 for none.
func renderTable(cols []column, rows [][]string, cursor int) string {
	var b strings.Builder

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = pad(c.title, c.width, c.right)
	}
	b.WriteString(tableHeaderStyle.Render("  " + strings.Join(header, " ")))

	for r, row := range rows {
		b.WriteString("\n")
		prefix, style := "  ", normalItemStyle
		if r == cursor {
			prefix, style = "> ", selectedItemStyle
		}
		cells := make([]string, len(cols))
		for i, c := range cols {
			text := ""
			if i < len(row) {
				text = row[i]
			}
			cell := pad(truncate(text, c.width), c.width, c.right)
			switch {
			case r == cursor:
				cells[i] = style.Render(cell)
			case c.style != nil:
				cells[i] = c.style(text).Render(cell)
			default:
				cells[i] = style.Render(cell)
			}
		}
		b.WriteString(style.Render(prefix) + strings.Join(cells, " "))
	}
	return b.String()
}

func pad(s string, width int, right bool) string {
	if right {
		return fmt.Sprintf("%*s", width, s)
	}
	return fmt.Sprintf("%-*s", width, s)
}

// pagerLine describes the current page, e.g. "Page 1 of 2 · 1-10 of 14".
func pagerLine(page, totalPages, first, last, total int) string {
	if total == 0 {
		return mutedStyle.Render("  No results")
	}
	if totalPages == 0 {
		totalPages = 1
	}
	return mutedStyle.Render(fmt.Sprintf("  Page %d of %d · %d-%d of %d", page, totalPages, first, last, total))
}

// statCard renders a small labelled figure.
func statCard(label, value string, width int) string {
	return cardStyle.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, statLabelStyle.Render(label), statValueStyle.Render(value)),
	)
}

// statRow joins cards horizontally, splitting w between them.
func statRow(w int, cards ...[2]string) string {
	if len(cards) == 0 {
		return ""
	}
	cw := w/len(cards) - 2
	if cw < 12 {
		cw = 12
	}
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = statCard(c[0], c[1], cw)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// clampCursor keeps a row cursor inside a list of n rows.
func clampCursor(cursor, n int) int {
	if cursor >= n {
		cursor = n - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}
