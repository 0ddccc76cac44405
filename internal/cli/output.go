package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/sadopc/studiodesk/internal/store"
	"github.com/sadopc/studiodesk/internal/view"
)

var (
	styleHeader = lipgloss.NewStyle().Foreground(lipgloss.Color("#7AA2F7")).Bold(true)
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// pageJSON is the json shape of one page of a listing.
type pageJSON[T any] struct {
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	Total      int `json:"total"`
	Items      []T `json:"items"`
}

type financeJSON struct {
	Summary view.Summary                 `json:"summary"`
	Records pageJSON[view.FinanceRecord] `json:"records"`
}

func writeFinanceJSON(w io.Writer, sum view.Summary, page view.Page[view.FinanceRecord]) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(financeJSON{
		Summary: sum,
		Records: pageJSON[view.FinanceRecord]{
			Page:       page.Page,
			TotalPages: page.TotalPages,
			Total:      page.Total,
			Items:      page.Items,
		},
	})
}

// writePage prints one page of a listing as a table or as json.
func writePage[T any](w io.Writer, format string, page view.Page[T], headers []string, row func(T) []string) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(pageJSON[T]{
			Page:       page.Page,
			TotalPages: page.TotalPages,
			Total:      page.Total,
			Items:      page.Items,
		})
	}

	if page.Total == 0 {
		_, err := fmt.Fprintln(w, "No results.")
		return err
	}
	rows := make([][]string, len(page.Items))
	for i, it := range page.Items {
		rows[i] = row(it)
	}
	first, last := page.Range()
	_, err := fmt.Fprintf(w, "%s\n%s\n", renderTable(headers, rows),
		styleDim.Render(fmt.Sprintf("Page %d of %d · %d-%d of %d", page.Page, page.TotalPages, first, last, page.Total)))
	return err
}

// renderTable renders an aligned table with a header separator line.
// Columns are padded to the widest cell, measured by visible width.
func renderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	const colGap = 2

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	line := func(cells []string, style func(string) string) {
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(style(cell))
			if i < len(headers)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+colGap))
			}
		}
		b.WriteString("\n")
	}

	line(headers, func(s string) string { return styleHeader.Render(s) })
	seps := make([]string, len(widths))
	for i, w := range widths {
		seps[i] = strings.Repeat("─", w)
	}
	line(seps, func(s string) string { return styleDim.Render(s) })
	for _, row := range rows {
		line(row, func(s string) string { return s })
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func money(amount int64) string {
	if amount < 0 {
		return "-$" + humanize.Comma(-amount)
	}
	return "$" + humanize.Comma(amount)
}

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(view.DateLayout)
}

// writeOverview prints the dashboard figures for a non-interactive run.
func writeOverview(w io.Writer, c *store.Catalog) error {
	st := view.NewDashboardState(c).Stats()
	sum := view.NewFinanceState(c, 0).Summary()
	rows := [][]string{
		{"Total hours", fmt.Sprintf("%.1f", st.TotalHours)},
		{"Active projects", fmt.Sprintf("%d", st.ActiveProjects)},
		{"Team members", fmt.Sprintf("%d", st.TeamMembers)},
		{"Avg hours/day", fmt.Sprintf("%.1f", st.AvgHoursPerDay)},
		{"Earnings", money(st.TotalEarnings)},
		{"Expenses", money(st.TotalExpenses)},
		{"Income", money(sum.TotalIncome)},
		{"Profit", money(sum.Profit)},
		{"Waiting", money(sum.AmountWaiting)},
	}
	_, err := fmt.Fprintf(w, "%s\n\n%s\n", renderTable([]string{"Overview", ""}, rows),
		styleDim.Render("Run in a terminal for the dashboard, or see studiodesk --help."))
	return err
}
