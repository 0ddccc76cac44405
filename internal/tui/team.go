package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/studiodesk/internal/store"
	"github.com/sadopc/studiodesk/internal/view"
)

type teamModel struct {
	listBase
	state *view.TeamState
}

func newTeamModel(c *store.Catalog, pageSize int) *teamModel {
	return &teamModel{listBase: newListBase(false), state: view.NewTeamState(c, pageSize)}
}

func (m *teamModel) update(msg tea.Msg) tea.Cmd {
	page := m.state.Page()
	_, cmd := m.handle(msg, m.state, page.TotalPages, len(page.Items))
	return cmd
}

func (m *teamModel) view() string {
	page := m.state.Page()
	rows := make([][]string, len(page.Items))
	for i, t := range page.Items {
		rows[i] = []string{
			t.Initials,
			t.Name,
			t.Role,
			fmt.Sprintf("%s/%s", money(t.Rate), rateUnit(t.RateType)),
			formatHours(t.TotalHours),
			money(t.Salary),
		}
	}
	cols := []column{
		{title: "", width: 3},
		{title: "Name", width: 18},
		{title: "Role", width: 20},
		{title: "Rate", width: 12, right: true},
		{title: "Hours", width: 8, right: true},
		{title: "Salary", width: 10, right: true},
	}

	totals := m.state.Totals()
	first, last := page.Range()
	return m.panel(
		titleStyle.Render("Team"),
		statRow(m.width-8,
			[2]string{"Members", fmt.Sprintf("%d", page.Total)},
			[2]string{"Total Hours", formatHours(totals.Hours)},
			[2]string{"Total Salaries", money(totals.Salaries)},
		),
		m.bar.view(m.state, false),
		"",
		renderTable(cols, rows, clampCursor(m.cursor, len(rows))),
		"",
		pagerLine(page.Page, page.TotalPages, first, last, page.Total),
	)
}

func rateUnit(rateType string) string {
	if rateType == "monthly" {
		return "mo"
	}
	return "hr"
}
