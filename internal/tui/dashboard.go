package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/studiodesk/internal/store"
	"github.com/sadopc/studiodesk/internal/view"
)

type dashboardModel struct {
	state  *view.DashboardState
	period periodPicker
	width  int
	height int

	chart barchart.Model
}

func newDashboardModel(c *store.Catalog) *dashboardModel {
	d := &dashboardModel{state: view.NewDashboardState(c)}
	d.buildChart()
	return d
}

func (d *dashboardModel) setSize(w, h int) {
	d.width = w
	d.height = h
	d.buildChart()
}

func (d *dashboardModel) capturing() bool { return d.period.open() }

func (d *dashboardModel) update(msg tea.Msg) tea.Cmd {
	if handled, cmd := d.period.handle(msg, &d.state.PeriodState); handled {
		return cmd
	}
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.Member) {
		d.state.CycleMember()
	}
	return nil
}

func (d *dashboardModel) buildChart() {
	chartWidth := d.width/2 - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if d.height > 36 {
		chartHeight = 14
	}
	d.chart = barchart.New(chartWidth, chartHeight)

	style := fg(colorBrand)
	var bars []barchart.BarData
	for _, wh := range d.state.WeeklyHours() {
		bars = append(bars, barchart.BarData{
			Label:  wh.Day,
			Values: []barchart.BarValue{{Name: wh.Day, Value: wh.Hours, Style: style}},
		})
	}
	d.chart.PushAll(bars)
	d.chart.Draw()
}

func (d *dashboardModel) view() string {
	if d.width < 20 {
		return "Terminal too small"
	}
	w := d.width - 4
	if d.period.open() {
		return d.period.view(w)
	}

	st := d.state.Stats()
	header := lipgloss.JoinHorizontal(lipgloss.Bottom, titleStyle.Render("Dashboard"), "  ", periodTabs(d.state.PeriodState))
	stats := statRow(w-4,
		[2]string{"Total Hours", formatHours(st.TotalHours)},
		[2]string{"Active Projects", fmt.Sprintf("%d", st.ActiveProjects)},
		[2]string{"Team Members", fmt.Sprintf("%d", st.TeamMembers)},
		[2]string{"Avg Hours/Day", fmt.Sprintf("%.1f", st.AvgHoursPerDay)},
		[2]string{"Earnings", money(st.TotalEarnings)},
		[2]string{"Expenses", money(st.TotalExpenses)},
	)

	half := w/2 - 1
	chartPanel := panelStyle.Width(half).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Weekly Hours"), d.chart.View(),
	))
	projectPanel := panelStyle.Width(half).Render(d.renderProjectHours(half - 6))
	middle := lipgloss.JoinHorizontal(lipgloss.Top, chartPanel, projectPanel)

	team := panelStyle.Width(half).Render(d.renderTeam())
	fin := panelStyle.Width(half).Render(d.renderFinances())
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, team, fin)

	return lipgloss.JoinVertical(lipgloss.Left,
		header, stats, middle, bottom,
		mutedStyle.Render("  p: period  d: custom range  m: member"),
	)
}

func (d *dashboardModel) renderProjectHours(w int) string {
	rows := []string{titleStyle.Render("Hours by Project")}
	barWidth := w - 30
	if barWidth < 5 {
		barWidth = 5
	}
	for _, p := range d.state.ProjectHours() {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color))
		filled := barWidth * p.Percentage / 100
		bar := dot.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", barWidth-filled))
		rows = append(rows, fmt.Sprintf("%-18s %s %s", truncate(p.Name, 18), bar, formatHours(p.Hours)))
	}
	rows = append(rows, "", titleStyle.Render("Work Types"))
	for _, wt := range d.state.WorkTypes() {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(wt.Color)).Render("●")
		rows = append(rows, fmt.Sprintf("%s %-12s %s", dot, wt.Name, formatHours(wt.Hours)))
	}
	return strings.Join(rows, "\n")
}

func (d *dashboardModel) renderTeam() string {
	title := "Team Performance"
	if d.state.SelectedMember != 0 {
		title += mutedStyle.Render(" (filtered)")
	}
	var rows [][]string
	for _, m := range d.state.TeamPerformance() {
		rows = append(rows, []string{
			m.Initials,
			m.Name,
			formatHours(m.Hours),
			fmt.Sprintf("%d", m.Projects),
			fmt.Sprintf("%d%%", m.Efficiency),
			money(m.Earnings),
		})
	}
	cols := []column{
		{title: "", width: 3},
		{title: "Name", width: 14},
		{title: "Hours", width: 6, right: true},
		{title: "Proj", width: 4, right: true},
		{title: "Eff", width: 4, right: true},
		{title: "Earned", width: 8, right: true},
	}
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), renderTable(cols, rows, -1))
}

func (d *dashboardModel) renderFinances() string {
	e := d.state.Earnings()
	x := d.state.Expenses()
	line := func(label string, amount int64) string {
		return fmt.Sprintf("  %-14s %12s", label, money(amount))
	}
	return strings.Join([]string{
		titleStyle.Render("Earnings"),
		line("Total", e.Total),
		fmt.Sprintf("  %-14s %12s", "Hours worked", formatHours(e.HoursWorked)),
		line("Hourly rate", e.HourlyRate),
		line("Bonus", e.Bonus),
		"",
		titleStyle.Render("Expenses"),
		line("Salaries", x.Salaries),
		line("Software", x.Software),
		line("Office", x.Office),
		line("Other", x.Other),
		line("Total", x.Total),
	}, "\n")
}
