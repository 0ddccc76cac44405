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

type insightsModel struct {
	state  *view.InsightsState
	period periodPicker
	width  int
	height int

	chart barchart.Model
}

func newInsightsModel(c *store.Catalog) *insightsModel {
	m := &insightsModel{state: view.NewInsightsState(c)}
	m.buildChart()
	return m
}

func (r *insightsModel) setSize(w, h int) {
	r.width = w
	r.height = h
	r.buildChart()
}

func (r *insightsModel) capturing() bool { return r.period.open() }

func (r *insightsModel) update(msg tea.Msg) tea.Cmd {
	if handled, cmd := r.period.handle(msg, &r.state.PeriodState); handled {
		return cmd
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Member):
			r.state.CycleMember()
		case key.Matches(msg, keys.Project):
			r.state.CycleProject()
		}
	}
	return nil
}

// buildChart draws productivity by hour of day.
func (r *insightsModel) buildChart() {
	chartWidth := r.width/2 - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	r.chart = barchart.New(chartWidth, 10)

	var bars []barchart.BarData
	for _, h := range r.state.ProductiveHours() {
		color := colorGood
		switch {
		case h.Productivity < 60:
			color = colorBad
		case h.Productivity < 80:
			color = colorWarn
		}
		bars = append(bars, barchart.BarData{
			Label: strings.TrimSuffix(h.Hour, ":00"),
			Values: []barchart.BarValue{{
				Name:  h.Hour,
				Value: float64(h.Productivity),
				Style: fg(color),
			}},
		})
	}
	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r *insightsModel) view() string {
	w := r.width - 4
	if r.period.open() {
		return r.period.view(w)
	}

	st := r.state.Stats()
	header := lipgloss.JoinHorizontal(lipgloss.Bottom, titleStyle.Render("Insights"), "  ", periodTabs(r.state.PeriodState))
	stats := statRow(w-4,
		[2]string{"Active Hours", formatHours(st.TotalActiveHours)},
		[2]string{"Idle Hours", formatHours(st.TotalIdleHours)},
		[2]string{"Avg Productivity", fmt.Sprintf("%d%%", st.AvgProductivity)},
		[2]string{"Screenshots", fmt.Sprintf("%d", st.TotalScreenshots)},
	)

	half := w/2 - 1
	chart := panelStyle.Width(half).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Productivity by Hour"), r.chart.View(),
	))
	apps := panelStyle.Width(half).Render(r.renderApps(half - 6))
	middle := lipgloss.JoinHorizontal(lipgloss.Top, chart, apps)

	activity := panelStyle.Width(half).Render(r.renderActivity())
	projects := panelStyle.Width(half).Render(r.renderProjects())
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, activity, projects)

	return lipgloss.JoinVertical(lipgloss.Left,
		header, stats, middle, bottom,
		panelStyle.Width(w).Render(r.renderScreenshots()),
		mutedStyle.Render("  p: period  d: custom range  m: member  o: project"),
	)
}

func (r *insightsModel) renderActivity() string {
	var rows [][]string
	for _, m := range r.state.TeamActivity() {
		rows = append(rows, []string{
			m.Name,
			formatHours(m.ActiveHours),
			formatHours(m.IdleHours),
			fmt.Sprintf("%d%%", m.Productivity),
			strings.Join(m.TopApps, ", "),
		})
	}
	cols := []column{
		{title: "Member", width: 14},
		{title: "Active", width: 6, right: true},
		{title: "Idle", width: 5, right: true},
		{title: "Prod", width: 4, right: true},
		{title: "Top apps", width: 18},
	}
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Team Activity"), renderTable(cols, rows, -1))
}

func (r *insightsModel) renderProjects() string {
	var rows [][]string
	for _, p := range r.state.ProjectPerformance() {
		wt := p.WorkTypes
		rows = append(rows, []string{
			p.Name,
			formatHours(p.TotalHours),
			fmt.Sprintf("%d%%", p.Efficiency),
			fmt.Sprintf("%.0f/%.0f/%.0f/%.0f/%.0f", wt.Coding, wt.Managing, wt.Meeting, wt.Designing, wt.Research),
		})
	}
	cols := []column{
		{title: "Project", width: 18},
		{title: "Hours", width: 6, right: true},
		{title: "Eff", width: 4, right: true},
		{title: "Code/Mgmt/Meet/Des/Res", width: 22},
	}
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Project Performance"), renderTable(cols, rows, -1))
}

func (r *insightsModel) renderApps(w int) string {
	rows := []string{titleStyle.Render("App Usage")}
	barWidth := w - 28
	if barWidth < 5 {
		barWidth = 5
	}
	for _, a := range r.state.AppUsage() {
		filled := barWidth * a.Percentage / 100
		bar := highlightStyle.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", barWidth-filled))
		rows = append(rows, fmt.Sprintf("%-12s %s %s", truncate(a.Name, 12), bar, formatHours(a.Hours)))
	}
	rows = append(rows, "", titleStyle.Render("Work Types"))
	for _, wt := range r.state.WorkTypes() {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(wt.Color)).Render("●")
		rows = append(rows, fmt.Sprintf("%s %-12s %s", dot, wt.Name, formatHours(wt.Hours)))
	}
	return strings.Join(rows, "\n")
}

func (r *insightsModel) renderScreenshots() string {
	shots := r.state.Screenshots()
	if len(shots) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Recent Screenshots"), mutedStyle.Render("  None"))
	}
	var rows [][]string
	for _, s := range shots {
		rows = append(rows, []string{s.Timestamp, s.MemberName, s.Activity, fmt.Sprintf("%d%%", s.Productivity)})
	}
	cols := []column{
		{title: "Time", width: 8},
		{title: "Member", width: 16},
		{title: "Activity", width: 30},
		{title: "Prod", width: 4, right: true},
	}
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Recent Screenshots"), renderTable(cols, rows, -1))
}
