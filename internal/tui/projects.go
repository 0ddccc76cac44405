package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/studiodesk/internal/log"
	"github.com/sadopc/studiodesk/internal/store"
	"github.com/sadopc/studiodesk/internal/view"
)

// projectsMode is the part of the projects screen on show.
type projectsMode int

const (
	projectsList projectsMode = iota
	projectsIssues
	projectsEntries
)

var projectsModeNames = []string{"Projects", "All Issues", "Time Entries"}

type projectsModel struct {
	listBase
	state   *view.ProjectsState
	catalog *store.Catalog
	logger  *log.Logger
	mode    projectsMode

	// The time entry table has its own filter bar and state.
	entries listBase
}

func newProjectsModel(c *store.Catalog, pageSize int, logger *log.Logger) *projectsModel {
	return &projectsModel{
		listBase: newListBase(false),
		state:    view.NewProjectsState(c, pageSize),
		catalog:  c,
		logger:   logger,
		entries:  newListBase(true),
	}
}

func (p *projectsModel) setSize(w, h int) {
	p.listBase.setSize(w, h)
	p.entries.setSize(w, h)
}

func (p *projectsModel) capturing() bool {
	return p.listBase.capturing() || p.entries.capturing()
}

func (p *projectsModel) update(msg tea.Msg) tea.Cmd {
	defer func() { p.state.DialogOpen = p.dialog != nil }()

	if p.state.Selected != nil {
		if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.Back) {
			p.state.Deselect()
		}
		return nil
	}

	if p.dialog != nil {
		_, cmd := p.handle(msg, p.state, 1, 0)
		return cmd
	}

	switch p.mode {
	case projectsList:
		if handled, cmd := p.handle(msg, p.state, 1, len(p.state.Projects())); handled {
			return cmd
		}
	case projectsEntries:
		page := p.state.TimeEntriesPage()
		if handled, cmd := p.entries.handle(msg, p.state.EntriesLister(), page.TotalPages, len(page.Items)); handled {
			return cmd
		}
	case projectsIssues:
		if msg, ok := msg.(tea.KeyMsg); ok && p.updateIssues(msg) {
			return nil
		}
	}

	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case msgKey.String() == "i":
		p.mode = projectsIssues
		p.cursor = 0
	case msgKey.String() == "t":
		p.mode = projectsEntries
		p.cursor = 0
	case msgKey.String() == "P", key.Matches(msgKey, keys.Back):
		p.mode = projectsList
		p.cursor = 0
	case key.Matches(msgKey, keys.Enter) && p.mode == projectsList:
		projects := p.state.Projects()
		if len(projects) > 0 {
			p.state.Select(projects[clampCursor(p.cursor, len(projects))].ID)
		}
	case key.Matches(msgKey, keys.New):
		return p.openDialog(newDraftDialog("project", "New Project", p.logger,
			draftField{key: "name", title: "Project name", validate: required("Project name")},
			draftField{key: "client", title: "Client", options: view.Pluck(p.catalog.Clients, func(c store.Client) string { return c.Name })},
			draftField{key: "budget", title: "Budget", validate: positiveAmount},
		))
	}
	return nil
}

func (p *projectsModel) updateIssues(msg tea.KeyMsg) bool {
	page := p.state.IssuesPage()
	switch {
	case key.Matches(msg, keys.PrevPage):
		if p.state.IssuePage > 1 {
			p.state.IssuePage--
		}
	case key.Matches(msg, keys.NextPage):
		if p.state.IssuePage < page.TotalPages {
			p.state.IssuePage++
		}
	case key.Matches(msg, keys.Up):
		p.cursor = clampCursor(p.cursor-1, len(page.Items))
	case key.Matches(msg, keys.Down):
		p.cursor = clampCursor(p.cursor+1, len(page.Items))
	default:
		return false
	}
	return true
}

func (p *projectsModel) view() string {
	if o := p.overlay(); o != "" {
		return o
	}
	if o := p.entries.overlay(); o != "" {
		return o
	}
	if p.state.Selected != nil {
		return p.renderDetail(*p.state.Selected)
	}

	var tabs []string
	for i, name := range projectsModeNames {
		if projectsMode(i) == p.mode {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	switch p.mode {
	case projectsIssues:
		return p.panel(header, "", p.renderIssues())
	case projectsEntries:
		return p.panel(header, "", p.renderEntries())
	}
	return p.panel(header, "", p.renderProjectList())
}

func (p *projectsModel) renderProjectList() string {
	projects := p.state.Projects()
	rows := make([][]string, len(projects))
	for i, pr := range projects {
		rows[i] = []string{
			pr.Name,
			pr.Client,
			fmt.Sprintf("%d%%", pr.Progress),
			formatHours(pr.Hours),
			fmt.Sprintf("%s / %s", money(pr.Spent), money(pr.Budget)),
			pr.Status,
		}
	}
	cols := []column{
		{title: "Name", width: 22},
		{title: "Client", width: 16},
		{title: "Progress", width: 8, right: true},
		{title: "Hours", width: 8, right: true},
		{title: "Spent / Budget", width: 20, right: true},
		{title: "Status", width: 8, style: statusStyle},
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		p.bar.view(p.state, false),
		"",
		renderTable(cols, rows, clampCursor(p.cursor, len(rows))),
		"",
		mutedStyle.Render("  enter: details  n: new project  i: issues  t: time entries  /: search  f/←/→: filter"),
	)
}

func (p *projectsModel) renderIssues() string {
	page := p.state.IssuesPage()
	rows := make([][]string, len(page.Items))
	for i, is := range page.Items {
		rows[i] = []string{
			is.ID,
			is.Title,
			is.ProjectName,
			is.WorkTypeName(),
			is.Assignee,
			fmt.Sprintf("%.1f / %.1f", is.ActualTime, is.Estimate),
			is.Status,
		}
	}
	cols := []column{
		{title: "ID", width: 8},
		{title: "Title", width: 26},
		{title: "Project", width: 18},
		{title: "Type", width: 12},
		{title: "Assignee", width: 14},
		{title: "Actual/Est", width: 11, right: true},
		{title: "Status", width: 11, style: statusStyle},
	}
	first, last := page.Range()
	return lipgloss.JoinVertical(lipgloss.Left,
		renderTable(cols, rows, clampCursor(p.cursor, len(rows))),
		"",
		pagerLine(page.Page, page.TotalPages, first, last, page.Total),
		mutedStyle.Render("  [/]: page  P: projects  t: time entries"),
	)
}

func (p *projectsModel) renderEntries() string {
	page := p.state.TimeEntriesPage()
	rows := make([][]string, len(page.Items))
	for i, e := range page.Items {
		rows[i] = []string{
			formatDate(e.Date),
			e.ProjectName,
			e.MemberName,
			formatHours(e.Hours),
			e.Description,
			strings.Join(e.IssueIDs, ", "),
		}
	}
	cols := []column{
		{title: "Date", width: 12},
		{title: "Project", width: 18},
		{title: "Member", width: 14},
		{title: "Hours", width: 6, right: true},
		{title: "Description", width: 26},
		{title: "Issues", width: 16},
	}
	first, last := page.Range()
	return lipgloss.JoinVertical(lipgloss.Left,
		p.entries.bar.view(p.state.EntriesLister(), true),
		"",
		renderTable(cols, rows, clampCursor(p.entries.cursor, len(rows))),
		"",
		pagerLine(page.Page, page.TotalPages, first, last, page.Total),
		mutedStyle.Render("  d: dates  /: search  f/←/→: filter  c: clear  [/]: page  P: projects  i: issues"),
	)
}

func (p *projectsModel) renderDetail(pr store.Project) string {
	rows := []string{
		titleStyle.Render(pr.Name) + mutedStyle.Render("  "+pr.Client),
		"",
		statRow(p.width-8,
			[2]string{"Progress", fmt.Sprintf("%d%%", pr.Progress)},
			[2]string{"Hours", formatHours(pr.Hours)},
			[2]string{"Budget", money(pr.Budget)},
			[2]string{"Spent", money(pr.Spent)},
		),
		"",
		titleStyle.Render("Work Types"),
	}
	for _, wt := range pr.WorkTypes {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(wt.Color)).Render("●")
		rows = append(rows, fmt.Sprintf("  %s %-14s %s", dot, wt.Name, formatHours(wt.Hours)))
	}

	rows = append(rows, "", titleStyle.Render("Issues"))
	if len(pr.Issues) == 0 {
		rows = append(rows, mutedStyle.Render("  No issues"))
	}
	for _, is := range pr.Issues {
		variance := is.Variance()
		v := successStyle.Render(fmt.Sprintf("%+.1fh", variance))
		if variance > 0 {
			v = errorStyle.Render(fmt.Sprintf("%+.1fh", variance))
		}
		rows = append(rows, fmt.Sprintf("  %-8s %-28s %s  %s",
			is.ID, truncate(is.Title, 28), statusStyle(is.Status).Render(fmt.Sprintf("%-11s", is.Status)), v))
	}
	rows = append(rows, "", mutedStyle.Render("  esc: back"))
	return p.panel(rows...)
}
