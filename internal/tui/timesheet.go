package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/sadopc/studiodesk/internal/log"
	"github.com/sadopc/studiodesk/internal/store"
	"github.com/sadopc/studiodesk/internal/view"
)

type timesheetModel struct {
	listBase
	state   *view.TimeTrackingState
	catalog *store.Catalog
	logger  *log.Logger
	timer   timerModel

	// Project picker state
	picking      bool
	pickerCursor int
	projects     []string
}

func newTimesheetModel(c *store.Catalog, pageSize int, logger *log.Logger) *timesheetModel {
	return &timesheetModel{
		listBase: newListBase(true),
		state:    view.NewTimeTrackingState(c, pageSize),
		catalog:  c,
		logger:   logger.WithComponent(log.ComponentTracker),
		timer:    newTimerModel(c.Setting("profile_name", "John Doe")),
		projects: view.Pluck(c.Projects, func(p store.Project) string { return p.Name }),
	}
}

func (m *timesheetModel) capturing() bool {
	return m.listBase.capturing() || m.picking
}

func (m *timesheetModel) update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tickMsg); ok {
		m.timer.tick()
		return nil
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		m.timer.recordActivity()
	}
	if m.picking {
		return m.updatePicker(msg)
	}

	page := m.state.Page()
	handled, cmd := m.handle(msg, m.state, page.TotalPages, len(page.Items))
	m.state.DialogOpen = m.dialog != nil
	if handled {
		return cmd
	}

	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(msgKey, keys.Start):
		if m.timer.running() {
			return nil
		}
		if len(m.projects) == 0 {
			return statusCmd("No projects to track", true)
		}
		if len(m.projects) == 1 {
			return m.startTimer(m.projects[0])
		}
		m.picking = true
		m.pickerCursor = 0
	case key.Matches(msgKey, keys.Stop):
		return m.stopTimer()
	case key.Matches(msgKey, keys.Pause):
		m.timer.toggle()
	case key.Matches(msgKey, keys.New):
		m.state.DialogOpen = true
		return m.openDialog(m.entryDialog())
	case msgKey.String() == "S":
		m.state.ScreenshotsEnabled = !m.state.ScreenshotsEnabled
		m.logger.Info("screenshots toggled", "enabled", m.state.ScreenshotsEnabled)
	case msgKey.String() == "M":
		m.state.ManualEditingEnabled = !m.state.ManualEditingEnabled
		m.logger.Info("manual editing toggled", "enabled", m.state.ManualEditingEnabled)
	}
	return nil
}

func (m *timesheetModel) updatePicker(msg tea.Msg) tea.Cmd {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(msgKey, keys.Up):
		if m.pickerCursor > 0 {
			m.pickerCursor--
		}
	case key.Matches(msgKey, keys.Down):
		if m.pickerCursor < len(m.projects)-1 {
			m.pickerCursor++
		}
	case key.Matches(msgKey, keys.Enter):
		m.picking = false
		return m.startTimer(m.projects[m.pickerCursor])
	case key.Matches(msgKey, keys.Back):
		m.picking = false
	}
	return nil
}

func (m *timesheetModel) startTimer(project string) tea.Cmd {
	m.timer.start(project)
	m.logger.Info("tracking started", "project", project)
	return statusCmd("Tracking "+project, false)
}

func (m *timesheetModel) stopTimer() tea.Cmd {
	elapsed := m.timer.currentElapsed()
	entry, ok := m.timer.stop()
	if !ok {
		return nil
	}
	id := uuid.NewString()
	m.logger.Info("draft discarded",
		log.FieldOperation, log.OpDraft,
		log.FieldDraftID, id,
		log.FieldKind, "time_entry",
		"project", entry.Project,
		"member", entry.Member,
		log.FieldDuration, entry.Duration,
	)
	project := entry.Project
	return func() tea.Msg { return trackingStoppedMsg{project: project, duration: elapsed} }
}

func (m *timesheetModel) entryDialog() *draftDialog {
	members := view.Pluck(m.catalog.Team, func(t store.TeamMember) string { return t.Name })
	return newDraftDialog("time_entry", "New Time Entry", m.logger,
		draftField{key: "project", title: "Project", options: m.projects},
		draftField{key: "member", title: "Member", options: members},
		draftField{key: "date", title: "Date (YYYY-MM-DD)", validate: func(s string) error {
			if s == "" {
				return fmt.Errorf("date is required")
			}
			return validDate(s)
		}},
		draftField{key: "duration", title: "Duration (e.g. 2h 30m)", validate: func(s string) error {
			_, err := view.ParseEntryDuration(s)
			return err
		}},
		draftField{key: "description", title: "Description"},
	)
}

func (m *timesheetModel) view() string {
	if o := m.overlay(); o != "" {
		return o
	}
	w := m.width - 4

	var bottom string
	if m.picking {
		bottom = m.renderProjectPicker(w)
	} else {
		bottom = m.renderSheet()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.renderTimerPanel(w), bottom)
}

func (m *timesheetModel) renderTimerPanel(w int) string {
	if m.timer.running() {
		timeStr := formatDuration(m.timer.currentElapsed())
		var timeDisplay, indicator string
		if m.timer.paused() {
			timeDisplay = clockStyle(true, true).Width(w - 6).Render(timeStr)
			if m.timer.isIdle {
				indicator = warningStyle.Render("⏸  IDLE")
			} else {
				indicator = warningStyle.Render("⏸  PAUSED")
			}
		} else {
			timeDisplay = clockStyle(true, false).Width(w - 6).Render(timeStr)
			indicator = successStyle.Render("●  RUNNING")
		}
		return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Center,
			timeDisplay, indicator, highlightStyle.Render(m.timer.project),
		))
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Center,
		clockStyle(false, false).Width(w-6).Render("00:00:00"),
		mutedStyle.Render("■  STOPPED"),
		mutedStyle.Render("Press s to start tracking"),
	))
}

func (m *timesheetModel) renderSheet() string {
	page := m.state.Page()
	rows := make([][]string, len(page.Items))
	for i, e := range page.Items {
		rows[i] = []string{formatDate(e.Date), e.Project, e.Member, e.Duration, e.Description}
	}
	cols := []column{
		{title: "Date", width: 12},
		{title: "Project", width: 18},
		{title: "Member", width: 16},
		{title: "Duration", width: 9, right: true},
		{title: "Description", width: 30},
	}

	toggles := []string{
		toggleLabel("Screenshots", m.state.ScreenshotsEnabled),
		toggleLabel("Manual editing", m.state.ManualEditingEnabled),
	}

	first, last := page.Range()
	return m.panel(
		lipgloss.JoinHorizontal(lipgloss.Bottom,
			titleStyle.Render("Time Sheet"), "  ",
			mutedStyle.Render("Total tracked "), highlightStyle.Render(m.state.TotalTrackedLabel()),
		),
		"  "+strings.Join(toggles, "   "),
		m.bar.view(m.state, true),
		"",
		renderTable(cols, rows, clampCursor(m.cursor, len(rows))),
		"",
		pagerLine(page.Page, page.TotalPages, first, last, page.Total),
		mutedStyle.Render("  s/x/space: timer  n: new entry  S: screenshots  M: manual editing  d: dates"),
	)
}

func (m *timesheetModel) renderProjectPicker(w int) string {
	rows := []string{titleStyle.Render("Select Project")}
	for i, p := range m.projects {
		cursor, style := "  ", normalItemStyle
		if i == m.pickerCursor {
			cursor, style = "> ", selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+p))
	}
	rows = append(rows, "", mutedStyle.Render("  enter: select  esc: cancel"))
	return activePanelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func toggleLabel(name string, on bool) string {
	if on {
		return successStyle.Render("● ") + name + " on"
	}
	return mutedStyle.Render("○ ") + name + " off"
}
