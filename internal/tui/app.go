package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/studiodesk/internal/auth"
	"github.com/sadopc/studiodesk/internal/export"
	"github.com/sadopc/studiodesk/internal/log"
	"github.com/sadopc/studiodesk/internal/store"
)

// Options configures the App. Zero values fall back to defaults.
type Options struct {
	Context  context.Context
	PageSize int
	Auth     *auth.Service
	// Logger defaults to the logger carried by Context.
	Logger    *log.Logger
	SkipLogin bool
	ExportDir string
}

type exportChoice struct {
	label   string
	formats []export.Format
}

var exportChoices = []exportChoice{
	{"CSV", []export.Format{export.FormatCSV}},
	{"JSON", []export.Format{export.FormatJSON}},
	{"Excel (XLSX)", []export.Format{export.FormatXLSX}},
	{"All formats", export.Formats},
}

// App is the root Bubble Tea model.
type App struct {
	ctx       context.Context
	logger    *log.Logger
	studio    string
	exportDir string
	width     int
	height    int

	login    *loginModel
	loggedIn bool
	user     string

	active    screenID
	screens   []screen
	timesheet *timesheetModel
	projects  *projectsModel
	invoices  *invoicesModel
	finance   *financeModel
	profile   *profileModel

	showHelp      bool
	exportPicking bool
	exportCursor  int

	help      help.Model
	status    string
	statusErr bool
}

func NewApp(c *store.Catalog, opts Options) App {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.FromContext(ctx)
	}
	pageSize := opts.PageSize
	if pageSize < 1 {
		pageSize = 10
	}
	svc := opts.Auth
	if svc == nil {
		svc = auth.NewService(0, 0, logger)
	}
	dir := opts.ExportDir
	if dir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			dir = home
		} else {
			dir = "."
		}
	}

	uiLog := logger.WithComponent(log.ComponentTUI)
	drafts := logger.WithComponent(log.ComponentDrafts)

	a := App{
		ctx:       ctx,
		logger:    uiLog,
		studio:    c.Setting("studio_name", settingDefaults["studio_name"]),
		exportDir: dir,
		login:     newLoginModel(ctx, svc),
		loggedIn:  opts.SkipLogin,
		timesheet: newTimesheetModel(c, pageSize, logger),
		projects:  newProjectsModel(c, pageSize, drafts),
		invoices:  newInvoicesModel(c, pageSize, drafts),
		finance:   newFinanceModel(c, pageSize, drafts),
		profile:   newProfileModel(ctx, c, svc, uiLog),
		help:      help.New(),
	}
	// Order follows screenID.
	a.screens = []screen{
		newDashboardModel(c),
		a.projects,
		a.timesheet,
		newTeamModel(c, pageSize),
		a.finance,
		newClientsModel(c, pageSize, drafts),
		a.invoices,
		newInsightsModel(c),
		newIntegrationsModel(c, uiLog),
		newSettingsModel(c, uiLog),
		a.profile,
	}
	return a
}

func (a App) Init() tea.Cmd {
	if a.loggedIn {
		return tickCmd()
	}
	return tea.Batch(a.login.init(), tickCmd())
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) current() screen { return a.screens[a.active] }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.login.setSize(msg.Width, msg.Height)
		contentHeight := a.height - 4 // header + footer
		for _, s := range a.screens {
			s.setSize(a.width, contentHeight)
		}
		return a, nil

	case tickMsg:
		// The tracker keeps counting whichever screen is shown.
		return a, tea.Batch(tickCmd(), a.timesheet.update(msg))
	}

	if !a.loggedIn {
		return a.updateLogin(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}
		// A screen with a form or search box open gets every key.
		if a.current().capturing() {
			return a, a.current().update(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab):
			a.active = (a.active + 1) % screenID(len(a.screens))
			return a, nil
		case key.Matches(msg, keys.ShiftTab):
			a.active = (a.active + screenID(len(a.screens)) - 1) % screenID(len(a.screens))
			return a, nil
		case key.Matches(msg, keys.Profile):
			a.active = screenProfile
			return a, nil
		}
		if id, ok := screenForKey(msg.String()); ok {
			a.active = id
			return a, nil
		}

	case statusMsg:
		a.status = msg.text
		a.statusErr = msg.isError
		return a, nil

	case draftLoggedMsg:
		a.status = fmt.Sprintf("%s draft logged (%s)", capitalize(msg.kind), truncate(msg.id, 9))
		a.statusErr = false
		return a, nil

	case trackingStoppedMsg:
		a.status = fmt.Sprintf("Tracked %s on %s (logged)", formatDuration(msg.duration), msg.project)
		a.statusErr = false
		return a, nil

	case exportDoneMsg:
		a.status = fmt.Sprintf("Exported %d files to %s", len(msg.paths), a.exportDir)
		a.statusErr = false
		return a, nil

	case passwordResultMsg:
		return a, a.profile.update(msg)
	}

	return a, a.current().update(msg)
}

func (a App) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	case loginDoneMsg:
		a.loggedIn = true
		a.user = msg.email
		a.profile.setEmail(msg.email)
		a.status = "Signed in as " + msg.email
		a.statusErr = false
		return a, nil
	}
	return a, a.login.update(msg)
}

// screenForKey maps the digit keys to the first ten screens, 0 being the
// tenth.
func screenForKey(k string) (screenID, bool) {
	if len(k) != 1 || k[0] < '0' || k[0] > '9' {
		return 0, false
	}
	if k == "0" {
		return screenSettings, true
	}
	return screenID(k[0] - '1'), true
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}
	if !a.loggedIn {
		return a.login.view()
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	content := a.current().view()
	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		MaxHeight(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range screenNames {
		label := name
		if i < 10 {
			label = fmt.Sprintf("%d %s", (i+1)%10, name)
		}
		if screenID(i) == a.active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := fg(colorBrand).Bold(true).Render(a.studio)
	if a.user != "" {
		title += mutedStyle.Render("  " + a.user)
	}
	if lipgloss.Width(title)+lipgloss.Width(tabRow)+4 > a.width {
		return headerStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, tabRow))
	}
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	spacer := lipgloss.NewStyle().Width(max(gap, 1)).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		style := statusBarStyle
		if a.statusErr {
			style = errorStyle
		}
		status = style.Render(" " + a.status)
	}

	timerInfo := ""
	if t := a.timesheet.timer; t.running() {
		elapsed := t.currentElapsed()
		timerInfo = successStyle.Render(" ● " + formatDuration(elapsed))
		if t.paused() {
			timerInfo = warningStyle.Render(" ⏸ " + formatDuration(elapsed))
		}
	}

	left := footerStyle.Render(helpView)
	right := timerInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	spacer := lipgloss.NewStyle().Width(max(gap, 1)).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	rows := []string{titleStyle.Render("Export"), mutedStyle.Render("  to " + a.exportDir), ""}
	for i, c := range exportChoices {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+c.label))
	}
	rows = append(rows, "", mutedStyle.Render("  enter: export  esc: cancel"))

	return activePanelStyle.Width(a.width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(exportChoices)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(exportChoices[a.exportCursor].formats)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

// exportReport snapshots what the invoice, project entry and finance
// screens currently show.
func (a App) exportReport() export.Report {
	return export.Report{
		Invoices: a.invoices.state.Invoices(),
		Entries:  a.projects.state.TimeEntries(),
		Summary:  a.finance.state.Summary(),
		Records:  a.finance.state.Records(),
	}
}

func (a App) doExport(formats []export.Format) tea.Cmd {
	r := a.exportReport()
	ctx, dir, logger := a.ctx, a.exportDir, a.logger.WithComponent(log.ComponentExport)
	return func() tea.Msg {
		start := time.Now()
		r.ExportedAt = start
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		paths, err := export.WriteAll(ctx, dir, r, formats)
		if err != nil {
			fields := log.NewFields().WithOperation(log.OpExport).WithError(err).With(log.FieldPath, dir)
			logger.Error("export failed", fields.ToSlice()...)
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		fields := log.NewFields().
			WithOperation(log.OpExport).
			WithSuccess(true).
			With(log.FieldPath, dir).
			With(log.FieldFormat, formats).
			With(log.FieldCount, len(paths)).
			With(log.FieldDuration, time.Since(start).String())
		logger.Info("export finished", fields.ToSlice()...)
		return exportDoneMsg{paths: paths}
	}
}
