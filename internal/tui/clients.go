package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/studiodesk/internal/log"
	"github.com/sadopc/studiodesk/internal/store"
	"github.com/sadopc/studiodesk/internal/view"
)

type clientsModel struct {
	listBase
	state  *view.ClientsState
	logger *log.Logger
}

func newClientsModel(c *store.Catalog, pageSize int, logger *log.Logger) *clientsModel {
	return &clientsModel{
		listBase: newListBase(false),
		state:    view.NewClientsState(c, pageSize),
		logger:   logger,
	}
}

func (m *clientsModel) update(msg tea.Msg) tea.Cmd {
	page := m.state.Page()
	handled, cmd := m.handle(msg, m.state, page.TotalPages, len(page.Items))
	m.state.DialogOpen = m.dialog != nil
	if handled {
		return cmd
	}
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.New) {
		m.state.DialogOpen = true
		return m.openDialog(newDraftDialog("client", "New Client", m.logger,
			draftField{key: "name", title: "Name", validate: required("Name")},
			draftField{key: "email", title: "Email", validate: required("Email")},
			draftField{key: "phone", title: "Phone"},
			draftField{key: "company", title: "Company"},
		))
	}
	return nil
}

func (m *clientsModel) view() string {
	if o := m.overlay(); o != "" {
		return o
	}

	page := m.state.Page()
	rows := make([][]string, len(page.Items))
	for i, c := range page.Items {
		rows[i] = []string{
			c.Name,
			c.Company,
			c.Email,
			c.Phone,
			fmt.Sprintf("%d", c.ProjectCount),
			money(c.Balance),
			c.Status,
		}
	}
	cols := []column{
		{title: "Name", width: 18},
		{title: "Company", width: 18},
		{title: "Email", width: 24},
		{title: "Phone", width: 16},
		{title: "Projects", width: 8, right: true},
		{title: "Balance", width: 10, right: true},
		{title: "Status", width: 8, style: statusStyle},
	}

	first, last := page.Range()
	return m.panel(
		titleStyle.Render("Clients"),
		m.bar.view(m.state, false),
		"",
		renderTable(cols, rows, clampCursor(m.cursor, len(rows))),
		"",
		pagerLine(page.Page, page.TotalPages, first, last, page.Total),
		mutedStyle.Render("  n: new client  /: search  f/←/→: filter  c: clear  [/]: page"),
	)
}
