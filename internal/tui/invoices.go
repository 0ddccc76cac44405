package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/studiodesk/internal/log"
	"github.com/sadopc/studiodesk/internal/store"
	"github.com/sadopc/studiodesk/internal/view"
)

type invoicesModel struct {
	listBase
	state   *view.InvoicesState
	catalog *store.Catalog
	logger  *log.Logger
}

func newInvoicesModel(c *store.Catalog, pageSize int, logger *log.Logger) *invoicesModel {
	return &invoicesModel{
		listBase: newListBase(true),
		state:    view.NewInvoicesState(c, pageSize),
		catalog:  c,
		logger:   logger,
	}
}

func (m *invoicesModel) update(msg tea.Msg) tea.Cmd {
	page := m.state.Page()
	handled, cmd := m.handle(msg, m.state, page.TotalPages, len(page.Items))
	m.state.DialogOpen = m.dialog != nil
	if handled {
		return cmd
	}
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.New) {
		m.state.DialogOpen = true
		return m.openDialog(newInvoiceDialog(m.catalog, m.logger))
	}
	return nil
}

func newInvoiceDialog(c *store.Catalog, logger *log.Logger) *draftDialog {
	clients := view.Pluck(c.Clients, func(cl store.Client) string { return cl.Name })
	projects := view.Pluck(c.Projects, func(p store.Project) string { return p.Name })
	return newDraftDialog("invoice", "New Invoice", logger,
		draftField{key: "client", title: "Client", options: clients},
		draftField{key: "project", title: "Project", options: projects},
		draftField{key: "amount", title: "Amount", validate: positiveAmount},
		draftField{key: "due_date", title: "Due date (YYYY-MM-DD)", validate: validDate},
		draftField{key: "status", title: "Status", options: []string{"draft", "sent"}},
	)
}

func (m *invoicesModel) view() string {
	if o := m.overlay(); o != "" {
		return o
	}

	page := m.state.Page()
	rows := make([][]string, len(page.Items))
	for i, inv := range page.Items {
		inFinance := ""
		if inv.IncludeInFinance {
			inFinance = "✓"
		}
		rows[i] = []string{
			inv.ID,
			inv.Client,
			inv.Project,
			money(inv.Amount),
			formatDate(inv.Date),
			formatDate(inv.DueDate),
			inv.Status,
			inFinance,
		}
	}
	cols := []column{
		{title: "Invoice", width: 9},
		{title: "Client", width: 16},
		{title: "Project", width: 18},
		{title: "Amount", width: 10, right: true},
		{title: "Date", width: 12},
		{title: "Due", width: 12},
		{title: "Status", width: 8, style: statusStyle},
		{title: "Fin", width: 3},
	}

	st := m.state.Stats()
	first, last := page.Range()
	return m.panel(
		titleStyle.Render("Invoices"),
		statRow(m.width-8,
			[2]string{"Invoices", fmt.Sprintf("%d", st.Count)},
			[2]string{"Total", money(st.Total)},
			[2]string{"Paid", money(st.Paid)},
			[2]string{"Pending", money(st.Pending)},
			[2]string{"Overdue", money(st.Overdue)},
		),
		m.bar.view(m.state, true),
		"",
		renderTable(cols, rows, clampCursor(m.cursor, len(rows))),
		"",
		pagerLine(page.Page, page.TotalPages, first, last, page.Total),
		mutedStyle.Render("  n: new invoice  d: dates  /: search  f/←/→: filter  c: clear  [/]: page"),
	)
}
