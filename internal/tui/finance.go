package tui

import (
	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/studiodesk/internal/log"
	"github.com/sadopc/studiodesk/internal/store"
	"github.com/sadopc/studiodesk/internal/view"
)

type financeModel struct {
	listBase
	state   *view.FinanceState
	catalog *store.Catalog
	logger  *log.Logger
	chart   barchart.Model
}

func newFinanceModel(c *store.Catalog, pageSize int, logger *log.Logger) *financeModel {
	st := view.NewFinanceState(c, pageSize)
	m := &financeModel{
		listBase: newListBase(true),
		state:    st,
		catalog:  c,
		logger:   logger,
	}
	m.buildChart()
	return m
}

func (m *financeModel) setSize(w, h int) {
	m.listBase.setSize(w, h)
	m.buildChart()
}

func (m *financeModel) recordsPage() view.Page[view.FinanceRecord] {
	return m.state.RecordsPage()
}

func (m *financeModel) update(msg tea.Msg) tea.Cmd {
	page := m.recordsPage()
	handled, cmd := m.handle(msg, m.state, page.TotalPages, len(page.Items))
	if m.dialog == nil {
		m.state.RecurringInvoiceOpen = false
		m.state.RecurringExpenseOpen = false
	}
	if handled {
		return cmd
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "r":
			m.state.RecurringInvoiceOpen = true
			return m.openDialog(m.recurringInvoiceDialog())
		case "R":
			m.state.RecurringExpenseOpen = true
			return m.openDialog(m.recurringExpenseDialog())
		}
	}
	return nil
}

var frequencies = []string{"monthly", "quarterly", "yearly"}

func (m *financeModel) recurringInvoiceDialog() *draftDialog {
	return newDraftDialog("recurring_invoice", "Recurring Invoice", m.logger,
		draftField{key: "client", title: "Client", options: view.Pluck(m.catalog.Clients, func(c store.Client) string { return c.Name })},
		draftField{key: "project", title: "Project", options: view.Pluck(m.catalog.Projects, func(p store.Project) string { return p.Name })},
		draftField{key: "amount", title: "Amount", validate: positiveAmount},
		draftField{key: "frequency", title: "Frequency", options: frequencies},
		draftField{key: "next_due", title: "Next due date (YYYY-MM-DD)", validate: validDate},
	)
}

func (m *financeModel) recurringExpenseDialog() *draftDialog {
	categories := view.Distinct(view.Pluck(m.catalog.Expenses, func(e store.Expense) string { return e.Category }))
	return newDraftDialog("recurring_expense", "Recurring Expense", m.logger,
		draftField{key: "category", title: "Category", options: categories},
		draftField{key: "amount", title: "Amount", validate: positiveAmount},
		draftField{key: "frequency", title: "Frequency", options: frequencies},
		draftField{key: "next_due", title: "Next due date (YYYY-MM-DD)", validate: validDate},
	)
}

func (m *financeModel) buildChart() {
	w := m.width/2 - 8
	if w < 20 {
		w = 20
	}
	m.chart = barchart.New(w, 8)

	income := fg(colorIncome)
	expenses := fg(colorExpense)
	salaries := fg(colorSalaries)

	var bars []barchart.BarData
	for _, mo := range m.state.Monthly() {
		bars = append(bars,
			barchart.BarData{Label: mo.Month, Values: []barchart.BarValue{{Name: "Income", Value: float64(mo.Income), Style: income}}},
			barchart.BarData{Label: "", Values: []barchart.BarValue{
				{Name: "Expenses", Value: float64(mo.Expenses), Style: expenses},
				{Name: "Salaries", Value: float64(mo.Salaries), Style: salaries},
			}},
		)
	}
	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m *financeModel) view() string {
	if o := m.overlay(); o != "" {
		return o
	}

	sum := m.state.Summary()
	profit := money(sum.Profit)
	if sum.Profit < 0 {
		profit = errorStyle.Render(profit)
	}

	page := m.recordsPage()
	rows := make([][]string, len(page.Items))
	for i, r := range page.Items {
		rows[i] = []string{
			string(r.Kind),
			r.ID,
			r.Label,
			money(r.Amount),
			formatDate(r.Date),
			r.Status,
		}
	}
	cols := []column{
		{title: "Kind", width: 17},
		{title: "ID", width: 8},
		{title: "Description", width: 34},
		{title: "Amount", width: 10, right: true},
		{title: "Date", width: 12},
		{title: "Status", width: 8, style: statusStyle},
	}

	legend := successStyle.Render("■ income  ") + warningStyle.Render("■ expenses  ") + accentStyle.Render("■ salaries")

	first, last := page.Range()
	return m.panel(
		titleStyle.Render("Finance"),
		statRow(m.width-8,
			[2]string{"Income", money(sum.TotalIncome)},
			[2]string{"Expenses", money(sum.TotalExpenses)},
			[2]string{"Salaries", money(sum.TotalSalaries)},
			[2]string{"Profit", profit},
			[2]string{"Waiting", money(sum.AmountWaiting)},
		),
		m.chart.View(),
		"  "+legend,
		m.bar.view(m.state, true),
		"",
		renderTable(cols, rows, clampCursor(m.cursor, len(rows))),
		"",
		pagerLine(page.Page, page.TotalPages, first, last, page.Total),
		mutedStyle.Render("  r: recurring invoice  R: recurring expense  d: dates  f/←/→: filter  c: clear  [/]: page"),
	)
}
