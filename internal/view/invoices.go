package view

import "github.com/sadopc/studiodesk/internal/store"

type InvoicesState struct {
	catalog *store.Catalog
	list    ListState

	DialogOpen bool
}

func NewInvoicesState(c *store.Catalog, pageSize int) *InvoicesState {
	return &InvoicesState{catalog: c, list: NewListState(pageSize, KeyStatus, KeyClient)}
}

func (s *InvoicesState) List() *ListState { return &s.list }

func (s *InvoicesState) FilterKeys() []string { return []string{KeyStatus, KeyClient} }

func (s *InvoicesState) FilterOptions(key string) []Option {
	switch key {
	case KeyStatus:
		return []Option{
			{Value: "paid", Label: "Paid"},
			{Value: "sent", Label: "Sent"},
			{Value: "draft", Label: "Draft"},
			{Value: "overdue", Label: "Overdue"},
		}
	case KeyClient:
		return Options(Distinct(Pluck(s.catalog.Clients, func(c store.Client) string { return c.Company }))...)
	}
	return nil
}

func (s *InvoicesState) Invoices() []store.Invoice {
	return Filter(s.catalog.Invoices, func(inv store.Invoice) bool {
		return MatchQuery(s.list.Query, inv.ID, inv.Client, inv.Project) &&
			s.list.Range.Contains(inv.Date) &&
			MatchFilters(s.list.Filters, func(key string) (string, bool) {
				switch key {
				case KeyStatus:
					return inv.Status, true
				case KeyClient:
					return inv.Client, true
				}
				return "", false
			})
	})
}

func (s *InvoicesState) Page() Page[store.Invoice] {
	return Paginate(s.Invoices(), s.list.Page, s.list.PageSize)
}

// InvoiceStats totals the visible invoices by payment state.
type InvoiceStats struct {
	Count   int
	Total   int64
	Paid    int64
	Pending int64
	Overdue int64
}

func (s *InvoicesState) Stats() InvoiceStats {
	var st InvoiceStats
	for _, inv := range s.Invoices() {
		st.Count++
		st.Total += inv.Amount
		switch inv.Status {
		case "paid":
			st.Paid += inv.Amount
		case "sent":
			st.Pending += inv.Amount
		case "overdue":
			st.Overdue += inv.Amount
		}
	}
	return st
}
