package view

import "github.com/sadopc/studiodesk/internal/store"

const KeyCompany = "company"

type ClientsState struct {
	catalog *store.Catalog
	list    ListState

	DialogOpen bool
}

func NewClientsState(c *store.Catalog, pageSize int) *ClientsState {
	return &ClientsState{catalog: c, list: NewListState(pageSize, KeyStatus, KeyCompany)}
}

func (s *ClientsState) List() *ListState { return &s.list }

func (s *ClientsState) FilterKeys() []string { return []string{KeyStatus, KeyCompany} }

func (s *ClientsState) FilterOptions(key string) []Option {
	switch key {
	case KeyStatus:
		return Options(Distinct(Pluck(s.catalog.Clients, func(c store.Client) string { return c.Status }))...)
	case KeyCompany:
		return Options(Distinct(Pluck(s.catalog.Clients, func(c store.Client) string { return c.Company }))...)
	}
	return nil
}

func (s *ClientsState) Clients() []store.Client {
	return Filter(s.catalog.Clients, func(c store.Client) bool {
		return MatchQuery(s.list.Query, c.Name, c.Email, c.Company) &&
			MatchFilters(s.list.Filters, func(key string) (string, bool) {
				switch key {
				case KeyStatus:
					return c.Status, true
				case KeyCompany:
					return c.Company, true
				}
				return "", false
			})
	})
}

func (s *ClientsState) Page() Page[store.Client] {
	return Paginate(s.Clients(), s.list.Page, s.list.PageSize)
}
