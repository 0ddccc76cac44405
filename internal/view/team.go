package view

import "github.com/sadopc/studiodesk/internal/store"

const (
	KeyRole     = "role"
	KeyRateType = "rateType"
)

type TeamState struct {
	catalog *store.Catalog
	list    ListState

	DialogOpen bool
}

func NewTeamState(c *store.Catalog, pageSize int) *TeamState {
	return &TeamState{catalog: c, list: NewListState(pageSize, KeyRole, KeyRateType)}
}

func (s *TeamState) List() *ListState { return &s.list }

func (s *TeamState) FilterKeys() []string { return []string{KeyRole, KeyRateType} }

func (s *TeamState) FilterOptions(key string) []Option {
	switch key {
	case KeyRole:
		return Options(Distinct(Pluck(s.catalog.Team, func(m store.TeamMember) string { return m.Role }))...)
	case KeyRateType:
		return []Option{{Value: "hourly", Label: "Hourly"}, {Value: "monthly", Label: "Monthly"}}
	}
	return nil
}

func (s *TeamState) Members() []store.TeamMember {
	return Filter(s.catalog.Team, func(m store.TeamMember) bool {
		return MatchQuery(s.list.Query, m.Name, m.Role) &&
			MatchFilters(s.list.Filters, func(key string) (string, bool) {
				switch key {
				case KeyRole:
					return m.Role, true
				case KeyRateType:
					return m.RateType, true
				}
				return "", false
			})
	})
}

func (s *TeamState) Page() Page[store.TeamMember] {
	return Paginate(s.Members(), s.list.Page, s.list.PageSize)
}

// TeamTotals sums hours and precomputed salaries of the visible members.
type TeamTotals struct {
	Hours    float64
	Salaries int64
}

func (s *TeamState) Totals() TeamTotals {
	var t TeamTotals
	for _, m := range s.Members() {
		t.Hours += m.TotalHours
		t.Salaries += m.Salary
	}
	return t
}
