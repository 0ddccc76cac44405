package view

import (
	"math"

	"github.com/sadopc/studiodesk/internal/store"
)

// DashboardStats are the headline figures of the dashboard.
type DashboardStats struct {
	TotalHours     float64
	ActiveProjects int
	TeamMembers    int
	AvgHoursPerDay float64
	TotalEarnings  int64
	TotalExpenses  int64
}

type DashboardState struct {
	PeriodState
	catalog *store.Catalog

	// SelectedMember is a team member id, or 0 for the whole team.
	SelectedMember int64
}

func NewDashboardState(c *store.Catalog) *DashboardState {
	return &DashboardState{PeriodState: PeriodState{Period: PeriodWeek}, catalog: c}
}

func (s *DashboardState) Stats() DashboardStats {
	a := s.catalog.Analytics
	st := DashboardStats{
		TeamMembers:   len(a.TeamPerformance),
		TotalExpenses: a.Expenses.Total,
	}
	for _, m := range a.TeamPerformance {
		st.TotalHours += m.Hours
		st.TotalEarnings += m.Earnings
	}
	for _, p := range s.catalog.Projects {
		if p.Status == "active" {
			st.ActiveProjects++
		}
	}
	st.AvgHoursPerDay = roundTo(st.TotalHours/7, 1)
	return st
}

func (s *DashboardState) TeamPerformance() []store.TeamPerformance {
	if s.SelectedMember == 0 {
		return s.catalog.Analytics.TeamPerformance
	}
	return Filter(s.catalog.Analytics.TeamPerformance, func(m store.TeamPerformance) bool {
		return m.ID == s.SelectedMember
	})
}

// CycleMember steps the member selection through none, then each member of
// the team in order.
func (s *DashboardState) CycleMember() {
	s.SelectedMember = nextID(Pluck(s.catalog.Analytics.TeamPerformance, func(m store.TeamPerformance) int64 { return m.ID }), s.SelectedMember)
}

func (s *DashboardState) WeeklyHours() []store.WeeklyHours   { return s.catalog.Analytics.WeeklyHours }
func (s *DashboardState) ProjectHours() []store.ProjectHours { return s.catalog.Analytics.ProjectHours }
func (s *DashboardState) WorkTypes() []store.WorkTypeHours   { return s.catalog.Analytics.WorkTypes }
func (s *DashboardState) Earnings() store.Earnings           { return s.catalog.Analytics.Earnings }
func (s *DashboardState) Expenses() store.ExpenseBreakdown   { return s.catalog.Analytics.Expenses }

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// nextID returns the id after current in ids, 0 after the last one, and the
// first id after 0.
func nextID(ids []int64, current int64) int64 {
	if current == 0 {
		if len(ids) == 0 {
			return 0
		}
		return ids[0]
	}
	for i, id := range ids {
		if id == current && i+1 < len(ids) {
			return ids[i+1]
		}
	}
	return 0
}
