package view

import "github.com/sadopc/studiodesk/internal/store"

// InsightsStats summarise team activity across all members.
type InsightsStats struct {
	TotalActiveHours float64
	TotalIdleHours   float64
	AvgProductivity  int
	TotalScreenshots int
}

type InsightsState struct {
	PeriodState
	catalog *store.Catalog

	// Selected ids, 0 meaning all.
	SelectedProject int64
	SelectedMember  int64
}

func NewInsightsState(c *store.Catalog) *InsightsState {
	return &InsightsState{PeriodState: PeriodState{Period: PeriodWeek}, catalog: c}
}

// Stats always covers the whole team, whatever member is selected.
func (s *InsightsState) Stats() InsightsStats {
	var st InsightsStats
	activity := s.catalog.Analytics.TeamActivity
	var productivity int
	for _, m := range activity {
		st.TotalActiveHours += m.ActiveHours
		st.TotalIdleHours += m.IdleHours
		st.TotalScreenshots += m.Screenshots
		productivity += m.Productivity
	}
	if len(activity) > 0 {
		st.AvgProductivity = int(roundTo(float64(productivity)/float64(len(activity)), 0))
	}
	return st
}

func (s *InsightsState) TeamActivity() []store.MemberActivity {
	if s.SelectedMember == 0 {
		return s.catalog.Analytics.TeamActivity
	}
	return Filter(s.catalog.Analytics.TeamActivity, func(m store.MemberActivity) bool {
		return m.ID == s.SelectedMember
	})
}

func (s *InsightsState) ProjectPerformance() []store.ProjectPerformance {
	if s.SelectedProject == 0 {
		return s.catalog.Analytics.ProjectPerformance
	}
	return Filter(s.catalog.Analytics.ProjectPerformance, func(p store.ProjectPerformance) bool {
		return p.ID == s.SelectedProject
	})
}

func (s *InsightsState) Screenshots() []store.Screenshot {
	if s.SelectedMember == 0 {
		return s.catalog.Analytics.Screenshots
	}
	return Filter(s.catalog.Analytics.Screenshots, func(sc store.Screenshot) bool {
		return sc.MemberID == s.SelectedMember
	})
}

func (s *InsightsState) CycleMember() {
	s.SelectedMember = nextID(Pluck(s.catalog.Analytics.TeamActivity, func(m store.MemberActivity) int64 { return m.ID }), s.SelectedMember)
}

func (s *InsightsState) CycleProject() {
	s.SelectedProject = nextID(Pluck(s.catalog.Analytics.ProjectPerformance, func(p store.ProjectPerformance) int64 { return p.ID }), s.SelectedProject)
}

func (s *InsightsState) WorkTypes() []store.WorkTypeHours {
	return s.catalog.Analytics.OverallWorkTypes
}

func (s *InsightsState) ProductiveHours() []store.ProductiveHour {
	return s.catalog.Analytics.ProductiveHours
}

func (s *InsightsState) AppUsage() []store.AppUsage {
	return s.catalog.Analytics.AppUsage
}
