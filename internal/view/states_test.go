package view

import (
	"testing"
	"time"

	"github.com/sadopc/studiodesk/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientsState_ActiveFilter(t *testing.T) {
	s := NewClientsState(loadCatalog(t), 0)
	s.List().SetFilter(KeyStatus, "active")

	got := s.Clients()
	require.Len(t, got, 3)
	assert.Equal(t, []int64{1, 2, 3}, Pluck(got, func(c store.Client) int64 { return c.ID }))
}

func TestClientsState_SearchAcme(t *testing.T) {
	s := NewClientsState(loadCatalog(t), 0)
	s.List().SetQuery("acme")

	got := s.Clients()
	require.Len(t, got, 1)
	assert.Equal(t, "Acme Corp", got[0].Company)
}

func TestClientsState_Options(t *testing.T) {
	s := NewClientsState(loadCatalog(t), 0)
	assert.Equal(t, Options("active", "inactive"), s.FilterOptions(KeyStatus))
	assert.Len(t, s.FilterOptions(KeyCompany), 4)
	assert.Nil(t, s.FilterOptions("nope"))
}

func TestClientsState_Pagination(t *testing.T) {
	s := NewClientsState(loadCatalog(t), 3)
	p := s.Page()
	assert.Equal(t, 2, p.TotalPages)
	assert.Len(t, p.Items, 3)

	s.List().NextPage(p.TotalPages)
	assert.Len(t, s.Page().Items, 1)

	s.List().SetFilter(KeyStatus, "inactive")
	assert.Equal(t, 1, s.List().Page, "filter change returns to the first page")
	assert.Len(t, s.Page().Items, 1)
}

func TestTeamState(t *testing.T) {
	s := NewTeamState(loadCatalog(t), 0)

	s.List().SetFilter(KeyRateType, "monthly")
	got := s.Members()
	require.Len(t, got, 1)
	assert.Equal(t, "Mike Johnson", got[0].Name)

	s.List().ClearFilters()
	s.List().SetQuery("developer")
	assert.Len(t, s.Members(), 2)

	totals := s.Totals()
	assert.Equal(t, float64(160+144), totals.Hours)
	assert.Equal(t, int64(13600+10080), totals.Salaries)
}

func TestInvoicesState(t *testing.T) {
	s := NewInvoicesState(loadCatalog(t), 0)

	s.List().SetQuery("inv-00")
	assert.Len(t, s.Invoices(), 4)

	s.List().SetQuery("beta")
	got := s.Invoices()
	require.Len(t, got, 1)
	assert.Equal(t, "INV-002", got[0].ID)

	s.List().ClearFilters()
	r, err := NewDateRange("2024-01-01", "")
	require.NoError(t, err)
	s.List().SetRange(r)
	assert.Len(t, s.Invoices(), 3, "INV-004 is dated 2023")

	s.List().ClearFilters()
	st := s.Stats()
	assert.Equal(t, 4, st.Count)
	assert.Equal(t, int64(40500), st.Total)
	assert.Equal(t, int64(8500), st.Paid)
	assert.Equal(t, int64(15000), st.Pending)
	assert.Equal(t, int64(5000), st.Overdue)
}

func TestProjectsState_Projects(t *testing.T) {
	s := NewProjectsState(loadCatalog(t), 0)

	s.List().SetFilter(KeyStatus, "archived")
	got := s.Projects()
	require.Len(t, got, 1)
	assert.Equal(t, "Project Delta", got[0].Name)

	s.List().ClearFilters()
	s.List().SetQuery("techstart")
	assert.Len(t, s.Projects(), 1)
}

func TestProjectsState_Select(t *testing.T) {
	s := NewProjectsState(loadCatalog(t), 0)
	require.True(t, s.Select(2))
	assert.Equal(t, "Project Beta", s.Selected.Name)

	assert.False(t, s.Select(99))
	assert.Equal(t, "Project Beta", s.Selected.Name, "unknown id keeps the selection")

	s.Deselect()
	assert.Nil(t, s.Selected)
}

func TestProjectsState_Issues(t *testing.T) {
	s := NewProjectsState(loadCatalog(t), 0)
	rows := s.AllIssues()
	require.Len(t, rows, 8)
	assert.Equal(t, "Project Alpha", rows[0].ProjectName)
	assert.Equal(t, "Coding", rows[0].WorkTypeName())
	assert.Equal(t, "Project Gamma", rows[7].ProjectName)

	p := s.IssuesPage()
	assert.Equal(t, 1, p.TotalPages)
	assert.Len(t, p.Items, 8)
}

func TestProjectsState_PageSize(t *testing.T) {
	s := NewProjectsState(loadCatalog(t), 3)

	issues := s.IssuesPage()
	assert.Equal(t, 3, issues.TotalPages)
	assert.Len(t, issues.Items, 3)

	entries := s.TimeEntriesPage()
	assert.Equal(t, 3, entries.TotalPages)

	projects := s.Page()
	assert.Equal(t, 2, projects.TotalPages)
	assert.Len(t, projects.Items, 3)
}

func TestProjectsState_TimeEntries(t *testing.T) {
	s := NewProjectsState(loadCatalog(t), 0)

	s.Entries.SetQuery("iss-005")
	got := s.TimeEntries()
	require.Len(t, got, 1, "search covers linked issue ids")
	assert.Equal(t, "Sarah Williams", got[0].MemberName)

	s.Entries.ClearFilters()
	s.Entries.SetFilter(KeyProject, "1")
	assert.Len(t, s.TimeEntries(), 4)

	s.Entries.SetFilter(KeyMember, "1")
	assert.Len(t, s.TimeEntries(), 2)

	s.Entries.ClearFilters()
	r, err := NewDateRange("2024-01-14", "2024-01-15")
	require.NoError(t, err)
	s.Entries.SetRange(r)
	assert.Len(t, s.TimeEntries(), 5)

	opts := s.EntryFilterOptions(KeyProject)
	require.Len(t, opts, 4)
	assert.Equal(t, Option{Value: "1", Label: "Project Alpha"}, opts[0])

	l := s.EntriesLister()
	assert.Same(t, &s.Entries, l.List())
}

func TestTimeTrackingState(t *testing.T) {
	s := NewTimeTrackingState(loadCatalog(t), 0)
	assert.True(t, s.ScreenshotsEnabled)
	assert.False(t, s.ManualEditingEnabled)

	assert.Equal(t, "30h 30m", s.TotalTrackedLabel())

	s.List().SetFilter(KeyProject, "Project Alpha")
	assert.Len(t, s.Entries(), 2)
	assert.Equal(t, "16h 30m", s.TotalTrackedLabel())

	s.List().ClearFilters()
	s.List().SetQuery("mockups")
	assert.Len(t, s.Entries(), 1)

	assert.Equal(t, Options("Project Alpha", "Project Beta", "Project Gamma"), s.FilterOptions(KeyProject))
}

func TestParseEntryDuration(t *testing.T) {
	d, err := ParseEntryDuration("8h 30m")
	require.NoError(t, err)
	assert.Equal(t, 8*time.Hour+30*time.Minute, d)

	_, err = ParseEntryDuration("eight hours")
	assert.Error(t, err)

	assert.Equal(t, "0h 00m", FormatHoursMinutes(0))
	assert.Equal(t, "1h 05m", FormatHoursMinutes(65*time.Minute))
}

func TestDashboardState(t *testing.T) {
	s := NewDashboardState(loadCatalog(t))
	assert.Equal(t, PeriodWeek, s.Period)

	st := s.Stats()
	assert.Equal(t, float64(155), st.TotalHours)
	assert.Equal(t, 22.1, st.AvgHoursPerDay)
	assert.Equal(t, int64(14870), st.TotalEarnings)
	assert.Equal(t, int64(47780), st.TotalExpenses)
	assert.Equal(t, 4, st.TeamMembers)
	assert.Equal(t, 3, st.ActiveProjects)

	assert.Len(t, s.TeamPerformance(), 4)
	s.CycleMember()
	require.Len(t, s.TeamPerformance(), 1)
	assert.Equal(t, "John Doe", s.TeamPerformance()[0].Name)
	for range 4 {
		s.CycleMember()
	}
	assert.Zero(t, s.SelectedMember, "cycling past the last member clears the selection")
}

func TestInsightsState(t *testing.T) {
	s := NewInsightsState(loadCatalog(t))

	st := s.Stats()
	assert.Equal(t, float64(142), st.TotalActiveHours)
	assert.Equal(t, float64(11), st.TotalIdleHours)
	assert.Equal(t, 91, st.AvgProductivity)
	assert.Equal(t, 568, st.TotalScreenshots)

	s.SelectedMember = 2
	require.Len(t, s.TeamActivity(), 1)
	require.Len(t, s.Screenshots(), 1)
	assert.Equal(t, "Jane Smith", s.Screenshots()[0].MemberName)
	assert.Equal(t, st, s.Stats(), "stats ignore the member selection")

	s.CycleProject()
	require.Len(t, s.ProjectPerformance(), 1)
	assert.Equal(t, "Project Alpha", s.ProjectPerformance()[0].Name)
}
