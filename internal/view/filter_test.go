package view

import (
	"context"
	"testing"

	"github.com/sadopc/studiodesk/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loadCatalog returns the seeded sample catalog.
func loadCatalog(t *testing.T) *store.Catalog {
	t.Helper()
	s, err := store.NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	c, err := s.Load(context.Background())
	require.NoError(t, err)
	return c
}

func TestMatchQuery(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		fields []string
		want   bool
	}{
		{"empty query matches", "", []string{"anything"}, true},
		{"blank query is a literal search", "   ", []string{"anything"}, false},
		{"blank query matches spaced text", "  ", []string{"two  spaces"}, true},
		{"leading space is kept", " acme", []string{"Acme Corp"}, false},
		{"empty query with no fields", "", nil, true},
		{"case insensitive", "ACME", []string{"Acme Corp"}, true},
		{"substring of second field", "corp", []string{"John", "Acme Corp"}, true},
		{"no match", "zzz", []string{"Acme Corp"}, false},
		{"no fields", "a", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchQuery(tt.query, tt.fields...))
		})
	}
}

func TestMatchFilters(t *testing.T) {
	record := func(key string) (string, bool) {
		switch key {
		case "status":
			return "active", true
		case "company":
			return "Acme Corp", true
		}
		return "", false
	}

	assert.True(t, MatchFilters(nil, record), "nil map is unconstrained")
	assert.True(t, MatchFilters(Filters{"status": All, "company": All}, record))
	assert.True(t, MatchFilters(Filters{"status": "active"}, record))
	assert.False(t, MatchFilters(Filters{"status": "inactive"}, record))
	assert.False(t, MatchFilters(Filters{"status": "active", "company": "StartupXYZ"}, record), "filters compose with AND")
	assert.True(t, MatchFilters(Filters{"unknown": All}, record), "unknown key set to all is ignored")
	assert.False(t, MatchFilters(Filters{"unknown": "x"}, record), "constrained key the record lacks fails")
	assert.False(t, MatchFilters(Filters{"status": "Active"}, record), "equality is exact")
}

func TestFilters(t *testing.T) {
	f := NewFilters("status", "client")
	assert.False(t, f.Active())
	assert.Equal(t, All, f.Get("status"))
	assert.Equal(t, All, f.Get("missing"))

	f.Set("status", "paid")
	assert.True(t, f.Active())
	assert.Equal(t, "paid", f.Get("status"))

	f.Set("status", "")
	assert.Equal(t, All, f.Get("status"))

	f.Set("status", "paid")
	f.Set("client", "Acme Corp")
	f.Clear("status")
	assert.Equal(t, All, f.Get("status"))
	assert.Equal(t, "Acme Corp", f.Get("client"))

	f.Clear()
	assert.False(t, f.Active())

	f.Set("client", "Acme Corp")
	only := f.Only("client", "nope")
	assert.Equal(t, Filters{"client": "Acme Corp"}, only)
}

func TestFilterPreservesOrder(t *testing.T) {
	got := Filter([]int{5, 1, 4, 2, 3}, func(n int) bool { return n > 2 })
	assert.Equal(t, []int{5, 4, 3}, got)

	empty := Filter([]int(nil), func(int) bool { return true })
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestFilter_AllFiltersIsIdentity(t *testing.T) {
	c := loadCatalog(t)

	clients := NewClientsState(c, 0)
	assert.Equal(t, c.Clients, clients.Clients())

	team := NewTeamState(c, 0)
	assert.Equal(t, c.Team, team.Members())

	invoices := NewInvoicesState(c, 0)
	assert.Equal(t, c.Invoices, invoices.Invoices())

	projects := NewProjectsState(c, 0)
	assert.Equal(t, c.Projects, projects.Projects())
	assert.Equal(t, c.ProjectEntries, projects.TimeEntries())

	timesheet := NewTimeTrackingState(c, 0)
	assert.Equal(t, c.Timesheet, timesheet.Entries())

	finance := NewFinanceState(c, 0)
	assert.Equal(t, c.Income, finance.Income())
	assert.Equal(t, c.Expenses, finance.Expenses())
	assert.Equal(t, c.Salaries, finance.Salaries())
	assert.Equal(t, c.Invoices, finance.Invoices())
	assert.Equal(t, c.RecurringInvoices, finance.RecurringInvoices())
	assert.Equal(t, c.RecurringExpenses, finance.RecurringExpenses())
}

func TestFilter_QueryNeverGrowsResult(t *testing.T) {
	c := loadCatalog(t)
	queries := []string{"a", "acme", "john", "project", "inv-00", "zzz", "e"}
	filterSets := []Filters{
		{},
		{KeyStatus: "active"},
		{KeyCompany: "Acme Corp"},
	}

	for _, f := range filterSets {
		s := NewClientsState(c, 0)
		for k, v := range f {
			s.List().SetFilter(k, v)
		}
		base := s.Clients()
		for _, q := range queries {
			s.List().SetQuery(q)
			got := s.Clients()
			assert.LessOrEqual(t, len(got), len(base), "query %q", q)
			for _, cl := range got {
				assert.Contains(t, base, cl)
			}
		}
	}

	inv := NewInvoicesState(c, 0)
	base := inv.Invoices()
	for _, q := range queries {
		inv.List().SetQuery(q)
		got := inv.Invoices()
		assert.LessOrEqual(t, len(got), len(base), "query %q", q)
	}
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, []string{"b", "a", "c"}, Distinct([]string{"b", "a", "b", "c", "a"}))
	assert.Empty(t, Distinct(nil))
}

func TestCycle(t *testing.T) {
	opts := Options("a", "b")
	assert.Equal(t, "a", Cycle(opts, All, 1))
	assert.Equal(t, "b", Cycle(opts, "a", 1))
	assert.Equal(t, All, Cycle(opts, "b", 1))
	assert.Equal(t, "b", Cycle(opts, All, -1))
	assert.Equal(t, "a", Cycle(opts, "unknown", 1))
	assert.Equal(t, All, Cycle(nil, All, 1))
}

func TestLabelFor(t *testing.T) {
	opts := []Option{{Value: "1", Label: "Project Alpha"}}
	assert.Equal(t, "All", LabelFor(opts, All))
	assert.Equal(t, "Project Alpha", LabelFor(opts, "1"))
	assert.Equal(t, "9", LabelFor(opts, "9"))
}
