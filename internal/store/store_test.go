package store

import (
	"context"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != currentVersion {
		t.Fatalf("expected user_version %d, got %d", currentVersion, version)
	}
}

func TestNewWithPath(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sub/studiodesk.db"
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen: the seed must not run a second time.
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	clients, err := s2.ListClients(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(clients) != 4 {
		t.Fatalf("expected 4 clients after reopen, got %d", len(clients))
	}
}

func TestPragmasConfigured(t *testing.T) {
	s := newTestStore(t)

	var fk int
	s.db.QueryRow("PRAGMA foreign_keys").Scan(&fk)
	if fk != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", fk)
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

// ============================================================
// Seeded entities
// ============================================================

func TestSeedCounts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	count := func(table string) int {
		var n int
		if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&n); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		return n
	}

	tests := []struct {
		table string
		want  int
	}{
		{"clients", 4},
		{"projects", 4},
		{"work_types", 16},
		{"issues", 8},
		{"team_members", 4},
		{"invoices", 4},
		{"income", 3},
		{"expenses", 4},
		{"salaries", 4},
		{"recurring_invoices", 2},
		{"recurring_expenses", 2},
		{"project_time_entries", 8},
		{"timesheet_entries", 4},
		{"integrations", 6},
	}
	for _, tt := range tests {
		t.Run(tt.table, func(t *testing.T) {
			if got := count(tt.table); got != tt.want {
				t.Fatalf("%s: got %d rows, want %d", tt.table, got, tt.want)
			}
		})
	}
}

func TestListClients(t *testing.T) {
	s := newTestStore(t)
	clients, err := s.ListClients(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if clients[0].Company != "Acme Corp" || clients[0].Balance != 15000 {
		t.Fatalf("unexpected first client: %+v", clients[0])
	}
	if clients[3].Status != "inactive" {
		t.Fatalf("expected last client inactive, got %q", clients[3].Status)
	}
	if clients[0].CreatedAt.IsZero() {
		t.Fatal("CreatedAt should be parsed")
	}
}

func TestListProjectsAttachesChildren(t *testing.T) {
	s := newTestStore(t)
	projects, err := s.ListProjects(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(projects) != 4 {
		t.Fatalf("expected 4 projects, got %d", len(projects))
	}

	alpha := projects[0]
	if alpha.Name != "Project Alpha" {
		t.Fatalf("expected Project Alpha first, got %q", alpha.Name)
	}
	if len(alpha.WorkTypes) != 4 || alpha.WorkTypes[0].ID != "coding" || alpha.WorkTypes[3].ID != "managing" {
		t.Fatalf("unexpected work types: %+v", alpha.WorkTypes)
	}
	if len(alpha.Issues) != 4 {
		t.Fatalf("expected 4 issues on alpha, got %d", len(alpha.Issues))
	}
	if len(projects[3].Issues) != 0 {
		t.Fatalf("expected delta to have no issues, got %d", len(projects[3].Issues))
	}
}

func TestGetProject(t *testing.T) {
	s := newTestStore(t)
	p, err := s.GetProject(context.Background(), 3)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Project Gamma" {
		t.Fatalf("expected Project Gamma, got %q", p.Name)
	}

	if _, err := s.GetProject(context.Background(), 999); err == nil {
		t.Fatal("expected error for missing project")
	}
}

func TestIssueVariance(t *testing.T) {
	tests := []struct {
		name   string
		issue  Issue
		expect float64
	}{
		{"over", Issue{Estimate: 8, ActualTime: 10}, 2},
		{"under", Issue{Estimate: 16, ActualTime: 8}, -8},
		{"exact", Issue{Estimate: 3, ActualTime: 3}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.issue.Variance(); got != tt.expect {
				t.Fatalf("Variance() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestListInvoicesIncludeFlag(t *testing.T) {
	s := newTestStore(t)
	invoices, err := s.ListInvoices(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]bool{"INV-001": true, "INV-002": true, "INV-003": false, "INV-004": true}
	for _, inv := range invoices {
		if inv.IncludeInFinance != want[inv.ID] {
			t.Errorf("%s: IncludeInFinance = %v", inv.ID, inv.IncludeInFinance)
		}
	}
	if invoices[3].Date.Year() != 2023 {
		t.Fatalf("expected INV-004 dated 2023, got %v", invoices[3].Date)
	}
}

func TestMalformedDateIsAnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	if _, err := s.db.Exec(`UPDATE invoices SET date = '15/01/2024' WHERE id = 'INV-001'`); err != nil {
		t.Fatal(err)
	}

	if _, err := s.ListInvoices(ctx); err == nil {
		t.Fatal("expected an error for a malformed invoice date")
	}
	if _, err := s.Load(ctx); err == nil {
		t.Fatal("load should fail on a malformed date")
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2024-01-15")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(day(2024, time.January, 15)) {
		t.Fatalf("got %v", got)
	}
	if _, err := parseDate(""); err == nil {
		t.Fatal("expected an error for an empty date")
	}
}

func TestOptionalFinanceFields(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	income, err := s.ListIncome(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if income[1].Member != "" {
		t.Fatalf("expected second income to have no member, got %q", income[1].Member)
	}

	expenses, err := s.ListExpenses(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if expenses[0].Project != "Project Alpha" || expenses[1].Project != "" {
		t.Fatalf("unexpected expense projects: %q %q", expenses[0].Project, expenses[1].Project)
	}
	if expenses[3].Client != "Acme Corp" {
		t.Fatalf("expected marketing expense tied to Acme Corp, got %q", expenses[3].Client)
	}
}

func TestProjectTimeEntryIssueIDs(t *testing.T) {
	s := newTestStore(t)
	entries, err := s.ListProjectTimeEntries(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 8 {
		t.Fatalf("expected 8 entries, got %d", len(entries))
	}
	if len(entries[0].IssueIDs) != 1 || entries[0].IssueIDs[0] != "ISS-001" {
		t.Fatalf("unexpected issue ids: %v", entries[0].IssueIDs)
	}
	if entries[0].Hours != 8.5 {
		t.Fatalf("expected 8.5 hours, got %v", entries[0].Hours)
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"ISS-001", 1},
		{"ISS-001, ISS-002", 2},
		{"ISS-001,,", 1},
	}
	for _, tt := range tests {
		if got := splitList(tt.in); len(got) != tt.want {
			t.Errorf("splitList(%q) = %v, want %d items", tt.in, got, tt.want)
		}
	}
}

// ============================================================
// Settings
// ============================================================

func TestSettings(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	v, err := s.GetSetting(ctx, "studio_name")
	if err != nil {
		t.Fatal(err)
	}
	if v != "Onit Studio" {
		t.Fatalf("expected Onit Studio, got %q", v)
	}

	if _, err := s.GetSetting(ctx, "missing"); err == nil {
		t.Fatal("expected error for missing setting")
	}

	all, err := s.GetAllSettings(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 9 {
		t.Fatalf("expected 9 settings, got %d", len(all))
	}
}

// ============================================================
// Catalog
// ============================================================

func TestLoadCatalog(t *testing.T) {
	s := newTestStore(t)
	c, err := s.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(c.Clients) != 4 || len(c.Projects) != 4 || len(c.Team) != 4 {
		t.Fatalf("unexpected catalog sizes: %d clients, %d projects, %d team",
			len(c.Clients), len(c.Projects), len(c.Team))
	}
	if len(c.Analytics.WeeklyHours) != 7 {
		t.Fatalf("expected 7 weekly hour bars, got %d", len(c.Analytics.WeeklyHours))
	}
	if got := c.Setting("currency", "EUR"); got != "USD" {
		t.Fatalf("expected USD, got %q", got)
	}
	if got := c.Setting("nope", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if _, ok := c.ProjectByID(2); !ok {
		t.Fatal("expected project 2")
	}
}

func TestCatalogIDsUnique(t *testing.T) {
	s := newTestStore(t)
	c, err := s.Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]bool)
	check := func(kind, id string) {
		key := kind + ":" + id
		if seen[key] {
			t.Errorf("duplicate id %s", key)
		}
		seen[key] = true
	}
	for _, v := range c.Invoices {
		check("invoice", v.ID)
	}
	for _, p := range c.Projects {
		for _, is := range p.Issues {
			check("issue", is.ID)
		}
	}
	for _, v := range c.RecurringInvoices {
		check("recurring", v.ID)
	}
	for _, v := range c.RecurringExpenses {
		check("recurring", v.ID)
	}
}
