package view

import (
	"strconv"

	"github.com/sadopc/studiodesk/internal/store"
)

// IssuePageSize is the default page size of the issue and time entry tables on the
// projects screen.
const IssuePageSize = 10

// IssueRow is an issue together with the project it belongs to.
type IssueRow struct {
	store.Issue
	ProjectName string
	Client      string
	WorkTypes   []store.WorkType
}

// WorkTypeName resolves the issue's work type id against its project.
func (r IssueRow) WorkTypeName() string {
	for _, wt := range r.WorkTypes {
		if wt.ID == r.WorkType {
			return wt.Name
		}
	}
	return r.WorkType
}

type ProjectsState struct {
	catalog *store.Catalog
	list    ListState

	// Entries is the filter state of the project time entry table. Its
	// project and member keys hold ids.
	Entries ListState

	IssuePage     int
	IssuePageSize int
	Selected      *store.Project
	DialogOpen    bool
}

func NewProjectsState(c *store.Catalog, pageSize int) *ProjectsState {
	if pageSize <= 0 {
		pageSize = IssuePageSize
	}
	return &ProjectsState{
		catalog:       c,
		list:          NewListState(pageSize, KeyStatus, KeyClient),
		Entries:       NewListState(pageSize, KeyProject, KeyMember),
		IssuePage:     1,
		IssuePageSize: pageSize,
	}
}

func (s *ProjectsState) List() *ListState { return &s.list }

func (s *ProjectsState) FilterKeys() []string { return []string{KeyStatus, KeyClient} }

func (s *ProjectsState) FilterOptions(key string) []Option {
	switch key {
	case KeyStatus:
		return []Option{{Value: "active", Label: "Active"}, {Value: "archived", Label: "Archived"}}
	case KeyClient:
		return Options(Distinct(Pluck(s.catalog.Projects, func(p store.Project) string { return p.Client }))...)
	}
	return nil
}

func (s *ProjectsState) Projects() []store.Project {
	return Filter(s.catalog.Projects, func(p store.Project) bool {
		return MatchQuery(s.list.Query, p.Name, p.Client) &&
			MatchFilters(s.list.Filters, func(key string) (string, bool) {
				switch key {
				case KeyStatus:
					return p.Status, true
				case KeyClient:
					return p.Client, true
				}
				return "", false
			})
	})
}

func (s *ProjectsState) Page() Page[store.Project] {
	return Paginate(s.Projects(), s.list.Page, s.list.PageSize)
}

// Select opens the detail view of the project with id. It reports false and
// leaves the selection unchanged when no such project exists.
func (s *ProjectsState) Select(id int64) bool {
	p, ok := s.catalog.ProjectByID(id)
	if !ok {
		return false
	}
	s.Selected = &p
	return true
}

func (s *ProjectsState) Deselect() { s.Selected = nil }

// AllIssues flattens the issues of every project, in project order.
func (s *ProjectsState) AllIssues() []IssueRow {
	var rows []IssueRow
	for _, p := range s.catalog.Projects {
		for _, is := range p.Issues {
			rows = append(rows, IssueRow{Issue: is, ProjectName: p.Name, Client: p.Client, WorkTypes: p.WorkTypes})
		}
	}
	return rows
}

func (s *ProjectsState) IssuesPage() Page[IssueRow] {
	return Paginate(s.AllIssues(), s.IssuePage, s.IssuePageSize)
}

func (s *ProjectsState) EntryFilterKeys() []string { return []string{KeyProject, KeyMember} }

func (s *ProjectsState) EntryFilterOptions(key string) []Option {
	switch key {
	case KeyProject:
		opts := make([]Option, len(s.catalog.Projects))
		for i, p := range s.catalog.Projects {
			opts[i] = Option{Value: strconv.FormatInt(p.ID, 10), Label: p.Name}
		}
		return opts
	case KeyMember:
		opts := make([]Option, len(s.catalog.Team))
		for i, m := range s.catalog.Team {
			opts[i] = Option{Value: strconv.FormatInt(m.ID, 10), Label: m.Name}
		}
		return opts
	}
	return nil
}

// TimeEntries returns the project time entries matching the entry filters.
// Search covers project, member, description and linked issue ids.
func (s *ProjectsState) TimeEntries() []store.ProjectTimeEntry {
	return Filter(s.catalog.ProjectEntries, func(e store.ProjectTimeEntry) bool {
		fields := append([]string{e.ProjectName, e.MemberName, e.Description}, e.IssueIDs...)
		return MatchQuery(s.Entries.Query, fields...) &&
			s.Entries.Range.Contains(e.Date) &&
			MatchFilters(s.Entries.Filters, func(key string) (string, bool) {
				switch key {
				case KeyProject:
					return strconv.FormatInt(e.ProjectID, 10), true
				case KeyMember:
					return strconv.FormatInt(e.MemberID, 10), true
				}
				return "", false
			})
	})
}

func (s *ProjectsState) TimeEntriesPage() Page[store.ProjectTimeEntry] {
	return Paginate(s.TimeEntries(), s.Entries.Page, s.Entries.PageSize)
}

// entriesLister exposes the time entry table to the filter bar.
type entriesLister struct{ s *ProjectsState }

func (l entriesLister) List() *ListState                  { return &l.s.Entries }
func (l entriesLister) FilterKeys() []string              { return l.s.EntryFilterKeys() }
func (l entriesLister) FilterOptions(key string) []Option { return l.s.EntryFilterOptions(key) }

// EntriesLister returns the time entry table as a Lister.
func (s *ProjectsState) EntriesLister() Lister { return entriesLister{s} }
