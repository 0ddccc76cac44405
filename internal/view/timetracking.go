package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/sadopc/studiodesk/internal/store"
)

type TimeTrackingState struct {
	catalog *store.Catalog
	list    ListState

	ScreenshotsEnabled   bool
	ManualEditingEnabled bool
	DialogOpen           bool
}

func NewTimeTrackingState(c *store.Catalog, pageSize int) *TimeTrackingState {
	return &TimeTrackingState{
		catalog:            c,
		list:               NewListState(pageSize, KeyProject, KeyMember),
		ScreenshotsEnabled: true,
	}
}

func (s *TimeTrackingState) List() *ListState { return &s.list }

func (s *TimeTrackingState) FilterKeys() []string { return []string{KeyProject, KeyMember} }

func (s *TimeTrackingState) FilterOptions(key string) []Option {
	switch key {
	case KeyProject:
		return Options(Distinct(Pluck(s.catalog.Timesheet, func(e store.TimesheetEntry) string { return e.Project }))...)
	case KeyMember:
		return Options(Pluck(s.catalog.Team, func(m store.TeamMember) string { return m.Name })...)
	}
	return nil
}

func (s *TimeTrackingState) Entries() []store.TimesheetEntry {
	return Filter(s.catalog.Timesheet, func(e store.TimesheetEntry) bool {
		return MatchQuery(s.list.Query, e.Project, e.Member, e.Description) &&
			s.list.Range.Contains(e.Date) &&
			MatchFilters(s.list.Filters, func(key string) (string, bool) {
				switch key {
				case KeyProject:
					return e.Project, true
				case KeyMember:
					return e.Member, true
				}
				return "", false
			})
	})
}

func (s *TimeTrackingState) Page() Page[store.TimesheetEntry] {
	return Paginate(s.Entries(), s.list.Page, s.list.PageSize)
}

// TotalTracked sums the durations of the visible entries. Durations that do
// not parse count as zero.
func (s *TimeTrackingState) TotalTracked() time.Duration {
	var total time.Duration
	for _, e := range s.Entries() {
		d, err := ParseEntryDuration(e.Duration)
		if err == nil {
			total += d
		}
	}
	return total
}

func (s *TimeTrackingState) TotalTrackedLabel() string {
	return FormatHoursMinutes(s.TotalTracked())
}

// ParseEntryDuration parses a sheet duration such as "8h 30m".
func ParseEntryDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", s, err)
	}
	return d, nil
}

// FormatHoursMinutes renders d the way the time sheet does, e.g. "30h 45m".
func FormatHoursMinutes(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %02dm", h, m)
}
