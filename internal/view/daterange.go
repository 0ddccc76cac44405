package view

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format accepted by ParseDate.
const DateLayout = "2006-01-02"

const labelLayout = "Jan 2, 2006"

// DateRange is an optional inclusive window. A nil bound is open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// ParseDate parses an ISO date such as 2024-01-15. Dates carry no zone
// information and are compared as UTC midnights.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// NewDateRange builds a range from ISO date strings; an empty string leaves
// that bound open.
func NewDateRange(from, to string) (DateRange, error) {
	var r DateRange
	if from != "" {
		t, err := ParseDate(from)
		if err != nil {
			return DateRange{}, err
		}
		r.From = &t
	}
	if to != "" {
		t, err := ParseDate(to)
		if err != nil {
			return DateRange{}, err
		}
		r.To = &t
	}
	return r, nil
}

func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}

// Complete reports whether both bounds are set.
func (r DateRange) Complete() bool {
	return r.From != nil && r.To != nil
}

// Contains reports whether t lies within the range. Both bounds are
// inclusive.
func (r DateRange) Contains(t time.Time) bool {
	if r.From != nil && t.Before(*r.From) {
		return false
	}
	if r.To != nil && t.After(*r.To) {
		return false
	}
	return true
}

// ContainsDate is Contains for an ISO date string. A string that does not
// parse passes an open range and fails any bounded one.
func (r DateRange) ContainsDate(s string) bool {
	if r.IsZero() {
		return true
	}
	t, err := ParseDate(s)
	if err != nil {
		return false
	}
	return r.Contains(t)
}

func (r DateRange) Label() string {
	switch {
	case r.From != nil && r.To != nil:
		return r.From.Format(labelLayout) + " - " + r.To.Format(labelLayout)
	case r.From != nil:
		return "From " + r.From.Format(labelLayout)
	case r.To != nil:
		return "Until " + r.To.Format(labelLayout)
	default:
		return "All dates"
	}
}

// Period is a reporting window preset.
type Period string

const (
	PeriodToday  Period = "today"
	PeriodWeek   Period = "week"
	PeriodMonth  Period = "month"
	PeriodCustom Period = "custom"
)

var Periods = []Period{PeriodToday, PeriodWeek, PeriodMonth, PeriodCustom}

func PeriodLabel(p Period, custom DateRange) string {
	switch p {
	case PeriodToday:
		return "Today"
	case PeriodWeek:
		return "This Week"
	case PeriodMonth:
		return "This Month"
	case PeriodCustom:
		if custom.Complete() {
			return custom.Label()
		}
		return "Custom Range"
	}
	return string(p)
}

// PeriodState is the period selector shared by the dashboard and insights
// screens.
type PeriodState struct {
	Period Period
	Custom DateRange
}

// SetPeriod selects p. Leaving the custom period drops its range.
func (s *PeriodState) SetPeriod(p Period) {
	s.Period = p
	if p != PeriodCustom {
		s.Custom = DateRange{}
	}
}

// SetCustom selects the custom period with range r.
func (s *PeriodState) SetCustom(r DateRange) {
	s.Period = PeriodCustom
	s.Custom = r
}

// CyclePeriod moves to the next preset, wrapping around.
func (s *PeriodState) CyclePeriod() {
	for i, p := range Periods {
		if p == s.Period {
			s.SetPeriod(Periods[(i+1)%len(Periods)])
			return
		}
	}
	s.SetPeriod(Periods[0])
}

func (s PeriodState) Label() string {
	return PeriodLabel(s.Period, s.Custom)
}
