package store

import (
	"context"
	"fmt"
	"strings"
)

// ListProjectTimeEntries returns the per-project time logs in id order.
func (s *Store) ListProjectTimeEntries(ctx context.Context) ([]ProjectTimeEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, date, project_id, project_name, member_id, member_name, hours, description, issue_ids
		FROM project_time_entries ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list project time entries: %w", err)
	}
	defer rows.Close()

	var entries []ProjectTimeEntry
	for rows.Next() {
		var e ProjectTimeEntry
		var date, issueIDs string
		if err := rows.Scan(&e.ID, &date, &e.ProjectID, &e.ProjectName, &e.MemberID,
			&e.MemberName, &e.Hours, &e.Description, &issueIDs); err != nil {
			return nil, err
		}
		if e.Date, err = parseDate(date); err != nil {
			return nil, err
		}
		e.IssueIDs = splitList(issueIDs)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListTimesheetEntries returns the time tracking sheet in id order.
func (s *Store) ListTimesheetEntries(ctx context.Context) ([]TimesheetEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, project, member, duration, description FROM timesheet_entries ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list timesheet entries: %w", err)
	}
	defer rows.Close()

	var entries []TimesheetEntry
	for rows.Next() {
		var e TimesheetEntry
		var date string
		if err := rows.Scan(&e.ID, &date, &e.Project, &e.Member, &e.Duration, &e.Description); err != nil {
			return nil, err
		}
		if e.Date, err = parseDate(date); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// splitList parses a comma-separated column, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
