package store

import (
	"context"
	"fmt"
)

// ListProjects returns every project in id order with its work types and
// issues attached.
func (s *Store) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, client, progress, hours, budget, spent, status FROM projects ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	index := make(map[int64]int)
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Client, &p.Progress, &p.Hours, &p.Budget, &p.Spent, &p.Status); err != nil {
			return nil, err
		}
		index[p.ID] = len(projects)
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	workTypes, err := s.listWorkTypes(ctx)
	if err != nil {
		return nil, err
	}
	for pid, wts := range workTypes {
		if i, ok := index[pid]; ok {
			projects[i].WorkTypes = wts
		}
	}

	issues, err := s.ListIssues(ctx)
	if err != nil {
		return nil, err
	}
	for _, is := range issues {
		if i, ok := index[is.ProjectID]; ok {
			projects[i].Issues = append(projects[i].Issues, is)
		}
	}
	return projects, nil
}

func (s *Store) GetProject(ctx context.Context, id int64) (*Project, error) {
	projects, err := s.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, fmt.Errorf("get project %d: not found", id)
}

func (s *Store) listWorkTypes(ctx context.Context) (map[int64][]WorkType, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT project_id, id, name, color, hours FROM work_types ORDER BY project_id, position`,
	)
	if err != nil {
		return nil, fmt.Errorf("list work types: %w", err)
	}
	defer rows.Close()

	out := make(map[int64][]WorkType)
	for rows.Next() {
		var pid int64
		var wt WorkType
		if err := rows.Scan(&pid, &wt.ID, &wt.Name, &wt.Color, &wt.Hours); err != nil {
			return nil, err
		}
		out[pid] = append(out[pid], wt)
	}
	return out, rows.Err()
}

// ListIssues returns the issues of all projects, grouped by project and
// ordered by issue id within each.
func (s *Store) ListIssues(ctx context.Context) ([]Issue, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, project_id, title, status, assignee, estimate, actual_time, work_type, linear_id, created_at
		FROM issues ORDER BY project_id, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer rows.Close()

	var issues []Issue
	for rows.Next() {
		var is Issue
		var createdAt string
		if err := rows.Scan(&is.ID, &is.ProjectID, &is.Title, &is.Status, &is.Assignee,
			&is.Estimate, &is.ActualTime, &is.WorkType, &is.LinearID, &createdAt); err != nil {
			return nil, err
		}
		if is.CreatedAt, err = parseDate(createdAt); err != nil {
			return nil, err
		}
		issues = append(issues, is)
	}
	return issues, rows.Err()
}
