package store

import (
	"context"
	"fmt"
)

func (s *Store) ListClients(ctx context.Context) ([]Client, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, phone, company, balance, projects, status, created_at FROM clients ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var clients []Client
	for rows.Next() {
		var c Client
		var createdAt string
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Company,
			&c.Balance, &c.ProjectCount, &c.Status, &createdAt); err != nil {
			return nil, err
		}
		if c.CreatedAt, err = parseDate(createdAt); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (s *Store) ListTeam(ctx context.Context) ([]TeamMember, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, initials, role, rate, rate_type, total_hours, salary FROM team_members ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list team: %w", err)
	}
	defer rows.Close()

	var team []TeamMember
	for rows.Next() {
		var m TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Initials, &m.Role, &m.Rate,
			&m.RateType, &m.TotalHours, &m.Salary); err != nil {
			return nil, err
		}
		team = append(team, m)
	}
	return team, rows.Err()
}

func (s *Store) ListIntegrations(ctx context.Context) ([]Integration, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, description, status, icon FROM integrations ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list integrations: %w", err)
	}
	defer rows.Close()

	var out []Integration
	for rows.Next() {
		var in Integration
		if err := rows.Scan(&in.ID, &in.Name, &in.Description, &in.Status, &in.Icon); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}
