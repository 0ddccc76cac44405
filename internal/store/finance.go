package store

import (
	"context"
	"fmt"
)

func (s *Store) ListInvoices(ctx context.Context) ([]Invoice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, client, project, amount, date, due_date, status, include_in_finance
		FROM invoices ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var invoices []Invoice
	for rows.Next() {
		var inv Invoice
		var date, due string
		var include int
		if err := rows.Scan(&inv.ID, &inv.Client, &inv.Project, &inv.Amount,
			&date, &due, &inv.Status, &include); err != nil {
			return nil, err
		}
		if inv.Date, err = parseDate(date); err != nil {
			return nil, err
		}
		if inv.DueDate, err = parseDate(due); err != nil {
			return nil, err
		}
		inv.IncludeInFinance = include == 1
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (s *Store) ListIncome(ctx context.Context) ([]Income, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, client, project, member, amount, date FROM income ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list income: %w", err)
	}
	defer rows.Close()

	var out []Income
	for rows.Next() {
		var in Income
		var date string
		if err := rows.Scan(&in.ID, &in.Client, &in.Project, &in.Member, &in.Amount, &date); err != nil {
			return nil, err
		}
		if in.Date, err = parseDate(date); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

func (s *Store) ListExpenses(ctx context.Context) ([]Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, amount, date, project, client, member FROM expenses ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	defer rows.Close()

	var out []Expense
	for rows.Next() {
		var e Expense
		var date string
		if err := rows.Scan(&e.ID, &e.Category, &e.Amount, &date, &e.Project, &e.Client, &e.Member); err != nil {
			return nil, err
		}
		if e.Date, err = parseDate(date); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) ListSalaries(ctx context.Context) ([]Salary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, role, amount, status FROM salaries ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list salaries: %w", err)
	}
	defer rows.Close()

	var out []Salary
	for rows.Next() {
		var sal Salary
		if err := rows.Scan(&sal.ID, &sal.Name, &sal.Role, &sal.Amount, &sal.Status); err != nil {
			return nil, err
		}
		out = append(out, sal)
	}
	return out, rows.Err()
}

func (s *Store) ListRecurringInvoices(ctx context.Context) ([]RecurringInvoice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, client, project, amount, frequency, next_due_date, status
		FROM recurring_invoices ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list recurring invoices: %w", err)
	}
	defer rows.Close()

	var out []RecurringInvoice
	for rows.Next() {
		var r RecurringInvoice
		var next string
		if err := rows.Scan(&r.ID, &r.Client, &r.Project, &r.Amount, &r.Frequency, &next, &r.Status); err != nil {
			return nil, err
		}
		if r.NextDueDate, err = parseDate(next); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) ListRecurringExpenses(ctx context.Context) ([]RecurringExpense, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, category, amount, frequency, next_due_date, status
		FROM recurring_expenses ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("list recurring expenses: %w", err)
	}
	defer rows.Close()

	var out []RecurringExpense
	for rows.Next() {
		var r RecurringExpense
		var next string
		if err := rows.Scan(&r.ID, &r.Category, &r.Amount, &r.Frequency, &next, &r.Status); err != nil {
			return nil, err
		}
		if r.NextDueDate, err = parseDate(next); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
