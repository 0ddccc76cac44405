package store

import (
	"context"
	"fmt"
)

// Catalog is a read-only snapshot of every entity set. It is built once at
// startup and shared by all screens; nothing writes back into it.
type Catalog struct {
	Clients           []Client
	Projects          []Project
	Team              []TeamMember
	Invoices          []Invoice
	Income            []Income
	Expenses          []Expense
	Salaries          []Salary
	RecurringInvoices []RecurringInvoice
	RecurringExpenses []RecurringExpense
	ProjectEntries    []ProjectTimeEntry
	Timesheet         []TimesheetEntry
	Integrations      []Integration
	Settings          []Setting
	Analytics         Analytics
}

// Load reads every table into a Catalog.
func (s *Store) Load(ctx context.Context) (*Catalog, error) {
	c := &Catalog{Analytics: sampleAnalytics()}

	var err error
	steps := []struct {
		name string
		run  func() error
	}{
		{"clients", func() error { c.Clients, err = s.ListClients(ctx); return err }},
		{"projects", func() error { c.Projects, err = s.ListProjects(ctx); return err }},
		{"team", func() error { c.Team, err = s.ListTeam(ctx); return err }},
		{"invoices", func() error { c.Invoices, err = s.ListInvoices(ctx); return err }},
		{"income", func() error { c.Income, err = s.ListIncome(ctx); return err }},
		{"expenses", func() error { c.Expenses, err = s.ListExpenses(ctx); return err }},
		{"salaries", func() error { c.Salaries, err = s.ListSalaries(ctx); return err }},
		{"recurring invoices", func() error { c.RecurringInvoices, err = s.ListRecurringInvoices(ctx); return err }},
		{"recurring expenses", func() error { c.RecurringExpenses, err = s.ListRecurringExpenses(ctx); return err }},
		{"project entries", func() error { c.ProjectEntries, err = s.ListProjectTimeEntries(ctx); return err }},
		{"timesheet", func() error { c.Timesheet, err = s.ListTimesheetEntries(ctx); return err }},
		{"integrations", func() error { c.Integrations, err = s.ListIntegrations(ctx); return err }},
		{"settings", func() error { c.Settings, err = s.GetAllSettings(ctx); return err }},
	}
	for _, step := range steps {
		if err := step.run(); err != nil {
			return nil, fmt.Errorf("load %s: %w", step.name, err)
		}
	}
	return c, nil
}

// Setting returns the value stored under key, or fallback.
func (c *Catalog) Setting(key, fallback string) string {
	for _, s := range c.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return fallback
}

func (c *Catalog) ProjectByID(id int64) (Project, bool) {
	for _, p := range c.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}
