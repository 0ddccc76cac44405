// Package export writes invoices, time entries and the finance overview to
// CSV, JSON and XLSX files.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/sadopc/studiodesk/internal/store"
	"github.com/sadopc/studiodesk/internal/view"
)

const dateLayout = "2006-01-02"

// Report is the data of one export. Callers pass already filtered sets.
type Report struct {
	Invoices   []store.Invoice
	Entries    []store.ProjectTimeEntry
	Summary    view.Summary
	Records    []view.FinanceRecord
	ExportedAt time.Time
}

// Sheet is a flat table. Cells keep their Go type so spreadsheets get
// numbers where the data has them.
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]any
}

// Sheets returns the report as invoices, entries and finance tables.
func (r Report) Sheets() []Sheet {
	return []Sheet{InvoiceSheet(r.Invoices), EntrySheet(r.Entries), FinanceSheet(r.Summary, r.Records)}
}

func InvoiceSheet(invoices []store.Invoice) Sheet {
	s := Sheet{
		Name:   "Invoices",
		Header: []string{"ID", "Client", "Project", "Amount", "Date", "Due Date", "Status", "In Finance"},
	}
	for _, inv := range invoices {
		s.Rows = append(s.Rows, []any{
			inv.ID,
			inv.Client,
			inv.Project,
			inv.Amount,
			formatDate(inv.Date),
			formatDate(inv.DueDate),
			inv.Status,
			inv.IncludeInFinance,
		})
	}
	return s
}

func EntrySheet(entries []store.ProjectTimeEntry) Sheet {
	s := Sheet{
		Name:   "Time Entries",
		Header: []string{"ID", "Date", "Project", "Member", "Hours", "Duration", "Description", "Issues"},
	}
	for _, e := range entries {
		s.Rows = append(s.Rows, []any{
			e.ID,
			formatDate(e.Date),
			e.ProjectName,
			e.MemberName,
			e.Hours,
			formatHours(e.Hours),
			e.Description,
			strings.Join(e.IssueIDs, " "),
		})
	}
	return s
}

// FinanceSheet lists the summary totals followed by every record.
func FinanceSheet(sum view.Summary, records []view.FinanceRecord) Sheet {
	s := Sheet{
		Name:   "Finance",
		Header: []string{"Kind", "ID", "Label", "Amount", "Date", "Status"},
		Rows: [][]any{
			{"total", "", "Income", sum.TotalIncome, "", ""},
			{"total", "", "Expenses", sum.TotalExpenses, "", ""},
			{"total", "", "Salaries", sum.TotalSalaries, "", ""},
			{"total", "", "Profit", sum.Profit, "", ""},
			{"total", "", "Waiting", sum.AmountWaiting, "", ""},
		},
	}
	for _, rec := range records {
		s.Rows = append(s.Rows, []any{string(rec.Kind), rec.ID, rec.Label, rec.Amount, formatDate(rec.Date), rec.Status})
	}
	return s
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// formatHours renders fractional hours as HH:MM.
func formatHours(hours float64) string {
	mins := int64(hours*60 + 0.5)
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}
