package view

import (
	"strconv"
	"time"

	"github.com/sadopc/studiodesk/internal/store"
)

// Finance filter keys.
const (
	KeyProject  = "project"
	KeyClient   = "client"
	KeyMember   = "member"
	KeyCategory = "category"
	KeyStatus   = "status"
)

// Kind tags the entity type behind a FinanceRecord.
type Kind string

const (
	KindIncome           Kind = "income"
	KindExpense          Kind = "expense"
	KindSalary           Kind = "salary"
	KindInvoice          Kind = "invoice"
	KindRecurringInvoice Kind = "recurring_invoice"
	KindRecurringExpense Kind = "recurring_expense"
)

// accessor returns a record's value for one filter key and whether the
// record carries that field.
type accessor[T any] func(T) (string, bool)

func present(s string) (string, bool) { return s, s != "" }

// The tables below decide which filter keys apply to which kind. A key that
// is missing from a kind's table does not constrain that kind at all. A key
// that is listed but whose accessor reports no value excludes the record
// whenever that key is constrained.

var incomeFields = map[string]accessor[store.Income]{
	KeyProject: func(r store.Income) (string, bool) { return r.Project, true },
	KeyClient:  func(r store.Income) (string, bool) { return r.Client, true },
	KeyMember:  func(r store.Income) (string, bool) { return present(r.Member) },
}

var expenseFields = map[string]accessor[store.Expense]{
	KeyProject:  func(r store.Expense) (string, bool) { return present(r.Project) },
	KeyClient:   func(r store.Expense) (string, bool) { return present(r.Client) },
	KeyMember:   func(r store.Expense) (string, bool) { return present(r.Member) },
	KeyCategory: func(r store.Expense) (string, bool) { return r.Category, true },
}

// Salaries are matched on the member key by the employee's name.
var salaryFields = map[string]accessor[store.Salary]{
	KeyMember: func(r store.Salary) (string, bool) { return r.Name, true },
}

var invoiceFields = map[string]accessor[store.Invoice]{
	KeyProject: func(r store.Invoice) (string, bool) { return r.Project, true },
	KeyClient:  func(r store.Invoice) (string, bool) { return r.Client, true },
	KeyStatus:  func(r store.Invoice) (string, bool) { return r.Status, true },
}

var recurringInvoiceFields = map[string]accessor[store.RecurringInvoice]{
	KeyProject: func(r store.RecurringInvoice) (string, bool) { return r.Project, true },
	KeyClient:  func(r store.RecurringInvoice) (string, bool) { return r.Client, true },
}

var recurringExpenseFields = map[string]accessor[store.RecurringExpense]{
	KeyCategory: func(r store.RecurringExpense) (string, bool) { return r.Category, true },
}

// matchFields applies the keys of f that table knows about to r.
func matchFields[T any](f Filters, table map[string]accessor[T], r T) bool {
	for key, get := range table {
		want := f.Get(key)
		if want == All {
			continue
		}
		got, ok := get(r)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// FieldKeys lists the filter keys that apply to kind.
func FieldKeys(kind Kind) []string {
	switch kind {
	case KindIncome:
		return keysOf(incomeFields)
	case KindExpense:
		return keysOf(expenseFields)
	case KindSalary:
		return keysOf(salaryFields)
	case KindInvoice:
		return keysOf(invoiceFields)
	case KindRecurringInvoice:
		return keysOf(recurringInvoiceFields)
	case KindRecurringExpense:
		return keysOf(recurringExpenseFields)
	}
	return nil
}

func keysOf[T any](table map[string]accessor[T]) []string {
	var keys []string
	for _, k := range []string{KeyProject, KeyClient, KeyMember, KeyCategory, KeyStatus} {
		if _, ok := table[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// FinanceRecord is one row of any finance entity, flattened for listing and
// export. Date is zero for kinds that carry none.
type FinanceRecord struct {
	Kind   Kind
	ID     string
	Label  string
	Amount int64
	Date   time.Time
	Status string
}

// Summary is the finance overview.
type Summary struct {
	TotalIncome   int64
	TotalExpenses int64
	TotalSalaries int64
	Profit        int64
	AmountWaiting int64
}

// Summarize computes the overview from already filtered sets. Paid invoices
// count as income and sent or overdue invoices as waiting, both only when
// the invoice is included in finance.
func Summarize(income []store.Income, expenses []store.Expense, salaries []store.Salary, invoices []store.Invoice) Summary {
	var s Summary
	for _, in := range income {
		s.TotalIncome += in.Amount
	}
	for _, inv := range invoices {
		if !inv.IncludeInFinance {
			continue
		}
		switch inv.Status {
		case "paid":
			s.TotalIncome += inv.Amount
		case "sent", "overdue":
			s.AmountWaiting += inv.Amount
		}
	}
	for _, e := range expenses {
		s.TotalExpenses += e.Amount
	}
	for _, sal := range salaries {
		s.TotalSalaries += sal.Amount
	}
	s.Profit = s.TotalIncome - s.TotalExpenses - s.TotalSalaries
	return s
}

// FinanceOptions holds the selectable values of each finance filter.
type FinanceOptions struct {
	Projects   []string
	Clients    []string
	Members    []string
	Categories []string
	Statuses   []string
}

var financeStatuses = []string{"paid", "sent", "draft", "overdue", "active", "paused"}

func NewFinanceOptions(c *store.Catalog) FinanceOptions {
	return FinanceOptions{
		Projects:   Pluck(c.Projects, func(p store.Project) string { return p.Name }),
		Clients:    Distinct(Pluck(c.Projects, func(p store.Project) string { return p.Client })),
		Members:    Pluck(c.Team, func(m store.TeamMember) string { return m.Name }),
		Categories: Distinct(Pluck(c.Expenses, func(e store.Expense) string { return e.Category })),
		Statuses:   financeStatuses,
	}
}

// FinanceState is the finance screen. Now stands in for the date of records
// that have none (salaries) when a date range is set.
type FinanceState struct {
	catalog *store.Catalog
	options FinanceOptions
	list    ListState
	Now     func() time.Time

	RecurringInvoiceOpen bool
	RecurringExpenseOpen bool
}

func NewFinanceState(c *store.Catalog, pageSize int) *FinanceState {
	return &FinanceState{
		catalog: c,
		options: NewFinanceOptions(c),
		list:    NewListState(pageSize, KeyStatus, KeyCategory, KeyProject, KeyClient, KeyMember),
		Now:     time.Now,
	}
}

func (s *FinanceState) List() *ListState { return &s.list }

func (s *FinanceState) FilterKeys() []string {
	return []string{KeyProject, KeyClient, KeyMember, KeyCategory, KeyStatus}
}

func (s *FinanceState) FilterOptions(key string) []Option {
	switch key {
	case KeyProject:
		return Options(s.options.Projects...)
	case KeyClient:
		return Options(s.options.Clients...)
	case KeyMember:
		return Options(s.options.Members...)
	case KeyCategory:
		return Options(s.options.Categories...)
	case KeyStatus:
		return Options(s.options.Statuses...)
	}
	return nil
}

func (s *FinanceState) Income() []store.Income {
	return Filter(s.catalog.Income, func(r store.Income) bool {
		return s.list.Range.Contains(r.Date) &&
			MatchQuery(s.list.Query, r.Client, r.Project, r.Member) &&
			matchFields(s.list.Filters, incomeFields, r)
	})
}

func (s *FinanceState) Expenses() []store.Expense {
	return Filter(s.catalog.Expenses, func(r store.Expense) bool {
		return s.list.Range.Contains(r.Date) &&
			MatchQuery(s.list.Query, r.Category, r.Project, r.Client, r.Member) &&
			matchFields(s.list.Filters, expenseFields, r)
	})
}

func (s *FinanceState) Salaries() []store.Salary {
	inRange := s.list.Range.Contains(s.now())
	return Filter(s.catalog.Salaries, func(r store.Salary) bool {
		return inRange &&
			MatchQuery(s.list.Query, r.Name, r.Role) &&
			matchFields(s.list.Filters, salaryFields, r)
	})
}

func (s *FinanceState) Invoices() []store.Invoice {
	return Filter(s.catalog.Invoices, func(r store.Invoice) bool {
		return s.list.Range.Contains(r.Date) &&
			MatchQuery(s.list.Query, r.ID, r.Client, r.Project) &&
			matchFields(s.list.Filters, invoiceFields, r)
	})
}

func (s *FinanceState) RecurringInvoices() []store.RecurringInvoice {
	return Filter(s.catalog.RecurringInvoices, func(r store.RecurringInvoice) bool {
		return MatchQuery(s.list.Query, r.ID, r.Client, r.Project) &&
			matchFields(s.list.Filters, recurringInvoiceFields, r)
	})
}

func (s *FinanceState) RecurringExpenses() []store.RecurringExpense {
	return Filter(s.catalog.RecurringExpenses, func(r store.RecurringExpense) bool {
		return MatchQuery(s.list.Query, r.ID, r.Category) &&
			matchFields(s.list.Filters, recurringExpenseFields, r)
	})
}

func (s *FinanceState) Summary() Summary {
	return Summarize(s.Income(), s.Expenses(), s.Salaries(), s.Invoices())
}

// Monthly is the fixed income/expense/salary history for the trend chart.
func (s *FinanceState) Monthly() []store.MonthlyFinancials {
	return s.catalog.Analytics.Monthly
}

// Records flattens every filtered set into one list, grouped by kind.
func (s *FinanceState) Records() []FinanceRecord {
	var out []FinanceRecord
	for _, r := range s.Income() {
		out = append(out, FinanceRecord{Kind: KindIncome, ID: strconv.FormatInt(r.ID, 10),
			Label: r.Client + " / " + r.Project, Amount: r.Amount, Date: r.Date})
	}
	for _, r := range s.Expenses() {
		out = append(out, FinanceRecord{Kind: KindExpense, ID: strconv.FormatInt(r.ID, 10),
			Label: r.Category, Amount: r.Amount, Date: r.Date})
	}
	for _, r := range s.Salaries() {
		out = append(out, FinanceRecord{Kind: KindSalary, ID: strconv.FormatInt(r.ID, 10),
			Label: r.Name + " (" + r.Role + ")", Amount: r.Amount, Status: r.Status})
	}
	for _, r := range s.Invoices() {
		out = append(out, FinanceRecord{Kind: KindInvoice, ID: r.ID,
			Label: r.Client + " / " + r.Project, Amount: r.Amount, Date: r.Date, Status: r.Status})
	}
	for _, r := range s.RecurringInvoices() {
		out = append(out, FinanceRecord{Kind: KindRecurringInvoice, ID: r.ID,
			Label: r.Client + " / " + r.Project + " (" + r.Frequency + ")", Amount: r.Amount, Status: r.Status})
	}
	for _, r := range s.RecurringExpenses() {
		out = append(out, FinanceRecord{Kind: KindRecurringExpense, ID: r.ID,
			Label: r.Category + " (" + r.Frequency + ")", Amount: r.Amount, Status: r.Status})
	}
	return out
}

func (s *FinanceState) RecordsPage() Page[FinanceRecord] {
	return Paginate(s.Records(), s.list.Page, s.list.PageSize)
}

func (s *FinanceState) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
