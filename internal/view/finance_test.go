package view

import (
	"testing"
	"time"

	"github.com/sadopc/studiodesk/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_InvoiceScenario(t *testing.T) {
	c := &store.Catalog{
		Invoices: []store.Invoice{
			{ID: "A", Status: "paid", IncludeInFinance: true, Amount: 8500},
			{ID: "B", Status: "sent", IncludeInFinance: true, Amount: 15000},
			{ID: "C", Status: "draft", IncludeInFinance: false, Amount: 12000},
		},
	}
	got := NewFinanceState(c, 0).Summary()

	assert.Equal(t, Summary{
		TotalIncome:   8500,
		TotalExpenses: 0,
		TotalSalaries: 0,
		Profit:        8500,
		AmountWaiting: 15000,
	}, got)
}

func TestSummarize_ExcludedInvoicesDoNotCount(t *testing.T) {
	got := Summarize(nil, nil, nil, []store.Invoice{
		{Status: "paid", IncludeInFinance: false, Amount: 100},
		{Status: "overdue", IncludeInFinance: false, Amount: 200},
		{Status: "overdue", IncludeInFinance: true, Amount: 300},
	})
	assert.Zero(t, got.TotalIncome)
	assert.Equal(t, int64(300), got.AmountWaiting)
}

func TestSummarize_NegativeProfit(t *testing.T) {
	got := Summarize(
		[]store.Income{{Amount: 100}},
		[]store.Expense{{Amount: 250}},
		[]store.Salary{{Amount: 50}},
		nil,
	)
	assert.Equal(t, int64(-200), got.Profit)
}

func TestFinanceState_SampleTotals(t *testing.T) {
	s := NewFinanceState(loadCatalog(t), 0)
	assert.Equal(t, Summary{
		TotalIncome:   58500,
		TotalExpenses: 7500,
		TotalSalaries: 41080,
		Profit:        9920,
		AmountWaiting: 20000,
	}, s.Summary())
}

func TestFinanceState_MemberFilter(t *testing.T) {
	s := NewFinanceState(loadCatalog(t), 0)
	s.List().SetFilter(KeyMember, "John Doe")

	income := s.Income()
	require.Len(t, income, 1, "income without a member is excluded")
	assert.Equal(t, "Project Alpha", income[0].Project)

	expenses := s.Expenses()
	require.Len(t, expenses, 1)
	assert.Equal(t, "Equipment", expenses[0].Category)

	salaries := s.Salaries()
	require.Len(t, salaries, 1, "salaries match the member key by name")
	assert.Equal(t, int64(13600), salaries[0].Amount)

	assert.Len(t, s.Invoices(), 4, "invoices have no member field")

	sum := s.Summary()
	assert.Equal(t, int64(15000+8500), sum.TotalIncome)
	assert.Equal(t, int64(20000), sum.AmountWaiting)
}

func TestFinanceState_ProjectFilter(t *testing.T) {
	s := NewFinanceState(loadCatalog(t), 0)
	s.List().SetFilter(KeyProject, "Project Alpha")

	assert.Len(t, s.Income(), 1)
	assert.Len(t, s.Expenses(), 1, "expenses without a project are excluded")
	assert.Len(t, s.Salaries(), 4, "salaries have no project field")
	assert.Len(t, s.Invoices(), 1)
	assert.Empty(t, s.RecurringInvoices())
	assert.Len(t, s.RecurringExpenses(), 2, "recurring expenses have no project field")

	sum := s.Summary()
	assert.Equal(t, int64(15000), sum.TotalIncome)
	assert.Equal(t, int64(2500), sum.TotalExpenses)
	assert.Equal(t, int64(15000), sum.AmountWaiting)
}

func TestFinanceState_CategoryAndStatus(t *testing.T) {
	s := NewFinanceState(loadCatalog(t), 0)
	s.List().SetFilter(KeyCategory, "Office Rent")

	require.Len(t, s.Expenses(), 1)
	require.Len(t, s.RecurringExpenses(), 1)
	assert.Equal(t, "REC-EXP-001", s.RecurringExpenses()[0].ID)
	assert.Len(t, s.Income(), 3)

	s.List().ClearFilters()
	s.List().SetFilter(KeyStatus, "paid")
	invoices := s.Invoices()
	require.Len(t, invoices, 1)
	assert.Equal(t, "INV-002", invoices[0].ID)
	assert.Len(t, s.RecurringInvoices(), 2, "recurring invoices ignore the status key")
}

func TestFinanceState_DateRange(t *testing.T) {
	s := NewFinanceState(loadCatalog(t), 0)
	r, err := NewDateRange("2024-01-15", "2024-01-20")
	require.NoError(t, err)
	s.List().SetRange(r)

	s.Now = func() time.Time { return day("2024-06-01") }
	sum := s.Summary()
	assert.Equal(t, int64(25000+8500), sum.TotalIncome)
	assert.Equal(t, int64(2500+800), sum.TotalExpenses)
	assert.Zero(t, sum.TotalSalaries, "salaries are dated by the clock")
	assert.Equal(t, int64(15000), sum.AmountWaiting)
	assert.Len(t, s.RecurringInvoices(), 2, "recurring records ignore the range")

	s.Now = func() time.Time { return day("2024-01-17") }
	assert.Equal(t, int64(41080), s.Summary().TotalSalaries)
}

func TestFinanceState_ProfitIdentity(t *testing.T) {
	c := loadCatalog(t)
	s := NewFinanceState(c, 0)
	s.Now = func() time.Time { return day("2024-01-17") }

	ranges := []DateRange{{}}
	for _, pair := range [][2]string{{"2024-01-15", ""}, {"", "2024-01-10"}, {"2024-01-01", "2024-01-31"}} {
		r, err := NewDateRange(pair[0], pair[1])
		require.NoError(t, err)
		ranges = append(ranges, r)
	}

	for _, key := range s.FilterKeys() {
		values := append([]string{All}, Pluck(s.FilterOptions(key), func(o Option) string { return o.Value })...)
		for _, v := range values {
			for _, r := range ranges {
				s.List().ClearFilters()
				s.List().SetFilter(key, v)
				s.List().SetRange(r)
				sum := s.Summary()
				assert.Equal(t, sum.Profit, sum.TotalIncome-sum.TotalExpenses-sum.TotalSalaries,
					"%s=%s range=%s", key, v, r.Label())
			}
		}
	}
}

func TestFinanceOptions(t *testing.T) {
	opts := NewFinanceOptions(loadCatalog(t))
	assert.Equal(t, []string{"Project Alpha", "Project Beta", "Project Gamma", "Project Delta"}, opts.Projects)
	assert.Equal(t, []string{"Acme Corp", "TechStart Inc", "Design Studio", "StartupXYZ"}, opts.Clients)
	assert.Equal(t, []string{"John Doe", "Jane Smith", "Mike Johnson", "Sarah Williams"}, opts.Members)
	assert.Equal(t, []string{"Software Licenses", "Office Rent", "Equipment", "Marketing"}, opts.Categories)
	assert.Equal(t, []string{"paid", "sent", "draft", "overdue", "active", "paused"}, opts.Statuses)
}

func TestFieldKeys(t *testing.T) {
	assert.Equal(t, []string{KeyProject, KeyClient, KeyMember}, FieldKeys(KindIncome))
	assert.Equal(t, []string{KeyProject, KeyClient, KeyMember, KeyCategory}, FieldKeys(KindExpense))
	assert.Equal(t, []string{KeyMember}, FieldKeys(KindSalary))
	assert.Equal(t, []string{KeyProject, KeyClient, KeyStatus}, FieldKeys(KindInvoice))
	assert.Equal(t, []string{KeyProject, KeyClient}, FieldKeys(KindRecurringInvoice))
	assert.Equal(t, []string{KeyCategory}, FieldKeys(KindRecurringExpense))
	assert.Nil(t, FieldKeys("unknown"))
}

func TestFinanceState_Records(t *testing.T) {
	s := NewFinanceState(loadCatalog(t), 0)
	records := s.Records()
	assert.Len(t, records, 3+4+4+4+2+2)
	assert.Equal(t, KindIncome, records[0].Kind)
	assert.Equal(t, KindRecurringExpense, records[len(records)-1].Kind)

	for _, r := range records {
		if r.Kind == KindSalary {
			assert.True(t, r.Date.IsZero())
		}
	}
}

func TestFinanceState_RecordsPage(t *testing.T) {
	s := NewFinanceState(loadCatalog(t), 5)

	p := s.RecordsPage()
	assert.Equal(t, 19, p.Total)
	assert.Equal(t, 4, p.TotalPages)
	assert.Len(t, p.Items, 5)

	s.List().NextPage(p.TotalPages)
	assert.Equal(t, KindExpense, s.RecordsPage().Items[0].Kind)
}
