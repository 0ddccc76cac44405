package store

import "time"

// Amounts are whole currency units. Hours are fractional.

type Client struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	Company      string
	Balance      int64 // display value, not derived from invoices
	ProjectCount int
	Status       string // active, inactive
	CreatedAt    time.Time
}

type WorkType struct {
	ID    string
	Name  string
	Color string
	Hours float64
}

type Issue struct {
	ID         string
	ProjectID  int64
	Title      string
	Status     string // todo, in-progress, done, blocked
	Assignee   string
	Estimate   float64
	ActualTime float64
	WorkType   string
	LinearID   string
	CreatedAt  time.Time
}

// Variance is how far the actual time ran over (positive) or under the estimate.
func (i Issue) Variance() float64 {
	return i.ActualTime - i.Estimate
}

type Project struct {
	ID        int64
	Name      string
	Client    string
	Progress  int
	Hours     float64
	Budget    int64
	Spent     int64
	Status    string // active, archived
	WorkTypes []WorkType
	Issues    []Issue
}

type TeamMember struct {
	ID         int64
	Name       string
	Initials   string
	Role       string
	Rate       int64
	RateType   string // hourly, monthly
	TotalHours float64
	Salary     int64 // precomputed, not Rate*TotalHours
}

type Invoice struct {
	ID               string
	Client           string
	Project          string
	Amount           int64
	Date             time.Time
	DueDate          time.Time
	Status           string // paid, sent, draft, overdue
	IncludeInFinance bool
}

// Income, Expense and Salary use "" for fields a record does not carry.

type Income struct {
	ID      int64
	Client  string
	Project string
	Member  string
	Amount  int64
	Date    time.Time
}

type Expense struct {
	ID       int64
	Category string
	Amount   int64
	Date     time.Time
	Project  string
	Client   string
	Member   string
}

type Salary struct {
	ID     int64
	Name   string
	Role   string
	Amount int64
	Status string
}

type RecurringInvoice struct {
	ID          string
	Client      string
	Project     string
	Amount      int64
	Frequency   string // monthly, quarterly, yearly
	NextDueDate time.Time
	Status      string // active, paused
}

type RecurringExpense struct {
	ID          string
	Category    string
	Amount      int64
	Frequency   string
	NextDueDate time.Time
	Status      string
}

// ProjectTimeEntry is a time log recorded against a project and its issues.
type ProjectTimeEntry struct {
	ID          int64
	Date        time.Time
	ProjectID   int64
	ProjectName string
	MemberID    int64
	MemberName  string
	Hours       float64
	Description string
	IssueIDs    []string
}

// TimesheetEntry is the time tracking sheet row; Duration is display text
// such as "8h 30m".
type TimesheetEntry struct {
	ID          int64
	Date        time.Time
	Project     string
	Member      string
	Duration    string
	Description string
}

type Integration struct {
	ID          int64
	Name        string
	Description string
	Status      string // connected, disconnected
	Icon        string
}

type Setting struct {
	Key   string
	Value string
}
