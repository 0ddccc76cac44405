package store

import "time"

// Analytics holds the pre-aggregated reporting figures shown on the dashboard
// and insights screens. They have no row identity of their own, so they are
// kept as fixed values instead of tables.
type Analytics struct {
	WeeklyHours        []WeeklyHours
	ProjectHours       []ProjectHours
	WorkTypes          []WorkTypeHours
	TeamPerformance    []TeamPerformance
	Earnings           Earnings
	Expenses           ExpenseBreakdown
	Monthly            []MonthlyFinancials
	TeamActivity       []MemberActivity
	ProjectPerformance []ProjectPerformance
	OverallWorkTypes   []WorkTypeHours
	ProductiveHours    []ProductiveHour
	AppUsage           []AppUsage
	Screenshots        []Screenshot
}

type WeeklyHours struct {
	Day   string
	Hours float64
	Date  time.Time
}

type ProjectHours struct {
	Name       string
	Hours      float64
	Percentage int
	Color      string
}

type WorkTypeHours struct {
	Name  string
	Hours float64
	Color string
}

type TeamPerformance struct {
	ID         int64
	Name       string
	Initials   string
	Hours      float64
	Projects   int
	Efficiency int
	Earnings   int64
}

type Earnings struct {
	Total       int64
	HourlyRate  int64
	HoursWorked float64
	Bonus       int64
}

type ExpenseBreakdown struct {
	Salaries int64
	Software int64
	Office   int64
	Other    int64
	Total    int64
}

type MonthlyFinancials struct {
	Month    string
	Income   int64
	Expenses int64
	Salaries int64
}

type MemberActivity struct {
	ID           int64
	Name         string
	Initials     string
	ActiveHours  float64
	IdleHours    float64
	Productivity int
	TopApps      []string
	Screenshots  int
}

type ProjectPerformance struct {
	ID         int64
	Name       string
	TotalHours float64
	Efficiency int
	WorkTypes  WorkTypeSplit
}

type WorkTypeSplit struct {
	Coding    float64
	Managing  float64
	Meeting   float64
	Designing float64
	Research  float64
}

type ProductiveHour struct {
	Hour         string
	Productivity int
}

type AppUsage struct {
	Name       string
	Hours      float64
	Percentage int
	Category   string
}

type Screenshot struct {
	ID           int64
	MemberID     int64
	MemberName   string
	Timestamp    string
	Activity     string
	Productivity int
}

const (
	colorCoding    = "#3B82F6"
	colorManaging  = "#10B981"
	colorMeeting   = "#F59E0B"
	colorDesigning = "#EF4444"
	colorResearch  = "#8B5CF6"
)

func sampleAnalytics() Analytics {
	return Analytics{
		WeeklyHours: []WeeklyHours{
			{Day: "Mon", Hours: 42, Date: day(2024, time.January, 15)},
			{Day: "Tue", Hours: 38, Date: day(2024, time.January, 16)},
			{Day: "Wed", Hours: 45, Date: day(2024, time.January, 17)},
			{Day: "Thu", Hours: 40, Date: day(2024, time.January, 18)},
			{Day: "Fri", Hours: 35, Date: day(2024, time.January, 19)},
			{Day: "Sat", Hours: 8, Date: day(2024, time.January, 20)},
			{Day: "Sun", Hours: 0, Date: day(2024, time.January, 21)},
		},
		ProjectHours: []ProjectHours{
			{Name: "Project Alpha", Hours: 85, Percentage: 40, Color: "#3B82F6"},
			{Name: "Project Beta", Hours: 52, Percentage: 25, Color: "#10B981"},
			{Name: "Project Gamma", Hours: 45, Percentage: 21, Color: "#F59E0B"},
			{Name: "Project Delta", Hours: 26, Percentage: 14, Color: "#EF4444"},
		},
		WorkTypes: []WorkTypeHours{
			{Name: "Coding", Hours: 180, Color: colorCoding},
			{Name: "Managing", Hours: 70, Color: colorManaging},
			{Name: "Meeting", Hours: 75, Color: colorMeeting},
			{Name: "Designing", Hours: 50, Color: colorDesigning},
			{Name: "Research", Hours: 20, Color: colorResearch},
		},
		TeamPerformance: []TeamPerformance{
			{ID: 1, Name: "John Doe", Initials: "JD", Hours: 42, Projects: 3, Efficiency: 95, Earnings: 3570},
			{ID: 2, Name: "Jane Smith", Initials: "JS", Hours: 38, Projects: 2, Efficiency: 92, Earnings: 2850},
			{ID: 3, Name: "Mike Johnson", Initials: "MJ", Hours: 40, Projects: 4, Efficiency: 88, Earnings: 6000},
			{ID: 4, Name: "Sarah Williams", Initials: "SW", Hours: 35, Projects: 2, Efficiency: 90, Earnings: 2450},
		},
		Earnings: Earnings{Total: 14870, HourlyRate: 85, HoursWorked: 155, Bonus: 1000},
		Expenses: ExpenseBreakdown{Salaries: 41080, Software: 2500, Office: 3000, Other: 1200, Total: 47780},
		Monthly: []MonthlyFinancials{
			{Month: "Jan", Income: 45000, Expenses: 32000, Salaries: 28000},
			{Month: "Feb", Income: 52000, Expenses: 35000, Salaries: 30000},
			{Month: "Mar", Income: 48000, Expenses: 33000, Salaries: 29000},
			{Month: "Apr", Income: 61000, Expenses: 38000, Salaries: 31000},
			{Month: "May", Income: 55000, Expenses: 36000, Salaries: 30000},
			{Month: "Jun", Income: 67000, Expenses: 40000, Salaries: 32000},
		},
		TeamActivity: []MemberActivity{
			{ID: 1, Name: "John Doe", Initials: "JD", ActiveHours: 38, IdleHours: 2, Productivity: 95, TopApps: []string{"VS Code", "Chrome", "Slack"}, Screenshots: 152},
			{ID: 2, Name: "Jane Smith", Initials: "JS", ActiveHours: 35, IdleHours: 3, Productivity: 92, TopApps: []string{"Figma", "Chrome", "Slack"}, Screenshots: 140},
			{ID: 3, Name: "Mike Johnson", Initials: "MJ", ActiveHours: 36, IdleHours: 4, Productivity: 88, TopApps: []string{"Linear", "Slack", "Chrome"}, Screenshots: 144},
			{ID: 4, Name: "Sarah Williams", Initials: "SW", ActiveHours: 33, IdleHours: 2, Productivity: 90, TopApps: []string{"VS Code", "Chrome", "Postman"}, Screenshots: 132},
		},
		ProjectPerformance: []ProjectPerformance{
			{ID: 1, Name: "Project Alpha", TotalHours: 120, Efficiency: 92, WorkTypes: WorkTypeSplit{Coding: 60, Managing: 20, Meeting: 25, Designing: 15}},
			{ID: 2, Name: "Project Beta", TotalHours: 80, Efficiency: 88, WorkTypes: WorkTypeSplit{Coding: 40, Managing: 15, Meeting: 15, Designing: 10}},
			{ID: 3, Name: "Project Gamma", TotalHours: 200, Efficiency: 95, WorkTypes: WorkTypeSplit{Coding: 100, Managing: 30, Meeting: 40, Designing: 30}},
		},
		OverallWorkTypes: []WorkTypeHours{
			{Name: "Coding", Hours: 200, Color: colorCoding},
			{Name: "Managing", Hours: 65, Color: colorManaging},
			{Name: "Meeting", Hours: 80, Color: colorMeeting},
			{Name: "Designing", Hours: 55, Color: colorDesigning},
			{Name: "Research", Hours: 15, Color: colorResearch},
		},
		ProductiveHours: []ProductiveHour{
			{"9 AM", 75}, {"10 AM", 85}, {"11 AM", 92}, {"12 PM", 70}, {"1 PM", 65},
			{"2 PM", 88}, {"3 PM", 90}, {"4 PM", 85}, {"5 PM", 78}, {"6 PM", 60},
		},
		AppUsage: []AppUsage{
			{Name: "VS Code", Hours: 145, Percentage: 35, Category: "Development"},
			{Name: "Chrome", Hours: 98, Percentage: 24, Category: "Browser"},
			{Name: "Figma", Hours: 72, Percentage: 17, Category: "Design"},
			{Name: "Slack", Hours: 52, Percentage: 13, Category: "Communication"},
			{Name: "Linear", Hours: 28, Percentage: 7, Category: "Project Management"},
			{Name: "Postman", Hours: 16, Percentage: 4, Category: "Development"},
		},
		Screenshots: []Screenshot{
			{ID: 1, MemberID: 1, MemberName: "John Doe", Timestamp: "2024-01-15 10:30 AM", Activity: "Coding in VS Code", Productivity: 95},
			{ID: 2, MemberID: 2, MemberName: "Jane Smith", Timestamp: "2024-01-15 11:15 AM", Activity: "Designing in Figma", Productivity: 92},
			{ID: 3, MemberID: 3, MemberName: "Mike Johnson", Timestamp: "2024-01-15 02:45 PM", Activity: "Managing tasks in Linear", Productivity: 88},
			{ID: 4, MemberID: 4, MemberName: "Sarah Williams", Timestamp: "2024-01-15 03:20 PM", Activity: "Code review in GitHub", Productivity: 90},
		},
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
