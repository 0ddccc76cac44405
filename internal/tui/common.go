package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// screenID identifies a top level screen.
type screenID int

const (
	screenDashboard screenID = iota
	screenProjects
	screenTime
	screenTeam
	screenFinance
	screenClients
	screenInvoices
	screenInsights
	screenIntegrations
	screenSettings
	screenProfile
)

var screenNames = []string{
	"Dashboard", "Projects", "Time", "Team", "Finance", "Clients",
	"Invoices", "Insights", "Integrations", "Settings", "Profile",
}

func (s screenID) String() string {
	if int(s) < len(screenNames) {
		return screenNames[s]
	}
	return fmt.Sprintf("screen(%d)", int(s))
}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type exportDoneMsg struct {
	paths []string
}

// draftLoggedMsg reports a dialog whose result was logged and discarded.
type draftLoggedMsg struct {
	id   string
	kind string
}

type loginDoneMsg struct {
	email string
}

type trackingStoppedMsg struct {
	project  string
	duration time.Duration
}

// --- Helpers ---

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func formatHours(h float64) string {
	return fmt.Sprintf("%.1fh", h)
}

// money renders a whole currency amount with thousands separators.
func money(amount int64) string {
	if amount < 0 {
		return "-$" + humanize.Comma(-amount)
	}
	return "$" + humanize.Comma(amount)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006")
}

// truncate cuts s to n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}

// capitalize upper-cases the first letter of a status or key.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
