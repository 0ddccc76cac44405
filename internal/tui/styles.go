package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorBrand  = lipgloss.Color("#6C63FF")
	colorTeal   = lipgloss.Color("#2EC4B6")
	colorCoral  = lipgloss.Color("#FF6B6B")
	colorText   = lipgloss.Color("#C0CAF5")
	colorDim    = lipgloss.Color("#666666")
	colorBorder = lipgloss.Color("#414868")
	colorLink   = lipgloss.Color("#7AA2F7")

	colorGood = lipgloss.Color("#2ECC71")
	colorWarn = lipgloss.Color("#F39C12")
	colorBad  = lipgloss.Color("#E74C3C")

	// Finance series, shared by the overview cards and the finance chart.
	colorIncome   = colorGood
	colorExpense  = colorWarn
	colorSalaries = colorCoral
)

func fg(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func boxed(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(c)
}

var (
	activeTabStyle = fg(colorBrand).Bold(true).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorBrand).
			Padding(0, 2)
	inactiveTabStyle = fg(colorDim).Padding(0, 2)

	panelStyle       = boxed(colorBorder).Padding(1, 2)
	activePanelStyle = boxed(colorBrand).Padding(1, 2)
	cardStyle        = boxed(colorBorder).Padding(0, 1)

	titleStyle     = fg(colorText).Bold(true)
	subtitleStyle  = fg(colorDim)
	mutedStyle     = fg(colorDim)
	accentStyle    = fg(colorCoral)
	successStyle   = fg(colorGood)
	warningStyle   = fg(colorWarn)
	errorStyle     = fg(colorBad)
	highlightStyle = fg(colorLink)

	headerStyle    = lipgloss.NewStyle().Padding(0, 1)
	footerStyle    = fg(colorDim).Padding(0, 1)
	statusBarStyle = fg(colorDim)

	selectedItemStyle = fg(colorBrand).Bold(true)
	normalItemStyle   = fg(colorText)
	tableHeaderStyle  = fg(colorDim).Bold(true)

	statLabelStyle = fg(colorDim)
	statValueStyle = fg(colorLink).Bold(true)

	filterKeyStyle   = fg(colorTeal).Bold(true)
	filterValueStyle = fg(colorText)
)

// clockStyle renders the tracker clock in the colour of its state.
func clockStyle(running, paused bool) lipgloss.Style {
	c := colorBrand
	switch {
	case running && paused:
		c = colorWarn
	case running:
		c = colorGood
	}
	return fg(c).Bold(true).Align(lipgloss.Center)
}

// statusStyle colours an entity status.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case "paid", "active", "connected", "done":
		return successStyle
	case "sent", "in-progress", "paused":
		return highlightStyle
	case "overdue", "blocked":
		return errorStyle
	case "draft", "todo":
		return warningStyle
	}
	return mutedStyle
}
