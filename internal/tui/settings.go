package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/studiodesk/internal/log"
	"github.com/sadopc/studiodesk/internal/store"
)

// settingKeys are the studio settings shown on the screen, in order.
var settingKeys = []string{
	"studio_name", "currency", "time_format",
	"notifications", "email_notifications", "in_app_notifications",
}

var settingLabels = map[string]string{
	"studio_name":          "Studio name",
	"currency":             "Currency",
	"time_format":          "Time format",
	"notifications":        "Notifications",
	"email_notifications":  "Email notifications",
	"in_app_notifications": "In-app notifications",
}

var settingDefaults = map[string]string{
	"studio_name":          "Onit Studio",
	"currency":             "USD",
	"time_format":          "24h",
	"notifications":        "true",
	"email_notifications":  "true",
	"in_app_notifications": "true",
}

type settingsModel struct {
	logger *log.Logger
	width  int
	height int

	// values is this session's copy; saving only logs it.
	values     map[string]string
	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	studioName  *string
	currency    *string
	timeFormat  *string
	notify      *bool
	emailNotify *bool
	inAppNotify *bool
}

func newSettingsModel(c *store.Catalog, logger *log.Logger) *settingsModel {
	values := make(map[string]string, len(settingKeys))
	for _, k := range settingKeys {
		values[k] = c.Setting(k, settingDefaults[k])
	}
	name, cur, tf := "", "", ""
	n, en, in := false, false, false
	return &settingsModel{
		logger:      logger,
		values:      values,
		studioName:  &name,
		currency:    &cur,
		timeFormat:  &tf,
		notify:      &n,
		emailNotify: &en,
		inAppNotify: &in,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s *settingsModel) capturing() bool { return s.formActive }

func (s *settingsModel) update(msg tea.Msg) tea.Cmd {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		}
	}
	return nil
}

func (s *settingsModel) showForm() tea.Cmd {
	*s.studioName = s.values["studio_name"]
	*s.currency = s.values["currency"]
	*s.timeFormat = s.values["time_format"]
	*s.notify = parseBool(s.values["notifications"])
	*s.emailNotify = parseBool(s.values["email_notifications"])
	*s.inAppNotify = parseBool(s.values["in_app_notifications"])

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Studio name").Value(s.studioName).Validate(required("Studio name")),
			huh.NewSelect[string]().Title("Currency").
				Options(
					huh.NewOption("US Dollar", "USD"),
					huh.NewOption("Euro", "EUR"),
					huh.NewOption("British Pound", "GBP"),
				).Value(s.currency),
			huh.NewSelect[string]().Title("Time format").
				Options(
					huh.NewOption("24 hour", "24h"),
					huh.NewOption("12 hour", "12h"),
				).Value(s.timeFormat),
		).Title("General"),
		huh.NewGroup(
			huh.NewConfirm().Title("Notifications").Value(s.notify),
			huh.NewConfirm().Title("Email notifications").Value(s.emailNotify),
			huh.NewConfirm().Title("In-app notifications").Value(s.inAppNotify),
		).Title("Notifications"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s.form.Init()
}

func (s *settingsModel) updateForm(msg tea.Msg) tea.Cmd {
	form, res, cmd := updateHuh(s.form, msg)
	s.form = form
	switch res {
	case formCancelled:
		s.formActive = false
		s.form = nil
		return nil
	case formDone:
		s.formActive = false
		s.form = nil
		s.saveSettings()
		return statusCmd("Settings saved", false)
	}
	return cmd
}

func (s *settingsModel) saveSettings() {
	s.values["studio_name"] = *s.studioName
	s.values["currency"] = *s.currency
	s.values["time_format"] = *s.timeFormat
	s.values["notifications"] = strconv.FormatBool(*s.notify)
	s.values["email_notifications"] = strconv.FormatBool(*s.emailNotify)
	s.values["in_app_notifications"] = strconv.FormatBool(*s.inAppNotify)

	args := []any{log.FieldOperation, log.OpSave, log.FieldScreen, "settings"}
	for _, k := range settingKeys {
		args = append(args, k, s.values[k])
	}
	s.logger.Info("settings saved", args...)
}

func (s *settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Settings"), "", s.form.View()),
		)
	}

	rows := []string{titleStyle.Render("Settings"), ""}
	for _, k := range settingKeys {
		label := lipgloss.NewStyle().Width(24).Render(settingLabels[k])
		value := highlightStyle.Render(formatSettingValue(k, s.values[k]))
		rows = append(rows, fmt.Sprintf("  %s %s", label, value))
	}
	rows = append(rows, "", mutedStyle.Render("Press enter to edit settings"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func formatSettingValue(k, v string) string {
	switch k {
	case "notifications", "email_notifications", "in_app_notifications":
		if parseBool(v) {
			return "On"
		}
		return "Off"
	case "time_format":
		if v == "12h" {
			return "12 hour"
		}
		return "24 hour"
	}
	return v
}

func parseBool(s string) bool {
	b, _ := strconv.ParseBool(s)
	return b
}
