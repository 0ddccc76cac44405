package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/studiodesk/internal/log"
	"github.com/sadopc/studiodesk/internal/store"
)

type integrationsModel struct {
	integrations []store.Integration
	cursor       int
	logger       *log.Logger
	width        int
	height       int
}

func newIntegrationsModel(c *store.Catalog, logger *log.Logger) *integrationsModel {
	return &integrationsModel{integrations: c.Integrations, logger: logger}
}

func (m *integrationsModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *integrationsModel) capturing() bool { return false }

func (m *integrationsModel) update(msg tea.Msg) tea.Cmd {
	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(msgKey, keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(m.integrations))
	case key.Matches(msgKey, keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(m.integrations))
	case key.Matches(msgKey, keys.Enter):
		if len(m.integrations) == 0 {
			return nil
		}
		in := m.integrations[m.cursor]
		action := "connect"
		if in.Status == "connected" {
			action = "disconnect"
		}
		m.logger.Info("integration change requested",
			log.FieldOperation, log.OpSave, "integration", in.Name, "action", action)
		return statusCmd(fmt.Sprintf("%s: %s requested", in.Name, action), false)
	}
	return nil
}

func (m *integrationsModel) view() string {
	rows := []string{titleStyle.Render("Integrations"), ""}
	for i, in := range m.integrations {
		cursor, style := "  ", normalItemStyle
		if i == m.cursor {
			cursor, style = "> ", selectedItemStyle
		}
		status := statusStyle(in.Status).Render(capitalize(in.Status))
		rows = append(rows,
			style.Render(fmt.Sprintf("%s%s %s", cursor, in.Icon, in.Name))+"  "+status,
			mutedStyle.Render("     "+in.Description),
		)
	}
	rows = append(rows, "", mutedStyle.Render("  enter: connect/disconnect"))
	return panelStyle.Width(m.width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, strings.Join(rows, "\n")))
}
