package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/studiodesk/internal/view"
)

// periodPicker drives a view.PeriodState: p cycles the presets and d, or
// landing on the custom preset, asks for a range.
type periodPicker struct {
	dates *rangeForm
}

func (pp *periodPicker) open() bool { return pp.dates != nil }

func (pp *periodPicker) handle(msg tea.Msg, ps *view.PeriodState) (bool, tea.Cmd) {
	if pp.dates != nil {
		res, cmd := pp.dates.update(msg)
		switch res {
		case formDone:
			r, err := pp.dates.result()
			pp.dates = nil
			if err != nil {
				return true, statusCmd(err.Error(), true)
			}
			ps.SetCustom(r)
		case formCancelled:
			pp.dates = nil
		}
		return true, cmd
	}

	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	switch {
	case key.Matches(msgKey, keys.Period):
		ps.CyclePeriod()
		if ps.Period == view.PeriodCustom {
			pp.dates = newRangeForm(ps.Custom)
			return true, pp.dates.init()
		}
		return true, nil
	case key.Matches(msgKey, keys.Dates):
		pp.dates = newRangeForm(ps.Custom)
		return true, pp.dates.init()
	}
	return false, nil
}

func (pp *periodPicker) view(w int) string {
	return activePanelStyle.Width(w).Render(pp.dates.view())
}

// periodTabs renders the presets with the current one highlighted.
func periodTabs(ps view.PeriodState) string {
	tabs := make([]string, len(view.Periods))
	for i, p := range view.Periods {
		label := view.PeriodLabel(p, ps.Custom)
		if p == ps.Period {
			tabs[i] = activeTabStyle.Render(label)
		} else {
			tabs[i] = inactiveTabStyle.Render(view.PeriodLabel(p, view.DateRange{}))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}
