package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/studiodesk/internal/view"
)

// screen is one top level view of the app.
type screen interface {
	update(msg tea.Msg) tea.Cmd
	view() string
	setSize(w, h int)
	// capturing reports whether the screen wants every key, e.g. while a
	// form or the search box is open.
	capturing() bool
}

// listBase is the shared part of screens built around a filterable list:
// the filter bar, an optional date range form, a draft dialog and a row
// cursor.
type listBase struct {
	width  int
	height int

	bar      filterBar
	hasDates bool
	dates    *rangeForm
	dialog   *draftDialog
	cursor   int
}

func newListBase(hasDates bool) listBase {
	return listBase{bar: newFilterBar(), hasDates: hasDates}
}

func (b *listBase) setSize(w, h int) {
	b.width = w
	b.height = h
}

func (b *listBase) capturing() bool {
	return b.bar.focused() || b.dates != nil || b.dialog != nil
}

func (b *listBase) openDialog(d *draftDialog) tea.Cmd {
	b.dialog = d
	return d.init()
}

// handle routes msg to whatever is open on the list, then to the filter
// bar. It reports whether msg was consumed. rows is the length of the
// visible page, for the cursor.
func (b *listBase) handle(msg tea.Msg, l view.Lister, totalPages, rows int) (bool, tea.Cmd) {
	if b.dialog != nil {
		res, cmd := b.dialog.update(msg)
		if res != formOpen {
			b.dialog = nil
		}
		return true, cmd
	}
	if b.dates != nil {
		res, cmd := b.dates.update(msg)
		switch res {
		case formDone:
			r, err := b.dates.result()
			b.dates = nil
			if err != nil {
				return true, statusCmd(err.Error(), true)
			}
			l.List().SetRange(r)
			b.cursor = 0
		case formCancelled:
			b.dates = nil
		}
		return true, cmd
	}

	msgKey, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, nil
	}
	if b.hasDates && !b.bar.focused() && key.Matches(msgKey, keys.Dates) {
		b.dates = newRangeForm(l.List().Range)
		return true, b.dates.init()
	}

	page := l.List().Page
	var handled bool
	var cmd tea.Cmd
	b.bar, handled, cmd = b.bar.update(msgKey, l, totalPages)
	if handled {
		if l.List().Page != page {
			b.cursor = 0
		}
		return true, cmd
	}

	switch {
	case key.Matches(msgKey, keys.Up):
		b.cursor = clampCursor(b.cursor-1, rows)
		return true, nil
	case key.Matches(msgKey, keys.Down):
		b.cursor = clampCursor(b.cursor+1, rows)
		return true, nil
	}
	return false, nil
}

// overlay returns the open form's view, or "" when none is open.
func (b *listBase) overlay() string {
	w := b.width - 4
	switch {
	case b.dialog != nil:
		return activePanelStyle.Width(w).Render(b.dialog.view())
	case b.dates != nil:
		return activePanelStyle.Width(w).Render(b.dates.view())
	}
	return ""
}

func (b *listBase) panel(parts ...string) string {
	return panelStyle.Width(b.width - 4).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isError: isError} }
}
