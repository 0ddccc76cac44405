package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/studiodesk/internal/view"
)

// filterBar drives the search, filters and paging of a view.Lister.
type filterBar struct {
	input  textinput.Model
	keyIdx int
}

func newFilterBar() filterBar {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.Prompt = "/ "
	ti.CharLimit = 64
	ti.Width = 24
	return filterBar{input: ti}
}

func (f filterBar) focused() bool { return f.input.Focused() }

// focusedKey is the filter key the ←/→ keys change.
func (f filterBar) focusedKey(l view.Lister) string {
	ks := l.FilterKeys()
	if len(ks) == 0 {
		return ""
	}
	return ks[f.keyIdx%len(ks)]
}

// update applies a key press to l. It reports whether the key was used.
func (f filterBar) update(msg tea.KeyMsg, l view.Lister, totalPages int) (filterBar, bool, tea.Cmd) {
	list := l.List()

	if f.input.Focused() {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			f.input.Blur()
			return f, true, nil
		}
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		list.SetQuery(f.input.Value())
		return f, true, cmd
	}

	switch {
	case key.Matches(msg, keys.Search):
		f.input.SetValue(list.Query)
		f.input.CursorEnd()
		return f, true, f.input.Focus()
	case key.Matches(msg, keys.FilterKey):
		if n := len(l.FilterKeys()); n > 0 {
			f.keyIdx = (f.keyIdx + 1) % n
		}
		return f, true, nil
	case key.Matches(msg, keys.Left), key.Matches(msg, keys.Right):
		k := f.focusedKey(l)
		if k == "" {
			return f, false, nil
		}
		delta := 1
		if key.Matches(msg, keys.Left) {
			delta = -1
		}
		list.SetFilter(k, view.Cycle(l.FilterOptions(k), list.Filters.Get(k), delta))
		return f, true, nil
	case key.Matches(msg, keys.Clear):
		list.ClearFilters()
		f.input.SetValue("")
		return f, true, nil
	case key.Matches(msg, keys.PrevPage):
		list.PrevPage()
		return f, true, nil
	case key.Matches(msg, keys.NextPage):
		list.NextPage(totalPages)
		return f, true, nil
	}
	return f, false, nil
}

func (f filterBar) view(l view.Lister, showDates bool) string {
	list := l.List()

	var search string
	if f.input.Focused() {
		search = f.input.View()
	} else if list.Query != "" {
		search = filterValueStyle.Render("/ " + list.Query)
	} else {
		search = mutedStyle.Render("/ search")
	}

	parts := []string{search}
	focused := f.focusedKey(l)
	for _, k := range l.FilterKeys() {
		label := view.LabelFor(l.FilterOptions(k), list.Filters.Get(k))
		name := capitalize(k)
		if k == focused {
			parts = append(parts, filterKeyStyle.Render(fmt.Sprintf("‹%s: %s›", name, label)))
		} else {
			parts = append(parts, mutedStyle.Render(name+": ")+filterValueStyle.Render(label))
		}
	}
	if showDates {
		parts = append(parts, mutedStyle.Render("Dates: ")+filterValueStyle.Render(list.Range.Label()))
	}
	return "  " + strings.Join(parts, "   ")
}
