package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/sadopc/studiodesk/internal/log"
	"github.com/sadopc/studiodesk/internal/view"
)

// formResult is what a wrapped huh form reports after each update.
type formResult int

const (
	formOpen formResult = iota
	formDone
	formCancelled
)

// updateHuh feeds msg to form, treating esc as cancel.
func updateHuh(form *huh.Form, msg tea.Msg) (*huh.Form, formResult, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "esc" {
		return form, formCancelled, nil
	}
	m, cmd := form.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		form = f
	}
	switch form.State {
	case huh.StateCompleted:
		return form, formDone, nil
	case huh.StateAborted:
		return form, formCancelled, nil
	}
	return form, formOpen, cmd
}

func validDate(s string) error {
	if s == "" {
		return nil
	}
	_, err := view.ParseDate(s)
	if err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}

// rangeForm asks for an optional from and to date.
type rangeForm struct {
	form *huh.Form
	from *string
	to   *string
}

func newRangeForm(current view.DateRange) *rangeForm {
	from, to := "", ""
	if current.From != nil {
		from = current.From.Format(view.DateLayout)
	}
	if current.To != nil {
		to = current.To.Format(view.DateLayout)
	}
	r := &rangeForm{from: &from, to: &to}
	r.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("From").Placeholder("YYYY-MM-DD").Value(r.from).Validate(validDate),
			huh.NewInput().Title("To").Placeholder("YYYY-MM-DD").Value(r.to).Validate(validDate),
		).Title("Date range").Description("Leave a side empty to keep it open."),
	).WithShowHelp(true).WithShowErrors(true)
	return r
}

func (r *rangeForm) init() tea.Cmd { return r.form.Init() }

func (r *rangeForm) update(msg tea.Msg) (formResult, tea.Cmd) {
	var res formResult
	var cmd tea.Cmd
	r.form, res, cmd = updateHuh(r.form, msg)
	return res, cmd
}

func (r *rangeForm) result() (view.DateRange, error) {
	return view.NewDateRange(*r.from, *r.to)
}

func (r *rangeForm) view() string { return r.form.View() }

// draftField is one input of a draft dialog. With options it is a select.
type draftField struct {
	key      string
	title    string
	options  []string
	validate func(string) error
}

// draftDialog collects a new record whose values are logged under a fresh
// id and then dropped; the catalog is never written.
type draftDialog struct {
	kind   string
	title  string
	fields []draftField
	values []*string
	form   *huh.Form
	logger *log.Logger
}

func newDraftDialog(kind, title string, logger *log.Logger, fields ...draftField) *draftDialog {
	d := &draftDialog{kind: kind, title: title, fields: fields, logger: logger}
	inputs := make([]huh.Field, len(fields))
	for i, f := range fields {
		v := ""
		d.values = append(d.values, &v)
		if len(f.options) > 0 {
			v = f.options[0]
			inputs[i] = huh.NewSelect[string]().Title(f.title).Options(huh.NewOptions(f.options...)...).Value(&v)
			continue
		}
		in := huh.NewInput().Title(f.title).Value(&v)
		if f.validate != nil {
			in = in.Validate(f.validate)
		}
		inputs[i] = in
	}
	d.form = huh.NewForm(huh.NewGroup(inputs...).Title(title)).WithShowHelp(true).WithShowErrors(true)
	return d
}

func (d *draftDialog) init() tea.Cmd { return d.form.Init() }

// update returns a non-open result once the dialog is finished. A completed
// dialog is logged and reported with a draftLoggedMsg.
func (d *draftDialog) update(msg tea.Msg) (formResult, tea.Cmd) {
	var res formResult
	var cmd tea.Cmd
	d.form, res, cmd = updateHuh(d.form, msg)
	if res != formDone {
		return res, cmd
	}
	id := d.log()
	kind := d.kind
	return res, func() tea.Msg { return draftLoggedMsg{id: id, kind: kind} }
}

func (d *draftDialog) log() string {
	id := uuid.NewString()
	args := []any{log.FieldOperation, log.OpDraft, log.FieldDraftID, id, log.FieldKind, d.kind}
	for i, f := range d.fields {
		args = append(args, f.key, *d.values[i])
	}
	d.logger.Info("draft discarded", args...)
	return id
}

func (d *draftDialog) value(key string) string {
	for i, f := range d.fields {
		if f.key == key {
			return *d.values[i]
		}
	}
	return ""
}

func (d *draftDialog) view() string {
	return d.form.View()
}

func required(name string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

func positiveAmount(s string) error {
	var n float64
	if _, err := fmt.Sscanf(s, "%g", &n); err != nil || n <= 0 {
		return fmt.Errorf("enter an amount above zero")
	}
	return nil
}
