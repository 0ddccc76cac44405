package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sadopc/studiodesk/internal/view"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

// listFlags are the search, filter, date and paging flags shared by every
// listing command.
type listFlags struct {
	search  string
	filters []string
	from    string
	to      string
	page    int
	format  string
}

// register adds the flags to cmd. Date flags are only added when the list
// has dates.
func (f *listFlags) register(cmd *cobra.Command, dates bool) {
	fs := pflag.NewFlagSet("list", pflag.ContinueOnError)
	fs.StringVarP(&f.search, "search", "s", "", "Case-insensitive search text")
	fs.StringArrayVarP(&f.filters, "filter", "f", nil, "Filter as key=value (repeatable)")
	fs.IntVarP(&f.page, "page", "p", 1, "Page number, starting at 1")
	fs.StringVarP(&f.format, "format", "o", formatTable, "Output format: table or json")
	if dates {
		fs.StringVar(&f.from, "from", "", "Earliest date, YYYY-MM-DD (inclusive)")
		fs.StringVar(&f.to, "to", "", "Latest date, YYYY-MM-DD (inclusive)")
	}
	cmd.Flags().AddFlagSet(fs)
}

// apply sets l's list state from the flags. Filter values may be given by
// value or by label, e.g. a project name where the list filters by id.
func (f *listFlags) apply(l view.Lister) error {
	if err := f.validFormat(); err != nil {
		return err
	}
	if f.page < 1 {
		return fmt.Errorf("invalid page %d: must be at least 1", f.page)
	}

	list := l.List()
	list.SetQuery(f.search)

	for _, kv := range f.filters {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("invalid filter %q: want key=value", kv)
		}
		key = strings.TrimSpace(key)
		i := slices.IndexFunc(l.FilterKeys(), func(k string) bool { return strings.EqualFold(k, key) })
		if i < 0 {
			return fmt.Errorf("unknown filter %q: want one of %s", key, strings.Join(l.FilterKeys(), ", "))
		}
		key = l.FilterKeys()[i]
		list.SetFilter(key, resolveOption(l.FilterOptions(key), strings.TrimSpace(value)))
	}

	if f.from != "" || f.to != "" {
		r, err := view.NewDateRange(f.from, f.to)
		if err != nil {
			return err
		}
		list.SetRange(r)
	}

	// Setting the query, filters and range resets the page, so it goes last.
	list.Page = f.page
	return nil
}

func (f *listFlags) validFormat() error {
	switch f.format {
	case formatTable, formatJSON:
		return nil
	}
	return fmt.Errorf("invalid format %q: want table or json", f.format)
}

// resolveOption maps a label to its option value. Unknown values pass
// through unchanged and simply match nothing.
func resolveOption(opts []view.Option, s string) string {
	if strings.EqualFold(s, view.All) {
		return view.All
	}
	for _, o := range opts {
		if o.Value == s {
			return o.Value
		}
	}
	for _, o := range opts {
		if strings.EqualFold(o.Label, s) || strings.EqualFold(o.Value, s) {
			return o.Value
		}
	}
	return s
}
