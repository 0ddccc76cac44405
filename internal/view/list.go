package view

// ListState is the search, filter, date and page state of one list on one
// screen. Any change to what the list matches sends it back to page 1.
type ListState struct {
	Query    string
	Filters  Filters
	Range    DateRange
	Page     int
	PageSize int
}

func NewListState(pageSize int, keys ...string) ListState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return ListState{
		Filters:  NewFilters(keys...),
		Page:     1,
		PageSize: pageSize,
	}
}

func (l *ListState) SetQuery(q string) {
	if q == l.Query {
		return
	}
	l.Query = q
	l.Page = 1
}

func (l *ListState) SetFilter(key, value string) {
	if l.Filters == nil {
		l.Filters = Filters{}
	}
	l.Filters.Set(key, value)
	l.Page = 1
}

func (l *ListState) SetRange(r DateRange) {
	l.Range = r
	l.Page = 1
}

// ClearFilters resets the query, every filter and the date range.
func (l *ListState) ClearFilters() {
	l.Query = ""
	l.Filters.Clear()
	l.Range = DateRange{}
	l.Page = 1
}

func (l *ListState) NextPage(totalPages int) {
	if l.Page < totalPages {
		l.Page++
	}
}

func (l *ListState) PrevPage() {
	if l.Page > 1 {
		l.Page--
	}
}

// Lister is implemented by every screen state with a filterable list, so
// the filter bar and the command line can drive any of them.
type Lister interface {
	List() *ListState
	FilterKeys() []string
	FilterOptions(key string) []Option
}
