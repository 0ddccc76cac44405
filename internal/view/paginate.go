package view

// DefaultPageSize is the row count of every paginated table.
const DefaultPageSize = 10

// Page is one slice of a paginated sequence. Page is 1-based.
type Page[T any] struct {
	Items      []T
	Page       int
	Size       int
	TotalPages int
	Total      int
	HasPrev    bool
	HasNext    bool
}

// Paginate returns page (1-based) of items in slices of size. A page outside
// [1, TotalPages] has no items. A size of zero or less puts everything on a
// single page.
func Paginate[T any](items []T, page, size int) Page[T] {
	total := len(items)
	if size <= 0 {
		size = max(total, 1)
	}
	totalPages := 0
	if total > 0 {
		totalPages = (total + size - 1) / size
	}

	p := Page[T]{
		Items:      []T{},
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
		Total:      total,
		HasPrev:    page > 1,
		HasNext:    page >= 1 && page < totalPages,
	}
	if page < 1 || page > totalPages {
		return p
	}
	start := (page - 1) * size
	end := min(start+size, total)
	p.Items = items[start:end:end]
	return p
}

// Range is the 1-based index of the first and last item on the page, or
// zeros for an empty page.
func (p Page[T]) Range() (first, last int) {
	if len(p.Items) == 0 {
		return 0, 0
	}
	first = (p.Page-1)*p.Size + 1
	return first, first + len(p.Items) - 1
}
