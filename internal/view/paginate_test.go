package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginate_PagesConcatenateToInput(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 25} {
		for _, size := range []int{1, 3, 10} {
			items := seq(n)
			first := Paginate(items, 1, size)

			var all []int
			for p := 1; p <= first.TotalPages; p++ {
				all = append(all, Paginate(items, p, size).Items...)
			}
			if n == 0 {
				assert.Empty(t, all)
				assert.Equal(t, 0, first.TotalPages)
				continue
			}
			assert.Equal(t, items, all, "n=%d size=%d", n, size)
			assert.Equal(t, (n+size-1)/size, first.TotalPages)
		}
	}
}

func TestPaginate_OutOfRange(t *testing.T) {
	items := seq(15)
	for _, page := range []int{-1, 0, 3, 100} {
		p := Paginate(items, page, 10)
		assert.NotNil(t, p.Items)
		assert.Empty(t, p.Items, "page %d", page)
		assert.Equal(t, 2, p.TotalPages)
		assert.Equal(t, 15, p.Total)
	}
}

func TestPaginate_Flags(t *testing.T) {
	items := seq(25)

	p1 := Paginate(items, 1, 10)
	assert.False(t, p1.HasPrev)
	assert.True(t, p1.HasNext)
	assert.Len(t, p1.Items, 10)

	p3 := Paginate(items, 3, 10)
	assert.True(t, p3.HasPrev)
	assert.False(t, p3.HasNext)
	assert.Equal(t, []int{20, 21, 22, 23, 24}, p3.Items)

	first, last := p3.Range()
	assert.Equal(t, 21, first)
	assert.Equal(t, 25, last)
}

func TestPaginate_BeforeFirstPageHasNoNext(t *testing.T) {
	for _, page := range []int{-3, 0} {
		p := Paginate(seq(25), page, 10)
		assert.False(t, p.HasNext, "page %d", page)
		assert.False(t, p.HasPrev, "page %d", page)
	}
}

func TestPaginate_AppendDoesNotTouchInput(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	p := Paginate(items, 1, 2)
	_ = append(p.Items, 99)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, items)
}

func TestPaginate_NonPositiveSize(t *testing.T) {
	items := seq(7)
	p := Paginate(items, 1, 0)
	assert.Equal(t, 1, p.TotalPages)
	assert.Equal(t, items, p.Items)

	empty := Paginate([]int{}, 1, -1)
	assert.Equal(t, 0, empty.TotalPages)
	first, last := empty.Range()
	assert.Zero(t, first)
	assert.Zero(t, last)
}

func TestListState_ResetsPage(t *testing.T) {
	l := NewListState(10, KeyStatus)
	l.NextPage(3)
	l.NextPage(3)
	assert.Equal(t, 3, l.Page)
	l.NextPage(3)
	assert.Equal(t, 3, l.Page, "stops at the last page")

	l.SetQuery("acme")
	assert.Equal(t, 1, l.Page)

	l.NextPage(3)
	l.SetQuery("acme")
	assert.Equal(t, 2, l.Page, "same query keeps the page")

	l.SetFilter(KeyStatus, "paid")
	assert.Equal(t, 1, l.Page)

	l.NextPage(3)
	l.SetRange(DateRange{})
	assert.Equal(t, 1, l.Page)

	l.PrevPage()
	assert.Equal(t, 1, l.Page)

	l.ClearFilters()
	assert.Empty(t, l.Query)
	assert.False(t, l.Filters.Active())
}

func TestNewListState_DefaultPageSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NewListState(0).PageSize)
	assert.Equal(t, 5, NewListState(5).PageSize)
}
