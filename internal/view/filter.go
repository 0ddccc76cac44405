// Package view holds the per-screen view state of the dashboard and the pure
// functions that derive what each screen shows: search and filter predicates,
// date ranges, pagination and the finance aggregates.
package view

import "strings"

// All is the filter value meaning "no constraint".
const All = "all"

// Filters maps a filter key to its selected value. A missing key and the
// value All both leave that dimension unconstrained.
type Filters map[string]string

func NewFilters(keys ...string) Filters {
	f := make(Filters, len(keys))
	for _, k := range keys {
		f[k] = All
	}
	return f
}

func (f Filters) Get(key string) string {
	if v, ok := f[key]; ok && v != "" {
		return v
	}
	return All
}

// Set selects value for key. An empty value resets the key to All.
func (f Filters) Set(key, value string) {
	if value == "" {
		value = All
	}
	f[key] = value
}

// Clear resets the given keys, or every key when none are given.
func (f Filters) Clear(keys ...string) {
	if len(keys) == 0 {
		for k := range f {
			f[k] = All
		}
		return
	}
	for _, k := range keys {
		f[k] = All
	}
}

// Active reports whether any key is constrained.
func (f Filters) Active() bool {
	for _, v := range f {
		if v != All && v != "" {
			return true
		}
	}
	return false
}

// Only returns a copy of f restricted to keys.
func (f Filters) Only(keys ...string) Filters {
	out := make(Filters, len(keys))
	for _, k := range keys {
		if v, ok := f[k]; ok {
			out[k] = v
		}
	}
	return out
}

// MatchQuery reports whether query is empty or is a case-insensitive
// substring of at least one of fields.
func MatchQuery(query string, fields ...string) bool {
	q := strings.ToLower(query)
	if q == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// MatchFilters reports whether a record passes every constrained key of f.
// get returns the record's value for a key and whether the record has that
// field at all; a record without the field fails a constrained key.
func MatchFilters(f Filters, get func(key string) (string, bool)) bool {
	for key, want := range f {
		if want == All || want == "" {
			continue
		}
		got, ok := get(key)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// Filter returns the items for which keep is true, in their original order.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
