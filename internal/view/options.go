package view

// Option is one selectable filter value. Label is what a selector shows;
// Value is what the filter compares against.
type Option struct {
	Value string
	Label string
}

// Distinct removes duplicate values, keeping the first occurrence of each.
func Distinct(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Pluck maps items to one field each.
func Pluck[T, V any](items []T, field func(T) V) []V {
	out := make([]V, len(items))
	for i, it := range items {
		out[i] = field(it)
	}
	return out
}

// Options turns plain values into options labelled by their value.
func Options(values ...string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Label: v}
	}
	return out
}

// Cycle returns the value delta steps away from current in the list
// All, opts[0], opts[1], ... wrapping at both ends. An unknown current value
// is treated as All.
func Cycle(opts []Option, current string, delta int) string {
	values := make([]string, 0, len(opts)+1)
	values = append(values, All)
	for _, o := range opts {
		values = append(values, o.Value)
	}
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	n := len(values)
	idx = ((idx+delta)%n + n) % n
	return values[idx]
}

// LabelFor returns the label of value among opts, "All" for All, or value
// itself when no option matches.
func LabelFor(opts []Option, value string) string {
	if value == All || value == "" {
		return "All"
	}
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
