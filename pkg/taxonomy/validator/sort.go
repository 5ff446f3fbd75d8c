package validator

import "sort"

// SortByName returns a new slice with the items in lexicographic order
// of their names. The sort is stable: items with equal names keep
// their original relative order, so normalization is idempotent and
// independent of input order.
func SortByName[T any](items []T, name func(T) string) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return name(sorted[i]) < name(sorted[j])
	})
	return sorted
}
