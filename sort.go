package humanesort

import "slices"

// Order is the capability a type needs to take part in humane sorting.
// String-like types implement it by delegating to [Compare] the way
// [String] and [Bytes] do.
type Order[T any] interface {
	HumaneCmp(T) Ordering
}

// Sort sorts items ascending in place. The sort is stable, items
// comparing Equal keep their relative input order.
func Sort[S ~[]E, E Order[E]](items S) {
	slices.SortStableFunc(items, func(a, b E) int {
		return int(a.HumaneCmp(b))
	})
}

// Sorted returns a sorted copy of items, leaving items untouched.
func Sorted[S ~[]E, E Order[E]](items S) S {
	items = slices.Clone(items)
	Sort(items)
	return items
}

// IsSorted reports whether items is in ascending humane order.
func IsSorted[S ~[]E, E Order[E]](items S) bool {
	return slices.IsSortedFunc(items, func(a, b E) int {
		return int(a.HumaneCmp(b))
	})
}

// Strings sorts a slice of any string type ascending in place, stably.
func Strings[S ~[]E, E ~string](items S) {
	slices.SortStableFunc(items, func(a, b E) int {
		return int(Compare(a, b))
	})
}

// SortedStrings returns a sorted copy of items.
func SortedStrings[S ~[]E, E ~string](items S) S {
	items = slices.Clone(items)
	Strings(items)
	return items
}

// StringsAreSorted reports whether items is in ascending humane order.
func StringsAreSorted[S ~[]E, E ~string](items S) bool {
	return slices.IsSortedFunc(items, func(a, b E) int {
		return int(Compare(a, b))
	})
}
