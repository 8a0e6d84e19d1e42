package algos

import (
	"cmp"
	"slices"

	"govec/vec"
)

// Sort sorts v in place in ascending order.
func Sort[T cmp.Ordered](v *vec.Vec[T]) {
	slices.Sort(v.Slice())
}

// SortFunc sorts v in place using the given order.
func SortFunc[T any](v *vec.Vec[T], cmp func(T, T) int) {
	slices.SortFunc(v.Slice(), cmp)
}

// IsSorted reports whether v is in ascending order.
func IsSorted[T cmp.Ordered](v vec.Vec[T]) bool {
	return slices.IsSorted(v.Slice())
}
