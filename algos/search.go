package algos

import (
	"cmp"

	"govec/common"
	"govec/vec"
)

// Index returns the index of the first element equal to x, or -1.
func Index[T comparable](v vec.Vec[T], x T) int {
	for i, e := range v.All() {
		if e == x {
			return i
		}
	}
	return -1
}

// Contains reports whether v holds an element equal to x.
func Contains[T comparable](v vec.Vec[T], x T) bool {
	return Index(v, x) >= 0
}

// Min returns the smallest element. v must be non-empty.
func Min[T cmp.Ordered](v vec.Vec[T]) T {
	common.Assert(!v.Empty(), "algos: Min of empty Vec")
	best := *v.Front()
	for e := range v.Values() {
		if e < best {
			best = e
		}
	}
	return best
}

// Max returns the largest element. v must be non-empty.
func Max[T cmp.Ordered](v vec.Vec[T]) T {
	common.Assert(!v.Empty(), "algos: Max of empty Vec")
	best := *v.Front()
	for e := range v.Values() {
		if e > best {
			best = e
		}
	}
	return best
}
