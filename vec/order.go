package vec

import "cmp"

// Equal reports whether a and b have the same length and equal
// elements at every index.
func Equal[T comparable](a, b Vec[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, x := range a.data {
		if x != b.data[i] {
			return false
		}
	}
	return true
}

// EqualFunc is Equal with element equality supplied by eq.
func EqualFunc[T any](a, b Vec[T], eq func(T, T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, x := range a.data {
		if !eq(x, b.data[i]) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically: elements are compared
// pairwise in index order and the first mismatch decides; if one
// sequence is a strict prefix of the other, the shorter orders first.
// The result is -1, 0 or +1.
func Compare[T cmp.Ordered](a, b Vec[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with the element order supplied by cmp,
// which must return a negative, zero or positive int.
func CompareFunc[T any](a, b Vec[T], cmp func(T, T) int) int {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		if c := cmp(a.data[i], b.data[i]); c != 0 {
			return c
		}
	}
	switch {
	case a.Len() < b.Len():
		return -1
	case a.Len() > b.Len():
		return +1
	default:
		return 0
	}
}

// Less reports whether a orders strictly before b.
func Less[T cmp.Ordered](a, b Vec[T]) bool {
	return Compare(a, b) < 0
}
