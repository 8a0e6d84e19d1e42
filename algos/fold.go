package algos

import "govec/vec"

// Accumulate folds v front to back, starting from init.
func Accumulate[T, A any](v vec.Vec[T], init A, f func(A, T) A) A {
	acc := init
	for e := range v.Values() {
		acc = f(acc, e)
	}
	return acc
}

// Count returns the number of elements equal to x.
func Count[T comparable](v vec.Vec[T], x T) int {
	n := 0
	for e := range v.Values() {
		if e == x {
			n++
		}
	}
	return n
}
