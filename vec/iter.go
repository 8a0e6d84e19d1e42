package vec

import "iter"

// All returns an index/element iterator over v, front to back. The
// sequence is finite and restartable; an empty Vec yields nothing.
func (v Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.data {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values returns an element iterator over v, front to back.
func (v Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.data {
			if !yield(x) {
				return
			}
		}
	}
}

// Slice returns a mutable view over the owned buffer, for range-for
// and in-place algorithms. The view borrows the buffer: it must not
// be retained across Clear, Assign, MoveFrom, Swap or Take, and it
// must not be grown.
func (v Vec[T]) Slice() []T {
	return v.data
}
