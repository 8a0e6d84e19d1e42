package vec

import (
	"govec/common"
)

// Vec is an owning, fixed-length, contiguous sequence of T.
//
// A Vec is the sole owner of its buffer: Clone produces independent
// storage, Take and MoveFrom transfer ownership and leave the source
// empty. Length is set at construction and only changes through
// assignment, move, swap or Clear. The zero value is the empty Vec.
type Vec[T any] struct {
	data []T // len(data) elements; nil when empty, never zero-length
}

// New returns a Vec of n value-initialized elements. n must be >= 0.
func New[T any](n int) Vec[T] {
	common.Assert(n >= 0, "vec: negative length")
	if n == 0 {
		return Vec[T]{}
	}
	return Vec[T]{data: make([]T, n)}
}

// NewFill returns a Vec of n copies of fill.
func NewFill[T any](n int, fill T) Vec[T] {
	v := New[T](n)
	for i := range v.data {
		v.data[i] = fill
	}
	return v
}

// Of returns a Vec holding the given elements in order.
func Of[T any](elems ...T) Vec[T] {
	if len(elems) == 0 {
		return Vec[T]{}
	}
	data := make([]T, len(elems))
	copy(data, elems)
	return Vec[T]{data: data}
}

// TryNew is New with the construction failure reported as an error
// instead of a panic. On error no Vec exists.
func TryNew[T any](n int) (Vec[T], error) {
	return common.Try(func() Vec[T] {
		return New[T](n)
	})
}

// Clone returns a deep copy backed by independent storage.
func (v Vec[T]) Clone() Vec[T] {
	if v.Empty() {
		return Vec[T]{}
	}
	data := make([]T, len(v.data))
	copy(data, v.data)
	return Vec[T]{data: data}
}

// Take transfers ownership of v's buffer to the returned Vec and
// leaves v empty. Constant time, never allocates.
func (v *Vec[T]) Take() Vec[T] {
	out := Vec[T]{data: v.data}
	v.data = nil
	return out
}

// Assign replaces v's contents with a deep copy of src. The copy is
// built first and then swapped into place, so v is unchanged if the
// copy cannot be made. Self-assignment is harmless.
func (v *Vec[T]) Assign(src *Vec[T]) {
	debugf("vec: assign %d elements\n", src.Len())
	tmp := src.Clone()
	v.Swap(&tmp)
}

// MoveFrom takes ownership of src's buffer and leaves src empty.
// Constant time, never fails. A self-move is a no-op.
func (v *Vec[T]) MoveFrom(src *Vec[T]) {
	if v == src {
		return
	}
	debugf("vec: move %d elements\n", len(src.data))
	v.data = src.data
	src.data = nil
}

// Swap exchanges the buffers and lengths of v and other.
func (v *Vec[T]) Swap(other *Vec[T]) {
	v.data, other.data = other.data, v.data
}

// Swap exchanges the buffers and lengths of a and b.
func Swap[T any](a, b *Vec[T]) {
	a.Swap(b)
}

// Clear drops the owned buffer and resets v to empty. Idempotent.
func (v *Vec[T]) Clear() {
	v.data = nil
}

// Len reports the number of elements.
func (v Vec[T]) Len() int { return len(v.data) }

// Empty reports whether v holds no elements.
func (v Vec[T]) Empty() bool { return len(v.data) == 0 }

// Get reads element i without a range check beyond the runtime's own;
// i must satisfy 0 <= i < Len().
func (v Vec[T]) Get(i int) T { return v.data[i] }

// Set writes element i; i must satisfy 0 <= i < Len().
func (v *Vec[T]) Set(i int, x T) { v.data[i] = x }

// At returns a pointer to element i, or a *RangeError if i is out of
// range. The pointer refers to the same element Get and Set address.
func (v Vec[T]) At(i int) (*T, error) {
	if i < 0 || i >= len(v.data) {
		return nil, &RangeError{Index: i, Len: len(v.data)}
	}
	return &v.data[i], nil
}

// Front returns a pointer to the first element. v must be non-empty.
func (v Vec[T]) Front() *T {
	common.Assert(!v.Empty(), "vec: Front on empty Vec")
	return &v.data[0]
}

// Back returns a pointer to the last element. v must be non-empty.
func (v Vec[T]) Back() *T {
	common.Assert(!v.Empty(), "vec: Back on empty Vec")
	return &v.data[len(v.data)-1]
}
