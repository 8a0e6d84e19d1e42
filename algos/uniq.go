package algos

import "govec/vec"

// Uniq returns a new Vec holding the distinct elements of v, keeping
// the first occurrence order.
func Uniq[T comparable](v vec.Vec[T]) vec.Vec[T] {
	seen := map[T]struct{}{}
	uniq := make([]T, 0, v.Len())
	for e := range v.Values() {
		if _, ok := seen[e]; !ok {
			seen[e] = struct{}{}
			uniq = append(uniq, e)
		}
	}
	return vec.Of(uniq...)
}
