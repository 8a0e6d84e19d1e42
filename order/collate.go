// Package order provides element comparators for use with
// vec.CompareFunc and algos.SortFunc.
package order

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collation returns a string comparator that orders according to the
// collation rules of the given language.
func Collation(tag language.Tag, opts ...collate.Option) func(a, b string) int {
	c := collate.New(tag, opts...)
	return func(a, b string) int {
		return c.CompareString(a, b)
	}
}

// Reverse inverts the order defined by cmp.
func Reverse[T any](cmp func(T, T) int) func(T, T) int {
	return func(a, b T) int {
		return -cmp(a, b)
	}
}
