package collections

import "cmp"

// Comparator carries the comparison logic for a container. It reports a
// negative value when a orders before b, zero when they are equivalent,
// and a positive value when a orders after b.
//
// Passing the logic directly, rather than wrapping elements, lets one
// element type back containers with different orderings. Comparators may
// close over state:
//
//	center := 3
//	byDistance := func(a, b int) int {
//		return cmp.Compare(abs(a-center), abs(b-center))
//	}
type Comparator[T any] func(a, b T) int

// Natural returns the comparator for a type's natural order.
func Natural[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse returns a comparator with the opposite order of c.
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}
