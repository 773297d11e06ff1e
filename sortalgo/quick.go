package sortalgo

import (
	"cmp"

	"github.com/GoCodeAlone/algokit/collections"
)

// Quick sorts s in natural order using quicksort with Lomuto partitioning.
// Not stable; O(n log n) expected, O(n²) on adversarial input.
func Quick[T cmp.Ordered](s []T) {
	QuickFunc(s, cmp.Compare[T])
}

// QuickFunc sorts s using quicksort with the given comparator.
func QuickFunc[T any](s []T, compare collections.Comparator[T]) {
	if len(s) <= 1 {
		return
	}
	p := partition(s, compare)
	QuickFunc(s[:p], compare)
	QuickFunc(s[p+1:], compare)
}

// partition arranges s around the pivot at the end and returns the pivot's
// final index. Elements ordering at or before the pivot end up on its left.
func partition[T any](s []T, compare collections.Comparator[T]) int {
	pivot := len(s) - 1
	left := 0
	for i := range s {
		if compare(s[i], s[pivot]) <= 0 {
			s[left], s[i] = s[i], s[left]
			left++
		}
	}
	return left - 1
}

// TernaryQuick sorts s in natural order using 3-way quicksort.
// The three-way split keeps duplicate-heavy inputs near O(n log n).
func TernaryQuick[T cmp.Ordered](s []T) {
	TernaryQuickFunc(s, cmp.Compare[T])
}

// TernaryQuickFunc sorts s using 3-way quicksort with the given comparator.
func TernaryQuickFunc[T any](s []T, compare collections.Comparator[T]) {
	if len(s) <= 1 {
		return
	}
	p1, p2 := ternaryPartition(s, compare)
	TernaryQuickFunc(s[:p1-1], compare)
	TernaryQuickFunc(s[p1:p2], compare)
	TernaryQuickFunc(s[p2+1:], compare)
}

// ternaryPartition splits s into three regions using Dijkstra's Dutch
// national flag scheme with pivots drawn from both ends of the slice.
//
// On return, with (p1, p2) the result:
//
//	s[:p1-1]  orders at or before the low pivot at s[p1-1]
//	s[p1:p2]  orders strictly between the pivots
//	s[p2+1:]  orders at or after the high pivot at s[p2]
func ternaryPartition[T any](s []T, compare collections.Comparator[T]) (int, int) {
	end := len(s) - 1
	if compare(s[0], s[end]) > 0 {
		s[0], s[end] = s[end], s[0]
	}

	// [1, i) low, [i, j) middle, (k, end) high
	i, j, k := 1, 1, end-1
	for j <= k {
		switch {
		case compare(s[j], s[0]) <= 0:
			s[i], s[j] = s[j], s[i]
			i++
			j++
		case compare(s[j], s[end]) >= 0:
			s[j], s[k] = s[k], s[j]
			k--
		default:
			j++
		}
	}
	s[0], s[i-1] = s[i-1], s[0]
	s[j], s[end] = s[end], s[j]
	return i, j
}
