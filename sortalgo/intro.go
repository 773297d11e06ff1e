package sortalgo

import (
	"cmp"
	"math/bits"

	"github.com/GoCodeAlone/algokit/collections"
)

// introCutoff is the slice length below which introsort switches to
// insertion sort.
const introCutoff = 16

// Intro sorts s in natural order using introsort.
// Not stable; O(n log n) worst case.
func Intro[T cmp.Ordered](s []T) {
	IntroFunc(s, cmp.Compare[T])
}

// IntroFunc sorts s using introsort with the given comparator: 3-way
// quicksort that falls back to insertion sort on small slices and to
// heapsort once the recursion depth exceeds 2·log2(n).
func IntroFunc[T any](s []T, compare collections.Comparator[T]) {
	n := len(s)
	if n == 0 {
		return
	}
	maxDepth := (bits.Len(uint(n)) - 1) << 1
	introSort(s, compare, maxDepth)
}

func introSort[T any](s []T, compare collections.Comparator[T], depth int) {
	if len(s) < introCutoff {
		InsertionFunc(s, compare)
		return
	}
	if depth == 0 {
		HeapFunc(s, compare)
		return
	}

	p1, p2 := ternaryPartition(s, compare)
	introSort(s[:p1-1], compare, depth-1)
	introSort(s[p1:p2], compare, depth-1)
	introSort(s[p2+1:], compare, depth-1)
}
