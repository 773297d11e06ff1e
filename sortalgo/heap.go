package sortalgo

import (
	"cmp"

	"github.com/GoCodeAlone/algokit/collections"
	"github.com/GoCodeAlone/algokit/heapslice"
)

// Heap sorts s in natural order using heapsort.
// Not stable; O(n log n) worst case, no extra allocation.
func Heap[T cmp.Ordered](s []T) {
	HeapFunc(s, cmp.Compare[T])
}

// HeapFunc sorts s using heapsort with the given comparator, via the
// heapslice max-heap view.
func HeapFunc[T any](s []T, compare collections.Comparator[T]) {
	heapslice.NewMax(compare).Sort(s)
}
