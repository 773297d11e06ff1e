package sortalgo

import (
	"cmp"

	"github.com/GoCodeAlone/algokit/collections"
)

// Merge sorts s in natural order using bottom-up merge sort.
// Stable, O(n log n) worst case, allocates one O(n) scratch buffer.
func Merge[T cmp.Ordered](s []T) {
	MergeFunc(s, cmp.Compare[T])
}

// MergeFunc sorts s using bottom-up merge sort with the given comparator.
//
// Segments of doubling size are merged pairwise into the scratch buffer
// and written back each round; no recursion. A trailing segment without a
// partner is left in place for the next round.
func MergeFunc[T any](s []T, compare collections.Comparator[T]) {
	n := len(s)
	if n <= 1 {
		return
	}
	buf := make([]T, n)

	for seg := 1; seg < n; seg <<= 1 {
		merged := 0
		for start := 0; ; start += seg << 1 {
			mid := start + seg
			if mid >= n {
				// Trailing segment, already sorted from prior rounds.
				break
			}
			end := min(mid+seg, n)

			l, r := start, mid
			for i := start; i < end; i++ {
				// <= keeps the left element on ties: stability.
				if r == end || (l != mid && compare(s[l], s[r]) <= 0) {
					buf[i] = s[l]
					l++
				} else {
					buf[i] = s[r]
					r++
				}
			}
			merged = end
		}
		copy(s[:merged], buf[:merged])
	}
}
