package sortalgo

import (
	"cmp"

	"github.com/GoCodeAlone/algokit/collections"
)

// Insertion sorts s in natural order using insertion sort.
// Stable, O(n²) worst case, O(n) on nearly sorted input.
func Insertion[T cmp.Ordered](s []T) {
	InsertionFunc(s, cmp.Compare[T])
}

// InsertionFunc sorts s using insertion sort with the given comparator.
func InsertionFunc[T any](s []T, compare collections.Comparator[T]) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i
		for j > 0 && compare(s[j-1], v) > 0 {
			s[j] = s[j-1]
			j--
		}
		s[j] = v
	}
}
