package sortalgo

import (
	"fmt"
	"slices"
	"testing"
)

// BenchmarkSorts compares the comparison sorts against the standard
// library across input sizes. Insertion sort is restricted to small
// inputs, its quadratic cost dominates everything else otherwise.
func BenchmarkSorts(b *testing.B) {
	base := randomInts(100_000)

	sorts := []struct {
		name    string
		run     func([]int)
		maxSize int
	}{
		{"insertion", Insertion[int], 10_000},
		{"merge", Merge[int], 0},
		{"heap", Heap[int], 0},
		{"quick", Quick[int], 0},
		{"ternaryQuick", TernaryQuick[int], 0},
		{"intro", Intro[int], 0},
		{"slices.Sort", func(s []int) { slices.Sort(s) }, 0},
	}

	for _, size := range []int{1000, 10_000, 100_000} {
		for _, s := range sorts {
			if s.maxSize != 0 && size > s.maxSize {
				continue
			}
			b.Run(fmt.Sprintf("%s/%d", s.name, size), func(b *testing.B) {
				scratch := make([]int, size)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					b.StopTimer()
					copy(scratch, base[:size])
					b.StartTimer()
					s.run(scratch)
				}
			})
		}
	}
}
